// Package swagger serves the OpenAPI document for the amino acid API and a
// Swagger UI page that renders it.
package swagger

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/platinummonkey/aminoapi/pkg/httputil"
	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml
var openapiSpec []byte

var swaggerUI = template.Must(template.New("swagger").Parse(swaggerUITemplate))

// SwaggerHandlers provides HTTP handlers for OpenAPI/Swagger documentation
type SwaggerHandlers struct {
	specJSON []byte
}

// NewSwaggerHandlers converts the embedded document to JSON once
func NewSwaggerHandlers() (*SwaggerHandlers, error) {
	specJSON, err := yamlToJSON(openapiSpec)
	if err != nil {
		return nil, fmt.Errorf("invalid embedded OpenAPI document: %w", err)
	}
	return &SwaggerHandlers{specJSON: specJSON}, nil
}

// RegisterRoutes registers the documentation routes
func (h *SwaggerHandlers) RegisterRoutes(serveMux *http.ServeMux) {
	serveMux.HandleFunc("GET /openapi.yaml", h.serveOpenAPISpec)
	serveMux.HandleFunc("GET /openapi.json", h.serveOpenAPISpecJSON)
	serveMux.HandleFunc("GET /swagger-ui", h.serveSwaggerUI)
	serveMux.HandleFunc("GET /api-docs", h.serveSwaggerUI) // Alias
}

// serveOpenAPISpec serves the OpenAPI specification in YAML format
func (h *SwaggerHandlers) serveOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/x-yaml")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	w.Write(openapiSpec)
}

// serveOpenAPISpecJSON serves the OpenAPI specification in JSON format
func (h *SwaggerHandlers) serveOpenAPISpecJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	w.Write(h.specJSON)
}

// serveSwaggerUI serves the Swagger UI HTML page
func (h *SwaggerHandlers) serveSwaggerUI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := swaggerUI.Execute(w, nil); err != nil {
		httputil.WriteInternalError(w, err)
		return
	}
}

// yamlToJSON relies on yaml.v3 decoding string-keyed mappings into
// map[string]interface{}, which encoding/json accepts
func yamlToJSON(data []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

const swaggerUITemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Amino Acid API - Swagger UI</title>
  <link rel="stylesheet" type="text/css" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5.10.5/swagger-ui.css" />
  <style>
    body {
      margin:0;
      padding:0;
    }
  </style>
</head>
<body>
<div id="swagger-ui"></div>

<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5.10.5/swagger-ui-bundle.js" charset="UTF-8"></script>
<script>
window.onload = function() {
  window.ui = SwaggerUIBundle({
    url: "/openapi.json",
    dom_id: '#swagger-ui',
    deepLinking: true,
    presets: [SwaggerUIBundle.presets.apis],
  });
};
</script>
</body>
</html>`
