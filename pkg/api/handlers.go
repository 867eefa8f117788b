package api

import (
	"net/http"

	"github.com/platinummonkey/aminoapi/pkg/aminoacid"
	"github.com/platinummonkey/aminoapi/pkg/httputil"
	"github.com/platinummonkey/aminoapi/pkg/observability"
)

// root handles GET /
func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	httputil.WriteSuccess(w, RootResponse{Message: WelcomeMessage})
}

// find resolves the {name} path variable, writing the 404 body on a miss
func (s *Server) find(w http.ResponseWriter, r *http.Request) (aminoacid.AminoAcid, bool) {
	name, err := httputil.ParsePathString(r, "name")
	if err != nil {
		httputil.WriteNotFoundError(w, NotFoundMessage)
		return aminoacid.AminoAcid{}, false
	}

	aa, ok := s.lookup.Find(name)
	if !ok {
		observability.FromContext(r.Context()).WithField("name", name).Debug("amino acid not found")
		httputil.WriteNotFoundError(w, NotFoundMessage)
		return aminoacid.AminoAcid{}, false
	}
	return aa, true
}

// getAminoAcid handles GET /{name}
func (s *Server) getAminoAcid(w http.ResponseWriter, r *http.Request) {
	if aa, ok := s.find(w, r); ok {
		httputil.WriteSuccess(w, NewAminoAcidResponse(aa))
	}
}

// getName handles GET /{name}/name
func (s *Server) getName(w http.ResponseWriter, r *http.Request) {
	if aa, ok := s.find(w, r); ok {
		httputil.WriteSuccess(w, NewNameResponse(aa))
	}
}

// getShortName handles GET /{name}/short_name
func (s *Server) getShortName(w http.ResponseWriter, r *http.Request) {
	if aa, ok := s.find(w, r); ok {
		httputil.WriteSuccess(w, NewShortNameResponse(aa))
	}
}

// getAbbreviation handles GET /{name}/abbreviation
func (s *Server) getAbbreviation(w http.ResponseWriter, r *http.Request) {
	if aa, ok := s.find(w, r); ok {
		httputil.WriteSuccess(w, NewAbbreviationResponse(aa))
	}
}

// getSideChain handles GET /{name}/side_chain
func (s *Server) getSideChain(w http.ResponseWriter, r *http.Request) {
	if aa, ok := s.find(w, r); ok {
		httputil.WriteSuccess(w, NewSideChainResponse(aa))
	}
}

// getMolecularWeight handles GET /{name}/molecular_weight
func (s *Server) getMolecularWeight(w http.ResponseWriter, r *http.Request) {
	if aa, ok := s.find(w, r); ok {
		httputil.WriteSuccess(w, NewMolecularWeightResponse(aa))
	}
}

// getCodon handles GET /{name}/codon
func (s *Server) getCodon(w http.ResponseWriter, r *http.Request) {
	if aa, ok := s.find(w, r); ok {
		httputil.WriteSuccess(w, NewCodonResponse(aa))
	}
}

// getCodonCount handles GET /{name}/codon_count
func (s *Server) getCodonCount(w http.ResponseWriter, r *http.Request) {
	if aa, ok := s.find(w, r); ok {
		httputil.WriteSuccess(w, NewCodonCountResponse(aa))
	}
}
