// Package config loads application configuration from environment variables.
//
// Every setting has a default, so an empty environment serves the embedded
// dataset on :8080 with health and metrics on :9090.
//
// Server settings:
//
//	AMINO_HOST="0.0.0.0"
//	AMINO_PORT="8080"
//	AMINO_HEALTH_PORT="9090"
//	AMINO_READ_TIMEOUT="15s"
//	AMINO_WRITE_TIMEOUT="15s"
//	AMINO_IDLE_TIMEOUT="60s"
//	AMINO_SHUTDOWN_TIMEOUT="30s"
//
// Dataset settings:
//
//	AMINO_DATASET_PATH="/etc/aminoapi/amino_acids.yaml"  # empty: embedded
//	AMINO_DATASET_WATCH="true"                           # requires a path
//	AMINO_DATASET_RELOAD_SCHEDULE="@every 10m"           # requires a path
//
// Observability settings:
//
//	AMINO_LOG_LEVEL="info"  # debug, info, warn, error
//	AMINO_METRICS_ENABLED="true"
//	AMINO_OTEL_ENABLED="true"
//	AMINO_OTEL_ENDPOINT="otel-collector:4317"
//
// Usage:
//
//	cfg, err := config.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Addr())
//
// Callers that apply flag overrides use LoadFromEnv and call Validate once the
// overrides are in place.
package config
