// Package api provides the read-only HTTP API for the amino acid reference data.
//
// # Overview
//
// Every route is a GET keyed by an amino acid's full name, matched without
// regard to case. A name that is not in the dataset yields 404 with
// {"error":"Amino Acid not found"} on every route.
//
// # Routes
//
//	GET /                          {"message":"Welcome to the Amino Acid API"}
//	GET /{name}                    {"amino_acid":{...}}
//	GET /{name}/name               name, short_name, abbreviation
//	GET /{name}/short_name         name, short_name
//	GET /{name}/abbreviation       name, abbreviation
//	GET /{name}/side_chain         name, side_chain
//	GET /{name}/molecular_weight   name, molecular_weight
//	GET /{name}/codon              name, codon
//	GET /{name}/codon_count        name, codon_count
//
// Any other method on a known route returns 405.
//
// # Usage
//
//	cat, err := catalog.New(catalog.Source{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	server := api.NewServer(cat, logger, api.WithMetrics(metrics))
//	http.ListenAndServe(":8080", server)
//
// The server owns request ID, logging and panic recovery middleware. Metrics
// are labelled by route template so arbitrary names do not grow label sets.
package api
