// Package dataset loads amino acid reference records from a static source.
//
// Sources are JSON arrays or YAML sequences of records; the format is chosen
// by file extension. When no file is configured the embedded standard table
// (the twenty proteinogenic amino acids plus selenocysteine and pyrrolysine)
// is used:
//
//	records, err := dataset.Load("/etc/aminoapi/amino_acids.yaml")
//	records, err := dataset.Default()
//
// Errors wrap ErrUnavailable (source cannot be read), ErrMalformed (decode or
// validation failure) or ErrUnsupportedFormat. A load either yields every
// record or fails as a whole.
package dataset
