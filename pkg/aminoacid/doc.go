// Package aminoacid defines the amino acid reference record and its side chain
// classification.
//
// # Records
//
// AminoAcid is immutable: fields are read through accessors and the codon list
// is copied on the way in and out.
//
//	ala := aminoacid.MustNew("Alanine", "Ala", "A", "Nonpolar", 89.09,
//		[]string{"GCT", "GCC", "GCA", "GCG"})
//	ala.CodonString() // "GCT, GCC, GCA, GCG"
//	ala.CodonCount()  // 4
//
// Records encode to JSON and YAML with snake_case keys (name, short_name,
// abbreviation, side_chain, molecular_weight, codon).
//
// # Side chains
//
// SideChain is a closed set: Nonpolar, Polar, Acidic, Basic, Positive.
// ParseSideChain ignores case and returns ErrInvalidEnum for anything else, so
// a dataset with an unknown class fails to decode rather than loading a
// partial record.
package aminoacid
