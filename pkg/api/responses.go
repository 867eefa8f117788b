package api

import "github.com/platinummonkey/aminoapi/pkg/aminoacid"

const (
	// WelcomeMessage is the body of GET /
	WelcomeMessage = "Welcome to the Amino Acid API"

	// NotFoundMessage is reported for any name that is not in the dataset
	NotFoundMessage = "Amino Acid not found"
)

// AminoAcidResponse wraps the full record
type AminoAcidResponse struct {
	AminoAcid aminoacid.AminoAcid `json:"amino_acid"`
}

// NameResponse carries every naming field of a record
type NameResponse struct {
	Name         string `json:"name"`
	ShortName    string `json:"short_name"`
	Abbreviation string `json:"abbreviation"`
}

// ShortNameResponse carries the three-letter code
type ShortNameResponse struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

// AbbreviationResponse carries the one-letter code
type AbbreviationResponse struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// SideChainResponse carries the side-chain class as its display string
type SideChainResponse struct {
	Name      string `json:"name"`
	SideChain string `json:"side_chain"`
}

// MolecularWeightResponse carries the molecular weight in g/mol
type MolecularWeightResponse struct {
	Name            string  `json:"name"`
	MolecularWeight float64 `json:"molecular_weight"`
}

// CodonResponse carries the codon list in dataset order
type CodonResponse struct {
	Name  string   `json:"name"`
	Codon []string `json:"codon"`
}

// CodonCountResponse carries the number of codons
type CodonCountResponse struct {
	Name       string `json:"name"`
	CodonCount int    `json:"codon_count"`
}

// RootResponse is the welcome body
type RootResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewAminoAcidResponse wraps the full record
func NewAminoAcidResponse(aa aminoacid.AminoAcid) AminoAcidResponse {
	return AminoAcidResponse{AminoAcid: aa}
}

// NewNameResponse projects the name with its short forms
func NewNameResponse(aa aminoacid.AminoAcid) NameResponse {
	return NameResponse{
		Name:         aa.Name(),
		ShortName:    aa.ShortName(),
		Abbreviation: aa.Abbreviation(),
	}
}

// NewShortNameResponse projects the three-letter code
func NewShortNameResponse(aa aminoacid.AminoAcid) ShortNameResponse {
	return ShortNameResponse{Name: aa.Name(), ShortName: aa.ShortName()}
}

// NewAbbreviationResponse projects the one-letter code
func NewAbbreviationResponse(aa aminoacid.AminoAcid) AbbreviationResponse {
	return AbbreviationResponse{Name: aa.Name(), Abbreviation: aa.Abbreviation()}
}

// NewSideChainResponse projects the side chain class
func NewSideChainResponse(aa aminoacid.AminoAcid) SideChainResponse {
	return SideChainResponse{Name: aa.Name(), SideChain: aa.SideChain().String()}
}

// NewMolecularWeightResponse projects the molecular weight
func NewMolecularWeightResponse(aa aminoacid.AminoAcid) MolecularWeightResponse {
	return MolecularWeightResponse{Name: aa.Name(), MolecularWeight: aa.MolecularWeight()}
}

// NewCodonResponse projects the codon list
func NewCodonResponse(aa aminoacid.AminoAcid) CodonResponse {
	return CodonResponse{Name: aa.Name(), Codon: aa.Codon()}
}

// NewCodonCountResponse projects the number of codons
func NewCodonCountResponse(aa aminoacid.AminoAcid) CodonCountResponse {
	return CodonCountResponse{Name: aa.Name(), CodonCount: aa.CodonCount()}
}
