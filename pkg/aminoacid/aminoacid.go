package aminoacid

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AminoAcid is a single reference record. Values are immutable once built.
type AminoAcid struct {
	name            string
	shortName       string
	abbreviation    string
	sideChain       SideChain
	molecularWeight float64
	codon           []string
}

// record is the wire shape shared by the JSON and YAML codecs
type record struct {
	Name            string    `json:"name" yaml:"name"`
	ShortName       string    `json:"short_name" yaml:"short_name"`
	Abbreviation    string    `json:"abbreviation" yaml:"abbreviation"`
	SideChain       SideChain `json:"side_chain" yaml:"side_chain"`
	MolecularWeight float64   `json:"molecular_weight" yaml:"molecular_weight"`
	Codon           []string  `json:"codon" yaml:"codon"`
}

// New builds a record, parsing the side chain class from its name
func New(name, shortName, abbreviation, sideChain string, molecularWeight float64, codon []string) (AminoAcid, error) {
	sc, err := ParseSideChain(sideChain)
	if err != nil {
		return AminoAcid{}, fmt.Errorf("amino acid %q: %w", name, err)
	}
	return fromRecord(record{
		Name:            name,
		ShortName:       shortName,
		Abbreviation:    abbreviation,
		SideChain:       sc,
		MolecularWeight: molecularWeight,
		Codon:           codon,
	}), nil
}

// MustNew is like New but panics on error. Intended for fixtures.
func MustNew(name, shortName, abbreviation, sideChain string, molecularWeight float64, codon []string) AminoAcid {
	aa, err := New(name, shortName, abbreviation, sideChain, molecularWeight, codon)
	if err != nil {
		panic(err)
	}
	return aa
}

func fromRecord(r record) AminoAcid {
	codon := make([]string, len(r.Codon))
	copy(codon, r.Codon)
	return AminoAcid{
		name:            r.Name,
		shortName:       r.ShortName,
		abbreviation:    r.Abbreviation,
		sideChain:       r.SideChain,
		molecularWeight: r.MolecularWeight,
		codon:           codon,
	}
}

func (a AminoAcid) toRecord() record {
	return record{
		Name:            a.name,
		ShortName:       a.shortName,
		Abbreviation:    a.abbreviation,
		SideChain:       a.sideChain,
		MolecularWeight: a.molecularWeight,
		Codon:           a.Codon(),
	}
}

// Name returns the full chemical name
func (a AminoAcid) Name() string { return a.name }

// ShortName returns the three-letter code
func (a AminoAcid) ShortName() string { return a.shortName }

// Abbreviation returns the one-letter code
func (a AminoAcid) Abbreviation() string { return a.abbreviation }

// SideChain returns the side chain class
func (a AminoAcid) SideChain() SideChain { return a.sideChain }

// MolecularWeight returns the molecular weight in daltons
func (a AminoAcid) MolecularWeight() float64 { return a.molecularWeight }

// Codon returns a copy of the codon list in canonical order
func (a AminoAcid) Codon() []string {
	out := make([]string, len(a.codon))
	copy(out, a.codon)
	return out
}

// CodonString returns the codons joined with ", "
func (a AminoAcid) CodonString() string {
	return strings.Join(a.codon, ", ")
}

// CodonCount returns the number of codons
func (a AminoAcid) CodonCount() int {
	return len(a.codon)
}

// String renders every field on one tab-separated line
func (a AminoAcid) String() string {
	return fmt.Sprintf("Name: %s\tShort Name: %s\tAbbreviation: %s\tSide Chain: %s\tMolecular Weight: %s\tCodon: %s",
		a.name,
		a.shortName,
		a.abbreviation,
		a.sideChain,
		strconv.FormatFloat(a.molecularWeight, 'f', -1, 64),
		a.CodonString(),
	)
}

// MarshalJSON implements json.Marshaler
func (a AminoAcid) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.toRecord())
}

// UnmarshalJSON implements json.Unmarshaler
func (a *AminoAcid) UnmarshalJSON(data []byte) error {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	if !r.SideChain.IsValid() {
		return fmt.Errorf("amino acid %q: %w: side chain missing", r.Name, ErrInvalidEnum)
	}
	*a = fromRecord(r)
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (a AminoAcid) MarshalYAML() (interface{}, error) {
	return a.toRecord(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (a *AminoAcid) UnmarshalYAML(node *yaml.Node) error {
	var r record
	if err := node.Decode(&r); err != nil {
		return err
	}
	if !r.SideChain.IsValid() {
		return fmt.Errorf("amino acid %q: %w: side chain missing", r.Name, ErrInvalidEnum)
	}
	*a = fromRecord(r)
	return nil
}
