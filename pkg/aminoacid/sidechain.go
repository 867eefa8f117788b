package aminoacid

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidEnum is returned when a string does not name a known side chain class
var ErrInvalidEnum = errors.New("invalid enum value")

// SideChain classifies the chemical behaviour of an amino acid's side chain
type SideChain uint8

const (
	Nonpolar SideChain = iota + 1
	Polar
	Acidic
	Basic
	Positive
)

var sideChainNames = map[SideChain]string{
	Nonpolar: "Nonpolar",
	Polar:    "Polar",
	Acidic:   "Acidic",
	Basic:    "Basic",
	Positive: "Positive",
}

// SideChains returns every side chain class in declaration order
func SideChains() []SideChain {
	return []SideChain{Nonpolar, Polar, Acidic, Basic, Positive}
}

// ParseSideChain parses a side chain class name, ignoring case
func ParseSideChain(s string) (SideChain, error) {
	for _, sc := range SideChains() {
		if strings.EqualFold(s, sideChainNames[sc]) {
			return sc, nil
		}
	}
	return 0, fmt.Errorf("%w: side chain %q", ErrInvalidEnum, s)
}

// IsValid reports whether sc is one of the known classes
func (sc SideChain) IsValid() bool {
	_, ok := sideChainNames[sc]
	return ok
}

func (sc SideChain) String() string {
	if name, ok := sideChainNames[sc]; ok {
		return name
	}
	return fmt.Sprintf("SideChain(%d)", uint8(sc))
}

// MarshalJSON implements json.Marshaler
func (sc SideChain) MarshalJSON() ([]byte, error) {
	if !sc.IsValid() {
		return nil, fmt.Errorf("%w: side chain %d", ErrInvalidEnum, uint8(sc))
	}
	return json.Marshal(sc.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (sc *SideChain) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("side chain must be a string: %w", err)
	}
	parsed, err := ParseSideChain(s)
	if err != nil {
		return err
	}
	*sc = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (sc SideChain) MarshalYAML() (interface{}, error) {
	if !sc.IsValid() {
		return nil, fmt.Errorf("%w: side chain %d", ErrInvalidEnum, uint8(sc))
	}
	return sc.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (sc *SideChain) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("side chain must be a string: %w", err)
	}
	parsed, err := ParseSideChain(s)
	if err != nil {
		return err
	}
	*sc = parsed
	return nil
}
