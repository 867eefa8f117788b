package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/platinummonkey/aminoapi/pkg/aminoacid"
	"gopkg.in/yaml.v3"
)

// Format identifies a dataset encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

//go:embed data/amino_acids.json
var defaultData []byte

// FormatFromPath picks a format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Load reads and validates the dataset stored at path
func Load(path string) ([]aminoacid.AminoAcid, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer f.Close()

	records, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// Default returns the embedded standard dataset
func Default() ([]aminoacid.AminoAcid, error) {
	return Decode(bytes.NewReader(defaultData), FormatJSON)
}

// Decode reads a full dataset from r. Either every record decodes and
// validates or an error is returned; partial results are never returned.
// The input must hold exactly one top-level list; anything after it is
// rejected.
func Decode(r io.Reader, format Format) ([]aminoacid.AminoAcid, error) {
	var (
		records []aminoacid.AminoAcid
		err     error
	)

	switch format {
	case FormatJSON:
		records, err = decodeJSON(r)
	case FormatYAML:
		records, err = decodeYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

func decodeJSON(r io.Reader) ([]aminoacid.AminoAcid, error) {
	dec := json.NewDecoder(r)

	var records []aminoacid.AminoAcid
	if err := dec.Decode(&records); err != nil {
		return nil, err
	}
	// "[]" decodes to an empty non-nil slice; only a literal null leaves it nil
	if records == nil {
		return nil, errors.New("dataset must be a list, got null")
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected content after dataset list")
	}
	return records, nil
}

func decodeYAML(r io.Reader) ([]aminoacid.AminoAcid, error) {
	dec := yaml.NewDecoder(r)

	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			// An empty file is an empty dataset
			return []aminoacid.AminoAcid{}, nil
		}
		return nil, err
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return []aminoacid.AminoAcid{}, nil
		}
		root = root.Content[0]
	}
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" && root.Value == "" {
		return []aminoacid.AminoAcid{}, nil
	}
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: dataset must be a list", root.Line)
	}

	var records []aminoacid.AminoAcid
	if err := root.Decode(&records); err != nil {
		return nil, err
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected document after dataset list")
	}
	return records, nil
}

// Validate checks invariants the decoder cannot enforce on its own
func Validate(records []aminoacid.AminoAcid) error {
	var errs []error
	for i, aa := range records {
		if strings.TrimSpace(aa.Name()) == "" {
			errs = append(errs, fmt.Errorf("record %d: name is required", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrMalformed, errors.Join(errs...))
	}
	return nil
}

// Duplicates returns the name of every record whose lowercased name was already
// seen earlier in the slice
func Duplicates(records []aminoacid.AminoAcid) []string {
	seen := make(map[string]bool, len(records))
	var dups []string
	for _, aa := range records {
		key := strings.ToLower(aa.Name())
		if seen[key] {
			dups = append(dups, aa.Name())
			continue
		}
		seen[key] = true
	}
	return dups
}
