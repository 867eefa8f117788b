package catalog

import (
	"strings"

	"github.com/platinummonkey/aminoapi/pkg/aminoacid"
)

// Table is an immutable name index over one dataset snapshot
type Table struct {
	records []aminoacid.AminoAcid
	byName  map[string]int
}

// NewTable indexes records by lowercased name. When two records share a
// name the one earlier in the slice wins.
func NewTable(records []aminoacid.AminoAcid) *Table {
	t := &Table{
		records: make([]aminoacid.AminoAcid, len(records)),
		byName:  make(map[string]int, len(records)),
	}
	copy(t.records, records)

	for i, aa := range t.records {
		key := strings.ToLower(aa.Name())
		if _, exists := t.byName[key]; !exists {
			t.byName[key] = i
		}
	}
	return t
}

// Find returns the record whose name equals key, ignoring case
func (t *Table) Find(key string) (aminoacid.AminoAcid, bool) {
	i, ok := t.byName[strings.ToLower(key)]
	if !ok {
		return aminoacid.AminoAcid{}, false
	}
	return t.records[i], true
}

// All returns the records in dataset order
func (t *Table) All() []aminoacid.AminoAcid {
	out := make([]aminoacid.AminoAcid, len(t.records))
	copy(out, t.records)
	return out
}

// Len returns the number of records, duplicates included
func (t *Table) Len() int {
	return len(t.records)
}
