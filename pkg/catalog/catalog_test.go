package catalog

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/platinummonkey/aminoapi/pkg/aminoacid"
	"github.com/platinummonkey/aminoapi/pkg/dataset"
	"github.com/platinummonkey/aminoapi/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoRecords = `[
  {"name": "Alanine", "short_name": "Ala", "abbreviation": "A", "side_chain": "Nonpolar", "molecular_weight": 89.09, "codon": ["GCT", "GCC", "GCA", "GCG"]},
  {"name": "Glycine", "short_name": "Gly", "abbreviation": "G", "side_chain": "Nonpolar", "molecular_weight": 75.07, "codon": ["GGT", "GGC", "GGA", "GGG"]}
]`

func quietLogger() *observability.Logger {
	return observability.NewLogger(observability.ErrorLevel, &bytes.Buffer{})
}

func writeDataset(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "amino_acids.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTable_FindIgnoresCase(t *testing.T) {
	records, err := dataset.Default()
	require.NoError(t, err)
	table := NewTable(records)

	for _, aa := range records {
		for _, key := range []string{aa.Name(), strings.ToLower(aa.Name()), strings.ToUpper(aa.Name())} {
			got, ok := table.Find(key)
			require.True(t, ok, key)
			assert.Equal(t, aa, got, key)
		}
	}
}

func TestTable_FindIsExact(t *testing.T) {
	table := NewTable([]aminoacid.AminoAcid{
		aminoacid.MustNew("Aspartic Acid", "Asp", "D", "Acidic", 133.10, []string{"GAT", "GAC"}),
	})

	for _, key := range []string{"aspartic", "acid", "aspartic acid ", "", "unknownxyz"} {
		_, ok := table.Find(key)
		assert.False(t, ok, "%q should not match", key)
	}

	_, ok := table.Find("ASPARTIC ACID")
	assert.True(t, ok)
}

func TestTable_DuplicatesFirstWins(t *testing.T) {
	first := aminoacid.MustNew("Alanine", "Ala", "A", "Nonpolar", 89.09, nil)
	second := aminoacid.MustNew("alanine", "Xxx", "X", "Polar", 1, nil)
	table := NewTable([]aminoacid.AminoAcid{first, second})

	got, ok := table.Find("ALANINE")
	require.True(t, ok)
	assert.Equal(t, first, got)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, []aminoacid.AminoAcid{first, second}, table.All())
}

func TestNew_EmbeddedDataset(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := observability.NewMetrics(registry)

	c, err := New(Source{}, WithLogger(quietLogger()), WithMetrics(metrics))
	require.NoError(t, err)

	assert.True(t, c.Ready())
	assert.NoError(t, c.HealthCheck(context.Background()))
	assert.Equal(t, 22, c.Len())
	assert.Len(t, c.All(), 22)
	assert.Equal(t, float64(22), testutil.ToFloat64(metrics.DatasetRecords))

	aa, ok := c.Find("alanine")
	require.True(t, ok)
	assert.Equal(t, "Ala", aa.ShortName())

	_, ok = c.Find("unknownxyz")
	assert.False(t, ok)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.LookupsTotal.WithLabelValues(observability.LookupHit)))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.LookupsTotal.WithLabelValues(observability.LookupMiss)))
}

func TestNew_LoadFailure(t *testing.T) {
	dir := t.TempDir()

	_, err := New(Source{Path: filepath.Join(dir, "missing.json")}, WithLogger(quietLogger()))
	assert.True(t, errors.Is(err, dataset.ErrUnavailable))

	_, err = New(Source{Path: writeDataset(t, dir, `{"not": "an array"}`)}, WithLogger(quietLogger()))
	assert.True(t, errors.Is(err, dataset.ErrMalformed))
}

func TestReload_KeepsPreviousTableOnFailure(t *testing.T) {
	path := writeDataset(t, t.TempDir(), twoRecords)
	c, err := New(Source{Path: path}, WithLogger(quietLogger()))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "Alanine", "side_chain": "sticky"}]`), 0644))
	err = c.Reload()
	require.Error(t, err)

	assert.Equal(t, 2, c.Len())
	_, ok := c.Find("glycine")
	assert.True(t, ok)
}

func TestReload_SwapsTable(t *testing.T) {
	path := writeDataset(t, t.TempDir(), twoRecords)
	c, err := New(Source{Path: path}, WithLogger(quietLogger()))
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`[{"name": "Serine", "short_name": "Ser", "abbreviation": "S", "side_chain": "polar", "molecular_weight": 105.09, "codon": ["TCT"]}]`), 0644))
	require.NoError(t, c.Reload())

	assert.Equal(t, 1, c.Len())
	_, ok := c.Find("alanine")
	assert.False(t, ok)
	_, ok = c.Find("serine")
	assert.True(t, ok)
}

func TestHealthCheck_NotLoaded(t *testing.T) {
	var c Catalog
	assert.False(t, c.Ready())
	assert.ErrorIs(t, c.HealthCheck(context.Background()), ErrNotLoaded)
	assert.Nil(t, c.All())
	assert.Equal(t, 0, c.Len())

	_, ok := c.Find("alanine")
	assert.False(t, ok)
}

func TestSource_String(t *testing.T) {
	assert.Equal(t, "embedded", Source{}.String())
	assert.Equal(t, "/data/amino.json", Source{Path: "/data/amino.json"}.String())
}
