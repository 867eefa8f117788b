package catalog

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/platinummonkey/aminoapi/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_EmbeddedNotWatchable(t *testing.T) {
	c, err := New(Source{}, WithLogger(quietLogger()))
	require.NoError(t, err)

	assert.ErrorIs(t, c.Watch(context.Background()), ErrNotWatchable)
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := writeDataset(t, t.TempDir(), twoRecords)
	metrics := observability.NewMetrics(prometheus.NewRegistry())

	c, err := New(Source{Path: path},
		WithLogger(quietLogger()),
		WithMetrics(metrics),
		WithDebounce(10*time.Millisecond),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Watch(ctx) }()
	defer func() {
		cancel()
		assert.NoError(t, <-done)
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)

	serine := `[{"name": "Serine", "short_name": "Ser", "abbreviation": "S", "side_chain": "Polar", "molecular_weight": 105.09, "codon": ["TCT", "TCC"]}]`
	require.NoError(t, os.WriteFile(path, []byte(serine), 0644))

	require.Eventually(t, func() bool {
		_, ok := c.Find("serine")
		return ok
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(`[{"name": `), 0644))

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.DatasetReloadsTotal.WithLabelValues(observability.ReloadFailure)) >= 1
	}, 5*time.Second, 20*time.Millisecond)

	_, ok := c.Find("serine")
	assert.True(t, ok, "malformed rewrite must not replace the active table")
}
