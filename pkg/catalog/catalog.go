package catalog

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/platinummonkey/aminoapi/pkg/aminoacid"
	"github.com/platinummonkey/aminoapi/pkg/dataset"
	"github.com/platinummonkey/aminoapi/pkg/observability"
)

var (
	// ErrNotLoaded is reported by the health check before the first successful load
	ErrNotLoaded = errors.New("dataset not loaded")

	// ErrNotWatchable is returned by Watch for the embedded dataset
	ErrNotWatchable = errors.New("dataset source is not a file")
)

// Source locates the dataset. An empty Path selects the embedded dataset.
type Source struct {
	Path string
}

// Load reads the full dataset from the source
func (s Source) Load() ([]aminoacid.AminoAcid, error) {
	if s.Path == "" {
		return dataset.Default()
	}
	return dataset.Load(s.Path)
}

func (s Source) String() string {
	if s.Path == "" {
		return "embedded"
	}
	return s.Path
}

// Catalog serves lookups from the most recently loaded Table
type Catalog struct {
	source  Source
	logger  *observability.Logger
	metrics *observability.Metrics
	watch   watchOptions

	table atomic.Pointer[Table]
}

// Option configures a Catalog
type Option func(*Catalog)

// WithLogger sets the logger used for load and reload events
func WithLogger(logger *observability.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// WithMetrics records lookups and loads in metrics
func WithMetrics(metrics *observability.Metrics) Option {
	return func(c *Catalog) {
		c.metrics = metrics
	}
}

// New loads the dataset once. A load failure is returned and no Catalog is built.
func New(source Source, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		source: source,
		watch:  defaultWatchOptions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = observability.NewLogger(observability.InfoLevel, nil)
	}
	c.logger = c.logger.WithField("dataset", source.String())

	if err := c.Reload(); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload re-reads the source and swaps in a new table. On failure the
// current table is kept and the error returned.
func (c *Catalog) Reload() error {
	records, err := c.source.Load()
	c.metrics.ObserveDataset(len(records), err)
	if err != nil {
		if c.table.Load() != nil {
			c.logger.WithError(err).Error("Dataset reload failed, keeping previous table")
		}
		return err
	}

	if dups := dataset.Duplicates(records); len(dups) > 0 {
		c.logger.WithField("duplicates", dups).Warn("Dataset contains duplicate names; first occurrence wins")
	}

	c.table.Store(NewTable(records))
	c.logger.WithField("records", len(records)).Info("Dataset loaded")
	return nil
}

// Find looks up a record by name, ignoring case
func (c *Catalog) Find(key string) (aminoacid.AminoAcid, bool) {
	t := c.table.Load()
	if t == nil {
		c.metrics.ObserveLookup(false)
		return aminoacid.AminoAcid{}, false
	}
	aa, ok := t.Find(key)
	c.metrics.ObserveLookup(ok)
	return aa, ok
}

// All returns every record of the current table in dataset order
func (c *Catalog) All() []aminoacid.AminoAcid {
	if t := c.table.Load(); t != nil {
		return t.All()
	}
	return nil
}

// Len returns the record count of the current table
func (c *Catalog) Len() int {
	if t := c.table.Load(); t != nil {
		return t.Len()
	}
	return 0
}

// Ready reports whether a table has been loaded
func (c *Catalog) Ready() bool {
	return c.table.Load() != nil
}

// HealthCheck satisfies observability.CheckFunc
func (c *Catalog) HealthCheck(ctx context.Context) error {
	if !c.Ready() {
		return ErrNotLoaded
	}
	return nil
}
