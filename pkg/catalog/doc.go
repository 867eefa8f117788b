// Package catalog answers amino acid lookups by name.
//
// A Table is an immutable index built from one dataset snapshot: keys are
// lowercased names and, if a name repeats, the earliest record wins. Catalog
// loads a Table once at startup and serves every lookup from it without
// locking. Reload, Watch and ScheduleReload build a complete replacement
// Table and swap it in atomically; a source that fails to load or validate
// leaves the current Table in place.
//
//	c, err := catalog.New(catalog.Source{Path: path}, catalog.WithLogger(logger))
//	aa, ok := c.Find("ALANINE")
package catalog
