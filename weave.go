/*
Package weave combines pairs of raster images into a single composite
whose pixel columns alternate between the two sources.
*/
package weave

import "log"

type Weaver struct {
	db     *CompositeDB
	logger *log.Logger
}

// New returns a Weaver backed by the composite cache at file. Passing
// an empty path disables the cache and every composite is rendered
// from scratch.
func New(file string, logger *log.Logger) (*Weaver, error) {
	w := &Weaver{
		logger: logger,
	}

	if file != "" {
		db, err := NewCompositeDB(file)
		if err != nil {
			return nil, err
		}
		w.db = db
	}

	return w, nil
}

func (w *Weaver) Close() error {
	if w.db == nil {
		return nil
	}
	return w.db.Close()
}
