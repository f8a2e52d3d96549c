package ingest

import "errors"

// ErrNilSource indicates a Builder was constructed without a transcript source.
var ErrNilSource = errors.New("transcript source is nil")

// ErrNilIndex indicates a Builder was constructed without an index store.
var ErrNilIndex = errors.New("index store is nil")
