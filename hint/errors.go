package hint

import "errors"

// ErrSearcherRequired is returned when NewHinter is given a nil searcher.
var ErrSearcherRequired = errors.New("searcher is required")
