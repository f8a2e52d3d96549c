package recall

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/poiesic/retrace/core"
	"github.com/poiesic/retrace/store"
)

// MinPrefixLength is the shortest session id prefix resolution accepts.
// Report short ids are 8 characters, so anything pasted from a report
// resolves; 7 keeps hand-trimmed ids workable.
const MinPrefixLength = 7

// sessionInfo is what resolution learns about each indexed session.
type sessionInfo struct {
	id       core.SessionID
	earliest time.Time
}

// resolve maps each prefix to the first indexed session id carrying it,
// in index order, and records the session's earliest row timestamp for
// report dates. Any unresolvable prefix aborts the whole call before
// dispatch, naming the offender.
func resolve(ctx context.Context, index store.IndexStore, prefixes []string) ([]sessionInfo, error) {
	for _, prefix := range prefixes {
		if len(prefix) < MinPrefixLength {
			return nil, fmt.Errorf("%w: %q (need at least %d characters)",
				ErrPrefixTooShort, prefix, MinPrefixLength)
		}
	}

	// One pass over the store: session ids in first-appearance order
	// with their earliest timestamps.
	var order []core.SessionID
	earliest := make(map[core.SessionID]time.Time)
	err := index.Scan(ctx, func(r *core.Row) error {
		if _, ok := earliest[r.SessionID]; !ok {
			order = append(order, r.SessionID)
			earliest[r.SessionID] = r.Timestamp
		} else if r.Timestamp.Before(earliest[r.SessionID]) {
			earliest[r.SessionID] = r.Timestamp
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resolved := make([]sessionInfo, 0, len(prefixes))
	seen := make(map[core.SessionID]bool)
	for _, prefix := range prefixes {
		var match core.SessionID
		for _, id := range order {
			if strings.HasPrefix(string(id), prefix) {
				match = id
				break
			}
		}
		if match == "" {
			return nil, fmt.Errorf("%w: %q", ErrUnresolvedSession, prefix)
		}
		if seen[match] {
			continue
		}
		seen[match] = true
		resolved = append(resolved, sessionInfo{id: match, earliest: earliest[match]})
	}

	return resolved, nil
}
