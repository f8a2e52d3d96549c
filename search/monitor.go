package search

import "github.com/poiesic/retrace/core"

// Monitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps during a search.
type Monitor interface {
	Start(query string)
	AfterCompile(query *Query)
	RowMatched(row *core.Row)
	Finish(sessions []*SessionResult)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)            {}
func (n *noopMonitor) AfterCompile(_ *Query)     {}
func (n *noopMonitor) RowMatched(_ *core.Row)    {}
func (n *noopMonitor) Finish(_ []*SessionResult) {}
