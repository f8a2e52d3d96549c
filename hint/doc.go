// Package hint turns free-form natural language into a keyword search,
// surfacing past sessions that look related to what the user is doing
// right now. It extracts a handful of salient keywords and runs a
// topic-mode search with snippets suppressed.
package hint
