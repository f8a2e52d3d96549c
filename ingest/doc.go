// Package ingest builds the append-only index from transcript sources.
// A full build scans every unit; an incremental update only scans units
// modified after the last build checkpoint. Rows that are sub-agent
// chatter, tool markup, or otherwise noise never reach the index.
package ingest
