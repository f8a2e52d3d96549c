package recall

import "errors"

var (
	// ErrNoSessions is returned when recall is invoked without session ids.
	ErrNoSessions = errors.New("no session ids given")

	// ErrEmptyQuestion is returned when recall is invoked without a question.
	ErrEmptyQuestion = errors.New("question must not be empty")

	// ErrPrefixTooShort is returned for a session id prefix below the
	// resolvable minimum.
	ErrPrefixTooShort = errors.New("session id prefix too short")

	// ErrUnresolvedSession is returned when a prefix matches no indexed
	// session. Resolution fails before any dispatch.
	ErrUnresolvedSession = errors.New("session id not found in index")

	// ErrAnswererRequired is returned when no answering capability is wired.
	ErrAnswererRequired = errors.New("answerer required")

	// ErrContentRequired is returned when no session content provider is wired.
	ErrContentRequired = errors.New("session content provider required")

	// ErrIndexRequired is returned when no index store is wired.
	ErrIndexRequired = errors.New("index store required")
)
