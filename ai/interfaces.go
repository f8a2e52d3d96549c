package ai

import "context"

// NoInformationSentinel is the exact phrase an Answerer emits when the
// session contains nothing relevant to the question. Recall classifies
// on it, so implementations must reproduce it verbatim.
const NoInformationSentinel = "NO RELEVANT INFORMATION"

// Answerer answers a question against one session's conversation.
// Implementations must be safe for concurrent use: recall invokes one
// call per session in parallel.
type Answerer interface {
	// Answer returns the model's response text. The response is either
	// a short summary with supporting bullets or NoInformationSentinel.
	// A returned error means the capability itself failed, not that the
	// session lacked information.
	Answer(ctx context.Context, sessionContent, question string) (string, error)
}
