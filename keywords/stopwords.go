package keywords

// extractionStopwords filters generic English words out of keyword
// extraction. Action verbs common in requests ("fix", "add", "check")
// are included because they carry no retrieval signal.
var extractionStopwords = map[string]bool{}

func init() {
	for _, w := range []string{
		// articles, prepositions, conjunctions
		"the", "a", "an", "is", "are", "was", "were", "be", "been", "being",
		"to", "for", "of", "in", "on", "at", "by", "with", "from", "as",
		"and", "or", "but", "if", "then", "else", "when", "where", "why",
		"how", "what", "which", "who", "whom", "whose",
		// pronouns
		"i", "me", "my", "mine", "we", "us", "our", "ours",
		"you", "your", "yours", "he", "him", "his", "she", "her", "hers",
		"it", "its", "they", "them", "their", "theirs",
		"this", "that", "these", "those",
		// generic verbs
		"do", "does", "did", "done", "doing",
		"have", "has", "had", "having",
		"get", "got", "getting", "gets",
		"make", "made", "making", "makes",
		"go", "went", "going", "goes", "gone",
		"take", "took", "taking", "takes", "taken",
		"come", "came", "coming", "comes",
		"see", "saw", "seeing", "sees", "seen",
		"know", "knew", "knowing", "knows", "known",
		"think", "thought", "thinking", "thinks",
		"want", "wanted", "wanting", "wants",
		"need", "needed", "needing", "needs",
		"try", "tried", "trying", "tries",
		"use", "used", "using", "uses",
		"find", "found", "finding", "finds",
		"give", "gave", "giving", "gives", "given",
		"tell", "told", "telling", "tells",
		"say", "said", "saying", "says",
		"let", "lets", "letting",
		"put", "puts", "putting",
		"keep", "kept", "keeping", "keeps",
		"begin", "began", "beginning", "begins", "begun",
		"seem", "seemed", "seeming", "seems",
		"leave", "left", "leaving", "leaves",
		"call", "called", "calling", "calls",
		"ask", "asked", "asking", "asks",
		"work", "worked", "working", "works",
		"look", "looked", "looking", "looks",
		// action verbs common in requests
		"fix", "fixed", "fixing", "fixes",
		"add", "added", "adding", "adds",
		"show", "showed", "showing", "shows", "shown",
		"check", "checked", "checking", "checks",
		"debug", "debugged", "debugging", "debugs",
		"run", "ran", "running", "runs",
		"start", "started", "starting", "starts",
		"stop", "stopped", "stopping", "stops",
		"open", "opened", "opening", "opens",
		"close", "closed", "closing", "closes",
		"read", "reading", "reads",
		"write", "wrote", "writing", "writes", "written",
		"create", "created", "creating", "creates",
		"delete", "deleted", "deleting", "deletes",
		"update", "updated", "updating", "updates",
		"change", "changed", "changing", "changes",
		"set", "setting", "sets",
		"move", "moved", "moving", "moves",
		"copy", "copied", "copying", "copies",
		"send", "sent", "sending", "sends",
		"remember", "remembered", "remembering", "remembers",
		"continue", "continued", "continuing", "continues",
		// modal verbs
		"can", "could", "will", "would", "shall", "should",
		"may", "might", "must",
		// adverbs
		"just", "also", "only", "still", "even", "again",
		"now", "then", "here", "there", "very", "really",
		"well", "back", "much", "more", "most", "less", "least",
		"off", "out", "up", "down", "away",
		// filler
		"please", "thanks", "thank", "help", "okay", "ok", "yes", "no",
		"maybe", "perhaps", "actually", "basically", "probably",
		// other common words
		"about", "after", "before", "between", "through", "during",
		"into", "over", "under", "above", "below",
		"some", "any", "all", "each", "every", "both", "few", "many",
		"other", "another", "such", "same", "different",
		"first", "last", "next", "new", "old", "good", "bad",
		"right", "wrong", "way", "thing", "things", "something",
		"anything", "nothing", "everything",
	} {
		extractionStopwords[w] = true
	}
}

// discoveryStopwords is the broader list used by co-occurrence discovery.
// Tech-generic and conversational vocabulary is filtered on top of the
// extraction list so discovered terms stay domain-specific.
var discoveryStopwords = map[string]bool{}

func init() {
	for w := range extractionStopwords {
		discoveryStopwords[w] = true
	}
	for _, w := range []string{
		"not", "one", "two", "three", "yet",
		// tech generic
		"file", "files", "code", "like", "line", "lines",
		"test", "tests", "testing", "error", "errors", "message", "messages",
		"result", "results", "value", "values", "data", "name", "names",
		"type", "types", "text", "time", "user", "users", "path", "paths",
		"search", "bash", "memory", "session", "sessions", "tool", "tools",
		"key", "keys", "summary", "full", "current", "output", "without",
		"format", "based", "via", "command", "commands", "setup", "mode",
		"system", "access", "calls", "process", "com", "www", "http", "https",
		"function", "functions", "method", "methods", "class", "object",
		"string", "strings", "number", "numbers", "list", "lists",
		"input", "response", "request", "query", "params", "args", "options",
		"config", "default", "true", "false", "null", "none", "return",
		"load", "save", "parse", "build", "generate", "extract", "convert",
		"handle", "execute", "implement", "import", "export", "module",
		"version", "example", "examples", "log", "logs", "print", "display",
		// conversation
		"question", "questions", "answer", "answers", "problem", "issue",
		"issues", "solution", "idea", "ideas",
		// generic adjectives
		"simple", "better", "best", "great", "nice", "fine", "easy",
		"hard", "difficult", "fast", "slow", "quick", "small", "large", "big",
		"long", "short", "high", "low", "empty", "available",
		"optional", "required", "relevant", "useful", "similar",
		// generic past forms
		"removed", "deleted", "moved", "defined",
		// generic nouns
		"words", "terms", "items", "elements", "parts",
		"design", "structure", "pattern", "patterns", "style", "styles",
		"docs", "documentation", "readme", "guide", "tutorial", "reference",
		// assistant-session generic
		"claude", "agent", "agents", "task", "tasks", "context", "prompt",
		"hint", "hints", "keyword", "keywords", "topics", "topic",
		"extraction", "architecture", "implementation", "workflow", "approach",
		"etc", "top", "native", "complex", "natural", "language", "matches",
		"primary", "multi", "control", "recommendation", "date", "filter",
		"auto", "pass", "flag", "dev",
	} {
		discoveryStopwords[w] = true
	}
}

// IsSearchStopword reports whether word carries no retrieval signal.
// Used by topic extraction to keep generic words out of topic lists.
func IsSearchStopword(word string) bool {
	return discoveryStopwords[word]
}
