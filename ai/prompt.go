package ai

import "fmt"

// instruction is the fixed template every Answerer implementation uses.
// The shape keeps answers scannable in a terminal report: one summary
// sentence, a handful of bullets, and a hard fallback phrase that
// classification can match exactly.
const instruction = `You are reviewing one prior conversation session to answer a question about it.

Rules:
- Begin with a single-sentence summary of what the session establishes about the question.
- Follow with up to 5 short bullet points of supporting detail, fewer if fewer exist.
- If the session contains nothing relevant to the question, reply with exactly: ` + NoInformationSentinel + `
- Do not speculate beyond what the session states. Be concise; never exceed a few hundred words.`

// BuildPrompt renders the user-message body handed to the chat model.
func BuildPrompt(sessionContent, question string) string {
	return fmt.Sprintf("Session transcript:\n\n%s\n\nQuestion: %s", sessionContent, question)
}

// Instruction returns the fixed system prompt.
func Instruction() string {
	return instruction
}
