// Package openai implements the answering capability against any
// OpenAI-compatible chat API (Ollama, LocalAI, vLLM, OpenAI itself).
package openai
