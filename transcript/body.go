package transcript

import (
	"encoding/json"
	"strings"
)

// Block is one typed content block inside a structured message body.
// Only blocks of kind "text" contribute indexable content; tool calls,
// tool results, and thinking blocks are carried but not extracted.
type Block struct {
	Kind string `json:"type"`
	Text string `json:"text"`
}

// Body is the content of one message. It is a tagged union: either a
// plain string or a sequence of typed blocks, depending on how the
// transcript writer serialized it.
type Body struct {
	plain  string
	blocks []Block
	tagged bool // true when the body was a block sequence
}

// PlainBody builds a plain-string body.
func PlainBody(text string) Body {
	return Body{plain: text}
}

// BlocksBody builds a block-sequence body.
func BlocksBody(blocks ...Block) Body {
	return Body{blocks: blocks, tagged: true}
}

// IsBlocks reports whether the body is a block sequence.
func (b Body) IsBlocks() bool {
	return b.tagged
}

// Text extracts the indexable text of the body. Plain bodies return
// their string unchanged; block bodies concatenate text-kind blocks
// with single-space separators.
func (b Body) Text() string {
	if !b.tagged {
		return b.plain
	}

	parts := make([]string, 0, len(b.blocks))
	for _, block := range b.blocks {
		if block.Kind != "text" {
			continue
		}
		if block.Text == "" {
			continue
		}
		parts = append(parts, block.Text)
	}
	return strings.Join(parts, " ")
}

// UnmarshalJSON accepts either a JSON string or a JSON array of blocks.
func (b *Body) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		*b = Body{plain: plain}
		return nil
	}

	var blocks []Block
	if err := json.Unmarshal(data, &blocks); err != nil {
		return err
	}
	*b = Body{blocks: blocks, tagged: true}
	return nil
}
