package transcript

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBody_UnmarshalJSON(t *testing.T) {
	t.Run("plain string", func(t *testing.T) {
		var b Body
		require.NoError(t, json.Unmarshal([]byte(`"hello world"`), &b))
		assert.False(t, b.IsBlocks())
		assert.Equal(t, "hello world", b.Text())
	})

	t.Run("block sequence", func(t *testing.T) {
		var b Body
		data := `[{"type":"text","text":"first"},{"type":"tool_use","text":""},{"type":"text","text":"second"}]`
		require.NoError(t, json.Unmarshal([]byte(data), &b))
		assert.True(t, b.IsBlocks())
		assert.Equal(t, "first second", b.Text())
	})

	t.Run("non-text blocks only", func(t *testing.T) {
		var b Body
		data := `[{"type":"tool_result","text":"ignored"},{"type":"thinking","text":"ignored"}]`
		require.NoError(t, json.Unmarshal([]byte(data), &b))
		assert.Equal(t, "", b.Text())
	})

	t.Run("invalid shape", func(t *testing.T) {
		var b Body
		assert.Error(t, json.Unmarshal([]byte(`42`), &b))
	})
}

func TestBody_Text(t *testing.T) {
	assert.Equal(t, "plain", PlainBody("plain").Text())
	assert.Equal(t, "a b", BlocksBody(
		Block{Kind: "text", Text: "a"},
		Block{Kind: "text", Text: "b"},
	).Text())
	assert.Equal(t, "", PlainBody("").Text())
}
