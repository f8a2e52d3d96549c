package search

import (
	"testing"

	"github.com/poiesic/retrace/normalize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compileQuery(t *testing.T, raw string) *Query {
	t.Helper()
	q, err := Compile(raw, normalize.New())
	require.NoError(t, err)
	return q
}

func normalized(t *testing.T, text string) string {
	t.Helper()
	return normalize.New().Normalize(text)
}

func TestCompile_EmptyQuery(t *testing.T) {
	_, err := Compile("", normalize.New())
	assert.ErrorIs(t, err, ErrEmptyQuery)

	_, err = Compile("   ", normalize.New())
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestCompile_Modes(t *testing.T) {
	simple := compileQuery(t, "browser automation cache")
	assert.False(t, simple.Strict)
	assert.Len(t, simple.Groups, 3)

	strict := compileQuery(t, "chrome|browser automation|workflow")
	assert.True(t, strict.Strict)
	assert.Len(t, strict.Groups, 2)
	assert.Len(t, strict.Terms, 4)
}

func TestCompile_WeightsDescendByPosition(t *testing.T) {
	q := compileQuery(t, "first second third")
	require.Len(t, q.Terms, 3)
	assert.Greater(t, q.Terms[0].Weight, q.Terms[1].Weight)
	assert.Greater(t, q.Terms[1].Weight, q.Terms[2].Weight)
	// One hit on an earlier term outweighs all later terms combined.
	assert.Greater(t, q.Terms[0].Weight, q.Terms[1].Weight+q.Terms[2].Weight)
}

func TestQuery_StrictSemantics(t *testing.T) {
	// Matches iff (a OR b) AND c.
	q := compileQuery(t, "apple|banana cherry")

	assert.True(t, q.Matches(normalized(t, "an apple and a cherry")))
	assert.True(t, q.Matches(normalized(t, "banana cherry smoothie")))
	assert.False(t, q.Matches(normalized(t, "just an apple today")))
	assert.False(t, q.Matches(normalized(t, "cherry pie only")))
}

func TestQuery_SimpleSemantics(t *testing.T) {
	q := compileQuery(t, "apple banana cherry")

	assert.True(t, q.Matches(normalized(t, "only banana here")))
	assert.False(t, q.Matches(normalized(t, "nothing fruity at all")))
}

func TestQuery_PhraseIsLiteral(t *testing.T) {
	q := compileQuery(t, "reset_windows")

	assert.True(t, q.Matches(normalized(t, "please reset windows after the update")))
	assert.False(t, q.Matches(normalized(t, "reset the terminal")))
	assert.False(t, q.Matches(normalized(t, "all windows are open")))
	assert.False(t, q.Matches(normalized(t, "windows reset order is wrong")))
}

func TestQuery_MatchesInflectedForms(t *testing.T) {
	// Index text and query both normalize, so "ran" finds "running".
	q := compileQuery(t, "ran")
	assert.True(t, q.Matches(normalized(t, "the job is running now")))
	assert.True(t, q.Matches(normalized(t, "we run it daily")))
}

func TestQuery_WordBoundary(t *testing.T) {
	q := compileQuery(t, "cat")
	assert.True(t, q.Matches(normalized(t, "the cat sat")))
	assert.False(t, q.Matches(normalized(t, "concatenate the files")))
}

func TestTerm_Count(t *testing.T) {
	q := compileQuery(t, "deploy")
	text := normalized(t, "deploy then deploy again and deployed once more")
	assert.Equal(t, 3, q.Terms[0].Count(text))
}
