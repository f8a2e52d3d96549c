package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Deterministic(t *testing.T) {
	n := New()
	text := "We Fixed the Browser-Automation bug, running tests"
	assert.Equal(t, n.Normalize(text), n.Normalize(text))
}

func TestNormalize_Irregulars(t *testing.T) {
	n := New()

	tests := []struct {
		in   string
		want string
	}{
		{"ran", "run"},
		{"run", "run"},
		{"running", "run"},
		{"was", "be"},
		{"wrote", "write"},
		{"children", "child"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, n.Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNormalize_StemsSharedForms(t *testing.T) {
	n := New()
	// Different inflections of the same word must land on the same token.
	assert.Equal(t, n.Normalize("deployment"), n.Normalize("deployments"))
	assert.Equal(t, n.Normalize("ran"), n.Normalize("run"))
	assert.Equal(t, n.Normalize("testing"), n.Normalize("tested"))
}

func TestNormalize_TokenBoundaries(t *testing.T) {
	n := New()
	assert.Equal(t, "fix the webhook handler", n.Normalize("Fix: the webhook-handler!"))
}

func TestNormalize_Synonyms(t *testing.T) {
	n := New()
	assert.Equal(t, n.Normalize("repository"), n.Normalize("repo"))

	custom := New(WithSynonyms(map[string]string{"gw": "gateway"}))
	assert.Equal(t, custom.Normalize("gateway"), custom.Normalize("gw"))
}

func TestNormalize_NonASCIIPassthrough(t *testing.T) {
	n := New()
	assert.Equal(t, "飞书 sync", n.Normalize("飞书 syncs"))
}

func TestNormalizeTerm_UnderscorePhrase(t *testing.T) {
	n := New()
	// An underscore-joined term is one literal phrase; its words
	// normalize individually and keep their order.
	assert.Equal(t, n.Normalize("reset windows"), n.NormalizeTerm("reset_windows"))
}

func TestTokenize(t *testing.T) {
	assert.Equal(t, []string{"a", "b2", "c"}, Tokenize("a.b2|c"))
	assert.Empty(t, Tokenize("..."))
}
