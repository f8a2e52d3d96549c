package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoisePredicates(t *testing.T) {
	t.Run("tool markup", func(t *testing.T) {
		assert.True(t, IsToolMarkup("<command-name>/compact</command-name>"))
		assert.True(t, IsToolMarkup("output: <local-command-stdout>done</local-command-stdout>"))
		assert.True(t, IsToolMarkup("<system-reminder>note</system-reminder>"))
		assert.False(t, IsToolMarkup("we renamed the command-name field"))
	})

	t.Run("environment banner", func(t *testing.T) {
		assert.True(t, IsEnvironmentBanner("Caveat: the messages below were generated by the user"))
		assert.True(t, IsEnvironmentBanner("<env>Working directory: /tmp</env>"))
		assert.False(t, IsEnvironmentBanner("the staging environment is broken"))
	})

	t.Run("progress counter", func(t *testing.T) {
		assert.True(t, IsProgressCounter("[3/10] compiling"))
		assert.True(t, IsProgressCounter("Processed 10000 lines"))
		assert.False(t, IsProgressCounter("we processed the refund yesterday"))
	})

	t.Run("near empty", func(t *testing.T) {
		assert.True(t, IsNearEmpty("ok"))
		assert.True(t, IsNearEmpty("   yes   "))
		assert.False(t, IsNearEmpty("short but long enough"))
	})
}
