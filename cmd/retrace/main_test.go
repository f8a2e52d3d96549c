package main

import (
	"testing"

	"github.com/poiesic/retrace/recall"
	"github.com/poiesic/retrace/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func searchFlags() []cli.Flag {
	return append([]cli.Flag{
		&cli.IntFlag{
			Name:    "sessions",
			Aliases: []string{"n"},
			Value:   search.DefaultSessionCount,
		},
		&cli.IntFlag{
			Name:    "messages",
			Aliases: []string{"m"},
			Value:   search.DefaultMessageCount,
		},
	}, aiFlags()...)
}

func TestSearchCommandFlags(t *testing.T) {
	flags := searchFlags()

	t.Run("sessions defaults to the search default", func(t *testing.T) {
		var sessionsFlag *cli.IntFlag
		for _, flag := range flags {
			if f, ok := flag.(*cli.IntFlag); ok && f.Name == "sessions" {
				sessionsFlag = f
				break
			}
		}
		require.NotNil(t, sessionsFlag)
		assert.Equal(t, search.DefaultSessionCount, sessionsFlag.Value)
		assert.Contains(t, sessionsFlag.Aliases, "n")
	})

	t.Run("messages defaults to the search default", func(t *testing.T) {
		var messagesFlag *cli.IntFlag
		for _, flag := range flags {
			if f, ok := flag.(*cli.IntFlag); ok && f.Name == "messages" {
				messagesFlag = f
				break
			}
		}
		require.NotNil(t, messagesFlag)
		assert.Equal(t, search.DefaultMessageCount, messagesFlag.Value)
	})

	t.Run("ai-host is env overridable", func(t *testing.T) {
		var hostFlag *cli.StringFlag
		for _, flag := range flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "ai-host" {
				hostFlag = f
				break
			}
		}
		require.NotNil(t, hostFlag)
		assert.Contains(t, hostFlag.EnvVars, "RETRACE_AI_HOST")
	})
}

func TestRecallCommandFlags(t *testing.T) {
	t.Run("question is required", func(t *testing.T) {
		app := &cli.App{
			Name: "retrace",
			Commands: []*cli.Command{
				{
					Name:   "recall",
					Action: func(c *cli.Context) error { return nil },
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:     "question",
							Aliases:  []string{"q"},
							Required: true,
						},
					},
				},
			},
		}

		err := app.Run([]string{"retrace", "recall", "abc1234x"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "question")
	})

	t.Run("timeout defaults to the recall default", func(t *testing.T) {
		flag := &cli.DurationFlag{
			Name:  "timeout",
			Value: recall.DefaultTimeout,
		}
		assert.Equal(t, recall.DefaultTimeout, flag.Value)
	})
}

func TestPathFlagEnvVars(t *testing.T) {
	cases := []struct {
		name   string
		envVar string
	}{
		{"log-dir", "RETRACE_LOG_DIR"},
		{"data-dir", "RETRACE_DATA_DIR"},
		{"session", "RETRACE_SESSION_ID"},
	}

	flags := []cli.Flag{
		&cli.StringFlag{Name: "log-dir", EnvVars: []string{"RETRACE_LOG_DIR"}},
		&cli.StringFlag{Name: "data-dir", EnvVars: []string{"RETRACE_DATA_DIR"}},
		&cli.StringFlag{Name: "session", EnvVars: []string{"RETRACE_SESSION_ID"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var found *cli.StringFlag
			for _, flag := range flags {
				if f, ok := flag.(*cli.StringFlag); ok && f.Name == tc.name {
					found = f
					break
				}
			}
			require.NotNil(t, found)
			assert.Contains(t, found.EnvVars, tc.envVar)
		})
	}
}

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "warn",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			t.Run(level, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, level := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(level, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}
