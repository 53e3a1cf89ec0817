package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/marquee/pkg/logging"
)

func TestSetDefault(t *testing.T) {
	tl := logging.CaptureLoggingForTest(t)

	logging.Default().Warn().Str("path", "data.json").Msg("catalog unreadable")
	logging.FromContext(context.Background()).Debug().Msg("debug line")

	tl.AssertContains(t, "catalog unreadable")
	tl.AssertContains(t, "debug line")
	assert.Equal(t, 2, tl.Count())
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewNopLogger()
	assert.NotNil(t, logger)
	logger.Error().Msg("discarded")
}
