package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	defaultLogger.SetOutput(&buf)
	t.Cleanup(func() {
		defaultLogger.SetOutput(os.Stdout)
		defaultLogger.SetLevel(logrus.InfoLevel)
	})
	return &buf
}

func TestSetLevel(t *testing.T) {
	captureOutput(t)

	assert.NoError(t, SetLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, defaultLogger.GetLevel())
	assert.Error(t, SetLevel("loud"))
	assert.Equal(t, logrus.DebugLevel, defaultLogger.GetLevel())
}

func TestDebugFollowsLevel(t *testing.T) {
	buf := captureOutput(t)

	Debug("hidden")
	assert.Zero(t, buf.Len())

	require.NoError(t, SetLevel("debug"))
	Debug("shown")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
}

func TestWithCarriesFields(t *testing.T) {
	buf := captureOutput(t)

	With(logrus.Fields{"city": "Pune"}).Info("cached history")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Pune", entry["city"])
	assert.Equal(t, "cached history", entry["msg"])
}
