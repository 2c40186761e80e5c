package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZerologLoggerMethods(t *testing.T) {
	assert.NoError(t, os.Setenv("APP_ENV", "dev"))
	defer func() { assert.NoError(t, os.Unsetenv("APP_ENV")) }()
	l := NewZerologLogger("test")
	if l == nil {
		t.Fatalf("nil logger")
	}
	l.Debugf("debug %d", 1)
	l.Debugw("debug", map[string]any{"k": 1})
	l.Infof("info %s", "test")
	l.Warnf("warn")
	l.Errorf("error")
}

func TestZerologLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLoggerWithWriter("generator", &buf, zerolog.DebugLevel)
	l.Debugw("resolved label", map[string]any{"label": "3LWT", "count": 14})

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "generator", rec["component"])
	assert.Equal(t, "3LWT", rec["label"])
	assert.Equal(t, float64(14), rec["count"])
	assert.Equal(t, "debug", rec["level"])
}

func TestZerologLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewZerologLoggerWithWriter("test", &buf, zerolog.WarnLevel)
	l.Infof("hidden")
	l.Warnf("shown")
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.True(t, strings.Contains(out, "shown"))
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	assert.Equal(t, zerolog.DebugLevel, levelFromEnv())
	t.Setenv("LOG_LEVEL", "nonsense")
	assert.Equal(t, zerolog.InfoLevel, levelFromEnv())
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Infof("nothing %d", 1)
	l.Debugw("nothing", nil)
}
