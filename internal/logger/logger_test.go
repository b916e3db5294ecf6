package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_DefaultLevelIsInfo(t *testing.T) {
	t.Setenv("AURALOG_LOG_LEVEL", "")
	log := New("auralog")
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestNew_LevelFromEnv(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"ERROR":   zerolog.ErrorLevel,
		"verbose": zerolog.InfoLevel,
	}
	for env, want := range cases {
		t.Setenv("AURALOG_LOG_LEVEL", env)
		assert.Equal(t, want, New("auralog").GetLevel(), env)
	}
}
