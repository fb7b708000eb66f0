package logger

import (
	"path/filepath"
	"testing"

	"github.com/MirrorChyan/ota-backend/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetLevel(t *testing.T) {
	testCases := []struct {
		Level    string
		Expected zap.AtomicLevel
	}{
		{Level: "debug", Expected: zap.NewAtomicLevelAt(zap.DebugLevel)},
		{Level: "warn", Expected: zap.NewAtomicLevelAt(zap.WarnLevel)},
		{Level: "error", Expected: zap.NewAtomicLevelAt(zap.ErrorLevel)},
		{Level: "verbose", Expected: zap.NewAtomicLevelAt(zap.InfoLevel)},
	}

	for _, tc := range testCases {
		t.Run(tc.Level, func(t *testing.T) {
			require.Equal(t, tc.Expected.Level(), getLevel(tc.Level))
		})
	}
}

func TestNewWithFile(t *testing.T) {
	conf := &config.Config{}
	conf.Log.Level = "debug"
	conf.Log.File = filepath.Join(t.TempDir(), "ota.log")
	conf.Log.MaxSize = 1

	l := New(conf)
	require.True(t, l.Core().Enabled(zap.DebugLevel))
	l.Info("hello")

	SetLevel("error")
	require.False(t, l.Core().Enabled(zap.InfoLevel))
	require.FileExists(t, conf.Log.File)
}
