package log

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	ts := time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

	got := Format(ts, LevelWarn, CatTable, "Row measurement unavailable", "height", 1)

	require.Equal(t, "2026-01-02T15:04:05 [WARN] [table] Row measurement unavailable height=1", got)
}

func TestFormat_OddFields(t *testing.T) {
	got := Format(time.Time{}, LevelInfo, CatData, "loaded", "rows", 10, "source")

	require.Contains(t, got, "rows=10")
	require.Contains(t, got, "source=<missing>")
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}

func TestLog_WritesAndBuffers(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(func() { defaultLogger = nil })

	Info(CatData, "Dataset loaded", "rows", 10000)
	ErrorErr(CatData, "Load failed", errors.New("boom"))

	out := buf.String()
	require.Contains(t, out, "[INFO] [data] Dataset loaded rows=10000")
	require.Contains(t, out, "[ERROR] [data] Load failed error=boom")

	recent := GetRecentLogs(10)
	require.Len(t, recent, 2)
	require.Contains(t, recent[1], "Load failed")

	ClearBuffer()
	require.Empty(t, GetRecentLogs(10))
}

func TestLog_MinLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(func() { defaultLogger = nil })

	SetMinLevel(LevelWarn)
	Debug(CatUI, "hidden")
	Warn(CatUI, "shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestLog_Disabled(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(func() { defaultLogger = nil })

	SetEnabled(false)
	Error(CatUI, "dropped")

	require.Empty(t, buf.String())
}

func TestLog_RunID(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(func() { defaultLogger = nil })

	SetRunID("abc")
	Info(CatTrace, "Provider started")

	require.Contains(t, buf.String(), "run=abc")
}

func TestLog_RingIsBounded(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(func() { defaultLogger = nil })

	for i := 0; i < bufferSize+25; i++ {
		Debug(CatTable, "frame", "i", i)
	}

	recent := GetRecentLogs(bufferSize * 2)
	require.Len(t, recent, bufferSize)
	require.Contains(t, recent[len(recent)-1], "i=524")
}

func TestLog_NoLoggerIsNoop(t *testing.T) {
	defaultLogger = nil

	require.NotPanics(t, func() {
		Info(CatUI, "nothing")
		SetEnabled(true)
		SetMinLevel(LevelDebug)
		ClearBuffer()
	})
	require.Nil(t, GetRecentLogs(5))
	require.Nil(t, NewListener(context.Background()))
}

func TestNewListener_ReceivesEntries(t *testing.T) {
	var buf bytes.Buffer
	InitWriter(&buf)
	t.Cleanup(func() { defaultLogger = nil })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewListener(ctx)
	require.NotNil(t, listener)

	Warn(CatWatcher, "Data file removed")

	msg := listener.Listen()()
	event, ok := msg.(LogEvent)
	require.True(t, ok)
	require.Contains(t, event.Payload, "Data file removed")
}

func TestInit_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	cleanup, err := Init(path)
	require.NoError(t, err)
	t.Cleanup(func() { defaultLogger = nil })

	Info(CatConfig, "Config loaded")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[config] Config loaded")
}
