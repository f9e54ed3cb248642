package relay

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingHook tallies invocations per hook point.
type countingHook struct {
	admit       bool
	events      int
	filtered    int
	logs        int
	transitions int
}

func (h *countingHook) OnEvent(Event) { h.events++ }

func (h *countingHook) OnFilter(Event) bool {
	h.filtered++
	return h.admit
}

func (h *countingHook) OnLog(Level, string) { h.logs++ }

func (h *countingHook) OnStateChange(string, string) { h.transitions++ }

// capturingSlogHandler records every slog record it receives.
type capturingSlogHandler struct {
	records []slog.Record
}

func (h *capturingSlogHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *capturingSlogHandler) Handle(_ context.Context, r slog.Record) error {
	h.records = append(h.records, r)
	return nil
}

func (h *capturingSlogHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *capturingSlogHandler) WithGroup(string) slog.Handler { return h }

func TestSlogHandlerLevelMapping(t *testing.T) {
	capture := &capturingSlogHandler{}
	handler := SlogHandler(slog.New(capture))

	handler(LevelDebug, "debug message")
	handler(LevelInfo, "info message")
	handler(LevelWarn, "warn message")

	require.Len(t, capture.records, 3)
	assert.Equal(t, slog.LevelDebug, capture.records[0].Level)
	assert.Equal(t, "debug message", capture.records[0].Message)
	assert.Equal(t, slog.LevelInfo, capture.records[1].Level)
	assert.Equal(t, slog.LevelWarn, capture.records[2].Level)
}

func TestSlogHandlerNilLoggerUsesDefault(t *testing.T) {
	capture := &capturingSlogHandler{}
	prev := slog.Default()
	slog.SetDefault(slog.New(capture))
	defer slog.SetDefault(prev)

	SlogHandler(nil)(LevelInfo, "through the default")

	require.Len(t, capture.records, 1)
	assert.Equal(t, "through the default", capture.records[0].Message)
}

func TestLoggingHookAdmitsEverything(t *testing.T) {
	hook := LoggingHook()
	assert.True(t, hook.OnFilter(Event{Type: EventError}))
	assert.True(t, hook.OnFilter(Event{Type: EventData, Data: []byte{1}}))
}

func TestCompositeHookFansOut(t *testing.T) {
	first := &countingHook{admit: true}
	second := &countingHook{admit: true}
	hook := NewCompositeHook(first, second)

	hook.OnEvent(Event{Type: EventData})
	hook.OnLog(LevelInfo, "hello")
	hook.OnStateChange("IDLE", "RUNNING")
	assert.True(t, hook.OnFilter(Event{Type: EventData}))

	for _, h := range []*countingHook{first, second} {
		assert.Equal(t, 1, h.events)
		assert.Equal(t, 1, h.logs)
		assert.Equal(t, 1, h.transitions)
		assert.Equal(t, 1, h.filtered)
	}
}

func TestCompositeHookVetoShortCircuits(t *testing.T) {
	veto := &countingHook{admit: false}
	after := &countingHook{admit: true}
	hook := NewCompositeHook(veto, after)

	assert.False(t, hook.OnFilter(Event{Type: EventData}))
	assert.Equal(t, 1, veto.filtered)
	assert.Equal(t, 0, after.filtered, "members after a veto are not consulted")
}

func TestCompositeHookEmpty(t *testing.T) {
	hook := NewCompositeHook()
	assert.True(t, hook.OnFilter(Event{Type: EventData}))
	assert.NotPanics(t, func() {
		hook.OnEvent(Event{})
		hook.OnLog(LevelDebug, "x")
		hook.OnStateChange("IDLE", "RUNNING")
	})
}

func TestProcessorWithCompositeFilter(t *testing.T) {
	counting := &countingHook{admit: true}
	p, err := New(
		OnFilter(NewCompositeHook(counting, LoggingHook()).OnFilter),
	)
	require.NoError(t, err)
	defer p.Close()

	assert.True(t, p.Push(Event{Type: EventData}))
	assert.Equal(t, 1, p.QueueSize())
	assert.Equal(t, 1, counting.filtered)
}
