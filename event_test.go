package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventTypeString(t *testing.T) {
	tests := []struct {
		name string
		typ  EventType
		want string
	}{
		{name: "data", typ: EventData, want: "DATA"},
		{name: "connect", typ: EventConnect, want: "CONNECT"},
		{name: "disconnect", typ: EventDisconnect, want: "DISCONNECT"},
		{name: "error", typ: EventError, want: "ERROR"},
		{name: "out of range", typ: EventType(42), want: "UNKNOWN"},
		{name: "negative", typ: EventType(-1), want: "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.typ.String())
		})
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		want  string
	}{
		{name: "debug", level: LevelDebug, want: "DEBUG"},
		{name: "info", level: LevelInfo, want: "INFO"},
		{name: "warn", level: LevelWarn, want: "WARN"},
		{name: "out of range", level: Level(9), want: "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestEventLen(t *testing.T) {
	assert.Equal(t, 0, Event{}.Len())
	assert.Equal(t, 3, Event{Data: []byte("abc")}.Len())
}
