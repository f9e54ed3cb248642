package relay

// EventType tags an event with the kind of occurrence it describes.
type EventType int

const (
	// EventData carries an application payload.
	EventData EventType = iota
	// EventConnect signals that a producer came online.
	EventConnect
	// EventDisconnect signals that a producer went away.
	EventDisconnect
	// EventError signals a fault reported by a producer.
	EventError
)

// String returns the canonical name for the event type, or "UNKNOWN" for
// values outside the defined set.
func (et EventType) String() string {
	switch et {
	case EventData:
		return "DATA"
	case EventConnect:
		return "CONNECT"
	case EventDisconnect:
		return "DISCONNECT"
	case EventError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Event is one unit of work flowing through a processor: a type tag, an
// optional source label, and an optional opaque payload.
//
// Events handed to hooks are owned by the processor. Hooks must not retain
// Data past their own return; the backing array is the processor's private
// copy and is released as soon as the dispatch completes.
type Event struct {
	Type   EventType `json:"type"`
	Source string    `json:"source,omitempty"`
	Data   []byte    `json:"data,omitempty"`
}

// Len returns the payload size in bytes, 0 when the event carries none.
func (e Event) Len() int {
	return len(e.Data)
}

// Level classifies messages emitted through the log hook.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
)

// String returns the level name as it is handed to log hooks:
// "DEBUG", "INFO", or "WARN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	default:
		return "UNKNOWN"
	}
}
