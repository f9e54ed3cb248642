package relay

// state is the processor's mode flag. It is not a strict progression:
// Running and Stopped are both reachable from each other and from Idle,
// and there is no terminal state.
type state int8

const (
	stateIdle state = iota
	stateRunning
	stateStopped
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "IDLE"
	case stateRunning:
		return "RUNNING"
	case stateStopped:
		return "STOPPED"
	default:
		return "UNKNOWN"
	}
}

// transition moves the processor to next. A transition to the current state
// is a no-op and fires no notification. Otherwise the log entry is emitted
// first, then the state is updated, then the state-change hook runs. That
// ordering is part of the observable contract.
func (p *Processor) transition(next state) {
	if p.state == next {
		return
	}

	old := p.state.String()
	p.logf(LevelInfo, "State change: %s -> %s", old, next)

	p.state = next

	if p.onStateChange != nil {
		p.onStateChange(old, next.String())
	}
}
