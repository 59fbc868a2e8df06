// Package agent implements the three pipeline roles: sensors that transmit
// periodic readings, relays that pass frames through zone by zone, and
// collectors that decode and aggregate. The scenario driver holds agents by
// the Agent capability interface, never by concrete type.
package agent

// Agent is the lifecycle capability the external scheduler drives. Start is
// called once; Stop is idempotent and cancels any pending scheduled work.
type Agent interface {
	Start() error
	Stop()
}

// State tracks an agent's lifecycle. Sensors run Idle→Active→Stopped,
// collectors Idle→Listening→Stopped, relays Idle→Relaying→Stopped; Stopped
// is terminal for all of them.
type State int

const (
	StateIdle State = iota
	StateActive
	StateListening
	StateRelaying
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateListening:
		return "listening"
	case StateRelaying:
		return "relaying"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}
