package peer

// EventType enumerates the lifecycle notifications a Transport emits.
type EventType int

const (
	EventConnected EventType = iota + 1
	EventHandshakeComplete
	EventAddressDiscovered
	EventDisconnected
)

func (t EventType) String() string {
	switch t {
	case EventConnected:
		return "connected"
	case EventHandshakeComplete:
		return "handshake_complete"
	case EventAddressDiscovered:
		return "address_discovered"
	case EventDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Event is a lifecycle notification. Address is set for EventAddressDiscovered.
type Event struct {
	Type    EventType
	Address string
}
