package peer

import (
	"context"
	"errors"

	"github.com/looplab/fsm"
)

// State is the lifecycle state of a Node.
type State string

const (
	StateConnecting        State = "connecting"
	StateConnected         State = "connected"
	StateHandshakeComplete State = "handshake_complete"
	StateDisconnected      State = "disconnected"
)

const (
	fsmEventConnect    = "connect"
	fsmEventHandshake  = "handshake"
	fsmEventDisconnect = "disconnect"
)

// Node is a tracked remote node: its transport plus lifecycle state.
type Node struct {
	id        uint64
	transport Transport
	state     *fsm.FSM
}

func newNode(id uint64, transport Transport) *Node {
	return &Node{
		id:        id,
		transport: transport,
		state: fsm.NewFSM(
			string(StateConnecting),
			fsm.Events{
				{
					Name: fsmEventConnect,
					Src:  []string{string(StateConnecting)},
					Dst:  string(StateConnected),
				},
				{
					Name: fsmEventHandshake,
					Src:  []string{string(StateConnecting), string(StateConnected)},
					Dst:  string(StateHandshakeComplete),
				},
				{
					Name: fsmEventDisconnect,
					Src:  []string{string(StateConnecting), string(StateConnected), string(StateHandshakeComplete)},
					Dst:  string(StateDisconnected),
				},
			},
			fsm.Callbacks{},
		),
	}
}

func (n *Node) ID() uint64 {
	return n.id
}

func (n *Node) Address() string {
	return n.transport.Address()
}

func (n *Node) Transport() Transport {
	return n.transport
}

func (n *Node) State() State {
	return State(n.state.Current())
}

// Active reports whether the node completed its handshake and is still connected.
func (n *Node) Active() bool {
	return n.state.Is(string(StateHandshakeComplete)) && n.transport.Connected()
}

// transition applies event. Repeated or out-of-order notifications are not errors.
func (n *Node) transition(event string) error {
	err := n.state.Event(context.Background(), event)
	var noTransition fsm.NoTransitionError
	var invalid fsm.InvalidEventError
	if err == nil || errors.As(err, &noTransition) || errors.As(err, &invalid) {
		return nil
	}
	return err
}
