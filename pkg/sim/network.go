package sim

import (
	"fmt"
	"math/rand"
	"time"
)

// Addr names an endpoint on the simulated network. The scenarios use
// dotted-quad strings for texture, but the network treats them as opaque.
type Addr string

// Datagram is one delivered frame with its sender address.
type Datagram struct {
	Payload []byte
	From    Addr
}

// NetworkConfig tunes the channel. LossRate is the probability a
// successfully transmitted frame is dropped in flight; PropagationDelay is
// the fixed latency from send to delivery. A nil Rand gets a fixed-seed
// source so runs stay reproducible by default.
type NetworkConfig struct {
	PropagationDelay time.Duration
	LossRate         float64
	Rand             *rand.Rand
}

// Network is the unreliable datagram channel. Sends are fire-and-forget:
// Send reports only whether transmission was accepted, delivery may still be
// lost.
type Network struct {
	sched     *Scheduler
	cfg       NetworkConfig
	endpoints map[Addr]*Endpoint
}

func NewNetwork(sched *Scheduler, cfg NetworkConfig) *Network {
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(1))
	}
	return &Network{
		sched:     sched,
		cfg:       cfg,
		endpoints: make(map[Addr]*Endpoint),
	}
}

// Bind claims an address and returns its endpoint.
func (n *Network) Bind(addr Addr) (*Endpoint, error) {
	if addr == "" {
		return nil, fmt.Errorf("bind: empty address")
	}
	if _, taken := n.endpoints[addr]; taken {
		return nil, fmt.Errorf("bind: address %s already in use", addr)
	}
	ep := &Endpoint{net: n, addr: addr}
	n.endpoints[addr] = ep
	return ep, nil
}

// Endpoint is one bound address: an inbox plus an optional receive callback
// invoked at delivery ticks.
type Endpoint struct {
	net      *Network
	addr     Addr
	inbox    []Datagram
	closed   bool
	receiver func()
}

func (e *Endpoint) Addr() Addr { return e.addr }

// SetReceiver registers fn to run whenever a frame lands in the inbox. The
// callback is expected to drain the whole batch; a wake with an already
// empty inbox is harmless.
func (e *Endpoint) SetReceiver(fn func()) { e.receiver = fn }

// Send transmits payload toward to. It returns false, without queueing
// anything, when this endpoint is closed or the destination was never
// bound. A true result means the frame entered the channel; it may still be
// lost in flight or arrive after the destination closed, in which case it
// is silently discarded.
func (e *Endpoint) Send(to Addr, payload []byte) bool {
	if e.closed {
		return false
	}
	dst, ok := e.net.endpoints[to]
	if !ok {
		return false
	}

	if e.net.cfg.LossRate > 0 && e.net.cfg.Rand.Float64() < e.net.cfg.LossRate {
		return true // sent, never delivered
	}

	frame := append([]byte(nil), payload...)
	from := e.addr
	e.net.sched.Schedule(e.net.cfg.PropagationDelay, func() {
		dst.deliver(Datagram{Payload: frame, From: from})
	})
	return true
}

func (e *Endpoint) deliver(d Datagram) {
	if e.closed {
		return
	}
	e.inbox = append(e.inbox, d)
	if e.receiver != nil {
		e.receiver()
	}
}

// ReceiveBatch drains and returns every pending datagram, oldest first.
func (e *Endpoint) ReceiveBatch() []Datagram {
	batch := e.inbox
	e.inbox = nil
	return batch
}

// Close releases the endpoint. Pending inbox frames are discarded and later
// deliveries are dropped. Idempotent.
func (e *Endpoint) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.inbox = nil
}
