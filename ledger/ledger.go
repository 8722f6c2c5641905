// Package ledger records item pickups off the game loop. Submissions are
// fire-and-forget; results come back through Drain in some later tick.
package ledger

import (
	"errors"

	"github.com/yohamta/donburi"
)

var (
	ErrClosed           = errors.New("ledger closed")
	ErrAlreadyCollected = errors.New("item already collected")
)

// Pickup is the "item picked up" notification.
type Pickup struct {
	Kind   string
	ItemID string
	Entity donburi.Entity
}

// Result reports the outcome of one Pickup. A nil Err is a confirmation.
type Result struct {
	Pickup Pickup
	Err    error
}

// Ledger accepts pickups without blocking the caller.
type Ledger interface {
	// Submit queues p and reports whether it was accepted.
	Submit(p Pickup) bool
	// Drain returns every result produced since the last call, non-blocking.
	Drain() []Result
	// Collected reports whether itemID was recorded in an earlier session.
	Collected(itemID string) bool
	Close() error
}

// Nop confirms every pickup immediately and stores nothing.
type Nop struct {
	pending []Result
}

func (n *Nop) Submit(p Pickup) bool {
	n.pending = append(n.pending, Result{Pickup: p})
	return true
}

func (n *Nop) Drain() []Result {
	out := n.pending
	n.pending = nil
	return out
}

func (n *Nop) Collected(string) bool { return false }

func (n *Nop) Close() error { return nil }

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
