// Package regsim is a simulated register bank for host builds and tests.
//
// Words start at zero (or at values set with Poke). Rules model hardware that
// reacts to writes: a status bit that follows an enable bit after a number of
// status reads, or a field that mirrors another field. Bits owned by a rule
// are read-only to Store. Every Load and Store is appended to the trace.
package regsim

import (
	"sync"

	"clockcode-go/regs"
)

// Never as a latency means the rule never fires (a stuck oscillator, a PLL
// that never locks).
const Never = -1

type Op uint8

const (
	Read Op = iota
	Write
)

func (o Op) String() string {
	if o == Write {
		return "W"
	}
	return "R"
}

// Access is one traced register access. Val is the value read or written.
type Access struct {
	Op  Op
	Off uint32
	Val uint32
}

type rule struct {
	src, dst uint32
	derive   func(v uint32) (mask, val uint32)
	latency  int

	pending   int
	mask, val uint32
}

// Bank implements regs.Bank.
type Bank struct {
	mu    sync.Mutex
	words map[uint32]uint32
	ro    map[uint32]uint32
	rules []*rule
	trace []Access
}

var _ regs.Bank = (*Bank)(nil)

func New() *Bank {
	return &Bank{
		words: make(map[uint32]uint32),
		ro:    make(map[uint32]uint32),
	}
}

func (b *Bank) Load(off uint32) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range b.rules {
		if r.dst != off || r.pending == 0 {
			continue
		}
		r.pending--
		if r.pending == 0 {
			b.apply(r)
		}
	}
	v := b.words[off]
	b.trace = append(b.trace, Access{Op: Read, Off: off, Val: v})
	return v
}

func (b *Bank) Store(off, v uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ro := b.ro[off]
	v = v&^ro | b.words[off]&ro
	b.words[off] = v
	b.trace = append(b.trace, Access{Op: Write, Off: off, Val: v})
	for _, r := range b.rules {
		if r.src != off {
			continue
		}
		mask, val := r.derive(v)
		if r.pending > 0 && r.mask == mask && r.val == val {
			continue
		}
		r.pending = 0
		if b.words[r.dst]&mask == val {
			continue
		}
		r.mask, r.val = mask, val
		switch {
		case r.latency == Never:
		case r.latency == 0:
			b.apply(r)
		default:
			r.pending = r.latency
		}
	}
}

func (b *Bank) apply(r *rule) {
	b.words[r.dst] = b.words[r.dst]&^r.mask | r.val
}

func (b *Bank) addRule(r *rule, roMask uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rules = append(b.rules, r)
	b.ro[r.dst] |= roMask
}

// Follow makes the ready bits at status track the enable bits at ctrl. After
// a write changes the enable state, the ready bits change on the latency-th
// subsequent read of status (0 means immediately on the write).
func (b *Bank) Follow(ctrl, enable, status, ready uint32, latency int) {
	b.addRule(&rule{
		src: ctrl,
		dst: status,
		derive: func(v uint32) (uint32, uint32) {
			if v&enable != 0 {
				return ready, ready
			}
			return ready, 0
		},
		latency: latency,
	}, ready)
}

// Mirror copies field from at src into field to at dst, with the same
// latency semantics as Follow.
func (b *Bank) Mirror(src uint32, from regs.Field, dst uint32, to regs.Field, latency int) {
	b.addRule(&rule{
		src: src,
		dst: dst,
		derive: func(v uint32) (uint32, uint32) {
			return to.Mask(), to.Put(0, from.Get(v))
		},
		latency: latency,
	}, to.Mask())
}

// Poke sets a word without tracing or read-only masking.
func (b *Bank) Poke(off, v uint32) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.words[off] = v
}

// Peek reads a word without tracing or advancing rules.
func (b *Bank) Peek(off uint32) uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.words[off]
}

// Trace returns a copy of the access log.
func (b *Bank) Trace() []Access {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Access(nil), b.trace...)
}

// Writes returns only the write accesses, in order.
func (b *Bank) Writes() []Access {
	var out []Access
	for _, a := range b.Trace() {
		if a.Op == Write {
			out = append(out, a)
		}
	}
	return out
}

func (b *Bank) ResetTrace() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.trace = b.trace[:0]
}
