package state

import (
	"sync/atomic"
)

// clock hands out strictly increasing sequence numbers for strokes.
type clock struct {
	counter uint64
}

func (c *clock) tick() uint64 {
	return atomic.AddUint64(&c.counter, 1)
}

func (c *clock) reset() {
	atomic.StoreUint64(&c.counter, 0)
}
