package event

import (
	"sync/atomic"

	"github.com/physgun/territory/parameter"
)

// Queue carries layout events from any number of producers to the single
// update cycle without locks. Producers claim a slot by CAS on the tail
// counter and mark it published once the write lands, so the consumer
// never observes a half-written event. When producers outrun the
// consumer the ring wraps and the oldest unread events are lost.
type Queue struct {
	events    [parameter.EventQueueSize]LayoutEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64
	tail      atomic.Uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push claims the next slot and publishes ev into it. Safe to call from
// any goroutine.
func (q *Queue) Push(ev LayoutEvent) {
	for {
		tail := q.tail.Load()
		if !q.tail.CompareAndSwap(tail, tail+1) {
			continue
		}

		idx := tail & parameter.EventBufferMask
		q.events[idx] = ev
		// The flag flips only after the slot holds the full event
		q.published[idx].Store(true)

		// On wrap, drag head forward so the consumer skips the
		// overwritten slots
		head := q.head.Load()
		if tail+1-head > parameter.EventQueueSize {
			q.head.CompareAndSwap(head, tail+1-parameter.EventQueueSize)
		}
		return
	}
}

// Consume drains every published event in FIFO order. Only the update
// cycle may call this; a slot whose producer has claimed but not yet
// published ends the drain early and is picked up next cycle.
func (q *Queue) Consume() []LayoutEvent {
	for {
		head := q.head.Load()
		tail := q.tail.Load()
		if tail == head {
			return nil
		}

		pending := tail - head
		if pending > parameter.EventQueueSize {
			pending = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		drained := make([]LayoutEvent, 0, pending)
		for i := uint64(0); i < pending; i++ {
			idx := (head + i) & parameter.EventBufferMask
			if !q.published[idx].Load() {
				break
			}
			drained = append(drained, q.events[idx])
			q.published[idx].Store(false)
		}

		if q.head.CompareAndSwap(head, head+uint64(len(drained))) {
			if len(drained) == 0 {
				return nil
			}
			return drained
		}
		// A concurrent wrap moved head; retry with fresh counters
	}
}

// Len reports how many events are waiting, at most the ring capacity.
// The counters race with producers, so treat the value as a hint.
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	if n := int(tail - head); n <= parameter.EventQueueSize {
		return n
	}
	return parameter.EventQueueSize
}
