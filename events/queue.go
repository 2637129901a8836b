package events

import "github.com/lixenwraith/alien-invasion/constants"

// EventQueue is a fixed-capacity FIFO ring buffer for game events
// Single execution context: producers and the consumer run on the game loop goroutine
//
// Overflow: Oldest events overwritten when full, counted in Dropped
type EventQueue struct {
	events  [constants.EventQueueSize]GameEvent
	head    uint64 // Read index
	tail    uint64 // Write index
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, overwriting the oldest one when full
func (eq *EventQueue) Push(event GameEvent) {
	eq.events[eq.tail&constants.EventBufferMask] = event
	eq.tail++
	if eq.tail-eq.head > constants.EventQueueSize {
		eq.head = eq.tail - constants.EventQueueSize
		eq.dropped++
	}
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	n := eq.tail - eq.head
	if n == 0 {
		return nil
	}
	result := make([]GameEvent, 0, n)
	for i := eq.head; i < eq.tail; i++ {
		result = append(result, eq.events[i&constants.EventBufferMask])
	}
	eq.head = eq.tail
	return result
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	return int(eq.tail - eq.head)
}

// Dropped returns how many events were overwritten before consumption
func (eq *EventQueue) Dropped() uint64 {
	return eq.dropped
}
