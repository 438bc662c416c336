package monitor

import "time"

// messageKind tags what a queued message carries.
type messageKind uint8

const (
	kindValue messageKind = iota
	kindShutdown
)

// message travels from the host to the render goroutine through the queue.
type message struct {
	kind  messageKind
	value float64
}

func valueMessage(v float64) message {
	return message{kind: kindValue, value: v}
}

func shutdownMessage() message {
	return message{kind: kindShutdown}
}

// tickMsg signals a render cycle.
type tickMsg time.Time
