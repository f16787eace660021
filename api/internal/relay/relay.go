// Package relay bridges the upstream generation iterator, whose Next call
// blocks on network I/O, into an ordered event channel the HTTP handler can
// range over while other requests keep flowing.
package relay

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/iterator"
)

// Kind tags a stream event.
type Kind int

const (
	// Fragment carries one piece of generated text.
	Fragment Kind = iota
	// End is the normal terminal; emitted exactly once, always last.
	End
	// Error is the failure terminal; mutually exclusive with End.
	Error
)

// Event is one item delivered to the stream consumer.
type Event struct {
	Kind Kind
	Text string // fragment text, or the error message for Error events
}

// PullFunc fetches the next chunk from the upstream iterator. It may block.
// End of stream is signalled by returning iterator.Done.
type PullFunc func() (string, error)

// Stream starts a producer goroutine that issues one pull at a time and
// forwards fragments in arrival order. The channel always closes after a
// single terminal event (End or Error), except when ctx is cancelled first,
// in which case no further pulls are issued and the channel just closes.
// Previously delivered fragments stay valid when a failure terminates the
// stream. A panicking pull is converted into an Error terminal.
func Stream(ctx context.Context, pull PullFunc) <-chan Event {
	out := make(chan Event, 16)

	go func() {
		defer close(out)
		for {
			if ctx.Err() != nil {
				return
			}
			text, err := safePull(pull)
			switch {
			case errors.Is(err, iterator.Done):
				emit(ctx, out, Event{Kind: End})
				return
			case err != nil:
				emit(ctx, out, Event{Kind: Error, Text: err.Error()})
				return
			}
			if text == "" {
				continue
			}
			if !emit(ctx, out, Event{Kind: Fragment, Text: text}) {
				return
			}
		}
	}()

	return out
}

// emit reports false when the consumer is gone. Cancellation wins over a
// ready buffer slot so a dead consumer never receives further events.
func emit(ctx context.Context, out chan<- Event, ev Event) bool {
	if ctx.Err() != nil {
		return false
	}
	select {
	case <-ctx.Done():
		return false
	case out <- ev:
		return true
	}
}

func safePull(pull PullFunc) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("generation panic: %v", r)
		}
	}()
	return pull()
}
