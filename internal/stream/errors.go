package stream

import "fmt"

type StreamError struct {
	Kind    string
	Message string
}

func (e StreamError) Error() string {
	return fmt.Sprintf("stream error (%v): %v", e.Kind, e.Message)
}

// ErrStreamClosed is returned by Put when the receiving end has already
// closed the stream — the "stream closed" error kind from spec.md §7.
var ErrStreamClosed = StreamError{
	Kind:    "StreamClosed",
	Message: "put on a stream whose consumer is gone",
}
