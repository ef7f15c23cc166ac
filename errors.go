package strmatch

import "errors"

// ErrInvalidPattern indicates that a pattern could not be compiled.
//
// It is wrapped in the value passed to panic, together with the pattern and
// the engine's error.
var ErrInvalidPattern = errors.New("invalid pattern")

// ErrNoDefault indicates that a rule set was built without a default
// producer.
var ErrNoDefault = errors.New("missing default producer")

// ErrNilProducer indicates that a rule was built with a nil producer.
var ErrNilProducer = errors.New("nil producer")
