package ethbridge

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownEventKind is returned when decoding an unrecognised variant tag or name.
	ErrUnknownEventKind = errors.New("unknown ethereum event kind")
	// ErrTrailingBytes is returned when an encoding has bytes left after the event.
	ErrTrailingBytes = errors.New("trailing bytes after ethereum event")
	// ErrNilEvent is returned when encoding a nil event.
	ErrNilEvent = errors.New("nil ethereum event")
)

// AddressParseError reports text that is not "0x" followed by 40 hex digits.
type AddressParseError struct {
	Input string
	Err   error
}

func (e *AddressParseError) Error() string {
	return fmt.Sprintf("couldn't parse Ethereum address %q: %v", e.Input, e.Err)
}

func (e *AddressParseError) Unwrap() error {
	return e.Err
}

// EncodingError reports a failure while producing or consuming the
// canonical encoding of an event.
type EncodingError struct {
	Op  string
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("ethereum event %s: %v", e.Op, e.Err)
}

func (e *EncodingError) Unwrap() error {
	return e.Err
}
