// Package storage defines hierarchical keys for the bridge key/value store.
//
// A Key is an ordered list of segments joined by KeySeparator. Typed values
// that appear in keys implement KeySeg and provide a matching parse
// function that reports failures as *ParseKeySegError, so callers can tell
// a corrupt persisted key apart from bad user input.
package storage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// KeySeparator joins key segments.
const KeySeparator = "/"

// ErrParseKeySeg is matched by every *ParseKeySegError.
var ErrParseKeySeg = errors.New("error parsing key segment")

// ErrEmptyKey is returned when parsing an empty key string.
var ErrEmptyKey = errors.New("empty key")

// ParseKeySegError reports a key segment that could not be decoded into
// its typed value.
type ParseKeySegError struct {
	Segment string
	Err     error
}

func (e *ParseKeySegError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %q: %v", ErrParseKeySeg, e.Segment, e.Err)
	}
	return fmt.Sprintf("%s %q", ErrParseKeySeg, e.Segment)
}

func (e *ParseKeySegError) Unwrap() error {
	return e.Err
}

func (e *ParseKeySegError) Is(target error) bool {
	return target == ErrParseKeySeg
}

// DbKeySeg is a single segment as persisted.
type DbKeySeg string

func (s DbKeySeg) String() string {
	return string(s)
}

// KeySeg is implemented by values usable as a key segment.
type KeySeg interface {
	// Raw returns the segment's persisted string form.
	Raw() string
	// ToDBKey converts the value into a DbKeySeg.
	ToDBKey() DbKeySeg
}

// Key is a hierarchical storage key.
type Key struct {
	Segments []DbKeySeg
}

// NewKey builds a key from a root segment.
func NewKey(root string) Key {
	return Key{Segments: []DbKeySeg{DbKeySeg(root)}}
}

// ParseKey splits s into segments. It is the inverse of Key.String.
func ParseKey(s string) (Key, error) {
	if s == "" {
		return Key{}, ErrEmptyKey
	}
	parts := strings.Split(s, KeySeparator)
	segs := make([]DbKeySeg, len(parts))
	for i, p := range parts {
		if p == "" {
			return Key{}, &ParseKeySegError{Segment: s, Err: fmt.Errorf("empty segment at position %d", i)}
		}
		segs[i] = DbKeySeg(p)
	}
	return Key{Segments: segs}, nil
}

// Push returns a new key with seg appended. The receiver is not modified.
func (k Key) Push(seg KeySeg) Key {
	segs := make([]DbKeySeg, len(k.Segments), len(k.Segments)+1)
	copy(segs, k.Segments)
	return Key{Segments: append(segs, seg.ToDBKey())}
}

// Len returns the number of segments.
func (k Key) Len() int {
	return len(k.Segments)
}

// Segment returns the i-th segment, or false if out of range.
func (k Key) Segment(i int) (DbKeySeg, bool) {
	if i < 0 || i >= len(k.Segments) {
		return "", false
	}
	return k.Segments[i], true
}

// HasPrefix reports whether prefix's segments lead k's segments.
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix.Segments) > len(k.Segments) {
		return false
	}
	for i, s := range prefix.Segments {
		if k.Segments[i] != s {
			return false
		}
	}
	return true
}

// String joins the segments with KeySeparator.
func (k Key) String() string {
	parts := make([]string, len(k.Segments))
	for i, s := range k.Segments {
		parts[i] = string(s)
	}
	return strings.Join(parts, KeySeparator)
}

// Bytes returns the key as stored in the database.
func (k Key) Bytes() []byte {
	return []byte(k.String())
}

// PrefixBytes returns the byte prefix shared by every key under k.
func (k Key) PrefixBytes() []byte {
	return []byte(k.String() + KeySeparator)
}

// StringSeg is a plain string key segment.
type StringSeg string

func (s StringSeg) Raw() string {
	return string(s)
}

func (s StringSeg) ToDBKey() DbKeySeg {
	return DbKeySeg(s)
}

// Uint64Seg is a key segment holding a zero-padded decimal so that
// lexicographic key order matches numeric order.
type Uint64Seg uint64

func (s Uint64Seg) Raw() string {
	return fmt.Sprintf("%020d", uint64(s))
}

func (s Uint64Seg) ToDBKey() DbKeySeg {
	return DbKeySeg(s.Raw())
}

// ParseUint64Seg parses a segment produced by Uint64Seg.Raw.
func ParseUint64Seg(raw string) (Uint64Seg, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, &ParseKeySegError{Segment: raw, Err: err}
	}
	return Uint64Seg(v), nil
}
