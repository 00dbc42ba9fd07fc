// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzokay

package lzokay

import (
	"errors"
	"fmt"
)

// Sentinel errors for decompression.
var (
	// ErrInputOverrun is returned when the compressed input ends before a complete
	// token or its payload, or when the stream is otherwise malformed.
	ErrInputOverrun = errors.New("input overrun")
	// ErrOutputOverrun is returned when the decoder would write past the output capacity.
	ErrOutputOverrun = errors.New("output overrun")
	// ErrInputNotConsumed is returned when the end marker is reached but input bytes remain.
	ErrInputNotConsumed = errors.New("input not consumed")

	// ErrLookbehindOverrun is returned when a back-reference points before the start
	// of the output. It is a form of ErrInputOverrun.
	ErrLookbehindOverrun = fmt.Errorf("lookbehind overrun: %w", ErrInputOverrun)
	// ErrBadEndMarker is returned when the end marker carries a length other than 3.
	ErrBadEndMarker = fmt.Errorf("malformed end marker: %w", ErrInputOverrun)

	// ErrOptionsRequired is returned when decompression is called with nil options
	// or a negative OutLen.
	ErrOptionsRequired = errors.New("options required: OutLen must be set")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than MaxInputSize bytes.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)

// ErrorKind classifies a decompression failure.
type ErrorKind uint8

// Decompression failure kinds.
const (
	// KindInputOverrun means truncated or corrupted compressed data.
	KindInputOverrun ErrorKind = iota + 1
	// KindOutputOverrun means the output capacity is too small.
	KindOutputOverrun
	// KindInputNotConsumed means bytes follow the end marker.
	KindInputNotConsumed
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindInputOverrun:
		return "InputOverrun"
	case KindOutputOverrun:
		return "OutputOverrun"
	case KindInputNotConsumed:
		return "InputNotConsumed"
	default:
		return "Unknown"
	}
}

// sentinel returns the package error matching the kind.
func (k ErrorKind) sentinel() error {
	switch k {
	case KindOutputOverrun:
		return ErrOutputOverrun
	case KindInputNotConsumed:
		return ErrInputNotConsumed
	default:
		return ErrInputOverrun
	}
}

// DecodeError describes where a decompression failed.
// It unwraps to one of ErrInputOverrun, ErrOutputOverrun or ErrInputNotConsumed.
type DecodeError struct {
	Kind      ErrorKind
	InputPos  int   // read cursor when the failure was detected
	OutputPos int   // bytes written before the failing step
	Err       error // detailed cause
}

// Error implements error.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("lzokay: %v (input offset %d, output offset %d)", e.Err, e.InputPos, e.OutputPos)
}

// Unwrap returns the detailed cause, which itself wraps the kind sentinel.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// KindOf reports the decode failure kind carried by err.
func KindOf(err error) (ErrorKind, bool) {
	var de *DecodeError
	if errors.As(err, &de) {
		return de.Kind, true
	}

	switch {
	case errors.Is(err, ErrOutputOverrun):
		return KindOutputOverrun, true
	case errors.Is(err, ErrInputNotConsumed):
		return KindInputNotConsumed, true
	case errors.Is(err, ErrInputOverrun):
		return KindInputOverrun, true
	}

	return 0, false
}

// newDecodeError wraps a decoder failure with the cursor positions.
func newDecodeError(err error, inPos, outPos int) *DecodeError {
	kind := KindInputOverrun
	switch {
	case errors.Is(err, ErrOutputOverrun):
		kind = KindOutputOverrun
	case errors.Is(err, ErrInputNotConsumed):
		kind = KindInputNotConsumed
	}

	if !errors.Is(err, kind.sentinel()) {
		err = fmt.Errorf("%w: %w", kind.sentinel(), err)
	}

	return &DecodeError{Kind: kind, InputPos: inPos, OutputPos: outPos, Err: err}
}
