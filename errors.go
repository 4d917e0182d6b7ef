package hexcodec

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

var (
	// ErrMalformedHex indicates a hex string of odd length or with a character outside
	// [0-9a-fA-F]. Decoders return it wrapped in a *MalformedHexError.
	ErrMalformedHex = errors.New("hexcodec: malformed hex string")

	// ErrLengthMismatch indicates that a fixed-size buffer received a different number of
	// bytes than its conversion requires.
	ErrLengthMismatch = errors.New("hexcodec: length mismatch")

	// ErrNilIO indicates that NewReader/NewWriter was called with a nil io.Reader/io.Writer.
	ErrNilIO = errors.New("hexcodec: NewReader/NewWriter called with a nil io.Reader/io.Writer")

	// ErrAlreadyBuffered indicates that NewReader/NewWriter was called with an already-buffered
	// reader/writer, which would lead to unpredictable behavior and performance issues.
	ErrAlreadyBuffered = errors.New("hexcodec: reader or writer is already buffered")

	// ErrSizeTooSmall indicates a size conflict with bufio.
	ErrSizeTooSmall = errors.New("hexcodec: NewReaderSize with a size smaller than 16 conflict with bufio")

	// ErrBytesTooLong indicates a length prefix larger than MaxBytesLen.
	ErrBytesTooLong = errors.New("hexcodec: byte sequence exceeds maximum length")

	// ErrTrailingData is returned by UnmarshalBinaryGeneric when non-zero bytes are found
	// after the expected end of the data.
	ErrTrailingData = errors.New("hexcodec: non-zero trailing data found after decoding")

	// ErrTruncatedData indicates that the data ended before all expected bytes were read.
	ErrTruncatedData = errors.New("hexcodec: truncated data")

	// ErrUnexpectedKind indicates that the active deserializer held a value of a kind the
	// adapter cannot read (e.g. a JSON number where a hex string was expected).
	ErrUnexpectedKind = errors.New("hexcodec: unexpected value kind")
)

// MalformedHexError reports where a hex string stopped being valid.
type MalformedHexError struct {
	// Pos is the byte offset of the first invalid character, or -1 when the only
	// problem is an odd length.
	Pos int
	// Char is the offending character. Zero when Pos is -1.
	Char byte
}

func (e *MalformedHexError) Error() string {
	if e.Pos < 0 {
		return "hexcodec: malformed hex string: odd length"
	}
	return fmt.Sprintf("hexcodec: malformed hex string: invalid character %q at position %d", e.Char, e.Pos)
}

// Unwrap lets errors.Is(err, ErrMalformedHex) match.
func (e *MalformedHexError) Unwrap() error { return ErrMalformedHex }

// ConversionError carries the error returned by a conversion's FromBytes.
// The wrapped error is forwarded verbatim.
type ConversionError struct {
	Err error
}

func (e *ConversionError) Error() string {
	return "hexcodec: conversion failed: " + e.Err.Error()
}

func (e *ConversionError) Unwrap() error { return e.Err }

func lengthMismatch(got, want int) error {
	return errors.Wrapf(ErrLengthMismatch, "invalid length %d, expected byte array of length %d", got, want)
}
