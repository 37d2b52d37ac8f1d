package protocol

import (
	"encoding/binary"
	"fmt"
)

// Frame constants.
const (
	// LengthSize is the size of the length prefix in bytes.
	LengthSize = 4

	// ErrorSentinel is the little-endian reading of the bytes "Unex", the
	// start of the error text the server emits in place of a frame when
	// streaming fails mid-response ("Unexpected ..."). It is a fixed
	// protocol constant, not a plausibility check on lengths.
	ErrorSentinel uint32 = 0x78656e55
)

// Range locates one record payload inside a response buffer.
type Range struct {
	Offset int // byte offset of the payload, past the length prefix
	Length int // payload length in bytes
}

// End returns the offset one past the last payload byte.
func (r Range) End() int { return r.Offset + r.Length }

// StreamError reports an in-band failure: the server replaced the rest of
// the stream with a UTF-8 error message.
type StreamError struct {
	Message string
}

func (e *StreamError) Error() string {
	return "protocol: stream error: " + e.Message
}

// FramingError reports a malformed stream: a truncated length prefix or a
// declared payload length that overruns the buffer.
type FramingError struct {
	Offset    int // buffer position where the violation was detected
	Declared  int // declared payload length, -1 for a truncated prefix
	Remaining int // bytes left past the prefix at Offset
}

func (e *FramingError) Error() string {
	if e.Declared < 0 {
		return fmt.Sprintf("protocol: truncated length prefix at offset %d (%d bytes remaining)", e.Offset, e.Remaining)
	}
	return fmt.Sprintf("protocol: frame at offset %d declares %d bytes, only %d remaining", e.Offset, e.Declared, e.Remaining)
}

// Split scans one response buffer and returns the byte range of every
// record payload, in stream order. An empty buffer yields no ranges and no
// error.
//
// Split never decodes a payload; it only does offset arithmetic. For every
// valid buffer the ranges tile it exactly: the sum of LengthSize plus each
// payload length equals len(buf).
func Split(buf []byte) ([]Range, error) {
	var ranges []Range
	pos := 0
	for pos < len(buf) {
		if rem := len(buf) - pos; rem < LengthSize {
			return nil, &FramingError{Offset: pos, Declared: -1, Remaining: rem}
		}
		n := binary.LittleEndian.Uint32(buf[pos:])
		if n == ErrorSentinel {
			return nil, &StreamError{Message: string(buf[pos:])}
		}
		rem := len(buf) - pos - LengthSize
		if uint64(n) > uint64(rem) {
			return nil, &FramingError{Offset: pos, Declared: int(n), Remaining: rem}
		}
		ranges = append(ranges, Range{Offset: pos + LengthSize, Length: int(n)})
		pos += LengthSize + int(n)
	}
	return ranges, nil
}

// AppendFrame appends one length-prefixed frame holding payload to dst and
// returns the extended buffer.
func AppendFrame(dst, payload []byte) []byte {
	var prefix [LengthSize]byte
	binary.LittleEndian.PutUint32(prefix[:], uint32(len(payload)))
	dst = append(dst, prefix[:]...)
	return append(dst, payload...)
}

// EncodeFrames concatenates the given payloads into one framed buffer, the
// exact shape of a multi-location response body.
func EncodeFrames(payloads ...[]byte) []byte {
	size := 0
	for _, p := range payloads {
		size += LengthSize + len(p)
	}
	buf := make([]byte, 0, size)
	for _, p := range payloads {
		buf = AppendFrame(buf, p)
	}
	return buf
}
