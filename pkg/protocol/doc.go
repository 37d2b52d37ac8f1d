// Package protocol implements the binary framing layer of the Open-Meteo
// API's FlatBuffers response format.
//
// One HTTP response body carries the results for every requested location
// as a flat concatenation of frames:
//
//	┌───────────────────────────────┬─────────────────────────────┐
//	│ Payload Length                │ Record Payload              │
//	│ (4 bytes, little-endian)      │ (length bytes, FlatBuffers) │
//	└───────────────────────────────┴─────────────────────────────┘
//	... repeated until the buffer is exhausted ...
//
// Split locates every record payload without decoding it, so the same scan
// serves every endpoint that speaks this format. Decoding a payload is the
// job of the generated FlatBuffers accessors in package sdk.
//
// # In-band errors
//
// When the server fails while it is already streaming a 200 response, it
// cannot change the status code anymore. Instead it writes a plain UTF-8
// error message into the stream. Such a message always starts with the
// text "Unexpected", whose first four bytes read as a length prefix equal
// ErrorSentinel. Split reports this case as a StreamError carrying the
// message; a malformed stream (truncated prefix, overrunning length) is a
// FramingError instead.
//
// Split is pure CPU work over an in-memory buffer: no reflection, no I/O,
// no allocation beyond the result slice.
package protocol
