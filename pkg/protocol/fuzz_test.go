package protocol

import (
	"testing"
)

// FuzzSplit tests that scanning arbitrary bytes doesn't panic and that any
// ranges returned stay inside the buffer, in order.
func FuzzSplit(f *testing.F) {
	// Seed with valid streams, an in-band error, and malformed input
	f.Add([]byte{})
	f.Add(EncodeFrames([]byte("abc")))
	f.Add(EncodeFrames([]byte("a"), []byte{}, []byte("bcd")))
	f.Add([]byte("Unexpected error while streaming data: timeoutReached"))
	f.Add([]byte{0xFF, 0xFF})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00})

	f.Fuzz(func(t *testing.T, data []byte) {
		ranges, err := Split(data)
		if err != nil {
			return
		}
		prev := 0
		for i, r := range ranges {
			if r.Offset != prev+LengthSize {
				t.Errorf("range[%d] offset = %d, want %d", i, r.Offset, prev+LengthSize)
			}
			if r.Length < 0 || r.End() > len(data) {
				t.Errorf("range[%d] = %+v escapes %d-byte buffer", i, r, len(data))
			}
			prev = r.End()
		}
		if prev != len(data) {
			t.Errorf("ranges cover %d bytes, buffer has %d", prev, len(data))
		}
	})
}
