package modtab

import "math/bits"

// byteSet is a set of byte values, adapted from the strings package asciiSet
// but wide enough for table slot indexes as well as ASCII characters.
type byteSet [8]uint32

func (s *byteSet) add(c byte) {
	s[c/32] |= 1 << (c % 32)
}

func (s *byteSet) contains(c byte) bool {
	return (s[c/32] & (1 << (c % 32))) != 0
}

func (s *byteSet) len() int {
	var n int
	for _, w := range s {
		n += bits.OnesCount32(w)
	}

	return n
}
