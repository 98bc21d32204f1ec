// FILE: github.com/josephcopenhaver/modtab/verify.go

// Verification rejects a table on the first slot that differs from the one
// Generate would produce. It does not attempt to explain how the table went
// stale; regenerate it and diff if that matters to you.

package modtab

import (
	"errors"
	"fmt"
)

var ErrTableMismatch = errors.New("table does not match alphabet")

// Verify checks a previously generated table, typically one already pasted
// into a decoder, against the alphabet and sentinel it claims to encode. The
// table length is taken as the modulus.
//
// A *CollisionError is returned if the implied modulus is not a perfect hash
// for alphabet, and ErrTableMismatch wrapped with the first offending slot
// if any slot differs from what Generate returns.
func Verify(tab []byte, alphabet string, sentinel byte) error {
	if err := checkAlphabet(alphabet); err != nil {
		return err
	}

	if err := checkModulus(len(tab)); err != nil {
		return err
	}

	if err := checkSentinel(sentinel); err != nil {
		return err
	}

	want, err := scatter(alphabet, len(tab), sentinel)
	if err != nil {
		return err
	}

	for i, v := range tab {
		if v != want[i] {
			return fmt.Errorf("%w: slot %d holds %d, want %d", ErrTableMismatch, i, v, want[i])
		}
	}

	return nil
}
