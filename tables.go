// FILE: github.com/josephcopenhaver/modtab/tables.go

// A modulo reduction perfect hash table generator for base32 style alphabets.
//
// Decoders that only ever see 32 distinct ASCII characters can replace a
// 256 entry decode table with a much smaller one indexed by c % modulus,
// provided no two alphabet characters land in the same slot. This package
// computes such tables, proves they are collision free, and renders them as
// literals to paste into a decoder.
package modtab

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	// AlphabetSize is the number of characters in a base32 alphabet. The
	// position of a character is its 5-bit decoded value.
	AlphabetSize = 32

	// MaxModulus bounds table sizes so that every slot index fits in a byte.
	MaxModulus = 256

	DefaultModulus  = 38
	DefaultSentinel = 0xFF

	// DefaultAlphabet is a Crockford style lower case alphabet without the
	// easily confused i, l, o and u.
	DefaultAlphabet = "0123456789abcdefghjkmnpqrstvwxyz"

	// SIDAlphabet keeps u and drops 1 instead.
	SIDAlphabet = "023456789abcdefghjkmnpqrstuvwxyz"
)

// Input errors are wrapped with the offending value or position.
var (
	ErrInvalidAlphabetLength = errors.New("invalid alphabet length")
	ErrNonASCIIAlphabetChar  = errors.New("non-ascii alphabet character")
	ErrDuplicateAlphabetChar = errors.New("duplicate alphabet character")
	ErrInvalidModulus        = errors.New("invalid modulus")
	ErrAmbiguousSentinel     = errors.New("sentinel is a valid decoded value")

	// ErrPerfectHashCollision is matched by every *CollisionError.
	ErrPerfectHashCollision = errors.New("perfect hash collision")
)

// Collision records a table slot claimed by more than one alphabet character.
type Collision struct {
	Slot   int
	First  byte
	Second byte
}

// CollisionError reports that a modulus does not reduce an alphabet
// injectively. It matches ErrPerfectHashCollision with errors.Is.
type CollisionError struct {
	Modulus    int
	Collisions []Collision
}

func (e *CollisionError) Error() string {
	if len(e.Collisions) == 0 {
		return fmt.Sprintf("collision detected: modulus %d", e.Modulus)
	}

	c := e.Collisions[0]
	msg := fmt.Sprintf("collision detected: modulus %d maps %q and %q to slot %d", e.Modulus, c.First, c.Second, c.Slot)
	if n := len(e.Collisions) - 1; n > 0 {
		msg += fmt.Sprintf(" (%d more)", n)
	}

	return msg
}

func (e *CollisionError) Unwrap() error {
	return ErrPerfectHashCollision
}

func checkAlphabet(alphabet string) error {
	if len(alphabet) != AlphabetSize {
		return fmt.Errorf("%w: got %d characters, want %d", ErrInvalidAlphabetLength, len(alphabet), AlphabetSize)
	}

	var seen byteSet
	for i := range len(alphabet) {
		c := alphabet[i]

		if c >= utf8.RuneSelf {
			return fmt.Errorf("%w: 0x%02X at position %d", ErrNonASCIIAlphabetChar, c, i)
		}

		if seen.contains(c) {
			return fmt.Errorf("%w: %q at position %d", ErrDuplicateAlphabetChar, c, i)
		}
		seen.add(c)
	}

	return nil
}

func checkModulus(modulus int) error {
	if modulus < 1 || modulus > MaxModulus {
		return fmt.Errorf("%w: %d is outside [1, %d]", ErrInvalidModulus, modulus, MaxModulus)
	}

	return nil
}

func checkSentinel(sentinel byte) error {
	if sentinel < AlphabetSize {
		return fmt.Errorf("%w: %d, must be at least %d", ErrAmbiguousSentinel, sentinel, AlphabetSize)
	}

	return nil
}

// Generate returns a table of modulus slots where the slot at
// alphabet[i] % modulus holds i and every other slot holds sentinel.
//
// A *CollisionError is returned when two characters share a slot. No table
// is returned alongside any error.
func Generate(alphabet string, modulus int, sentinel byte) ([]byte, error) {
	if err := checkAlphabet(alphabet); err != nil {
		return nil, err
	}

	if err := checkModulus(modulus); err != nil {
		return nil, err
	}

	if err := checkSentinel(sentinel); err != nil {
		return nil, err
	}

	return scatter(alphabet, modulus, sentinel)
}

// scatter assumes its arguments have already been checked.
func scatter(alphabet string, modulus int, sentinel byte) ([]byte, error) {
	tab := make([]byte, modulus)
	for i := range tab {
		tab[i] = sentinel
	}

	var written byteSet
	var owner [MaxModulus]byte
	var collisions []Collision

	for i := range len(alphabet) {
		c := alphabet[i]
		slot := int(c) % modulus

		if written.contains(byte(slot)) {
			collisions = append(collisions, Collision{
				Slot:   slot,
				First:  owner[slot],
				Second: c,
			})
		} else {
			owner[slot] = c
			written.add(byte(slot))
		}

		tab[slot] = byte(i)
	}

	// coverage of distinct slots, not distinct values, so a value that
	// happens to equal the sentinel can never hide a collision
	if written.len() != len(alphabet) {
		return nil, &CollisionError{
			Modulus:    modulus,
			Collisions: collisions,
		}
	}

	return tab, nil
}
