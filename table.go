package modtab

import (
	"errors"
	"fmt"
	"slices"

	"github.com/imdario/mergo"
)

// ErrNoPerfectModulus is returned when every modulus in a search range
// produces a collision.
var ErrNoPerfectModulus = errors.New("no collision free modulus in range")

// Options configures New. Zero valued fields take their value from the
// package defaults: a zero Modulus searches [MinModulus, MaxModulus] for the
// smallest collision free table size and a zero Sentinel becomes
// DefaultSentinel.
//
// A zero MaxModulus is 64, or MaxModulus when MinModulus is above 64, so
// raising only the lower bound never yields an empty range.
type Options struct {
	Modulus    int
	Sentinel   byte
	MinModulus int
	MaxModulus int
}

var defaultOptions = Options{
	Sentinel:   DefaultSentinel,
	MinModulus: AlphabetSize,
	MaxModulus: 64,
}

// Table is a generated lookup table together with the parameters that
// produced it.
type Table struct {
	alphabet string
	modulus  int
	sentinel byte
	slots    []byte
}

// New generates the table for alphabet according to opts.
func New(alphabet string, opts Options) (*Table, error) {
	if opts.MaxModulus == 0 && opts.MinModulus > defaultOptions.MaxModulus {
		opts.MaxModulus = MaxModulus
	}

	if err := mergo.Merge(&opts, defaultOptions); err != nil {
		return nil, fmt.Errorf("modtab: applying default options: %w", err)
	}

	modulus := opts.Modulus
	if modulus == 0 {
		m, err := FindModulus(alphabet, opts.MinModulus, opts.MaxModulus)
		if err != nil {
			return nil, err
		}
		modulus = m
	}

	slots, err := Generate(alphabet, modulus, opts.Sentinel)
	if err != nil {
		return nil, err
	}

	return &Table{
		alphabet: alphabet,
		modulus:  modulus,
		sentinel: opts.Sentinel,
		slots:    slots,
	}, nil
}

// FindModulus returns the smallest modulus in [lo, hi] that maps every
// alphabet character to its own slot.
func FindModulus(alphabet string, lo, hi int) (int, error) {
	if err := checkAlphabet(alphabet); err != nil {
		return 0, err
	}

	if err := checkModulus(lo); err != nil {
		return 0, err
	}

	if err := checkModulus(hi); err != nil {
		return 0, err
	}

	if lo > hi {
		return 0, fmt.Errorf("%w: empty range [%d, %d]", ErrInvalidModulus, lo, hi)
	}

	// fewer slots than characters can never work
	for m := max(lo, AlphabetSize); m <= hi; m++ {
		if _, err := scatter(alphabet, m, DefaultSentinel); err == nil {
			return m, nil
		}
	}

	return 0, fmt.Errorf("%w: [%d, %d]", ErrNoPerfectModulus, lo, hi)
}

// Alphabet returns the alphabet whose positions are the table values.
func (t *Table) Alphabet() string {
	return t.alphabet
}

// Modulus returns the table length, which is also the reduction divisor.
func (t *Table) Modulus() int {
	return t.modulus
}

// Sentinel returns the value held by slots no alphabet character maps to.
func (t *Table) Sentinel() byte {
	return t.sentinel
}

// Bytes returns a copy of the table slots.
func (t *Table) Bytes() []byte {
	return slices.Clone(t.slots)
}

// Lookup returns the decoded value of c and whether c is in the alphabet.
//
// Characters outside the alphabet can reduce to an occupied slot, so the
// slot value is confirmed against the alphabet before it is trusted. A bare
// pasted table cannot make that distinction on its own.
func (t *Table) Lookup(c byte) (byte, bool) {
	v := t.slots[int(c)%t.modulus]
	if v == t.sentinel || t.alphabet[v] != c {
		return 0, false
	}

	return v, true
}

// Report is the JSON form of a Table.
type Report struct {
	Alphabet string `json:"alphabet"`
	Modulus  int    `json:"modulus"`
	Sentinel int    `json:"sentinel"`
	Table    []int  `json:"table"`
}

func (t *Table) Report() Report {
	tab := make([]int, len(t.slots))
	for i, v := range t.slots {
		tab[i] = int(v)
	}

	return Report{
		Alphabet: t.alphabet,
		Modulus:  t.modulus,
		Sentinel: int(t.sentinel),
		Table:    tab,
	}
}
