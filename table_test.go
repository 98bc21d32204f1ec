package modtab

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindModulus(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	m, err := FindModulus(DefaultAlphabet, 1, 64)
	is.Nil(err)
	is.Equal(38, m)

	m, err = FindModulus(SIDAlphabet, AlphabetSize, 64)
	is.Nil(err)
	is.Equal(38, m)

	m, err = FindModulus(DefaultAlphabet, 39, 64)
	is.Nil(err)
	is.Equal(39, m)

	m, err = FindModulus(rfc4648Alphabet, AlphabetSize, 64)
	is.Nil(err)
	is.Equal(41, m)

	// every modulus below the result must collide
	for m := 1; m < 41; m++ {
		_, err := Generate(rfc4648Alphabet, m, DefaultSentinel)
		is.ErrorIs(err, ErrPerfectHashCollision)
	}

	_, err = FindModulus(DefaultAlphabet, 40, 64)
	is.ErrorIs(err, ErrNoPerfectModulus)

	_, err = FindModulus(DefaultAlphabet, 1, 31)
	is.ErrorIs(err, ErrNoPerfectModulus)

	_, err = FindModulus(DefaultAlphabet, 64, 40)
	is.ErrorIs(err, ErrInvalidModulus)

	_, err = FindModulus(DefaultAlphabet, 0, 40)
	is.ErrorIs(err, ErrInvalidModulus)

	_, err = FindModulus(DefaultAlphabet, 32, MaxModulus+1)
	is.ErrorIs(err, ErrInvalidModulus)

	_, err = FindModulus(DefaultAlphabet[:8], 32, 64)
	is.ErrorIs(err, ErrInvalidAlphabetLength)
}

func TestNew(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	tab, err := New(DefaultAlphabet, Options{})
	if !is.Nil(err) {
		return
	}

	is.Equal(DefaultAlphabet, tab.Alphabet())
	is.Equal(DefaultModulus, tab.Modulus())
	is.Equal(uint8(DefaultSentinel), tab.Sentinel())

	want, err := Generate(DefaultAlphabet, DefaultModulus, DefaultSentinel)
	is.Nil(err)
	is.Equal(want, tab.Bytes())

	// Bytes must hand out a copy
	b := tab.Bytes()
	b[0] = 0
	is.Equal(want, tab.Bytes())
}

func TestNewOptions(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	tab, err := New(DefaultAlphabet, Options{Modulus: MaxModulus, Sentinel: 0x80})
	if is.Nil(err) {
		is.Equal(MaxModulus, tab.Modulus())
		is.Equal(uint8(0x80), tab.Sentinel())
		is.Len(tab.Bytes(), MaxModulus)
	}

	// digits and p..y share slots 48 through 57
	tab, err = New(DefaultAlphabet, Options{Modulus: 64, Sentinel: 0x80})
	is.Nil(tab)
	is.ErrorIs(err, ErrPerfectHashCollision)

	// raising only the lower bound past the default upper bound searches up to MaxModulus
	tab, err = New(DefaultAlphabet, Options{MinModulus: 100})
	if is.Nil(err) {
		is.Equal(100, tab.Modulus())
	}

	tab, err = New(DefaultAlphabet, Options{MinModulus: 65})
	if is.Nil(err) {
		is.Equal(75, tab.Modulus())
	}

	tab, err = New(DefaultAlphabet, Options{MinModulus: 100, MaxModulus: 64})
	is.Nil(tab)
	is.ErrorIs(err, ErrInvalidModulus)

	tab, err = New(DefaultAlphabet, Options{MinModulus: 39})
	if is.Nil(err) {
		is.Equal(39, tab.Modulus())
	}

	tab, err = New(rfc4648Alphabet, Options{MaxModulus: 40})
	is.Nil(tab)
	is.ErrorIs(err, ErrNoPerfectModulus)

	tab, err = New(DefaultAlphabet, Options{Modulus: 10})
	is.Nil(tab)
	is.ErrorIs(err, ErrPerfectHashCollision)

	tab, err = New(DefaultAlphabet, Options{Sentinel: 1})
	is.Nil(tab)
	is.ErrorIs(err, ErrAmbiguousSentinel)

	tab, err = New("abc", Options{})
	is.Nil(tab)
	is.ErrorIs(err, ErrInvalidAlphabetLength)
}

func TestTableLookup(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	for _, alphabet := range []string{DefaultAlphabet, SIDAlphabet, rfc4648Alphabet} {
		tab, err := New(alphabet, Options{})
		if !is.Nil(err) {
			continue
		}

		for i := range 256 {
			c := byte(i)

			v, ok := tab.Lookup(c)

			idx := strings.IndexByte(alphabet, c)
			if idx == -1 {
				is.False(ok, "char %q", c)
				is.Equal(uint8(0), v)
				continue
			}

			is.True(ok, "char %q", c)
			is.Equal(uint8(idx), v)
		}
	}
}

func TestTableReport(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	tab, err := New(SIDAlphabet, Options{})
	if !is.Nil(err) {
		return
	}

	r := tab.Report()
	is.Equal(SIDAlphabet, r.Alphabet)
	is.Equal(38, r.Modulus)
	is.Equal(255, r.Sentinel)
	is.Len(r.Table, 38)
	is.Equal(23, r.Table[0])
	is.Equal(255, r.Table[9])

	b, err := json.Marshal(r)
	is.Nil(err)
	is.True(strings.HasPrefix(string(b), `{"alphabet":"023456789abcdefghjkmnpqrstuvwxyz","modulus":38,"sentinel":255,"table":[23,24,25,`))
}
