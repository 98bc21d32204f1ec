// FILE: github.com/josephcopenhaver/modtab/format.go

package modtab

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"strconv"
)

// ErrInvalidIdentifier is returned by FormatGo for a name that cannot be
// declared as a Go variable.
var ErrInvalidIdentifier = errors.New("invalid go identifier")

const goRowLen = 16

// AppendList appends tab rendered as "[23, 24, 255]" to dst.
func AppendList(dst, tab []byte) []byte {
	dst = append(dst, '[')
	for i, v := range tab {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		dst = strconv.AppendUint(dst, uint64(v), 10)
	}

	return append(dst, ']')
}

// FormatList returns tab rendered as "[23, 24, 255]".
func FormatList(tab []byte) string {
	return string(AppendList(nil, tab))
}

// AppendAlphabetLiteral appends the characters of alphabet as quoted, comma
// separated character literals ("'0', '2', '3'") to dst, ready to paste into
// an array literal.
//
// If alphabet is empty dst is returned as-is.
func AppendAlphabetLiteral(dst []byte, alphabet string) []byte {
	for i := range len(alphabet) {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		dst = strconv.AppendQuoteRuneToASCII(dst, rune(alphabet[i]))
	}

	return dst
}

// FormatAlphabetLiteral returns the characters of alphabet as quoted, comma
// separated character literals. See AppendAlphabetLiteral.
func FormatAlphabetLiteral(alphabet string) string {
	return string(AppendAlphabetLiteral(nil, alphabet))
}

// FormatGo renders t as a gofmt'd Go variable declaration named name.
func FormatGo(name string, t *Table) ([]byte, error) {
	if !token.IsIdentifier(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIdentifier, name)
	}

	var buf bytes.Buffer

	fmt.Fprintf(&buf, "// %s decodes alphabet %q.\n", name, t.alphabet)
	fmt.Fprintf(&buf, "// Index with c %% %d; 0x%02X marks an invalid character.\n", t.modulus, t.sentinel)
	fmt.Fprintf(&buf, "var %s = [%d]byte{\n", name, t.modulus)

	for i, v := range t.slots {
		if i%goRowLen == 0 {
			buf.WriteByte('\t')
		}
		if v == t.sentinel {
			fmt.Fprintf(&buf, "0x%02X,", v)
		} else {
			buf.WriteString(strconv.Itoa(int(v)))
			buf.WriteByte(',')
		}
		if i%goRowLen == goRowLen-1 || i == len(t.slots)-1 {
			buf.WriteByte('\n')
		} else {
			buf.WriteByte(' ')
		}
	}

	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}
