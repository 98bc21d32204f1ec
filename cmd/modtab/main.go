// modtab prints a perfect hash decode table for a base32 alphabet.
//
// Usage:
//
//	modtab [--alphabet 0123456789abcdefghjkmnpqrstvwxyz] [--modulus 38] [--format list|literal|go|json]
//	modtab --check '[23, 24, 25, ...]'
//
// On a collision nothing is written to stdout and the exit code is 1.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/josephcopenhaver/modtab"
	"github.com/spf13/pflag"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "modtab: ", 0)

	cfg, err := loadConfig(args, stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		logger.Print(err)
		return exitUsage
	}

	var out bytes.Buffer
	if err := main1(cfg, &out, logger); err != nil {
		logger.Print(err)
		return exitFailure
	}

	if _, err := stdout.Write(out.Bytes()); err != nil {
		logger.Print(err)
		return exitFailure
	}

	return exitOK
}

func main1(cfg config, w io.Writer, logger *log.Logger) error {
	if cfg.check != "" {
		tab, err := parseTable(cfg.check)
		if err != nil {
			return err
		}

		if err := modtab.Verify(tab, cfg.alphabet, byte(cfg.sentinel)); err != nil {
			return err
		}

		_, err = fmt.Fprintf(w, "ok: %d slots match alphabet %q\n", len(tab), cfg.alphabet)
		return err
	}

	// Options treats a zero sentinel as unset
	if cfg.sentinel == 0 {
		return fmt.Errorf("%w: 0", modtab.ErrAmbiguousSentinel)
	}

	t, err := modtab.New(cfg.alphabet, modtab.Options{
		Modulus:    cfg.modulus,
		Sentinel:   byte(cfg.sentinel),
		MinModulus: cfg.minModulus,
		MaxModulus: cfg.maxModulus,
	})
	if err != nil {
		return err
	}

	if cfg.modulus == 0 {
		logger.Printf("smallest collision free modulus is %d", t.Modulus())
	}

	switch cfg.format {
	case "list":
		_, err = fmt.Fprintf(w, "%s\n%s\n", modtab.FormatList(t.Bytes()), modtab.FormatAlphabetLiteral(t.Alphabet()))
	case "literal":
		_, err = fmt.Fprintln(w, modtab.FormatAlphabetLiteral(t.Alphabet()))
	case "go":
		var src []byte
		src, err = modtab.FormatGo(cfg.name, t)
		if err == nil {
			_, err = w.Write(src)
		}
	case "json":
		var b []byte
		b, err = json.MarshalIndent(t.Report(), "", "  ")
		if err == nil {
			_, err = fmt.Fprintf(w, "%s\n", b)
		}
	default:
		panic("modtab: unhandled format " + cfg.format)
	}

	return err
}

// parseTable accepts a table the way it is usually pasted, with or without
// surrounding brackets or braces and a trailing comma.
func parseTable(s string) ([]byte, error) {
	s = strings.Trim(strings.TrimSpace(s), "[]{}")

	var tab []byte
	for i, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		v, err := strconv.ParseUint(field, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("table entry %d: %w", i, err)
		}
		tab = append(tab, byte(v))
	}

	return tab, nil
}
