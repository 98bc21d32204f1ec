package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/josephcopenhaver/modtab"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var errUsage = errors.New("usage")

var formats = []string{"list", "literal", "go", "json"}

/*
	Every setting can come from a flag, a MODTAB_ prefixed environment
	variable or the file named by --config, in that order of precedence.
*/

type config struct {
	alphabet   string
	modulus    int
	minModulus int
	maxModulus int
	sentinel   int
	format     string
	name       string
	check      string
}

func newFlagSet(stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("modtab", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.String("alphabet", modtab.DefaultAlphabet, "32 distinct ASCII characters, position is the decoded value")
	fs.Int("modulus", modtab.DefaultModulus, "table size, 0 searches [min-modulus, max-modulus] for the smallest that works")
	fs.Int("min-modulus", modtab.AlphabetSize, "lower bound of the modulus search")
	fs.Int("max-modulus", 64, "upper bound of the modulus search, 256 when unset and min-modulus is larger")
	fs.Int("sentinel", modtab.DefaultSentinel, "value of unused slots, must be at least 32")
	fs.String("format", "list", "output format: "+strings.Join(formats, ", "))
	fs.String("name", "decodeTab", "variable name for the go format")
	fs.String("check", "", "comma separated existing table to verify instead of generating one")
	fs.String("config", "", "optional config file (yaml, toml, json, ini, ...)")

	return fs
}

func loadConfig(args []string, stderr io.Writer) (config, error) {
	fs := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if fs.NArg() != 0 {
		return config{}, fmt.Errorf("%w: unexpected arguments %q", errUsage, fs.Args())
	}

	v := viper.New()
	v.SetEnvPrefix("MODTAB")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return config{}, err
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	cfg := config{
		alphabet:   v.GetString("alphabet"),
		modulus:    v.GetInt("modulus"),
		minModulus: v.GetInt("min-modulus"),
		maxModulus: v.GetInt("max-modulus"),
		sentinel:   v.GetInt("sentinel"),
		format:     v.GetString("format"),
		name:       v.GetString("name"),
		check:      v.GetString("check"),
	}

	// let the library widen the range when only the lower bound was raised
	if !v.IsSet("max-modulus") {
		cfg.maxModulus = 0
	}

	if cfg.sentinel < 0 || cfg.sentinel > 0xFF {
		return config{}, fmt.Errorf("%w: sentinel %d does not fit in a byte", errUsage, cfg.sentinel)
	}

	if !slices.Contains(formats, cfg.format) {
		return config{}, fmt.Errorf("%w: unknown format %q", errUsage, cfg.format)
	}

	return cfg, nil
}
