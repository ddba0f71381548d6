// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads bfvm run configurations written in Starlark.
//
// A configuration file is a Starlark module. After it executes, the
// following globals are read, and all others are ignored:
//
//	program     string  program source text
//	sample      string  name of a shipped sample to run instead
//	max_ticks   int     tick budget, 0 for no limit
//	stack_limit int     control stack depth limit, 0 for no limit
//	verbose     bool    verbose engine logging
//	dump_tape   bool    dump the tape after the run
//	banner      bool    print start and end of output banners
//
// Every shipped sample is predeclared as a string global of the same name,
// and ALPHABET holds the instruction symbols, so programs may be built with
// ordinary Starlark string operations:
//
//	program = hello + "+" * 10 + "."
package config

import (
	"errors"
	"log"
	"maps"
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/bfvm/internal"
	"github.com/ezrec/bfvm/samples"
)

var _config_defines = map[string]string{
	"ALPHABET": "><+-.,[]",
}

// Config is a run configuration.
type Config struct {
	Program    string // Program source text.
	Sample     string // Sample name, if the program is a shipped sample.
	MaxTicks   int    // Tick budget, or 0 for no limit.
	StackLimit int    // Control stack depth limit, or 0 for no limit.
	Verbose    bool   // Verbose engine logging.
	DumpTape   bool   // Dump the tape after the run.
	Banner     bool   // Print output banners.
}

// Predeclared returns the globals visible to configuration files.
func Predeclared() (pred starlark.StringDict) {
	pred = starlark.StringDict{}
	for key, value := range internal.IterSeq2Concat(maps.All(_config_defines), samples.All()) {
		pred[key] = starlark.String(value)
	}

	return
}

// Load reads and parses a configuration file.
func Load(filename string) (cfg *Config, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return
	}

	return Parse(filename, data)
}

// Parse executes Starlark configuration source.
func Parse(filename string, src []byte) (cfg *Config, err error) {
	defer func() {
		if err != nil {
			cfg = nil
			err = &ErrConfig{Filename: filename, Err: err}
		}
	}()

	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", filename, msg)
		},
	}
	opts := syntax.FileOptions{}

	dict, err := starlark.ExecFileOptions(&opts, thread, filename, src, Predeclared())
	if err != nil {
		return
	}

	cfg = &Config{}

	if cfg.Program, err = getString(dict, "program"); err != nil {
		return
	}
	if cfg.Sample, err = getString(dict, "sample"); err != nil {
		return
	}
	if cfg.MaxTicks, err = getInt(dict, "max_ticks"); err != nil {
		return
	}
	if cfg.StackLimit, err = getInt(dict, "stack_limit"); err != nil {
		return
	}
	if cfg.Verbose, err = getBool(dict, "verbose"); err != nil {
		return
	}
	if cfg.DumpTape, err = getBool(dict, "dump_tape"); err != nil {
		return
	}
	if cfg.Banner, err = getBool(dict, "banner"); err != nil {
		return
	}

	if len(cfg.Sample) != 0 {
		if len(cfg.Program) != 0 {
			err = ErrConfigConflict
			return
		}
		var ok bool
		cfg.Program, ok = samples.Lookup(cfg.Sample)
		if !ok {
			err = ErrSampleUnknown(cfg.Sample)
			return
		}
	}

	return
}

func getString(dict starlark.StringDict, key string) (value string, err error) {
	st_value, ok := dict[key]
	if !ok {
		return
	}

	value, ok = starlark.AsString(st_value)
	if !ok {
		err = ErrConfigType{Key: key, Want: "string", Got: st_value.Type()}
	}

	return
}

func getInt(dict starlark.StringDict, key string) (value int, err error) {
	st_value, ok := dict[key]
	if !ok {
		return
	}

	st_int, ok := st_value.(starlark.Int)
	if !ok {
		err = ErrConfigType{Key: key, Want: "int", Got: st_value.Type()}
		return
	}

	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > int64(^uint32(0)>>1) {
		err = errors.Join(ErrConfigRange, ErrConfigType{Key: key, Want: "int", Got: st_int.String()})
		return
	}

	value = int(st_int64)

	return
}

func getBool(dict starlark.StringDict, key string) (value bool, err error) {
	st_value, ok := dict[key]
	if !ok {
		return
	}

	st_bool, ok := st_value.(starlark.Bool)
	if !ok {
		err = ErrConfigType{Key: key, Want: "bool", Got: st_value.Type()}
		return
	}

	value = bool(st_bool)

	return
}
