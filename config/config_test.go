package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/bfvm/samples"
)

func parse(lines ...string) (*Config, error) {
	return Parse("test.star", []byte(strings.Join(lines, "\n")))
}

func TestParse_Empty(t *testing.T) {
	assert := assert.New(t)

	cfg, err := parse("")
	assert.NoError(err)
	assert.Equal(&Config{}, cfg)
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	cfg, err := parse(
		`program = "+" * 3 + "."`,
		`max_ticks = 1000`,
		`stack_limit = 16`,
		`verbose = True`,
		`dump_tape = True`,
		`banner = False`,
		`helper = "ignored"`,
	)
	assert.NoError(err)
	assert.Equal(&Config{
		Program:    "+++.",
		MaxTicks:   1000,
		StackLimit: 16,
		Verbose:    true,
		DumpTape:   true,
	}, cfg)
}

func TestParse_Sample(t *testing.T) {
	assert := assert.New(t)

	hello, ok := samples.Lookup("hello")
	assert.True(ok)

	cfg, err := parse(`sample = "hello"`)
	assert.NoError(err)
	assert.Equal("hello", cfg.Sample)
	assert.Equal(hello, cfg.Program)

	_, err = parse(`sample = "goodbye"`)
	assert.ErrorIs(err, ErrSampleUnknown("goodbye"))

	_, err = parse(`sample = "hello"`, `program = "+"`)
	assert.ErrorIs(err, ErrConfigConflict)
}

func TestParse_Predeclared(t *testing.T) {
	assert := assert.New(t)

	simple, _ := samples.Lookup("simple")

	cfg, err := parse(`program = simple + ALPHABET[4]`)
	assert.NoError(err)
	assert.Equal(simple+".", cfg.Program)

	pred := Predeclared()
	for _, name := range samples.Names() {
		assert.Contains(pred, name)
	}
	assert.Contains(pred, "ALPHABET")
}

func TestParse_Types(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		line string
		key  string
	}{
		{`program = 12`, "program"},
		{`sample = True`, "sample"},
		{`max_ticks = "many"`, "max_ticks"},
		{`stack_limit = 1.5`, "stack_limit"},
		{`verbose = 1`, "verbose"},
		{`dump_tape = "yes"`, "dump_tape"},
		{`banner = None`, "banner"},
	}

	for _, entry := range table {
		cfg, err := parse(entry.line)
		assert.Nil(cfg, entry.line)

		var cte ErrConfigType
		if assert.ErrorAs(err, &cte, entry.line) {
			assert.Equal(entry.key, cte.Key, entry.line)
		}

		var ce *ErrConfig
		if assert.ErrorAs(err, &ce, entry.line) {
			assert.Equal("test.star", ce.Filename)
		}
	}
}

func TestParse_Range(t *testing.T) {
	assert := assert.New(t)

	_, err := parse(`max_ticks = -1`)
	assert.ErrorIs(err, ErrConfigRange)

	_, err = parse(`stack_limit = 1 << 40`)
	assert.ErrorIs(err, ErrConfigRange)
}

func TestParse_Syntax(t *testing.T) {
	assert := assert.New(t)

	cfg, err := parse(`program = `)
	assert.Nil(cfg)
	assert.Error(err)
	assert.Contains(err.Error(), "test.star")

	_, err = parse(`program = undefined_name`)
	assert.Error(err)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "run.star")
	err := os.WriteFile(path, []byte("program = name\nmax_ticks = 10 * 1000\n"), 0o644)
	assert.NoError(err)

	cfg, err := Load(path)
	assert.NoError(err)

	name, _ := samples.Lookup("name")
	assert.Equal(name, cfg.Program)
	assert.Equal(10000, cfg.MaxTicks)

	_, err = Load(filepath.Join(dir, "missing.star"))
	assert.ErrorIs(err, os.ErrNotExist)
}
