// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/bfvm/config"
	"github.com/ezrec/bfvm/emulator"
	"github.com/ezrec/bfvm/samples"
)

func main() {
	var configFile string
	var file string
	var expr string
	var sample string
	var output string
	var maxTicks int
	var stackLimit int
	var verbose bool
	var dump bool
	var banner bool
	var list bool

	flag.StringVar(&configFile, "c", "", ".star run configuration to use")
	flag.StringVar(&file, "f", "", "Program file to run, - for stdin")
	flag.StringVar(&expr, "e", "", "Program text to run")
	flag.StringVar(&sample, "s", "", "Sample program to run")
	flag.StringVar(&output, "o", "-", "Program output")
	flag.IntVar(&maxTicks, "n", 0, "Tick budget, 0 for no limit")
	flag.IntVar(&stackLimit, "l", 0, "Loop stack depth limit, 0 for no limit")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&dump, "d", false, "Dump the tape after the run")
	flag.BoolVar(&banner, "banner", false, "Print start and end of output banners to stderr")
	flag.BoolVar(&list, "list", false, "List the sample programs")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if list {
		for _, name := range samples.Names() {
			fmt.Println(name)
		}
		return
	}

	cfg := &config.Config{}
	sourced := len(configFile) != 0
	if sourced {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	// Explicit flags override the configuration.
	var err error
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "n":
			cfg.MaxTicks = maxTicks
		case "l":
			cfg.StackLimit = stackLimit
		case "v":
			cfg.Verbose = verbose
		case "d":
			cfg.DumpTape = dump
		case "banner":
			cfg.Banner = banner
		case "e":
			sourced = true
			cfg.Program = expr
		case "s":
			source, ok := samples.Lookup(sample)
			if !ok {
				err = fmt.Errorf("%v: unknown sample, try -list", sample)
				return
			}
			sourced = true
			cfg.Sample = sample
			cfg.Program = source
		case "f":
			sourced = true
			var data []byte
			if file == "-" {
				data, err = io.ReadAll(os.Stdin)
			} else {
				data, err = os.ReadFile(file)
			}
			cfg.Program = string(data)
		}
	})
	if err != nil {
		log.Fatal(err)
	}

	if !sourced {
		flag.Usage()
		os.Exit(2)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = cfg.Verbose
	emu.MaxTicks = cfg.MaxTicks
	emu.Stack.Limit = cfg.StackLimit

	if output == "-" {
		emu.Console.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Console.Output = ouf
	}

	err = emu.Load(cfg.Program)
	if err != nil {
		log.Fatalf("There was an error loading the program: %v", err)
	}

	if cfg.Banner {
		fmt.Fprintf(os.Stderr, "\n-------------START OF PROGRAM OUTPUT-------------\n")
	}

	err = emu.Run()

	if cfg.Banner {
		fmt.Fprintf(os.Stderr, "\n--------------END OF PROGRAM OUTPUT--------------\n")
	}

	if cfg.DumpTape {
		for line := range emu.Dump() {
			fmt.Fprintln(os.Stderr, line)
		}
	}

	if err != nil {
		log.Print(emu.String())
		log.Fatal(err)
	}
}
