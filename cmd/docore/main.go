// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/logrusorgru/aurora/v4"

	"github.com/ezrec/docore/cpu"
	"github.com/ezrec/docore/emulator"
	"github.com/ezrec/docore/internal"
)

func main() {
	var insn string
	var compile string
	var load string
	var save string
	var color bool
	var defines bool
	var verbose bool

	flag.StringVar(&insn, "i", "", "Instruction word to execute, in hexadecimal")
	flag.StringVar(&insn, "insn", "", "Instruction word to execute, in hexadecimal")
	flag.StringVar(&compile, "c", "", ".s file to assemble and list")
	flag.StringVar(&load, "r", "", "YAML register state to load")
	flag.StringVar(&save, "s", "", "YAML register state to save after execution")
	flag.BoolVar(&color, "color", false, "Colorize register dumps")
	flag.BoolVar(&defines, "D", false, "List assembler predefines")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(insn) == 0 && len(compile) == 0 && !defines {
		flag.Usage()
		os.Exit(2)
	}

	au := aurora.New(aurora.WithColors(color))

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	if len(load) != 0 {
		err := loadFile(emu, load)
		if err != nil {
			log.Fatalf("%v: %v", load, err)
		}
	}

	if defines {
		for key, value := range internal.IterSeq2Sorted(emu.Defines()) {
			fmt.Printf(".equ %v %v\n", key, value)
		}
	}

	// Assemble and list a source file.
	if len(compile) != 0 {
		prog, err := assembleFile(emu, compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		fmt.Print(prog.Listing())
	}

	if len(insn) != 0 {
		word, err := emulator.ParseWord(insn)
		if err != nil {
			log.Fatal(err)
		}

		prior := emu.Cpu.Register
		dumpState(os.Stdout, au, "Initial CPU state", &prior, nil)

		decoded, err := cpu.Disassemble(word)
		if err != nil {
			dumpError(os.Stderr, au, err)
			os.Exit(1)
		}
		fmt.Printf("do-core1: instruction decoded into %v\n", decoded)

		_, err = emu.Step(word)
		if err != nil {
			dumpError(os.Stderr, au, err)
			os.Exit(1)
		}

		dumpState(os.Stdout, au, "Final CPU state", &emu.Cpu.Register, &prior)
	}

	if len(save) != 0 {
		err := saveFile(emu, save)
		if err != nil {
			log.Fatalf("%v: %v", save, err)
		}
	}
}
