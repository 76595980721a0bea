package main

import (
	"os"

	"github.com/ezrec/docore/cpu"
	"github.com/ezrec/docore/emulator"
)

// loadFile loads a YAML register state into the emulator.
func loadFile(emu *emulator.Emulator, path string) (err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	err = emu.LoadState(inf)

	return
}

// assembleFile assembles an assembly source file.
func assembleFile(emu *emulator.Emulator, path string) (prog *cpu.Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err = emu.Assemble(inf)

	return
}

// saveFile writes the emulator register state as YAML.
func saveFile(emu *emulator.Emulator, path string) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	err = emu.SaveState(ouf)
	if err != nil {
		ouf.Close()
		return
	}

	err = ouf.Close()

	return
}
