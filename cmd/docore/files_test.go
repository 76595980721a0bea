package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/docore/cpu"
	"github.com/ezrec/docore/emulator"
)

func TestFiles(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	emu := emulator.NewEmulator()
	emu.Cpu.Register[3] = 0xdeadbeef

	state := filepath.Join(dir, "state.yaml")
	err := saveFile(emu, state)
	assert.NoError(err)

	other := emulator.NewEmulator()
	err = loadFile(other, state)
	assert.NoError(err)
	assert.Equal(emu.Cpu.Register, other.Cpu.Register)

	// The saved file is complete and closed; it can be replaced in place.
	err = saveFile(other, state)
	assert.NoError(err)

	source := filepath.Join(dir, "prog.s")
	err = os.WriteFile(source, []byte("add r1 r3\nxor\tr2\tr3\n"), 0o644)
	assert.NoError(err)

	prog, err := assembleFile(emu, source)
	assert.NoError(err)
	if assert.NotNil(prog) {
		assert.Equal([]uint32{0x1842, 0x1883}, prog.Binary())
	}

	err = os.WriteFile(source, []byte(".word -0x80000001\n"), 0o644)
	assert.NoError(err)
	_, err = assembleFile(emu, source)
	assert.ErrorIs(err, cpu.ErrParseNumber("-0x80000001"))

	_, err = assembleFile(emu, filepath.Join(dir, "missing.s"))
	assert.ErrorIs(err, os.ErrNotExist)

	err = loadFile(emu, filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(err, os.ErrNotExist)

	err = saveFile(emu, filepath.Join(dir, "nodir", "state.yaml"))
	assert.Error(err)
}
