package emulator

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/ezrec/docore/cpu"
)

// State is the saved register state of the emulator.
type State struct {
	Registers map[string]uint32 `yaml:"registers"`
}

// registerIndex maps a register name (r0 .. r7) to its index.
func registerIndex(name string) (index int, ok bool) {
	for n := range cpu.REGISTER_COUNT {
		if name == fmt.Sprintf("r%d", n) {
			return n, true
		}
	}
	return
}

// State returns the current register state.
func (emu *Emulator) State() (state State) {
	state.Registers = make(map[string]uint32, cpu.REGISTER_COUNT)
	for n, value := range emu.Cpu.Register {
		state.Registers[fmt.Sprintf("r%d", n)] = value
	}

	return
}

// SetState updates the registers named in the state. Registers not named
// keep their current value. On error no register is changed.
func (emu *Emulator) SetState(state State) (err error) {
	regs := emu.Cpu.Register
	for name, value := range state.Registers {
		index, ok := registerIndex(name)
		if !ok {
			err = ErrStateRegister(name)
			return
		}
		regs[index] = value
	}

	emu.Cpu.Register = regs

	return
}

// LoadState reads a YAML register state.
func (emu *Emulator) LoadState(input io.Reader) (err error) {
	data, err := io.ReadAll(input)
	if err != nil {
		return
	}

	var state State
	err = yaml.Unmarshal(data, &state)
	if err != nil {
		return
	}

	return emu.SetState(state)
}

// SaveState writes the register state as YAML.
func (emu *Emulator) SaveState(output io.Writer) (err error) {
	data, err := yaml.Marshal(emu.State())
	if err != nil {
		return
	}

	_, err = output.Write(data)

	return
}
