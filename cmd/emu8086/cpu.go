package main

import (
	"github.com/kformaniak/emu8086/arch"
	"github.com/kformaniak/emu8086/arch/cpu/x86"
	"github.com/kformaniak/emu8086/log"
)

// newCPU builds a CPU for the named system profile, then applies any
// explicit reset-vector overrides from the config.
func newCPU(logger *log.Logger, system arch.System, cfg *emulatorConfig) (*x86.CPU, error) {
	mem := x86.NewMemory(logger)
	cpu, err := x86.New(mem, x86.WithLogger(logger), x86.WithSystem(system))
	if err != nil {
		return nil, err
	}

	if cfg.ResetCS >= 0 {
		cpu.CS = uint16(cfg.ResetCS)
	}
	if cfg.ResetIP >= 0 {
		cpu.IP = uint16(cfg.ResetIP)
	}
	return cpu, nil
}
