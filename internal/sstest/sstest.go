// Package sstest loads and runs per-opcode single-step reference tests:
// gzipped JSON arrays of {initial, final, bytes}, each describing one
// instruction's effect on registers and the bytes of memory it touched.
// This is the bespoke test format spec.md §8 describes; no example repo
// in the pack ships a library for it, so the loader is built directly on
// encoding/json and compress/gzip.
package sstest

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/kformaniak/emu8086/arch/cpu/x86"
)

// RegState captures the subset of CPU register state a reference test
// observes before and after the instruction under test.
type RegState struct {
	AX, BX, CX, DX     uint16
	SP, BP, SI, DI     uint16
	CS, DS, SS, ES, IP uint16
	Flags              uint16
}

// RAMEntry is one (address, value) byte observed by the reference test,
// either seeded before the instruction or asserted after it.
type RAMEntry struct {
	Addr uint32
	Val  uint8
}

// Case is a single reference test: the CPU and memory state before
// executing Bytes, and the state the reference implementation observed
// afterward.
type Case struct {
	Name    string     `json:"name"`
	Initial StateJSON  `json:"initial"`
	Final   StateJSON  `json:"final"`
	Bytes   []uint8    `json:"bytes"`
}

// StateJSON is the wire shape of a Case's "initial" or "final" object.
type StateJSON struct {
	Regs RegState   `json:"regs"`
	RAM  []RAMEntry `json:"ram"`
}

// Load reads a gzip-compressed JSON array of Case values from path.
func Load(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening reference test file: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("opening gzip stream: %w", err)
	}
	defer gz.Close()

	data, err := io.ReadAll(gz)
	if err != nil {
		return nil, fmt.Errorf("reading reference test file: %w", err)
	}

	var cases []Case
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("decoding reference test JSON: %w", err)
	}
	return cases, nil
}

// Mismatch describes one register or memory byte whose post-instruction
// value disagreed with the reference test's expectation.
type Mismatch struct {
	Field string
	Want  uint32
	Got   uint32
}

// Run executes a single Case against cpu and reports every mismatch
// between the actual post-Step state and Final.
func Run(cpu *x86.CPU, c Case) ([]Mismatch, error) {
	seed(cpu, c.Initial)
	cpu.Memory().LoadBytes(x86.Phys(cpu.CS, cpu.IP), c.Bytes)

	if _, err := cpu.Step(); err != nil {
		return nil, fmt.Errorf("executing case %q: %w", c.Name, err)
	}

	return diff(cpu, c.Final), nil
}

func seed(cpu *x86.CPU, s StateJSON) {
	cpu.AX, cpu.BX, cpu.CX, cpu.DX = s.Regs.AX, s.Regs.BX, s.Regs.CX, s.Regs.DX
	cpu.SP, cpu.BP, cpu.SI, cpu.DI = s.Regs.SP, s.Regs.BP, s.Regs.SI, s.Regs.DI
	cpu.CS, cpu.DS, cpu.SS, cpu.ES = s.Regs.CS, s.Regs.DS, s.Regs.SS, s.Regs.ES
	cpu.IP = s.Regs.IP
	cpu.Flags = x86.Flags(s.Regs.Flags)
	for _, b := range s.RAM {
		cpu.Memory().WriteByte(b.Addr, b.Val)
	}
}

func diff(cpu *x86.CPU, want StateJSON) []Mismatch {
	var mismatches []Mismatch
	check := func(field string, wantV, gotV uint16) {
		if wantV != gotV {
			mismatches = append(mismatches, Mismatch{field, uint32(wantV), uint32(gotV)})
		}
	}
	check("AX", want.Regs.AX, cpu.AX)
	check("BX", want.Regs.BX, cpu.BX)
	check("CX", want.Regs.CX, cpu.CX)
	check("DX", want.Regs.DX, cpu.DX)
	check("SP", want.Regs.SP, cpu.SP)
	check("BP", want.Regs.BP, cpu.BP)
	check("SI", want.Regs.SI, cpu.SI)
	check("DI", want.Regs.DI, cpu.DI)
	check("CS", want.Regs.CS, cpu.CS)
	check("DS", want.Regs.DS, cpu.DS)
	check("SS", want.Regs.SS, cpu.SS)
	check("ES", want.Regs.ES, cpu.ES)
	check("IP", want.Regs.IP, cpu.IP)
	check("Flags", want.Regs.Flags, uint16(cpu.Flags))

	for _, b := range want.RAM {
		if got := cpu.Memory().ReadByte(b.Addr); got != b.Val {
			mismatches = append(mismatches, Mismatch{
				Field: fmt.Sprintf("RAM[0x%05X]", b.Addr),
				Want:  uint32(b.Val),
				Got:   uint32(got),
			})
		}
	}
	return mismatches
}
