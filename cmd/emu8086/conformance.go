package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/kformaniak/emu8086/arch/cpu/x86"
	"github.com/kformaniak/emu8086/internal/sstest"
	"github.com/kformaniak/emu8086/log"
)

// runConformance runs every *.json.gz reference-test file under dir
// against a fresh CPU per case, printing a FAIL line for each failing case
// (followed by one line per mismatched field) and a final pass/fail summary.
func runConformance(dir string) int {
	files, err := filepath.Glob(filepath.Join(dir, "*.json.gz"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "listing reference test files: %v\n", err)
		return 1
	}
	sort.Strings(files)

	if len(files) == 0 {
		fmt.Fprintf(os.Stderr, "no .json.gz reference test files found under %s\n", dir)
		return 1
	}

	total, failed := 0, 0
	for _, f := range files {
		cases, err := sstest.Load(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", f, err)
			failed++
			continue
		}

		for _, c := range cases {
			total++
			mem := x86.NewMemory(log.NewNop())
			cpu, err := x86.New(mem)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: constructing CPU: %v\n", f, err)
				failed++
				continue
			}

			mismatches, err := sstest.Run(cpu, c)
			if err != nil {
				fmt.Printf("FAIL %s/%s: %v\n", filepath.Base(f), c.Name, err)
				failed++
				continue
			}
			if len(mismatches) > 0 {
				fmt.Printf("FAIL %s/%s:\n", filepath.Base(f), c.Name)
				for _, m := range mismatches {
					fmt.Printf("  %s: want 0x%X, got 0x%X\n", m.Field, m.Want, m.Got)
				}
				failed++
			}
		}
	}

	fmt.Printf("%d/%d cases passed\n", total-failed, total)
	if failed > 0 {
		return 1
	}
	return 0
}
