// Command emu8086 runs machine-language programs against the 8086
// step-execution emulator and checks per-opcode reference tests against it.
package main

import (
	"fmt"
	"os"

	"github.com/kformaniak/emu8086/arch"
	"github.com/kformaniak/emu8086/arch/cpu/x86"
	"github.com/kformaniak/emu8086/buildinfo"
	"github.com/kformaniak/emu8086/cli"
	"github.com/kformaniak/emu8086/config"
	"github.com/kformaniak/emu8086/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	cmd := cli.NewCommand("emu8086", "Intel 8086 step-execution emulator")
	cmd.SetVersion(buildinfo.Version(version, commit, date))
	cmd.AddSubcommand("run", "load a flat binary image and run it to completion", runCommand)
	cmd.AddSubcommand("conformance", "run gzipped-JSON single-step reference tests", conformanceCommand)

	os.Exit(cmd.Execute(os.Args[1:]))
}

// emulatorConfig is the [emulator] section of an emu8086 INI config file,
// as consumed by the run subcommand's --config flag.
type emulatorConfig struct {
	System   string `config:"emulator.system,default=bios"`
	ResetCS  int    `config:"emulator.reset_cs,default=-1"`
	ResetIP  int    `config:"emulator.reset_ip,default=-1"`
	LogLevel string `config:"emulator.log_level,default=info"`
}

type runOptions struct {
	ConfigPath string `flag:"c,config" usage:"path to an emu8086 INI config file"`
	Image      string `flag:"image" usage:"flat binary image to load at the reset CS:IP" required:"true"`
	LoadAddr   uint   `flag:"at" usage:"linear address the image is loaded at when --use-at is set" default:"0"`
	UseAt      bool   `flag:"use-at" usage:"load at --at instead of the reset CS:IP"`
}

func runCommand(args []string) int {
	fs := cli.NewFlagSet("emu8086 run")
	var opts runOptions
	fs.AddSection("Run options", &opts)

	if _, err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	cfg := emulatorConfig{System: "bios", ResetCS: -1, ResetIP: -1, LogLevel: "info"}
	if opts.ConfigPath != "" {
		if err := config.Load(opts.ConfigPath, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
			return 1
		}
	}

	logger := log.New()
	logger.SetLevel(parseLevel(cfg.LogLevel))

	system, ok := arch.SystemFromString(cfg.System)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown system %q\n", cfg.System)
		return 1
	}

	image, err := os.ReadFile(opts.Image)
	if err != nil {
		fmt.Fprintf(os.Stderr, "reading image: %v\n", err)
		return 1
	}

	cpu, err := newCPU(logger, system, &cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "constructing CPU: %v\n", err)
		return 1
	}

	loadAt := x86.Phys(cpu.CS, cpu.IP)
	if opts.UseAt {
		loadAt = uint32(opts.LoadAddr)
	}
	cpu.Memory().LoadBytes(loadAt, image)

	if err := cpu.Run(); err != nil {
		logger.Error("run halted", log.Err(err))
		return 1
	}
	return 0
}

type conformanceOptions struct {
	Dir string `flag:"dir" usage:"directory of .json.gz single-step reference test files" required:"true"`
}

func conformanceCommand(args []string) int {
	fs := cli.NewFlagSet("emu8086 conformance")
	var opts conformanceOptions
	fs.AddSection("Conformance options", &opts)

	if _, err := fs.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	return runConformance(opts.Dir)
}

func parseLevel(level string) log.Level {
	switch level {
	case "trace":
		return log.TraceLevel
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
