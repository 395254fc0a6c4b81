// Stygian replays a game's scripted simulation against its save file,
// reproducing the engine's exact random sequence for route planning.
// Usage: stygian [--version] [--verbose] [--inspect] --scripts-dir <dir> --save <file> [--engine <file>] [<script.lua>]
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/arkelian/stygian/cli"
	"github.com/arkelian/stygian/config"
	"github.com/arkelian/stygian/tui"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}

	verbose := false
	inspect := false
	scriptsDir := cfg.ScriptsDir
	saveFile := cfg.SaveFile
	engineFile := cfg.EngineFile
	var scriptFile string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("stygian %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--verbose":
			verbose = true
		case "--inspect":
			inspect = true
		case "--scripts-dir", "-s":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--scripts-dir requires a directory path\n")
				os.Exit(1)
			}
			i++
			scriptsDir = args[i]
		case "--save", "-f":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--save requires a file path\n")
				os.Exit(1)
			}
			i++
			saveFile = args[i]
		case "--engine":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--engine requires a file path\n")
				os.Exit(1)
			}
			i++
			engineFile = args[i]
		default:
			if scriptFile == "" {
				scriptFile = args[i]
			}
		}
	}

	setupLogging(cfg.LogLevel, verbose)

	if saveFile == "" || (!inspect && (scriptsDir == "" || scriptFile == "")) {
		fmt.Fprintf(os.Stderr, "Usage: stygian [--version] [--verbose] [--inspect] --scripts-dir <dir> --save <file> [--engine <file>] [<script.lua>]\n")
		os.Exit(1)
	}

	// Inspect mode: browse the parsed save instead of running a script.
	if inspect {
		if err := tui.Run(saveFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	r := &cli.Runner{
		ScriptsDir: scriptsDir,
		SaveFile:   saveFile,
		ScriptFile: scriptFile,
		EngineFile: engineFile,
	}
	if err := r.Run(); err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}
}

// setupLogging installs a console writer on stderr. Save-side warnings
// always show; debug detail only with --verbose.
func setupLogging(level string, verbose bool) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	log.Logger = log.Output(output)

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	if verbose {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
