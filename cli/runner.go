// Package cli orchestrates the replay pipeline: boot the game scripts in
// a Lua VM, reconstruct the saved state from the save file, inject it,
// then run the user's script against the bound random hooks.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/arkelian/stygian/loader"
	"github.com/arkelian/stygian/luabins"
	"github.com/arkelian/stygian/rng"
	"github.com/arkelian/stygian/savefile"
	"github.com/arkelian/stygian/types"
)

// bootScripts are the game's own entry points, executed from the scripts
// directory before any state is injected.
var bootScripts = []string{"Main.lua", "RoomManager.lua"}

// Runner holds the resolved paths for one replay run.
type Runner struct {
	ScriptsDir string // the game's Scripts directory
	SaveFile   string // the save container to reconstruct state from
	ScriptFile string // the user's script, run last
	EngineFile string // engine-callback stub, run first
}

// Run executes the full pipeline. Save-side failures (missing, corrupt,
// truncated, wrong version) are non-fatal: they are logged and the run
// continues with no injected state, so the script still executes. Script
// errors are fatal and returned.
func (r *Runner) Run() error {
	L := loader.Open()
	defer L.Close()

	eng := rng.New(0)
	loader.RegisterRandomHooks(L, eng)
	loader.RegisterImport(L, r.ScriptsDir)

	if err := loader.RunScript(L, r.EngineFile); err != nil {
		return err
	}
	for _, name := range bootScripts {
		if err := loader.RunScript(L, filepath.Join(r.ScriptsDir, name)); err != nil {
			return err
		}
	}

	values := r.loadSaveValues()
	if err := loader.InjectSave(L, values); err != nil {
		return fmt.Errorf("injecting save state: %w", err)
	}

	return loader.RunScript(L, r.ScriptFile)
}

// loadSaveValues reconstructs the decoded value sequence from the save
// file, substituting an empty sequence on any failure.
func (r *Runner) loadSaveValues() []types.Value {
	sd, values, err := LoadSave(r.SaveFile)
	if err != nil {
		log.Warn().Err(err).Str("save", r.SaveFile).
			Msg("continuing without save state")
		return nil
	}
	log.Info().Str("save", r.SaveFile).Uint32("runs", sd.Runs).
		Int("values", len(values)).Msg("save state loaded")
	return values
}

// LoadSave reads, parses, decompresses, and decodes a save file. On
// failure it returns whatever parsed cleanly (possibly nil) along with
// the error; callers decide whether that is fatal.
func LoadSave(path string) (*savefile.SaveData, []types.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading save file: %w", err)
	}
	sd, err := savefile.Parse(data)
	if err != nil {
		return nil, nil, err
	}
	raw, err := sd.Decompress()
	if err != nil {
		return sd, nil, err
	}
	values, err := luabins.Load(raw)
	if err != nil {
		return sd, nil, err
	}
	return sd, values, nil
}
