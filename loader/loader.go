// Package loader hosts the Lua side of the pipeline: it creates the VM,
// loads game scripts with byte-order-mark stripping, exposes the Import
// global, binds the random-engine hooks, and injects decoded save state
// into the script globals.
package loader

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
)

// Open creates the Lua VM the game scripts run in. The full standard
// library set is opened — the scripts are the game's own and expect it —
// but math.randomseed is removed so every scripted reseed goes through
// the engine hook instead.
func Open() *lua.LState {
	L := lua.NewState()
	if mathTbl, ok := L.GetGlobal("math").(*lua.LTable); ok {
		mathTbl.RawSetString("randomseed", lua.LNil)
	}
	return L
}

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// ReadScript reads a script file and strips a leading UTF-8 byte order
// mark, so no downstream consumer ever sees one.
func ReadScript(path string) ([]byte, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}
	return bytes.TrimPrefix(src, byteOrderMark), nil
}

// RunScript loads and executes one script file in L. The chunk is named
// after the file so script errors point at the right source.
func RunScript(L *lua.LState, path string) error {
	src, err := ReadScript(path)
	if err != nil {
		return err
	}
	fn, err := L.Load(bytes.NewReader(src), filepath.Base(path))
	if err != nil {
		return fmt.Errorf("loading script %s: %w", path, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return fmt.Errorf("executing script %s: %w", path, err)
	}
	return nil
}

// RegisterImport binds the Import global the game scripts use to pull in
// their siblings, resolved relative to the scripts directory.
func RegisterImport(L *lua.LState, scriptsDir string) {
	L.SetGlobal("Import", L.NewFunction(func(L *lua.LState) int {
		name := L.CheckString(1)
		if err := RunScript(L, filepath.Join(scriptsDir, name)); err != nil {
			L.RaiseError("Import %q: %v", name, err)
		}
		return 0
	}))
}
