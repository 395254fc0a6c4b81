package loader

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/arkelian/stygian/types"
)

// SaveDataGlobal is the Lua global holding the decoded save sequence.
const SaveDataGlobal = "RouteFinderSaveFileData"

// mergeChunk copies every key of every saved table into _G, except names
// the scripts list in SaveIgnores.
const mergeChunk = `
SaveIgnores = SaveIgnores or {}
for _, savedValues in pairs(` + SaveDataGlobal + `) do
  for key, value in pairs(savedValues) do
    if not SaveIgnores[key] then
      _G[key] = value
    end
  end
end
`

// InjectSave converts the decoded value sequence into Lua values, binds
// the sequence to SaveDataGlobal, and merges its contents into the
// script globals. An empty sequence is a valid input and injects nothing
// beyond the empty global — that is the degraded mode the pipeline falls
// back to when the save cannot be read.
func InjectSave(L *lua.LState, values []types.Value) error {
	seq := L.NewTable()
	for i, v := range values {
		seq.RawSetInt(i+1, toLua(L, v))
	}
	L.SetGlobal(SaveDataGlobal, seq)
	return L.DoString(mergeChunk)
}

// toLua maps a decoded value onto the VM's own representation. Duplicate
// table keys collapse to the last occurrence and nil keys are dropped —
// both are Lua table semantics, applied here at the binding layer and
// not in the decoder.
func toLua(L *lua.LState, v types.Value) lua.LValue {
	switch v.Kind {
	case types.KindBool:
		return lua.LBool(v.Bool)
	case types.KindNumber:
		return lua.LNumber(v.Number)
	case types.KindString:
		return lua.LString(v.Bytes)
	case types.KindTable:
		tbl := L.NewTable()
		for _, p := range v.Table {
			key := toLua(L, p.Key)
			if key == lua.LNil {
				continue
			}
			tbl.RawSet(key, toLua(L, p.Value))
		}
		return tbl
	default:
		return lua.LNil
	}
}
