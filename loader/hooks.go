package loader

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/arkelian/stygian/rng"
)

// RegisterRandomHooks binds the random engine's operations as the global
// functions the game scripts call. All four route to the one shared
// engine; none of them re-enters it, and the draw order is exactly the
// script's call order. Each hook accepts and ignores the trailing opaque
// identifier argument the scripts pass.
func RegisterRandomHooks(L *lua.LState, eng *rng.Engine) {
	// randomseed(seed?, id?) — a missing or non-numeric seed means 0.
	L.SetGlobal("randomseed", L.NewFunction(func(L *lua.LState) int {
		seed := int32(0)
		if n, ok := L.Get(1).(lua.LNumber); ok {
			seed = int32(n)
		}
		eng.Reseed(seed)
		return 0
	}))

	// randomint(min, max, id?)
	L.SetGlobal("randomint", L.NewFunction(func(L *lua.LState) int {
		min := int32(L.CheckInt(1))
		max := int32(L.CheckInt(2))
		L.Push(lua.LNumber(eng.RandInt(min, max)))
		return 1
	}))

	// random() — uniform double in [0, 1).
	L.SetGlobal("random", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(eng.RandDouble()))
		return 1
	}))

	// randomgaussian() — always 0.0, consuming no random words.
	L.SetGlobal("randomgaussian", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LNumber(eng.Gaussian()))
		return 1
	}))
}
