// Package bridge exposes a font engine to Lua scripts.
//
// Open installs a FontEngine table with three functions:
//
//	FontEngine.register_font(file_name)        -> boolean
//	FontEngine.register_fonts(dir [, recurse]) -> boolean
//	FontEngine.face_names()                    -> { name, ... }
//
// Calls are forwarded to the engine as they arrive. Engine errors are raised
// as Lua errors carrying the engine's message.
package bridge

import (
	"github.com/Shopify/go-lua"
)

// ModuleName is the global and require() name of the installed table.
const ModuleName = "FontEngine"

// Engine is the font registry the bridge forwards to.
type Engine interface {
	RegisterFont(path string) (bool, error)
	RegisterFonts(dir string, recurse bool) (bool, error)
	FaceNames() []string
}

// Open installs the FontEngine table into state, bound to engine.
// The table is set as a global and recorded in package.loaded.
func Open(state *lua.State, engine Engine) {
	lua.Require(state, ModuleName, func(l *lua.State) int {
		lua.NewLibrary(l, functions(engine))
		return 1
	}, true)
	state.Pop(1)
}

func functions(engine Engine) []lua.RegistryFunction {
	return []lua.RegistryFunction{
		{Name: "register_font", Function: registerFont(engine)},
		{Name: "register_fonts", Function: registerFonts(engine)},
		{Name: "face_names", Function: faceNames(engine)},
	}
}

func registerFont(engine Engine) lua.Function {
	return func(state *lua.State) int {
		fileName := lua.CheckString(state, 1)

		ok, err := engine.RegisterFont(fileName)
		if err != nil {
			raise(state, err)
		}
		state.PushBoolean(ok)
		return 1
	}
}

// registerFonts accepts (dir) and (dir, recurse). A missing or nil recurse
// is resolved to false here so the engine always receives a concrete value.
func registerFonts(engine Engine) lua.Function {
	return func(state *lua.State) int {
		dir := lua.CheckString(state, 1)

		recurse := false
		if !state.IsNoneOrNil(2) {
			lua.CheckType(state, 2, lua.TypeBoolean)
			recurse = state.ToBoolean(2)
		}

		ok, err := engine.RegisterFonts(dir, recurse)
		if err != nil {
			raise(state, err)
		}
		state.PushBoolean(ok)
		return 1
	}
}

// faceNames copies the engine's names into a new array table.
func faceNames(engine Engine) lua.Function {
	return func(state *lua.State) int {
		names := engine.FaceNames()

		state.CreateTable(len(names), 0)
		for i, name := range names {
			state.PushString(name)
			state.RawSetInt(-2, i+1)
		}
		return 1
	}
}

// raise throws err as a Lua error. It does not return.
func raise(state *lua.State, err error) {
	state.PushString(err.Error())
	state.Error()
}
