package engine

import "sync"

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// Default returns the process-wide engine, created on first use with the
// package logger and the local filesystem.
func Default() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = New()
	})
	return defaultEngine
}

// RegisterFont registers a font file with the default engine.
func RegisterFont(path string) (bool, error) {
	return Default().RegisterFont(path)
}

// RegisterFonts registers a font directory with the default engine.
func RegisterFonts(dir string, recurse bool) (bool, error) {
	return Default().RegisterFonts(dir, recurse)
}

// FaceNames lists the faces known to the default engine.
func FaceNames() []string {
	return Default().FaceNames()
}
