package platform

import (
	"runtime"
)

// FontPaths represents system and user font directories
type FontPaths struct {
	SystemDirs []string // System-wide font directories
	UserDir    string   // User-specific font directory
}

// All returns the system directories followed by the user directory
func (p FontPaths) All() []string {
	dirs := make([]string, 0, len(p.SystemDirs)+1)
	dirs = append(dirs, p.SystemDirs...)
	if p.UserDir != "" {
		dirs = append(dirs, p.UserDir)
	}
	return dirs
}

// Locator reports where a platform keeps its fonts
type Locator interface {
	// GetFontPaths returns the system and user font directories
	GetFontPaths() (FontPaths, error)
}

// New returns the locator for the running platform
func New() Locator {
	return ForOS(runtime.GOOS)
}

// ForOS returns the locator for the named GOOS. Anything other than
// darwin is treated as a freedesktop-style system.
func ForOS(goos string) Locator {
	if goos == "darwin" {
		return newDarwinLocator()
	}
	return newLinuxLocator()
}
