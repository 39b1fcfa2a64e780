package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

type darwinLocator struct{}

func newDarwinLocator() Locator {
	return &darwinLocator{}
}

func (l *darwinLocator) GetFontPaths() (FontPaths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return FontPaths{}, fmt.Errorf("getting user home directory: %w", err)
	}

	return FontPaths{
		SystemDirs: []string{"/System/Library/Fonts", "/Library/Fonts"},
		UserDir:    filepath.Join(homeDir, "Library/Fonts"),
	}, nil
}
