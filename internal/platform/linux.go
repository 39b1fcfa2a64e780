package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

type linuxLocator struct{}

func newLinuxLocator() Locator {
	return &linuxLocator{}
}

func (l *linuxLocator) GetFontPaths() (FontPaths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return FontPaths{}, fmt.Errorf("getting user home directory: %w", err)
	}

	return FontPaths{
		SystemDirs: []string{"/usr/share/fonts", "/usr/local/share/fonts"},
		UserDir:    filepath.Join(homeDir, ".local/share/fonts"),
	}, nil
}
