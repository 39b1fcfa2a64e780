package engine

import (
	stderrors "errors"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/errors"
	"golang.org/x/image/font/sfnt"
)

// parseFaces reads every face in a font file. Single fonts are treated as a
// collection holding one font. Faces without a family name are dropped.
func parseFaces(path string, data []byte) ([]Face, error) {
	collection, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeInvalidInput, "parsing font file %q", path)
	}

	var buf sfnt.Buffer
	faces := make([]Face, 0, collection.NumFonts())
	for i := 0; i < collection.NumFonts(); i++ {
		font, err := collection.Font(i)
		if err != nil {
			return nil, errors.Wrapf(err, errors.CodeInvalidInput, "reading face %d of %q", i, path)
		}

		family, err := fontName(font, &buf, sfnt.NameIDFamily)
		if err != nil {
			return nil, errors.Wrapf(err, errors.CodeInvalidInput, "reading family name of face %d in %q", i, path)
		}
		if family == "" {
			continue
		}

		style, err := fontName(font, &buf, sfnt.NameIDSubfamily)
		if err != nil {
			return nil, errors.Wrapf(err, errors.CodeInvalidInput, "reading style name of face %d in %q", i, path)
		}

		faces = append(faces, Face{
			Name:   faceName(family, style),
			Family: family,
			Style:  style,
			Path:   path,
			Index:  i,
		})
	}

	return faces, nil
}

// fontName returns an empty string when the name table has no such entry.
func fontName(font *sfnt.Font, buf *sfnt.Buffer, id sfnt.NameID) (string, error) {
	name, err := font.Name(buf, id)
	if stderrors.Is(err, sfnt.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

func faceName(family, style string) string {
	if style == "" {
		return family
	}
	return family + " " + style
}

// Helper functions

func isFontFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf", ".ttc", ".otc":
		return true
	}
	return false
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
