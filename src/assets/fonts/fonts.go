// Package fonts selects the UI font. The fonts ship with golang.org/x/image.
package fonts

import (
	"strings"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
)

// FontInfo describes an available font
type FontInfo struct {
	Name        string
	DisplayName string
	Data        []byte
}

// AvailableFonts returns all bundled fonts
func AvailableFonts() []FontInfo {
	return []FontInfo{
		{Name: "gomono", DisplayName: "Go Mono", Data: gomono.TTF},
		{Name: "gomono-bold", DisplayName: "Go Mono Bold", Data: gomonobold.TTF},
	}
}

// GetFont returns the font data by name (case insensitive)
func GetFont(name string) ([]byte, bool) {
	for _, f := range AvailableFonts() {
		if strings.EqualFold(f.Name, name) {
			return f.Data, true
		}
	}
	return nil, false
}

// DefaultFontName is used when the config names no font or an unknown one.
const DefaultFontName = "gomono"

// DefaultFont returns the default font data.
func DefaultFont() []byte {
	return gomono.TTF
}
