package assets

import (
	_ "embed"
	"fmt"
	"image"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

//go:embed raven_editor_icon.svg
var iconSVG string

// IconSizes are the sizes handed to the window manager.
var IconSizes = []int{16, 32, 48, 64, 128, 256}

// Icons renders the embedded icon at every size in IconSizes.
func Icons() ([]image.Image, error) {
	icons := make([]image.Image, 0, len(IconSizes))
	for _, size := range IconSizes {
		img, err := RenderIcon(size)
		if err != nil {
			return nil, err
		}
		icons = append(icons, img)
	}
	return icons, nil
}

// RenderIcon rasterises the embedded icon to a size x size RGBA image.
func RenderIcon(size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("icon size %d", size)
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(iconSVG))
	if err != nil {
		return nil, fmt.Errorf("parse icon: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(size, size, scanner), 1.0)
	return rgba, nil
}
