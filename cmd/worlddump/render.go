package main

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/gtworld/gtworld"
	"github.com/gtworld/gtworld/item"
)

const tilePx = 4

// renderPNG draws one filled square per tile, colored by the foreground
// item's base color (background item when the foreground is empty). Items
// missing from the table render gray rather than failing the dump.
func renderPNG(path string, w *gtworld.World, db item.Database) error {
	img := image.NewRGBA(image.Rect(0, 0, int(w.Width)*tilePx, int(w.Height)*tilePx))

	for y := uint32(0); y < w.Height; y++ {
		for x := uint32(0); x < w.Width; x++ {
			t := w.Tile(x, y)
			if t == nil {
				continue
			}
			c := tileColor(t, db)
			for dy := 0; dy < tilePx; dy++ {
				for dx := 0; dx < tilePx; dx++ {
					img.Set(int(x)*tilePx+dx, int(y)*tilePx+dy, c)
				}
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func tileColor(t *gtworld.Tile, db item.Database) color.RGBA {
	id := t.ForegroundItemID
	if id == 0 {
		id = t.BackgroundItemID
	}
	if id == 0 {
		return color.RGBA{A: 0xff} // empty cell, black
	}
	meta, ok := db.Lookup(id)
	if !ok || meta.BaseColor == 0 {
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	}
	// BaseColor is packed ARGB.
	return color.RGBA{
		R: uint8(meta.BaseColor >> 16),
		G: uint8(meta.BaseColor >> 8),
		B: uint8(meta.BaseColor),
		A: 0xff,
	}
}
