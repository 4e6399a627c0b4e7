// Package gtworld decodes and re-encodes the game's world-state binary blob.
//
// Parse walks the flat byte buffer once, building a typed World; Serialize
// replays the same field order and reproduces the input byte for byte. The
// tile payload shape is chosen by the foreground item's category, resolved
// through a caller-supplied item.Database; undocumented byte regions are
// carried on the model verbatim so nothing is lost in a round trip.
package gtworld

import "github.com/gtworld/gtworld/item"

// World is one decoded world snapshot. Callers may mutate it freely between
// Parse and Serialize; the codec itself never touches it after returning.
type World struct {
	// Version and Flags form the blob preamble. Meaning undocumented;
	// preserved verbatim.
	Version uint16 `json:"version"`
	Flags   uint32 `json:"flags"`

	Name      string `json:"name"`
	Width     uint32 `json:"width"`
	Height    uint32 `json:"height"`
	TileCount uint32 `json:"tile_count"`

	// Unknown1 sits between the header and the first tile.
	Unknown1 [5]byte `json:"unknown_1"`

	// Tiles holds exactly TileCount tiles in stream order, row-major:
	// index i is the cell at (i % Width, i / Width).
	Tiles []Tile `json:"tiles"`

	// Unknown2 sits between the last tile and the dropped-items block.
	Unknown2 [12]byte `json:"unknown_2"`

	Dropped Dropped `json:"dropped"`

	BaseWeather WeatherType `json:"base_weather"`
	// UnknownWeather is the word between the two weather fields.
	UnknownWeather uint16      `json:"unknown_weather"`
	CurrentWeather WeatherType `json:"current_weather"`

	db item.Database
}

// Database returns the item database this world was decoded against.
func (w *World) Database() item.Database {
	return w.db
}

// TileIndex returns the tile at stream index i, or nil when out of range.
func (w *World) TileIndex(i uint32) *Tile {
	if i >= uint32(len(w.Tiles)) {
		return nil
	}
	return &w.Tiles[i]
}

// Tile returns the tile at (x, y), or nil when out of bounds.
func (w *World) Tile(x, y uint32) *Tile {
	if x >= w.Width || y >= w.Height {
		return nil
	}
	i := y*w.Width + x
	if i >= uint32(len(w.Tiles)) {
		return nil
	}
	return &w.Tiles[i]
}

// Harvestable reports whether the tile at (x, y) is a grown Seed or
// ChemicalSource.
func (w *World) Harvestable(x, y uint32) bool {
	t := w.Tile(x, y)
	if t == nil {
		return false
	}
	return t.Harvestable(w.db)
}

// Dropped is the block of items lying loose on the ground.
type Dropped struct {
	// Count mirrors the wire count field; keep it equal to len(Items)
	// when mutating.
	Count   uint32        `json:"items_count"`
	LastUID uint32        `json:"last_dropped_item_uid"`
	Items   []DroppedItem `json:"items"`
}

// DroppedItem is one loose item. The field widths were reverse-engineered
// from captured buffers and are locked in by round-trip tests.
type DroppedItem struct {
	ID    uint16  `json:"id"`
	X     float32 `json:"x"`
	Y     float32 `json:"y"`
	Count uint8   `json:"count"`
	Flags uint8   `json:"flags"`
	UID   uint32  `json:"uid"`
}
