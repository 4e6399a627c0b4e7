package gtworld_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gtworld/gtworld"
	"github.com/gtworld/gtworld/item"
)

func TestTileFlagsBits(t *testing.T) {
	tests := []struct {
		bits uint16
		want gtworld.TileFlags
	}{
		{0, gtworld.TileFlags{}},
		{gtworld.FlagHasExtraData, gtworld.TileFlags{HasExtraData: true}},
		{gtworld.FlagHasParent | gtworld.FlagGlued, gtworld.TileFlags{HasParent: true, Glued: true}},
		{gtworld.FlagPaintedRed | gtworld.FlagPaintedGreen | gtworld.FlagPaintedBlue,
			gtworld.TileFlags{PaintedRed: true, PaintedGreen: true, PaintedBlue: true}},
		{0xFFFF, gtworld.TileFlags{
			HasExtraData: true, HasParent: true, WasSpliced: true, WillSpawnSeedsToo: true,
			IsSeedling: true, FlippedX: true, IsOn: true, IsOpenToPublic: true,
			BgIsOn: true, FgAltMode: true, IsWet: true, Glued: true,
			OnFire: true, PaintedRed: true, PaintedGreen: true, PaintedBlue: true,
		}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, gtworld.TileFlagsFromBits(tt.bits), "bits %#04x", tt.bits)
	}
}

// Bits must invert TileFlagsFromBits for every possible word, or flag words
// would drift across a round trip.
func TestTileFlagsRoundTrip(t *testing.T) {
	for v := 0; v <= 0xFFFF; v++ {
		bits := uint16(v)
		if got := gtworld.TileFlagsFromBits(bits).Bits(); got != bits {
			t.Fatalf("flags %#04x round-tripped to %#04x", bits, got)
		}
	}
}

func TestTileHarvestable(t *testing.T) {
	db := item.NewStore()
	db.Put(&item.Meta{ID: 4, Name: "Dirt Seed", Category: item.CategorySeed, GrowTime: 200})

	tests := []struct {
		name string
		tile gtworld.Tile
		want bool
	}{
		{
			"grown seed",
			gtworld.Tile{ForegroundItemID: 4, Extra: &gtworld.Seed{TimePassed: 500}},
			true,
		},
		{
			"ready flag set",
			gtworld.Tile{ForegroundItemID: 4, Extra: &gtworld.Seed{TimePassed: 0, ReadyToHarvest: true}},
			true,
		},
		{
			"still growing",
			gtworld.Tile{ForegroundItemID: 4, Extra: &gtworld.Seed{TimePassed: 100}},
			false,
		},
		{
			"grown chemical source",
			gtworld.Tile{ForegroundItemID: 4, Extra: &gtworld.ChemicalSource{TimePassed: 200}},
			true,
		},
		{
			"not a growable",
			gtworld.Tile{ForegroundItemID: 4, Extra: &gtworld.Sign{Text: "x"}},
			false,
		},
		{
			"item missing from database",
			gtworld.Tile{ForegroundItemID: 99, Extra: &gtworld.Seed{TimePassed: 500}},
			false,
		},
		{
			"basic tile",
			gtworld.Tile{ForegroundItemID: 4, Extra: &gtworld.Basic{}},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tile.Harvestable(db))
		})
	}
}

func TestWeatherTypeString(t *testing.T) {
	assert.Equal(t, "Default", gtworld.WeatherType(0).String())
	assert.Equal(t, "Sunset", gtworld.WeatherSunset.String())
	assert.Equal(t, "Night", gtworld.WeatherNight.String())
	assert.Equal(t, "Snowy", gtworld.WeatherType(11).String())
	assert.Equal(t, "Candyland", gtworld.WeatherType(78).String())
	assert.Equal(t, "WeatherType(500)", gtworld.WeatherType(500).String())
}
