package gtworld

import "github.com/gtworld/gtworld/item"

// Tile flag bits as they appear on the wire.
const (
	FlagHasExtraData      uint16 = 0x0001
	FlagHasParent         uint16 = 0x0002
	FlagWasSpliced        uint16 = 0x0004
	FlagWillSpawnSeedsToo uint16 = 0x0008
	FlagIsSeedling        uint16 = 0x0010
	FlagFlippedX          uint16 = 0x0020
	FlagIsOn              uint16 = 0x0040
	FlagIsOpenToPublic    uint16 = 0x0080
	FlagBgIsOn            uint16 = 0x0100
	FlagFgAltMode         uint16 = 0x0200
	FlagIsWet             uint16 = 0x0400
	FlagGlued             uint16 = 0x0800
	FlagOnFire            uint16 = 0x1000
	FlagPaintedRed        uint16 = 0x2000
	FlagPaintedGreen      uint16 = 0x4000
	FlagPaintedBlue       uint16 = 0x8000
)

// TileFlags is the unpacked tile bitfield. Bits() is the exact inverse of
// TileFlagsFromBits, so the raw word round-trips through the struct.
type TileFlags struct {
	HasExtraData      bool `json:"has_extra_data"`
	HasParent         bool `json:"has_parent"`
	WasSpliced        bool `json:"was_spliced"`
	WillSpawnSeedsToo bool `json:"will_spawn_seeds_too"`
	IsSeedling        bool `json:"is_seedling"`
	FlippedX          bool `json:"flipped_x"`
	IsOn              bool `json:"is_on"`
	IsOpenToPublic    bool `json:"is_open_to_public"`
	BgIsOn            bool `json:"bg_is_on"`
	FgAltMode         bool `json:"fg_alt_mode"`
	IsWet             bool `json:"is_wet"`
	Glued             bool `json:"glued"`
	OnFire            bool `json:"on_fire"`
	PaintedRed        bool `json:"painted_red"`
	PaintedGreen      bool `json:"painted_green"`
	PaintedBlue       bool `json:"painted_blue"`
}

func TileFlagsFromBits(v uint16) TileFlags {
	return TileFlags{
		HasExtraData:      v&FlagHasExtraData != 0,
		HasParent:         v&FlagHasParent != 0,
		WasSpliced:        v&FlagWasSpliced != 0,
		WillSpawnSeedsToo: v&FlagWillSpawnSeedsToo != 0,
		IsSeedling:        v&FlagIsSeedling != 0,
		FlippedX:          v&FlagFlippedX != 0,
		IsOn:              v&FlagIsOn != 0,
		IsOpenToPublic:    v&FlagIsOpenToPublic != 0,
		BgIsOn:            v&FlagBgIsOn != 0,
		FgAltMode:         v&FlagFgAltMode != 0,
		IsWet:             v&FlagIsWet != 0,
		Glued:             v&FlagGlued != 0,
		OnFire:            v&FlagOnFire != 0,
		PaintedRed:        v&FlagPaintedRed != 0,
		PaintedGreen:      v&FlagPaintedGreen != 0,
		PaintedBlue:       v&FlagPaintedBlue != 0,
	}
}

func (f TileFlags) Bits() uint16 {
	var v uint16
	set := func(on bool, bit uint16) {
		if on {
			v |= bit
		}
	}
	set(f.HasExtraData, FlagHasExtraData)
	set(f.HasParent, FlagHasParent)
	set(f.WasSpliced, FlagWasSpliced)
	set(f.WillSpawnSeedsToo, FlagWillSpawnSeedsToo)
	set(f.IsSeedling, FlagIsSeedling)
	set(f.FlippedX, FlagFlippedX)
	set(f.IsOn, FlagIsOn)
	set(f.IsOpenToPublic, FlagIsOpenToPublic)
	set(f.BgIsOn, FlagBgIsOn)
	set(f.FgAltMode, FlagFgAltMode)
	set(f.IsWet, FlagIsWet)
	set(f.Glued, FlagGlued)
	set(f.OnFire, FlagOnFire)
	set(f.PaintedRed, FlagPaintedRed)
	set(f.PaintedGreen, FlagPaintedGreen)
	set(f.PaintedBlue, FlagPaintedBlue)
	return v
}

// guildLockItemID carries a 16-byte trailer after the lock payload.
const guildLockItemID = 5814

// labeledBlockItemID is followed by a u32-prefixed string after the tile's
// payload section regardless of variant.
const labeledBlockItemID = 14666

// Tile is one grid cell. The coordinate is implicit in the tile's index
// within World.Tiles (row-major); it is never stored on the wire.
//
// Extra's concrete shape is fixed at decode time by the foreground item's
// category. Swapping Extra without updating ForegroundItemID produces a tile
// that will not survive a round trip.
type Tile struct {
	ForegroundItemID uint16    `json:"foreground_item_id"`
	BackgroundItemID uint16    `json:"background_item_id"`
	ParentBlockIndex uint16    `json:"parent_block_index"`
	Flags            TileFlags `json:"flags"`

	// ParentLock is the extra word present when Flags.HasParent is set.
	ParentLock uint16 `json:"parent_lock,omitempty"`

	Extra TileExtra `json:"extra"`

	// TrailingText follows the payload when the foreground item is the
	// labeled block (14666). Meaning undocumented; carried verbatim.
	TrailingText string `json:"trailing_text,omitempty"`
}

// Harvestable reports whether a Seed or ChemicalSource tile has passed its
// item's grow time. False for every other variant or when the item is
// missing from the database.
func (t *Tile) Harvestable(db item.Database) bool {
	var timePassed uint32
	switch e := t.Extra.(type) {
	case *Seed:
		if e.ReadyToHarvest {
			return true
		}
		timePassed = e.TimePassed
	case *ChemicalSource:
		if e.ReadyToHarvest {
			return true
		}
		timePassed = e.TimePassed
	default:
		return false
	}
	m, ok := db.Lookup(t.ForegroundItemID)
	if !ok {
		return false
	}
	return timePassed >= m.GrowTime
}
