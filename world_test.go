package gtworld_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/gtworld/gtworld"
	"github.com/gtworld/gtworld/item"
	"github.com/gtworld/gtworld/wire"
)

// Test item ids. One per exercised payload shape, offset so they never
// collide with the special-cased game ids.
func variantItemID(c item.Category) uint16 {
	return 1000 + uint16(c)
}

const (
	guildLockID   uint16 = 5814
	labeledID     uint16 = 14666
	noCodecItemID uint16 = 7777 // category with no payload codec
	missingItemID uint16 = 9999 // absent from the database
)

func testDB(cats ...item.Category) *item.Store {
	db := item.NewStore()
	for _, c := range cats {
		db.Put(&item.Meta{
			ID:       variantItemID(c),
			Name:     "test item",
			Category: c,
			GrowTime: 200,
		})
	}
	db.Put(&item.Meta{ID: guildLockID, Name: "Guild Lock", Category: item.CategoryLock})
	db.Put(&item.Meta{ID: noCodecItemID, Name: "Mystery Block", Category: item.Category(5)})
	return db
}

var (
	headerUnknown = []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x05}
	midUnknown    = []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
)

func putHeader(w *wire.Writer, name string, width, height, count uint32) {
	w.PutU16(3) // version
	w.PutU32(0) // world flags
	w.PutStr16(name)
	w.PutU32(width)
	w.PutU32(height)
	w.PutU32(count)
	w.PutBytes(headerUnknown)
}

func putFooter(w *wire.Writer, base, current uint16) {
	w.PutBytes(midUnknown)
	w.PutU32(0) // dropped count
	w.PutU32(0) // last dropped uid
	w.PutU16(base)
	w.PutU16(0)
	w.PutU16(current)
}

func putBaseTile(w *wire.Writer, fg, bg, parent, flags uint16) {
	w.PutU16(fg)
	w.PutU16(bg)
	w.PutU16(parent)
	w.PutU16(flags)
}

// singleTileWorld builds a 1x1 world whose only tile is written by fn.
func singleTileWorld(fn func(w *wire.Writer)) []byte {
	w := wire.NewWriter()
	putHeader(w, "TEST", 1, 1, 1)
	fn(w)
	putFooter(w, 0, 0)
	return w.Bytes()
}

func TestParseBasicWorld(t *testing.T) {
	db := testDB()

	w := wire.NewWriter()
	putHeader(w, "START", 2, 2, 4)
	putBaseTile(w, 0, 20, 0, 0)
	putBaseTile(w, 2, 20, 0, 0)
	putBaseTile(w, 0, 0, 0, 0)
	putBaseTile(w, 0, 20, 0, 0x0020) // flipped
	putFooter(w, 4, 11)
	data := w.Bytes()

	world, err := gtworld.Parse(data, db)
	require.NoError(t, err)

	assert.Equal(t, uint16(3), world.Version)
	assert.Equal(t, "START", world.Name)
	assert.Equal(t, uint32(2), world.Width)
	assert.Equal(t, uint32(2), world.Height)
	assert.Equal(t, uint32(4), world.TileCount)
	assert.Equal(t, headerUnknown, world.Unknown1[:])
	assert.Equal(t, midUnknown, world.Unknown2[:])
	require.Len(t, world.Tiles, 4)

	// A tile with the extra-data flag clear is Basic no matter what its
	// foreground id maps to.
	for i := range world.Tiles {
		assert.IsType(t, &gtworld.Basic{}, world.Tiles[i].Extra, "tile %d", i)
	}
	assert.True(t, world.Tiles[3].Flags.FlippedX)
	assert.Equal(t, gtworld.WeatherType(4), world.BaseWeather)
	assert.Equal(t, gtworld.WeatherType(11), world.CurrentWeather)

	assert.Equal(t, data, world.Serialize())
}

func TestTileAccessor(t *testing.T) {
	db := testDB()
	w := wire.NewWriter()
	putHeader(w, "GRID", 3, 2, 6)
	for i := 0; i < 6; i++ {
		putBaseTile(w, uint16(i), 0, 0, 0)
	}
	putFooter(w, 0, 0)

	world, err := gtworld.Parse(w.Bytes(), db)
	require.NoError(t, err)

	// Row-major: (x, y) is index y*width+x.
	require.NotNil(t, world.Tile(2, 1))
	assert.Equal(t, uint16(5), world.Tile(2, 1).ForegroundItemID)
	assert.Equal(t, uint16(3), world.Tile(0, 1).ForegroundItemID)

	assert.Nil(t, world.Tile(3, 0))
	assert.Nil(t, world.Tile(0, 2))
}

// The byte-for-byte scenario: one Lock tile with an empty access list.
func TestParseLockWorld(t *testing.T) {
	lockID := variantItemID(item.CategoryLock)
	db := testDB(item.CategoryLock)

	data := singleTileWorld(func(w *wire.Writer) {
		putBaseTile(w, lockID, 0, 0, 0x0001)
		w.PutU8(0x01)  // settings
		w.PutU32(42)   // owner uid
		w.PutU32(0)    // access count
		w.PutU8(0)     // minimum level
		w.PutBytes(make([]byte, 7))
	})

	world, err := gtworld.Parse(data, db)
	require.NoError(t, err)
	require.Len(t, world.Tiles, 1)

	lock, ok := world.Tiles[0].Extra.(*gtworld.Lock)
	require.True(t, ok)
	assert.Equal(t, uint8(1), lock.Settings)
	assert.Equal(t, uint32(42), lock.OwnerUID)
	assert.Equal(t, uint32(0), lock.AccessCount)
	assert.Empty(t, lock.AccessUIDs)
	assert.Nil(t, lock.GuildData)

	assert.Equal(t, data, world.Serialize())
}

func TestParseLockAccessList(t *testing.T) {
	lockID := variantItemID(item.CategoryLock)
	db := testDB(item.CategoryLock)

	data := singleTileWorld(func(w *wire.Writer) {
		putBaseTile(w, lockID, 0, 0, 0x0001)
		w.PutU8(8)
		w.PutU32(1001)
		w.PutU32(2)
		w.PutU32(2001)
		w.PutU32(2002)
		w.PutU8(1)
		w.PutBytes([]byte{9, 8, 7, 6, 5, 4, 3})
	})

	world, err := gtworld.Parse(data, db)
	require.NoError(t, err)

	lock := world.Tiles[0].Extra.(*gtworld.Lock)
	assert.Equal(t, []uint32{2001, 2002}, lock.AccessUIDs)
	assert.Equal(t, uint8(1), lock.MinimumLevel)
	assert.Equal(t, [7]byte{9, 8, 7, 6, 5, 4, 3}, lock.Unknown1)

	assert.Equal(t, data, world.Serialize())
}

// The guild lock item carries a 16-byte trailer after the lock payload.
func TestParseGuildLockTrailer(t *testing.T) {
	db := testDB()
	trailer := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}

	data := singleTileWorld(func(w *wire.Writer) {
		putBaseTile(w, guildLockID, 0, 0, 0x0001)
		w.PutU8(0)
		w.PutU32(7)
		w.PutU32(0)
		w.PutU8(0)
		w.PutBytes(make([]byte, 7))
		w.PutBytes(trailer)
	})

	world, err := gtworld.Parse(data, db)
	require.NoError(t, err)

	lock := world.Tiles[0].Extra.(*gtworld.Lock)
	assert.Equal(t, trailer, lock.GuildData)

	assert.Equal(t, data, world.Serialize())
}

func TestParseParentLock(t *testing.T) {
	doorID := variantItemID(item.CategoryDoor)
	db := testDB(item.CategoryDoor)

	t.Run("parent word only", func(t *testing.T) {
		data := singleTileWorld(func(w *wire.Writer) {
			putBaseTile(w, 0, 20, 3, 0x0002)
			w.PutU16(0xBEEF)
		})
		world, err := gtworld.Parse(data, db)
		require.NoError(t, err)

		tile := &world.Tiles[0]
		assert.True(t, tile.Flags.HasParent)
		assert.Equal(t, uint16(0xBEEF), tile.ParentLock)
		assert.Equal(t, uint16(3), tile.ParentBlockIndex)
		assert.IsType(t, &gtworld.Basic{}, tile.Extra)

		assert.Equal(t, data, world.Serialize())
	})

	t.Run("parent word precedes payload", func(t *testing.T) {
		data := singleTileWorld(func(w *wire.Writer) {
			putBaseTile(w, doorID, 0, 1, 0x0003)
			w.PutU16(0xCAFE)    // parent word first
			w.PutStr16("EXIT")  // then the door payload
			w.PutU8(1)
		})
		world, err := gtworld.Parse(data, db)
		require.NoError(t, err)

		tile := &world.Tiles[0]
		assert.Equal(t, uint16(0xCAFE), tile.ParentLock)
		door := tile.Extra.(*gtworld.Door)
		assert.Equal(t, "EXIT", door.Text)

		assert.Equal(t, data, world.Serialize())
	})
}

// The labeled block is followed by a u32-prefixed string even when the tile
// has no extra data; the item needs no database entry for the fast path.
func TestParseLabeledBlockTrailingText(t *testing.T) {
	db := testDB()

	data := singleTileWorld(func(w *wire.Writer) {
		putBaseTile(w, labeledID, 0, 0, 0)
		w.PutStr32("display shelf")
	})

	world, err := gtworld.Parse(data, db)
	require.NoError(t, err)
	assert.Equal(t, "display shelf", world.Tiles[0].TrailingText)
	assert.IsType(t, &gtworld.Basic{}, world.Tiles[0].Extra)

	assert.Equal(t, data, world.Serialize())
}

func TestParseUnknownItem(t *testing.T) {
	db := testDB()

	data := singleTileWorld(func(w *wire.Writer) {
		putBaseTile(w, missingItemID, 0, 0, 0x0001)
	})
	_, err := gtworld.Parse(data, db)
	require.ErrorIs(t, err, gtworld.ErrUnknownItem)

	// Without the extra-data flag the database is never consulted.
	data = singleTileWorld(func(w *wire.Writer) {
		putBaseTile(w, missingItemID, 0, 0, 0)
	})
	_, err = gtworld.Parse(data, db)
	require.NoError(t, err)
}

func TestParseUnknownVariant(t *testing.T) {
	db := testDB()

	data := singleTileWorld(func(w *wire.Writer) {
		putBaseTile(w, noCodecItemID, 0, 0, 0x0001)
	})
	_, err := gtworld.Parse(data, db)
	require.ErrorIs(t, err, gtworld.ErrUnknownVariant)
}

func TestParseDroppedItems(t *testing.T) {
	db := testDB()

	w := wire.NewWriter()
	putHeader(w, "DROPS", 1, 1, 1)
	putBaseTile(w, 0, 0, 0, 0)
	w.PutBytes(midUnknown)
	w.PutU32(2)   // dropped count
	w.PutU32(501) // last uid
	w.PutU16(2)   // dirt
	w.PutF32(96)
	w.PutF32(128)
	w.PutU8(5)
	w.PutU8(0)
	w.PutU32(500)
	w.PutU16(112)
	w.PutF32(64.5)
	w.PutF32(32)
	w.PutU8(1)
	w.PutU8(8)
	w.PutU32(501)
	w.PutU16(0)
	w.PutU16(0)
	w.PutU16(0)
	data := w.Bytes()

	world, err := gtworld.Parse(data, db)
	require.NoError(t, err)

	assert.Equal(t, uint32(2), world.Dropped.Count)
	assert.Equal(t, uint32(501), world.Dropped.LastUID)
	require.Len(t, world.Dropped.Items, 2)
	assert.Equal(t, gtworld.DroppedItem{ID: 2, X: 96, Y: 128, Count: 5, UID: 500}, world.Dropped.Items[0])
	assert.Equal(t, gtworld.DroppedItem{ID: 112, X: 64.5, Y: 32, Count: 1, Flags: 8, UID: 501}, world.Dropped.Items[1])

	assert.Equal(t, data, world.Serialize())
}

func TestParseCorruptDroppedCount(t *testing.T) {
	db := testDB()

	w := wire.NewWriter()
	putHeader(w, "BAD", 1, 1, 1)
	putBaseTile(w, 0, 0, 0, 0)
	w.PutBytes(midUnknown)
	w.PutU32(0xFFFFFFFF) // absurd count, far more than remains
	w.PutU32(0)
	w.PutU16(0)
	w.PutU16(0)
	w.PutU16(0)

	_, err := gtworld.Parse(w.Bytes(), db)
	require.ErrorIs(t, err, gtworld.ErrTruncated)
}

func TestParseCorruptTileCount(t *testing.T) {
	db := testDB()

	w := wire.NewWriter()
	putHeader(w, "BAD", 1, 1, 0x10000000)
	putBaseTile(w, 0, 0, 0, 0)
	putFooter(w, 0, 0)

	_, err := gtworld.Parse(w.Bytes(), db)
	require.ErrorIs(t, err, gtworld.ErrTruncated)
}

// Truncating a valid buffer at any byte boundary must fail cleanly, never
// panic or return a partial world.
func TestTruncationSafety(t *testing.T) {
	doorID := variantItemID(item.CategoryDoor)
	lockID := variantItemID(item.CategoryLock)
	db := testDB(item.CategoryDoor, item.CategoryLock)

	w := wire.NewWriter()
	putHeader(w, "TRUNC", 3, 1, 3)
	putBaseTile(w, doorID, 0, 0, 0x0001)
	w.PutStr16("DOOR")
	w.PutU8(0)
	putBaseTile(w, lockID, 0, 0, 0x0003)
	w.PutU16(0x0001)
	w.PutU8(0)
	w.PutU32(42)
	w.PutU32(1)
	w.PutU32(77)
	w.PutU8(0)
	w.PutBytes(make([]byte, 7))
	putBaseTile(w, 0, 20, 0, 0)
	w.PutBytes(midUnknown)
	w.PutU32(1)
	w.PutU32(9)
	w.PutU16(2)
	w.PutF32(32)
	w.PutF32(32)
	w.PutU8(1)
	w.PutU8(0)
	w.PutU32(9)
	w.PutU16(4)
	w.PutU16(0)
	w.PutU16(4)
	data := w.Bytes()

	// Sanity: the full buffer parses and round-trips.
	world, err := gtworld.Parse(data, db)
	require.NoError(t, err)
	require.Equal(t, data, world.Serialize())

	for n := 0; n < len(data); n++ {
		_, err := gtworld.Parse(data[:n], db)
		require.ErrorIs(t, err, gtworld.ErrTruncated, "prefix of %d bytes", n)
	}
}

func TestTileCountMismatchWarns(t *testing.T) {
	db := testDB()

	w := wire.NewWriter()
	putHeader(w, "ODD", 2, 2, 1) // claims 2x2 but carries one tile
	putBaseTile(w, 0, 0, 0, 0)
	putFooter(w, 0, 0)

	core, logs := observer.New(zap.WarnLevel)
	dec := gtworld.NewDecoder(db, zap.New(core))

	world, err := dec.Parse(w.Bytes())
	require.NoError(t, err)
	assert.Len(t, world.Tiles, 1)

	entries := logs.FilterMessage("tile count does not match world dimensions").All()
	require.Len(t, entries, 1)
	assert.Equal(t, uint32(1), entries[0].ContextMap()["tile_count"])
}

func TestWorldHarvestable(t *testing.T) {
	seedID := variantItemID(item.CategorySeed)
	db := testDB(item.CategorySeed) // GrowTime 200

	w := wire.NewWriter()
	putHeader(w, "FARM", 2, 1, 2)
	putBaseTile(w, seedID, 0, 0, 0x0001)
	w.PutU32(500)
	w.PutU8(1)
	putBaseTile(w, seedID, 0, 0, 0x0001)
	w.PutU32(10)
	w.PutU8(0)
	putFooter(w, 0, 0)

	world, err := gtworld.Parse(w.Bytes(), db)
	require.NoError(t, err)

	assert.True(t, world.Harvestable(0, 0))
	assert.False(t, world.Harvestable(1, 0))
	assert.False(t, world.Harvestable(5, 5)) // out of bounds
}

func TestDecoderNilLogger(t *testing.T) {
	db := testDB()
	dec := gtworld.NewDecoder(db, nil)

	data := singleTileWorld(func(w *wire.Writer) {
		putBaseTile(w, 0, 0, 0, 0)
	})
	world, err := dec.Parse(data)
	require.NoError(t, err)
	assert.Same(t, db, world.Database().(*item.Store))
}
