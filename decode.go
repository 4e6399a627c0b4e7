package gtworld

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gtworld/gtworld/item"
	"github.com/gtworld/gtworld/wire"
)

// droppedItemSize is the wire size of one dropped-item record.
const droppedItemSize = 16

// Decoder decodes world blobs against a shared, read-only item database.
// One Decoder may be used for many worlds; concurrent Parse calls are safe
// as long as nothing mutates the database.
type Decoder struct {
	db  item.Database
	log *zap.Logger
}

// NewDecoder returns a Decoder. A nil logger disables warnings.
func NewDecoder(db item.Database, log *zap.Logger) *Decoder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Decoder{db: db, log: log}
}

// Parse decodes a world blob with a one-off Decoder and no logging.
func Parse(data []byte, db item.Database) (*World, error) {
	return NewDecoder(db, nil).Parse(data)
}

// Parse decodes one world. Any failure aborts the whole decode: a tile that
// cannot be decoded leaves the cursor at an unknown offset, so there is no
// meaningful partial result.
func (d *Decoder) Parse(data []byte) (*World, error) {
	r := wire.NewReader(data)
	w := &World{db: d.db}

	f := &fieldReader{r: r}
	w.Version = f.u16()
	w.Flags = f.u32()
	w.Name = f.str16()
	w.Width = f.u32()
	w.Height = f.u32()
	w.TileCount = f.u32()
	f.bytes(w.Unknown1[:])
	if f.err != nil {
		return nil, fmt.Errorf("world header: %w", f.err)
	}

	// TileCount is the authoritative loop bound; the dimensions are
	// descriptive. A mismatch is suspicious but decodable.
	if w.TileCount != w.Width*w.Height {
		d.log.Warn("tile count does not match world dimensions",
			zap.String("world", w.Name),
			zap.Uint32("tile_count", w.TileCount),
			zap.Uint32("width", w.Width),
			zap.Uint32("height", w.Height))
	}

	// A tile is at least 8 bytes, so a count that cannot fit in the
	// remaining buffer is rejected before allocating.
	if n := f.elems(w.TileCount, 8); f.err != nil {
		return nil, fmt.Errorf("tile count %d: %w", w.TileCount, f.err)
	} else {
		w.Tiles = make([]Tile, 0, n)
	}
	for i := uint32(0); i < w.TileCount; i++ {
		t, err := d.decodeTile(r)
		if err != nil {
			return nil, fmt.Errorf("tile %d: %w", i, err)
		}
		w.Tiles = append(w.Tiles, *t)
	}

	f = &fieldReader{r: r}
	f.bytes(w.Unknown2[:])
	w.Dropped.Count = f.u32()
	w.Dropped.LastUID = f.u32()
	n := f.elems(w.Dropped.Count, droppedItemSize)
	w.Dropped.Items = make([]DroppedItem, 0, n)
	for i := 0; i < n && f.err == nil; i++ {
		w.Dropped.Items = append(w.Dropped.Items, DroppedItem{
			ID:    f.u16(),
			X:     f.f32(),
			Y:     f.f32(),
			Count: f.u8(),
			Flags: f.u8(),
			UID:   f.u32(),
		})
	}
	if f.err != nil {
		return nil, fmt.Errorf("dropped items: %w", f.err)
	}

	w.BaseWeather = WeatherType(f.u16())
	w.UnknownWeather = f.u16()
	w.CurrentWeather = WeatherType(f.u16())
	if f.err != nil {
		return nil, fmt.Errorf("weather footer: %w", f.err)
	}

	return w, nil
}

func (d *Decoder) decodeTile(r *wire.Reader) (*Tile, error) {
	f := &fieldReader{r: r}
	t := &Tile{
		ForegroundItemID: f.u16(),
		BackgroundItemID: f.u16(),
		ParentBlockIndex: f.u16(),
	}
	t.Flags = TileFlagsFromBits(f.u16())
	if f.err != nil {
		return nil, f.err
	}

	if t.Flags.HasParent {
		pl, err := r.U16()
		if err != nil {
			return nil, err
		}
		t.ParentLock = pl
	}

	if !t.Flags.HasExtraData {
		t.Extra = &Basic{}
	} else {
		meta, ok := d.db.Lookup(t.ForegroundItemID)
		if !ok {
			return nil, fmt.Errorf("%w: id %d at offset %d",
				ErrUnknownItem, t.ForegroundItemID, r.Pos())
		}
		extra, err := decodeExtra(r, t, meta)
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", meta.ID, meta.Name, err)
		}
		t.Extra = extra
	}

	if t.ForegroundItemID == labeledBlockItemID {
		s, err := r.Str32()
		if err != nil {
			return nil, err
		}
		t.TrailingText = s
	}

	return t, nil
}
