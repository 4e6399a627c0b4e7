package gtworld

import "github.com/gtworld/gtworld/wire"

// Serialize encodes the world back into the wire format. It is the exact
// mirror of Parse: for any world a successful Parse produced, the output is
// byte-identical to the original buffer. No database access happens here —
// each tile's stored payload shape is authoritative.
//
// A hand-built world with an inconsistent Tile/payload pairing serializes
// without error but will not parse back; that is the caller's contract to
// keep.
func (w *World) Serialize() []byte {
	out := wire.NewWriter()
	out.PutU16(w.Version)
	out.PutU32(w.Flags)
	out.PutStr16(w.Name)
	out.PutU32(w.Width)
	out.PutU32(w.Height)
	out.PutU32(w.TileCount)
	out.PutBytes(w.Unknown1[:])

	for i := range w.Tiles {
		w.Tiles[i].encodeTo(out)
	}

	out.PutBytes(w.Unknown2[:])
	out.PutU32(w.Dropped.Count)
	out.PutU32(w.Dropped.LastUID)
	for _, it := range w.Dropped.Items {
		out.PutU16(it.ID)
		out.PutF32(it.X)
		out.PutF32(it.Y)
		out.PutU8(it.Count)
		out.PutU8(it.Flags)
		out.PutU32(it.UID)
	}

	out.PutU16(uint16(w.BaseWeather))
	out.PutU16(w.UnknownWeather)
	out.PutU16(uint16(w.CurrentWeather))
	return out.Bytes()
}

func (t *Tile) encodeTo(w *wire.Writer) {
	w.PutU16(t.ForegroundItemID)
	w.PutU16(t.BackgroundItemID)
	w.PutU16(t.ParentBlockIndex)
	w.PutU16(t.Flags.Bits())

	if t.Flags.HasParent {
		w.PutU16(t.ParentLock)
	}
	if t.Flags.HasExtraData && t.Extra != nil {
		t.Extra.encodeTo(w)
	}
	if t.ForegroundItemID == labeledBlockItemID {
		w.PutStr32(t.TrailingText)
	}
}
