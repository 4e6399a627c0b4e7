package gtworld

import (
	"errors"

	"github.com/gtworld/gtworld/wire"
)

// Decode failures. Every failure aborts the whole Parse; no partial World is
// ever returned. Use errors.Is to classify.
var (
	// ErrTruncated: a read required more bytes than remained in the buffer.
	ErrTruncated = wire.ErrTruncated

	// ErrInvalidEncoding: a length-prefixed string's payload is not valid
	// text in the wire encoding.
	ErrInvalidEncoding = wire.ErrInvalidEncoding

	// ErrUnknownItem: a tile with extra data references a foreground item
	// the database has no entry for. Guessing a payload shape would
	// desynchronize the cursor for every subsequent tile.
	ErrUnknownItem = errors.New("gtworld: foreground item not in item database")

	// ErrUnknownVariant: the item's category maps to no known payload shape.
	// Failing beats silently treating the tile as Basic and dropping bytes.
	ErrUnknownVariant = errors.New("gtworld: item category has no extra-data codec")
)
