package types

import (
	"github.com/ethereum/go-ethereum/common"
)

// Bitmap is the fixed-width unsigned integer shared by the component
// allocator, entity composite masks, and system query masks.
type Bitmap uint64

// BitmapWidth is the number of bits in a Bitmap. The allocator pre-increments
// its counter before issuing an index, so bit 0 is never assigned and the
// usable capacity is BitmapWidth-1 component slots.
const BitmapWidth = 64

// Contains reports whether every bit of query is set in b.
func (b Bitmap) Contains(query Bitmap) bool {
	return b&query == query
}

// EntityID identifies an entity within a world. IDs start at 1 and are never
// reused, even for entities whose components have since been unregistered.
type EntityID uint64

// EntityRecord is the stored value for a single entity: the OR of the bits
// issued for its components at spawn time, and the addresses that actually
// received a bit (addresses that were already registered elsewhere are
// excluded from both).
type EntityRecord struct {
	Bitmask    Bitmap           `json:"bitmask"`
	Components []common.Address `json:"components"`
}
