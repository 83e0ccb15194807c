package ecs

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/rotisserie/eris"

	"pkg.world.dev/world-registry/types"
)

// Registered is the component allocation capability. Register is the only
// production implementation; the interface exists so world mutations can be
// exercised against a test double.
type Registered interface {
	// Register issues a fresh bit for addr. If addr already owns a bit the
	// second return value is false and no state changes; this is an expected
	// outcome, not an error.
	Register(addr common.Address) (types.Bitmap, bool, error)
	// Unregister removes addr from the register. Unknown addresses are a
	// silent no-op.
	Unregister(addr common.Address)
}

// Register assigns each distinct component address a unique bit position in a
// fixed-width bitmap. Allocation is monotonic: the counter is pre-incremented
// before every issue, so bit 0 is never assigned, and indices are never
// reused even after an address is unregistered.
type Register struct {
	// NextBit is the most recently issued bit index, 0 before any allocation.
	NextBit uint64 `json:"next_bit"`
	// Addresses holds every currently registered address in insertion order.
	Addresses []common.Address `json:"addresses"`
	// BitToAddress is an audit trail of every allocation ever made. Entries
	// are kept after Unregister.
	BitToAddress map[uint64]common.Address `json:"bit_to_address"`
}

var _ Registered = &Register{}

// NewRegister returns an empty register. The register is created lazily on
// the first component registration; callers that load state from storage get
// one of these when no register record exists yet.
func NewRegister() *Register {
	return &Register{
		Addresses:    []common.Address{},
		BitToAddress: map[uint64]common.Address{},
	}
}

func (r *Register) Register(addr common.Address) (types.Bitmap, bool, error) {
	for _, registered := range r.Addresses {
		if registered == addr {
			return 0, false, nil
		}
	}
	if r.NextBit+1 >= types.BitmapWidth {
		return 0, false, eris.Wrapf(
			ErrRegisterFull, "bit index %d does not fit in a %d-bit bitmap", r.NextBit+1, types.BitmapWidth,
		)
	}
	r.NextBit++
	r.Addresses = append(r.Addresses, addr)
	if r.BitToAddress == nil {
		r.BitToAddress = map[uint64]common.Address{}
	}
	r.BitToAddress[r.NextBit] = addr
	return types.Bitmap(1) << r.NextBit, true, nil
}

func (r *Register) Unregister(addr common.Address) {
	// Addresses is insertion-ordered, not sorted, so the lookup must not
	// assume any ordering. Removal keeps the relative order of the rest.
	for i, registered := range r.Addresses {
		if registered == addr {
			r.Addresses = append(r.Addresses[:i], r.Addresses[i+1:]...)
			return
		}
	}
}

// Owns reports whether addr currently holds a bit in this register.
func (r *Register) Owns(addr common.Address) bool {
	for _, registered := range r.Addresses {
		if registered == addr {
			return true
		}
	}
	return false
}
