package ecs

import (
	"github.com/ethereum/go-ethereum/common"

	"pkg.world.dev/world-registry/types"
)

// World is the singleton aggregate for one deployment namespace: the entity
// table and the system registry. It is loaded from storage, mutated in
// memory, and written back by the operation facade; nothing in this package
// touches storage.
type World struct {
	Name         string                                `json:"name"`
	NextEntityID types.EntityID                        `json:"next_entity_id"`
	Entities     map[types.EntityID]types.EntityRecord `json:"entities"`
	Systems      map[types.Bitmap]common.Address       `json:"systems"`
}

func NewWorld(name string) *World {
	return &World{
		Name:     name,
		Entities: map[types.EntityID]types.EntityRecord{},
		Systems:  map[types.Bitmap]common.Address{},
	}
}

// Spawn registers each component address in order and, if at least one of
// them was newly registered, stores a new entity whose bitmask is the OR of
// the issued bits and whose component list holds exactly the addresses that
// received a bit. Addresses that already own a bit (including the second
// occurrence of a duplicate within the same call) are skipped. When no
// address yields a bit the world is left untouched, no entity ID is consumed,
// and created is false.
func (w *World) Spawn(reg Registered, components []common.Address) (created bool, err error) {
	var bitmask types.Bitmap
	filtered := make([]common.Address, 0, len(components))
	for _, component := range components {
		bit, allocated, err := reg.Register(component)
		if err != nil {
			return false, err
		}
		if !allocated {
			continue
		}
		bitmask |= bit
		filtered = append(filtered, component)
	}
	if bitmask == 0 {
		return false, nil
	}
	w.NextEntityID++
	w.Entities[w.NextEntityID] = types.EntityRecord{
		Bitmask:    bitmask,
		Components: filtered,
	}
	return true, nil
}

// Despawn releases the component's global slot in the register. Entity
// records are immutable history: the record (and bitmask) of any entity that
// incorporated this component is deliberately left as-is.
func (w *World) Despawn(reg Registered, component common.Address) {
	reg.Unregister(component)
}

// AddSystem registers handler under the exact query bitmask, silently
// replacing any handler previously registered under the same mask.
func (w *World) AddSystem(query types.Bitmap, handler common.Address) {
	w.Systems[query] = handler
}

// RemoveSystem drops the handler registered under the exact query bitmask.
// Unknown masks are a no-op.
func (w *World) RemoveSystem(query types.Bitmap) {
	delete(w.Systems, query)
}
