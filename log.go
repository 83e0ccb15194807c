package registry

import (
	"github.com/rs/zerolog"

	"pkg.world.dev/world-registry/types"
)

// logSpawn emits one structured event per created entity, listing the
// components that were actually incorporated.
func (r *Registry) logSpawn(id types.EntityID, record types.EntityRecord) {
	arrayLogger := zerolog.Arr()
	for _, component := range record.Components {
		arrayLogger = arrayLogger.Str(component.Hex())
	}
	r.log.Info().
		Uint64("entity_id", uint64(id)).
		Uint64("bitmask", uint64(record.Bitmask)).
		Int("total_components", len(record.Components)).
		Array("components", arrayLogger).
		Msg("entity spawned")
}
