// Package registry implements a minimal entity-component-system registry
// persisted in a keyed store. One logical world exists per storage namespace,
// created once by Genesis. Entities bundle component addresses; each distinct
// component address is assigned a unique bit in a fixed-width bitmap by the
// register, and systems declare interest under a query bitmask.
package registry

import (
	"context"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"pkg.world.dev/world-registry/ecs"
	"pkg.world.dev/world-registry/storage"
	"pkg.world.dev/world-registry/types"
)

// Registry exposes the world operations. Every operation loads the records it
// needs from storage, mutates them in memory, and commits the changed records
// atomically; a failed operation leaves storage untouched.
//
// All mutating operations except Genesis are guarded: before genesis has run
// they are silent no-ops.
type Registry struct {
	store storage.StateStorage
	log   zerolog.Logger
}

func New(store storage.StateStorage) *Registry {
	return &Registry{
		store: store,
		log:   zerolog.New(os.Stdout).With().Timestamp().Logger(),
	}
}

// WithLogger replaces the registry's logger.
func (r *Registry) WithLogger(log zerolog.Logger) *Registry {
	r.log = log
	return r
}

// Genesis creates the world exactly once. Repeat calls are silent no-ops; the
// original name is kept.
func (r *Registry) Genesis(ctx context.Context, name string) error {
	performed, err := r.store.GenesisPerformed(ctx)
	if err != nil {
		return err
	}
	if performed {
		r.log.Debug().Str("name", name).Msg("genesis already performed, ignoring")
		return nil
	}
	world := ecs.NewWorld(name)
	if err := r.store.CommitGenesis(ctx, world); err != nil {
		return err
	}
	r.log.Info().Str("name", name).Msg("world created")
	return nil
}

// World returns a snapshot of the world record. It fails with
// ecs.ErrWorldNotFound before genesis has run.
func (r *Registry) World(ctx context.Context) (*ecs.World, error) {
	world, ok, err := r.store.World(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, eris.Wrap(ecs.ErrWorldNotFound, "cannot get world")
	}
	return world, nil
}

// Spawn creates an entity from the given component addresses. Components
// that already own a bit are excluded from the new entity; if none of the
// addresses yields a bit, no entity is created and nothing is persisted.
func (r *Registry) Spawn(ctx context.Context, components []common.Address) error {
	world, ok, err := r.loadWorldIfGenesis(ctx)
	if err != nil || !ok {
		return err
	}
	register, ok, err := r.store.Register(ctx)
	if err != nil {
		return err
	}
	if !ok {
		// The register is created lazily by the first registration.
		register = ecs.NewRegister()
	}
	created, err := world.Spawn(register, components)
	if err != nil {
		return err
	}
	if !created {
		r.log.Debug().Int("requested_components", len(components)).
			Msg("no component yielded a bit, entity not created")
		return nil
	}
	if err := r.store.CommitState(ctx, world, register); err != nil {
		return err
	}
	r.logSpawn(world.NextEntityID, world.Entities[world.NextEntityID])
	return nil
}

// Despawn releases the component's slot in the global register. Entity
// records are left untouched. Despawning before any registration has created
// the register is a precondition failure.
func (r *Registry) Despawn(ctx context.Context, component common.Address) error {
	world, ok, err := r.loadWorldIfGenesis(ctx)
	if err != nil || !ok {
		return err
	}
	register, ok, err := r.store.Register(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return eris.Wrap(ecs.ErrRegisterNotFound, "cannot unregister component")
	}
	world.Despawn(register, component)
	if err := r.store.CommitState(ctx, nil, register); err != nil {
		return err
	}
	r.log.Info().Str("component", component.Hex()).Msg("component unregistered")
	return nil
}

// AddSystem registers handler under the query bitmask, replacing any handler
// already registered under the same mask.
func (r *Registry) AddSystem(ctx context.Context, query types.Bitmap, handler common.Address) error {
	world, ok, err := r.loadWorldIfGenesis(ctx)
	if err != nil || !ok {
		return err
	}
	world.AddSystem(query, handler)
	if err := r.store.CommitState(ctx, world, nil); err != nil {
		return err
	}
	r.log.Info().
		Uint64("query", uint64(query)).
		Str("handler", handler.Hex()).
		Msg("system registered")
	return nil
}

// RemoveSystem drops the handler registered under the query bitmask, if any.
func (r *Registry) RemoveSystem(ctx context.Context, query types.Bitmap) error {
	world, ok, err := r.loadWorldIfGenesis(ctx)
	if err != nil || !ok {
		return err
	}
	world.RemoveSystem(query)
	if err := r.store.CommitState(ctx, world, nil); err != nil {
		return err
	}
	r.log.Info().Uint64("query", uint64(query)).Msg("system removed")
	return nil
}

// loadWorldIfGenesis loads the world record when genesis has been performed.
// ok is false when the operation should be a silent no-op.
func (r *Registry) loadWorldIfGenesis(ctx context.Context) (*ecs.World, bool, error) {
	performed, err := r.store.GenesisPerformed(ctx)
	if err != nil {
		return nil, false, err
	}
	if !performed {
		r.log.Debug().Msg("genesis not performed, ignoring operation")
		return nil, false, nil
	}
	world, ok, err := r.store.World(ctx)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, eris.Wrap(ecs.ErrWorldNotFound, "genesis flag set but world record missing")
	}
	return world, true, nil
}

func (r *Registry) Close() error {
	return r.store.Close()
}
