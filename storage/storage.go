package storage

import (
	"context"

	"pkg.world.dev/world-registry/ecs"
)

// StateStorage is the keyed store the world registry lives in. State is held
// under three top-level keys per namespace: the genesis flag, the World
// record, and the Register record. Loads report absence via the ok return
// rather than an error; commits are atomic across every record they touch.
type StateStorage interface {
	// GenesisPerformed reports whether the one-time genesis flag is set.
	GenesisPerformed(ctx context.Context) (bool, error)

	// World loads the world record. ok is false when genesis has not run.
	World(ctx context.Context) (world *ecs.World, ok bool, err error)

	// Register loads the register record. ok is false when no component has
	// ever been registered.
	Register(ctx context.Context) (register *ecs.Register, ok bool, err error)

	// CommitGenesis atomically sets the genesis flag and writes the initial
	// world record.
	CommitGenesis(ctx context.Context, world *ecs.World) error

	// CommitState atomically writes the given records. A nil world or nil
	// register means that record is unchanged and is left untouched.
	CommitState(ctx context.Context, world *ecs.World, register *ecs.Register) error

	Close() error
}
