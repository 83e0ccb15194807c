package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"

	"pkg.world.dev/world-registry/codec"
	"pkg.world.dev/world-registry/ecs"
	"pkg.world.dev/world-registry/storage"
)

var _ storage.StateStorage = &Storage{}

func (r *Storage) GenesisPerformed(ctx context.Context) (bool, error) {
	res, err := r.Client.Get(ctx, r.genesisKey()).Result()
	err = eris.Wrap(err, "")
	if eris.Is(eris.Cause(err), redis.Nil) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	return res == "1", nil
}

func (r *Storage) World(ctx context.Context) (*ecs.World, bool, error) {
	bz, err := r.Client.Get(ctx, r.worldKey()).Bytes()
	err = eris.Wrap(err, "")
	if eris.Is(eris.Cause(err), redis.Nil) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	world, err := codec.Decode[ecs.World](bz)
	if err != nil {
		return nil, false, err
	}
	return &world, true, nil
}

func (r *Storage) Register(ctx context.Context) (*ecs.Register, bool, error) {
	bz, err := r.Client.Get(ctx, r.registerKey()).Bytes()
	err = eris.Wrap(err, "")
	if eris.Is(eris.Cause(err), redis.Nil) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, err
	}
	register, err := codec.Decode[ecs.Register](bz)
	if err != nil {
		return nil, false, err
	}
	return &register, true, nil
}

func (r *Storage) CommitGenesis(ctx context.Context, world *ecs.World) error {
	bz, err := codec.Encode(world)
	if err != nil {
		return err
	}
	pipe := r.Client.TxPipeline()
	pipe.Set(ctx, r.genesisKey(), "1", 0)
	pipe.Set(ctx, r.worldKey(), bz, 0)
	_, err = pipe.Exec(ctx)
	return eris.Wrap(err, "failed to commit genesis records")
}

// CommitState writes the changed records in one atomic transaction. If an
// error is returned, no redis changes will have been made.
func (r *Storage) CommitState(ctx context.Context, world *ecs.World, register *ecs.Register) error {
	if world == nil && register == nil {
		return nil
	}
	pipe := r.Client.TxPipeline()
	if world != nil {
		bz, err := codec.Encode(world)
		if err != nil {
			return err
		}
		pipe.Set(ctx, r.worldKey(), bz, 0)
	}
	if register != nil {
		bz, err := codec.Encode(register)
		if err != nil {
			return err
		}
		pipe.Set(ctx, r.registerKey(), bz, 0)
	}
	_, err := pipe.Exec(ctx)
	return eris.Wrap(err, "failed to commit state records")
}
