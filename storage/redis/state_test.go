package redis_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/ethereum/go-ethereum/common"
	goredis "github.com/redis/go-redis/v9"
	"gotest.tools/v3/assert"

	"pkg.world.dev/world-registry/ecs"
	redisstorage "pkg.world.dev/world-registry/storage/redis"
	"pkg.world.dev/world-registry/types"
)

func newStorageForTest(t *testing.T) *redisstorage.Storage {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{
		Addr:     s.Addr(),
		Password: "", // no password set
		DB:       0,  // use default DB
	})
	storage := redisstorage.NewStorageWithClient(client, "test")
	return &storage
}

func testAddress(i int) common.Address {
	return common.HexToAddress(fmt.Sprintf("0x%040x", i+1))
}

func TestGenesisFlagDefaultsToFalse(t *testing.T) {
	storage := newStorageForTest(t)
	ctx := context.Background()

	performed, err := storage.GenesisPerformed(ctx)
	assert.NilError(t, err)
	assert.Equal(t, false, performed)

	_, ok, err := storage.World(ctx)
	assert.NilError(t, err)
	assert.Equal(t, false, ok)
}

func TestCommitGenesisSetsFlagAndWorldAtomically(t *testing.T) {
	storage := newStorageForTest(t)
	ctx := context.Background()

	assert.NilError(t, storage.CommitGenesis(ctx, ecs.NewWorld("alpha")))

	performed, err := storage.GenesisPerformed(ctx)
	assert.NilError(t, err)
	assert.Equal(t, true, performed)

	world, ok, err := storage.World(ctx)
	assert.NilError(t, err)
	assert.Equal(t, true, ok)
	assert.Equal(t, "alpha", world.Name)
	assert.Equal(t, types.EntityID(0), world.NextEntityID)
	assert.Equal(t, 0, len(world.Entities))
	assert.Equal(t, 0, len(world.Systems))
}

func TestWorldRoundTrip(t *testing.T) {
	storage := newStorageForTest(t)
	ctx := context.Background()

	world := ecs.NewWorld("alpha")
	register := ecs.NewRegister()
	created, err := world.Spawn(register, []common.Address{testAddress(0), testAddress(1)})
	assert.NilError(t, err)
	assert.Equal(t, true, created)
	world.AddSystem(types.Bitmap(6), testAddress(10))

	assert.NilError(t, storage.CommitState(ctx, world, register))

	loaded, ok, err := storage.World(ctx)
	assert.NilError(t, err)
	assert.Equal(t, true, ok)
	assert.DeepEqual(t, world, loaded)
}

func TestRegisterRoundTrip(t *testing.T) {
	storage := newStorageForTest(t)
	ctx := context.Background()

	register := ecs.NewRegister()
	for i := 0; i < 3; i++ {
		_, _, err := register.Register(testAddress(i))
		assert.NilError(t, err)
	}
	register.Unregister(testAddress(1))

	assert.NilError(t, storage.CommitState(ctx, nil, register))

	loaded, ok, err := storage.Register(ctx)
	assert.NilError(t, err)
	assert.Equal(t, true, ok)
	assert.DeepEqual(t, register, loaded)
}

func TestCommitStateSkipsNilRecords(t *testing.T) {
	storage := newStorageForTest(t)
	ctx := context.Background()

	assert.NilError(t, storage.CommitState(ctx, ecs.NewWorld("alpha"), nil))

	_, ok, err := storage.Register(ctx)
	assert.NilError(t, err)
	assert.Equal(t, false, ok)

	// Committing nothing is fine.
	assert.NilError(t, storage.CommitState(ctx, nil, nil))
}

func TestNamespacesAreIsolated(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	first := redisstorage.NewStorageWithClient(client, "first")
	second := redisstorage.NewStorageWithClient(client, "second")
	ctx := context.Background()

	assert.NilError(t, first.CommitGenesis(ctx, ecs.NewWorld("alpha")))

	performed, err := second.GenesisPerformed(ctx)
	assert.NilError(t, err)
	assert.Equal(t, false, performed)
}
