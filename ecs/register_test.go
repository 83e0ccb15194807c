package ecs_test

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rotisserie/eris"
	"gotest.tools/v3/assert"

	"pkg.world.dev/world-registry/ecs"
	"pkg.world.dev/world-registry/types"
)

func testAddress(i int) common.Address {
	return common.HexToAddress(fmt.Sprintf("0x%040x", i+1))
}

func TestRegisterIssuesMonotonicBits(t *testing.T) {
	register := ecs.NewRegister()

	wantBits := []types.Bitmap{1 << 1, 1 << 2, 1 << 3}
	for i, want := range wantBits {
		bit, allocated, err := register.Register(testAddress(i))
		assert.NilError(t, err)
		assert.Equal(t, true, allocated)
		assert.Equal(t, want, bit)
		// bit 0 must never be issued
		assert.Equal(t, types.Bitmap(0), bit&1)
	}
	assert.Equal(t, uint64(3), register.NextBit)
	assert.Equal(t, 3, len(register.Addresses))
}

func TestRegisterIsIdempotentForOwnedAddresses(t *testing.T) {
	register := ecs.NewRegister()
	addr := testAddress(0)

	bit, allocated, err := register.Register(addr)
	assert.NilError(t, err)
	assert.Equal(t, true, allocated)
	assert.Equal(t, types.Bitmap(1<<1), bit)

	nextBitAfterFirst := register.NextBit
	addressesAfterFirst := len(register.Addresses)

	// Registering an owned address is an expected non-result, not an error,
	// and must not mutate anything.
	for i := 0; i < 3; i++ {
		bit, allocated, err = register.Register(addr)
		assert.NilError(t, err)
		assert.Equal(t, false, allocated)
		assert.Equal(t, types.Bitmap(0), bit)
		assert.Equal(t, nextBitAfterFirst, register.NextBit)
		assert.Equal(t, addressesAfterFirst, len(register.Addresses))
	}
}

func TestRegisterCapacityExhaustion(t *testing.T) {
	register := ecs.NewRegister()

	// Bit 0 is skipped, so exactly BitmapWidth-1 slots fit.
	for i := 0; i < types.BitmapWidth-1; i++ {
		_, allocated, err := register.Register(testAddress(i))
		assert.NilError(t, err)
		assert.Equal(t, true, allocated)
	}
	assert.Equal(t, uint64(types.BitmapWidth-1), register.NextBit)

	_, _, err := register.Register(testAddress(types.BitmapWidth - 1))
	assert.ErrorIs(t, eris.Cause(err), ecs.ErrRegisterFull)

	// A failed allocation leaves the register unchanged.
	assert.Equal(t, uint64(types.BitmapWidth-1), register.NextBit)
	assert.Equal(t, types.BitmapWidth-1, len(register.Addresses))
}

func TestUnregisterRemovesAddressAndKeepsOrder(t *testing.T) {
	register := ecs.NewRegister()
	a, b, c := testAddress(0), testAddress(1), testAddress(2)
	for _, addr := range []common.Address{a, b, c} {
		_, _, err := register.Register(addr)
		assert.NilError(t, err)
	}

	register.Unregister(b)

	assert.Equal(t, 2, len(register.Addresses))
	assert.Equal(t, a, register.Addresses[0])
	assert.Equal(t, c, register.Addresses[1])
	assert.Equal(t, false, register.Owns(b))
}

func TestUnregisterUnknownAddressIsNoOp(t *testing.T) {
	register := ecs.NewRegister()
	_, _, err := register.Register(testAddress(0))
	assert.NilError(t, err)

	for i := 0; i < 2; i++ {
		register.Unregister(testAddress(99))
		assert.Equal(t, 1, len(register.Addresses))
		assert.Equal(t, uint64(1), register.NextBit)
	}
}

func TestReRegisteredAddressGetsFreshBit(t *testing.T) {
	register := ecs.NewRegister()
	addr := testAddress(0)

	firstBit, _, err := register.Register(addr)
	assert.NilError(t, err)
	register.Unregister(addr)

	secondBit, allocated, err := register.Register(addr)
	assert.NilError(t, err)
	assert.Equal(t, true, allocated)
	assert.Equal(t, types.Bitmap(1<<2), secondBit)
	assert.Assert(t, firstBit != secondBit)

	// The audit map keeps the original allocation.
	assert.Equal(t, addr, register.BitToAddress[1])
	assert.Equal(t, addr, register.BitToAddress[2])
}
