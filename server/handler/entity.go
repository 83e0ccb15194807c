package handler

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v2"
	"github.com/rotisserie/eris"

	registry "pkg.world.dev/world-registry"
	"pkg.world.dev/world-registry/ecs"
)

type PostSpawnRequest struct {
	Components []common.Address `json:"components"`
}

type PostDespawnRequest struct {
	Component common.Address `json:"component"`
}

// PostSpawn creates an entity from the given component addresses. Addresses
// that already own a bit are silently excluded; a request where no address
// yields a bit creates nothing and still responds 200.
func PostSpawn(r *registry.Registry) func(*fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		req := new(PostSpawnRequest)
		if err := ctx.BodyParser(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "failed to parse request body: "+err.Error())
		}
		if err := r.Spawn(ctx.UserContext(), req.Components); err != nil {
			if eris.Is(eris.Cause(err), ecs.ErrRegisterFull) {
				return fiber.NewError(fiber.StatusConflict, "component register is full")
			}
			return err
		}
		return ctx.SendStatus(fiber.StatusOK)
	}
}

// PostDespawn releases the component's slot in the global register. Entity
// records are not modified.
func PostDespawn(r *registry.Registry) func(*fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		req := new(PostDespawnRequest)
		if err := ctx.BodyParser(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "failed to parse request body: "+err.Error())
		}
		if err := r.Despawn(ctx.UserContext(), req.Component); err != nil {
			if eris.Is(eris.Cause(err), ecs.ErrRegisterNotFound) {
				return fiber.NewError(fiber.StatusPreconditionFailed, "no component has ever been registered")
			}
			return err
		}
		return ctx.SendStatus(fiber.StatusOK)
	}
}
