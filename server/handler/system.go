package handler

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v2"

	registry "pkg.world.dev/world-registry"
	"pkg.world.dev/world-registry/types"
)

type PostSystemRequest struct {
	Query   types.Bitmap   `json:"query"`
	Handler common.Address `json:"handler"`
}

type DeleteSystemRequest struct {
	Query types.Bitmap `json:"query"`
}

// PostSystem registers a handler address under a query bitmask, replacing
// any handler already registered under the same mask.
func PostSystem(r *registry.Registry) func(*fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		req := new(PostSystemRequest)
		if err := ctx.BodyParser(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "failed to parse request body: "+err.Error())
		}
		if err := r.AddSystem(ctx.UserContext(), req.Query, req.Handler); err != nil {
			return err
		}
		return ctx.SendStatus(fiber.StatusOK)
	}
}

// DeleteSystem drops the handler registered under a query bitmask, if any.
func DeleteSystem(r *registry.Registry) func(*fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		req := new(DeleteSystemRequest)
		if err := ctx.BodyParser(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "failed to parse request body: "+err.Error())
		}
		if err := r.RemoveSystem(ctx.UserContext(), req.Query); err != nil {
			return err
		}
		return ctx.SendStatus(fiber.StatusOK)
	}
}
