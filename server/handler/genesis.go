package handler

import (
	"github.com/gofiber/fiber/v2"

	registry "pkg.world.dev/world-registry"
)

type PostGenesisRequest struct {
	Name string `json:"name"`
}

// PostGenesis creates the world. Calling it again is a no-op; the original
// name is kept.
func PostGenesis(r *registry.Registry) func(*fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		req := new(PostGenesisRequest)
		if err := ctx.BodyParser(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "failed to parse request body: "+err.Error())
		}
		if req.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "world name must not be empty")
		}
		if err := r.Genesis(ctx.UserContext(), req.Name); err != nil {
			return err
		}
		return ctx.SendStatus(fiber.StatusOK)
	}
}
