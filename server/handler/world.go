package handler

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v2"
	"github.com/rotisserie/eris"

	registry "pkg.world.dev/world-registry"
	"pkg.world.dev/world-registry/ecs"
	"pkg.world.dev/world-registry/types"
)

type GetWorldResponse struct {
	Name         string                                `json:"name"`
	NextEntityID types.EntityID                        `json:"nextEntityId"`
	Entities     map[types.EntityID]types.EntityRecord `json:"entities"`
	Systems      map[types.Bitmap]common.Address       `json:"systems"`
}

// GetWorld returns a snapshot of the world: name, entity ID counter, entity
// table, and system registry. Responds 404 before genesis has run.
func GetWorld(r *registry.Registry) func(*fiber.Ctx) error {
	return func(ctx *fiber.Ctx) error {
		world, err := r.World(ctx.UserContext())
		if err != nil {
			if eris.Is(eris.Cause(err), ecs.ErrWorldNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "world has not been created")
			}
			return err
		}
		return ctx.JSON(GetWorldResponse{
			Name:         world.Name,
			NextEntityID: world.NextEntityID,
			Entities:     world.Entities,
			Systems:      world.Systems,
		})
	}
}
