package http

import (
	"net/http"

	"atelier/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderActorID carries the authenticated caller's identifier.
	HeaderActorID = "X-Actor-Id"
	// HeaderActorRole carries the authenticated caller's role.
	HeaderActorRole = "X-Actor-Role"

	actorContextKey = "actor"
)

// ActorMiddleware resolves the calling actor from the identity headers set by
// the gateway. Authentication itself happens upstream; this adapter only
// translates the already-verified identity into a domain actor.
func ActorMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		rawID := ctx.Request().Header.Get(HeaderActorID)
		rawRole := ctx.Request().Header.Get(HeaderActorRole)
		if rawID == "" || rawRole == "" {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Missing actor identity headers",
			})
		}

		id, err := kernel.UUIDFromString(rawID)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Invalid actor id",
			})
		}
		role, err := kernel.RoleFromString(rawRole)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Invalid actor role",
			})
		}

		actor, err := kernel.NewActor(id, role)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
				Code:    http.StatusUnauthorized,
				Message: "Invalid actor identity",
			})
		}

		ctx.Set(actorContextKey, actor)
		return next(ctx)
	}
}

// actorFromContext returns the actor stored by ActorMiddleware.
func actorFromContext(ctx echo.Context) (kernel.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(kernel.Actor)
	return actor, ok
}
