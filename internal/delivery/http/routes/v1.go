package routes

import (
	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	jobsHandler := handler.NewJobsHandler(deps.Lifecycle, deps.Listing)
	adminHandler := handler.NewAdminJobsHandler(deps.Lifecycle, deps.Listing, deps.Sink)
	authHandler := handler.NewAuthHandler(deps.Auth)

	jobsHandler.RegisterRoutes(r.Group("/jobs"))
	authHandler.RegisterRoutes(r.Group("/auth"))

	admin := r.Group("/admin", deps.AuthMW)
	adminHandler.RegisterRoutes(admin)

	if deps.Hub != nil {
		wsHandler := ws.NewHandler(deps.Hub, deps.Logger)
		admin.Get("/ws", wsHandler.HandleEventsWS)
	}
}
