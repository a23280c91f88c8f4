package routes

import (
	"log"

	"jobboard/internal/delivery/http/handler"
	"jobboard/internal/usecase"
	"jobboard/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Deps carries everything the route tree needs. The app container builds it
// once at startup.
type Deps struct {
	Lifecycle usecase.LifecycleUsecase
	Listing   usecase.ListingUsecase
	Auth      usecase.AuthUsecase
	Sink      handler.ConnectionTester
	Hub       *ws.Hub
	AuthMW    fiber.Handler
	Logger    *log.Logger
}

func Register(app *fiber.App, deps Deps) {
	if app == nil {
		return
	}

	handler.NewHealthHandler().RegisterRoutes(app)

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), deps)
}
