package handler

import (
	"context"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/job"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// ConnectionTester verifies the notification sink credential on demand.
type ConnectionTester interface {
	TestConnection(ctx context.Context) error
}

// AdminJobsHandler serves the review surface: the full board, status
// transitions, deletions, and the sink connection test. Every route is
// behind the auth middleware.
type AdminJobsHandler struct {
	lifecycle usecase.LifecycleUsecase
	listing   usecase.ListingUsecase
	sink      ConnectionTester
}

func NewAdminJobsHandler(lifecycle usecase.LifecycleUsecase, listing usecase.ListingUsecase, sink ConnectionTester) *AdminJobsHandler {
	return &AdminJobsHandler{lifecycle: lifecycle, listing: listing, sink: sink}
}

func (h *AdminJobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/jobs", h.HandleListAll)
	r.Patch("/jobs/:id/status", h.HandleChangeStatus)
	r.Delete("/jobs/:id", h.HandleDelete)
	r.Get("/telegram/test", h.HandleTelegramTest)
}

func (h *AdminJobsHandler) HandleListAll(c fiber.Ctx) error {
	jobs, err := h.listing.ListAdmin(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponseList(jobs))
}

func (h *AdminJobsHandler) HandleChangeStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	var req dto.StatusUpdateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	updated, err := h.lifecycle.ChangeStatus(c.Context(), id, job.Status(req.Status))
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(updated))
}

func (h *AdminJobsHandler) HandleDelete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	if err := h.lifecycle.Delete(c.Context(), id); err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]bool{"success": true})
}

func (h *AdminJobsHandler) HandleTelegramTest(c fiber.Ctx) error {
	if h.sink == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Notification sink not configured", map[string]any{"success": false}, nil)
	}

	if err := h.sink.TestConnection(c.Context()); err != nil {
		return middleware.NewAppError(
			fiber.StatusBadRequest,
			"Telegram connection test failed",
			map[string]any{"success": false, "error": err.Error()},
			err,
		)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, map[string]any{"success": true})
}
