package handler

import (
	"errors"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/domain/job"
	"jobboard/internal/pkg/response"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// JobsHandler serves the public surface: approved listings, point lookups,
// and new submissions.
type JobsHandler struct {
	lifecycle usecase.LifecycleUsecase
	listing   usecase.ListingUsecase
}

func NewJobsHandler(lifecycle usecase.LifecycleUsecase, listing usecase.ListingUsecase) *JobsHandler {
	return &JobsHandler{lifecycle: lifecycle, listing: listing}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.HandleList)
	r.Post("/", h.HandleSubmit)
	r.Get("/:id", h.HandleGet)
}

func (h *JobsHandler) HandleList(c fiber.Ctx) error {
	filter := job.Filter{
		Department:   job.Department(c.Query("department")),
		LocationType: job.LocationType(c.Query("location_type")),
		JobType:      job.JobType(c.Query("job_type")),
	}

	jobs, err := h.listing.ListPublic(c.Context(), c.Query("q"), filter)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponseList(jobs))
}

func (h *JobsHandler) HandleSubmit(c fiber.Ctx) error {
	var req dto.JobSubmissionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request body", nil, err)
	}

	created, err := h.lifecycle.Submit(c.Context(), req.ToSubmissionData())
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.NewJobResponse(created))
}

func (h *JobsHandler) HandleGet(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	j, err := h.listing.Get(c.Context(), id)
	if err != nil {
		return mapUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobResponse(j))
}

// mapUsecaseError is the single translation point from the lifecycle and
// listing error taxonomy onto HTTP statuses.
func mapUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var vErr *usecase.ValidationError
	if errors.As(err, &vErr) {
		return middleware.NewAppError(
			fiber.StatusBadRequest,
			vErr.Error(),
			map[string]string{"field": vErr.Field},
			err,
		)
	}

	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status. Must be PENDING, APPROVED, or REJECTED", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
