package http

import (
	"errors"

	"jobboard/internal/jobs/domain/model"
	"jobboard/internal/jobs/usecase"
	"jobboard/internal/shared/logger"
	"jobboard/internal/shared/utils"

	"github.com/gofiber/fiber/v2"
)

// JobHTTPHandler handles HTTP requests for the jobs collection
type JobHTTPHandler struct {
	usecase usecase.JobUsecaseInterface
	log     logger.Logger
}

// NewJobHTTPHandler creates a new jobs HTTP handler
func NewJobHTTPHandler(uc usecase.JobUsecaseInterface, log logger.Logger) *JobHTTPHandler {
	return &JobHTTPHandler{
		usecase: uc,
		log:     log.WithComponent("jobs.http"),
	}
}

// RegisterRoutes sets up job routes under the given router. gate is the auth
// middleware guarding every mutating path and the single fetch.
func (h *JobHTTPHandler) RegisterRoutes(router fiber.Router, gate fiber.Handler) {
	router.Get("/", h.List)
	router.Post("/", gate, h.Create)
	router.Get("/:id", gate, h.GetOne)
	router.Put("/:id", gate, h.Update)
	router.Delete("/:id", gate, h.Delete)
}

// List returns all jobs, no auth required
func (h *JobHTTPHandler) List(c *fiber.Ctx) error {
	jobs, err := h.usecase.List(c.Context())
	if err != nil {
		h.log.Errorf("list jobs failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to list jobs",
			"error":   err.Error(),
		})
	}
	return c.JSON(jobs)
}

// GetOne returns a single job
func (h *JobHTTPHandler) GetOne(c *fiber.Ctx) error {
	job, err := h.usecase.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidJobID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid job id",
			})
		case errors.Is(err, usecase.ErrJobNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Job not found",
			})
		default:
			h.log.WithContext(c.UserContext()).Errorf("get job failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to get job",
				"error":   err.Error(),
			})
		}
	}
	return c.JSON(job)
}

// Create persists a new job owned by the authenticated identity
func (h *JobHTTPHandler) Create(c *fiber.Ctx) error {
	identity, err := h.identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	var req usecase.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	job, err := h.usecase.Create(c.Context(), req, identity)
	if err != nil {
		if errors.Is(err, usecase.ErrMissingTitle) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Job title is required",
			})
		}
		h.log.WithContext(c.UserContext()).Errorf("create job failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to create job",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Job created successfully",
		"job":     job,
	})
}

// Update overwrites the allow-listed fields of an owned job
func (h *JobHTTPHandler) Update(c *fiber.Ctx) error {
	identity, err := h.identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	var update model.JobUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	job, err := h.usecase.Update(c.Context(), c.Params("id"), update, identity)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidJobID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid job id",
			})
		case errors.Is(err, usecase.ErrJobNotFoundOrForbidden):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Job not found or unauthorized",
			})
		default:
			h.log.WithContext(c.UserContext()).Errorf("update job failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to update job",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Job updated successfully",
		"job":     job,
	})
}

// Delete removes an owned job
func (h *JobHTTPHandler) Delete(c *fiber.Ctx) error {
	identity, err := h.identity(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication required",
		})
	}

	if err := h.usecase.Delete(c.Context(), c.Params("id"), identity); err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidJobID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid job id",
			})
		case errors.Is(err, usecase.ErrJobNotFoundOrForbidden):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Job not found or unauthorized",
			})
		default:
			h.log.WithContext(c.UserContext()).Errorf("delete job failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to delete job",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Job deleted successfully",
	})
}

// identity reads the gate-injected principal from the request context.
func (h *JobHTTPHandler) identity(c *fiber.Ctx) (usecase.Identity, error) {
	userID, err := utils.GetUserIDFromContext(c.UserContext())
	if err != nil {
		return usecase.Identity{}, err
	}
	email, err := utils.GetUserEmailFromContext(c.UserContext())
	if err != nil {
		return usecase.Identity{}, err
	}
	return usecase.Identity{UserID: userID, Email: email}, nil
}
