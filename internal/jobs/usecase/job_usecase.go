package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jobboard/internal/jobs/domain/model"
	"jobboard/internal/jobs/domain/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrInvalidJobID = errors.New("invalid job id")
	ErrJobNotFound  = errors.New("job not found")
	// ErrJobNotFoundOrForbidden merges "no such job" and "not the owner"
	// into one outcome so a non-owner cannot probe for existing ids.
	ErrJobNotFoundOrForbidden = errors.New("job not found or unauthorized")
	ErrMissingTitle           = errors.New("job title is required")
)

// Identity is the authenticated principal injected by the auth gate.
type Identity struct {
	UserID string
	Email  string
}

// CreateJobRequest carries the client-supplied job fields. Any authorEmail
// in the body is ignored: ownership derives from the gate identity.
type CreateJobRequest struct {
	Title           string   `json:"title"`
	Price           float64  `json:"price"`
	PricingType     string   `json:"pricingType"`
	Description     string   `json:"description"`
	Location        string   `json:"location"`
	ExperienceLevel string   `json:"experienceLevel"`
	Vacancy         int      `json:"vacancy"`
	Skills          []string `json:"skills"`
}

// JobUsecaseInterface defines the contract for job use cases.
type JobUsecaseInterface interface {
	List(ctx context.Context) ([]*model.Job, error)
	GetByID(ctx context.Context, id string) (*model.Job, error)
	Create(ctx context.Context, req CreateJobRequest, identity Identity) (*model.Job, error)
	Update(ctx context.Context, id string, update model.JobUpdate, identity Identity) (*model.Job, error)
	Delete(ctx context.Context, id string, identity Identity) error
}

// JobUsecase implements the job collection logic.
type JobUsecase struct {
	repo repository.JobRepository
}

// NewJobUsecase creates a new instance of JobUsecase.
func NewJobUsecase(repo repository.JobRepository) *JobUsecase {
	return &JobUsecase{repo: repo}
}

// List returns all job records, unfiltered.
func (uc *JobUsecase) List(ctx context.Context) ([]*model.Job, error) {
	jobs, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// GetByID returns a single job record.
func (uc *JobUsecase) GetByID(ctx context.Context, id string) (*model.Job, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidJobID
	}

	job, err := uc.repo.FindByID(ctx, objectID)
	if err != nil {
		if errors.Is(err, ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// Create persists a new job owned by the authenticated identity. The owner
// field is stamped server-side; any client-supplied value never reaches
// storage.
func (uc *JobUsecase) Create(ctx context.Context, req CreateJobRequest, identity Identity) (*model.Job, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrMissingTitle
	}

	now := time.Now()
	job := &model.Job{
		ID:              primitive.NewObjectID(),
		Title:           strings.TrimSpace(req.Title),
		Price:           req.Price,
		PricingType:     req.PricingType,
		Description:     req.Description,
		Location:        req.Location,
		ExperienceLevel: req.ExperienceLevel,
		Vacancy:         req.Vacancy,
		Skills:          req.Skills,
		AuthorEmail:     identity.Email,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.repo.Insert(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// Update overwrites the allow-listed fields of a job owned by identity and
// returns the post-update record.
func (uc *JobUsecase) Update(ctx context.Context, id string, update model.JobUpdate, identity Identity) (*model.Job, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidJobID
	}

	job, err := uc.repo.UpdateOwned(ctx, objectID, identity.Email, update)
	if err != nil {
		if errors.Is(err, ErrJobNotFoundOrForbidden) {
			return nil, ErrJobNotFoundOrForbidden
		}
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	return job, nil
}

// Delete removes a job owned by identity. Like Update, it never reveals
// whether the id exists when the caller is not the owner.
func (uc *JobUsecase) Delete(ctx context.Context, id string, identity Identity) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidJobID
	}

	if err := uc.repo.DeleteOwned(ctx, objectID, identity.Email); err != nil {
		if errors.Is(err, ErrJobNotFoundOrForbidden) {
			return ErrJobNotFoundOrForbidden
		}
		return fmt.Errorf("failed to delete job: %w", err)
	}
	return nil
}

// Ensure JobUsecase implements JobUsecaseInterface
var _ JobUsecaseInterface = (*JobUsecase)(nil)
