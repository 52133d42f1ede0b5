package repository

import (
	"context"

	"jobboard/internal/jobs/domain/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JobRepository defines the interface for job persistence operations.
// Owned mutations filter on both id and owner email in a single call so
// existence and ownership failures are indistinguishable.
type JobRepository interface {
	Insert(ctx context.Context, job *model.Job) error
	FindAll(ctx context.Context) ([]*model.Job, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Job, error)
	UpdateOwned(ctx context.Context, id primitive.ObjectID, ownerEmail string, update model.JobUpdate) (*model.Job, error)
	DeleteOwned(ctx context.Context, id primitive.ObjectID, ownerEmail string) error
}
