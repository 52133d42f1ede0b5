package mongodb

import (
	"context"
	"time"

	"jobboard/internal/jobs/domain/model"
	"jobboard/internal/jobs/usecase"
	apperrors "jobboard/internal/shared/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoJobRepository implements the JobRepository interface using MongoDB
type MongoJobRepository struct {
	jobs *mongo.Collection
}

// NewMongoJobRepository creates a new MongoDB job repository and ensures the
// owner lookup index exists.
func NewMongoJobRepository(db *mongo.Database) (*MongoJobRepository, error) {
	repo := &MongoJobRepository{
		jobs: db.Collection("jobs"),
	}

	ownerIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "author_email", Value: 1}},
	}
	if _, err := repo.jobs.Indexes().CreateOne(context.Background(), ownerIndex); err != nil {
		return nil, err
	}

	return repo, nil
}

// Insert persists a new job document
func (r *MongoJobRepository) Insert(ctx context.Context, job *model.Job) error {
	if _, err := r.jobs.InsertOne(ctx, job); err != nil {
		return apperrors.WrapError(err, "failed to insert job").WithComponent("job_repository")
	}
	return nil
}

// FindAll returns every job document
func (r *MongoJobRepository) FindAll(ctx context.Context) ([]*model.Job, error) {
	cursor, err := r.jobs.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.WrapError(err, "failed to list jobs").WithComponent("job_repository")
	}
	defer cursor.Close(ctx)

	jobs := make([]*model.Job, 0)
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, apperrors.WrapError(err, "failed to decode jobs").WithComponent("job_repository")
	}
	return jobs, nil
}

// FindByID retrieves a job by its object id
func (r *MongoJobRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Job, error) {
	var job model.Job
	err := r.jobs.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, usecase.ErrJobNotFound
		}
		return nil, apperrors.WrapError(err, "failed to query job by id").WithComponent("job_repository")
	}
	return &job, nil
}

// UpdateOwned overwrites the allow-listed fields of the job matching both id
// and owner email in one atomic call, returning the post-update document.
// A miss on either condition yields the merged not-found-or-forbidden error.
func (r *MongoJobRepository) UpdateOwned(ctx context.Context, id primitive.ObjectID, ownerEmail string, update model.JobUpdate) (*model.Job, error) {
	filter := bson.M{"_id": id, "author_email": ownerEmail}
	set := bson.M{
		"title":            update.Title,
		"price":            update.Price,
		"pricing_type":     update.PricingType,
		"description":      update.Description,
		"location":         update.Location,
		"experience_level": update.ExperienceLevel,
		"vacancy":          update.Vacancy,
		"skills":           update.Skills,
		"updated_at":       time.Now(),
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var job model.Job
	err := r.jobs.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, usecase.ErrJobNotFoundOrForbidden
		}
		return nil, apperrors.WrapError(err, "failed to update job").WithComponent("job_repository")
	}
	return &job, nil
}

// DeleteOwned removes the job matching both id and owner email
func (r *MongoJobRepository) DeleteOwned(ctx context.Context, id primitive.ObjectID, ownerEmail string) error {
	result, err := r.jobs.DeleteOne(ctx, bson.M{"_id": id, "author_email": ownerEmail})
	if err != nil {
		return apperrors.WrapError(err, "failed to delete job").WithComponent("job_repository")
	}
	if result.DeletedCount == 0 {
		return usecase.ErrJobNotFoundOrForbidden
	}
	return nil
}
