package mongodb_test

import (
	"context"
	"testing"
	"time"

	"jobboard/internal/jobs/adapter/persistence/mongodb"
	"jobboard/internal/jobs/domain/model"
	"jobboard/internal/jobs/domain/repository"
	"jobboard/internal/jobs/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type JobRepoTestSuite struct {
	suite.Suite
	client     *mongo.Client
	database   *mongo.Database
	repository repository.JobRepository
}

func (suite *JobRepoTestSuite) SetupSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		suite.T().Skip("MongoDB not available for testing")
		return
	}
	if err := client.Ping(ctx, nil); err != nil {
		suite.T().Skip("MongoDB not available for testing")
		return
	}

	suite.client = client
	suite.database = client.Database("jobboard_test_db")

	repo, err := mongodb.NewMongoJobRepository(suite.database)
	require.NoError(suite.T(), err)
	suite.repository = repo
}

func (suite *JobRepoTestSuite) TearDownSuite() {
	if suite.client != nil {
		ctx := context.Background()
		suite.database.Drop(ctx)
		suite.client.Disconnect(ctx)
	}
}

func (suite *JobRepoTestSuite) SetupTest() {
	if suite.client == nil {
		suite.T().Skip("MongoDB not available for testing")
	}
	suite.database.Collection("jobs").DeleteMany(context.Background(), map[string]interface{}{})
}

func (suite *JobRepoTestSuite) newJob(title, owner string) *model.Job {
	now := time.Now().Truncate(time.Millisecond)
	return &model.Job{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Price:       50,
		PricingType: "hourly",
		Skills:      []string{"go"},
		AuthorEmail: owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func (suite *JobRepoTestSuite) TestInsertAndFindByID() {
	ctx := context.Background()
	job := suite.newJob("T", "a@x.com")

	require.NoError(suite.T(), suite.repository.Insert(ctx, job))

	got, err := suite.repository.FindByID(ctx, job.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "T", got.Title)
	assert.Equal(suite.T(), "a@x.com", got.AuthorEmail)
}

func (suite *JobRepoTestSuite) TestFindByID_NotFound() {
	ctx := context.Background()

	got, err := suite.repository.FindByID(ctx, primitive.NewObjectID())

	assert.ErrorIs(suite.T(), err, usecase.ErrJobNotFound)
	assert.Nil(suite.T(), got)
}

func (suite *JobRepoTestSuite) TestUpdateOwned_AllowListOnly() {
	ctx := context.Background()
	job := suite.newJob("T", "a@x.com")
	require.NoError(suite.T(), suite.repository.Insert(ctx, job))

	updated, err := suite.repository.UpdateOwned(ctx, job.ID, "a@x.com", model.JobUpdate{
		Title:       "T2",
		Price:       120,
		PricingType: "fixed",
		Skills:      []string{"go", "mongodb"},
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "T2", updated.Title)
	assert.Equal(suite.T(), float64(120), updated.Price)
	// Owner and creation time survive every update
	assert.Equal(suite.T(), "a@x.com", updated.AuthorEmail)
	assert.True(suite.T(), updated.UpdatedAt.After(job.UpdatedAt))
}

func (suite *JobRepoTestSuite) TestUpdateOwned_MergedMiss() {
	ctx := context.Background()
	job := suite.newJob("T", "owner@x.com")
	require.NoError(suite.T(), suite.repository.Insert(ctx, job))

	// Non-owner on an existing id
	_, errForeign := suite.repository.UpdateOwned(ctx, job.ID, "other@x.com", model.JobUpdate{Title: "T2"})
	// Owner on a missing id
	_, errMissing := suite.repository.UpdateOwned(ctx, primitive.NewObjectID(), "owner@x.com", model.JobUpdate{Title: "T2"})

	assert.ErrorIs(suite.T(), errForeign, usecase.ErrJobNotFoundOrForbidden)
	assert.ErrorIs(suite.T(), errMissing, usecase.ErrJobNotFoundOrForbidden)

	// The record is untouched either way
	got, err := suite.repository.FindByID(ctx, job.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "T", got.Title)
}

func (suite *JobRepoTestSuite) TestDeleteOwned() {
	ctx := context.Background()
	job := suite.newJob("T", "owner@x.com")
	require.NoError(suite.T(), suite.repository.Insert(ctx, job))

	// Non-owner cannot delete
	err := suite.repository.DeleteOwned(ctx, job.ID, "other@x.com")
	assert.ErrorIs(suite.T(), err, usecase.ErrJobNotFoundOrForbidden)

	// Owner can
	require.NoError(suite.T(), suite.repository.DeleteOwned(ctx, job.ID, "owner@x.com"))

	_, err = suite.repository.FindByID(ctx, job.ID)
	assert.ErrorIs(suite.T(), err, usecase.ErrJobNotFound)
}

func (suite *JobRepoTestSuite) TestFindAll() {
	ctx := context.Background()
	require.NoError(suite.T(), suite.repository.Insert(ctx, suite.newJob("A", "a@x.com")))
	require.NoError(suite.T(), suite.repository.Insert(ctx, suite.newJob("B", "b@x.com")))

	jobs, err := suite.repository.FindAll(ctx)

	require.NoError(suite.T(), err)
	assert.Len(suite.T(), jobs, 2)
}

func TestJobRepoTestSuite(t *testing.T) {
	suite.Run(t, new(JobRepoTestSuite))
}
