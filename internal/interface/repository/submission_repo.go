package repository

import (
	"context"
	"time"

	"stargate-service/internal/domain/entity"
	"stargate-service/internal/domain/repository"
	"stargate-service/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSubmissionRepository implements SubmissionRepository on a MongoDB collection
type MongoSubmissionRepository struct {
	collection *mongo.Collection
}

// indexCreator is the part of mongo.IndexView used at startup
type indexCreator interface {
	CreateMany(ctx context.Context, models []mongo.IndexModel, opts ...*options.CreateIndexesOptions) ([]string, error)
}

// NewMongoSubmissionRepository creates a new duty submission repository.
// A failed index build is logged and does not stop the service.
func NewMongoSubmissionRepository(ctx context.Context, db *mongo.Database, timeout time.Duration, log logger.Logger) repository.SubmissionRepository {
	collection := db.Collection(submissionCollection)

	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	indexCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	ensureSubmissionIndexes(indexCtx, collection.Indexes(), log)

	return &MongoSubmissionRepository{
		collection: collection,
	}
}

const submissionCollection = "dutySubmissions"

func ensureSubmissionIndexes(ctx context.Context, indexes indexCreator, log logger.Logger) {
	// Compound index for per-person history, newest first
	historyIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "personName", Value: 1},
			{Key: "receivedAt", Value: -1},
		},
	}

	// Index on status for operational queries
	statusIndex := mongo.IndexModel{
		Keys: bson.M{"status": 1},
	}

	if _, err := indexes.CreateMany(ctx, []mongo.IndexModel{historyIndex, statusIndex}); err != nil {
		log.Warn("Failed to create duty submission indexes", "collection", submissionCollection, "error", err)
	}
}

// Save inserts a submission record
func (r *MongoSubmissionRepository) Save(ctx context.Context, submission *entity.DutySubmission) error {
	if submission.ID == "" {
		submission.ID = primitive.NewObjectID().Hex()
	}
	if submission.ProcessedAt.IsZero() {
		submission.ProcessedAt = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, submission)
	return err
}

// FindByPersonName finds the latest submissions for a person
func (r *MongoSubmissionRepository) FindByPersonName(ctx context.Context, personName string, limit int) ([]*entity.DutySubmission, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "receivedAt", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"personName": personName}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	submissions := make([]*entity.DutySubmission, 0)
	if err := cursor.All(ctx, &submissions); err != nil {
		return nil, err
	}

	return submissions, nil
}
