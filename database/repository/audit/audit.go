package audit

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sohilkhan0021/anceller-admin-sub002/config"
	"github.com/Sohilkhan0021/anceller-admin-sub002/database"
	"github.com/Sohilkhan0021/anceller-admin-sub002/models"
)

// Recorder persists the console's own trail of admin-triggered mutations.
type Recorder interface {
	Record(ctx context.Context, entry models.AuditEntry) error
	Recent(ctx context.Context, limit int64) ([]models.AuditEntry, error)
	ForEntity(ctx context.Context, entityType, entityID string) ([]models.AuditEntry, error)
}

// MongoAuditRepo is the production Recorder backed by MongoDB.
type MongoAuditRepo struct {
	coll *mongo.Collection
}

func NewMongoAuditRepo() *MongoAuditRepo {
	coll := database.MongoClient.
		Database(config.AppConfig.AuditDatabaseName).
		Collection("audit_log")
	return &MongoAuditRepo{coll: coll}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAuditRepo) Record(ctx context.Context, entry models.AuditEntry) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to record audit entry %s: %w", entry.ID, err)
	}
	return nil
}

func (r *MongoAuditRepo) Recent(ctx context.Context, limit int64) ([]models.AuditEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch audit entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.AuditEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode audit entries: %w", err)
	}
	return entries, nil
}

func (r *MongoAuditRepo) ForEntity(ctx context.Context, entityType, entityID string) ([]models.AuditEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"entityType": entityType, "entityId": entityID}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch audit entries for %s %s: %w", entityType, entityID, err)
	}
	defer cursor.Close(ctx)

	var entries []models.AuditEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode audit entries: %w", err)
	}
	return entries, nil
}

// EnsureIndexes creates the lookup indexes used by the console's audit views.
func (r *MongoAuditRepo) EnsureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "entityType", Value: 1}, {Key: "entityId", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create audit indexes: %w", err)
	}
	return nil
}
