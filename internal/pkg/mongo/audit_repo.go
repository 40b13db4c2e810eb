package mongo

import (
	"context"

	"panganjawara/internal/api/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AuditRepo interface {
	Insert(ctx context.Context, entry *AuditEntry) error
	List(ctx context.Context, entity string, limit, offset int64) ([]*AuditEntry, int64, error)
}

type auditRepoImpl struct {
	coll *mongo.Collection
}

func NewAuditRepo(conn *Conn) AuditRepo {
	return &auditRepoImpl{
		coll: conn.Database.Collection(config.Cfg.Mongo.Collection),
	}
}

func (s *auditRepoImpl) Insert(ctx context.Context, entry *AuditEntry) error {
	_, err := s.coll.InsertOne(ctx, entry)
	return err
}

func (s *auditRepoImpl) List(ctx context.Context, entity string, limit, offset int64) ([]*AuditEntry, int64, error) {
	filter := bson.M{}
	if entity != "" {
		filter["entity"] = entity
	}

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = cursor.Close(ctx) }()

	var entries []*AuditEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
