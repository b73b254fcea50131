package docstore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoDatabase is a Database backed by one MongoDB database.
type MongoDatabase struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoDatabase wraps an already connected client.
func NewMongoDatabase(client *mongo.Client, name string) *MongoDatabase {
	return &MongoDatabase{client: client, db: client.Database(name)}
}

func (d *MongoDatabase) driver() string { return "mongodb" }

// Ping checks the primary is reachable.
func (d *MongoDatabase) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (d *MongoDatabase) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// EnsureIndexes creates the declared indexes. Existing identical indexes are
// left alone by the server.
func (d *MongoDatabase) EnsureIndexes(ctx context.Context, indexes []Index) error {
	for _, idx := range indexes {
		model := mongo.IndexModel{
			Keys:    bson.D{{Key: idx.Field, Value: sortValue(idx.Direction)}},
			Options: options.Index().SetUnique(idx.Unique),
		}
		if _, err := d.db.Collection(idx.Collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index %s.%s: %w", idx.Collection, idx.Field, err)
		}
	}
	return nil
}

func sortValue(dir Direction) int {
	if dir == Descending {
		return -1
	}
	return 1
}

func mongoFilter(filters []Filter) bson.D {
	f := bson.D{}
	for _, flt := range filters {
		f = append(f, bson.E{Key: flt.Field, Value: flt.Value})
	}
	return f
}

type mongoCollection[T any] struct {
	col *mongo.Collection
}

func (c *mongoCollection[T]) Find(ctx context.Context, q Query) ([]T, error) {
	opts := options.Find()
	if q.OrderBy != "" {
		opts.SetSort(bson.D{{Key: q.OrderBy, Value: sortValue(q.Direction)}})
	}
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}
	cur, err := c.col.Find(ctx, mongoFilter(q.Filters), opts)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mongoCollection[T]) FindOne(ctx context.Context, filters ...Filter) (*T, error) {
	var doc T
	err := c.col.FindOne(ctx, mongoFilter(filters)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Insert stores doc. The id is carried inside doc; MongoDB assigns its own _id.
func (c *mongoCollection[T]) Insert(ctx context.Context, _ string, doc T) error {
	_, err := c.col.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return ErrAlreadyExists
	}
	return err
}

func (c *mongoCollection[T]) Update(ctx context.Context, filters []Filter, fields Fields) error {
	if len(fields) == 0 {
		_, err := c.FindOne(ctx, filters...)
		return err
	}
	res, err := c.col.UpdateOne(ctx, mongoFilter(filters), bson.M{"$set": bson.M(fields)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *mongoCollection[T]) Delete(ctx context.Context, filters ...Filter) error {
	res, err := c.col.DeleteOne(ctx, mongoFilter(filters))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *mongoCollection[T]) Clear(ctx context.Context) error {
	_, err := c.col.DeleteMany(ctx, bson.D{})
	return err
}
