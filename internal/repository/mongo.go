package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRepository stores one entity type in one collection. Query filters in
// memory because the contract takes a Go predicate, not a bson filter.
type MongoRepository[T any, PT entityPtr[T]] struct {
	Col *mongo.Collection
}

func NewMongoRepository[T any, PT entityPtr[T]](db *mongo.Database, collection string) *MongoRepository[T, PT] {
	return &MongoRepository[T, PT]{Col: db.Collection(collection)}
}

func (r *MongoRepository[T, PT]) Add(ctx context.Context, item *T) (*T, error) {
	pt := PT(item)
	if pt.GetID() == "" {
		pt.SetID(primitive.NewObjectID().Hex())
	}
	if _, err := r.Col.InsertOne(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *MongoRepository[T, PT]) Update(ctx context.Context, item *T) error {
	id := PT(item).GetID()
	res, err := r.Col.ReplaceOne(ctx, bson.M{"_id": id}, item)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepository[T, PT]) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoRepository[T, PT]) GetByID(ctx context.Context, id string) (*T, error) {
	var item T
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MongoRepository[T, PT]) GetAll(ctx context.Context) ([]*T, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var out []*T
	for cur.Next(ctx) {
		var item T
		if err := cur.Decode(&item); err != nil {
			return nil, err
		}
		out = append(out, &item)
	}
	return out, cur.Err()
}

func (r *MongoRepository[T, PT]) Query(ctx context.Context, match func(*T) bool) ([]*T, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []*T
	for _, item := range all {
		if match(item) {
			out = append(out, item)
		}
	}
	return out, nil
}
