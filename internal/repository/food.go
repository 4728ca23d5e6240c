package repository

import (
	"context"
	"errors"

	"github.com/tomatino/tomatino-api/internal/model"
	"github.com/tomatino/tomatino-api/internal/service"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FoodRepository persists catalog documents in the allFoods collection.
type FoodRepository struct {
	coll *mongo.Collection
}

// NewFoodRepository creates a new FoodRepository over db.
func NewFoodRepository(db *mongo.Database) *FoodRepository {
	return &FoodRepository{coll: db.Collection("allFoods")}
}

// Find returns documents matching filter. A nil page disables skip and
// limit entirely, so the full result set comes back.
func (r *FoodRepository) Find(ctx context.Context, filter bson.M, page *service.Page) ([]bson.M, error) {
	opts := options.Find()
	if page != nil {
		opts.SetSkip(page.Skip).SetLimit(page.Limit)
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []bson.M{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Insert stores doc exactly as submitted and returns the assigned id.
func (r *FoodRepository) Insert(ctx context.Context, doc map[string]any) (*model.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &model.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// FindByID returns the document with the given id, or nil when absent.
func (r *FoodRepository) FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var doc bson.M
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Replace upserts the writable fields of the document with the given id.
func (r *FoodRepository) Replace(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

// Merge sets only the supplied top-level fields on the document with the
// given id. An unmatched id is a silent no-op, per the store's update
// semantics.
func (r *FoodRepository) Merge(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return nil, err
	}
	return updateResult(res), nil
}

// Delete removes the document with the given id. Deleting an absent id
// reports zero documents affected rather than failing.
func (r *FoodRepository) Delete(ctx context.Context, id primitive.ObjectID) (*model.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &model.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func updateResult(res *mongo.UpdateResult) *model.UpdateResult {
	return &model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}
