package repository

import (
	"context"

	"github.com/tomatino/tomatino-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PurchaseRepository persists the append-only purchase ledger in the
// purchasedFoods collection. There is no update operation.
type PurchaseRepository struct {
	coll *mongo.Collection
}

// NewPurchaseRepository creates a new PurchaseRepository over db.
func NewPurchaseRepository(db *mongo.Database) *PurchaseRepository {
	return &PurchaseRepository{coll: db.Collection("purchasedFoods")}
}

// Insert appends record exactly as submitted.
func (r *PurchaseRepository) Insert(ctx context.Context, record map[string]any) (*model.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return nil, err
	}
	return &model.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// FindByEmail returns all records whose purchaser email matches. An empty
// email matches the whole ledger.
func (r *PurchaseRepository) FindByEmail(ctx context.Context, email string) ([]bson.M, error) {
	filter := bson.M{}
	if email != "" {
		filter["email"] = email
	}
	return r.findAll(ctx, filter)
}

// FindAll returns the entire ledger.
func (r *PurchaseRepository) FindAll(ctx context.Context) ([]bson.M, error) {
	return r.findAll(ctx, bson.M{})
}

// Delete removes the record with the given id, unconditionally.
func (r *PurchaseRepository) Delete(ctx context.Context, id primitive.ObjectID) (*model.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	return &model.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

func (r *PurchaseRepository) findAll(ctx context.Context, filter bson.M) ([]bson.M, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	records := []bson.M{}
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
