package service

import (
	"context"

	"github.com/tomatino/tomatino-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Page is a skip/limit window over a read query. A nil *Page means the query
// is unpaged and returns everything.
type Page struct {
	Skip  int64
	Limit int64
}

// FoodStore is the persistence port for the food catalog.
type FoodStore interface {
	Find(ctx context.Context, filter bson.M, page *Page) ([]bson.M, error)
	Insert(ctx context.Context, doc map[string]any) (*model.InsertResult, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	Replace(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.UpdateResult, error)
	Merge(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.UpdateResult, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*model.DeleteResult, error)
}

// PurchaseStore is the persistence port for the purchase ledger.
type PurchaseStore interface {
	Insert(ctx context.Context, record map[string]any) (*model.InsertResult, error)
	FindByEmail(ctx context.Context, email string) ([]bson.M, error)
	FindAll(ctx context.Context) ([]bson.M, error)
	Delete(ctx context.Context, id primitive.ObjectID) (*model.DeleteResult, error)
}
