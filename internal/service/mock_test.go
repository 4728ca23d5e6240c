package service

import (
	"context"

	"github.com/tomatino/tomatino-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Function-field mock stores. Unset fields return benign zero results.

type mockFoodStore struct {
	findFn     func(ctx context.Context, filter bson.M, page *Page) ([]bson.M, error)
	insertFn   func(ctx context.Context, doc map[string]any) (*model.InsertResult, error)
	findByIDFn func(ctx context.Context, id primitive.ObjectID) (bson.M, error)
	replaceFn  func(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.UpdateResult, error)
	mergeFn    func(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.UpdateResult, error)
	deleteFn   func(ctx context.Context, id primitive.ObjectID) (*model.DeleteResult, error)
}

func (m *mockFoodStore) Find(ctx context.Context, filter bson.M, page *Page) ([]bson.M, error) {
	if m.findFn != nil {
		return m.findFn(ctx, filter, page)
	}
	return []bson.M{}, nil
}

func (m *mockFoodStore) Insert(ctx context.Context, doc map[string]any) (*model.InsertResult, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, doc)
	}
	return &model.InsertResult{Acknowledged: true}, nil
}

func (m *mockFoodStore) FindByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockFoodStore) Replace(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.UpdateResult, error) {
	if m.replaceFn != nil {
		return m.replaceFn(ctx, id, fields)
	}
	return &model.UpdateResult{Acknowledged: true}, nil
}

func (m *mockFoodStore) Merge(ctx context.Context, id primitive.ObjectID, fields bson.M) (*model.UpdateResult, error) {
	if m.mergeFn != nil {
		return m.mergeFn(ctx, id, fields)
	}
	return &model.UpdateResult{Acknowledged: true}, nil
}

func (m *mockFoodStore) Delete(ctx context.Context, id primitive.ObjectID) (*model.DeleteResult, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return &model.DeleteResult{Acknowledged: true}, nil
}

type mockPurchaseStore struct {
	insertFn      func(ctx context.Context, record map[string]any) (*model.InsertResult, error)
	findByEmailFn func(ctx context.Context, email string) ([]bson.M, error)
	findAllFn     func(ctx context.Context) ([]bson.M, error)
	deleteFn      func(ctx context.Context, id primitive.ObjectID) (*model.DeleteResult, error)
}

func (m *mockPurchaseStore) Insert(ctx context.Context, record map[string]any) (*model.InsertResult, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, record)
	}
	return &model.InsertResult{Acknowledged: true}, nil
}

func (m *mockPurchaseStore) FindByEmail(ctx context.Context, email string) ([]bson.M, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return []bson.M{}, nil
}

func (m *mockPurchaseStore) FindAll(ctx context.Context) ([]bson.M, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx)
	}
	return []bson.M{}, nil
}

func (m *mockPurchaseStore) Delete(ctx context.Context, id primitive.ObjectID) (*model.DeleteResult, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return &model.DeleteResult{Acknowledged: true}, nil
}
