package service

import (
	"context"

	"github.com/tomatino/tomatino-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PurchaseService handles the append-only purchase ledger. Records are never
// updated; they are inserted, listed by purchaser, and deleted by id.
type PurchaseService struct {
	store PurchaseStore
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(store PurchaseStore) *PurchaseService {
	return &PurchaseService{store: store}
}

// Create appends record to the ledger exactly as submitted. No check is made
// that the referenced food exists.
func (s *PurchaseService) Create(ctx context.Context, record map[string]any) (*model.InsertResult, error) {
	return s.store.Insert(ctx, record)
}

// ListByPurchaser returns all records whose purchaser email equals email.
// Callers are expected to have already passed the access guard.
func (s *PurchaseService) ListByPurchaser(ctx context.Context, email string) ([]bson.M, error) {
	return s.store.FindByEmail(ctx, email)
}

// Delete removes the record with the given id. Not authorization-checked.
func (s *PurchaseService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.store.Delete(ctx, oid)
}
