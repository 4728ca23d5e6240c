package service

import (
	"context"
	"errors"
	"regexp"

	"github.com/tomatino/tomatino-api/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrInvalidID = errors.New("invalid id")

// CatalogService handles food catalog reads and mutations. Mutations carry
// no ownership checks: any caller may modify any document.
type CatalogService struct {
	store FoodStore
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(store FoodStore) *CatalogService {
	return &CatalogService{store: store}
}

// ListParams are the caller-supplied catalog listing parameters. Search wins
// over Email when both are present; with neither, everything matches.
type ListParams struct {
	Search string
	Email  string
	Page   int
	Size   int
}

// List returns catalog documents matching params.
func (s *CatalogService) List(ctx context.Context, params ListParams) ([]bson.M, error) {
	return s.store.Find(ctx, listFilter(params), pageWindow(params.Page, params.Size))
}

// Create inserts doc exactly as submitted; no schema validation is applied.
func (s *CatalogService) Create(ctx context.Context, doc map[string]any) (*model.InsertResult, error) {
	return s.store.Insert(ctx, doc)
}

// Get returns the document with the given id, or nil when absent.
func (s *CatalogService) Get(ctx context.Context, id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.store.FindByID(ctx, oid)
}

// Replace upserts the full writable field set of the document with the given
// id, creating the document if it does not exist.
func (s *CatalogService) Replace(ctx context.Context, id string, body map[string]any) (*model.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.store.Replace(ctx, oid, model.ReplacementFields(body))
}

// Merge sets only the supplied top-level fields on the document with the
// given id. Callers cannot distinguish "updated" from "no matching id"
// except through matchedCount.
func (s *CatalogService) Merge(ctx context.Context, id string, body map[string]any) (*model.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	fields := bson.M{}
	for k, v := range body {
		if k == "_id" {
			continue
		}
		fields[k] = v
	}
	return s.store.Merge(ctx, oid, fields)
}

// Delete removes the document with the given id; a missing id yields a
// zero-affected result, not an error.
func (s *CatalogService) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	return s.store.Delete(ctx, oid)
}

// listFilter builds the single read query for a listing. A search term is a
// literal case-insensitive substring match on the name; otherwise an email
// exactly matches the owner field; otherwise everything matches.
func listFilter(params ListParams) bson.M {
	switch {
	case params.Search != "":
		return bson.M{"name": primitive.Regex{
			Pattern: regexp.QuoteMeta(params.Search),
			Options: "i",
		}}
	case params.Email != "":
		return bson.M{"email": params.Email}
	default:
		return bson.M{}
	}
}

// pageWindow translates page/size into a skip/limit window. A non-positive
// size degrades to "return all" (nil window); a negative page is clamped to
// zero.
func pageWindow(page, size int) *Page {
	if size <= 0 {
		return nil
	}
	if page < 0 {
		page = 0
	}
	return &Page{Skip: int64(page) * int64(size), Limit: int64(size)}
}
