package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tomatino/tomatino-api/internal/middleware"
	"github.com/tomatino/tomatino-api/internal/model"
	"github.com/tomatino/tomatino-api/internal/service"
	"github.com/tomatino/tomatino-api/internal/token"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Function-field mock stores, same pattern as the service tests.

type mockFoodStore struct {
	findFn   func(ctx context.Context, filter bson.M, page *service.Page) ([]bson.M, error)
	deleteFn func(ctx context.Context, id primitive.ObjectID) (*model.DeleteResult, error)
}

func (m *mockFoodStore) Find(ctx context.Context, filter bson.M, page *service.Page) ([]bson.M, error) {
	if m.findFn != nil {
		return m.findFn(ctx, filter, page)
	}
	return []bson.M{}, nil
}

func (m *mockFoodStore) Insert(context.Context, map[string]any) (*model.InsertResult, error) {
	return &model.InsertResult{Acknowledged: true, InsertedID: "new-id"}, nil
}

func (m *mockFoodStore) FindByID(context.Context, primitive.ObjectID) (bson.M, error) {
	return nil, nil
}

func (m *mockFoodStore) Replace(context.Context, primitive.ObjectID, bson.M) (*model.UpdateResult, error) {
	return &model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockFoodStore) Merge(context.Context, primitive.ObjectID, bson.M) (*model.UpdateResult, error) {
	return &model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m *mockFoodStore) Delete(ctx context.Context, id primitive.ObjectID) (*model.DeleteResult, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return &model.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

type mockPurchaseStore struct {
	findByEmailFn func(ctx context.Context, email string) ([]bson.M, error)
}

func (m *mockPurchaseStore) Insert(context.Context, map[string]any) (*model.InsertResult, error) {
	return &model.InsertResult{Acknowledged: true, InsertedID: "new-id"}, nil
}

func (m *mockPurchaseStore) FindByEmail(ctx context.Context, email string) ([]bson.M, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return []bson.M{}, nil
}

func (m *mockPurchaseStore) FindAll(context.Context) ([]bson.M, error) {
	return []bson.M{}, nil
}

func (m *mockPurchaseStore) Delete(context.Context, primitive.ObjectID) (*model.DeleteResult, error) {
	return &model.DeleteResult{Acknowledged: true, DeletedCount: 0}, nil
}

func newTestRouter(t *testing.T, foods *mockFoodStore, purchases *mockPurchaseStore) (*chi.Mux, *token.Issuer) {
	t.Helper()

	issuer := token.NewIssuer("test-secret", time.Hour)
	foodHandler := NewFoodHandler(
		service.NewCatalogService(foods),
		service.NewLeaderboardService(purchases),
	)
	purchaseHandler := NewPurchaseHandler(service.NewPurchaseService(purchases))
	authHandler := NewAuthHandler(issuer)

	r := chi.NewRouter()
	r.Post("/jwt", authHandler.HandleIssueToken)
	r.Post("/logout", authHandler.HandleLogout)
	r.Get("/allfoods", foodHandler.HandleList)
	r.Post("/allfoods", foodHandler.HandleCreate)
	r.Get("/food/{id}", foodHandler.HandleGet)
	r.Put("/food/{id}", foodHandler.HandleReplace)
	r.Delete("/food/{id}", foodHandler.HandleDelete)
	r.Patch("/allfoods/{id}", foodHandler.HandleMerge)
	r.Get("/topfoods", foodHandler.HandleTopFoods)
	r.With(middleware.RequireSession(issuer)).Get("/purchasedFood", purchaseHandler.HandleList)
	r.Post("/purchasedFood", purchaseHandler.HandleCreate)
	r.Delete("/purchasedFood/{id}", purchaseHandler.HandleDelete)

	return r, issuer
}

func sessionCookie(t *testing.T, issuer *token.Issuer, email string) *http.Cookie {
	t.Helper()
	tok, err := issuer.Issue(map[string]any{"email": email})
	if err != nil {
		t.Fatalf("Issue() unexpected error: %v", err)
	}
	return &http.Cookie{Name: middleware.SessionCookie, Value: tok}
}

func TestIssueTokenSetsCookie(t *testing.T) {
	router, _ := newTestRouter(t, &mockFoodStore{}, &mockPurchaseStore{})

	req := httptest.NewRequest(http.MethodPost, "/jwt", strings.NewReader(`{"email":"a@x.com"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if !body["success"] {
		t.Error("body success = false, want true")
	}

	cookies := rec.Result().Cookies()
	var found *http.Cookie
	for _, c := range cookies {
		if c.Name == middleware.SessionCookie {
			found = c
		}
	}
	if found == nil {
		t.Fatal("token cookie not set")
	}
	if !found.HttpOnly || !found.Secure || found.SameSite != http.SameSiteNoneMode {
		t.Errorf("cookie flags = HttpOnly:%v Secure:%v SameSite:%v, want HttpOnly secure cross-site",
			found.HttpOnly, found.Secure, found.SameSite)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	router, _ := newTestRouter(t, &mockFoodStore{}, &mockPurchaseStore{})

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != middleware.SessionCookie {
		t.Fatalf("cookies = %v, want cleared token cookie", cookies)
	}
	if cookies[0].Value != "" || cookies[0].MaxAge >= 0 {
		t.Errorf("cookie value %q maxage %d, want empty with negative max age",
			cookies[0].Value, cookies[0].MaxAge)
	}
}

func TestPurchasedFoodGuard(t *testing.T) {
	purchases := &mockPurchaseStore{
		findByEmailFn: func(_ context.Context, email string) ([]bson.M, error) {
			return []bson.M{{"food": "soup", "email": email}}, nil
		},
	}
	router, issuer := newTestRouter(t, &mockFoodStore{}, purchases)

	t.Run("no cookie is 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/purchasedFood?email=a@x.com", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("identity mismatch is 403", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/purchasedFood?email=a@x.com", nil)
		req.AddCookie(sessionCookie(t, issuer, "b@x.com"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if body["message"] != "forbidden access" {
			t.Errorf("message = %q, want %q", body["message"], "forbidden access")
		}
	})

	t.Run("matching identity is 200 with own records", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/purchasedFood?email=a@x.com", nil)
		req.AddCookie(sessionCookie(t, issuer, "a@x.com"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var records []map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &records); err != nil {
			t.Fatalf("invalid JSON body: %v", err)
		}
		if len(records) != 1 || records[0]["email"] != "a@x.com" {
			t.Errorf("records = %v, want one record for a@x.com", records)
		}
	})
}

func TestListPassesPagingParams(t *testing.T) {
	var gotPage *service.Page
	foods := &mockFoodStore{
		findFn: func(_ context.Context, _ bson.M, page *service.Page) ([]bson.M, error) {
			gotPage = page
			return []bson.M{}, nil
		},
	}
	router, _ := newTestRouter(t, foods, &mockPurchaseStore{})

	req := httptest.NewRequest(http.MethodGet, "/allfoods?page=1&size=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if gotPage == nil || gotPage.Skip != 2 || gotPage.Limit != 2 {
		t.Errorf("store saw window %+v, want skip 2 limit 2", gotPage)
	}
}

func TestListWithoutSizeIsUnpaged(t *testing.T) {
	var gotPage *service.Page
	called := false
	foods := &mockFoodStore{
		findFn: func(_ context.Context, _ bson.M, page *service.Page) ([]bson.M, error) {
			called = true
			gotPage = page
			return []bson.M{}, nil
		},
	}
	router, _ := newTestRouter(t, foods, &mockPurchaseStore{})

	req := httptest.NewRequest(http.MethodGet, "/allfoods?search=tomato", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if !called {
		t.Fatal("store never queried")
	}
	if gotPage != nil {
		t.Errorf("store saw window %+v, want nil (unpaged)", gotPage)
	}
}

func TestGetAbsentFoodIsJSONNull(t *testing.T) {
	router, _ := newTestRouter(t, &mockFoodStore{}, &mockPurchaseStore{})

	req := httptest.NewRequest(http.MethodGet, "/food/"+primitive.NewObjectID().Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "null" {
		t.Errorf("body = %q, want null", got)
	}
}

func TestDeleteInvalidIDIs400(t *testing.T) {
	router, _ := newTestRouter(t, &mockFoodStore{}, &mockPurchaseStore{})

	req := httptest.NewRequest(http.MethodDelete, "/food/not-a-hex-id", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestDeleteAbsentFoodReportsZero(t *testing.T) {
	foods := &mockFoodStore{
		deleteFn: func(context.Context, primitive.ObjectID) (*model.DeleteResult, error) {
			return &model.DeleteResult{Acknowledged: true, DeletedCount: 0}, nil
		},
	}
	router, _ := newTestRouter(t, foods, &mockPurchaseStore{})

	req := httptest.NewRequest(http.MethodDelete, "/food/"+primitive.NewObjectID().Hex(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (absent id is not an error)", rec.Code)
	}
	var res model.DeleteResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if res.DeletedCount != 0 {
		t.Errorf("deletedCount = %d, want 0", res.DeletedCount)
	}
}

func TestCreateFoodInvalidBody(t *testing.T) {
	router, _ := newTestRouter(t, &mockFoodStore{}, &mockPurchaseStore{})

	req := httptest.NewRequest(http.MethodPost, "/allfoods", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
