package model

// Operation results mirror the document-store driver's own result objects,
// field for field, because clients read insertedId / deletedCount and friends
// straight off the response.

// InsertResult is the response body for a successful insert.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

// UpdateResult is the response body for replace and partial-update writes.
// A zero MatchedCount is the only way a caller can tell an update touched
// nothing; the status code stays 200 either way.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId,omitempty"`
}

// DeleteResult is the response body for deletes. Deleting an absent id is
// not an error; it reports DeletedCount 0.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
