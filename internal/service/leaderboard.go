package service

import (
	"context"
	"sort"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

// LeaderboardService derives the top-foods ranking from the purchase ledger.
type LeaderboardService struct {
	store PurchaseStore
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(store PurchaseStore) *LeaderboardService {
	return &LeaderboardService{store: store}
}

// TopFoods returns every ledger record ordered by the numeric rank derived
// from its purchase field, highest first. Records whose purchase value does
// not coerce to an integer take a null-like sentinel and sort after every
// numeric key; a malformed record never aborts the ranking. The derived key
// is scaffolding only and is not attached to the returned records. No cap is
// applied to the result.
func (s *LeaderboardService) TopFoods(ctx context.Context) ([]bson.M, error) {
	records, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	type ranked struct {
		record  bson.M
		key     int64
		numeric bool
	}
	rankedRecords := make([]ranked, len(records))
	for i, rec := range records {
		key, ok := rankKey(rec["purchase"])
		rankedRecords[i] = ranked{record: rec, key: key, numeric: ok}
	}

	sort.SliceStable(rankedRecords, func(i, j int) bool {
		ri, rj := rankedRecords[i], rankedRecords[j]
		if ri.numeric != rj.numeric {
			return ri.numeric
		}
		return ri.key > rj.key
	})

	out := make([]bson.M, len(rankedRecords))
	for i, r := range rankedRecords {
		out[i] = r.record
	}
	return out, nil
}

// rankKey coerces a raw purchase value to an integer rank. Numeric types
// truncate, decimal strings parse, booleans map to 0/1; anything else
// reports false, the sentinel for an uncoercible value.
func rankKey(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
