package services

import (
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const lastFiltersTTL = 30 * time.Minute

func lastFiltersKey(session string) string {
	return "last_filters:hotel:" + session
}

// SaveLastFilters remembers the hotel search of a session
func SaveLastFilters(ctx context.Context, rdb *redis.Client, session string, filters HotelSearchCriteria) error {
	b, err := json.Marshal(filters)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, lastFiltersKey(session), b, lastFiltersTTL).Err()
}

// GetLastFilters returns ErrCacheMiss when the session has no saved search
func GetLastFilters(ctx context.Context, rdb *redis.Client, session string) (HotelSearchCriteria, error) {
	var filters HotelSearchCriteria
	err := GetFromRedis(ctx, rdb, lastFiltersKey(session), &filters)
	return filters, err
}

func ClearLastFilters(ctx context.Context, rdb *redis.Client, session string) error {
	return rdb.Del(ctx, lastFiltersKey(session)).Err()
}

// MergeFilters fills the empty fields of next from prev
func MergeFilters(prev, next HotelSearchCriteria) HotelSearchCriteria {
	next.Name = orString(next.Name, prev.Name)
	next.Address = orString(next.Address, prev.Address)
	next.Category = orString(next.Category, prev.Category)
	if next.Qualification == 0 {
		next.Qualification = prev.Qualification
	}
	return next
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}
