package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"casamia/models"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by GetFromRedis when the key is absent
var ErrCacheMiss = errors.New("cache miss")

// GetFromRedis decodes the JSON value stored at key into target
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(cachedData), target)
}

// SetToRedis stores value at key as JSON
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, key, dataJSON, ttl).Err()
}

// DeleteFromRedis removes keys
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, keys ...string) error {
	return rdb.Del(ctx, keys...).Err()
}

// RoomCache caches the room list of a hotel
type RoomCache interface {
	Rooms(ctx context.Context, hotelID uint) ([]models.Room, error)
	StoreRooms(ctx context.Context, hotelID uint, rooms []models.Room) error
	Invalidate(ctx context.Context, hotelID uint) error
}

func roomsCacheKey(hotelID uint) string {
	return fmt.Sprintf("rooms:hotel:%d", hotelID)
}

// RedisRoomCache is a RoomCache on redis. A nil client disables caching.
type RedisRoomCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisRoomCache(rdb *redis.Client, ttl time.Duration) *RedisRoomCache {
	return &RedisRoomCache{rdb: rdb, ttl: ttl}
}

func (c *RedisRoomCache) Rooms(ctx context.Context, hotelID uint) ([]models.Room, error) {
	if c == nil || c.rdb == nil {
		return nil, ErrCacheMiss
	}
	var rooms []models.Room
	if err := GetFromRedis(ctx, c.rdb, roomsCacheKey(hotelID), &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *RedisRoomCache) StoreRooms(ctx context.Context, hotelID uint, rooms []models.Room) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return SetToRedis(ctx, c.rdb, roomsCacheKey(hotelID), rooms, c.ttl)
}

func (c *RedisRoomCache) Invalidate(ctx context.Context, hotelID uint) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return DeleteFromRedis(ctx, c.rdb, roomsCacheKey(hotelID))
}
