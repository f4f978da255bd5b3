package caching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"kantinku/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

type CacheService interface {
	// Menu item caching
	GetMenuItem(ctx context.Context, menuID uuid.UUID) (*models.MenuItem, error)
	SetMenuItem(ctx context.Context, item *models.MenuItem, ttl time.Duration) error
	DeleteMenuItem(ctx context.Context, menuID uuid.UUID) error

	// Monthly report caching, keyed by vendor and month
	GetMonthlyReport(ctx context.Context, vendorID uuid.UUID, month, year int, dst any) error
	SetMonthlyReport(ctx context.Context, vendorID uuid.UUID, month, year int, report any, ttl time.Duration) error
	DeleteMonthlyReport(ctx context.Context, vendorID uuid.UUID, month, year int) error

	// InvalidateVendor drops every cached entry belonging to a vendor.
	InvalidateVendor(ctx context.Context, vendorID uuid.UUID) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisCacheService{client: client}
}

func menuKey(menuID uuid.UUID) string {
	return fmt.Sprintf("kantinku:menu:%s", menuID.String())
}

func reportKey(vendorID uuid.UUID, month, year int) string {
	return fmt.Sprintf("kantinku:report:%s:%04d-%02d", vendorID.String(), year, month)
}

func (r *redisCacheService) GetMenuItem(ctx context.Context, menuID uuid.UUID) (*models.MenuItem, error) {
	data, err := r.client.Get(ctx, menuKey(menuID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	item := &models.MenuItem{}
	if err := json.Unmarshal(data, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (r *redisCacheService) SetMenuItem(ctx context.Context, item *models.MenuItem, ttl time.Duration) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, menuKey(item.ID), data, ttl).Err()
}

func (r *redisCacheService) DeleteMenuItem(ctx context.Context, menuID uuid.UUID) error {
	return r.client.Del(ctx, menuKey(menuID)).Err()
}

func (r *redisCacheService) GetMonthlyReport(ctx context.Context, vendorID uuid.UUID, month, year int, dst any) error {
	data, err := r.client.Get(ctx, reportKey(vendorID, month, year)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}

func (r *redisCacheService) SetMonthlyReport(ctx context.Context, vendorID uuid.UUID, month, year int, report any, ttl time.Duration) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, reportKey(vendorID, month, year), data, ttl).Err()
}

func (r *redisCacheService) DeleteMonthlyReport(ctx context.Context, vendorID uuid.UUID, month, year int) error {
	return r.client.Del(ctx, reportKey(vendorID, month, year)).Err()
}

func (r *redisCacheService) InvalidateVendor(ctx context.Context, vendorID uuid.UUID) error {
	pattern := fmt.Sprintf("kantinku:report:%s:*", vendorID.String())
	iter := r.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
