// Package counts кеширует в Redis счётчики занятости календаря по месяцам.
// Кеш — подсказка для UI: короткий TTL, устаревание на несколько секунд
// допустимо, фактическая проверка вместимости выполняется при создании
// бронирования в транзакции
package counts

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache кеш счётчиков бронирований по датам месяца
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кеш поверх Redis клиента
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// key формирует ключ кеша для месяца
func key(year int, month time.Month) string {
	return fmt.Sprintf("booking:counts:%04d-%02d", year, int(month))
}

// Get возвращает закешированные счётчики месяца.
// Второе значение false — промах кеша или ошибка Redis (не различаются:
// в обоих случаях вызывающая сторона идёт в БД)
func (c *Cache) Get(ctx context.Context, year int, month time.Month) (map[string]int, bool) {
	data, err := c.client.Get(ctx, key(year, month)).Bytes()
	if err != nil {
		return nil, false
	}

	var counts map[string]int
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, false
	}

	return counts, true
}

// Set сохраняет счётчики месяца с TTL. Ошибка Redis не критична
func (c *Cache) Set(ctx context.Context, year int, month time.Month, counts map[string]int) error {
	data, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("counts cache: marshal: %w", err)
	}

	if err := c.client.Set(ctx, key(year, month), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("counts cache: set: %w", err)
	}

	return nil
}

// Invalidate сбрасывает кеш месяца (вызывается после создания бронирования)
func (c *Cache) Invalidate(ctx context.Context, year int, month time.Month) error {
	if err := c.client.Del(ctx, key(year, month)).Err(); err != nil {
		return fmt.Errorf("counts cache: del: %w", err)
	}
	return nil
}
