package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// SnapshotRepository reads and writes raw blobs by key.
// Get reports found=false, with a nil error, when the key is absent.
type SnapshotRepository interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
}

type redisSnapshotRepository struct {
	client redis.Cmdable
}

// NewRedisSnapshotRepository stores blobs as plain Redis strings.
func NewRedisSnapshotRepository(client redis.Cmdable) SnapshotRepository {
	return &redisSnapshotRepository{client: client}
}

func (r *redisSnapshotRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (r *redisSnapshotRepository) Put(ctx context.Context, key string, value []byte) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *redisSnapshotRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

type postgresSnapshotRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSnapshotRepository stores blobs in the kv_entries table.
func NewPostgresSnapshotRepository(pool *pgxpool.Pool) SnapshotRepository {
	return &postgresSnapshotRepository{pool: pool}
}

var errPoolNotConfigured = errors.New("postgres pool not configured")

func (r *postgresSnapshotRepository) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if r.pool == nil {
		return nil, false, errPoolNotConfigured
	}
	const query = `SELECT value FROM kv_entries WHERE key=$1`
	var value []byte
	if err := r.pool.QueryRow(ctx, query, key).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

func (r *postgresSnapshotRepository) Put(ctx context.Context, key string, value []byte) error {
	if r.pool == nil {
		return errPoolNotConfigured
	}
	const query = `
        INSERT INTO kv_entries (key, value)
        VALUES ($1,$2)
        ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, updated_at=NOW()`
	_, err := r.pool.Exec(ctx, query, key, value)
	return err
}

func (r *postgresSnapshotRepository) Ping(ctx context.Context) error {
	if r.pool == nil {
		return errPoolNotConfigured
	}
	return r.pool.Ping(ctx)
}

type memorySnapshotRepository struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemorySnapshotRepository keeps blobs in process memory.
func NewMemorySnapshotRepository() SnapshotRepository {
	return &memorySnapshotRepository{entries: make(map[string][]byte)}
}

func (r *memorySnapshotRepository) Get(_ context.Context, key string) ([]byte, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.entries[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (r *memorySnapshotRepository) Put(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = append([]byte(nil), value...)
	return nil
}

func (r *memorySnapshotRepository) Ping(context.Context) error {
	return nil
}
