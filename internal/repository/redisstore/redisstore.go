// Package redisstore keeps the people collection in a single Redis hash:
// the field is the identifier and the value is the JSON document.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"people/internal/models"
	"people/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// DefaultKey is the hash used when no key is configured.
const DefaultKey = "people"

var _ repository.PersonRepository = (*RedisRepository)(nil)

// replaceIfExists only writes the field when it is already present.
var replaceIfExists = redis.NewScript(`
if redis.call("HEXISTS", KEYS[1], ARGV[1]) == 1 then
	redis.call("HSET", KEYS[1], ARGV[1], ARGV[2])
	return 1
end
return 0
`)

type RedisRepository struct {
	client *redis.Client
	key    string
	Logger *logrus.Logger
}

// Dial parses url, pings the server and returns a ready repository.
func Dial(ctx context.Context, url, key string, logger *logrus.Logger) (*RedisRepository, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}

	repo := NewRepository(redis.NewClient(opts), key, logger)
	if err := repo.Health(ctx); err != nil {
		repo.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return repo, nil
}

// NewRepository wraps an existing client. An empty key selects DefaultKey.
func NewRepository(client *redis.Client, key string, logger *logrus.Logger) *RedisRepository {
	if key == "" {
		key = DefaultKey
	}
	return &RedisRepository{client: client, key: key, Logger: logger}
}

func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) Create(ctx context.Context, id string, person *models.Person) (*models.Person, error) {
	resolved, err := repository.ResolveIdentifier(id)
	if err != nil {
		return nil, err
	}

	stored := person.WithID(resolved)
	doc, err := repository.MarshalDocument(&stored)
	if err != nil {
		return nil, err
	}

	if err := r.client.HSet(ctx, r.key, resolved, doc).Err(); err != nil {
		return nil, fmt.Errorf("failed to store person %s: %w", resolved, err)
	}
	r.debugf("RedisRepository: stored person %s", resolved)
	return &stored, nil
}

func (r *RedisRepository) FindAll(ctx context.Context) ([]models.Person, error) {
	docs, err := r.client.HVals(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	people := make([]models.Person, 0, len(docs))
	for _, doc := range docs {
		p, err := repository.UnmarshalDocument([]byte(doc))
		if err != nil {
			return nil, err
		}
		people = append(people, *p)
	}
	return people, nil
}

func (r *RedisRepository) FindByID(ctx context.Context, id string) (*models.Person, error) {
	canonical, err := repository.ParseIdentifier(id)
	if err != nil {
		return nil, err
	}

	doc, err := r.client.HGet(ctx, r.key, canonical).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch person %s: %w", canonical, err)
	}
	return repository.UnmarshalDocument([]byte(doc))
}

func (r *RedisRepository) Update(ctx context.Context, person *models.Person) (int64, error) {
	canonical, err := repository.ParseIdentifier(person.ID)
	if err != nil {
		return 0, err
	}

	replacement := person.WithID(canonical)
	doc, err := repository.MarshalDocument(&replacement)
	if err != nil {
		return 0, err
	}

	matched, err := replaceIfExists.Run(ctx, r.client, []string{r.key}, canonical, string(doc)).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to update person %s: %w", canonical, err)
	}
	r.debugf("RedisRepository: update of %s matched %d document(s)", canonical, matched)
	return matched, nil
}

func (r *RedisRepository) RemoveByID(ctx context.Context, id string) (int64, error) {
	canonical, err := repository.ParseIdentifier(id)
	if err != nil {
		return 0, err
	}

	deleted, err := r.client.HDel(ctx, r.key, canonical).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to delete person %s: %w", canonical, err)
	}
	r.debugf("RedisRepository: delete of %s removed %d document(s)", canonical, deleted)
	return deleted, nil
}

// Health reports whether the server answers a PING.
func (r *RedisRepository) Health(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRepository) debugf(format string, args ...interface{}) {
	if r.Logger != nil {
		r.Logger.Debugf(format, args...)
	}
}
