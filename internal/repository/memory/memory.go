// Package memory keeps the people collection in process memory.
// Documents are kept encoded, like the other stores, so callers never share
// memory with the collection. They never expire; the collection is lost when
// the process exits.
package memory

import (
	"context"
	"sync"

	"people/internal/models"
	"people/internal/repository"

	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
)

var _ repository.PersonRepository = (*MemoryRepository)(nil)

type MemoryRepository struct {
	// mu makes check-then-act sequences (delete with count) atomic.
	mu     sync.Mutex
	Cache  *cache.Cache
	Logger *logrus.Logger
}

// NewRepository returns an empty collection.
func NewRepository(logger *logrus.Logger) *MemoryRepository {
	return &MemoryRepository{
		Cache:  cache.New(cache.NoExpiration, 0),
		Logger: logger,
	}
}

func (m *MemoryRepository) Close() error {
	m.Cache.Flush()
	return nil
}

func (m *MemoryRepository) Create(_ context.Context, id string, person *models.Person) (*models.Person, error) {
	resolved, err := repository.ResolveIdentifier(id)
	if err != nil {
		return nil, err
	}

	stored := person.WithID(resolved)
	doc, err := repository.MarshalDocument(&stored)
	if err != nil {
		return nil, err
	}
	m.Cache.Set(resolved, doc, cache.NoExpiration)
	m.debugf("MemoryRepository: stored person %s", resolved)

	return repository.UnmarshalDocument(doc)
}

func (m *MemoryRepository) FindAll(_ context.Context) ([]models.Person, error) {
	items := m.Cache.Items()
	people := make([]models.Person, 0, len(items))
	for _, item := range items {
		doc, ok := item.Object.([]byte)
		if !ok {
			continue
		}
		p, err := repository.UnmarshalDocument(doc)
		if err != nil {
			return nil, err
		}
		people = append(people, *p)
	}
	return people, nil
}

func (m *MemoryRepository) FindByID(_ context.Context, id string) (*models.Person, error) {
	canonical, err := repository.ParseIdentifier(id)
	if err != nil {
		return nil, err
	}

	cached, found := m.Cache.Get(canonical)
	if !found {
		return nil, nil
	}
	return repository.UnmarshalDocument(cached.([]byte))
}

func (m *MemoryRepository) Update(_ context.Context, person *models.Person) (int64, error) {
	canonical, err := repository.ParseIdentifier(person.ID)
	if err != nil {
		return 0, err
	}

	replacement := person.WithID(canonical)
	doc, err := repository.MarshalDocument(&replacement)
	if err != nil {
		return 0, err
	}

	// Replace fails when the key is absent.
	if err := m.Cache.Replace(canonical, doc, cache.NoExpiration); err != nil {
		return 0, nil
	}
	m.debugf("MemoryRepository: updated person %s", canonical)
	return 1, nil
}

func (m *MemoryRepository) RemoveByID(_ context.Context, id string) (int64, error) {
	canonical, err := repository.ParseIdentifier(id)
	if err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, found := m.Cache.Get(canonical); !found {
		return 0, nil
	}
	m.Cache.Delete(canonical)
	m.debugf("MemoryRepository: removed person %s", canonical)
	return 1, nil
}

func (m *MemoryRepository) debugf(format string, args ...interface{}) {
	if m.Logger != nil {
		m.Logger.Debugf(format, args...)
	}
}
