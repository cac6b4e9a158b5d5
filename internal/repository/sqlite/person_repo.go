package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"people/internal/models"
	"people/internal/repository"

	"github.com/Masterminds/squirrel"
)

// Create stores person under id, generating an identifier when id is empty.
// Like a document store "save", an existing document with the same id is replaced.
func (s *SQLiteRepository) Create(ctx context.Context, id string, person *models.Person) (*models.Person, error) {
	resolved, err := repository.ResolveIdentifier(id)
	if err != nil {
		return nil, err
	}

	stored := person.WithID(resolved)
	doc, err := repository.MarshalDocument(&stored)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	query, args, err := s.Builder.Insert(peopleTable).
		Columns("id", "document", "created_at", "updated_at").
		Values(resolved, string(doc), now, now).
		Suffix("ON CONFLICT(id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert query: %w", err)
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to insert person %s: %w", resolved, err)
	}

	s.debugf("SQLiteRepository: stored person %s", resolved)
	return &stored, nil
}

// FindAll returns every stored person. The order is unspecified.
func (s *SQLiteRepository) FindAll(ctx context.Context) ([]models.Person, error) {
	query, args, err := s.Builder.Select("document").From(peopleTable).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query people: %w", err)
	}
	defer rows.Close()

	people := []models.Person{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		p, err := repository.UnmarshalDocument([]byte(doc))
		if err != nil {
			return nil, err
		}
		people = append(people, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate people: %w", err)
	}

	return people, nil
}

// FindByID returns (nil, nil) when no document has the given id.
func (s *SQLiteRepository) FindByID(ctx context.Context, id string) (*models.Person, error) {
	canonical, err := repository.ParseIdentifier(id)
	if err != nil {
		return nil, err
	}

	query, args, err := s.Builder.Select("document").
		From(peopleTable).
		Where(squirrel.Eq{"id": canonical}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select query: %w", err)
	}

	var doc string
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query person %s: %w", canonical, err)
	}

	return repository.UnmarshalDocument([]byte(doc))
}

// Update replaces the document keyed by person.ID and reports whether it existed.
func (s *SQLiteRepository) Update(ctx context.Context, person *models.Person) (int64, error) {
	canonical, err := repository.ParseIdentifier(person.ID)
	if err != nil {
		return 0, err
	}

	replacement := person.WithID(canonical)
	doc, err := repository.MarshalDocument(&replacement)
	if err != nil {
		return 0, err
	}

	query, args, err := s.Builder.Update(peopleTable).
		Set("document", string(doc)).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": canonical}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build update query: %w", err)
	}

	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update person %s: %w", canonical, err)
	}

	matched, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read update result: %w", err)
	}
	s.debugf("SQLiteRepository: update of %s matched %d document(s)", canonical, matched)
	return matched, nil
}

// RemoveByID deletes the document keyed by id and reports whether it existed.
func (s *SQLiteRepository) RemoveByID(ctx context.Context, id string) (int64, error) {
	canonical, err := repository.ParseIdentifier(id)
	if err != nil {
		return 0, err
	}

	query, args, err := s.Builder.Delete(peopleTable).
		Where(squirrel.Eq{"id": canonical}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build delete query: %w", err)
	}

	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete person %s: %w", canonical, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read delete result: %w", err)
	}
	s.debugf("SQLiteRepository: delete of %s removed %d document(s)", canonical, deleted)
	return deleted, nil
}

func (s *SQLiteRepository) debugf(format string, args ...interface{}) {
	if s.Logger != nil {
		s.Logger.Debugf(format, args...)
	}
}
