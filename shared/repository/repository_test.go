package repository_test

import (
	"context"
	otelMocks "corais/infras/otel/mocks"
	"corais/infras/postgres"
	"corais/shared/dto"
	"corais/shared/model"
	"corais/shared/repository"
	"testing"

	"github.com/stretchr/testify/assert"
)

type entity struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Note  string `db:"-"`
	Plain string
	model.Metadata
}

func newRepo(db *postgres.Connection) repository.Repository[entity] {
	return repository.NewRepository[entity]("entity", "entities", "id", db, otelMocks.NewOtel())
}

func TestNewRepository_InsertColumns(t *testing.T) {
	repo := newRepo(nil)

	assert.Equal(t, []string{"id", "name"}, repo.InsertColumns)
}

func TestRepository_BuildWhereClause(t *testing.T) {
	repo := newRepo(nil)

	where, args := repo.BuildWhereClause(dto.FilterGroup{})
	assert.Empty(t, where)
	assert.NotNil(t, args)

	where, args = repo.BuildWhereClause(dto.FilterGroup{
		Filters: []any{dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "available", Table: "entities"}},
	})
	assert.Equal(t, " WHERE (entities.status = :status) ", where)
	assert.Equal(t, map[string]any{"status": "available"}, args)
}

func TestRepository_WithoutConnection(t *testing.T) {
	repo := newRepo(&postgres.Connection{})
	ctx := context.Background()

	assert.ErrorIs(t, repo.Insert(ctx, entity{ID: "1"}), postgres.ErrNotConnected)

	_, err := repo.GetAll(ctx, dto.QueryParams{}, dto.FilterGroup{})
	assert.ErrorIs(t, err, postgres.ErrNotConnected)

	_, err = repo.Count(ctx, dto.FilterGroup{})
	assert.ErrorIs(t, err, postgres.ErrNotConnected)

	_, err = repo.Get(ctx, dto.FilterGroup{})
	assert.ErrorIs(t, err, postgres.ErrNotConnected)
}
