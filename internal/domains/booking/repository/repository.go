package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"corais/infras/otel"
	"corais/infras/postgres"
	"corais/internal/domains/booking/model"
	gRepo "corais/shared/repository"
)

// Booking only creates records. Status changes happen in the back office.
type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
