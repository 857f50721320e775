package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"agency/infras/otel"
	"agency/infras/postgres"
	"agency/internal/domains/slot/model"
	gDto "agency/shared/dto"
	gRepo "agency/shared/repository"
	"context"
)

type TimeSlot interface {
	Insert(ctx context.Context, model model.TimeSlot) error
	InsertOnConflictDoNothing(ctx context.Context, model model.TimeSlot) (bool, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.TimeSlot, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.TimeSlot, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateAffected(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type BlockedDate interface {
	Insert(ctx context.Context, model model.BlockedDate) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BlockedDate, error)
	DeleteAffected(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type timeSlotRepository struct {
	gRepo.Repository[model.TimeSlot]
	db   *postgres.Connection
	otel otel.Otel
}

func NewTimeSlot(db *postgres.Connection, otel otel.Otel) TimeSlot {
	return &timeSlotRepository{
		Repository: gRepo.NewRepository[model.TimeSlot](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type blockedDateRepository struct {
	gRepo.Repository[model.BlockedDate]
	db   *postgres.Connection
	otel otel.Otel
}

func NewBlockedDate(db *postgres.Connection, otel otel.Otel) BlockedDate {
	return &blockedDateRepository{
		Repository: gRepo.NewRepository[model.BlockedDate](model.BlockedDateEntityName, model.BlockedDateTableName, model.FieldBlockedDateID, db, otel),
		db:         db,
		otel:       otel,
	}
}
