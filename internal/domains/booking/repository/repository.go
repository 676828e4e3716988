package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayadmin/infras/otel"
	"stayadmin/infras/postgres"
	"stayadmin/internal/domains/booking/model"
	"stayadmin/shared/constant"
	gDto "stayadmin/shared/dto"
	"stayadmin/shared/logger"
	gRepo "stayadmin/shared/repository"
)

type Booking interface {
	NextSequence(ctx context.Context) (int64, error)
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// NextSequence claims the next booking id value. Sequences never hand out the
// same value twice, so ids of deleted bookings stay retired.
func (repo *repositoryImpl) NextSequence(ctx context.Context) (seq int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".NextSequence")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := fmt.Sprintf("SELECT nextval('%s')", model.SequenceName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = repo.db.Write.GetContext(ctx, &seq, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to get next booking sequence: %w", err)
	}

	return seq, nil
}
