package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	appErr "github.com/onebluedot/site/pkg/errors"
	"gorm.io/gorm"
)

// BaseRepository is the keyed CRUD every table repository embeds.
type BaseRepository[T any] interface {
	Create(ctx context.Context, obj *T) error
	GetByID(ctx context.Context, id any, dest *T) error
	Delete(ctx context.Context, id any) error
}

type baseRepository[T any] struct {
	db *gorm.DB
	// entity names T in error messages, e.g. "project".
	entity string
}

func NewBaseRepository[T any](db *gorm.DB, entity string) BaseRepository[T] {
	return &baseRepository[T]{db: db, entity: entity}
}

func (r *baseRepository[T]) Create(ctx context.Context, obj *T) error {
	err := r.db.WithContext(ctx).Create(obj).Error
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return appErr.Wrap(err, appErr.CodeConflict, r.entity+" already exists")
	default:
		return appErr.Wrap(err, appErr.CodeInternal, "create "+r.entity+" failed")
	}
}

func (r *baseRepository[T]) GetByID(ctx context.Context, id any, dest *T) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(dest).Error
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return appErr.New(appErr.CodeNotFound, r.entity+" not found").WithMeta("id", fmt.Sprint(id))
	default:
		return appErr.Wrap(err, appErr.CodeInternal, "get "+r.entity+" failed")
	}
}

func (r *baseRepository[T]) Delete(ctx context.Context, id any) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return appErr.Wrap(res.Error, appErr.CodeInternal, "delete "+r.entity+" failed")
	}
	if res.RowsAffected == 0 {
		return appErr.New(appErr.CodeNotFound, fmt.Sprintf("%s %v not found", r.entity, id))
	}
	return nil
}

// unique_violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" || errors.Is(err, gorm.ErrDuplicatedKey)
}
