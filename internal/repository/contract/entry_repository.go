package contract

import (
	"context"

	"notely-be/internal/entity"
	"notely-be/internal/repository/specification"
)

type EntryRepository interface {
	Create(ctx context.Context, entry *entity.Entry) error
	Update(ctx context.Context, entry *entity.Entry) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Entry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Entry, error)
}
