package queries

import (
	"context"

	"adslot-panel/internal/domain/operator"

	"github.com/google/uuid"
)

type OperatorView struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

type OperatorQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OperatorView, error)
}

type operatorQueriesImpl struct {
	directory *operator.Directory
}

func NewOperatorQueries(directory *operator.Directory) OperatorQueries {
	return &operatorQueriesImpl{directory: directory}
}

func (q *operatorQueriesImpl) GetByID(_ context.Context, id uuid.UUID) (*OperatorView, error) {
	op, err := q.directory.FindByID(id)
	if err != nil {
		return nil, err
	}

	return &OperatorView{
		ID:   op.ID(),
		Name: op.Name(),
		Role: op.Role().String(),
	}, nil
}
