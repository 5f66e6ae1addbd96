package response

import (
	"adslot-panel/internal/usecase/queries"

	"github.com/google/uuid"
)

type OperatorResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

type LoginResponse struct {
	Operator OperatorResponse `json:"operator"`
}

func FromOperatorView(view *queries.OperatorView) OperatorResponse {
	return OperatorResponse{
		ID:   view.ID,
		Name: view.Name,
		Role: view.Role,
	}
}
