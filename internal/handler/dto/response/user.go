package response

import (
	"meeting-room-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type PublicUserResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func FromPublicUserView(view *queries.PublicUserView) *PublicUserResponse {
	var resp PublicUserResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
