package request

import (
	"meeting-room-api/internal/domain/user"
)

type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (r *RegisterUserRequest) ToDomain() (user.Name, user.Email, user.Password, error) {
	name, err := user.NewName(r.Name)
	if err != nil {
		return user.Name{}, user.Email{}, user.Password{}, err
	}

	email, err := user.NewEmail(r.Email)
	if err != nil {
		return user.Name{}, user.Email{}, user.Password{}, err
	}

	password, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Name{}, user.Email{}, user.Password{}, err
	}

	return name, email, password, nil
}
