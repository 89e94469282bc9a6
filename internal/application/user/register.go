package user

import (
	"context"

	"github.com/bookshop-api/bookshop/internal/domain/user"
)

// RegisterUseCase creates a customer account. Kept as a thin orchestration
// over the domain service so later steps (welcome mail, audit events) have a
// seam to hang off.
type RegisterUseCase struct {
	userService user.Service
}

// NewRegisterUseCase creates the use case.
func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{userService: userService}
}

// RegisterRequest carries the signup fields.
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// RegisterResponse omits everything credential-related.
type RegisterResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Execute runs the registration.
func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	u, err := uc.userService.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return &RegisterResponse{ID: u.ID, Name: u.Name, Email: u.Email}, nil
}
