package dto

import "github.com/hongminglow/user-service/internal/models"

// UserRequest carries the full field set for create and update.
type UserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsActive *bool  `json:"isActive"`
	Document string `json:"document"`
}

type UserStatusRequest struct {
	IsActive *bool `json:"isActive"`
}

// UserResponse is what callers see of a user. The password never leaves the service.
type UserResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	IsActive bool   `json:"isActive"`
	Document string `json:"document"`
}

// NewUserResponse projects a stored user into its response shape.
func NewUserResponse(user models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		IsActive: user.IsActive,
		Document: user.Document,
	}
}
