package dto

import (
	"time"

	"bloghub/internal/api/models"
)

// CreateUserRequest carries the signup payload. Username, password and email
// are the only required fields.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Wallet   string `json:"wallet"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// UpdateUserRequest uses pointers so omitted fields stay untouched on update.
type UpdateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Wallet   *string `json:"wallet"`
	Address  *string `json:"address"`
	Phone    *string `json:"phone"`
	Avatar   *string `json:"avatar"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
}

// Fields flattens the patch into a column map, skipping nil entries.
func (r *UpdateUserRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Username != nil {
		fields["username"] = *r.Username
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Wallet != nil {
		fields["wallet"] = *r.Wallet
	}
	if r.Address != nil {
		fields["address"] = *r.Address
	}
	if r.Phone != nil {
		fields["phone"] = *r.Phone
	}
	if r.Avatar != nil {
		fields["avatar"] = *r.Avatar
	}
	if r.Role != nil {
		fields["role"] = *r.Role
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	return fields
}

type DeleteUserRequest struct {
	ID string `json:"id" binding:"required"`
}

// UserResponse is the redacted user shape. The password hash never leaves
// the service layer.
type UserResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Wallet       string    `json:"wallet"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	TokenBalance int64     `json:"tokenBalance"`
	Role         string    `json:"role"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FromModelToUserResponse converts a User model to its redacted DTO.
func FromModelToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		Wallet:       user.Wallet,
		Address:      user.Address,
		Phone:        user.Phone,
		TokenBalance: user.TokenBalance,
		Role:         user.Role,
		Status:       user.Status,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// ProfileResponse is the minimal identity payload used by the frontend shell.
type ProfileResponse struct {
	ID       string `json:"id"`
	Role     string `json:"role"`
	Username string `json:"username"`
}

// PaginatedUsersResponse mirrors the shape of every paginated listing.
type PaginatedUsersResponse struct {
	Data        []UserResponse `json:"data"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
	TotalItems  int64          `json:"totalItems"`
}
