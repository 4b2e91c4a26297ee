package models

type Role string

const (
	RoleFaculty Role = "faculty"
	RoleStudent Role = "student"
)

// User is the logged in person, as carried in the JWT.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

func (u User) IsFaculty() bool { return u.Role == RoleFaculty }

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateProfileRequest struct {
	Name   string `json:"name" validate:"omitempty,min=1,max=120"`
	Email  string `json:"email" validate:"omitempty,email"`
	Avatar string `json:"avatar"`
}
