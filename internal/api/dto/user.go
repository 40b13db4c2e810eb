package dto

type LoginDTO struct {
	Username string `json:"username" binding:"required" validate:"min=1,max=50"`
	Password string `json:"password" binding:"required" validate:"min=6,max=72"`
}

type LoginResultDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}

type UserDTO struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type CreateUserDTO struct {
	Username string `json:"username" binding:"required" validate:"min=3,max=50"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" binding:"required" validate:"min=6,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=admin editor"`
}

// UpdateUserDTO hanya menimpa field yang dikirim; field kosong berarti
// tidak diubah.
type UpdateUserDTO struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=6,max=72"`
	Role     string `json:"role" validate:"omitempty,oneof=admin editor"`
	IsBan    *bool  `json:"is_ban"`
}

type ChangePasswordDTO struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required" validate:"min=6,max=72"`
}
