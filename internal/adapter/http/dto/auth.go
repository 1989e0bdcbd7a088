package dto

type SignupRequest struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	// bcrypt only reads the first 72 bytes and rejects anything longer.
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type UserItem struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  UserItem `json:"user"`
}
