package models

// RegisterRequest represents the request body for user registration
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=6,max=15"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=12"`
}

// LoginRequest represents the request body for user login. Fields are
// optional at the schema level; a missing email simply fails the user
// lookup and a missing password fails the hash comparison.
type LoginRequest struct {
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password"`
}
