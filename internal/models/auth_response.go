package models

// UserResponse is the public projection of a user. The password hash is
// never included.
type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// RegisterResponse represents the response after user registration
type RegisterResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// LoginResponse represents the response after successful authentication.
// The token is also set as an HTTP-only cookie by the controller.
type LoginResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}
