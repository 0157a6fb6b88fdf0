package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"news-api-be/internal/jwt"
	"news-api-be/internal/models"
	"news-api-be/internal/repository"
)

// AuthService defines the interface for registration and login logic
type AuthService interface {
	Register(req *models.RegisterRequest) (*models.RegisterResponse, error)
	Login(req *models.LoginRequest) (*models.LoginResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
	bcryptCost int
}

// NewAuthService creates a new auth service. bcryptCost is the configured
// hashing work factor.
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService, bcryptCost int) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new user account. The plaintext password is hashed
// before it reaches the repository and is never stored or logged.
func (s *authService) Register(req *models.RegisterRequest) (*models.RegisterResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(req.Username, req.Email, string(hashedPassword))
	if err != nil {
		// Conflict sentinels pass through untouched so the controller can
		// tell the caller which field collided.
		return nil, err
	}

	return &models.RegisterResponse{
		Message: "User registered successfully",
		User: models.UserResponse{
			Username: user.Username,
			Email:    user.Email,
		},
	}, nil
}

// Login authenticates a user by email and password and issues a token
// embedding the username and account creation date.
func (s *authService) Login(req *models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	// bcrypt comparison is constant-time.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidPassword
	}

	token, err := s.jwtService.GenerateToken(user.Username, user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.LoginResponse{
		Message: "User authenticated successfully",
		User: models.UserResponse{
			Username: user.Username,
			Email:    user.Email,
		},
		Token: token,
	}, nil
}
