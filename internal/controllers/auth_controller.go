package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"news-api-be/internal/logger"
	"news-api-be/internal/models"
	"news-api-be/internal/repository"
	"news-api-be/internal/service"
	"news-api-be/internal/validation"
)

// loginCookie is the HTTP-only cookie carrying the session token. Clearing
// it on logout does not invalidate the token server-side; tokens stay
// valid until natural expiry.
const loginCookie = "login_token"

type AuthController struct {
	authService  service.AuthService
	cookieMaxAge int // seconds, matches the token lifetime
	log          *logger.Logger
}

func NewAuthController(authService service.AuthService, cookieMaxAge int, log *logger.Logger) *AuthController {
	return &AuthController{
		authService:  authService,
		cookieMaxAge: cookieMaxAge,
		log:          log,
	}
}

// Register handles POST /user/register
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      models.RegisterRequest  true  "username, email, password"
// @Success      200  {object}  models.RegisterResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /user/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.FieldErrors(err)})
		return
	}

	response, err := ac.authService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email address is already in use"})
		case errors.Is(err, repository.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Username is already in use"})
		default:
			ac.log.Error().Err(err).Msg("failed to register user")
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "An error occurred while registering the user",
				"error":   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}

// Login handles POST /user/login
//
// @Summary      Log in
// @Description  Authenticates by email and password and issues a bearer token, also set as an HTTP-only cookie.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        credentials  body      models.LoginRequest  true  "email, password"
// @Success      200  {object}  models.LoginResponse
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /user/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.FieldErrors(err)})
		return
	}

	response, err := ac.authService.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"errors": gin.H{"email": "User not found."}})
		case errors.Is(err, service.ErrInvalidPassword):
			c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"password": "Invalid password."}})
		default:
			ac.log.Error().Err(err).Msg("failed to log user in")
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "An error occurred while finding the user",
				"error":   err.Error(),
			})
		}
		return
	}

	// Not marked secure: the API also serves plain-HTTP local setups.
	c.SetCookie(loginCookie, response.Token, ac.cookieMaxAge, "/", "", false, true)

	c.JSON(http.StatusOK, response)
}

// Logout handles GET /user/logout
//
// @Summary      Log out
// @Description  Clears the session cookie. The token itself remains valid until it expires.
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /user/logout [get]
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(loginCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successfully"})
}
