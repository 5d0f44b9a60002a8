package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/fortune-club/internal/auth"
	"github.com/BruksfildServices01/fortune-club/internal/dto"
	"github.com/BruksfildServices01/fortune-club/internal/httperr"
	"github.com/BruksfildServices01/fortune-club/internal/httpresp"
	"github.com/BruksfildServices01/fortune-club/internal/models"
	ucAccount "github.com/BruksfildServices01/fortune-club/internal/usecase/account"
)

type AuthHandler struct {
	register *ucAccount.Register
	login    *ucAccount.Login
	tokens   *auth.Tokens
}

func NewAuthHandler(
	register *ucAccount.Register,
	login *ucAccount.Login,
	tokens *auth.Tokens,
) *AuthHandler {
	return &AuthHandler{register: register, login: login, tokens: tokens}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email      string `json:"email" binding:"required"`
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name"`
	UserRoleID uint   `json:"user_role_id" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User  dto.UserDTO `json:"user"`
	Token string      `json:"token"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.register.Execute(c.Request.Context(), ucAccount.RegisterInput{
		Email:     req.Email,
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		RoleID:    req.UserRoleID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	resp, err := h.authResponse(user)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.login.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ucAccount.ErrInvalidCredentials) {
			httperr.Unauthorized(c, "invalid_credentials", "Unable to log in with provided credentials.")
			return
		}
		httperr.Respond(c, err)
		return
	}

	resp, err := h.authResponse(user)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, resp)
}

func (h *AuthHandler) authResponse(user *models.User) (AuthResponse, error) {
	token, err := h.tokens.Issue(user)
	if err != nil {
		return AuthResponse{}, err
	}
	return AuthResponse{User: dto.NewUser(user), Token: token}, nil
}
