package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	account "auction-backend/internal/accountService"
	model "auction-backend/internal/models"
	"auction-backend/services/auction/helpers"
	"auction-backend/utils"
)

type AccountServiceInterface interface {
	Login(email, password, role string, now time.Time) (model.User, string, error)
	CreateUser(input account.CreateUserInput) (model.User, error)
	GetUser(userID string) (model.User, error)
	ListUsers() ([]model.User, error)
	UpdateUser(userID string, input account.UpdateUserInput) (model.User, error)
	DeleteUser(userID string) error
}

type AccountHandler struct {
	service AccountServiceInterface
}

func NewAccountHandler(service AccountServiceInterface) *AccountHandler {
	return &AccountHandler{service: service}
}

// AdminLoginHandler handles POST /admin/login
func (h *AccountHandler) AdminLoginHandler(c *gin.Context) {
	h.login(c, "AdminLoginHandler", model.RoleAdmin)
}

// ClientLoginHandler handles POST /login
func (h *AccountHandler) ClientLoginHandler(c *gin.Context) {
	h.login(c, "ClientLoginHandler", model.RoleClient)
}

func (h *AccountHandler) login(c *gin.Context, handlerName, role string) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, handlerName, err)
		return
	}

	user, token, err := h.service.Login(req.Email, req.Password, role, time.Now())
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn(handlerName+": login rejected", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return
	}

	resp := helpers.TokenResponse{
		Token:         token,
		UserID:        user.UserID,
		Email:         user.Email,
		CompanyName:   user.CompanyName,
		Role:          user.Role,
		DepositStatus: user.DepositStatus,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "login successful")
	helpers.LogSuccess(handlerName, "login successful", map[string]any{
		"user_id": user.UserID,
		"role":    user.Role,
	})
}

// ProfileHandler handles GET /profile
func (h *AccountHandler) ProfileHandler(c *gin.Context) {
	user, ok := helpers.CurrentUser(c)
	if !ok {
		utils.JSONMessage(c, http.StatusUnauthorized, "not authenticated")
		return
	}
	utils.JSONResponse(c, http.StatusOK, user, "profile retrieved successfully")
}

// CreateUserHandler handles POST /admin/users
func (h *AccountHandler) CreateUserHandler(c *gin.Context) {
	var req helpers.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateUserHandler", err)
		return
	}

	user, err := h.service.CreateUser(account.CreateUserInput{
		Email:         req.Email,
		Password:      req.Password,
		CompanyName:   req.CompanyName,
		Role:          req.Role,
		DepositStatus: req.DepositStatus,
		IsActive:      req.IsActive,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateUserHandler: failed to create user", map[string]any{
			"email": req.Email,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, user, "user created successfully")
	helpers.LogSuccess("CreateUserHandler", "user created successfully", map[string]any{
		"user_id": user.UserID,
		"email":   user.Email,
		"role":    user.Role,
	})
}

// ListUsersHandler handles GET /admin/users
func (h *AccountHandler) ListUsersHandler(c *gin.Context) {
	users, err := h.service.ListUsers()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListUsersHandler: error retrieving users", map[string]any{"error": err.Error()})
		return
	}

	if users == nil {
		users = []model.User{}
	}

	utils.JSONResponse(c, http.StatusOK, users, "users retrieved successfully")
	helpers.LogSuccess("ListUsersHandler", "users retrieved successfully", map[string]any{
		"count": len(users),
	})
}

// GetUserHandler handles GET /admin/users/:user_id
func (h *AccountHandler) GetUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	user, err := h.service.GetUser(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetUserHandler: error retrieving user", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "user retrieved successfully")
}

// UpdateUserHandler handles PUT /admin/users/:user_id
func (h *AccountHandler) UpdateUserHandler(c *gin.Context) {
	userID := c.Param("user_id")

	var req helpers.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateUserHandler", err)
		return
	}

	user, err := h.service.UpdateUser(userID, account.UpdateUserInput{
		Email:         req.Email,
		Password:      req.Password,
		CompanyName:   req.CompanyName,
		Role:          req.Role,
		DepositStatus: req.DepositStatus,
		IsActive:      req.IsActive,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateUserHandler: error updating user", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "user updated successfully")
	helpers.LogSuccess("UpdateUserHandler", "user updated successfully", map[string]any{
		"user_id": user.UserID,
	})
}

// DeleteUserHandler handles DELETE /admin/users/:user_id
func (h *AccountHandler) DeleteUserHandler(c *gin.Context) {
	userID := c.Param("user_id")
	if err := h.service.DeleteUser(userID); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteUserHandler: error deleting user", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONMessage(c, http.StatusOK, "user deleted successfully")
	helpers.LogSuccess("DeleteUserHandler", "user deleted successfully", map[string]any{
		"user_id": userID,
	})
}
