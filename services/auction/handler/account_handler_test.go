package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	account "auction-backend/internal/accountService"
	"auction-backend/internal/auctionerrors"
	model "auction-backend/internal/models"
	"auction-backend/services/auction/helpers"
)

// Test ClientLoginHandler and AdminLoginHandler
func TestLoginHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAccountServiceInterface(ctrl)
	handler := NewAccountHandler(mockService)

	// Initialize Gin in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", handler.ClientLoginHandler)
	router.POST("/admin/login", handler.AdminLoginHandler)

	client := model.User{
		UserID:        "user-1",
		Email:         "client@example.com",
		CompanyName:   "Acme",
		Role:          model.RoleClient,
		DepositStatus: model.DepositOnFile,
		IsActive:      true,
	}

	tests := []struct {
		name           string
		path           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name: "client_login_success",
			path: "/login",
			requestBody: helpers.LoginRequest{
				Email:    "client@example.com",
				Password: "secret",
			},
			mockSetup: func() {
				mockService.EXPECT().
					Login("client@example.com", "secret", model.RoleClient, gomock.Any()).
					Return(client, "signed-token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "login successful",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "signed-token", data["token"])
				require.Equal(t, "user-1", data["user_id"])
				require.Equal(t, model.RoleClient, data["role"])
				require.Equal(t, model.DepositOnFile, data["deposit_status"])
			},
		},
		{
			name: "admin_login_uses_admin_role",
			path: "/admin/login",
			requestBody: helpers.LoginRequest{
				Email:    "root@example.com",
				Password: "secret",
			},
			mockSetup: func() {
				admin := client
				admin.Role = model.RoleAdmin
				mockService.EXPECT().
					Login("root@example.com", "secret", model.RoleAdmin, gomock.Any()).
					Return(admin, "admin-token", nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "login successful",
		},
		{
			name: "invalid_credentials",
			path: "/login",
			requestBody: helpers.LoginRequest{
				Email:    "client@example.com",
				Password: "wrong",
			},
			mockSetup: func() {
				mockService.EXPECT().
					Login("client@example.com", "wrong", model.RoleClient, gomock.Any()).
					Return(model.User{}, "", auctionerrors.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "invalid credentials",
		},
		{
			name: "deactivated_account",
			path: "/login",
			requestBody: helpers.LoginRequest{
				Email:    "client@example.com",
				Password: "secret",
			},
			mockSetup: func() {
				mockService.EXPECT().
					Login("client@example.com", "secret", model.RoleClient, gomock.Any()).
					Return(model.User{}, "", auctionerrors.ErrAccountInactive)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "account is deactivated",
		},
		{
			name:           "invalid_json",
			path:           "/login",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_password",
			path:           "/login",
			requestBody:    helpers.LoginRequest{Email: "client@example.com"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			var reqBody []byte
			var err error
			switch v := tc.requestBody.(type) {
			case string:
				reqBody = []byte(v)
			default:
				reqBody, err = json.Marshal(v)
				require.NoError(t, err)
			}

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, tc.path, bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil && w.Code == http.StatusOK {
				data := resp["data"].(map[string]any)
				tc.validateData(t, data)
			}
		})
	}
}

// Test CreateUserHandler
func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAccountServiceInterface(ctrl)
	handler := NewAccountHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/admin/users", handler.CreateUserHandler)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "success",
			requestBody: helpers.CreateUserRequest{
				Email:       "new@example.com",
				Password:    "secret",
				CompanyName: "Acme",
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateUser(account.CreateUserInput{
						Email:       "new@example.com",
						Password:    "secret",
						CompanyName: "Acme",
					}).
					Return(model.User{UserID: "user-1", Email: "new@example.com", Role: model.RoleClient}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "user created successfully",
		},
		{
			name: "duplicate_email",
			requestBody: helpers.CreateUserRequest{
				Email:    "dup@example.com",
				Password: "secret",
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateUser(gomock.Any()).
					Return(model.User{}, auctionerrors.ErrConstraintViolation)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "record already exists",
		},
		{
			name:           "malformed_email",
			requestBody:    helpers.CreateUserRequest{Email: "not-an-email", Password: "secret"},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name: "service_generic_error",
			requestBody: helpers.CreateUserRequest{
				Email:    "new@example.com",
				Password: "secret",
			},
			mockSetup: func() {
				mockService.EXPECT().
					CreateUser(gomock.Any()).
					Return(model.User{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			reqBody, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)

			tc.mockSetup()

			req := httptest.NewRequest(http.MethodPost, "/admin/users", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test DeleteUserHandler
func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAccountServiceInterface(ctrl)
	handler := NewAccountHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/admin/users/:user_id", handler.DeleteUserHandler)

	tests := []struct {
		name           string
		userID         string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "success",
			userID: "user-1",
			mockSetup: func() {
				mockService.EXPECT().DeleteUser("user-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "user deleted successfully",
		},
		{
			name:   "protected_account",
			userID: "user-root",
			mockSetup: func() {
				mockService.EXPECT().DeleteUser("user-root").Return(auctionerrors.ErrProtectedAccount)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "account is protected",
		},
		{
			name:   "unknown_user",
			userID: "missing",
			mockSetup: func() {
				mockService.EXPECT().DeleteUser("missing").Return(auctionerrors.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "user not found",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			req := httptest.NewRequest(http.MethodDelete, "/admin/users/"+tc.userID, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.expectedStatus, w.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// ProfileHandler echoes the user the auth middleware resolved
func TestProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockAccountServiceInterface(ctrl)
	handler := NewAccountHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/profile", func(c *gin.Context) {
		helpers.SetCurrentUser(c, model.User{
			UserID:    "user-1",
			Email:     "client@example.com",
			Role:      model.RoleClient,
			CreatedAt: time.Now().UTC(),
		})
	}, handler.ProfileHandler)
	router.GET("/profile-anon", handler.ProfileHandler)

	t.Run("authenticated", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]any)
		require.Equal(t, "user-1", data["user_id"])
		require.NotContains(t, data, "password_hash", "hashes must never leak")
	})

	t.Run("no_user_on_context", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/profile-anon", nil))
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
