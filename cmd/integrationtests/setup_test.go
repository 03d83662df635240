package integrationtests

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	account "auction-backend/internal/accountService"
	"auction-backend/internal/auth"
	catalog "auction-backend/internal/catalogService"
	lifecycle "auction-backend/internal/lifecycleService"
	model "auction-backend/internal/models"
	"auction-backend/internal/repository"
	"auction-backend/internal/server"
)

const (
	adminEmail    = "admin@auction.local"
	adminPassword = "admin-secret"
)

// TestEnv bundles the router with the repo it runs on so tests can both
// drive the HTTP surface and inspect stored state directly.
type TestEnv struct {
	Router *gin.Engine
	Repo   *repository.MemoryRepo
}

// SetupTestEnv initializes the full router on an in-memory repository with a
// seeded bootstrap admin.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	tokens := auth.NewTokenIssuer([]byte("integration-secret"), time.Hour)
	accountService := account.NewService(repo, tokens, adminEmail)
	catalogService := catalog.NewService(repo)
	lifecycleService := lifecycle.NewService(repo)

	adminRole := model.RoleAdmin
	if _, err := accountService.CreateUser(account.CreateUserInput{
		Email:       adminEmail,
		Password:    adminPassword,
		CompanyName: "Auction House",
		Role:        adminRole,
	}); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}

	router := server.SetupRouter(repo, tokens, accountService, catalogService, lifecycleService)
	return &TestEnv{Router: router, Repo: repo}
}

// ExecuteRequest executes an HTTP request with an optional token and parses
// the JSON envelope.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error
	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(server.TokenHeader, token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// UploadFile posts file contents as a multipart form under the "file" field.
func UploadFile(t *testing.T, router *gin.Engine, url, token, filename string, contents []byte) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("failed to create form file: %v", err)
	}
	if _, err := part.Write(contents); err != nil {
		t.Fatalf("failed to write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set(server.TokenHeader, token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}
	return resp, w
}

// Login authenticates against the given login path and returns the token.
func Login(t *testing.T, router *gin.Engine, path, email, password string) string {
	t.Helper()

	resp, w := ExecuteRequest(t, router, http.MethodPost, path, "", map[string]any{
		"email":    email,
		"password": password,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login for %s failed with status %d: %s", email, w.Code, w.Body.String())
	}
	data := resp["data"].(map[string]any)
	return data["token"].(string)
}

// CreateClient provisions a client account through the admin API and logs it in.
func CreateClient(t *testing.T, router *gin.Engine, adminToken, email, password, depositStatus string) (userID, token string) {
	t.Helper()

	resp, w := ExecuteRequest(t, router, http.MethodPost, "/admin/users", adminToken, map[string]any{
		"email":          email,
		"password":       password,
		"company_name":   "Test Trading GmbH",
		"deposit_status": depositStatus,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create client %s: %s", email, w.Body.String())
	}
	data := resp["data"].(map[string]any)
	return data["user_id"].(string), Login(t, router, "/login", email, password)
}
