package mockapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"agriproxy/config"
	"agriproxy/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnvelope mirrors the contract body for assertions.
type testEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Token   string          `json:"token"`
	Data    json.RawMessage `json:"data"`
}

func testDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T) *httptest.Server {
	server, _ := newTestServerWithStore(t)

	return server
}

func newTestServerWithStore(t *testing.T) (*httptest.Server, *UserStore) {
	t.Helper()

	logger := testDiscardLogger()

	cfg := &config.Config{}
	cfg.MockAPI = &config.MockAPIConfig{SecretKey: "test-secret"}
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	users := NewUserStore(auth.NewBcryptHasher())

	e := echo.New()
	e.HideBanner = true
	e.Validator = newRequestValidator()
	e.Use(middleware.Recover())

	NewRouter(RouterParams{
		AuthHandler:    NewAuthHandler(users, tokens, logger),
		ProfileHandler: NewProfileHandler(users, logger),
		CropHandler:    NewCropHandler(logger),
		AuthMiddleware: NewAuthMiddleware(tokens, users),
	}).RegisterRoutes(e)

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	return server, users
}

func postJSON(t *testing.T, server *httptest.Server, path string, body any, token string) (*http.Response, testEnvelope) {
	t.Helper()

	return doJSON(t, server, http.MethodPost, path, body, token)
}

func doJSON(t *testing.T, server *httptest.Server, method, path string, body any, token string) (*http.Response, testEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { res.Body.Close() })

	var envelope testEnvelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&envelope))

	return res, envelope
}

func signupTestUser(t *testing.T, server *httptest.Server) (token string) {
	t.Helper()

	res, envelope := postJSON(t, server, "/api/auth/signup", map[string]string{
		"name":     "Ramesh Kumar",
		"email":    "ramesh@example.com",
		"password": "secret123",
	}, "")
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.NotEmpty(t, envelope.Token)

	return envelope.Token
}

func TestSignupThenLogin(t *testing.T) {
	server := newTestServer(t)

	signupTestUser(t, server)

	res, envelope := postJSON(t, server, "/api/auth/login", map[string]string{
		"email":    "ramesh@example.com",
		"password": "secret123",
	}, "")

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, envelope.Success)
	assert.NotEmpty(t, envelope.Token)

	var data struct {
		User struct {
			ID    string `json:"_id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.NotEmpty(t, data.User.ID)
	assert.Equal(t, "Ramesh Kumar", data.User.Name)
	assert.Equal(t, "ramesh@example.com", data.User.Email)
}

func TestLogin_WrongPassword(t *testing.T) {
	server := newTestServer(t)
	signupTestUser(t, server)

	res, envelope := postJSON(t, server, "/api/auth/login", map[string]string{
		"email":    "ramesh@example.com",
		"password": "wrongpass",
	}, "")

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.False(t, envelope.Success)
	assert.NotEmpty(t, envelope.Message)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	server := newTestServer(t)
	signupTestUser(t, server)

	res, envelope := postJSON(t, server, "/api/auth/signup", map[string]string{
		"name":     "Someone Else",
		"email":    "Ramesh@Example.com",
		"password": "another123",
	}, "")

	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.False(t, envelope.Success)
}

func TestSignup_RejectsShortPassword(t *testing.T) {
	server := newTestServer(t)

	res, _ := postJSON(t, server, "/api/auth/signup", map[string]string{
		"name":     "Ramesh Kumar",
		"email":    "ramesh@example.com",
		"password": "short",
	}, "")

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestProfile_RequiresToken(t *testing.T) {
	server := newTestServer(t)

	res, envelope := doJSON(t, server, http.MethodGet, "/api/auth/profile", nil, "")

	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.False(t, envelope.Success)
}

func TestProfile_FetchAndUpdate(t *testing.T) {
	server := newTestServer(t)
	token := signupTestUser(t, server)

	res, envelope := doJSON(t, server, http.MethodGet, "/api/auth/profile", nil, token)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, envelope.Success)

	res, envelope = doJSON(t, server, http.MethodPut, "/api/auth/profile", map[string]string{
		"phone": "9876543210",
	}, token)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var data struct {
		User struct {
			Name  string `json:"name"`
			Phone string `json:"phone"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Equal(t, "9876543210", data.User.Phone)
	assert.Equal(t, "Ramesh Kumar", data.User.Name)
}

func TestExtendedProfile_PincodeValidation(t *testing.T) {
	server := newTestServer(t)
	token := signupTestUser(t, server)

	res, _ := doJSON(t, server, http.MethodPut, "/api/profile", map[string]string{
		"pincode": "12ab",
	}, token)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	res, envelope := doJSON(t, server, http.MethodPut, "/api/profile", map[string]string{
		"pincode": "302001",
		"city":    "Jaipur",
	}, token)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var data struct {
		User struct {
			City    string `json:"city"`
			Pincode string `json:"pincode"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Equal(t, "Jaipur", data.User.City)
	assert.Equal(t, "302001", data.User.Pincode)
}

func TestLogout_RevokesToken(t *testing.T) {
	server := newTestServer(t)
	token := signupTestUser(t, server)

	res, _ := postJSON(t, server, "/api/auth/logout", nil, token)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = doJSON(t, server, http.MethodGet, "/api/auth/profile", nil, token)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestUploadAvatar(t *testing.T) {
	server := newTestServer(t)
	token := signupTestUser(t, server)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("avatar", "me.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("image-bytes"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/profile/avatar", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var envelope testEnvelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&envelope))

	var data struct {
		User struct {
			Avatar string `json:"avatar"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.True(t, strings.HasPrefix(data.User.Avatar, "/uploads/avatars/"))
	assert.True(t, strings.HasSuffix(data.User.Avatar, ".jpg"))
}

func TestDetectDisease_CannedByCrop(t *testing.T) {
	server := newTestServer(t)
	token := signupTestUser(t, server)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("crop", "Wheat"))
	part, err := form.CreateFormFile("image", "leaf.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("image-bytes"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/plant-diseases/detect", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var envelope testEnvelope
	require.NoError(t, json.NewDecoder(res.Body).Decode(&envelope))

	var data struct {
		Disease    string `json:"disease"`
		Confidence int    `json:"confidence"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Equal(t, "Leaf Rust", data.Disease)
	assert.Equal(t, 88, data.Confidence)
}

func TestRoutesMountedUnderAPIPrefix(t *testing.T) {
	server := newTestServer(t)

	res, err := http.Post(server.URL+"/auth/signup", "application/json",
		strings.NewReader(`{"name":"Ramesh Kumar","email":"ramesh@example.com","password":"secret123"}`))
	require.NoError(t, err)
	defer res.Body.Close()

	// An unprefixed path is unknown, not unauthorized, so a stray request
	// never trips the client's session-invalidation hook.
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestAnalyzeSoil_RequiresSampleFile(t *testing.T) {
	server := newTestServer(t)
	token := signupTestUser(t, server)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	require.NoError(t, form.WriteField("location", "North field"))
	require.NoError(t, form.Close())

	req, err := http.NewRequest(http.MethodPost, server.URL+"/api/soil-tests/upload", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
