package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/devfolio/portfolio-backend/internal/api/http/middleware"
	authmw "github.com/devfolio/portfolio-backend/internal/auth/middleware"
	"github.com/devfolio/portfolio-backend/internal/contact/domain"
	"github.com/devfolio/portfolio-backend/internal/contact/service"
)

var testSecret = []byte("test-secret")

type stubRepo struct {
	items  []domain.Contact
	nextID int64
}

func newStubRepo() *stubRepo {
	return &stubRepo{nextID: 1}
}

func (s *stubRepo) Create(ctx context.Context, name, email, message string) (int64, error) {
	id := s.nextID
	s.nextID++
	s.items = append([]domain.Contact{{
		ID:        id,
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now(),
	}}, s.items...)
	return id, nil
}

func (s *stubRepo) List(ctx context.Context) ([]domain.Contact, error) {
	out := make([]domain.Contact, len(s.items))
	copy(out, s.items)
	return out, nil
}

func newTestRouter(repo *stubRepo, limit gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	svc := service.NewContactService(repo)
	New(svc).Register(r.Group("/api/contact"), limit, authmw.BearerAuth(testSecret))
	return r
}

// openLimit never throttles; tests that care about 429 build their own.
func openLimit() gin.HandlerFunc {
	return middleware.RateLimit(rate.Inf, 1)
}

func bearerToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(testSecret)
	require.NoError(t, err)
	return signed
}

func doRequest(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmit_Created(t *testing.T) {
	repo := newStubRepo()
	r := newTestRouter(repo, openLimit())

	w := doRequest(r, http.MethodPost, "/api/contact",
		`{"name":"Ada","email":"ada@example.com","message":"hello"}`, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Message string `json:"message"`
		ID      int64  `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Contact form submitted successfully", body.Message)
	assert.Equal(t, int64(1), body.ID)
	require.Len(t, repo.items, 1)
}

func TestSubmit_MissingFields(t *testing.T) {
	r := newTestRouter(newStubRepo(), openLimit())

	w := doRequest(r, http.MethodPost, "/api/contact",
		`{"name":"Ada","email":"ada@example.com"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrMissingFields.Error())
}

func TestSubmit_InvalidEmail(t *testing.T) {
	r := newTestRouter(newStubRepo(), openLimit())

	w := doRequest(r, http.MethodPost, "/api/contact",
		`{"name":"Ada","email":"not-an-email","message":"hi"}`, "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), domain.ErrInvalidEmail.Error())
}

func TestSubmit_MalformedBody(t *testing.T) {
	r := newTestRouter(newStubRepo(), openLimit())

	w := doRequest(r, http.MethodPost, "/api/contact", `{"name":`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmit_RateLimited(t *testing.T) {
	repo := newStubRepo()
	r := newTestRouter(repo, middleware.RateLimit(rate.Every(time.Hour), 2))

	body := `{"name":"Ada","email":"ada@example.com","message":"hello"}`
	for i := 0; i < 2; i++ {
		w := doRequest(r, http.MethodPost, "/api/contact", body, "")
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doRequest(r, http.MethodPost, "/api/contact", body, "")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Len(t, repo.items, 2, "throttled submissions must not persist")
}

func TestList_RequiresToken(t *testing.T) {
	repo := newStubRepo()
	_, err := repo.Create(context.Background(), "Ada", "ada@example.com", "hello")
	require.NoError(t, err)
	r := newTestRouter(repo, openLimit())

	w := doRequest(r, http.MethodGet, "/api/contact", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodGet, "/api/contact", "", bearerToken(t))
	require.Equal(t, http.StatusOK, w.Code)

	var items []domain.Contact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "ada@example.com", items[0].Email)
}
