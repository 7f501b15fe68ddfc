package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authmw "github.com/devfolio/portfolio-backend/internal/auth/middleware"
	"github.com/devfolio/portfolio-backend/internal/projects/domain"
	"github.com/devfolio/portfolio-backend/internal/projects/service"
	"github.com/devfolio/portfolio-backend/internal/uploader"
)

var testSecret = []byte("test-secret")

type stubRepo struct {
	byID   map[int64]*domain.Project
	nextID int64
}

func newStubRepo() *stubRepo {
	return &stubRepo{byID: make(map[int64]*domain.Project), nextID: 1}
}

func (s *stubRepo) add(p domain.Project) int64 {
	cp := p
	cp.ID = s.nextID
	s.nextID++
	if cp.Tags == nil {
		cp.Tags = []string{}
	}
	if cp.Images == nil {
		cp.Images = []string{}
	}
	s.byID[cp.ID] = &cp
	return cp.ID
}

func (s *stubRepo) ListVisible(ctx context.Context) ([]domain.Project, error) {
	out := []domain.Project{}
	for _, p := range s.byID {
		if p.IsVisible {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *stubRepo) ListAll(ctx context.Context) ([]domain.Project, error) {
	out := []domain.Project{}
	for _, p := range s.byID {
		out = append(out, *p)
	}
	return out, nil
}

func (s *stubRepo) GetVisible(ctx context.Context, id int64) (*domain.Project, error) {
	p, ok := s.byID[id]
	if !ok || !p.IsVisible {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *stubRepo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *stubRepo) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	id := s.add(*p)
	cp := *s.byID[id]
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	return &cp, nil
}

func (s *stubRepo) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	if _, ok := s.byID[p.ID]; !ok {
		return nil, domain.ErrNotFound
	}
	cp := *p
	s.byID[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (s *stubRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := s.byID[id]; !ok {
		return false, nil
	}
	delete(s.byID, id)
	return true, nil
}

type stubUploader struct{}

func (stubUploader) Upload(ctx context.Context, src uploader.Source) (string, error) {
	return "http://cdn.example/resolved.png", nil
}

func newTestRouter(repo *stubRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	svc := service.NewProjectService(repo, stubUploader{}, nil)
	New(svc).Register(r.Group("/api/projects"), authmw.BearerAuth(testSecret))
	return r
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

func TestPublicList_OnlyVisible(t *testing.T) {
	repo := newStubRepo()
	repo.add(domain.Project{Title: "shown", Description: "d", IsVisible: true})
	repo.add(domain.Project{Title: "hidden", Description: "d", IsVisible: false})

	w := doRequest(newTestRouter(repo), http.MethodGet, "/api/projects", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var items []domain.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, "shown", items[0].Title)
}

func TestGet_HiddenLooksAbsent(t *testing.T) {
	repo := newStubRepo()
	hiddenID := repo.add(domain.Project{Title: "hidden", Description: "d", IsVisible: false})

	r := newTestRouter(repo)

	w := doRequest(r, http.MethodGet, "/api/projects/999999", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	absentBody := w.Body.String()

	w = doRequest(r, http.MethodGet, "/api/projects/"+jsonInt(hiddenID), "", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, absentBody, w.Body.String(), "hidden must be indistinguishable from absent")
}

func TestGet_NonNumericID(t *testing.T) {
	w := doRequest(newTestRouter(newStubRepo()), http.MethodGet, "/api/projects/abc", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminList_RequiresToken(t *testing.T) {
	repo := newStubRepo()
	repo.add(domain.Project{Title: "hidden", Description: "d", IsVisible: false})
	r := newTestRouter(repo)

	w := doRequest(r, http.MethodGet, "/api/projects/admin/all", "", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodGet, "/api/projects/admin/all", "", bearerToken(t))
	require.Equal(t, http.StatusOK, w.Code)

	var items []domain.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 1, "admin listing includes hidden projects")
}

func TestCreate_Validation(t *testing.T) {
	r := newTestRouter(newStubRepo())
	token := bearerToken(t)

	w := doRequest(r, http.MethodPost, "/api/projects", `{"description":"only"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(r, http.MethodPost, "/api/projects", `{"title":"A","description":"B"}`, token)
	require.Equal(t, http.StatusCreated, w.Code)

	var p domain.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, []string{}, p.Tags)
	assert.True(t, p.IsVisible)
	assert.False(t, p.IsFeatured)
	assert.Nil(t, p.Image)
}

func TestCreate_Unauthorized(t *testing.T) {
	w := doRequest(newTestRouter(newStubRepo()), http.MethodPost, "/api/projects", `{"title":"A","description":"B"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdate_NotFoundAndVisibilityToggle(t *testing.T) {
	repo := newStubRepo()
	id := repo.add(domain.Project{Title: "A", Description: "B", IsVisible: true})
	r := newTestRouter(repo)
	token := bearerToken(t)

	w := doRequest(r, http.MethodPut, "/api/projects/424242", `{"title":"X"}`, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(r, http.MethodPut, "/api/projects/"+jsonInt(id), `{"isVisible":false}`, token)
	require.Equal(t, http.StatusOK, w.Code)

	var p domain.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.False(t, p.IsVisible)
	assert.Equal(t, "A", p.Title, "omitted title is preserved")
}

func TestDelete(t *testing.T) {
	repo := newStubRepo()
	id := repo.add(domain.Project{Title: "A", Description: "B", IsVisible: true})
	r := newTestRouter(repo)
	token := bearerToken(t)

	w := doRequest(r, http.MethodDelete, "/api/projects/"+jsonInt(id), "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "message")

	w = doRequest(r, http.MethodDelete, "/api/projects/"+jsonInt(id), "", token)
	assert.Equal(t, http.StatusNotFound, w.Code, "deleting an absent id is not a success")
}

func jsonInt(id int64) string {
	return strconv.FormatInt(id, 10)
}
