package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resume-site/resume-backend/internal/requests/domain"
	"github.com/resume-site/resume-backend/internal/requests/repository"
)

// fakeStore mirrors the repository's behavior in memory.
type fakeStore struct {
	nextID int64
	items  map[int64]*domain.ProjectRequest
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1, items: make(map[int64]*domain.ProjectRequest)}
}

func (s *fakeStore) Create(_ context.Context, req repository.NewRequest) (*domain.ProjectRequest, error) {
	p := &domain.ProjectRequest{
		ID:                 s.nextID,
		Name:               req.Name,
		Email:              req.Email,
		ProjectDescription: req.ProjectDescription,
		Budget:             req.Budget,
		Timeline:           req.Timeline,
		ProjectType:        req.ProjectType,
		Status:             domain.StatusPending,
		CreatedAt:          time.Now().UTC(),
	}
	s.items[p.ID] = p
	s.nextID++
	return p, nil
}

func (s *fakeStore) List(_ context.Context, skip, limit int) ([]domain.ProjectRequest, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	out := make([]domain.ProjectRequest, 0, len(s.items))
	for id := int64(1); id < s.nextID; id++ {
		if p, ok := s.items[id]; ok {
			out = append(out, *p)
		}
	}
	if skip > len(out) {
		skip = len(out)
	}
	out = out[skip:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeStore) Get(_ context.Context, id int64) (*domain.ProjectRequest, error) {
	if p, ok := s.items[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (s *fakeStore) UpdateStatus(_ context.Context, id int64, status string) (*domain.ProjectRequest, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	p, ok := s.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Status = status
	return p, nil
}

func (s *fakeStore) Delete(_ context.Context, id int64) error {
	if _, ok := s.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func newRouter(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	grp := r.Group("/api/project-requests")
	NewHandler(store).Register(grp, grp)
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

const validBody = `{"name":"Ada","email":"ada@example.com","project_description":"a landing page"}`

func TestCreateProjectRequest(t *testing.T) {
	r := newRouter(newFakeStore())

	rr := do(t, r, "POST", "/api/project-requests", validBody)
	require.Equal(t, http.StatusCreated, rr.Code)

	var p domain.ProjectRequest
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	assert.Equal(t, domain.StatusPending, p.Status)
	assert.NotZero(t, p.ID)
	assert.Equal(t, "Ada", p.Name)
}

func TestCreateProjectRequestValidation(t *testing.T) {
	r := newRouter(newFakeStore())

	bad := []string{
		``,
		`{}`,
		`{"name":"Ada","project_description":"x"}`,
		`{"name":"Ada","email":"not-an-email","project_description":"x"}`,
	}
	for _, body := range bad {
		rr := do(t, r, "POST", "/api/project-requests", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, "body %q", body)
	}
}

func TestListProjectRequestsPaging(t *testing.T) {
	store := newFakeStore()
	r := newRouter(store)

	for i := 0; i < 5; i++ {
		rr := do(t, r, "POST", "/api/project-requests",
			fmt.Sprintf(`{"name":"n%d","email":"n%d@example.com","project_description":"d"}`, i, i))
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr := do(t, r, "GET", "/api/project-requests?skip=1&limit=2", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var items []domain.ProjectRequest
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].ID)
	assert.Equal(t, int64(3), items[1].ID)
}

func TestGetProjectRequestNotFound(t *testing.T) {
	r := newRouter(newFakeStore())

	rr := do(t, r, "GET", "/api/project-requests/999", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, r, "GET", "/api/project-requests/not-a-number", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUpdateStatus(t *testing.T) {
	store := newFakeStore()
	r := newRouter(store)

	rr := do(t, r, "POST", "/api/project-requests", validBody)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = do(t, r, "PATCH", "/api/project-requests/1", `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var p domain.ProjectRequest
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	assert.Equal(t, domain.StatusCompleted, p.Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	r := newRouter(newFakeStore())

	rr := do(t, r, "POST", "/api/project-requests", validBody)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = do(t, r, "PATCH", "/api/project-requests/1", `{"status":"archived"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdateStatusNotFound(t *testing.T) {
	r := newRouter(newFakeStore())

	rr := do(t, r, "PATCH", "/api/project-requests/42", `{"status":"completed"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteProjectRequest(t *testing.T) {
	r := newRouter(newFakeStore())

	rr := do(t, r, "POST", "/api/project-requests", validBody)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = do(t, r, "DELETE", "/api/project-requests/1", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(t, r, "DELETE", "/api/project-requests/1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
