package post

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shubham0328/mini-blog-api/internal/api/middleware"
	"github.com/shubham0328/mini-blog-api/internal/auth"
	"github.com/shubham0328/mini-blog-api/internal/core/posts"
)

// MockPostService is a mock implementation of posts.Service
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) List(ctx context.Context, page, pageSize int) ([]*posts.PostView, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*posts.PostView), args.Error(1)
}

func (m *MockPostService) Get(ctx context.Context, id int64) (*posts.PostView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.PostView), args.Error(1)
}

func (m *MockPostService) Create(ctx context.Context, req posts.CreatePostRequest) (*posts.PostView, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.PostView), args.Error(1)
}

func (m *MockPostService) Update(ctx context.Context, actorID, id int64, req posts.UpdatePostRequest) (*posts.PostView, error) {
	args := m.Called(ctx, actorID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*posts.PostView), args.Error(1)
}

func (m *MockPostService) Delete(ctx context.Context, actorID, id int64) error {
	args := m.Called(ctx, actorID, id)
	return args.Error(0)
}

var testTokens = auth.NewTokenService([]byte("test-secret"), 0, 0)

// newTestRouter wires the post handlers the same way routes.RegisterPostRoutes does
func newTestRouter(service posts.Service) chi.Router {
	authMiddleware := middleware.NewAuthMiddleware(testTokens)

	r := chi.NewRouter()
	r.Route("/api", func(api chi.Router) {
		api.Get("/posts/", NewListHandler(service).HandleList)
		api.With(authMiddleware.RequireAuth).Post("/posts/", NewCreateHandler(service).HandleCreate)
		api.Get("/posts/{postID}/", NewGetHandler(service).HandleGet)
		api.With(authMiddleware.RequireAuth).Put("/posts/{postID}/", NewUpdateHandler(service).HandleUpdate)
		api.With(authMiddleware.RequireAuth).Delete("/posts/{postID}/", NewDeleteHandler(service).HandleDelete)
	})
	return r
}

func bearerFor(t *testing.T, userID int64) string {
	t.Helper()
	pair, err := testTokens.IssuePair(userID)
	require.NoError(t, err)
	return "Bearer " + pair.Access
}

func TestHandleList_InvalidPageParams(t *testing.T) {
	service := new(MockPostService)
	router := newTestRouter(service)

	cases := []struct {
		name  string
		query string
		field string
	}{
		{"page zero", "?page=0", "page"},
		{"page negative", "?page=-1", "page"},
		{"page not a number", "?page=abc", "page"},
		{"page_size zero", "?page_size=0", "page_size"},
		{"page_size not a number", "?page_size=xyz", "page_size"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/posts/"+tc.query, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.field, body.Field)
			assert.Contains(t, body.Message, tc.field)
		})
	}

	service.AssertNotCalled(t, "List")
}

func TestHandleList_DefaultsAndSuccess(t *testing.T) {
	service := new(MockPostService)
	router := newTestRouter(service)

	service.On("List", mock.Anything, 1, 5).Return([]*posts.PostView{
		{ID: 2, Title: "b", Author: "alice"},
		{ID: 1, Title: "a", Author: "bob"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var views []posts.PostView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &views))
	require.Len(t, views, 2)
	assert.Equal(t, int64(2), views[0].ID)
	service.AssertExpectations(t)
}

func TestHandleList_ExplicitWindow(t *testing.T) {
	service := new(MockPostService)
	router := newTestRouter(service)

	service.On("List", mock.Anything, 3, 10).Return([]*posts.PostView{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/?page=3&page_size=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandleCreate_RequiresAuth(t *testing.T) {
	service := new(MockPostService)
	router := newTestRouter(service)

	body := bytes.NewBufferString(`{"title":"A","content":"B"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/posts/", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	service.AssertNotCalled(t, "Create")
}

func TestHandleCreate_AuthorIsCaller(t *testing.T) {
	service := new(MockPostService)
	router := newTestRouter(service)

	service.On("Create", mock.Anything, mock.MatchedBy(func(req posts.CreatePostRequest) bool {
		return req.AuthorID == 7 && req.Title == "A" && req.Content == "B"
	})).Return(&posts.PostView{ID: 1, Title: "A", Content: "B", Author: "u1"}, nil)

	body := bytes.NewBufferString(`{"title":"A","content":"B"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/posts/", body)
	req.Header.Set("Authorization", bearerFor(t, 7))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var view posts.PostView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "u1", view.Author)
	service.AssertExpectations(t)
}

func TestHandleCreate_ValidationFailure(t *testing.T) {
	service := new(MockPostService)
	router := newTestRouter(service)

	service.On("Create", mock.Anything, mock.Anything).
		Return(nil, posts.NewValidationError("title", "title is required"))

	body := bytes.NewBufferString(`{"content":"B"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/posts/", body)
	req.Header.Set("Authorization", bearerFor(t, 7))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "title", resp.Field)
}

func TestHandleGet_NotFound(t *testing.T) {
	service := new(MockPostService)
	router := newTestRouter(service)

	service.On("Get", mock.Anything, int64(99)).Return(nil, posts.ErrPostNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/99/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGet_Success(t *testing.T) {
	service := new(MockPostService)
	router := newTestRouter(service)

	service.On("Get", mock.Anything, int64(1)).
		Return(&posts.PostView{ID: 1, Title: "A", Author: "u1"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/posts/1/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleUpdate_ForbiddenForNonAuthor(t *testing.T) {
	service := new(MockPostService)
	router := newTestRouter(service)

	service.On("Update", mock.Anything, int64(8), int64(1), mock.Anything).
		Return(nil, posts.ErrNotAuthor)

	body := bytes.NewBufferString(`{"title":"C"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/posts/1/", body)
	req.Header.Set("Authorization", bearerFor(t, 8))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleUpdate_PartialSuccess(t *testing.T) {
	service := new(MockPostService)
	router := newTestRouter(service)

	service.On("Update", mock.Anything, int64(7), int64(1), mock.MatchedBy(func(req posts.UpdatePostRequest) bool {
		return req.Title != nil && *req.Title == "C" && req.Content == nil
	})).Return(&posts.PostView{ID: 1, Title: "C", Content: "B", Author: "u1"}, nil)

	body := bytes.NewBufferString(`{"title":"C"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/posts/1/", body)
	req.Header.Set("Authorization", bearerFor(t, 7))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var view posts.PostView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "C", view.Title)
	assert.Equal(t, "B", view.Content)
}

func TestHandleDelete_Success(t *testing.T) {
	service := new(MockPostService)
	router := newTestRouter(service)

	service.On("Delete", mock.Anything, int64(7), int64(1)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/posts/1/", nil)
	req.Header.Set("Authorization", bearerFor(t, 7))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHandleDelete_NotFound(t *testing.T) {
	service := new(MockPostService)
	router := newTestRouter(service)

	service.On("Delete", mock.Anything, int64(7), int64(99)).Return(posts.ErrPostNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/api/posts/99/", nil)
	req.Header.Set("Authorization", bearerFor(t, 7))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
