package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/phrazzld/taskpost-api/internal/domain"
	"github.com/phrazzld/taskpost-api/internal/service"
	"github.com/phrazzld/taskpost-api/internal/store"
)

// MockPostService implements service.PostService for testing
type MockPostService struct {
	CreatePostFn func(ctx context.Context, fields domain.PostFields) (*domain.Post, error)
	ListPostsFn  func(ctx context.Context) ([]*domain.Post, error)
	GetPostFn    func(ctx context.Context, id int64) (*domain.Post, error)
	UpdatePostFn func(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error)
	DeletePostFn func(ctx context.Context, id int64) error

	Err error

	mu     sync.Mutex
	posts  map[int64]*domain.Post
	nextID int64
}

var _ service.PostService = (*MockPostService)(nil)

// NewMockPostService creates a mock backed by an empty in-memory table
func NewMockPostService() *MockPostService {
	return &MockPostService{posts: make(map[int64]*domain.Post)}
}

// CreatePost implements the service.PostService interface
func (m *MockPostService) CreatePost(ctx context.Context, fields domain.PostFields) (*domain.Post, error) {
	if m.CreatePostFn != nil {
		return m.CreatePostFn(ctx, fields)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	post, err := domain.NewPost(fields)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	post.ID = m.nextID
	m.posts[post.ID] = post

	c := *post
	return &c, nil
}

// ListPosts implements the service.PostService interface
func (m *MockPostService) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	if m.ListPostsFn != nil {
		return m.ListPostsFn(ctx)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Post, 0, len(m.posts))
	for _, p := range m.posts {
		c := *p
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetPost implements the service.PostService interface
func (m *MockPostService) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	if m.GetPostFn != nil {
		return m.GetPostFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.posts[id]
	if !ok {
		return nil, store.ErrPostNotFound
	}
	c := *p
	return &c, nil
}

// UpdatePost implements the service.PostService interface
func (m *MockPostService) UpdatePost(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error) {
	if m.UpdatePostFn != nil {
		return m.UpdatePostFn(ctx, id, patch)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.posts[id]
	if !ok {
		return nil, store.ErrPostNotFound
	}
	updated, err := current.Apply(patch, time.Now())
	if err != nil {
		return nil, err
	}
	m.posts[id] = updated

	c := *updated
	return &c, nil
}

// DeletePost implements the service.PostService interface
func (m *MockPostService) DeletePost(ctx context.Context, id int64) error {
	if m.DeletePostFn != nil {
		return m.DeletePostFn(ctx, id)
	}
	if m.Err != nil {
		return m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.posts[id]; !ok {
		return store.ErrPostNotFound
	}
	delete(m.posts, id)
	return nil
}
