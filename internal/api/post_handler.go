package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskpost-api/internal/api/shared"
	"github.com/phrazzld/taskpost-api/internal/service"
	"github.com/phrazzld/taskpost-api/internal/store"
)

// PostHandler handles post-related HTTP requests
type PostHandler struct {
	postService service.PostService
	logger      *slog.Logger
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService service.PostService, logger *slog.Logger) *PostHandler {
	if postService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("postService cannot be nil for PostHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PostHandler")
	}

	return &PostHandler{
		postService: postService,
		logger:      logger.With(slog.String("component", "post_handler")),
	}
}

// CreatePost handles POST /api/posts requests
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if !parseAndValidateRequest(w, r, &req) {
		return
	}

	post, err := h.postService.CreatePost(r.Context(), req.Fields())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusCreated, postToResponse(post))
}

// ListPosts handles GET /api/posts requests
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.ListPosts(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, postsToResponse(posts))
}

// GetPost handles GET /api/posts/{id} requests
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id", store.ErrPostNotFound)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	post, err := h.postService.GetPost(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, postToResponse(post))
}

// UpdatePost handles PUT and PATCH /api/posts/{id} requests
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id", store.ErrPostNotFound)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdatePostRequest
	if !parseAndValidateRequest(w, r, &req) {
		return
	}

	post, err := h.postService.UpdatePost(r.Context(), id, req.Patch())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, postToResponse(post))
}

// DeletePost handles DELETE /api/posts/{id} requests
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id", store.ErrPostNotFound)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.postService.DeletePost(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteResponse{
		Message:   "Post deleted successfully",
		DeletedID: id,
	})
}
