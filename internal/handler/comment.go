package handler

import (
	"log/slog"
	"net/http"

	"blogapi/internal/domain/services"
	"blogapi/internal/httputil"
)

// CommentHandler handles comment HTTP requests
type CommentHandler struct {
	commentService services.CommentService
	logger         *slog.Logger
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(commentService services.CommentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		logger:         logger,
	}
}

// ListComments returns one page of an article's comments
// GET /api/articles/{id}/comments?ordering=&page=&page_size=
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	identity := httputil.GetIdentity(r)

	articleID := r.PathValue("id")
	if articleID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "article ID is required")
		return
	}

	opts := httputil.ParseListOptions(r)

	page, err := h.commentService.ListByArticle(r.Context(), identity, articleID, opts)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, page)
}

// CreateComment adds a comment under an article (authenticated users)
// POST /api/articles/{id}/comments
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	identity := httputil.GetIdentity(r)

	articleID := r.PathValue("id")
	if articleID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "article ID is required")
		return
	}

	var req services.CreateCommentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.commentService.Create(r.Context(), identity, articleID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, comment)
}

// UpdateComment modifies a comment (owner or staff)
// PATCH /api/comments/{id}
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	identity := httputil.GetIdentity(r)

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "comment ID is required")
		return
	}

	var req services.UpdateCommentRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.commentService.Update(r.Context(), identity, id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, comment)
}

// DeleteComment removes a comment (owner or staff)
// DELETE /api/comments/{id}
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	identity := httputil.GetIdentity(r)

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "comment ID is required")
		return
	}

	if err := h.commentService.Delete(r.Context(), identity, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
