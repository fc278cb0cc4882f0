package handler

import (
	"log/slog"
	"net/http"

	"blogapi/internal/domain/services"
	"blogapi/internal/httputil"
)

// ArticleHandler handles article HTTP requests
type ArticleHandler struct {
	articleService services.ArticleService
	logger         *slog.Logger
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articleService services.ArticleService, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		logger:         logger,
	}
}

// ListArticles returns one page of articles
// GET /api/articles?search=&ordering=&page=&page_size=
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	identity := httputil.GetIdentity(r)
	opts := httputil.ParseListOptions(r)

	page, err := h.articleService.List(r.Context(), identity, opts)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, page)
}

// CreateArticle creates a new article (staff only)
// POST /api/articles
func (h *ArticleHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	identity := httputil.GetIdentity(r)

	var req services.CreateArticleRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	article, err := h.articleService.Create(r.Context(), identity, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, article)
}

// GetArticle retrieves a single article
// GET /api/articles/{id}
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	identity := httputil.GetIdentity(r)

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "article ID is required")
		return
	}

	article, err := h.articleService.Get(r.Context(), identity, id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, article)
}

// ReplaceArticle fully updates an article (staff only)
// PUT /api/articles/{id}
func (h *ArticleHandler) ReplaceArticle(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

// UpdateArticle partially updates an article (staff only)
// PATCH /api/articles/{id}
func (h *ArticleHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

func (h *ArticleHandler) update(w http.ResponseWriter, r *http.Request, full bool) {
	identity := httputil.GetIdentity(r)

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "article ID is required")
		return
	}

	var req services.UpdateArticleRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Full = full

	article, err := h.articleService.Update(r.Context(), identity, id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, article)
}

// DeleteArticle removes an article and its comments (staff only)
// DELETE /api/articles/{id}
func (h *ArticleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	identity := httputil.GetIdentity(r)

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "article ID is required")
		return
	}

	if err := h.articleService.Delete(r.Context(), identity, id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
