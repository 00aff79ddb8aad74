package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mlukic92/blogd/internal/auth"
	"github.com/mlukic92/blogd/internal/service"
	"github.com/mlukic92/blogd/internal/transport/http/middleware"
	"github.com/mlukic92/blogd/pkg/validator"
	"github.com/sirupsen/logrus"
)

type ArticleHandler struct {
	articleService *service.ArticleService
	log            *logrus.Logger
}

func NewArticleHandler(articleService *service.ArticleService, log *logrus.Logger) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, log: log}
}

// List is public: titles, authors and short summaries, no login required.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.articleService.List(r.Context())
	if err != nil {
		h.log.WithError(err).Error("list articles failed")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if summaries == nil {
		summaries = []service.ArticleSummary{}
	}

	writeJSON(w, http.StatusOK, summaries)
}

func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var input service.CreateArticleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateArticle(input.Title, input.Content); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	article, err := h.articleService.Create(r.Context(), user, input)
	if err != nil {
		h.log.WithError(err).Error("create article failed")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusCreated, article)
}

func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid article ID")
		return
	}

	article, err := h.articleService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrArticleNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Article not found")
		} else {
			h.log.WithError(err).Error("get article failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, article)
}

func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid article ID")
		return
	}

	var input service.UpdateArticleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateArticle(input.Title, input.Content); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	article, err := h.articleService.Update(r.Context(), user, id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Article not found")
		case errors.Is(err, auth.ErrForbidden):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Only the author can edit this article")
		default:
			h.log.WithError(err).Error("update article failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, article)
}

func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid article ID")
		return
	}

	if err := h.articleService.Delete(r.Context(), user, id); err != nil {
		switch {
		case errors.Is(err, service.ErrArticleNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Article not found")
		case errors.Is(err, auth.ErrForbidden):
			writeError(w, http.StatusForbidden, "FORBIDDEN", "Only the author can delete this article")
		default:
			h.log.WithError(err).Error("delete article failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
