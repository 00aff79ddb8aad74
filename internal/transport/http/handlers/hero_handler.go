package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mlukic92/blogd/internal/service"
	"github.com/mlukic92/blogd/pkg/validator"
	"github.com/sirupsen/logrus"
)

type HeroHandler struct {
	heroService *service.HeroService
	log         *logrus.Logger
}

func NewHeroHandler(heroService *service.HeroService, log *logrus.Logger) *HeroHandler {
	return &HeroHandler{heroService: heroService, log: log}
}

func (h *HeroHandler) List(w http.ResponseWriter, r *http.Request) {
	params := service.PageParams{
		Page:     queryInt(r, "page", 1),
		PageSize: queryInt(r, "page_size", 10),
	}

	page, err := h.heroService.List(r.Context(), params)
	if err != nil {
		h.log.WithError(err).Error("list heroes failed")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, page)
}

func (h *HeroHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid hero ID")
		return
	}

	hero, err := h.heroService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrHeroNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Hero not found")
		} else {
			h.log.WithError(err).Error("get hero failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, hero)
}

func (h *HeroHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.HeroInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateHero(input.Name, input.SecretName, input.Age); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	hero, err := h.heroService.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrHeroNameTaken) {
			writeError(w, http.StatusConflict, "NAME_TAKEN", "Hero with this name already exists")
		} else {
			h.log.WithError(err).Error("create hero failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusCreated, hero)
}

func (h *HeroHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid hero ID")
		return
	}

	var input service.HeroInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	hero, err := h.heroService.Update(r.Context(), id, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrHeroNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Hero not found")
		case errors.Is(err, service.ErrHeroNameTaken):
			writeError(w, http.StatusConflict, "NAME_TAKEN", "Hero with this name already exists")
		default:
			h.log.WithError(err).Error("update hero failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, hero)
}

func (h *HeroHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid hero ID")
		return
	}

	if err := h.heroService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrHeroNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Hero not found")
		} else {
			h.log.WithError(err).Error("delete hero failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func queryInt(r *http.Request, key string, fallback int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}
