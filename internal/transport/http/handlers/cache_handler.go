package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mlukic92/blogd/internal/cache"
	"github.com/sirupsen/logrus"
)

// CacheHandler exposes the key-value store as plain pass-through endpoints.
type CacheHandler struct {
	store cache.Store
	log   *logrus.Logger
}

func NewCacheHandler(store cache.Store, log *logrus.Logger) *CacheHandler {
	return &CacheHandler{store: store, log: log}
}

type setCacheInput struct {
	Value      string `json:"value"`
	TTLSeconds int    `json:"ttl_seconds"`
}

func (h *CacheHandler) Set(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	var input setCacheInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	ttl := time.Duration(input.TTLSeconds) * time.Second
	if ttl < 0 {
		writeError(w, http.StatusBadRequest, "INVALID_TTL", "TTL must not be negative")
		return
	}

	if err := h.store.Set(r.Context(), key, input.Value, ttl); err != nil {
		h.log.WithError(err).Error("cache set failed")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"key": key, "value": input.Value})
}

func (h *CacheHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	value, err := h.store.Get(r.Context(), key)
	if err != nil {
		if errors.Is(err, cache.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Key not found")
		} else {
			h.log.WithError(err).Error("cache get failed")
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"key": key, "value": value})
}

func (h *CacheHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	deleted, err := h.store.Delete(r.Context(), key)
	if err != nil {
		h.log.WithError(err).Error("cache delete failed")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Key not found")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CacheHandler) Keys(w http.ResponseWriter, r *http.Request) {
	pattern := r.URL.Query().Get("pattern")
	if pattern == "" {
		pattern = "*"
	}

	keys, err := h.store.Keys(r.Context(), pattern)
	if err != nil {
		h.log.WithError(err).Error("cache keys failed")
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if keys == nil {
		keys = []string{}
	}

	writeJSON(w, http.StatusOK, map[string][]string{"keys": keys})
}
