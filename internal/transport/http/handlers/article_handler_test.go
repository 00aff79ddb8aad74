package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createArticle(t *testing.T, mux *http.ServeMux, token, title, content string) int64 {
	t.Helper()
	resp := doJSON(t, mux, http.MethodPost, "/api/v1/articles", token, map[string]string{
		"title":   title,
		"content": content,
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var article struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &article))
	return article.ID
}

func TestArticleOwnershipFlow(t *testing.T) {
	mux, _ := newTestServer(30 * time.Minute)

	register(t, mux, "alice", "secret123")
	register(t, mux, "bob", "secret456")
	aliceToken := login(t, mux, "alice", "secret123")
	bobToken := login(t, mux, "bob", "secret456")

	id := createArticle(t, mux, aliceToken, "Alice's post", "original content")
	articlePath := fmt.Sprintf("/api/v1/articles/%d", id)

	// Bob cannot edit Alice's article.
	resp := doJSON(t, mux, http.MethodPut, articlePath, bobToken, map[string]string{
		"title":   "hijack",
		"content": "hijacked",
	})
	assert.Equal(t, http.StatusForbidden, resp.Code)

	// Alice can; the content changes.
	resp = doJSON(t, mux, http.MethodPut, articlePath, aliceToken, map[string]string{
		"title":   "Alice's post v2",
		"content": "revised content",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, mux, http.MethodGet, articlePath, aliceToken, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "revised content")

	// Bob cannot delete it either; Alice can.
	resp = doJSON(t, mux, http.MethodDelete, articlePath, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = doJSON(t, mux, http.MethodDelete, articlePath, aliceToken, nil)
	assert.Equal(t, http.StatusNoContent, resp.Code)

	resp = doJSON(t, mux, http.MethodGet, articlePath, aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestArticlePublicList(t *testing.T) {
	mux, _ := newTestServer(30 * time.Minute)

	register(t, mux, "alice", "secret123")
	token := login(t, mux, "alice", "secret123")
	createArticle(t, mux, token, "Public post", strings.Repeat("x", 40))

	// No Authorization header at all.
	resp := doJSON(t, mux, http.MethodGet, "/api/v1/articles", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var summaries []struct {
		Title   string `json:"title"`
		Summary string `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, "Public post", summaries[0].Title)
	assert.Equal(t, strings.Repeat("x", 20)+"...", summaries[0].Summary)
	// The list view never carries the full body.
	assert.NotContains(t, resp.Body.String(), strings.Repeat("x", 40))
}

func TestArticleCreateRequiresSession(t *testing.T) {
	mux, _ := newTestServer(30 * time.Minute)

	resp := doJSON(t, mux, http.MethodPost, "/api/v1/articles", "", map[string]string{
		"title":   "nope",
		"content": "nope",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestArticleInvalidID(t *testing.T) {
	mux, _ := newTestServer(30 * time.Minute)

	register(t, mux, "alice", "secret123")
	token := login(t, mux, "alice", "secret123")

	resp := doJSON(t, mux, http.MethodGet, "/api/v1/articles/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
