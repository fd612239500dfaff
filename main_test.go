package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kevinsamson6262-hub/stories-rw-firestore/store"
)

func TestRouterRootBanner(t *testing.T) {
	assert := assert.New(t)
	m := router(store.NewInMemoryConnection())

	req := httptest.NewRequest("GET", "/api/", nil)
	w := httptest.NewRecorder()
	m.ServeHTTP(w, req)

	assert.Equal(http.StatusOK, w.Code)
	assert.Contains(w.Body.String(), "message")
}

func TestRouterStoriesEndToEnd(t *testing.T) {
	assert := assert.New(t)
	m := router(store.NewInMemoryConnection())

	post := httptest.NewRequest("POST", "/api/stories", strings.NewReader(
		`{"author": "Ursula", "title": "The Lighthouse", "story": "Once upon..."}`))
	w := httptest.NewRecorder()
	m.ServeHTTP(w, post)
	assert.Equal(http.StatusOK, w.Code)

	get := httptest.NewRequest("GET", "/api/stories", nil)
	w = httptest.NewRecorder()
	m.ServeHTTP(w, get)
	assert.Equal(http.StatusOK, w.Code)
	assert.Contains(w.Body.String(), "The Lighthouse")
}

func TestRouterContactDoesNotExposeListing(t *testing.T) {
	assert := assert.New(t)
	m := router(store.NewInMemoryConnection())

	req := httptest.NewRequest("GET", "/api/contact", nil)
	w := httptest.NewRecorder()
	m.ServeHTTP(w, req)

	assert.Equal(http.StatusMethodNotAllowed, w.Code)
}

func TestRouterHealthEndpoint(t *testing.T) {
	assert := assert.New(t)
	m := router(store.NewInMemoryConnection())

	req := httptest.NewRequest("GET", "/__health", nil)
	w := httptest.NewRecorder()
	m.ServeHTTP(w, req)

	assert.Equal(http.StatusOK, w.Code)
}
