package classifier

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/analyze", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "broken swing in the park", r.FormValue("description"))
		_, header, err := r.FormFile("image")
		require.NoError(t, err)
		assert.Equal(t, "photo.jpg", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"caption":"a broken swing","category":"Parks & Recreation","urgency":"high","confidence":0.92}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	result, err := client.Analyze(context.Background(), "photo.jpg", strings.NewReader("fake image bytes"), "broken swing in the park")
	require.NoError(t, err)

	assert.Equal(t, "a broken swing", result.Caption)
	assert.Equal(t, "Parks & Recreation", result.Category)
	assert.Equal(t, "high", result.Urgency)
	assert.Equal(t, 0.92, result.Confidence)
}

func TestAnalyzeFillsDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	result, err := client.Analyze(context.Background(), "photo.png", strings.NewReader("img"), "desc")
	require.NoError(t, err)

	assert.Equal(t, "No caption generated", result.Caption)
	assert.Equal(t, "Other", result.Category)
	assert.Equal(t, "medium", result.Urgency)
	assert.Equal(t, 0.5, result.Confidence)
}

func TestAnalyzeNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Analyze(context.Background(), "photo.jpg", strings.NewReader("img"), "desc")
	assert.Error(t, err)
}

func TestAnalyzeServiceDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Analyze(context.Background(), "photo.jpg", strings.NewReader("img"), "desc")
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer healthy.Close()
	assert.True(t, NewClient(healthy.URL).Health(context.Background()))

	unhealthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer unhealthy.Close()
	assert.False(t, NewClient(unhealthy.URL).Health(context.Background()))

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	down.Close()
	assert.False(t, NewClient(down.URL).Health(context.Background()))
}

func TestStats(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stats", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"model":"resnet50","requests":42}`))
	}))
	defer srv.Close()

	stats, err := NewClient(srv.URL).Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "resnet50", stats["model"])
}
