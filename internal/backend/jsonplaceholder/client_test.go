package jsonplaceholder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"taskboard/internal/config"
	"taskboard/internal/service"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewWithHTTPClient(srv.URL, srv.Client(), nil)
	require.NoError(t, err)
	return c
}

func TestListTasks(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/todos", r.URL.Path)
		assert.Equal(t, "10", r.URL.Query().Get("_limit"))
		assert.NotEmpty(t, r.Header.Get(RequestIDHeader))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"userId":1,"id":1,"title":"delectus aut autem","completed":false},
			{"userId":1,"id":2,"title":"quis ut nam facilis","completed":true}
		]`))
	})

	tasks, err := c.ListTasks(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, []service.Task{
		{ID: 1, Title: "delectus aut autem", Completed: false, UserID: 1},
		{ID: 2, Title: "quis ut nam facilis", Completed: true, UserID: 1},
	}, tasks)
}

func TestListTasks_BaseURLWithPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, err := NewWithHTTPClient(srv.URL+"/api/v1", srv.Client(), nil)
	require.NoError(t, err)

	_, err = c.ListTasks(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/todos", gotPath)
}

func TestListTasks_ServerError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := c.ListTasks(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server returned status 500")

	var apiErr *googleapi.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Code)
}

func TestListTasks_BadBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := c.ListTasks(context.Background(), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid response body")
}

func TestListTasks_Timeout(t *testing.T) {
	release := make(chan struct{})
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)
	c.timeout = 20 * time.Millisecond

	_, err := c.ListTasks(context.Background(), 10)
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestCreateTask(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/todos", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"title": "Buy milk", "completed": true, "userId": float64(1)}, body)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"title":"Buy milk","completed":true,"userId":1,"id":201}`))
	})

	got, err := c.CreateTask(context.Background(), service.NewTask{Title: "Buy milk", Completed: true, UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, service.Task{ID: 201, Title: "Buy milk", Completed: true, UserID: 1}, got)
}

func TestCreateTask_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := c.CreateTask(context.Background(), service.NewTask{Title: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server returned status 404")
}

func TestNew_BearerToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	cfg := &config.Config{BaseURL: srv.URL, Timeout: time.Second, Token: "secret"}
	c, err := New(context.Background(), cfg, nil)
	require.NoError(t, err)

	_, err = c.ListTasks(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Bearer secret", auth)
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := NewWithHTTPClient("not a url", http.DefaultClient, nil)
	assert.Error(t, err)
}
