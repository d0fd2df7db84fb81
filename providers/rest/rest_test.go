package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/placeholder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T, mux *http.ServeMux) *Gateway {
	t.Helper()

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	gw, err := New(WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	require.NoError(t, err)
	return gw
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		gw, err := New()
		require.NoError(t, err)
		assert.Equal(t, placeholder.DefaultBaseURL, gw.baseURL.String())
		assert.NotNil(t, gw.client)
	})

	t.Run("timeout applied to a copy of the client", func(t *testing.T) {
		t.Parallel()

		client := &http.Client{}
		gw, err := New(WithHTTPClient(client), WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, gw.client.Timeout)
		assert.Zero(t, client.Timeout)
	})

	tests := []struct {
		name string
		opts []Option
		code errors.ErrorCode
	}{
		{name: "empty base URL", opts: []Option{WithBaseURL("")}, code: errors.CodeInvalidInput},
		{name: "relative base URL", opts: []Option{WithBaseURL("/api")}, code: errors.CodeInvalidConfig},
		{name: "unsupported scheme", opts: []Option{WithBaseURL("ftp://example.com")}, code: errors.CodeInvalidConfig},
		{name: "nil client", opts: []Option{WithHTTPClient(nil)}, code: errors.CodeInvalidInput},
		{name: "negative timeout", opts: []Option{WithTimeout(-time.Second)}, code: errors.CodeInvalidInput},
		{name: "nil logger", opts: []Option{WithLogger(nil)}, code: errors.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			gw, err := New(tt.opts...)
			require.Error(t, err)
			assert.Nil(t, gw)
			assert.Equal(t, tt.code, errors.GetCode(err))
		})
	}
}

func TestGateway_ListUsers(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[
			{"id": 1, "name": "Leanne Graham", "username": "Bret", "email": "Sincere@april.biz", "phone": "1-770-736-8031"},
			{"id": 3, "name": "Clementine Bauch", "username": "Samantha", "email": "Nathan@yesenia.net"}
		]`)
	})
	gw := setupServer(t, mux)

	users, err := gw.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, placeholder.User{ID: 1, Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz"}, users[0])
	assert.Equal(t, "Samantha", users[1].Username)
}

func TestGateway_GetUser(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "2" {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{}`)
			return
		}
		fmt.Fprint(w, `{"id": 2, "name": "Ervin Howell", "username": "Antonette", "email": "Shanna@melissa.tv"}`)
	})
	gw := setupServer(t, mux)

	user, err := gw.GetUser(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Ervin Howell", user.Name)

	_, err = gw.GetUser(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, placeholder.ErrCodeRequestFailed, errors.GetCode(err))
	assert.True(t, errors.IsRetryable(err))

	var platformErr errors.PlatformError
	require.True(t, errors.As(err, &platformErr))
	assert.Equal(t, http.StatusNotFound, platformErr.Context()["status_code"])
	assert.Equal(t, "/users/99", platformErr.Context()["path"])
}

func TestGateway_CreateUser(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, contentTypeJSON, r.Header.Get("Content-Type"))

		var body placeholder.CreateUserOptions
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Kurtis Weissnat", body.Name)

		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"id": 11, "name": %q, "username": %q, "email": %q}`, body.Name, body.Username, body.Email)
	})
	gw := setupServer(t, mux)

	user, err := gw.CreateUser(context.Background(), placeholder.CreateUserOptions{
		Name:     "Kurtis Weissnat",
		Username: "Elwyn.Skiles",
		Email:    "Telly.Hoeger@billy.biz",
	})
	require.NoError(t, err)
	assert.Equal(t, 11, user.ID)
	assert.Equal(t, "Elwyn.Skiles", user.Username)
}

func TestGateway_UpdateUser(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /users/3", func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		// Unset fields are omitted from the payload.
		assert.JSONEq(t, `{"name": "Clementine"}`, string(raw))

		fmt.Fprint(w, `{"id": 3, "name": "Clementine", "username": "Samantha", "email": "Nathan@yesenia.net"}`)
	})
	gw := setupServer(t, mux)

	name := "Clementine"
	user, err := gw.UpdateUser(context.Background(), 3, placeholder.UpdateUserOptions{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Clementine", user.Name)
}

func TestGateway_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		call    func(*Gateway) error
		wantErr bool
	}{
		{
			name:   "delete user",
			status: http.StatusOK,
			call:   func(gw *Gateway) error { return gw.DeleteUser(context.Background(), 1) },
		},
		{
			name:   "delete post",
			status: http.StatusOK,
			call:   func(gw *Gateway) error { return gw.DeletePost(context.Background(), 5) },
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			call:    func(gw *Gateway) error { return gw.DeletePost(context.Background(), 5) },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mux := http.NewServeMux()
			handler := func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				fmt.Fprint(w, `{}`)
			}
			mux.HandleFunc("DELETE /users/{id}", handler)
			mux.HandleFunc("DELETE /posts/{id}", handler)
			gw := setupServer(t, mux)

			err := tt.call(gw)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, placeholder.ErrCodeRequestFailed, errors.GetCode(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGateway_ListPosts(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("userId") == "2" {
			fmt.Fprint(w, `[{"id": 11, "userId": 2, "title": "et ea vero quia laudantium autem"}]`)
			return
		}
		assert.Empty(t, r.URL.RawQuery)
		fmt.Fprint(w, `[
			{"id": 1, "userId": 1, "title": "sunt aut facere", "body": "quia et suscipit"},
			{"id": 11, "userId": 2, "title": "et ea vero quia laudantium autem"}
		]`)
	})
	gw := setupServer(t, mux)

	posts, err := gw.ListPosts(context.Background(), placeholder.ListPostsOptions{})
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, "quia et suscipit", posts[0].Body)

	posts, err = gw.ListPosts(context.Background(), placeholder.ListPostsOptions{UserID: 2})
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, 2, posts[0].UserID)
}

func TestGateway_ListUserPosts(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/{id}/posts", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `[{"id": 21, "userId": %s, "title": "asperiores ea ipsam"}]`, r.PathValue("id"))
	})
	gw := setupServer(t, mux)

	posts, err := gw.ListUserPosts(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, 3, posts[0].UserID)
}

func TestGateway_PostMutations(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /posts/1", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": 1, "userId": 1, "title": "sunt aut facere"}`)
	})
	mux.HandleFunc("POST /posts", func(w http.ResponseWriter, r *http.Request) {
		var body placeholder.CreatePostOptions
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		fmt.Fprintf(w, `{"id": 101, "userId": %d, "title": %q}`, body.UserID, body.Title)
	})
	mux.HandleFunc("PUT /posts/1", func(w http.ResponseWriter, r *http.Request) {
		var body placeholder.UpdatePostOptions
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.NotNil(t, body.UserID)
		fmt.Fprintf(w, `{"id": 1, "userId": %d, "title": "sunt aut facere"}`, *body.UserID)
	})
	gw := setupServer(t, mux)
	ctx := context.Background()

	post, err := gw.GetPost(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "sunt aut facere", post.Title)

	created, err := gw.CreatePost(ctx, placeholder.CreatePostOptions{UserID: 4, Title: "hello"})
	require.NoError(t, err)
	assert.Equal(t, 101, created.ID)
	assert.Equal(t, 4, created.UserID)

	owner := 7
	updated, err := gw.UpdatePost(ctx, 1, placeholder.UpdatePostOptions{UserID: &owner})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.UserID)
}

func TestGateway_Errors(t *testing.T) {
	t.Parallel()

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `not json`)
		})
		gw := setupServer(t, mux)

		_, err := gw.ListUsers(context.Background())
		require.Error(t, err)
		assert.Equal(t, errors.CodeInternal, errors.GetCode(err))
	})

	t.Run("transport failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NewServeMux())
		url := server.URL
		server.Close()

		gw, err := New(WithBaseURL(url))
		require.NoError(t, err)

		_, err = gw.ListUsers(context.Background())
		require.Error(t, err)
		assert.Equal(t, errors.CodeNetwork, errors.GetCode(err))
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("GET /posts", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[]`)
		})
		gw := setupServer(t, mux)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := gw.ListPosts(ctx, placeholder.ListPostsOptions{})
		require.Error(t, err)
		assert.Equal(t, errors.CodeNetwork, errors.GetCode(err))
	})
}

func TestGateway_ImplementsInterface(t *testing.T) {
	var _ placeholder.Gateway = (*Gateway)(nil)
}
