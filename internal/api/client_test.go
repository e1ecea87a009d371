package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(server.URL, 5*time.Second)
	assert.NoError(t, err)
	return client, server
}

func TestNewClient_InvalidURL(t *testing.T) {
	_, err := NewClient("http://bad url\x7f", time.Second)
	assert.Error(t, err)
}

func TestClient_LoginURL(t *testing.T) {
	client, err := NewClient("http://mail.local", time.Second)
	assert.NoError(t, err)
	assert.Equal(t, "http://mail.local/login", client.LoginURL())
}

func TestClient_CheckSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/session", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"credentials": true}`))
	})
	client, _ := newTestClient(t, mux)

	ok, err := client.CheckSession(context.Background())

	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestClient_CheckSession_NoCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/session", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"credentials": false}`))
	})
	client, _ := newTestClient(t, mux)

	ok, err := client.CheckSession(context.Background())

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestClient_FetchInbox(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/inbox", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": "m1", "snippet": "hello", "sender": "alice@example.com", "starred": true, "spam": false},
			{"id": "m2", "snippet": "world", "sender": "bob@example.com", "starred": false, "spam": true}
		]`))
	})
	client, _ := newTestClient(t, mux)

	messages, err := client.FetchInbox(context.Background())

	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.Equal(t, "m1", messages[0].ID)
	assert.True(t, messages[0].Starred)
	assert.True(t, messages[1].Spam)
}

func TestClient_FetchInbox_Unauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/inbox", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	client, _ := newTestClient(t, mux)

	messages, err := client.FetchInbox(context.Background())

	assert.Error(t, err)
	assert.Nil(t, messages)
	var statusErr *StatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Equal(t, 401, statusErr.StatusCode)
}

func TestClient_FetchMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/email/m1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"subject": "Hi", "sender": "alice@example.com", "date": "2026-08-01", "body": "<p>hello</p>"}`))
	})
	client, _ := newTestClient(t, mux)

	detail, err := client.FetchMessage(context.Background(), "m1")

	assert.NoError(t, err)
	assert.Equal(t, "m1", detail.ID) // filled in when the backend omits it
	assert.Equal(t, "Hi", detail.Subject)
	assert.Equal(t, "<p>hello</p>", detail.Body)
}

func TestClient_FetchMessage_EmptyID(t *testing.T) {
	client, _ := newTestClient(t, http.NewServeMux())

	_, err := client.FetchMessage(context.Background(), "")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "message ID cannot be empty")
}

func TestClient_Star(t *testing.T) {
	var hit string
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		hit = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	})
	client, _ := newTestClient(t, mux)

	err := client.Star(context.Background(), "m1")

	assert.NoError(t, err)
	assert.Equal(t, "/star/m1", hit)
}

func TestClient_SpamEndpointSelection(t *testing.T) {
	var hits []string
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, r.URL.Path)
		_, _ = w.Write([]byte(`{"message": "done"}`))
	})
	client, _ := newTestClient(t, mux)
	ctx := context.Background()

	msg, err := client.MarkSpam(ctx, "m1")
	assert.NoError(t, err)
	assert.Equal(t, "done", msg)

	msg, err = client.UnmarkSpam(ctx, "m1")
	assert.NoError(t, err)
	assert.Equal(t, "done", msg)

	assert.Equal(t, []string{"/spam/m1", "/unspam/m1"}, hits)
}

func TestClient_Send_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/send", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{}`))
	})
	client, _ := newTestClient(t, mux)

	err := client.Send(context.Background(), "bob@example.com", "Hi", "hello")

	assert.NoError(t, err)
}

func TestClient_Send_BusinessRejection(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/send", func(w http.ResponseWriter, r *http.Request) {
		// Rejections arrive in the body, not the status line
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": "recipient required"}`))
	})
	client, _ := newTestClient(t, mux)

	err := client.Send(context.Background(), "", "", "")

	assert.Error(t, err)
	var sendErr *SendError
	assert.True(t, errors.As(err, &sendErr))
	assert.Equal(t, "recipient required", sendErr.Reason)
}

func TestClient_Send_NonJSONFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/send", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	client, _ := newTestClient(t, mux)

	err := client.Send(context.Background(), "bob@example.com", "Hi", "hello")

	assert.Error(t, err)
	var statusErr *StatusError
	assert.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
}

func TestClient_Logout(t *testing.T) {
	var hit bool
	mux := http.NewServeMux()
	mux.HandleFunc("/logout", func(w http.ResponseWriter, r *http.Request) {
		hit = true
		_, _ = w.Write([]byte("bye"))
	})
	client, _ := newTestClient(t, mux)

	err := client.Logout(context.Background())

	assert.NoError(t, err)
	assert.True(t, hit)
}

func TestClient_CookiesPersistAcrossRequests(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/session", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc"})
		_, _ = w.Write([]byte(`{"credentials": true}`))
	})
	mux.HandleFunc("/inbox", func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("session")
		if err != nil || cookie.Value != "abc" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})
	client, _ := newTestClient(t, mux)
	ctx := context.Background()

	_, err := client.CheckSession(ctx)
	assert.NoError(t, err)

	messages, err := client.FetchInbox(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, messages)
	assert.Empty(t, messages)
}
