package email

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jossainson/ticketing-backend/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *ResendClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewResend(config.EmailConfig{
		APIKey: "re_test_key",
		From:   "no-reply@ticketing.local",
	})
	c.SetBaseURL(srv.URL)
	return c
}

func TestSendPasswordReset_OK(t *testing.T) {
	t.Parallel()

	var got sendRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/emails", r.URL.Path)
		require.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"4ef8a6a0"}`))
	})

	err := c.SendPasswordReset(context.Background(), "user@example.com", "Jean", "http://localhost:3000/reset-password?token=abc")
	require.NoError(t, err)

	require.Equal(t, "no-reply@ticketing.local", got.From)
	require.Equal(t, []string{"user@example.com"}, got.To)
	require.Equal(t, "Réinitialisation de mot de passe", got.Subject)
	require.Contains(t, got.HTML, "Bonjour Jean,")
	require.Contains(t, got.HTML, "http://localhost:3000/reset-password?token=abc")
}

// TestSendPasswordReset_Greeting — без имени приветствие нейтральное,
// спецсимволы в имени экранируются для HTML.
func TestSendPasswordReset_Greeting(t *testing.T) {
	t.Parallel()

	var got sendRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"4ef8a6a0"}`))
	})

	require.NoError(t, c.SendPasswordReset(context.Background(), "user@example.com", "", "link"))
	require.Contains(t, got.HTML, "<p>Bonjour,</p>")

	require.NoError(t, c.SendPasswordReset(context.Background(), "user@example.com", "<b>Jean</b>", "link"))
	require.Contains(t, got.HTML, "Bonjour &lt;b&gt;Jean&lt;/b&gt;,")
}

func TestSendPasswordReset_APIError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"name":"invalid_api_key","message":"API key is invalid"}`))
	})

	err := c.SendPasswordReset(context.Background(), "user@example.com", "Jean", "link")
	require.Error(t, err)
	require.Contains(t, err.Error(), "401")
}

func TestSendPasswordReset_ContextCanceled(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"x"}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.SendPasswordReset(ctx, "user@example.com", "Jean", "link")
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
}
