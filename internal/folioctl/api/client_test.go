package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveHost(t *testing.T) {
	t.Setenv("FOLIO_HOST", "")
	require.Equal(t, DefaultHost, ResolveHost(""))

	t.Setenv("FOLIO_HOST", "folio.internal:9000")
	require.Equal(t, "folio.internal:9000", ResolveHost(""))
	require.Equal(t, "localhost:1234", ResolveHost(" localhost:1234 "))
}

func TestNewClientNormalizesBaseURL(t *testing.T) {
	require.Equal(t, "http://localhost:8080", NewClient("localhost:8080", "").baseURL)
	require.Equal(t, "https://folio.example.com", NewClient("https://folio.example.com/", "").baseURL)
}

func TestStatusErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"Error in revalidation API"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "t")

	_, err := c.Revalidate("")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusInternalServerError, statusErr.Status)
	require.Equal(t, "Error in revalidation API", statusErr.Message)

	_, err = c.Ping()
	require.ErrorAs(t, err, &statusErr)
}
