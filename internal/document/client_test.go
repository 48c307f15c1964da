package document_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/seatrans/pda-api/internal/document"
)

func TestClientStore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/documents", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "inq-42", r.FormValue("inquiry_id"))
		require.Equal(t, "quote", r.FormValue("doc_type"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "quote-inq-42.html", header.Filename)
		body, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Contains(t, string(body), "<html>")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"doc-1","url":"https://docs.local/doc-1"}`))
	}))
	defer srv.Close()

	client := document.NewClient(document.Config{BaseURL: srv.URL})
	up, err := client.Store(context.Background(), "inq-42", "quote", "quote-inq-42.html", "<html>ok</html>")
	require.NoError(t, err)
	require.Equal(t, "doc-1", up.ID)
	require.Equal(t, "https://docs.local/doc-1", up.URL)
}

func TestClientRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"id":"doc-2","url":""}`))
	}))
	defer srv.Close()

	client := document.NewClient(document.Config{
		BaseURL:     srv.URL,
		MaxAttempts: 3,
		BaseBackoff: time.Millisecond,
	})
	up, err := client.Store(context.Background(), "inq-7", "quote", "quote.html", "<html/>")
	require.NoError(t, err)
	require.Equal(t, "doc-2", up.ID)
	require.Equal(t, int32(2), calls.Load())
}

func TestClientRejectsClientError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad payload", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	client := document.NewClient(document.Config{BaseURL: srv.URL, MaxAttempts: 2, BaseBackoff: time.Millisecond})
	_, err := client.Store(context.Background(), "inq-9", "quote", "quote.html", "<html/>")
	require.Error(t, err)
	require.Contains(t, err.Error(), "422")
}

func TestClientRequiresBaseURL(t *testing.T) {
	client := document.NewClient(document.Config{})
	_, err := client.Store(context.Background(), "x", "quote", "q.html", "<html/>")
	require.Error(t, err)
}
