package s3_test

import (
	"agency/config"
	"agency/infras/otel/mocks"
	"agency/infras/s3"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	method string
	path   string
	body   string
}

func newBucketServer(t *testing.T) (*httptest.Server, *[]recordedRequest) {
	t.Helper()

	var (
		mu       sync.Mutex
		requests []recordedRequest
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		mu.Lock()
		requests = append(requests, recordedRequest{method: r.Method, path: r.URL.Path, body: string(body)})
		mu.Unlock()

		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)

			return
		}

		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	return server, &requests
}

func TestS3_UploadAndDelete(t *testing.T) {
	server, requests := newBucketServer(t)

	cfg := &config.Config{}
	cfg.External.S3.Enable = true
	cfg.External.S3.APIEndpoint = server.URL
	cfg.External.S3.AccessKeyID = "key"
	cfg.External.S3.SecretAccessKey = "secret"
	cfg.External.S3.BucketName = "agency"
	cfg.External.S3.PublicDomain = "https://files.agency.test/"

	store := s3.New(cfg, mocks.NewOtel())
	require.True(t, store.Enabled())

	url, err := store.UploadFileBytes(context.Background(), "invites", "BOOK-1.ics", "text/calendar", []byte("BEGIN:VCALENDAR"))
	require.NoError(t, err)
	assert.Equal(t, "https://files.agency.test/invites/BOOK-1.ics", url)

	require.NoError(t, store.DeleteFile(context.Background(), "invites", "BOOK-1.ics"))

	require.Len(t, *requests, 2)
	assert.Equal(t, http.MethodPut, (*requests)[0].method)
	assert.Equal(t, "/agency/invites/BOOK-1.ics", (*requests)[0].path)
	assert.Contains(t, (*requests)[0].body, "BEGIN:VCALENDAR")
	assert.Equal(t, http.MethodDelete, (*requests)[1].method)
}

func TestS3_Disabled(t *testing.T) {
	store := s3.New(&config.Config{}, mocks.NewOtel())

	assert.False(t, store.Enabled())

	url, err := store.UploadFileBytes(context.Background(), "invites", "x.ics", "text/calendar", nil)
	assert.NoError(t, err)
	assert.Empty(t, url)
	assert.NoError(t, store.DeleteFile(context.Background(), "invites", "x.ics"))
}
