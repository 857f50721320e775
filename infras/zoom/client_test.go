package zoom_test

import (
	"agency/config"
	"agency/infras/otel/mocks"
	"agency/infras/zoom"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeZoom struct {
	tokenCalls   atomic.Int32
	meetingCalls atomic.Int32
	tokenStatus  int
	cutToken     bool
	rejectFirst  atomic.Bool
	deleteStatus int
	lastBody     map[string]any
	lastAuth     string
	mu           sync.Mutex
}

func (f *fakeZoom) handler(t *testing.T) http.Handler {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client", user)
		assert.Equal(t, "secret", pass)
		assert.Equal(t, "account_credentials", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "acct", r.URL.Query().Get("account_id"))

		if f.tokenStatus != 0 {
			w.WriteHeader(f.tokenStatus)

			return
		}

		if f.cutToken {
			w.Header().Set("Content-Length", "512")
			_, _ = w.Write([]byte(`{"access_token": "to`))

			return
		}

		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "tok", "expires_in": 3600})
	})

	mux.HandleFunc("/v2/users/me/meetings", func(w http.ResponseWriter, r *http.Request) {
		f.meetingCalls.Add(1)

		if f.rejectFirst.CompareAndSwap(true, false) {
			w.WriteHeader(http.StatusUnauthorized)

			return
		}

		body, _ := io.ReadAll(r.Body)

		f.mu.Lock()
		f.lastAuth = r.Header.Get("Authorization")
		_ = json.Unmarshal(body, &f.lastBody)
		f.mu.Unlock()

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 81234567890, "join_url": "https://zoom.us/j/81234567890", "start_url": "https://zoom.us/s/81234567890", "password": "abc12345"}`))
	})

	mux.HandleFunc("/v2/meetings/", func(w http.ResponseWriter, r *http.Request) {
		f.meetingCalls.Add(1)

		switch r.Method {
		case http.MethodDelete:
			if f.deleteStatus != 0 {
				w.WriteHeader(f.deleteStatus)

				return
			}

			w.WriteHeader(http.StatusNoContent)
		case http.MethodPatch:
			body, _ := io.ReadAll(r.Body)

			f.mu.Lock()
			_ = json.Unmarshal(body, &f.lastBody)
			f.mu.Unlock()

			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	return mux
}

func newClient(t *testing.T, fake *fakeZoom) *zoom.Client {
	t.Helper()

	server := httptest.NewServer(fake.handler(t))
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.External.Zoom.AccountID = "acct"
	cfg.External.Zoom.ClientID = "client"
	cfg.External.Zoom.ClientSecret = "secret"
	cfg.External.Zoom.BaseURL = server.URL + "/v2"
	cfg.External.Zoom.OAuthURL = server.URL + "/oauth/token"
	cfg.External.Zoom.HostEmail = "host@agency.test"
	cfg.External.Zoom.RequestsPerSecond = 1000

	return zoom.NewClient(cfg, mocks.NewOtel(), server.Client())
}

func TestCreateMeeting(t *testing.T) {
	fake := &fakeZoom{}
	client := newClient(t, fake)

	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	meeting, err := client.CreateMeeting(context.Background(), zoom.MeetingRequest{
		Topic: "Consultation with Jane Doe",
		Start: start,
	})
	require.NoError(t, err)

	assert.Equal(t, "81234567890", meeting.MeetingID)
	assert.Equal(t, "https://zoom.us/j/81234567890", meeting.JoinURL)
	assert.Equal(t, "https://zoom.us/s/81234567890", meeting.HostURL)
	assert.Equal(t, "abc12345", meeting.Password)
	assert.Equal(t, "Bearer tok", fake.lastAuth)

	body := fake.lastBody
	assert.Equal(t, "2025-03-10T09:00:00Z", body["start_time"])
	assert.InDelta(t, 60, body["duration"], 0)
	assert.InDelta(t, 2, body["type"], 0)
	assert.Equal(t, "UTC", body["timezone"])
	assert.Equal(t, "Consultation with Jane Doe", body["agenda"])
	assert.Len(t, body["password"], 8)

	settings, ok := body["settings"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, settings["host_video"])
	assert.Equal(t, true, settings["participant_video"])
	assert.Equal(t, false, settings["join_before_host"])
	assert.Equal(t, true, settings["mute_upon_entry"])
	assert.Equal(t, true, settings["waiting_room"])
	assert.Equal(t, "none", settings["auto_recording"])
	assert.Equal(t, "both", settings["audio"])
	assert.InDelta(t, 0, settings["approval_type"], 0)
	assert.Equal(t, "host@agency.test", settings["host_email"])

	_, err = client.CreateMeeting(context.Background(), zoom.MeetingRequest{Topic: "again", Start: start})
	require.NoError(t, err)
	assert.Equal(t, int32(1), fake.tokenCalls.Load())
}

func TestCreateMeeting_RetriesOnceAfter401(t *testing.T) {
	fake := &fakeZoom{}
	fake.rejectFirst.Store(true)
	client := newClient(t, fake)

	_, err := client.CreateMeeting(context.Background(), zoom.MeetingRequest{Topic: "x", Start: time.Now()})
	require.NoError(t, err)

	assert.Equal(t, int32(2), fake.tokenCalls.Load())
	assert.Equal(t, int32(2), fake.meetingCalls.Load())
}

func TestCreateMeeting_AuthFailure(t *testing.T) {
	fake := &fakeZoom{tokenStatus: http.StatusBadRequest}
	client := newClient(t, fake)

	_, err := client.CreateMeeting(context.Background(), zoom.MeetingRequest{Topic: "x", Start: time.Now()})
	require.ErrorIs(t, err, zoom.ErrAuth)
	assert.Equal(t, int32(0), fake.meetingCalls.Load())
}

func TestCreateMeeting_TruncatedTokenResponse(t *testing.T) {
	fake := &fakeZoom{cutToken: true}
	client := newClient(t, fake)

	_, err := client.CreateMeeting(context.Background(), zoom.MeetingRequest{Topic: "x", Start: time.Now()})
	require.ErrorIs(t, err, zoom.ErrAuth)
	assert.Contains(t, err.Error(), "read token response")
	assert.Equal(t, int32(0), fake.meetingCalls.Load())
}

func TestCreateMeeting_NotConfigured(t *testing.T) {
	client := zoom.New(&config.Config{}, mocks.NewOtel())

	_, err := client.CreateMeeting(context.Background(), zoom.MeetingRequest{Topic: "x", Start: time.Now()})
	assert.ErrorIs(t, err, zoom.ErrNotConfigured)
	assert.ErrorIs(t, err, zoom.ErrAuth)
}

func TestDeleteMeeting(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		client := newClient(t, &fakeZoom{})

		assert.NoError(t, client.DeleteMeeting(context.Background(), "81234567890"))
	})

	t.Run("not found is success", func(t *testing.T) {
		client := newClient(t, &fakeZoom{deleteStatus: http.StatusNotFound})

		assert.NoError(t, client.DeleteMeeting(context.Background(), "81234567890"))
	})

	t.Run("server error surfaces as APIError", func(t *testing.T) {
		client := newClient(t, &fakeZoom{deleteStatus: http.StatusInternalServerError})

		err := client.DeleteMeeting(context.Background(), "81234567890")

		var apiErr *zoom.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, "delete meeting", apiErr.Operation)
	})
}

func TestUpdateMeeting(t *testing.T) {
	fake := &fakeZoom{}
	client := newClient(t, fake)

	start := time.Date(2025, 3, 11, 14, 0, 0, 0, time.UTC)
	duration := 30

	require.NoError(t, client.UpdateMeeting(context.Background(), "81234567890", zoom.MeetingUpdate{Start: &start, DurationMinutes: &duration}))
	assert.Equal(t, "2025-03-11T14:00:00Z", fake.lastBody["start_time"])
	assert.InDelta(t, 30, fake.lastBody["duration"], 0)
}

func TestGeneratePassword(t *testing.T) {
	const charset = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

	for range 20 {
		password, err := zoom.GeneratePassword()
		require.NoError(t, err)
		assert.Len(t, password, 8)

		for _, r := range password {
			assert.True(t, strings.ContainsRune(charset, r), "unexpected character %q", r)
		}
	}
}
