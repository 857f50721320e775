package model_test

import (
	"agency/internal/domains/consultation/model"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCanTransition(t *testing.T) {
	allowed := map[string][]string{
		model.StatusPending:   {model.StatusConfirmed, model.StatusCancelled},
		model.StatusConfirmed: {model.StatusCompleted, model.StatusCancelled, model.StatusNoShow},
	}
	statuses := []string{model.StatusPending, model.StatusConfirmed, model.StatusCompleted, model.StatusCancelled, model.StatusNoShow}

	for _, from := range statuses {
		for _, to := range statuses {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}

			assert.Equal(t, want, model.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestIsReschedulable(t *testing.T) {
	assert.True(t, model.IsReschedulable(model.StatusPending))
	assert.True(t, model.IsReschedulable(model.StatusConfirmed))
	assert.False(t, model.IsReschedulable(model.StatusCompleted))
	assert.False(t, model.IsReschedulable(model.StatusCancelled))
	assert.False(t, model.IsReschedulable(model.StatusNoShow))
}

func TestExtractMeetingID(t *testing.T) {
	tests := []struct {
		name    string
		booking model.Consultation
		want    string
	}{
		{name: "column wins", booking: model.Consultation{MeetingID: strPtr("111"), Notes: strPtr("Zoom Meeting ID: 222, Password: x")}, want: "111"},
		{name: "notes breadcrumb", booking: model.Consultation{Notes: strPtr("first line\nZoom Meeting ID: 85746352, Password: abc")}, want: "85746352"},
		{name: "nothing", booking: model.Consultation{Notes: strPtr("called the client")}, want: ""},
		{name: "no notes", booking: model.Consultation{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.ExtractMeetingID())
		})
	}
}

func TestAppendNote(t *testing.T) {
	assert.Equal(t, "one", model.Consultation{}.AppendNote("one"))
	assert.Equal(t, "one\ntwo", model.Consultation{Notes: strPtr("one")}.AppendNote("two"))
}

func TestNotes(t *testing.T) {
	at := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "Status changed from confirmed to completed at 2025-03-10T09:30:00Z",
		model.StatusNote(model.StatusConfirmed, model.StatusCompleted, at, ""))
	assert.Equal(t, "Status changed from confirmed to no_show at 2025-03-10T09:30:00Z: no answer",
		model.StatusNote(model.StatusConfirmed, model.StatusNoShow, at, "no answer"))
	assert.Equal(t, "Zoom Meeting ID: 123, Password: pw", model.MeetingNote(model.MeetingRef{ID: "123", Password: "pw"}))
}

func TestMeeting(t *testing.T) {
	assert.Nil(t, model.Consultation{}.Meeting())

	ref := model.Consultation{MeetingURL: strPtr("https://zoom.us/j/1"), MeetingID: strPtr("1")}.Meeting()
	require.NotNil(t, ref)
	assert.Equal(t, "https://zoom.us/j/1", ref.URL)
	assert.Empty(t, ref.Password)
}

func TestGenerateBookingID(t *testing.T) {
	now := time.UnixMilli(1741600000000)
	pattern := regexp.MustCompile(`^BOOK-[0-9A-Z]+-[0-9A-Z]{5}$`)

	first, err := model.GenerateBookingID(now)
	require.NoError(t, err)

	second, err := model.GenerateBookingID(now)
	require.NoError(t, err)

	assert.Regexp(t, pattern, first)
	assert.Regexp(t, pattern, second)
	assert.Equal(t, first[:len(first)-5], second[:len(second)-5])
}
