package zoom

import (
	"crypto/rand"
	"encoding/json"
	"math/big"
	"time"
)

const (
	DefaultDurationMinutes = 60

	meetingTypeScheduled = 2
	meetingTimezone      = "UTC"
	passwordLength       = 8
	passwordCharset      = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"
	startTimeLayout      = "2006-01-02T15:04:05Z"
)

// MeetingRequest describes a meeting to schedule.
type MeetingRequest struct {
	Topic           string
	Start           time.Time
	DurationMinutes int
	Agenda          string
	Password        string
}

// MeetingUpdate carries the fields to change. Nil fields are left as they are.
type MeetingUpdate struct {
	Start           *time.Time
	DurationMinutes *int
}

// Meeting is the reference stored on a booking.
type Meeting struct {
	JoinURL   string
	MeetingID string
	Password  string
	HostURL   string
}

type meetingSettings struct {
	HostVideo             bool   `json:"host_video"`
	ParticipantVideo      bool   `json:"participant_video"`
	JoinBeforeHost        bool   `json:"join_before_host"`
	MuteUponEntry         bool   `json:"mute_upon_entry"`
	Watermark             bool   `json:"watermark"`
	UsePMI                bool   `json:"use_pmi"`
	ApprovalType          int    `json:"approval_type"`
	Audio                 string `json:"audio"`
	AutoRecording         string `json:"auto_recording"`
	WaitingRoom           bool   `json:"waiting_room"`
	MeetingAuthentication bool   `json:"meeting_authentication"`
	EmailNotification     bool   `json:"email_notification"`
	HostEmail             string `json:"host_email,omitempty"`
}

type createMeetingBody struct {
	Topic     string          `json:"topic"`
	Type      int             `json:"type"`
	StartTime string          `json:"start_time"`
	Duration  int             `json:"duration"`
	Timezone  string          `json:"timezone"`
	Password  string          `json:"password"`
	Agenda    string          `json:"agenda"`
	Settings  meetingSettings `json:"settings"`
}

type updateMeetingBody struct {
	StartTime *string `json:"start_time,omitempty"`
	Duration  *int    `json:"duration,omitempty"`
}

type meetingResponse struct {
	ID       json.Number `json:"id"`
	JoinURL  string      `json:"join_url"`
	StartURL string      `json:"start_url"`
	Password string      `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

func defaultSettings(hostEmail string) meetingSettings {
	return meetingSettings{
		HostVideo:         true,
		ParticipantVideo:  true,
		JoinBeforeHost:    false,
		MuteUponEntry:     true,
		WaitingRoom:       true,
		ApprovalType:      0,
		Audio:             "both",
		AutoRecording:     "none",
		EmailNotification: true,
		HostEmail:         hostEmail,
	}
}

func newCreateBody(req MeetingRequest, hostEmail string) (createMeetingBody, error) {
	duration := req.DurationMinutes
	if duration <= 0 {
		duration = DefaultDurationMinutes
	}

	password := req.Password
	if password == "" {
		generated, err := GeneratePassword()
		if err != nil {
			return createMeetingBody{}, err
		}

		password = generated
	}

	agenda := req.Agenda
	if agenda == "" {
		agenda = req.Topic
	}

	return createMeetingBody{
		Topic:     req.Topic,
		Type:      meetingTypeScheduled,
		StartTime: req.Start.UTC().Format(startTimeLayout),
		Duration:  duration,
		Timezone:  meetingTimezone,
		Password:  password,
		Agenda:    agenda,
		Settings:  defaultSettings(hostEmail),
	}, nil
}

// GeneratePassword returns a random meeting passcode without look-alike characters.
func GeneratePassword() (string, error) {
	out := make([]byte, passwordLength)
	limit := big.NewInt(int64(len(passwordCharset)))

	for i := range out {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}

		out[i] = passwordCharset[n.Int64()]
	}

	return string(out), nil
}
