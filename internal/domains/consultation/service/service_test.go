package service_test

import (
	"agency/config"
	emailInfra "agency/infras/email"
	emailMocks "agency/infras/email/mocks"
	"agency/infras/kafka"
	kafkaMocks "agency/infras/kafka/mocks"
	"agency/infras/metrics"
	"agency/infras/otel/mocks"
	s3Mocks "agency/infras/s3/mocks"
	"agency/infras/zoom"
	zoomMocks "agency/infras/zoom/mocks"
	availabilityMocks "agency/internal/domains/availability/mocks"
	availabilityModel "agency/internal/domains/availability/model"
	availabilityDto "agency/internal/domains/availability/model/dto"
	consultationMocks "agency/internal/domains/consultation/mocks"
	"agency/internal/domains/consultation/model"
	"agency/internal/domains/consultation/model/dto"
	"agency/internal/domains/consultation/service"
	"agency/shared/datetime"
	"agency/shared/failure"
	"agency/shared/task"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceFixture struct {
	ledger      *consultationMocks.MockLedger
	resolver    *availabilityMocks.MockResolver
	provisioner *zoomMocks.MockProvisioner
	sender      *emailMocks.MockSender
	store       *s3Mocks.MockS3
	events      *kafkaMocks.MockClient
	runner      task.Runner
	svc         service.Consultation
	mu          sync.Mutex
	sent        []emailInfra.Message
	published   []kafka.Message
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.Company.Name = "Northwind Studio"
	cfg.App.Company.Email = "hello@northwind.dev"
	cfg.App.Company.SiteURL = "https://northwind.dev"

	f := &serviceFixture{
		ledger:      consultationMocks.NewMockLedger(ctrl),
		resolver:    availabilityMocks.NewMockResolver(ctrl),
		provisioner: zoomMocks.NewMockProvisioner(ctrl),
		sender:      emailMocks.NewMockSender(ctrl),
		store:       s3Mocks.NewMockS3(ctrl),
		events:      kafkaMocks.NewMockClient(ctrl),
		runner:      task.NewRunner(mocks.NewOtel(), time.Second),
	}
	f.svc = service.New(
		f.ledger,
		f.resolver,
		f.provisioner,
		f.sender,
		f.store,
		f.events,
		f.runner,
		metrics.NewWithRegisterer("test", prometheus.NewRegistry()),
		cfg,
		mocks.NewOtel(),
	)

	return f
}

// expectNotifications records the emails and events produced by the detached tasks.
func (f *serviceFixture) expectNotifications(emails, events int) {
	f.sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, msg emailInfra.Message) (string, error) {
			f.mu.Lock()
			defer f.mu.Unlock()

			f.sent = append(f.sent, msg)

			return "msg-id", nil
		}).Times(emails)

	f.events.EXPECT().SendMessages(gomock.Any(), "", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, messages ...kafka.Message) error {
			f.mu.Lock()
			defer f.mu.Unlock()

			f.published = append(f.published, messages...)

			return nil
		}).Times(events)
}

func (f *serviceFixture) wait(t *testing.T) {
	t.Helper()

	require.NoError(t, f.runner.Wait(context.Background()))
}

func bookRequest(kind string) dto.BookRequest {
	return dto.BookRequest{
		Name:             "Jane Doe",
		Email:            "jane@example.com",
		Phone:            "+15555550100",
		PreferredDate:    "2025-03-10",
		PreferredTime:    "10:00 AM",
		ConsultationType: kind,
		ProjectDetails:   "We need a booking platform for our clinic.",
	}
}

func created(t *testing.T, kind string) model.Consultation {
	t.Helper()

	booking := newBooking(t, model.StatusConfirmed)
	booking.ConsultationType = kind

	return booking
}

func withMeeting(booking model.Consultation, ref model.MeetingRef) model.Consultation {
	booking.MeetingURL = strPtr(ref.URL)
	booking.MeetingID = strPtr(ref.ID)
	booking.MeetingPassword = strPtr(ref.Password)
	booking.Notes = strPtr(model.MeetingNote(ref))

	return booking
}

func openSlots() []availabilityModel.Slot {
	return []availabilityModel.Slot{
		{Start: datetime.MustClock("09:00"), Display: "9:00 AM", Available: true},
		{Start: datetime.MustClock("10:00"), Display: "10:00 AM", Available: false},
		{Start: datetime.MustClock("11:00"), Display: "11:00 AM", Available: true},
	}
}

func subjects(messages []emailInfra.Message) []string {
	res := make([]string, len(messages))
	for i, msg := range messages {
		res[i] = msg.Subject
	}

	return res
}

func TestConsultation_Book(t *testing.T) {
	ref := model.MeetingRef{URL: "https://zoom.us/j/123456789", ID: "123456789", Password: "abc12345"}

	t.Run("video booking on March 10 provisions a meeting and notifies both sides", func(t *testing.T) {
		f := newServiceFixture(t)
		booking := created(t, model.TypeVideo)

		f.resolver.EXPECT().IsSlotAvailable(gomock.Any(), march10(t), datetime.MustClock("10:00")).Return(true, nil)
		f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, input model.Consultation) (model.Consultation, error) {
				assert.Equal(t, "10:00 AM", input.RequestedTime)
				assert.Equal(t, "Jane Doe", input.Name)

				return booking, nil
			})
		f.provisioner.EXPECT().CreateMeeting(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req zoom.MeetingRequest) (*zoom.Meeting, error) {
				assert.Equal(t, booking.ScheduledAt, req.Start)
				assert.Equal(t, "Consultation with Jane Doe", req.Topic)

				return &zoom.Meeting{JoinURL: ref.URL, MeetingID: ref.ID, Password: ref.Password}, nil
			})
		f.ledger.EXPECT().AttachMeeting(gomock.Any(), booking.BookingID, &ref).Return(withMeeting(booking, ref), nil)
		f.store.EXPECT().Enabled().Return(false)
		f.expectNotifications(2, 1)

		res, err := f.svc.Book(context.Background(), bookRequest(model.TypeVideo))
		require.NoError(t, err)
		f.wait(t)

		assert.Equal(t, booking.BookingID, res.BookingID)
		assert.Equal(t, "March 10, 2025", res.Date)
		assert.Equal(t, "10:00 AM", res.Time)
		require.NotNil(t, res.MeetingDetails)
		assert.Equal(t, ref.URL, res.MeetingDetails.URL)
		assert.Equal(t, ref.Password, res.MeetingDetails.Password)

		assert.ElementsMatch(t, []string{
			"New Consultation Booking - Jane Doe - March 10, 2025",
			"Consultation Confirmed - March 10, 2025 at 10:00 AM",
		}, subjects(f.sent))

		for _, msg := range f.sent {
			if msg.To == "hello@northwind.dev" {
				assert.Equal(t, "jane@example.com", msg.ReplyTo)
			} else {
				assert.Equal(t, "jane@example.com", msg.To)
				assert.Contains(t, msg.HTML, ref.URL)
			}
		}

		require.Len(t, f.published, 1)
		assert.Equal(t, service.EventBooked, f.published[0].Event)
		assert.Equal(t, booking.BookingID, f.published[0].Key)
	})

	t.Run("provisioner outage still books", func(t *testing.T) {
		f := newServiceFixture(t)
		booking := created(t, model.TypeVideo)

		f.resolver.EXPECT().IsSlotAvailable(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.provisioner.EXPECT().CreateMeeting(gomock.Any(), gomock.Any()).Return(nil, zoom.ErrAuth)
		f.store.EXPECT().Enabled().Return(false)
		f.expectNotifications(2, 1)

		res, err := f.svc.Book(context.Background(), bookRequest(model.TypeVideo))
		require.NoError(t, err)
		f.wait(t)

		require.NotNil(t, res.MeetingDetails)
		assert.Equal(t, dto.MeetingPendingURL, res.MeetingDetails.URL)
		assert.Empty(t, res.MeetingDetails.Password)
	})

	t.Run("phone booking has no meeting", func(t *testing.T) {
		f := newServiceFixture(t)
		booking := created(t, model.TypePhone)

		f.resolver.EXPECT().IsSlotAvailable(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(booking, nil)
		f.store.EXPECT().Enabled().Return(true)
		f.store.EXPECT().UploadFileBytes(gomock.Any(), "invites", booking.BookingID+".ics", gomock.Any(), gomock.Any()).
			Return("https://cdn.northwind.dev/invites/"+booking.BookingID+".ics", nil)
		f.expectNotifications(2, 1)

		res, err := f.svc.Book(context.Background(), bookRequest(model.TypePhone))
		require.NoError(t, err)
		f.wait(t)

		assert.Nil(t, res.MeetingDetails)

		for _, msg := range f.sent {
			if msg.To == "jane@example.com" {
				assert.Contains(t, msg.HTML, "invites/"+booking.BookingID+".ics")
			}
		}
	})

	t.Run("taken slot answers with the open slots", func(t *testing.T) {
		f := newServiceFixture(t)

		f.resolver.EXPECT().IsSlotAvailable(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.resolver.EXPECT().AvailableSlots(gomock.Any(), march10(t)).Return(openSlots(), nil)

		_, err := f.svc.Book(context.Background(), bookRequest(model.TypeVideo))
		require.Error(t, err)
		f.wait(t)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		details, ok := failure.GetDetails(err).(map[string]any)
		require.True(t, ok)
		assert.Equal(t, []string{"9:00 AM", "11:00 AM"}, details["availableSlots"])
	})

	t.Run("losing the write race answers the same way", func(t *testing.T) {
		f := newServiceFixture(t)

		f.resolver.EXPECT().IsSlotAvailable(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.Consultation{}, model.ErrSlotTaken)
		f.resolver.EXPECT().AvailableSlots(gomock.Any(), gomock.Any()).Return(openSlots(), nil)

		_, err := f.svc.Book(context.Background(), bookRequest(model.TypeVideo))
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.NotNil(t, failure.GetDetails(err))
	})

	t.Run("unparseable date", func(t *testing.T) {
		f := newServiceFixture(t)
		req := bookRequest(model.TypeVideo)
		req.PreferredDate = "next tuesday"

		_, err := f.svc.Book(context.Background(), req)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("storage failure is a server error", func(t *testing.T) {
		f := newServiceFixture(t)

		f.resolver.EXPECT().IsSlotAvailable(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(model.Consultation{}, errors.New("connection reset"))

		_, err := f.svc.Book(context.Background(), bookRequest(model.TypeVideo))
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestConsultation_Cancel(t *testing.T) {
	ref := model.MeetingRef{URL: "https://zoom.us/j/555", ID: "555", Password: "pw"}

	t.Run("deletes the meeting and notifies", func(t *testing.T) {
		f := newServiceFixture(t)
		booking := withMeeting(created(t, model.TypeVideo), ref)
		cancelled := booking
		cancelled.Status = model.StatusCancelled

		f.ledger.EXPECT().FindByBookingID(gomock.Any(), booking.BookingID).Return(booking, nil)
		f.provisioner.EXPECT().DeleteMeeting(gomock.Any(), "555").Return(nil)
		f.ledger.EXPECT().UpdateStatus(gomock.Any(), booking.BookingID, model.StatusCancelled, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _, notes string) (model.Consultation, error) {
				assert.True(t, strings.HasPrefix(notes, "Cancelled at: "))

				return cancelled, nil
			})
		f.store.EXPECT().Enabled().Return(true)
		f.store.EXPECT().DeleteFile(gomock.Any(), "invites", booking.BookingID+".ics").Return(nil)
		f.expectNotifications(2, 1)

		require.NoError(t, f.svc.Cancel(context.Background(), booking.BookingID))
		f.wait(t)

		assert.ElementsMatch(t, []string{
			"Consultation Cancelled - Jane Doe",
			"Your Consultation Has Been Cancelled",
		}, subjects(f.sent))
		require.Len(t, f.published, 1)
		assert.Equal(t, service.EventCancelled, f.published[0].Event)
	})

	t.Run("meeting deletion failure does not block the cancellation", func(t *testing.T) {
		f := newServiceFixture(t)
		booking := withMeeting(created(t, model.TypeVideo), ref)
		cancelled := booking
		cancelled.Status = model.StatusCancelled

		f.ledger.EXPECT().FindByBookingID(gomock.Any(), booking.BookingID).Return(booking, nil)
		f.provisioner.EXPECT().DeleteMeeting(gomock.Any(), "555").Return(&zoom.APIError{Operation: "delete", StatusCode: 500})
		f.ledger.EXPECT().UpdateStatus(gomock.Any(), booking.BookingID, model.StatusCancelled, gomock.Any()).Return(cancelled, nil)
		f.store.EXPECT().Enabled().Return(false)
		f.expectNotifications(2, 1)

		require.NoError(t, f.svc.Cancel(context.Background(), booking.BookingID))
		f.wait(t)
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		f := newServiceFixture(t)
		booking := created(t, model.TypeVideo)
		booking.Status = model.StatusCancelled

		f.ledger.EXPECT().FindByBookingID(gomock.Any(), booking.BookingID).Return(booking, nil)

		require.NoError(t, f.svc.Cancel(context.Background(), booking.BookingID))
		f.wait(t)
	})

	t.Run("losing a race to another cancel is a no-op", func(t *testing.T) {
		f := newServiceFixture(t)
		booking := created(t, model.TypePhone)
		cancelled := booking
		cancelled.Status = model.StatusCancelled

		gomock.InOrder(
			f.ledger.EXPECT().FindByBookingID(gomock.Any(), booking.BookingID).Return(booking, nil),
			f.ledger.EXPECT().UpdateStatus(gomock.Any(), booking.BookingID, model.StatusCancelled, gomock.Any()).
				Return(model.Consultation{}, fmt.Errorf("update status: %w", model.ErrInvalidTransition)),
			f.ledger.EXPECT().FindByBookingID(gomock.Any(), booking.BookingID).Return(cancelled, nil),
		)

		require.NoError(t, f.svc.Cancel(context.Background(), booking.BookingID))
		f.wait(t)
		assert.Empty(t, f.sent)
	})

	t.Run("losing a race to another transition is a conflict", func(t *testing.T) {
		f := newServiceFixture(t)
		booking := created(t, model.TypePhone)
		completed := booking
		completed.Status = model.StatusCompleted

		gomock.InOrder(
			f.ledger.EXPECT().FindByBookingID(gomock.Any(), booking.BookingID).Return(booking, nil),
			f.ledger.EXPECT().UpdateStatus(gomock.Any(), booking.BookingID, model.StatusCancelled, gomock.Any()).
				Return(model.Consultation{}, model.ErrInvalidTransition),
			f.ledger.EXPECT().FindByBookingID(gomock.Any(), booking.BookingID).Return(completed, nil),
		)

		err := f.svc.Cancel(context.Background(), booking.BookingID)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newServiceFixture(t)

		f.ledger.EXPECT().FindByBookingID(gomock.Any(), "BOOK-MISSING").
			Return(model.Consultation{}, errors.Join(errors.New("lookup"), model.ErrNotFound))

		err := f.svc.Cancel(context.Background(), "BOOK-MISSING")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		f := newServiceFixture(t)
		booking := created(t, model.TypeVideo)
		booking.Status = model.StatusCompleted

		f.ledger.EXPECT().FindByBookingID(gomock.Any(), booking.BookingID).Return(booking, nil)

		err := f.svc.Cancel(context.Background(), booking.BookingID)
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})
}

func TestConsultation_Reschedule(t *testing.T) {
	oldRef := model.MeetingRef{URL: "https://zoom.us/j/111", ID: "111", Password: "old"}
	newRef := model.MeetingRef{URL: "https://zoom.us/j/222", ID: "222", Password: "new"}
	req := dto.RescheduleRequest{NewDate: "2025-03-11", NewTime: "14:00"}

	t.Run("moves the booking and replaces the meeting", func(t *testing.T) {
		f := newServiceFixture(t)
		previous := withMeeting(created(t, model.TypeVideo), oldRef)
		newDate := march10(t).AddDate(0, 0, 1)
		moved := previous
		moved.RequestedDate = newDate
		moved.RequestedTime = "2:00 PM"
		moved.ScheduledAt = datetime.MustClock("14:00").On(newDate)

		f.ledger.EXPECT().FindByBookingID(gomock.Any(), previous.BookingID).Return(previous, nil)
		f.resolver.EXPECT().IsSlotAvailable(gomock.Any(), newDate, datetime.MustClock("14:00")).Return(true, nil)
		f.ledger.EXPECT().Reschedule(gomock.Any(), previous.BookingID, newDate, datetime.MustClock("14:00")).Return(moved, nil)
		f.provisioner.EXPECT().DeleteMeeting(gomock.Any(), "111").Return(nil)
		f.provisioner.EXPECT().CreateMeeting(gomock.Any(), gomock.Any()).
			Return(&zoom.Meeting{JoinURL: newRef.URL, MeetingID: newRef.ID, Password: newRef.Password}, nil)
		f.ledger.EXPECT().AttachMeeting(gomock.Any(), previous.BookingID, &newRef).Return(withMeeting(moved, newRef), nil)
		f.store.EXPECT().Enabled().Return(false)
		f.expectNotifications(2, 1)

		res, err := f.svc.Reschedule(context.Background(), previous.BookingID, req)
		require.NoError(t, err)
		f.wait(t)

		assert.Equal(t, previous.BookingID, res.BookingID)
		assert.Equal(t, "March 11, 2025", res.Date)
		assert.Equal(t, "2:00 PM", res.Time)
		assert.ElementsMatch(t, []string{
			"Consultation Rescheduled - Jane Doe",
			"Consultation Rescheduled - March 11, 2025",
		}, subjects(f.sent))
		require.Len(t, f.published, 1)
		assert.Equal(t, service.EventRescheduled, f.published[0].Event)
	})

	t.Run("provisioner outage clears the stale meeting", func(t *testing.T) {
		f := newServiceFixture(t)
		previous := withMeeting(created(t, model.TypeVideo), oldRef)

		f.ledger.EXPECT().FindByBookingID(gomock.Any(), previous.BookingID).Return(previous, nil)
		f.resolver.EXPECT().IsSlotAvailable(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
		f.ledger.EXPECT().Reschedule(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(previous, nil)
		f.provisioner.EXPECT().DeleteMeeting(gomock.Any(), "111").Return(nil)
		f.provisioner.EXPECT().CreateMeeting(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)
		f.ledger.EXPECT().AttachMeeting(gomock.Any(), previous.BookingID, nil).Return(created(t, model.TypeVideo), nil)
		f.store.EXPECT().Enabled().Return(false)
		f.expectNotifications(2, 1)

		_, err := f.svc.Reschedule(context.Background(), previous.BookingID, req)
		require.NoError(t, err)
		f.wait(t)
	})

	t.Run("taken slot leaves the booking as it was", func(t *testing.T) {
		f := newServiceFixture(t)
		previous := created(t, model.TypeVideo)

		f.ledger.EXPECT().FindByBookingID(gomock.Any(), previous.BookingID).Return(previous, nil)
		f.resolver.EXPECT().IsSlotAvailable(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.resolver.EXPECT().AvailableSlots(gomock.Any(), gomock.Any()).Return(openSlots(), nil)

		_, err := f.svc.Reschedule(context.Background(), previous.BookingID, req)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.NotNil(t, failure.GetDetails(err))
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newServiceFixture(t)

		f.ledger.EXPECT().FindByBookingID(gomock.Any(), "BOOK-MISSING").Return(model.Consultation{}, model.ErrNotFound)

		_, err := f.svc.Reschedule(context.Background(), "BOOK-MISSING", req)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("bad time", func(t *testing.T) {
		f := newServiceFixture(t)

		_, err := f.svc.Reschedule(context.Background(), "BOOK-1", dto.RescheduleRequest{NewDate: "2025-03-11", NewTime: "25:00"})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestConsultation_UpdateStatus(t *testing.T) {
	t.Run("completion publishes a status event", func(t *testing.T) {
		f := newServiceFixture(t)
		completed := created(t, model.TypePhone)
		completed.Status = model.StatusCompleted

		f.ledger.EXPECT().UpdateStatus(gomock.Any(), completed.BookingID, model.StatusCompleted, "went well").Return(completed, nil)
		f.expectNotifications(0, 1)

		res, err := f.svc.UpdateStatus(context.Background(), completed.BookingID, dto.UpdateStatusRequest{
			Status: model.StatusCompleted,
			Notes:  "went well",
		})
		require.NoError(t, err)
		f.wait(t)

		assert.Equal(t, model.StatusCompleted, res.Status)
		require.Len(t, f.published, 1)
		assert.Equal(t, service.EventStatusChanged, f.published[0].Event)
	})

	t.Run("invalid transition is a conflict", func(t *testing.T) {
		f := newServiceFixture(t)

		f.ledger.EXPECT().UpdateStatus(gomock.Any(), "BOOK-1", model.StatusConfirmed, "").Return(model.Consultation{}, model.ErrInvalidTransition)

		_, err := f.svc.UpdateStatus(context.Background(), "BOOK-1", dto.UpdateStatusRequest{Status: model.StatusConfirmed})
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newServiceFixture(t)

		f.ledger.EXPECT().UpdateStatus(gomock.Any(), "BOOK-1", model.StatusCompleted, "").Return(model.Consultation{}, model.ErrNotFound)

		_, err := f.svc.UpdateStatus(context.Background(), "BOOK-1", dto.UpdateStatusRequest{Status: model.StatusCompleted})
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestConsultation_Queries(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		f := newServiceFixture(t)
		booking := created(t, model.TypeVideo)

		f.ledger.EXPECT().FindByBookingID(gomock.Any(), booking.BookingID).Return(booking, nil)

		res, err := f.svc.Get(context.Background(), booking.BookingID)
		require.NoError(t, err)
		assert.Equal(t, "2025-03-10", res.Date)
		assert.Equal(t, "10:00 AM", res.Time)
	})

	t.Run("get unknown", func(t *testing.T) {
		f := newServiceFixture(t)

		f.ledger.EXPECT().FindByBookingID(gomock.Any(), "BOOK-MISSING").Return(model.Consultation{}, model.ErrNotFound)

		_, err := f.svc.Get(context.Background(), "BOOK-MISSING")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("upcoming", func(t *testing.T) {
		f := newServiceFixture(t)

		f.ledger.EXPECT().Upcoming(gomock.Any(), 14).Return([]model.Consultation{created(t, model.TypeVideo)}, nil)

		res, err := f.svc.Upcoming(context.Background(), 14)
		require.NoError(t, err)
		assert.Len(t, res, 1)
	})

	t.Run("stats", func(t *testing.T) {
		f := newServiceFixture(t)

		f.ledger.EXPECT().Stats(gomock.Any()).Return(model.Stats{Total: 10, Upcoming: 3, Completed: 5, Cancelled: 2}, nil)

		res, err := f.svc.Stats(context.Background())
		require.NoError(t, err)
		assert.Equal(t, dto.StatsResponse{
			TotalConsultations:     10,
			UpcomingConsultations:  3,
			CompletedConsultations: 5,
			CancelledConsultations: 2,
		}, res)
	})

	t.Run("slots", func(t *testing.T) {
		f := newServiceFixture(t)
		want := availabilityDto.SlotsResponse{Date: "2025-03-10"}

		f.resolver.EXPECT().Lookup(gomock.Any(), "2025-03-10").Return(want, nil)

		res, err := f.svc.Slots(context.Background(), "2025-03-10")
		require.NoError(t, err)
		assert.Equal(t, want, res)
	})
}
