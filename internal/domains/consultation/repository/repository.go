package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Consultation=MockConsultationRepository

import (
	"agency/infras/otel"
	"agency/infras/postgres"
	"agency/internal/domains/consultation/model"
	"agency/shared"
	"agency/shared/constant"
	"agency/shared/datetime"
	gDto "agency/shared/dto"
	gRepo "agency/shared/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// ActiveSlotIndex is the partial unique index over (requested_date, requested_time) for non-cancelled rows.
const ActiveSlotIndex = "consultations_active_slot_idx"

const (
	argCurrentStatus = "current_status"
	argFrom          = "scheduled_from"
	argTo            = "scheduled_to"
)

// Consultation is the booking ledger store. Writes that would break the one active booking per slot
// rule fail with model.ErrSlotTaken.
type Consultation interface {
	Create(ctx context.Context, consultation model.Consultation) error
	FindByBookingID(ctx context.Context, bookingID string) (model.Consultation, error)
	ActiveTimesOn(ctx context.Context, date time.Time) ([]string, error)
	UpdateStatus(ctx context.Context, updated model.Consultation, from string) error
	Reschedule(ctx context.Context, updated model.Consultation) error
	AttachMeeting(ctx context.Context, updated model.Consultation) error
	Upcoming(ctx context.Context, from, to time.Time) ([]model.Consultation, error)
	Stats(ctx context.Context, now time.Time) (model.Stats, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Consultation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Consultation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Consultation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Create(ctx context.Context, consultation model.Consultation) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".consultation.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = r.Insert(ctx, consultation); err != nil {
		return mapWriteError(err)
	}

	return nil
}

func (r *repositoryImpl) FindByBookingID(ctx context.Context, bookingID string) (res model.Consultation, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".consultation.FindByBookingID")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = r.Get(ctx, byBookingID(bookingID))
	if err != nil {
		return res, fmt.Errorf("failed to find consultation: %w", err)
	}

	if res.ID == constant.Empty {
		return res, model.ErrNotFound
	}

	return res, nil
}

func (r *repositoryImpl) ActiveTimesOn(ctx context.Context, date time.Time) (res []string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".consultation.ActiveTimesOn")
	defer scope.End()
	defer scope.TraceIfError(err)

	rows, err := r.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRequestedDate, Value: datetime.FormatDate(date), Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusCancelled, Operator: gDto.FilterOperatorNotEq, Table: model.TableName},
		},
	}, model.FieldRequestedTime)
	if err != nil {
		return nil, fmt.Errorf("failed to get booked times: %w", err)
	}

	res = make([]string, 0, len(rows))
	for _, row := range rows {
		res = append(res, row.RequestedTime)
	}

	return res, nil
}

func (r *repositoryImpl) UpdateStatus(ctx context.Context, updated model.Consultation, from string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".consultation.UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := byBookingID(updated.BookingID)
	filter.Operator = gDto.FilterGroupOperatorAnd
	filter.Filters = append(filter.Filters, gDto.Filter{ArgName: argCurrentStatus, Field: model.FieldStatus, Value: from, Operator: gDto.FilterOperatorEq, Table: model.TableName})

	affected, err := r.UpdateAffected(ctx, map[string]any{
		model.FieldStatus:        updated.Status,
		model.FieldNotes:         updated.Notes,
		constant.FieldModifiedAt: updated.ModifiedAt,
		constant.FieldModifiedBy: updated.ModifiedBy,
	}, filter)
	if err != nil {
		return fmt.Errorf("failed to update consultation status: %w", err)
	}

	if affected == 0 {
		return model.ErrInvalidTransition
	}

	return nil
}

func (r *repositoryImpl) Reschedule(ctx context.Context, updated model.Consultation) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".consultation.Reschedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := byBookingID(updated.BookingID)
	filter.Operator = gDto.FilterGroupOperatorAnd
	filter.Filters = append(filter.Filters, gDto.Filter{
		ArgName:  argCurrentStatus,
		Field:    model.FieldStatus,
		Value:    []string{model.StatusPending, model.StatusConfirmed},
		Operator: gDto.FilterOperatorIn,
		Table:    model.TableName,
	})

	affected, err := r.UpdateAffected(ctx, map[string]any{
		model.FieldRequestedDate: datetime.FormatDate(updated.Date()),
		model.FieldRequestedTime: updated.RequestedTime,
		model.FieldScheduledAt:   updated.ScheduledAt,
		model.FieldNotes:         updated.Notes,
		constant.FieldModifiedAt: updated.ModifiedAt,
		constant.FieldModifiedBy: updated.ModifiedBy,
	}, filter)
	if err != nil {
		return mapWriteError(err)
	}

	if affected == 0 {
		return model.ErrInvalidTransition
	}

	return nil
}

func (r *repositoryImpl) AttachMeeting(ctx context.Context, updated model.Consultation) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".consultation.AttachMeeting")
	defer scope.End()
	defer scope.TraceIfError(err)

	affected, err := r.UpdateAffected(ctx, map[string]any{
		model.FieldMeetingURL:      updated.MeetingURL,
		model.FieldMeetingID:       updated.MeetingID,
		model.FieldMeetingPassword: updated.MeetingPassword,
		model.FieldMeetingHostURL:  updated.MeetingHostURL,
		model.FieldNotes:           updated.Notes,
		constant.FieldModifiedAt:   updated.ModifiedAt,
		constant.FieldModifiedBy:   updated.ModifiedBy,
	}, byBookingID(updated.BookingID))
	if err != nil {
		return fmt.Errorf("failed to attach meeting: %w", err)
	}

	if affected == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *repositoryImpl) Upcoming(ctx context.Context, from, to time.Time) (res []model.Consultation, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".consultation.Upcoming")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = r.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldScheduledAt, SortDir: gDto.SortDirAsc}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, Value: model.StatusConfirmed, Operator: gDto.FilterOperatorEq},
			gDto.Filter{ArgName: argFrom, Field: model.FieldScheduledAt, Value: from, Operator: gDto.FilterOperatorGreaterEq},
			gDto.Filter{ArgName: argTo, Field: model.FieldScheduledAt, Value: to, Operator: gDto.FilterOperatorLessEq},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get upcoming consultations: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Stats(ctx context.Context, now time.Time) (res model.Stats, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".consultation.Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	counts := []struct {
		target *int
		filter gDto.FilterGroup
	}{
		{target: &res.Total, filter: gDto.FilterGroup{}},
		{target: &res.Upcoming, filter: gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{Field: model.FieldStatus, Value: model.StatusConfirmed, Operator: gDto.FilterOperatorEq},
				gDto.Filter{ArgName: argFrom, Field: model.FieldScheduledAt, Value: now, Operator: gDto.FilterOperatorGreaterEq},
			},
		}},
		{target: &res.Completed, filter: byStatus(model.StatusCompleted)},
		{target: &res.Cancelled, filter: byStatus(model.StatusCancelled)},
	}

	for _, count := range counts {
		*count.target, err = r.Count(ctx, count.filter)
		if err != nil {
			return res, fmt.Errorf("failed to count consultations: %w", err)
		}
	}

	return res, nil
}

func byBookingID(bookingID string) gDto.FilterGroup {
	return shared.FilterByID(bookingID, model.FieldBookingID, model.TableName)
}

func byStatus(status string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldStatus, Value: status, Operator: gDto.FilterOperatorEq},
		},
	}
}

// mapWriteError turns a violation of the active slot index into model.ErrSlotTaken.
func mapWriteError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation && pqErr.Constraint == ActiveSlotIndex {
		return model.ErrSlotTaken
	}

	return fmt.Errorf("failed to write consultation: %w", err)
}
