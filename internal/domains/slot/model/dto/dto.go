package dto

import (
	"agency/internal/domains/slot/model"
	"agency/shared"
	"agency/shared/datetime"
	gDto "agency/shared/dto"
	gModel "agency/shared/model"
	"agency/shared/timezone"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow   = errors.New("start time must be before end time")
	ErrMissingWindow   = errors.New("start and end time are required unless the block is all day")
	ErrUnexpectedTimes = errors.New("an all day block cannot carry start or end time")
)

type CreateSlotRequest struct {
	DayOfWeek *int   `json:"dayOfWeek" validate:"required,min=0,max=6"`
	StartTime string `json:"startTime" validate:"required,clocktime"`
	EndTime   string `json:"endTime"   validate:"required,clocktime"`
}

func (c *CreateSlotRequest) ToModel(user string) (model.TimeSlot, error) {
	start, err := datetime.ParseClock(c.StartTime)
	if err != nil {
		return model.TimeSlot{}, fmt.Errorf("failed to parse start time: %w", err)
	}

	end, err := datetime.ParseClock(c.EndTime)
	if err != nil {
		return model.TimeSlot{}, fmt.Errorf("failed to parse end time: %w", err)
	}

	if start >= end {
		return model.TimeSlot{}, ErrInvalidWindow
	}

	now := timezone.Now()

	return model.TimeSlot{
		ID:        uuid.NewString(),
		DayOfWeek: *c.DayOfWeek,
		StartTime: start.String(),
		EndTime:   end.String(),
		IsActive:  true,
		Metadata:  gModel.NewMetadata(user, now),
	}, nil
}

type UpdateSlotRequest struct {
	IsActive *bool `db:"is_active" json:"isActive" validate:"required"`
}

type SlotResponse struct {
	ID        string `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Display   string `json:"display"`
	IsActive  bool   `json:"isActive"`
	gDto.Metadata
}

func (r *SlotResponse) FromModel(mod model.TimeSlot) {
	r.ID = mod.ID
	r.DayOfWeek = mod.DayOfWeek
	r.StartTime = mod.StartTime
	r.EndTime = mod.EndTime
	r.IsActive = mod.IsActive

	if start, err := mod.Start(); err == nil {
		r.StartTime = start.String()
		r.Display = start.Display()
	}

	if end, err := datetime.ParseClock(mod.EndTime); err == nil {
		r.EndTime = end.String()
	}

	r.Metadata = gDto.MetadataFrom(mod.Metadata)
}

type GetSlotsResponse struct {
	Slots     []SlotResponse `json:"slots"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetSlotsResponse) FromModels(models []model.TimeSlot, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Slots = make([]SlotResponse, len(models))
	for i, mod := range models {
		r.Slots[i].FromModel(mod)
	}
}

type SeedDefaultsResponse struct {
	Inserted int `json:"inserted"`
}

type BlockDateRequest struct {
	Date      string `json:"date"      validate:"required,isodate"`
	Reason    string `json:"reason"    validate:"omitempty,max=255"`
	AllDay    *bool  `json:"allDay"    validate:"required"`
	StartTime string `json:"startTime" validate:"omitempty,clocktime"`
	EndTime   string `json:"endTime"   validate:"omitempty,clocktime"`
}

// ToModel enforces that timed blocks carry an ordered window.
func (b *BlockDateRequest) ToModel(user string) (model.BlockedDate, error) {
	date, err := datetime.ParseDate(b.Date)
	if err != nil {
		return model.BlockedDate{}, fmt.Errorf("failed to parse date: %w", err)
	}

	now := timezone.Now()
	mod := model.BlockedDate{
		ID:       uuid.NewString(),
		Date:     date,
		AllDay:   *b.AllDay,
		Metadata: gModel.NewMetadata(user, now),
	}

	if b.Reason != "" {
		reason := b.Reason
		mod.Reason = &reason
	}

	if mod.AllDay {
		if b.StartTime != "" || b.EndTime != "" {
			return model.BlockedDate{}, ErrUnexpectedTimes
		}

		return mod, nil
	}

	if b.StartTime == "" || b.EndTime == "" {
		return model.BlockedDate{}, ErrMissingWindow
	}

	start, err := datetime.ParseClock(b.StartTime)
	if err != nil {
		return model.BlockedDate{}, fmt.Errorf("failed to parse start time: %w", err)
	}

	end, err := datetime.ParseClock(b.EndTime)
	if err != nil {
		return model.BlockedDate{}, fmt.Errorf("failed to parse end time: %w", err)
	}

	if start >= end {
		return model.BlockedDate{}, ErrInvalidWindow
	}

	startStr, endStr := start.String(), end.String()
	mod.StartTime = &startStr
	mod.EndTime = &endStr

	return mod, nil
}

type BlockedDateResponse struct {
	ID        string  `json:"id"`
	Date      string  `json:"date"`
	Reason    *string `json:"reason,omitempty"`
	AllDay    bool    `json:"allDay"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	gDto.Metadata
}

func (r *BlockedDateResponse) FromModel(mod model.BlockedDate) {
	r.ID = mod.ID
	r.Date = datetime.FormatDate(datetime.CalendarDay(mod.Date))
	r.Reason = mod.Reason
	r.AllDay = mod.AllDay
	r.StartTime = normalizeClock(mod.StartTime)
	r.EndTime = normalizeClock(mod.EndTime)
	r.Metadata = gDto.MetadataFrom(mod.Metadata)
}

func FromBlockedDates(models []model.BlockedDate) []BlockedDateResponse {
	res := make([]BlockedDateResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

func normalizeClock(value *string) *string {
	if value == nil {
		return nil
	}

	clock, err := datetime.ParseClock(*value)
	if err != nil {
		return value
	}

	formatted := clock.String()

	return &formatted
}
