package customvalidator

import (
	"slices"
	"time"

	"crm-dashboard/internal/dto"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations регистрирует доменные правила в переданном валидаторе.
func RegisterCustomValidations(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"iana_tz":          isIANATimezone,
		"job_category":     oneOf(dto.JobCategories),
		"job_status":       oneOf([]dto.JobStatus{dto.JobStatusDraft, dto.JobStatusPublished, dto.JobStatusClosed}),
		"ticket_status":    oneOf(dto.TicketStatuses),
		"meeting_status":   oneOf([]dto.MeetingStatus{dto.MeetingStatusScheduled, dto.MeetingStatusDone, dto.MeetingStatusCanceled}),
		"participant_type": oneOf([]dto.ParticipantType{dto.ParticipantTypeAdmin, dto.ParticipantTypeCompanyContact, dto.ParticipantTypeExternal}),
		"ymd":              isYMD,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

func isIANATimezone(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	_, err := time.LoadLocation(s)
	return err == nil
}

func isYMD(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}

func oneOf[T ~string](allowed []T) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(allowed, T(fl.Field().String()))
	}
}
