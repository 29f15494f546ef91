package views

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"time"

	"crm-dashboard/internal/dto"
)

const (
	UrgencyOverdue = "overdue"
	UrgencySoon    = "soon"
	UrgencyLater   = "later"
)

// UpcomingLimit - сколько ближайших встреч показывает дашборд.
const UpcomingLimit = 10

// DayKey - дата YYYY-MM-DD момента t в зоне loc.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(time.DateOnly)
}

// MonthRangeUTC - полуоткрытый интервал [1-е 00:00Z, 1-е следующего месяца 00:00Z).
func MonthRangeUTC(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// MonthRangeIn - те же границы, но по полуночи в зоне loc, переведённые в UTC.
func MonthRangeIn(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return from.UTC(), from.AddDate(0, 1, 0).UTC()
}

// MinutesUntil округляет как Math.round: половина уходит вверх.
func MinutesUntil(at, now time.Time) int {
	return int(math.Floor(at.Sub(now).Minutes() + 0.5))
}

// Urgency возвращает бейдж и подпись. Между -5 и 0 минут бейджа нет.
func Urgency(mins int) (string, string) {
	switch {
	case mins < -5:
		return UrgencyOverdue, fmt.Sprintf("%dm overdue", -mins)
	case mins >= 0 && mins <= 60:
		return UrgencySoon, fmt.Sprintf("In %dm", mins)
	case mins > 60 && mins <= 240:
		return UrgencyLater, fmt.Sprintf("In %dh", int(math.Floor(float64(mins)/60+0.5)))
	}
	return "", ""
}

// MeetingCard считает поля отображения. Бейдж срочности только у SCHEDULED.
func MeetingCard(m dto.CalendarMeeting, now time.Time, loc *time.Location) dto.MeetingCardDTO {
	if loc == nil {
		loc = time.UTC
	}
	card := dto.MeetingCardDTO{
		CalendarMeeting: m,
		DayKey:          DayKey(m.MeetingAtUtc, loc),
		LocalTime:       m.MeetingAtUtc.In(loc).Format("15:04"),
		MinutesUntil:    MinutesUntil(m.MeetingAtUtc, now),
	}
	if m.Status == dto.MeetingStatusScheduled {
		card.Urgency, card.UrgencyLabel = Urgency(card.MinutesUntil)
	}
	return card
}

func byMeetingTime(a, b dto.CalendarMeeting) int {
	if c := a.MeetingAtUtc.Compare(b.MeetingAtUtc); c != 0 {
		return c
	}
	return cmp.Compare(a.MeetingID, b.MeetingID)
}

// GroupByDay раскладывает встречи по локальным дням; дни по возрастанию, внутри дня по времени.
func GroupByDay(meetings []dto.CalendarMeeting, now time.Time, loc *time.Location) []dto.CalendarDayDTO {
	sorted := slices.Clone(meetings)
	slices.SortStableFunc(sorted, byMeetingTime)

	days := make([]dto.CalendarDayDTO, 0)
	for _, m := range sorted {
		card := MeetingCard(m, now, loc)
		if n := len(days); n > 0 && days[n-1].Day == card.DayKey {
			days[n-1].Meetings = append(days[n-1].Meetings, card)
			continue
		}
		days = append(days, dto.CalendarDayDTO{Day: card.DayKey, Meetings: []dto.MeetingCardDTO{card}})
	}
	return days
}

// MeetingDays - отсортированное множество дней, в которых есть встречи.
func MeetingDays(meetings []dto.CalendarMeeting, loc *time.Location) []string {
	seen := make(map[string]struct{}, len(meetings))
	out := make([]string, 0)
	for _, m := range meetings {
		key := DayKey(m.MeetingAtUtc, loc)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}
	slices.Sort(out)
	return out
}

// Upcoming - встречи не раньше now, ближайшие первыми, не больше limit.
func Upcoming(meetings []dto.CalendarMeeting, now time.Time, limit int) []dto.CalendarMeeting {
	out := make([]dto.CalendarMeeting, 0)
	for _, m := range meetings {
		if !m.MeetingAtUtc.Before(now) {
			out = append(out, m)
		}
	}
	slices.SortStableFunc(out, byMeetingTime)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DueSoon - запланированные встречи того же локального дня, до начала которых от 0 до window.
func DueSoon(meetings []dto.CalendarMeeting, now time.Time, loc *time.Location, window time.Duration) []dto.CalendarMeeting {
	today := DayKey(now, loc)
	limit := int(window / time.Minute)
	out := make([]dto.CalendarMeeting, 0)
	for _, m := range meetings {
		if m.Status != dto.MeetingStatusScheduled || DayKey(m.MeetingAtUtc, loc) != today {
			continue
		}
		if mins := MinutesUntil(m.MeetingAtUtc, now); mins >= 0 && mins <= limit {
			out = append(out, m)
		}
	}
	return out
}

// MonthView собирает календарь месяца. Из meetings берутся только попавшие в [from, to).
func MonthView(meetings []dto.CalendarMeeting, year int, month time.Month, from, to, now time.Time, loc *time.Location) dto.CalendarMonthDTO {
	inRange := make([]dto.CalendarMeeting, 0, len(meetings))
	for _, m := range meetings {
		if !m.MeetingAtUtc.Before(from) && m.MeetingAtUtc.Before(to) {
			inRange = append(inRange, m)
		}
	}
	return dto.CalendarMonthDTO{
		Year:        year,
		Month:       int(month),
		Timezone:    loc.String(),
		Today:       DayKey(now, loc),
		FromUtc:     from,
		ToUtc:       to,
		Days:        GroupByDay(inRange, now, loc),
		MeetingDays: MeetingDays(inRange, loc),
	}
}
