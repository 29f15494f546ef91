package events

import "crm-dashboard/internal/dto"

// MeetingSoonEvent - встреча начнётся в пределах окна уведомления. Публикуется один раз на сессию.
type MeetingSoonEvent struct {
	SessionID string
	Meeting   dto.MeetingSoonDTO
}

func (e MeetingSoonEvent) Name() string {
	return "meeting.soon"
}
