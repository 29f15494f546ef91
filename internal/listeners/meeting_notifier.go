package listeners

import (
	"context"
	"fmt"
	"time"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/events"
	"crm-dashboard/internal/repositories"
	"crm-dashboard/internal/services"
	"crm-dashboard/internal/views"
	"crm-dashboard/pkg/config"
	"crm-dashboard/pkg/eventbus"
	"crm-dashboard/pkg/utils"

	"go.uber.org/zap"
)

const notifiedKeyPrefix = "notified:"

// SessionSource отдаёт сессии, которым сейчас есть кого уведомлять.
type SessionSource interface {
	Sessions() []string
}

// MeetingNotifier раз в PollInterval проверяет встречи сегодняшнего дня
// для каждой подключённой сессии и публикует meeting.soon.
// Одна встреча уведомляется в сессии один раз: ключ живёт столько же, сколько сессия.
type MeetingNotifier struct {
	source   SessionSource
	sessions services.SessionServiceInterface
	calendar services.CalendarServiceInterface
	cache    repositories.CacheRepositoryInterface
	bus      *eventbus.Bus
	cfg      config.NotifyConfig
	now      func() time.Time
	logger   *zap.Logger
}

func NewMeetingNotifier(
	source SessionSource,
	sessions services.SessionServiceInterface,
	calendar services.CalendarServiceInterface,
	cache repositories.CacheRepositoryInterface,
	bus *eventbus.Bus,
	cfg config.NotifyConfig,
	logger *zap.Logger,
) *MeetingNotifier {
	return &MeetingNotifier{
		source:   source,
		sessions: sessions,
		calendar: calendar,
		cache:    cache,
		bus:      bus,
		cfg:      cfg,
		now:      time.Now,
		logger:   logger.Named("meeting-notifier"),
	}
}

// Start блокируется до отмены ctx.
func (n *MeetingNotifier) Start(ctx context.Context) {
	if n.cfg.PollInterval <= 0 {
		n.logger.Info("Уведомления о встречах выключены")
		return
	}
	ticker := time.NewTicker(n.cfg.PollInterval)
	defer ticker.Stop()

	n.logger.Info("Уведомления о встречах запущены",
		zap.Duration("interval", n.cfg.PollInterval),
		zap.Duration("window", n.cfg.Window),
	)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n.Tick(ctx)
		}
	}
}

// Tick - один проход по подключённым сессиям.
func (n *MeetingNotifier) Tick(ctx context.Context) {
	loc, err := n.calendar.Location("")
	if err != nil {
		n.logger.Error("Бизнес-зона не загружена", zap.Error(err))
		return
	}
	now := n.now()
	for _, sessionID := range n.source.Sessions() {
		if ctx.Err() != nil {
			return
		}
		if err := n.checkSession(ctx, sessionID, now, loc); err != nil {
			n.logger.Warn("Проверка встреч не удалась", zap.String("sessionID", sessionID), zap.Error(err))
		}
	}
}

func (n *MeetingNotifier) checkSession(ctx context.Context, sessionID string, now time.Time, loc *time.Location) error {
	session, err := n.sessions.Init(ctx, sessionID)
	if err != nil {
		return err
	}
	ttl := session.ExpiresAt.Sub(now)
	if ttl <= 0 {
		return nil
	}

	meetings, err := n.calendar.GetDay(utils.WithSession(ctx, session), now, loc)
	if err != nil {
		return err
	}

	for _, m := range views.DueSoon(meetings, now, loc, n.cfg.Window) {
		key := fmt.Sprintf("%s%s:%d", notifiedKeyPrefix, sessionID, m.MeetingID)
		first, err := n.cache.SetNX(ctx, key, now.UTC().Format(time.RFC3339), ttl)
		if err != nil {
			return err
		}
		if !first {
			continue
		}
		n.bus.Publish(ctx, events.MeetingSoonEvent{
			SessionID: sessionID,
			Meeting: dto.MeetingSoonDTO{
				MeetingID:    m.MeetingID,
				TicketID:     m.TicketID,
				MeetingAtUtc: m.MeetingAtUtc,
				MinutesUntil: views.MinutesUntil(m.MeetingAtUtc, now),
				CompanyName:  m.CompanyName,
				Agenda:       m.Agenda,
			},
		})
	}
	return nil
}
