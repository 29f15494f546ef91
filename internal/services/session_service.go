package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"crm-dashboard/internal/dto"
	"crm-dashboard/internal/events"
	"crm-dashboard/internal/repositories"
	apperrors "crm-dashboard/pkg/errors"
	"crm-dashboard/pkg/eventbus"
	"crm-dashboard/pkg/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:"

type SessionServiceInterface interface {
	// Init восстанавливает сессию в начале запроса; истекшая удаляется.
	Init(ctx context.Context, sessionID string) (*dto.Session, error)
	Get(ctx context.Context, sessionID string) (*dto.Session, error)
	Save(ctx context.Context, auth dto.AuthData) (*dto.Session, error)
	// Clear возвращает true, только если запись действительно была удалена этим вызовом.
	Clear(ctx context.Context, sessionID, reason string) (bool, error)
	Subscribe(fn func(ctx context.Context, event events.SessionEvent))
}

type SessionService struct {
	cache       repositories.CacheRepositoryInterface
	jwtService  service.JWTService
	bus         *eventbus.Bus
	fallbackTTL time.Duration
	now         func() time.Time
	logger      *zap.Logger
}

func NewSessionService(
	cache repositories.CacheRepositoryInterface,
	jwtService service.JWTService,
	bus *eventbus.Bus,
	fallbackTTL time.Duration,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		cache:       cache,
		jwtService:  jwtService,
		bus:         bus,
		fallbackTTL: fallbackTTL,
		now:         time.Now,
		logger:      logger,
	}
}

func sessionKey(id string) string { return sessionKeyPrefix + id }

func (s *SessionService) Get(ctx context.Context, sessionID string) (*dto.Session, error) {
	if sessionID == "" {
		return nil, apperrors.ErrSessionNotFound
	}
	raw, err := s.cache.Get(ctx, sessionKey(sessionID))
	if err != nil {
		if errors.Is(err, repositories.ErrCacheMiss) {
			return nil, apperrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var session dto.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		// Битая запись равносильна отсутствию сессии.
		s.logger.Warn("Повреждённая запись сессии", zap.String("sessionID", sessionID), zap.Error(err))
		_, _ = s.cache.Del(ctx, sessionKey(sessionID))
		return nil, apperrors.ErrSessionNotFound
	}
	return &session, nil
}

func (s *SessionService) Init(ctx context.Context, sessionID string) (*dto.Session, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.IsExpired(s.now()) || session.Auth.Token == "" {
		if _, err := s.Clear(ctx, sessionID, events.ReasonExpired); err != nil {
			s.logger.Error("Не удалось удалить истекшую сессию", zap.String("sessionID", sessionID), zap.Error(err))
		}
		return nil, apperrors.ErrSessionExpired
	}
	return session, nil
}

func (s *SessionService) Save(ctx context.Context, auth dto.AuthData) (*dto.Session, error) {
	now := s.now().UTC()
	session := &dto.Session{
		ID:        uuid.NewString(),
		Auth:      auth,
		CreatedAt: now,
		ExpiresAt: s.expiresAt(auth, now),
	}

	raw, err := json.Marshal(session)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, sessionKey(session.ID), raw, session.ExpiresAt.Sub(now)); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info("Сессия создана",
		zap.String("sessionID", session.ID),
		zap.Uint64("adminID", auth.AdminID),
		zap.Time("expiresAt", session.ExpiresAt),
	)
	s.bus.Publish(ctx, events.SessionEvent{Kind: events.SessionSaved, SessionID: session.ID, AdminID: auth.AdminID})
	return session, nil
}

// expiresAt: expiresInMs из ответа логина, затем exp из JWT, затем значение из конфигурации.
func (s *SessionService) expiresAt(auth dto.AuthData, now time.Time) time.Time {
	if auth.ExpiresInMs > 0 {
		return now.Add(time.Duration(auth.ExpiresInMs) * time.Millisecond)
	}
	if exp, ok := s.jwtService.ExpiresAt(auth.Token); ok && exp.After(now) {
		return exp.UTC()
	}
	return now.Add(s.fallbackTTL)
}

func (s *SessionService) Clear(ctx context.Context, sessionID, reason string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}
	var adminID uint64
	if session, err := s.Get(ctx, sessionID); err == nil {
		adminID = session.Auth.AdminID
	}

	removed, err := s.cache.Del(ctx, sessionKey(sessionID))
	if err != nil {
		return false, fmt.Errorf("clear session: %w", err)
	}
	if removed == 0 {
		return false, nil
	}

	s.logger.Info("Сессия завершена", zap.String("sessionID", sessionID), zap.String("reason", reason))
	s.bus.Publish(ctx, events.SessionEvent{Kind: events.SessionCleared, SessionID: sessionID, AdminID: adminID, Reason: reason})
	return true, nil
}

// Subscribe подписывает fn на сохранение и удаление сессий.
func (s *SessionService) Subscribe(fn func(ctx context.Context, event events.SessionEvent)) {
	listener := func(ctx context.Context, e eventbus.Event) error {
		if event, ok := e.(events.SessionEvent); ok {
			fn(ctx, event)
		}
		return nil
	}
	s.bus.Subscribe(events.SessionEvent{Kind: events.SessionSaved}.Name(), listener)
	s.bus.Subscribe(events.SessionEvent{Kind: events.SessionCleared}.Name(), listener)
}
