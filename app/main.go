package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"crm-dashboard/internal/controllers"
	"crm-dashboard/internal/listeners"
	"crm-dashboard/internal/repositories"
	"crm-dashboard/internal/routes"
	"crm-dashboard/internal/services"
	"crm-dashboard/pkg/config"
	"crm-dashboard/pkg/customvalidator"
	apperrors "crm-dashboard/pkg/errors"
	"crm-dashboard/pkg/eventbus"
	applogger "crm-dashboard/pkg/logger"
	"crm-dashboard/pkg/mailer"
	appmiddleware "crm-dashboard/pkg/middleware"
	"crm-dashboard/pkg/service"
	"crm-dashboard/pkg/utils"
	"crm-dashboard/pkg/websocket"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 1. Конфиг и логгер
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Echo и middleware
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Internal server error", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOriginFunc: func(origin string) (bool, error) {
			return slices.Contains(cfg.Server.AllowedOrigins, origin), nil
		},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
		ExposeHeaders:    []string{"Content-Disposition", echo.HeaderXRequestID},
	}))
	e.Use(appmiddleware.InjectLogger(logger))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("Ошибка регистрации кастомных правил валидации", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	// 3. Хранилище сессий: Redis, а без адреса - память процесса
	var cache repositories.CacheRepositoryInterface
	if cfg.Redis.Address != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		if _, err := redisClient.Ping(ctx).Result(); err != nil {
			logger.Fatal("не удалось подключиться к Redis", zap.Error(err), zap.String("address", cfg.Redis.Address))
		}
		cache = repositories.NewRedisCacheRepository(redisClient)
	} else {
		logger.Warn("REDIS_ADDRESS пуст, сессии хранятся в памяти процесса")
		cache = repositories.NewMemoryCacheRepository()
	}

	// 4. Сессии, клиент бэкенда, сервисы
	bus := eventbus.New(logger)
	jwtSvc := service.NewJWTService(cfg.Session.JWTSecret, logger)
	sessions := services.NewSessionService(cache, jwtSvc, bus, cfg.Session.FallbackTTL, logger.Named("session"))

	loggers := &routes.Loggers{
		Main:   logger,
		Auth:   logger.Named("auth"),
		Ticket: logger.Named("ticket"),
		Job:    logger.Named("job"),
	}
	client := routes.NewBackendClient(cfg.Backend, sessions, logger)
	svc := routes.NewServices(client, sessions, mailer.NewSMTPMailer(cfg.Mail, logger), cfg, loggers)

	// 5. Реалтайм: хаб, слушатели, уведомления о встречах
	hub := websocket.NewHub(logger)
	go hub.Run(ctx)

	listeners.NewWebSocketListener(hub, logger).Register(bus, sessions)
	notifier := listeners.NewMeetingNotifier(hub, sessions, svc.Calendar, cache, bus, cfg.Notify, logger)
	go notifier.Start(ctx)

	// 6. Роуты
	dedup := controllers.NewRequestDeduplicator(cfg.Server.SubmitCooldown)
	go dedup.Cleanup(ctx, time.Minute)

	authMW := appmiddleware.NewAuthMiddleware(sessions, cfg.Session.CookieName, logger)
	routes.InitRouter(e, svc, authMW, hub, dedup, cfg, loggers)

	// 7. Запуск и плавная остановка
	go func() {
		logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Получен сигнал остановки")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка при остановке сервера", zap.Error(err))
	}
	bus.Wait()
	logger.Info("Сервер остановлен")
}
