package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/savelyeva-d/auth-core/internal/config"
	"github.com/savelyeva-d/auth-core/internal/events"
	"github.com/savelyeva-d/auth-core/internal/lockout"
	"github.com/savelyeva-d/auth-core/internal/ratelimit"
	"github.com/savelyeva-d/auth-core/internal/security"
	"github.com/savelyeva-d/auth-core/internal/service"
	"github.com/savelyeva-d/auth-core/internal/storage"
	"github.com/savelyeva-d/auth-core/internal/storage/postgres"
	transport "github.com/savelyeva-d/auth-core/internal/transport/http"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting application", "env", cfg.Env)

	// Корневой контекст по сигналам.
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	// Подключение к БД c таймаутом.
	dbCtx, dbCancel := context.WithTimeout(rootCtx, 10*time.Second)
	str, err := postgres.New(dbCtx, cfg.DB.DatabaseURL)
	dbCancel()
	if err != nil {
		log.Error("postgres_connect_failed", slog.String("err", err.Error()))
		rootCancel()
		os.Exit(1)
	}
	log.Info("postgres_connected")

	// Счётчик блокировок (Redis, fail-fast ping внутри).
	counter, err := lockout.New(cfg.Redis.RedisURL, "", cfg.Lockout.Threshold, cfg.Lockout.Window)
	if err != nil {
		log.Error("lockout_counter_failed", slog.String("err", err.Error()))
		rootCancel()
		str.Close()
		os.Exit(1)
	}
	log.Info("lockout_counter_ready")

	// Лимитер частоты для абуз-чувствительных эндпоинтов.
	var limiter ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		limiter, err = ratelimit.New(cfg.Redis.RedisURL, "", cfg.RateLimit.Limit, cfg.RateLimit.Window)
		if err != nil {
			log.Error("rate_limiter_failed", slog.String("err", err.Error()))
			rootCancel()
			str.Close()
			_ = counter.Close()
			os.Exit(1)
		}
	}

	// Паблишер доменных событий; без брокеров — заглушка.
	var publisher events.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafka(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		log.Info("kafka_publisher_ready", slog.String("topic", cfg.Kafka.Topic))
	} else {
		publisher = events.NewNop()
		log.Warn("kafka_brokers_not_configured: events disabled")
	}

	// Шифрование TOTP-секретов на хранении.
	cipher, err := security.NewCipher(cfg.MFA.SeedKeyHex)
	if err != nil {
		log.Error("seed_cipher_failed", slog.String("err", err.Error()))
		rootCancel()
		str.Close()
		_ = counter.Close()
		os.Exit(1)
	}
	if !cipher.Enabled() {
		log.Warn("seed_cipher_disabled: mfa secrets stored unencrypted")
	}

	// Сервис.
	srvc := service.New(str, counter, publisher, cipher, cfg.Auth, cfg.MFA)
	log.Info("service_initialized")

	var ready int32 // 0 — not ready; 1 — ready

	// Служебный листенер: liveness/readiness/метрики.
	opsMux := http.NewServeMux()
	opsMux.HandleFunc("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	opsMux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if atomic.LoadInt32(&ready) == 1 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
			return
		}
		http.Error(w, "not ready", http.StatusServiceUnavailable)
	})

	opsMux.Handle("/metrics", promhttp.Handler())

	opsSrv := &http.Server{
		Addr:              cfg.Ops.Addr(),
		Handler:           opsMux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("ops_listen_start", "addr", opsSrv.Addr)
		if err := opsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("ops_serve_failed", slog.String("err", err.Error()))
		}
	}()

	// Публичный API.
	router := transport.NewRouter(srvc, transport.Options{
		Logger:  log,
		Timeout: cfg.Timeouts.Service,
		Limiter: limiter,
	})

	apiSrv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Фоновая очистка просроченных refresh- и одноразовых токенов.
	startTokenJanitor(rootCtx, str, log, 30*time.Minute)

	serveErrCh := make(chan error, 1)
	go func() {
		log.Info("http_listen_start", slog.String("addr", apiSrv.Addr))
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	// Сервис готов: readiness=1.
	atomic.StoreInt32(&ready, 1)

	// Ожидание сигнала завершения или фатальной ошибки сервера.
	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	// Снимаем ready до остановки API: балансировщик перестаёт слать трафик.
	atomic.StoreInt32(&ready, 0)

	// Graceful stop с таймаутом.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := apiSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_force_stop", slog.String("err", err.Error()))
	}
	shutdownCancel()

	_ = opsSrv.Shutdown(context.Background())

	// Явная очистка перед выходом.
	rootCancel()
	if err := publisher.Close(); err != nil {
		log.Warn("publisher_close_failed", slog.String("err", err.Error()))
	}
	if limiter != nil {
		_ = limiter.Close()
	}
	_ = counter.Close()
	str.Close()

	log.Info("service_stopped")
	os.Exit(0)
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return log
}

// startTokenJanitor запускает фоновую задачу, которая периодически удаляет
// просроченные refresh- и одноразовые токены из хранилища.
func startTokenJanitor(ctx context.Context, storage storage.Storage, log *slog.Logger, period time.Duration) {
	if period <= 0 {
		return
	}

	go func() {
		t := time.NewTicker(period)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				now := time.Now().UTC()
				if err := storage.DeleteExpiredTokens(ctx, now); err != nil {
					log.Error("refresh_janitor_failed", slog.String("err", err.Error()))
				}
				if err := storage.DeleteExpiredSingleUseTokens(ctx, now); err != nil {
					log.Error("single_use_janitor_failed", slog.String("err", err.Error()))
				}
			}
		}
	}()
}
