package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookAppointmentHandler "github.com/vappi/voicebot-backend/internal/api/handlers/book_appointment"
	generateVoiceHandler "github.com/vappi/voicebot-backend/internal/api/handlers/generate_voice"
	healthHandler "github.com/vappi/voicebot-backend/internal/api/handlers/health"
	"github.com/vappi/voicebot-backend/internal/api/middleware"
	"github.com/vappi/voicebot-backend/internal/config"
	elevenLabsClient "github.com/vappi/voicebot-backend/internal/integrations/elevenlabs"
	goHighLevelClient "github.com/vappi/voicebot-backend/internal/integrations/gohighlevel"
	bookAppointmentUC "github.com/vappi/voicebot-backend/internal/usecase/book_appointment"
	generateVoiceUC "github.com/vappi/voicebot-backend/internal/usecase/generate_voice"
	"github.com/vappi/voicebot-backend/pkg/logger"
	"github.com/vappi/voicebot-backend/pkg/metrics"
)

func main() {
	// Подхватываем .env, если он есть (локальная разработка)
	_ = godotenv.Load()

	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting VAPPI Voice Bot Backend...")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов
	ttsClient := elevenLabsClient.NewClient(
		cfg.ElevenLabs.BaseURL,
		cfg.ElevenLabs.APIKey,
		time.Duration(cfg.ElevenLabs.Timeout)*time.Second,
		upstreamRecorder(metricsCollector),
		log,
	)
	crmClient := goHighLevelClient.NewClient(
		cfg.GoHighLevel.BaseURL,
		cfg.GoHighLevel.APIKey,
		time.Duration(cfg.GoHighLevel.Timeout)*time.Second,
		upstreamRecorder(metricsCollector),
		log,
	)
	log.Info("Integration clients initialized (ElevenLabs=%s timeout=%ds, GoHighLevel=%s timeout=%ds)",
		cfg.ElevenLabs.BaseURL, cfg.ElevenLabs.Timeout, cfg.GoHighLevel.BaseURL, cfg.GoHighLevel.Timeout)

	// Инициализируем use cases
	generateVoiceUseCase := generateVoiceUC.NewUseCase(
		ttsClient,
		cfg.ElevenLabs.APIKey,
		cfg.ElevenLabs.VoiceID,
		log,
	)
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		crmClient,
		cfg.GoHighLevel.APIKey,
		cfg.GoHighLevel.LocationID,
		cfg.GoHighLevel.CalendarID,
		log,
	)

	// Инициализируем handlers
	health := healthHandler.NewHandler()
	generateVoice := generateVoiceHandler.NewHandler(generateVoiceUseCase, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	if cfg.Server.RateLimitPerMinute > 0 {
		r.Use(middleware.RateLimit(cfg.Server.RateLimitPerMinute))
		log.Info("Rate limiting enabled: %d requests/minute per IP", cfg.Server.RateLimitPerMinute)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)
	r.HandleFunc("/voice", generateVoice.Handle).Methods(http.MethodPost)
	r.HandleFunc("/book", bookAppointment.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// upstreamRecorder возвращает nil-безопасный рекордер исходящих вызовов:
// при выключенных метриках клиенты получают nil и используют no-op
func upstreamRecorder(m *metrics.Metrics) elevenLabsClient.MetricsRecorder {
	if m == nil {
		return nil
	}
	return m
}
