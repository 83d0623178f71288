// cmd/worker-manager/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"letter-workers/internal/common/camunda"
	"letter-workers/internal/common/config"
	"letter-workers/internal/common/database"
	"letter-workers/internal/common/logger"
	"letter-workers/internal/common/observability"
	"letter-workers/internal/letter/archive"
	"letter-workers/internal/letter/catalog"
	"letter-workers/internal/letter/draft"

	nl "letter-workers/internal/workers/communication/notify-letter"
	al "letter-workers/internal/workers/letter/archive-letter"
	gr "letter-workers/internal/workers/letter/generate-remote"
	rl "letter-workers/internal/workers/letter/render-letter"
	st "letter-workers/internal/workers/letter/select-template"
	vf "letter-workers/internal/workers/letter/validate-fields"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	// Wrap zap logger with our logger interface
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting worker manager...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New("worker-manager")
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Verify the template catalog before accepting any job ---
	cat := catalog.Default()
	if err := cat.Verify(); err != nil {
		zapLog.Fatal("template catalog verification failed", zap.Error(err))
	}
	zapLog.Info("Template catalog verified", zap.Int("templates", len(cat.Templates())))

	// --- Init Zeebe Client with retry ---
	var camundaClient *camunda.Client
	err = retryWithBackoff(func() error {
		var err error
		camundaClient, err = camunda.NewClientWithConfig(&camunda.ClientConfig{
			GatewayAddress:         cfg.Camunda.BrokerAddress,
			UsePlaintextConnection: true,
			ConnectionTimeout:      10 * time.Second,
			RequestTimeout:         30 * time.Second,
		})
		return err
	}, 10, 2*time.Second, zapLog, "Zeebe client initialization")

	if err != nil {
		zapLog.Fatal("zeebe client failed after retries", zap.Error(err))
	}
	zapLog.Info("Zeebe client connected successfully")

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		// Test the connection with context
		return pg.Ping(ctx)
	}, 15, 2*time.Second, zapLog, "PostgreSQL connection")

	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- Init Redis with retry ---
	var redis *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		redis, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		// Test the connection with context
		return redis.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer redis.Close()
	zapLog.Info("Redis connected successfully")

	// --- Shared domain services ---
	drafts := draft.NewStore(redis.Client, draft.Config{
		TTL:      time.Duration(cfg.Draft.TTLHours) * time.Hour,
		Debounce: time.Duration(cfg.Draft.DebounceMs) * time.Millisecond,
		MaxBytes: cfg.Draft.MaxValueBytes,
	}, log)
	letters := archive.NewRepository(pg.DB, log)

	// --- Register the letter workers ---
	var workers []*camunda.CamundaWorker

	if cfg.Workers[st.TaskType].Enabled {
		handler := st.NewHandler(
			&st.Config{
				Timeout: time.Duration(cfg.Workers[st.TaskType].Timeout) * time.Millisecond,
			},
			cat, log,
		)
		workers = append(workers, startWorker(camundaClient, st.TaskType, cfg.Workers[st.TaskType], handler.Handle, zapLog))
	}

	if cfg.Workers[vf.TaskType].Enabled {
		handler := vf.NewHandler(
			&vf.Config{
				Timeout: time.Duration(cfg.Workers[vf.TaskType].Timeout) * time.Millisecond,
			},
			cat, drafts, log,
		)
		workers = append(workers, startWorker(camundaClient, vf.TaskType, cfg.Workers[vf.TaskType], handler.Handle, zapLog))
	}

	if cfg.Workers[rl.TaskType].Enabled {
		handler := rl.NewHandler(
			&rl.Config{
				Timeout: time.Duration(cfg.Workers[rl.TaskType].Timeout) * time.Millisecond,
			},
			cat, log,
		)
		workers = append(workers, startWorker(camundaClient, rl.TaskType, cfg.Workers[rl.TaskType], handler.Handle, zapLog))
	}

	if cfg.Workers[gr.TaskType].Enabled {
		handler := gr.NewHandler(
			&gr.Config{
				BaseURL: cfg.Remote.BaseURL,
				Timeout: time.Duration(cfg.Remote.Timeout) * time.Millisecond,
			},
			cat, log,
		)
		workers = append(workers, startWorker(camundaClient, gr.TaskType, cfg.Workers[gr.TaskType], handler.Handle, zapLog))
	}

	if cfg.Workers[al.TaskType].Enabled {
		handler := al.NewHandler(
			&al.Config{
				Timeout:    time.Duration(cfg.Workers[al.TaskType].Timeout) * time.Millisecond,
				MaxRetries: cfg.Workers[al.TaskType].MaxRetries,
			},
			letters, drafts, log,
		)
		workers = append(workers, startWorker(camundaClient, al.TaskType, cfg.Workers[al.TaskType], handler.Handle, zapLog))
	}

	if cfg.Workers[nl.TaskType].Enabled {
		handler, err := nl.NewHandler(
			&nl.Config{
				EmailEnabled: cfg.Notifications.Email.Enabled,
				SMSEnabled:   cfg.Notifications.SMS.Enabled,
				FromEmail:    cfg.Notifications.Email.FromEmail,
				AWSRegion:    cfg.Notifications.AWS.Region,
				SMSSenderID:  cfg.Notifications.SMS.DefaultSMSSenderID,
				Timeout:      time.Duration(cfg.Workers[nl.TaskType].Timeout) * time.Millisecond,
			},
			cat, log,
		)
		if err != nil {
			zapLog.Fatal("failed to create notify-letter handler", zap.Error(err))
		}
		workers = append(workers, startWorker(camundaClient, nl.TaskType, cfg.Workers[nl.TaskType], handler.Handle, zapLog))
	}

	zapLog.Info("All letter workers registered successfully")

	// --- Health & Metrics Server ---
	go func() {
		http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "healthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := camundaClient.HealthCheck(r.Context()); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				json.NewEncoder(w).Encode(map[string]string{
					"status": "not ready",
					"error":  err.Error(),
				})
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{
				"status": "ready",
				"time":   time.Now().Format(time.RFC3339),
			})
		})
		http.Handle("/metrics", promhttp.Handler())
		zapLog.Info("Health/Metrics server listening on :8080")
		if err := http.ListenAndServe(":8080", nil); err != nil {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, stopping workers...")

	for _, w := range workers {
		w.Stop()
	}

	if err := camundaClient.Close(); err != nil {
		zapLog.Error("Error closing Zeebe client", zap.Error(err))
	}

	zapLog.Info("Worker manager stopped gracefully")
}

func startWorker(client *camunda.Client, taskType string, wcfg config.WorkerConfig, handler camunda.HandlerFunc, log *zap.Logger) *camunda.CamundaWorker {
	return camunda.NewWorker(client.GetClient(), taskType, camunda.WorkerOptions{
		MaxJobsActive: wcfg.MaxJobsActive,
		Timeout:       time.Duration(wcfg.Timeout) * time.Millisecond,
	}, handler, log)
}
