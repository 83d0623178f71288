// internal/workers/letter/archive-letter/handler.go
package archiveletter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"letter-workers/internal/common/logger"
	"letter-workers/internal/common/metrics"
	"letter-workers/internal/letter/archive"
	"letter-workers/internal/letter/draft"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "archive-letter"

type Handler struct {
	config *Config
	repo   *archive.Repository
	drafts *draft.Store
	logger logger.Logger
}

// NewHandler builds the worker. drafts may be nil; then the session draft is
// left to expire on its own.
func NewHandler(config *Config, repo *archive.Repository, drafts *draft.Store, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		repo:   repo,
		drafts: drafts,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err), 0)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		// Insert failures are worth retrying; the database may be back.
		h.failJob(client, job, "ARCHIVE_INSERT_FAILED", err.Error(), int32(h.config.MaxRetries))
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if strings.TrimSpace(input.LetterText) == "" {
		return nil, fmt.Errorf("letterText is empty")
	}

	id, err := h.repo.Insert(ctx, archive.Letter{
		SessionID:  input.SessionID,
		TemplateID: input.TemplateID,
		Language:   input.Language,
		Path:       input.GenerationPath,
		Text:       input.LetterText,
	})
	if err != nil {
		return nil, err
	}

	// The draft served its purpose once the letter is archived.
	if h.drafts != nil && input.SessionID != "" {
		if err := h.drafts.Delete(ctx, input.SessionID); err != nil {
			h.logger.Warn("draft cleanup failed", map[string]interface{}{
				"sessionId": input.SessionID,
				"error":     err.Error(),
			})
		}
	}

	return &Output{LetterID: id}, nil
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("Failed to create complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
		return
	}

	if _, err = cmd.Send(context.Background()); err != nil {
		h.logger.Error("Failed to send complete job command", map[string]interface{}{
			"jobKey": job.Key,
			"error":  err.Error(),
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, message string, retries int32) {
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":    job.Key,
		"errorCode": errorCode,
		"error":     message,
	})

	_, _ = client.NewFailJobCommand().
		JobKey(job.Key).
		Retries(retries).
		ErrorMessage(message).
		Send(context.Background())
}

// Execute is exposed for direct usage and tests.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
