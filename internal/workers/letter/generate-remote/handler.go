// internal/workers/letter/generate-remote/handler.go
package generateremote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"letter-workers/internal/common/logger"
	"letter-workers/internal/common/metrics"
	"letter-workers/internal/letter/catalog"
	"letter-workers/internal/letter/engine"
	"letter-workers/internal/letter/field"
	"letter-workers/internal/letter/remote"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "generate-remote"

type Handler struct {
	config *Config
	engine *engine.Engine
	logger logger.Logger
}

func NewHandler(config *Config, cat *catalog.Catalog, log logger.Logger) *Handler {
	gen := remote.NewClient(remote.Config{
		BaseURL: config.BaseURL,
		Timeout: config.Timeout,
	})
	return &Handler{
		config: config,
		engine: engine.New(cat, gen, log),
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

// NewHandlerWithEngine is used by tests to inject a stub generator.
func NewHandlerWithEngine(config *Config, eng *engine.Engine, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		engine: eng,
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

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout+5*time.Second)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		errorCode := "GENERATE_REMOTE_FAILED"
		var vErr *engine.ValidationError
		switch {
		case errors.Is(err, catalog.ErrTemplateNotFound):
			errorCode = "TEMPLATE_NOT_FOUND"
		case errors.As(err, &vErr):
			errorCode = "FIELD_VALIDATION_FAILED"
		}
		h.failJob(client, job, errorCode, err.Error(), 0)
		return
	}

	if output.GenerationPath == "fallback" {
		metrics.RemoteFallbacks.Inc()
	}
	metrics.LettersGenerated.WithLabelValues(output.GenerationPath, input.Language).Inc()
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	values := field.Values{}
	for name, value := range input.FieldValues {
		values[field.Name(name)] = value
	}

	result, err := h.engine.Generate(ctx, engine.Request{
		TemplateID: input.TemplateID,
		Language:   catalog.Language(input.Language),
		Values:     values,
	})
	if err != nil {
		return nil, err
	}

	return &Output{
		LetterText:     result.Text,
		GenerationPath: string(result.Path),
	}, nil
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
