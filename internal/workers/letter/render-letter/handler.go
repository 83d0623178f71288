// internal/workers/letter/render-letter/handler.go
package renderletter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"letter-workers/internal/common/logger"
	"letter-workers/internal/common/metrics"
	"letter-workers/internal/letter/catalog"
	"letter-workers/internal/letter/field"
	"letter-workers/internal/letter/remote"
	"letter-workers/internal/letter/render"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "render-letter"

type Handler struct {
	config  *Config
	catalog *catalog.Catalog
	logger  logger.Logger
}

func NewHandler(config *Config, cat *catalog.Catalog, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		catalog: cat,
		logger:  log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		errorCode := "RENDER_FAILED"
		switch {
		case errors.Is(err, catalog.ErrTemplateNotFound):
			errorCode = "TEMPLATE_NOT_FOUND"
		case errors.Is(err, render.ErrUnsupportedLanguage):
			errorCode = "UNSUPPORTED_LANGUAGE"
		case errors.Is(err, render.ErrWrongMode):
			errorCode = "RENDER_WRONG_MODE"
		}
		h.failJob(client, job, errorCode, err.Error(), 0)
		return
	}

	metrics.LettersGenerated.WithLabelValues(output.GenerationPath, input.Language).Inc()
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	t, err := h.catalog.Find(input.TemplateID)
	if err != nil {
		return nil, err
	}

	lang := catalog.Language(input.Language)
	values := field.Values{}
	for name, value := range input.FieldValues {
		values[field.Name(name)] = value
	}

	if res := field.Validate(t.RequiredFields, values); !res.Valid {
		return nil, res.Error()
	}

	text, err := render.Render(t, lang, values)
	switch {
	case err == nil:
		return &Output{LetterText: text, GenerationPath: "instant"}, nil
	case errors.Is(err, render.ErrUnsupportedLanguage), errors.Is(err, render.ErrWrongMode):
		// Routing errors go back to the flow; the fallback letter is only
		// for render defects.
		return nil, err
	default:
		h.logger.Error("render failed, using fallback letter", map[string]interface{}{
			"templateId": t.ID,
			"error":      err.Error(),
		})
		return &Output{
			LetterText:     remote.Fallback(t, lang, values),
			GenerationPath: "fallback",
		}, nil
	}
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
