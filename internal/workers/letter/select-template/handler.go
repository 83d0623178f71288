// internal/workers/letter/select-template/handler.go
package selecttemplate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"letter-workers/internal/common/logger"
	"letter-workers/internal/common/metrics"
	"letter-workers/internal/letter/catalog"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "select-template"

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
		errorCode := "SELECT_TEMPLATE_FAILED"
		switch {
		case errors.Is(err, catalog.ErrTemplateNotFound):
			errorCode = "TEMPLATE_NOT_FOUND"
		case errors.Is(err, catalog.ErrCategoryNotFound):
			errorCode = "CATEGORY_NOT_FOUND"
		}
		h.failJob(client, job, errorCode, err.Error(), 0)
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	if input.TemplateID != "" {
		t, err := h.catalog.Find(input.TemplateID)
		if err != nil {
			return nil, err
		}

		label := t.LabelEn
		if catalog.Language(input.Language) == catalog.Hindi {
			label = t.LabelHi
		}

		fields := make([]string, 0, len(t.RequiredFields))
		for _, f := range t.RequiredFields {
			fields = append(fields, string(f))
		}

		var langs []string
		for _, lang := range []catalog.Language{catalog.English, catalog.Hindi} {
			if t.Mode == catalog.ModeRemote || t.Supports(lang) {
				langs = append(langs, string(lang))
			}
		}

		return &Output{
			SelectedTemplateID: t.ID,
			Label:              label,
			Mode:               string(t.Mode),
			RequiredFields:     fields,
			Languages:          langs,
		}, nil
	}

	known := false
	for _, c := range h.catalog.Categories() {
		if c.ID == input.CategoryID {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("%w: %s", catalog.ErrCategoryNotFound, input.CategoryID)
	}

	templates := h.catalog.TemplatesFor(input.CategoryID)
	options := make([]TemplateOption, 0, len(templates))
	for _, t := range templates {
		options = append(options, TemplateOption{
			ID:      t.ID,
			LabelEn: t.LabelEn,
			LabelHi: t.LabelHi,
			Mode:    string(t.Mode),
		})
	}

	return &Output{Templates: options}, nil
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
