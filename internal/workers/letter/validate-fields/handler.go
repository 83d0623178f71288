// internal/workers/letter/validate-fields/handler.go
package validatefields

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"letter-workers/internal/common/logger"
	"letter-workers/internal/common/metrics"
	"letter-workers/internal/letter/catalog"
	"letter-workers/internal/letter/draft"
	"letter-workers/internal/letter/field"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/xeipuuv/gojsonschema"
)

const TaskType = "validate-fields"

// Format patterns mirrored in the JSON schema handed to the payload check.
// The authoritative rules live in the field package; the schema only guards
// the raw payload shape before it is trusted.
const (
	accountPattern = `^[\d ]{11,19}$`
	phonePattern   = `^[6-9][\d ]{9,12}$`
	aadharPattern  = `^[\d ]{12,15}$`
)

type Handler struct {
	config  *Config
	catalog *catalog.Catalog
	drafts  *draft.Store
	logger  logger.Logger
}

// NewHandler builds the worker. drafts may be nil; then form state is not
// persisted.
func NewHandler(config *Config, cat *catalog.Catalog, drafts *draft.Store, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		catalog: cat,
		drafts:  drafts,
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
		errorCode := "FIELD_VALIDATION_FAILED"
		if errors.Is(err, catalog.ErrTemplateNotFound) {
			errorCode = "TEMPLATE_NOT_FOUND"
		}
		h.failJob(client, job, errorCode, err.Error(), 0)
		return
	}

	if !output.Valid {
		metrics.ValidationFailures.WithLabelValues(input.TemplateID).Inc()
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	t, err := h.catalog.Find(input.TemplateID)
	if err != nil {
		return nil, err
	}

	output := &Output{Valid: true}

	// Payload shape gate: types and gross format before the values are
	// trusted anywhere else.
	if errs, err := h.validateShape(t, input.FieldValues); err != nil {
		return nil, err
	} else if len(errs) > 0 {
		output.Valid = false
		output.Errors = append(output.Errors, errs...)
	}

	values := field.Values{}
	for name, value := range input.FieldValues {
		values[field.Name(name)] = value
	}

	res := field.Validate(t.RequiredFields, values)
	if !res.Valid {
		output.Valid = false
		for _, name := range res.Missing {
			output.MissingFields = append(output.MissingFields, string(name))
		}
		for _, e := range res.Errors {
			output.Errors = appendUnique(output.Errors, FieldError{
				Field:   string(e.Field),
				Message: e.Message,
				Code:    e.Code,
			})
		}
	}

	h.saveDraft(ctx, input, values)
	return output, nil
}

// validateShape checks the raw field map against a JSON schema derived from
// the template.
func (h *Handler) validateShape(t catalog.Template, raw map[string]string) ([]FieldError, error) {
	properties := map[string]interface{}{}
	for _, name := range t.RequiredFields {
		prop := map[string]interface{}{"type": "string"}
		switch name {
		case field.AccountNumber:
			prop["pattern"] = accountPattern
		case field.Phone:
			prop["pattern"] = phonePattern
		case field.AadharNumber:
			prop["pattern"] = aadharPattern
		}
		properties[string(name)] = prop
	}

	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}

	doc := map[string]interface{}{}
	for name, value := range raw {
		if value != "" {
			doc[name] = value
		}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(schema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	var errs []FieldError
	for _, desc := range result.Errors() {
		errs = append(errs, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
			Code:    "INVALID_FORMAT",
		})
	}
	return errs, nil
}

// saveDraft persists the form state fire-and-forget; a failed save never
// blocks validation.
func (h *Handler) saveDraft(ctx context.Context, input *Input, values field.Values) {
	if h.drafts == nil || input.SessionID == "" {
		return
	}
	err := h.drafts.Save(ctx, input.SessionID, draft.Draft{
		TemplateID: input.TemplateID,
		Language:   catalog.Language(input.Language),
		Values:     values,
	})
	if err != nil {
		h.logger.Warn("draft save failed", map[string]interface{}{
			"sessionId": input.SessionID,
			"error":     err.Error(),
		})
	}
}

func appendUnique(errs []FieldError, e FieldError) []FieldError {
	for _, existing := range errs {
		if existing.Field == e.Field && existing.Code == e.Code {
			return errs
		}
	}
	return append(errs, e)
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
