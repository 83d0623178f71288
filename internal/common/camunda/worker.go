// internal/common/camunda/worker.go
package camunda

import (
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
	"go.uber.org/zap"
)

// HandlerFunc is the signature every letter worker handler exposes.
// Completion and failure are reported through the JobClient, not a return value.
type HandlerFunc func(client worker.JobClient, job entities.Job)

// WorkerOptions controls job polling behavior for a single task type.
type WorkerOptions struct {
	MaxJobsActive int
	Timeout       time.Duration
}

// CamundaWorker owns one open Zeebe job subscription.
type CamundaWorker struct {
	worker   worker.JobWorker
	logger   *zap.Logger
	taskType string
}

// NewWorker opens a job subscription for taskType and starts polling immediately.
func NewWorker(
	client zbc.Client,
	taskType string,
	opts WorkerOptions,
	handler HandlerFunc,
	logger *zap.Logger,
) *CamundaWorker {
	jobWorker := client.NewJobWorker().
		JobType(taskType).
		Handler(worker.JobHandler(handler)).
		MaxJobsActive(opts.MaxJobsActive).
		Timeout(opts.Timeout).
		Open()

	logger.Info("worker started",
		zap.String("taskType", taskType),
		zap.Int("maxJobsActive", opts.MaxJobsActive),
		zap.Duration("timeout", opts.Timeout),
	)

	return &CamundaWorker{
		worker:   jobWorker,
		logger:   logger,
		taskType: taskType,
	}
}

// TaskType returns the Zeebe task type this worker polls.
func (w *CamundaWorker) TaskType() string {
	return w.taskType
}

// Stop drains in-flight jobs and closes the subscription.
func (w *CamundaWorker) Stop() {
	w.logger.Info("stopping worker", zap.String("taskType", w.taskType))
	w.worker.Close()
}
