package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"coursegen/internal/config"
	"coursegen/internal/contentstore"
	"coursegen/internal/coursemap"
	"coursegen/internal/generate"
)

// Orchestrator manages the syllabus processing pipeline.
type Orchestrator struct {
	jobs    *JobStore
	queue   chan *Job
	client  *generate.Client
	store   *contentstore.Store
	courses *coursemap.Map
	log     *slog.Logger
	cfg     config.Config

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOrchestrator creates the pipeline. Call Start to launch workers.
func NewOrchestrator(cfg config.Config, client *generate.Client, store *contentstore.Store, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:    NewJobStore(cfg.JobTTL),
		queue:   make(chan *Job, cfg.MaxQueueSize),
		client:  client,
		store:   store,
		courses: coursemap.NewMap(),
		log:     log,
		cfg:     cfg,
	}
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for i := 0; i < o.cfg.WorkerCount; i++ {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			builder := coursemap.NewBuilder(o.client, o.store, o.log)
			w := NewWorker(builder, o.courses, o.log, o.cfg.CourseMapJS, o.cfg.CourseMapOut, o.cfg.PDFFallbackPdftotext)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	// Start job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit queues a new job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.SetStatus(StatusFailed, "queue_full")
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}

// Courses returns the accumulating course map for direct use by API handlers.
func (o *Orchestrator) Courses() *coursemap.Map {
	return o.courses
}

// Client returns the generation client for stats endpoints.
func (o *Orchestrator) Client() *generate.Client {
	return o.client
}
