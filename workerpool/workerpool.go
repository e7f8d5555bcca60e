package workerpool

import (
	"context"
	"errors"
	"sync"
)

// Task is one unit of work. Returned errors are collected by Wait.
type Task func(ctx context.Context) error

type WorkerPool struct {
	maxWorker   int
	queuedTaskC chan Task
	quitChan    chan struct{}
	waitGroup   sync.WaitGroup

	errMu sync.Mutex
	errs  []error
}

// New will create an instance of WorkerPool with room for size queued tasks.
func New(workers, size int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	return &WorkerPool{
		maxWorker:   workers,
		queuedTaskC: make(chan Task, size),
		quitChan:    make(chan struct{}),
	}
}

// AddTask adds a task to the queue. It blocks while the queue is full.
func (wp *WorkerPool) AddTask(task Task) {
	wp.waitGroup.Add(1)
	wp.queuedTaskC <- task
}

// Run starts the workers. Tasks receive ctx and are executed until Quit is
// called.
func (wp *WorkerPool) Run(ctx context.Context) {
	for i := 0; i < wp.maxWorker; i++ {
		go wp.worker(ctx)
	}
}

// TotalQueuedTask returns the total tasks left in the queue
func (wp *WorkerPool) TotalQueuedTask() int {
	return len(wp.queuedTaskC)
}

// Quit will close all worker go routines
func (wp *WorkerPool) Quit() {
	close(wp.quitChan)
}

// Wait blocks until every added task finished and returns their joined
// errors. The error list is reset so the pool can be reused.
func (wp *WorkerPool) Wait() error {
	wp.waitGroup.Wait()
	wp.errMu.Lock()
	defer wp.errMu.Unlock()
	err := errors.Join(wp.errs...)
	wp.errs = nil
	return err
}

func (wp *WorkerPool) worker(ctx context.Context) {
	for {
		select {
		case task := <-wp.queuedTaskC:
			if err := task(ctx); err != nil {
				wp.errMu.Lock()
				wp.errs = append(wp.errs, err)
				wp.errMu.Unlock()
			}
			wp.waitGroup.Done()
		case <-wp.quitChan:
			return
		}
	}
}
