package workerpool

import (
	"context"
	"errors"
	"runtime"
	"testing"
	"time"
)

func Test_WorkerPool(t *testing.T) {
	startThreads := runtime.NumGoroutine()

	totalWorker := 5
	sleepTime := 5 * time.Millisecond
	totalTask := 1000
	wp := New(totalWorker, totalTask)

	completedTaskChannel := make(chan int, totalTask)
	defer close(completedTaskChannel)

	for i := 0; i < totalTask; i++ {
		taskID := i + 1
		wp.AddTask(func(context.Context) error {
			completedTaskChannel <- taskID
			time.Sleep(sleepTime)
			return nil
		})
	}
	start := time.Now()

	wp.Run(context.Background())
	if err := wp.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := len(completedTaskChannel), totalTask; got != want {
		t.Errorf("got %v want %v", got, want)
	}

	elapsed := time.Since(start)

	if got, want := runtime.NumGoroutine(), startThreads+totalWorker; got != want {
		t.Errorf("got %v want %v", got, want)
	}

	if got, want := float64(elapsed.Milliseconds()), float64(sleepTime.Milliseconds()*int64(totalTask)/int64(totalWorker))*1.4; got > want {
		t.Errorf("unexpected execution time, expected t < %vms, got t=%vms", want, got)
	}

	wp.Quit()
	time.Sleep(1 * time.Millisecond)
	endThreads := runtime.NumGoroutine()
	if startThreads != endThreads {
		t.Errorf("unexpected go thread count: got %v, want %v", endThreads, startThreads)
	}
}

func Test_WorkerPoolErrors(t *testing.T) {
	wp := New(2, 4)
	wp.Run(context.Background())
	defer wp.Quit()

	errA := errors.New("a")
	errB := errors.New("b")
	wp.AddTask(func(context.Context) error { return errA })
	wp.AddTask(func(context.Context) error { return nil })
	wp.AddTask(func(context.Context) error { return errB })

	err := wp.Wait()
	if !errors.Is(err, errA) || !errors.Is(err, errB) {
		t.Errorf("expected both task errors, got %v", err)
	}

	// errors do not leak into the next round
	wp.AddTask(func(context.Context) error { return nil })
	if err := wp.Wait(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func Test_WorkerPoolPassesContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	wp := New(1, 1)
	wp.Run(ctx)
	defer wp.Quit()

	wp.AddTask(func(ctx context.Context) error { return ctx.Err() })
	if err := wp.Wait(); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v want %v", err, context.Canceled)
	}
}
