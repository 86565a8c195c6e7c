package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SwiftFiat/SwiftFiat-Escrow/services/monitoring/logging"
	"github.com/sirupsen/logrus"
)

// Task represents a scheduled task
type Task struct {
	ID          string
	Name        string
	Fn          func(context.Context) error
	Interval    time.Duration // For recurring tasks. Zero means run once
	LastRun     time.Time
	IsRecurring bool
	ErrorChan   chan error
}

// TaskScheduler runs background jobs such as the webhook redelivery sweep.
type TaskScheduler struct {
	tasks  map[string]*Task
	mu     sync.RWMutex
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
	logger *logging.Logger
}

func NewTaskScheduler(logger *logging.Logger) *TaskScheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &TaskScheduler{
		tasks:  make(map[string]*Task),
		ctx:    ctx,
		cancel: cancel,
		logger: logger,
	}
}

func (ts *TaskScheduler) AddTask(id, name string, fn func(context.Context) error, interval time.Duration) (*Task, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.tasks[id]; exists {
		return nil, fmt.Errorf("task with ID %s already exists", id)
	}

	task := &Task{
		ID:          id,
		Name:        name,
		Fn:          fn,
		Interval:    interval,
		IsRecurring: interval > 0,
		ErrorChan:   make(chan error, 1),
	}

	ts.tasks[id] = task
	ts.logger.WithField("task", id).Info("added task to scheduler")
	return task, nil
}

// RunTask immediately executes a specific task once
func (ts *TaskScheduler) RunTask(id string) error {
	task, err := ts.GetTask(id)
	if err != nil {
		return err
	}

	ts.wg.Add(1)
	go func() {
		defer ts.wg.Done()
		ts.execute(task)
	}()

	return nil
}

// ScheduleTask starts the task after delay and, for recurring tasks, keeps
// running it every Interval until Stop.
func (ts *TaskScheduler) ScheduleTask(id string, delay time.Duration) error {
	task, err := ts.GetTask(id)
	if err != nil {
		return err
	}

	ts.logger.WithFields(logrus.Fields{"task": id, "delay": delay}).Info("scheduling task")

	ts.wg.Add(1)
	go func() {
		defer ts.wg.Done()
		timer := time.NewTimer(delay)
		defer timer.Stop()

		for {
			select {
			case <-ts.ctx.Done():
				return
			case <-timer.C:
				ts.execute(task)
				if !task.IsRecurring {
					return
				}
				timer.Reset(task.Interval)
			}
		}
	}()

	return nil
}

func (ts *TaskScheduler) execute(task *Task) {
	if err := task.Fn(ts.ctx); err != nil {
		ts.logger.WithError(err).WithField("task", task.Name).Error("task failed")

		// Non-blocking send to error channel
		select {
		case task.ErrorChan <- err:
		default:
		}
	}

	ts.mu.Lock()
	task.LastRun = time.Now()
	ts.mu.Unlock()
}

func (ts *TaskScheduler) RemoveTask(id string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if _, exists := ts.tasks[id]; !exists {
		return fmt.Errorf("task with ID %s not found", id)
	}

	delete(ts.tasks, id)
	return nil
}

func (ts *TaskScheduler) GetTask(id string) (*Task, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	task, exists := ts.tasks[id]
	if !exists {
		return nil, fmt.Errorf("task with ID %s not found", id)
	}

	return task, nil
}

// LastRun reports when the task last finished.
func (ts *TaskScheduler) LastRun(id string) (time.Time, error) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()

	task, exists := ts.tasks[id]
	if !exists {
		return time.Time{}, fmt.Errorf("task with ID %s not found", id)
	}
	return task.LastRun, nil
}

// Stop cancels every scheduled task and waits for running ones to return.
func (ts *TaskScheduler) Stop() {
	ts.cancel()
	ts.wg.Wait()
}
