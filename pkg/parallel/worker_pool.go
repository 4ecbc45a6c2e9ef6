package parallel

import (
	"errors"
	"fmt"
	"sync"
)

// ErrTooManyWorkers is returned when the worker count exceeds MaxWorkers.
var ErrTooManyWorkers = errors.New("worker count exceeds maximum")

// ErrTaskPanicked is returned by ForEach when at least one task panicked.
var ErrTaskPanicked = errors.New("task panicked")

// MaxWorkers matches the upper bound accepted for analysis.workers.
const MaxWorkers = 1024

// Task is a unit of work. worker is the index of the goroutine running it.
type Task func(worker int)

// PanicRecord describes a recovered task panic.
type PanicRecord struct {
	Worker int
	Value  any
}

func (p PanicRecord) String() string {
	return fmt.Sprintf("worker %d: %v", p.Worker, p.Value)
}

// Pool runs tasks on a fixed set of worker goroutines. Every worker has a
// stable index in [0, Workers()), and tasks run one at a time on a given
// worker, so state indexed by worker needs no locking.
type Pool struct {
	size  int
	tasks chan Task
	done  sync.WaitGroup

	closeOnce sync.Once
	gate      sync.RWMutex // held for reading while sending on tasks
	closed    bool

	panicMu sync.Mutex
	panics  []PanicRecord
}

// NewPool starts a pool with the given number of workers. Non-positive
// counts start a single worker.
func NewPool(workers int) (*Pool, error) {
	if workers > MaxWorkers {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooManyWorkers, workers, MaxWorkers)
	}
	workers = max(workers, 1)

	p := &Pool{
		size:  workers,
		tasks: make(chan Task, workers*2),
	}
	p.done.Add(workers)
	for w := range workers {
		go p.loop(w)
	}
	return p, nil
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.size
}

func (p *Pool) loop(worker int) {
	defer p.done.Done()
	for task := range p.tasks {
		p.run(worker, task)
	}
}

func (p *Pool) run(worker int, task Task) {
	defer func() {
		if r := recover(); r != nil {
			p.panicMu.Lock()
			p.panics = append(p.panics, PanicRecord{Worker: worker, Value: r})
			p.panicMu.Unlock()
		}
	}()
	task(worker)
}

// Submit queues a task. It blocks while the queue is full and returns false
// once the pool is closed.
func (p *Pool) Submit(task Task) bool {
	p.gate.RLock()
	defer p.gate.RUnlock()
	if p.closed {
		return false
	}
	p.tasks <- task
	return true
}

// Close stops accepting tasks and waits for the queued ones to finish. It is
// safe to call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.gate.Lock()
		p.closed = true
		close(p.tasks)
		p.gate.Unlock()
	})
	p.done.Wait()
}

// Panics returns the recovered panics in the order they happened.
func (p *Pool) Panics() []PanicRecord {
	p.panicMu.Lock()
	defer p.panicMu.Unlock()
	return append([]PanicRecord(nil), p.panics...)
}
