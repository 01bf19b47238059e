// Package workerpool runs a fixed-size pool of named workers pulling
// Executors off a shared queue, sized from configuration.WorkersKey
// (defaulting to runtime.NumCPU()).
package workerpool

import (
	"runtime"
	"sync"

	"github.com/ferox-dev/ferox/internal/configuration"
)

// Executor is a unit of work a Worker runs.
type Executor interface {
	Start(w *Worker)
}

// Worker pulls Executors off a shared queue until it is closed.
type Worker struct {
	Name   string
	ID     int
	stopCh chan struct{}
}

// NewWorker builds a Worker identified by id and name.
func NewWorker(id int, name string) *Worker {
	return &Worker{Name: name, ID: id}
}

// Start launches the worker's pull loop in its own goroutine.
func (w *Worker) Start(queue <-chan Executor) {
	w.stopCh = make(chan struct{})
	go func() {
		for {
			exec, ok := <-queue
			if !ok {
				w.stopCh <- struct{}{}

				return
			}
			exec.Start(w)
		}
	}()
}

func (w *Worker) stop() {
	<-w.stopCh
}

// Pool is a fixed-size set of Workers sharing one queue.
type Pool struct {
	queue   chan Executor
	name    string
	workers []*Worker
	size    int
}

// Initialize builds a Pool sized from configuration.WorkersKey. A
// configured size of 0 defaults to runtime.NumCPU().
func Initialize(name string) *Pool {
	size := configuration.Get[int](configuration.WorkersKey)
	if size <= 0 {
		size = runtime.NumCPU()
	}

	p := &Pool{name: name, size: size}
	p.workers = make([]*Worker, 0, size)
	for i := 0; i < size; i++ {
		p.workers = append(p.workers, NewWorker(i, name))
	}
	p.queue = make(chan Executor, 1)

	return p
}

// ActiveWorkers reports how many workers this pool was sized with.
func (p *Pool) ActiveWorkers() int {
	return p.size
}

// AppendExecutor enqueues exec for the next available worker.
func (p *Pool) AppendExecutor(exec Executor) {
	p.queue <- exec
}

// Start launches every worker in the pool.
func (p *Pool) Start() {
	for _, w := range p.workers {
		w.Start(p.queue)
	}
}

// Stop closes the queue and waits for every worker to drain and exit.
func (p *Pool) Stop() {
	close(p.queue)

	var wg sync.WaitGroup
	for _, w := range p.workers {
		wg.Add(1)
		go func(w *Worker) {
			defer wg.Done()
			w.stop()
		}(w)
	}
	wg.Wait()
}
