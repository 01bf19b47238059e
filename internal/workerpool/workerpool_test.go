package workerpool_test

import (
	"runtime"
	"testing"

	"github.com/ferox-dev/ferox/internal/configuration"
	"github.com/ferox-dev/ferox/internal/workerpool"
)

type executorMock struct {
	outCh chan<- result
}

type result struct {
	name string
	id   int
}

func (e *executorMock) Start(w *workerpool.Worker) {
	e.outCh <- result{name: w.Name, id: w.ID}
}

func TestWorker(t *testing.T) {
	queue := make(chan workerpool.Executor)
	outCh := make(chan result)

	w := workerpool.NewWorker(1, "test")
	w.Start(queue)

	queue <- &executorMock{outCh: outCh}
	close(queue)

	got := <-outCh
	if got.name != "test" {
		t.Errorf("want %q, got %q", "test", got.name)
	}
	if got.id != 1 {
		t.Errorf("want %d, got %d", 1, got.id)
	}
}

func TestPoolExecutesWork(t *testing.T) {
	configuration.Set(configuration.WorkersKey, 1)
	defer configuration.Reset()

	outCh := make(chan result)
	pool := workerpool.Initialize("test")
	pool.Start()
	defer pool.Stop()

	pool.AppendExecutor(&executorMock{outCh: outCh})

	got := <-outCh
	if got.name != "test" {
		t.Errorf("want %q, got %q", "test", got.name)
	}
	if got.id != 0 {
		t.Errorf("want %d, got %d", 0, got.id)
	}
}

func TestPoolDefaultsToNumCPU(t *testing.T) {
	configuration.Set(configuration.WorkersKey, 0)
	defer configuration.Reset()

	pool := workerpool.Initialize("test")
	pool.Start()
	defer pool.Stop()

	if pool.ActiveWorkers() != runtime.NumCPU() {
		t.Errorf("want %d, got %d", runtime.NumCPU(), pool.ActiveWorkers())
	}
}

func TestPoolCanOverrideSize(t *testing.T) {
	configuration.Set(configuration.WorkersKey, 3)
	defer configuration.Reset()

	pool := workerpool.Initialize("test")
	pool.Start()
	defer pool.Stop()

	if pool.ActiveWorkers() != 3 {
		t.Errorf("want %d, got %d", 3, pool.ActiveWorkers())
	}
}
