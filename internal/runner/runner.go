// Package runner transitions every Pending mutant to a terminal status by
// materialising its workspace and invoking the language capability's build
// and test commands against it, in parallel across a workerpool.Pool.
package runner

import (
	"bytes"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/schollz/progressbar/v3"

	"github.com/ferox-dev/ferox/internal/language"
	"github.com/ferox-dev/ferox/internal/log"
	"github.com/ferox-dev/ferox/internal/mutant"
	"github.com/ferox-dev/ferox/internal/workdir"
	"github.com/ferox-dev/ferox/internal/workerpool"
)

// Options configures a Run.
type Options struct {
	Lang     language.Capability
	SrcDir   string
	Mutants  []mutant.Mutant
	Progress bool
}

// Run evaluates every mutant in opts.Mutants against opts.Lang's build and
// test commands, mutating each mutant's Status in place. Mutants are
// evaluated concurrently; Run blocks until every one has reached a terminal
// status.
func Run(opts Options) {
	dealer := workdir.New(opts.Lang, opts.SrcDir)
	if err := dealer.Setup(); err != nil {
		log.Errorf("failed to set up workspace: %v", err)

		for i := range opts.Mutants {
			opts.Mutants[i].Status = mutant.Unbuildable
		}

		return
	}
	defer func() {
		if err := dealer.Teardown(); err != nil {
			log.Errorf("failed to tear down workspace: %v", err)
		}
	}()

	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.Default(int64(len(opts.Mutants)), "evaluating mutants")
	}

	var wg sync.WaitGroup
	wg.Add(len(opts.Mutants))

	pool := workerpool.Initialize("runner")
	pool.Start()
	defer pool.Stop()

	var done int64

	for i := range opts.Mutants {
		pool.AppendExecutor(&mutantExecutor{
			mutant:  &opts.Mutants[i],
			lang:    opts.Lang,
			dealer:  dealer,
			wg:      &wg,
			bar:     bar,
			counter: &done,
		})
	}

	wg.Wait()
}

type mutantExecutor struct {
	mutant  *mutant.Mutant
	lang    language.Capability
	dealer  workdir.Dealer
	wg      *sync.WaitGroup
	bar     *progressbar.ProgressBar
	counter *int64
}

// Start implements workerpool.Executor. It runs the full install -> build ->
// test -> classify -> release pipeline for a single mutant.
func (e *mutantExecutor) Start(_ *workerpool.Worker) {
	defer e.wg.Done()
	defer func() {
		atomic.AddInt64(e.counter, 1)
		if e.bar != nil {
			_ = e.bar.Add(1)
		}
	}()

	inst, err := e.dealer.Install(*e.mutant)
	if err != nil {
		log.Errorf("failed to install workspace for mutant %d: %v", e.mutant.ID, err)
		e.mutant.Status = mutant.Unbuildable

		return
	}
	defer func() {
		if err := e.dealer.Release(*e.mutant, inst); err != nil {
			log.Errorf("failed to release workspace for mutant %d: %v", e.mutant.ID, err)
		}
	}()

	e.mutant.Status = e.evaluate(inst.Dir)
}

func (e *mutantExecutor) evaluate(dir string) mutant.Status {
	buildCmd := e.lang.BuildCmd(dir)
	setupProcessGroup(buildCmd)

	if _, exitErr, err := runCaptured(buildCmd); err != nil || exitErr != nil {
		if err != nil {
			log.Errorf("failed to spawn build for mutant %d: %v", e.mutant.ID, err)
		}

		return mutant.Unbuildable
	}

	testCmd := e.lang.TestCmd(dir)
	setupProcessGroup(testCmd)

	stderr, exitErr, err := runCaptured(testCmd)
	if err != nil {
		log.Errorf("failed to spawn tests for mutant %d: %v", e.mutant.ID, err)

		return mutant.Unbuildable
	}
	if exitErr == nil {
		return mutant.Survived
	}
	if e.lang.IsTestFailed != nil && e.lang.IsTestFailed(stderr) {
		return mutant.Killed
	}

	return mutant.Unbuildable
}

// runCaptured runs cmd to completion, returning captured stderr and a
// non-nil *exec.ExitError when the process exited non-zero. A non-ExitError
// failure (e.g. the binary could not be found) is returned as err.
func runCaptured(cmd *exec.Cmd) ([]byte, *exec.ExitError, error) {
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if runErr == nil {
		return stderr.Bytes(), nil, nil
	}

	var exitErr *exec.ExitError
	if ok := asExitError(runErr, &exitErr); ok {
		return stderr.Bytes(), exitErr, nil
	}

	return stderr.Bytes(), nil, runErr
}

func asExitError(err error, target **exec.ExitError) bool {
	ee, ok := err.(*exec.ExitError)
	if !ok {
		return false
	}
	*target = ee

	return true
}
