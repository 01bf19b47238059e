package cmd

import (
	"context"
	"sync"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/ferox-dev/ferox/internal/configuration"
	"github.com/ferox-dev/ferox/internal/log"
	"github.com/ferox-dev/ferox/internal/report"
	"github.com/ferox-dev/ferox/internal/runner"
)

type mutateCmd struct {
	cmd *cobra.Command
}

func newMutateCmd(ctx context.Context) (*mutateCmd, error) {
	cmd := &cobra.Command{
		Use:     "mutate",
		Aliases: []string{"run", "m"},
		Short:   "Scan, mutate, and run the test suite against every mutant",
		Long:    mutateExplainer(),
		RunE:    runMutateCmd(ctx),
	}

	return &mutateCmd{cmd: cmd}, nil
}

func mutateExplainer() string {
	return heredoc.Doc(`
		Discovers mutable operator tokens, generates a mutant for each, and
		rebuilds and retests the project against every mutant in an isolated
		workspace. Mutants the test suite fails to catch are reported as
		survived; the mutation score is the share of mutants the suite did
		catch (or that failed to build).
	`)
}

func runMutateCmd(ctx context.Context) func(cmd *cobra.Command, args []string) error {
	return func(_ *cobra.Command, _ []string) error {
		log.Infoln("Starting...")

		lang, result, err := runScan()
		if err != nil {
			return err
		}

		if configuration.Get[bool](configuration.InfoKey) {
			report.ScanSummary(result)
		}

		srcPath := resolveProjectRoot(configuration.Get[string](configuration.SourcePathKey), lang.ManifestName)

		var wg sync.WaitGroup
		wg.Add(1)
		start := time.Now()
		runWithCancel(ctx, &wg, func() {
			runner.Run(runner.Options{
				Lang:     lang,
				SrcDir:   srcPath,
				Mutants:  result.Mutants,
				Progress: true,
			})
		})
		wg.Wait()

		report.FinalReport(lang.Tag, result.Mutants, time.Since(start))

		return nil
	}
}

// runWithCancel runs work in the caller's goroutine, logging a message if
// ctx is cancelled while it's in flight. In-flight child build/test
// processes are not explicitly killed on cancellation: they terminate when
// the parent process does, and every workspace's cleanup is still guaranteed
// by the runner's own deferred Release/Teardown calls as long as work
// actually returns.
func runWithCancel(ctx context.Context, wg *sync.WaitGroup, work func()) {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			log.Infof("\nShutting down gracefully...\n")
		case <-done:
		}
	}()
	work()
	close(done)
	wg.Done()
}
