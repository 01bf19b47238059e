// Package cmd wires the ferox command-line surface: a root command plus the
// scan and mutate subcommands, built on cobra/viper following the same
// Flag-record binding convention used across this project's donor corpus.
package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"

	"github.com/ferox-dev/ferox/cmd/internal/flags"
	"github.com/ferox-dev/ferox/internal/configuration"
	"github.com/ferox-dev/ferox/internal/log"
)

const paramConfigFile = "config"

// Execute builds and runs the root ferox command.
func Execute(ctx context.Context, version string) error {
	root, err := newRootCmd(ctx, version)
	if err != nil {
		return err
	}

	return root.execute()
}

type feroxCmd struct {
	cmd *cobra.Command
}

func (fc feroxCmd) execute() error {
	var cfgFile string
	cobra.OnInitialize(func() {
		if err := configuration.Init([]string{cfgFile}); err != nil {
			log.Errorf("initialization error: %s\n", err)
			os.Exit(1)
		}
	})
	fc.cmd.PersistentFlags().StringVar(&cfgFile, paramConfigFile, "", "override config file")

	return fc.cmd.Execute()
}

func newRootCmd(ctx context.Context, version string) (*feroxCmd, error) {
	if version == "" {
		return nil, errors.New("expected a version string")
	}

	cmd := &cobra.Command{
		Use:           "ferox",
		Short:         shortExplainer(),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	if err := setPersistentFlags(cmd); err != nil {
		return nil, err
	}

	sc, err := newScanCmd()
	if err != nil {
		return nil, err
	}
	cmd.AddCommand(sc.cmd)

	mc, err := newMutateCmd(ctx)
	if err != nil {
		return nil, err
	}
	cmd.AddCommand(mc.cmd)

	return &feroxCmd{cmd: cmd}, nil
}

func setPersistentFlags(cmd *cobra.Command) error {
	fls := []*flags.Flag{
		{Name: "language", CfgKey: configuration.LanguageKey, Shorthand: "l", DefaultV: "noir", Usage: "target language (noir, solidity)"},
		{Name: "source-path", CfgKey: configuration.SourcePathKey, Shorthand: "p", DefaultV: ".", Usage: "root directory or file to scan"},
		{Name: "output-path", CfgKey: configuration.OutputPathKey, Shorthand: "o", DefaultV: "", Usage: "append the surviving-mutants table to this path, or write a JSON report if it ends in .json"},
		{Name: "info", CfgKey: configuration.InfoKey, DefaultV: false, Usage: "print the scan summary even when running mutate"},
		{Name: "random", CfgKey: configuration.RandomKey, DefaultV: false, Usage: "pick a random substitute operator instead of the deterministic one"},
		{Name: "workers", CfgKey: configuration.WorkersKey, DefaultV: 0, Usage: "number of parallel workers (0 = number of logical CPUs)"},
		{Name: "seed", CfgKey: configuration.SeedKey, DefaultV: int64(0), Usage: "seed for --random (0 = derive from current time)"},
	}

	for _, f := range fls {
		if err := flags.SetPersistent(cmd, f); err != nil {
			return err
		}
	}

	return nil
}

func shortExplainer() string {
	return heredoc.Doc(`
		ferox is a mutation testing engine for smart-contract-adjacent
		languages: it mutates operator tokens in your source tree, rebuilds
		and retests against each mutant, and reports which ones your test
		suite failed to catch.
	`)
}
