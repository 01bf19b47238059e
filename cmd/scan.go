package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ferox-dev/ferox/internal/report"
)

type scanCmd struct {
	cmd *cobra.Command
}

func newScanCmd() (*scanCmd, error) {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Discover mutable tokens without running any test",
		RunE:  runScanCmd,
	}

	return &scanCmd{cmd: cmd}, nil
}

func runScanCmd(_ *cobra.Command, _ []string) error {
	_, result, err := runScan()
	if err != nil {
		return err
	}

	report.ScanSummary(result)

	return nil
}
