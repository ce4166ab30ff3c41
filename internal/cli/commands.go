package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xab-mack/moveguard/internal/engine"
	"github.com/xab-mack/moveguard/internal/logging"
	"github.com/xab-mack/moveguard/internal/model"
	"github.com/xab-mack/moveguard/internal/report"
	"github.com/xab-mack/moveguard/internal/tui"
)

func AddCommands(root *cobra.Command) {
	root.AddCommand(newScanCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newRulesCmd())
}

func newScanCmd() *cobra.Command {
	var (
		format        string
		outputFile    string
		failOn        string
		baselinePath  string
		writeBaseline string
		experimental  bool
		useTUI        bool
		debug         bool
	)
	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a Move contract file or directory for vulnerabilities",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Init(debug)
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			req := model.ScanRequest{Path: path, Experimental: experimental}
			eng, err := engine.New(req)
			if err != nil {
				return err
			}
			result, err := eng.Scan(req)
			if err != nil {
				return err
			}

			findings, err := engine.ApplyBaseline(baselinePath, result.Findings)
			if err != nil {
				return err
			}

			if writeBaseline != "" {
				if err := engine.WriteBaseline(writeBaseline, findings); err != nil {
					return err
				}
			}

			if useTUI {
				// TUI mode ignores format flags
				return tui.Run(findings)
			}
			out, err := report.Render(format, findings)
			if err != nil {
				return err
			}
			if outputFile != "" {
				if err := os.WriteFile(outputFile, out, 0o644); err != nil {
					return fmt.Errorf("write report %s: %w", outputFile, err)
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			}

			if failOn != "" {
				threshold := model.ParseSeverity(failOn)
				for _, f := range findings {
					if model.SeverityGTE(f.Severity, threshold) {
						return fmt.Errorf("fail-on threshold met: %s", f.Severity)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text|json|sarif")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Write report to file instead of stdout")
	cmd.Flags().StringVar(&failOn, "fail-on", "", "Fail if a finding of this severity or higher is found (info|low|medium|high|critical)")
	cmd.Flags().StringVar(&baselinePath, "baseline", "", "Filter findings recorded in a baseline file")
	cmd.Flags().StringVar(&writeBaseline, "write-baseline", "", "Write a baseline file with finding fingerprints")
	cmd.Flags().BoolVar(&experimental, "experimental", false, "Enable the experimental detectors")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "Render interactive TUI output")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	return cmd
}
