package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	gosdmx "github.com/reoring/gosdmx"
)

type checkOptions struct {
	kind        string
	inputFormat string
}

func newCheckCommand(a *app) *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check FILE",
		Short: "Validate an SDMX-JSON message",
		Long: `Validate an SDMX-JSON data, metadata or structure message.

Every issue is printed with its JSON Pointer path and code. The command
exits non-zero when the message does not validate. Use "-" to read stdin.

Examples:
  sdmx check --kind structure dsd.json
  sdmx check --kind data --input-format yaml message.yaml
  sdmx check --kind metadata - < reference.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, opts, args[0])
		},
	}
	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "structure", "Message kind: "+kindTokens)
	cmd.Flags().StringVarP(&opts.inputFormat, "input-format", "f", "auto", "Input format: auto, json, yaml")
	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, opts *checkOptions, path string) error {
	format, err := inputFormat(opts.inputFormat, path)
	if err != nil {
		return err
	}
	b, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	popt := a.cfg.ParseOpt()
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	// Duplicate keys under "warn" do not fail the parse; surface them here.
	if format == "json" && popt.Strictness.OnDuplicateKey == gosdmx.Warn {
		found, err := gosdmx.DetectJSONDuplicateKeysBytes(b, popt.Strictness, -1)
		var dups gosdmx.Issues
		for _, it := range found {
			if err == nil && it.Code == gosdmx.CodeDuplicateKey {
				dups = append(dups, it)
			}
		}
		printIssues(errOut, warningColor, "warning", dups)
	}

	if _, err := parseMessage(cmd.Context(), opts.kind, newSource(format, b), popt); err != nil {
		a.logger.Debug("message rejected", zap.String("file", path), zap.String("kind", opts.kind), zap.Error(err))
		return reportParseError(errOut, path, err)
	}

	a.logger.Debug("message accepted", zap.String("file", path), zap.String("kind", opts.kind))
	successColor.Fprint(out, "ok ")
	pathColor.Fprintln(out, path)
	return nil
}
