package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/reoring/gosdmx/structure"
)

func newSchemesCommand(a *app) *cobra.Command {
	var inputFormatFlag string
	cmd := &cobra.Command{
		Use:   "schemes FILE",
		Short: "List the item schemes of a structure message",
		Long: `List every item scheme held by a structure message with its kind,
reference, partial flag and item count.

Examples:
  sdmx schemes codelists.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSchemes(cmd, inputFormatFlag, args[0])
		},
	}
	cmd.Flags().StringVarP(&inputFormatFlag, "input-format", "f", "auto", "Input format: auto, json, yaml")
	return cmd
}

func (a *app) runSchemes(cmd *cobra.Command, inputFormatFlag, path string) error {
	format, err := inputFormat(inputFormatFlag, path)
	if err != nil {
		return err
	}
	b, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	m, err := structure.Parse(cmd.Context(), newSource(format, b), a.cfg.ParseOpt())
	if err != nil {
		return reportParseError(cmd.ErrOrStderr(), path, err)
	}

	out := cmd.OutOrStdout()
	if m.Data == nil {
		return nil
	}
	for _, s := range structure.ItemSchemes(m.Data) {
		partial := "-"
		if p := s.IsPartial(); p != nil {
			partial = strconv.FormatBool(*p)
		}
		pathColor.Fprintf(out, "%-28s", s.Kind().String())
		fmt.Fprintf(out, " %-36s partial=%-5s items=%d\n", s.Identity().Ref(), partial, structure.CountItems(s))
	}
	return nil
}
