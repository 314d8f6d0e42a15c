package commands

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/common"
	"github.com/reoring/gosdmx/sdmxcsv"
)

type csvOptions struct {
	metadata   bool
	accept     string
	components []string
}

// csvLine is the JSON form of one record. Cells are keyed by column id.
type csvLine struct {
	Line            int               `json:"line"`
	Structure       string            `json:"structure"`
	StructureID     string            `json:"structureId"`
	StructureName   *string           `json:"structureName,omitempty"`
	Action          common.Action     `json:"action"`
	SeriesKey       *string           `json:"seriesKey,omitempty"`
	ObsKey          *string           `json:"obsKey,omitempty"`
	MetadataSetID   string            `json:"metadataSetId,omitempty"`
	MetadataSetName *string           `json:"metadataSetName,omitempty"`
	TargetTypes     []string          `json:"targetTypes,omitempty"`
	TargetIDs       []string          `json:"targetIds,omitempty"`
	TargetNames     []string          `json:"targetNames,omitempty"`
	Components      map[string]string `json:"components"`
	Others          map[string]string `json:"others,omitempty"`
}

func newCSVCommand(a *app) *cobra.Command {
	opts := &csvOptions{}
	cmd := &cobra.Command{
		Use:   "csv FILE",
		Short: "Read an SDMX-CSV table into JSON lines",
		Long: `Read an SDMX-CSV data or metadata table and print one JSON object per
record. Rejected rows are reported on stderr and reading continues; the
command exits non-zero when any row was rejected.

Table options come from the config file, the flags below, or an HTTP
Accept header value given with --accept.

Examples:
  sdmx csv observations.csv
  sdmx csv --labels both --keys series observations.csv
  sdmx csv --accept "application/vnd.sdmx.data+csv;version=2.0.0;labels=name" observations.csv
  sdmx csv --metadata reference.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCSV(cmd, opts, args[0])
		},
	}
	flags := cmd.Flags()
	flags.BoolVarP(&opts.metadata, "metadata", "m", false, "Read a metadata table")
	flags.StringVar(&opts.accept, "accept", "", "Accept header carrying labels, keys and timeFormat parameters")
	flags.StringSliceVar(&opts.components, "components", nil, "Column ids that are components; others are reported separately")
	flags.String("labels", "", "Column labels: "+sdmxcsv.LabelsTokens)
	flags.String("keys", "", "Key columns: "+sdmxcsv.KeysTokens)
	flags.String("time-format", "", "TIME_PERIOD rendering: "+sdmxcsv.TimeFormatTokens)
	flags.String("delimiter", "", "Field delimiter")
	_ = a.v.BindPFlag("csv.labels", flags.Lookup("labels"))
	_ = a.v.BindPFlag("csv.keys", flags.Lookup("keys"))
	_ = a.v.BindPFlag("csv.time_format", flags.Lookup("time-format"))
	_ = a.v.BindPFlag("csv.delimiter", flags.Lookup("delimiter"))
	return cmd
}

func (a *app) runCSV(cmd *cobra.Command, opts *csvOptions, path string) error {
	b, err := readInput(cmd, path)
	if err != nil {
		return err
	}

	options := []sdmxcsv.Option{sdmxcsv.WithLogger(a.logger), sdmxcsv.WithComma(a.cfg.Comma())}
	if len(opts.components) > 0 {
		options = append(options, sdmxcsv.WithComponents(opts.components...))
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	errOut := cmd.ErrOrStderr()
	var rejected int
	if opts.metadata {
		rejected, err = a.readMetadataTable(bytes.NewReader(b), out, errOut, opts, options)
	} else {
		rejected, err = a.readDataTable(bytes.NewReader(b), out, errOut, opts, options)
	}
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return reportParseError(errOut, path, err)
	}
	if rejected > 0 {
		return &issuesError{path: path, n: rejected}
	}
	return nil
}

func (a *app) readDataTable(r io.Reader, out *bufio.Writer, errOut io.Writer, opts *csvOptions, options []sdmxcsv.Option) (int, error) {
	tableOpts := a.cfg.DataOptions()
	if opts.accept != "" {
		var err error
		if tableOpts, err = sdmxcsv.ParseDataOptions(opts.accept); err != nil {
			return 0, err
		}
	}
	dr, err := sdmxcsv.NewDataReader(r, tableOpts, options...)
	if err != nil {
		return 0, err
	}
	h := dr.Headers()
	a.logger.Debug("reading data table",
		zap.Stringer("labels", tableOpts.Labels),
		zap.Stringer("keys", tableOpts.Keys),
		zap.Stringer("time_format", tableOpts.TimeFormat),
		zap.Int("columns", h.Len()))

	var rejected int
	for rec, err := range dr.Records() {
		if err != nil {
			if gosdmx.IsSourceError(err) {
				return rejected, err
			}
			rejected++
			printRowError(errOut, err)
			continue
		}
		line := csvLine{
			Line:          rec.Line,
			Structure:     rec.Structure.String(),
			StructureID:   rec.StructureID.String(),
			StructureName: rec.StructureName,
			Action:        rec.Action,
			SeriesKey:     rec.SeriesKey,
			ObsKey:        rec.ObsKey,
			Components:    byID(h, rec.Components),
			Others:        byID(h, rec.Others),
		}
		if err := writeLine(out, &line); err != nil {
			return rejected, err
		}
	}
	return rejected, nil
}

func (a *app) readMetadataTable(r io.Reader, out *bufio.Writer, errOut io.Writer, opts *csvOptions, options []sdmxcsv.Option) (int, error) {
	tableOpts := a.cfg.MetadataOptions()
	if opts.accept != "" {
		var err error
		if tableOpts, err = sdmxcsv.ParseMetadataOptions(opts.accept); err != nil {
			return 0, err
		}
	}
	mr, err := sdmxcsv.NewMetadataReader(r, tableOpts, options...)
	if err != nil {
		return 0, err
	}
	h := mr.Headers()

	var rejected int
	for rec, err := range mr.Records() {
		if err != nil {
			if gosdmx.IsSourceError(err) {
				return rejected, err
			}
			rejected++
			printRowError(errOut, err)
			continue
		}
		line := csvLine{
			Line:            rec.Line,
			Structure:       rec.Structure.String(),
			StructureID:     rec.StructureID.String(),
			StructureName:   rec.StructureName,
			Action:          rec.Action,
			MetadataSetID:   rec.MetadataSetID,
			MetadataSetName: rec.MetadataSetName,
			TargetTypes:     rec.TargetTypes,
			TargetIDs:       rec.TargetIDs,
			TargetNames:     rec.TargetNames,
			Components:      byID(h, rec.Components),
			Others:          byID(h, rec.Others),
		}
		if err := writeLine(out, &line); err != nil {
			return rejected, err
		}
	}
	return rejected, nil
}

func byID(h *sdmxcsv.Headers, cells map[int]string) map[string]string {
	if cells == nil {
		return nil
	}
	out := make(map[string]string, len(cells))
	for i, v := range cells {
		out[h.ID(i)] = v
	}
	return out
}

func writeLine(w *bufio.Writer, line *csvLine) error {
	b, err := gojson.Marshal(line)
	if err != nil {
		return err
	}
	w.Write(b)
	return w.WriteByte('\n')
}

func printRowError(w io.Writer, err error) {
	errorColor.Fprint(w, "rejected ")
	fmt.Fprintln(w, err.Error())
	if iss, ok := gosdmx.AsIssues(err); ok && len(iss) > 0 && iss[0].Hint != "" {
		hintColor.Fprintf(w, "  hint: %s\n", iss[0].Hint)
	}
}
