package commands

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	gosdmx "github.com/reoring/gosdmx"
	"github.com/reoring/gosdmx/data"
	"github.com/reoring/gosdmx/metadata"
	"github.com/reoring/gosdmx/structure"
	"github.com/reoring/gosdmx/wire"
)

const kindTokens = "data, metadata, structure"

// readInput reads a file argument; "-" reads the command's stdin.
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return b, nil
}

// inputFormat resolves --input-format; "auto" picks yaml for .yaml and .yml
// files and json for everything else.
func inputFormat(flag, path string) (string, error) {
	switch flag {
	case "json", "yaml":
		return flag, nil
	case "", "auto":
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			return "yaml", nil
		}
		return "json", nil
	}
	return "", fmt.Errorf("input format must be auto, json or yaml, got: %s", flag)
}

func newSource(format string, b []byte) gosdmx.Source {
	if format == "yaml" {
		return gosdmx.YAMLBytes(b)
	}
	return gosdmx.JSONBytes(b)
}

// parseMessage decodes one message of the given kind.
func parseMessage(ctx context.Context, kind string, src gosdmx.Source, opt gosdmx.ParseOpt) (wire.Record, error) {
	switch kind {
	case "data":
		m, err := data.Parse(ctx, src, opt)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case "metadata":
		m, err := metadata.Parse(ctx, src, opt)
		if err != nil {
			return nil, err
		}
		return &m, nil
	case "structure":
		m, err := structure.Parse(ctx, src, opt)
		if err != nil {
			return nil, err
		}
		return &m, nil
	}
	return nil, fmt.Errorf("kind must be one of %s, got: %s", kindTokens, kind)
}

// render encodes m as json or yaml. Indent applies to json only.
func render(ctx context.Context, m wire.Record, format string, indent int) ([]byte, error) {
	b, err := wire.Encode(m)
	if err != nil {
		return nil, err
	}
	if format == "yaml" {
		return gosdmx.JSONToYAML(ctx, b)
	}
	if indent > 0 {
		var buf bytes.Buffer
		if err := gojson.Indent(&buf, b, "", strings.Repeat(" ", indent)); err != nil {
			return nil, err
		}
		b = buf.Bytes()
	}
	return append(b, '\n'), nil
}
