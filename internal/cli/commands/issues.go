package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	gosdmx "github.com/reoring/gosdmx"
)

var (
	pathColor    = color.New(color.FgCyan)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	hintColor    = color.New(color.FgWhite, color.Faint)
	successColor = color.New(color.FgGreen, color.Bold)
)

// printIssues writes one line per issue, followed by its hint when present.
func printIssues(w io.Writer, label *color.Color, name string, iss gosdmx.Issues) {
	for _, it := range iss {
		label.Fprintf(w, "%s ", name)
		pathColor.Fprintf(w, "%s", it.Path)
		fmt.Fprintf(w, " [%s] %s\n", it.Code, it.Message)
		if it.Hint != "" {
			hintColor.Fprintf(w, "  hint: %s\n", it.Hint)
		}
	}
}

// reportParseError prints the issues of a failed parse and returns the error
// the command should exit with. Source errors are returned unchanged.
func reportParseError(w io.Writer, path string, err error) error {
	iss, ok := gosdmx.AsIssues(err)
	if !ok || gosdmx.IsSourceError(err) {
		return err
	}
	printIssues(w, errorColor, "error", iss)
	return &issuesError{path: path, n: len(iss)}
}

// issuesError is returned when a document was read but failed validation.
type issuesError struct {
	path string
	n    int
}

func (e *issuesError) Error() string {
	if e.n == 1 {
		return fmt.Sprintf("%s: 1 issue", e.path)
	}
	return fmt.Sprintf("%s: %d issues", e.path, e.n)
}

// IsValidationError reports whether err means the input was read but did not
// validate.
func IsValidationError(err error) bool {
	var ie *issuesError
	return errors.As(err, &ie)
}
