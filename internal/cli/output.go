package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/angelmondragon/codedeploy-go/pkg/awsjson"
)

type printer struct {
	w      io.Writer
	format string
}

// print writes v as indented JSON, or calls text for the text format.
func (p printer) print(v any, text func(w io.Writer) error) error {
	if p.format == OutputText && text != nil {
		tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
		if err := text(tw); err != nil {
			return err
		}
		return tw.Flush()
	}
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// names prints a list under key in JSON and one name per line in text.
func (p printer) names(key string, values []string) error {
	if values == nil {
		values = []string{}
	}
	return p.print(map[string][]string{key: values}, func(w io.Writer) error {
		for _, v := range values {
			if _, err := fmt.Fprintln(w, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func row(w io.Writer, cols ...string) error {
	_, err := fmt.Fprintln(w, strings.Join(cols, "\t"))
	return err
}

func formatTime(ts *awsjson.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return "-"
	}
	return ts.UTC().Format(time.RFC3339)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
