// Package output renders command results as styled text or as an encoded document.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format is an output encoding.
type Format string

const (
	Text    Format = "text"
	JSON    Format = "json"
	YAML    Format = "yaml"
	Msgpack Format = "msgpack"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat converts a format name into a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, JSON, YAML, Msgpack:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (use text, json, yaml or msgpack)", ErrUnknownFormat, s)
}

// Row is one labelled value in text output.
type Row struct {
	Label string
	Value interface{}
}

// Report is a result that can be written in any Format. Structured formats encode
// the report value itself, so implementations should carry json, yaml and msgpack
// struct tags.
type Report interface {
	Heading() string
	Rows() []Row
}

// Options controls text rendering.
type Options struct {
	Color bool
}

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Write renders report to w in the given format.
func Write(w io.Writer, format Format, report Report, opts Options) error {
	switch format {
	case Text, "":
		return writeText(w, report, opts)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case Msgpack:
		if err := msgpack.NewEncoder(w).Encode(report); err != nil {
			return fmt.Errorf("encoding msgpack: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, report Report, opts Options) error {
	rows := report.Rows()

	width := 0
	for _, r := range rows {
		if n := len(r.Label) + 1; n > width {
			width = n
		}
	}

	var sb strings.Builder
	if h := report.Heading(); h != "" {
		sb.WriteString(style(headingStyle, h, opts))
		sb.WriteString("\n")
	}
	for _, r := range rows {
		label := fmt.Sprintf("%-*s", width, r.Label+":")
		sb.WriteString(style(labelStyle, label, opts))
		sb.WriteString(" ")
		sb.WriteString(fmt.Sprint(r.Value))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func style(s lipgloss.Style, text string, opts Options) string {
	if !opts.Color {
		return text
	}
	return s.Render(text)
}
