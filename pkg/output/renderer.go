package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/pear2modman/pkg/errors"
	"github.com/arthur-debert/pear2modman/pkg/logging"
	"github.com/arthur-debert/pear2modman/pkg/output/styles"
	"github.com/arthur-debert/pear2modman/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

// Renderer writes results to a writer in one format
type Renderer struct {
	writer   io.Writer
	format   Format
	lipgloss *lipgloss.Renderer
}

// NewRenderer creates a renderer for w. FormatAuto is resolved here: only
// terminals get styled output.
func NewRenderer(w io.Writer, format Format) *Renderer {
	log := logging.GetLogger("output.renderer")

	if format == FormatAuto {
		format = FormatText
		if f, ok := w.(*os.File); ok {
			format = DetectFormat(f)
		}
	}

	r := &Renderer{writer: w, format: format}
	if format == FormatTerminal {
		r.lipgloss = lipgloss.NewRenderer(w)
		pterm.EnableColor()
	} else {
		pterm.DisableColor()
	}

	log.Debug().
		Str("format", format.String()).
		Str("TERM", os.Getenv("TERM")).
		Msg("Created renderer")

	return r
}

// Format returns the resolved output format
func (r *Renderer) Format() Format {
	return r.format
}

func (r *Renderer) style(name, text string) string {
	if r.lipgloss == nil {
		return text
	}
	return styles.GetStyle(name).Renderer(r.lipgloss).Render(text)
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.writer, s)
	return err
}

// RenderJSON writes v as indented JSON
func (r *Renderer) RenderJSON(v interface{}) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode JSON output")
	}
	return nil
}

// RenderGenerated reports a written manifest
func (r *Renderer) RenderGenerated(manifestFile string, lines int) error {
	if r.format == FormatJSON {
		return r.RenderJSON(map[string]interface{}{
			"manifest": manifestFile,
			"lines":    lines,
		})
	}
	return r.println(r.style("Success", "Modman file generated:") + " " + r.style("FilePath", manifestFile))
}

// RenderFailure reports a failed run
func (r *Renderer) RenderFailure(err error) error {
	if r.format == FormatJSON {
		payload := map[string]interface{}{
			"error": err.Error(),
			"code":  errors.GetErrorCode(err),
		}
		if details := errors.GetErrorDetails(err); len(details) > 0 {
			payload["details"] = details
		}
		return r.RenderJSON(payload)
	}
	return r.println(r.style("Error", "Generator failed:") + " " + err.Error())
}

// RenderMessage renders a message with a named style
func (r *Renderer) RenderMessage(style, message string) error {
	return r.println(r.style(style, message))
}

// RenderPlan renders the copies and manifest lines of plan
func (r *Renderer) RenderPlan(plan *types.Plan, dryRun bool) error {
	if r.format == FormatJSON {
		return r.RenderJSON(plan)
	}

	if dryRun {
		if err := r.println(r.style("DryRunBanner", "Dry run: nothing was copied or written")); err != nil {
			return err
		}
	}

	copies := pterm.TableData{{"Target", "Kind", "From", "To"}}
	lines := pterm.TableData{{"Target", "Source", "Destination", "Granularity"}}
	for _, step := range plan.Steps {
		switch {
		case step.Copy != nil:
			copies = append(copies, []string{step.Target, string(step.Copy.Kind), step.Copy.From, step.Copy.To})
		case step.Mapping != nil:
			lines = append(lines, []string{step.Target, step.Mapping.Source, step.Mapping.Destination, string(step.Mapping.Granularity)})
		}
	}

	if err := r.renderTable("Copies", copies); err != nil {
		return err
	}
	return r.renderTable("Manifest", lines)
}

func (r *Renderer) renderTable(title string, data pterm.TableData) error {
	if err := r.println(r.style("Heading", title)); err != nil {
		return err
	}
	if len(data) == 1 {
		return r.println(r.style("Muted", "(none)"))
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to render %s table", title)
	}
	return r.println(table)
}

// RenderRaw writes pre-rendered content such as YAML or TOML as is
func (r *Renderer) RenderRaw(content []byte) error {
	_, err := r.writer.Write(content)
	return err
}
