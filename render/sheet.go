package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"semar-etiquetas/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var sheetTemplate = template.Must(template.ParseFS(templateFS, "templates/sheet.html"))

// SheetOptions controls the page around the labels
type SheetOptions struct {
	Mode       models.LabelMode // used for the empty message and orientation when there are no labels
	AutoPrint  bool             // open the print dialog once the page settles
	PrintDelay time.Duration
}

type sheetData struct {
	Title        string
	Landscape    bool
	Cards        []LabelView
	EmptyMessage string
	AutoPrint    bool
	PrintDelayMS int64
}

// Sheet writes the printable HTML page for labels
func (r *Renderer) Sheet(w io.Writer, labels []models.LabelData, opts SheetOptions) error {
	mode := opts.Mode
	if len(labels) > 0 {
		mode = labels[0].Mode
	}

	data := sheetData{
		Title:        fmt.Sprintf("%s - %s", r.Branding.Caption, mode),
		Landscape:    mode == models.LabelModePlaca,
		Cards:        make([]LabelView, 0, len(labels)),
		EmptyMessage: EmptyMessage(mode),
		AutoPrint:    opts.AutoPrint,
		PrintDelayMS: opts.PrintDelay.Milliseconds(),
	}
	for _, l := range labels {
		data.Cards = append(data.Cards, r.Label(l))
	}

	if err := sheetTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to execute sheet template: %w", err)
	}
	return nil
}

// SheetHTML renders the sheet into a string
func (r *Renderer) SheetHTML(labels []models.LabelData, opts SheetOptions) (string, error) {
	var buf bytes.Buffer
	if err := r.Sheet(&buf, labels, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}
