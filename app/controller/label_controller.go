package controller

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"semar-etiquetas/form"
	"semar-etiquetas/labels"
	"semar-etiquetas/models"
	"semar-etiquetas/render"
	"semar-etiquetas/service"
)

// validFormats is a map of valid format values
var validFormats = map[string]bool{
	"html": true,
	"pdf":  true,
	"png":  true,
}

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// thumbSize is the longest side of a PNG preview
const thumbSize = 360

// LabelController handles HTTP requests for label sheets and print files
type LabelController struct {
	renderer   *render.Renderer
	printer    service.PrinterInterface
	printJobs  service.PrintJobServiceInterface
	pngStore   *service.PNGStore
	placaTitle string
	printDelay time.Duration
	log        *zap.SugaredLogger
}

// NewLabelController creates a new LabelController
func NewLabelController(
	renderer *render.Renderer,
	printer service.PrinterInterface,
	printJobs service.PrintJobServiceInterface,
	pngStore *service.PNGStore,
	placaTitle string,
	printDelay time.Duration,
	log *zap.SugaredLogger,
) *LabelController {
	return &LabelController{
		renderer:   renderer,
		printer:    printer,
		printJobs:  printJobs,
		pngStore:   pngStore,
		placaTitle: placaTitle,
		printDelay: printDelay,
		log:        log,
	}
}

// parseFormat reads ?format=, defaulting to html
func parseFormat(r *http.Request) (string, bool) {
	format := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format")))
	if format == "" {
		format = "html"
	}
	return format, validFormats[format]
}

// GenerateLabels handles GET /labels?format=html|pdf|png&mode=IFOOD&orderNumber=1234...
// Builds the form from the query string and returns the print file for it
func (c *LabelController) GenerateLabels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		c.log.Warnf("❌ GenerateLabels: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	format, ok := parseFormat(r)
	if !ok {
		c.log.Warnf("❌ GenerateLabels: Invalid format: %s", format)
		http.Error(w, "Invalid format. Valid formats: html, pdf, png", http.StatusBadRequest)
		return
	}

	state, err := form.FromQueryWithPlacaTitle(r.URL.Query(), c.placaTitle)
	if err != nil {
		c.log.Warnf("❌ GenerateLabels: Invalid form: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	c.Print(w, r, "GenerateLabels", state, format)
}

// Print writes the print file for state in format
// Invalid forms are refused with 409 so nothing empty reaches the printer
func (c *LabelController) Print(w http.ResponseWriter, r *http.Request, op string, state form.State, format string) {
	if !labels.IsValid(state) {
		c.log.Warnf("⚠️  %s: form is not ready to print (mode=%s)", op, state.Mode)
		http.Error(w, fmt.Sprintf("Form is not ready to print in mode %s", state.Mode), http.StatusConflict)
		return
	}

	built := labels.Build(state)
	ctx := r.Context()

	switch format {
	case "html":
		var buf bytes.Buffer
		opts := render.SheetOptions{
			Mode:       state.Mode,
			AutoPrint:  r.URL.Query().Get("autoprint") == "1",
			PrintDelay: c.printDelay,
		}
		if err := c.renderer.Sheet(&buf, built, opts); err != nil {
			c.log.Errorf("❌ %s: Error rendering HTML: %v", op, err)
			http.Error(w, fmt.Sprintf("Failed to render labels: %v", err), http.StatusInternalServerError)
			return
		}
		c.record(r, op, state, len(built), format)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(buf.Bytes()); err != nil {
			c.log.Errorf("❌ %s: Error writing HTML response: %v", op, err)
		}

	case "pdf":
		pdfData, err := c.printer.GeneratePDF(ctx, state)
		if err != nil {
			c.log.Errorf("❌ %s: Error generating PDF: %v", op, err)
			http.Error(w, fmt.Sprintf("Failed to generate PDF: %v", err), http.StatusInternalServerError)
			return
		}
		c.record(r, op, state, len(built), format)

		filename := fmt.Sprintf("%s.pdf", baseFilename(state))
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(pdfData); err != nil {
			c.log.Errorf("❌ %s: Error writing PDF response: %v", op, err)
		}

	case "png":
		pngs, err := c.printer.GeneratePNG(ctx, state, len(built))
		if err != nil {
			c.log.Errorf("❌ %s: Error generating PNG: %v", op, err)
			http.Error(w, fmt.Sprintf("Failed to generate PNG: %v", err), http.StatusInternalServerError)
			return
		}
		c.record(r, op, state, len(built), format)

		sessionID := c.pngStore.Put(state.Mode, pngs)
		response := models.PNGResponse{
			SessionID:  sessionID,
			TotalPages: len(pngs),
			Mode:       state.Mode,
			Pages:      pageLinks(sessionID, baseFilename(state), pngs),
		}
		writeJSON(w, c.log, op, http.StatusOK, response)
	}
}

// record stores the print job; a failure is logged and does not fail the print
func (c *LabelController) record(r *http.Request, op string, state form.State, count int, format string) {
	if _, err := c.printJobs.Record(r.Context(), state, count, format); err != nil {
		c.log.Errorf("❌ %s: Error recording print job: %v", op, err)
	}
}

// baseFilename names downloads after the mode and batch title
func baseFilename(state form.State) string {
	title, _ := labels.Summary(state)
	title = strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r == '-':
			return r
		case r == ' ':
			return '_'
		}
		return -1
	}, title)
	if title == "" {
		return "etiquetas_" + strings.ToLower(string(state.Mode))
	}
	return fmt.Sprintf("etiquetas_%s_%s", strings.ToLower(string(state.Mode)), title)
}

// pageLinks lists the download links of stored pages in page order
func pageLinks(sessionID, base string, pngs map[int][]byte) []models.PageLink {
	pages := make([]models.PageLink, 0, len(pngs))
	for i := 1; i <= len(pngs); i++ {
		if _, exists := pngs[i]; !exists {
			continue
		}
		downloadPath := fmt.Sprintf("/labels/png-page?session=%s&page=%d", sessionID, i)
		filename := fmt.Sprintf("%s_%d.png", base, i)
		if len(pngs) == 1 {
			filename = base + ".png"
		}
		pages = append(pages, models.PageLink{
			Page:     i,
			URL:      downloadPath,
			ThumbURL: downloadPath + "&thumb=1",
			Filename: filename,
		})
	}
	return pages
}

// RenderLabels handles GET /labels/render?mode=IFOOD&orderNumber=1234...
// Returns the bare sheet (used by chromedp for PDF/PNG generation)
// The query is a form already accepted by State.Query, so it is restored rather than re-typed
func (c *LabelController) RenderLabels(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		c.log.Warnf("❌ RenderLabels: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	state, err := form.RestoreQuery(r.URL.Query(), c.placaTitle)
	if err != nil {
		c.log.Warnf("❌ RenderLabels: Invalid form: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := c.renderer.Sheet(&buf, labels.Build(state), render.SheetOptions{Mode: state.Mode}); err != nil {
		c.log.Errorf("❌ RenderLabels: Error rendering HTML: %v", err)
		http.Error(w, fmt.Sprintf("Failed to render labels: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		c.log.Errorf("❌ RenderLabels: Error writing HTML response: %v", err)
	}
}

// DownloadPNGPage handles GET /labels/png-page?session=XXX&page=N[&thumb=1]
// Returns a stored PNG page, or a JPEG preview of it when thumb=1
func (c *LabelController) DownloadPNGPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		c.log.Warnf("❌ DownloadPNGPage: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sessionID := strings.TrimSpace(r.URL.Query().Get("session"))
	pageStr := strings.TrimSpace(r.URL.Query().Get("page"))

	if sessionID == "" {
		c.log.Warnf("❌ DownloadPNGPage: session parameter is required")
		http.Error(w, "session parameter is required", http.StatusBadRequest)
		return
	}

	pageNum, err := strconv.Atoi(pageStr)
	if err != nil || pageNum < 1 {
		c.log.Warnf("❌ DownloadPNGPage: Invalid page number: %s", pageStr)
		http.Error(w, "Invalid page number", http.StatusBadRequest)
		return
	}

	pngData, mode, ok := c.pngStore.Get(sessionID, pageNum)
	if !ok {
		c.log.Warnf("❌ DownloadPNGPage: Page %d not found in session %s", pageNum, sessionID)
		http.Error(w, fmt.Sprintf("Page %d not found or session expired", pageNum), http.StatusNotFound)
		return
	}

	if len(pngData) < len(pngSignature) || !bytes.Equal(pngData[:len(pngSignature)], pngSignature) {
		c.log.Errorf("❌ DownloadPNGPage: Invalid PNG signature for page %d", pageNum)
		http.Error(w, "Invalid PNG data", http.StatusInternalServerError)
		return
	}

	contentType := "image/png"
	filename := fmt.Sprintf("etiquetas_%s_%d.png", strings.ToLower(string(mode)), pageNum)
	body := pngData
	if r.URL.Query().Get("thumb") == "1" {
		body, err = service.Thumbnail(pngData, thumbSize)
		if err != nil {
			c.log.Errorf("❌ DownloadPNGPage: Error building thumbnail: %v", err)
			http.Error(w, "Failed to build thumbnail", http.StatusInternalServerError)
			return
		}
		contentType = "image/jpeg"
		filename = strings.TrimSuffix(filename, ".png") + "_thumb.jpg"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(body); err != nil {
		c.log.Errorf("❌ DownloadPNGPage: Error writing response: %v", err)
	}
}

// writeJSON encodes v as the response body
func writeJSON(w http.ResponseWriter, log *zap.SugaredLogger, op string, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("❌ %s: Error encoding JSON response: %v", op, err)
	}
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, form.ErrUnknownField),
		errors.Is(err, form.ErrFieldKind),
		errors.Is(err, form.ErrUnknownMode):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
