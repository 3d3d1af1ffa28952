package controller

import (
	"bytes"
	"context"
	"image/color"
	"testing"
	"time"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"semar-etiquetas/form"
	"semar-etiquetas/logging"
	"semar-etiquetas/render"
	"semar-etiquetas/repository"
	"semar-etiquetas/service"
)

// fakePrinter stands in for headless Chrome
type fakePrinter struct {
	pdfCalls int
	pngCalls int
	png      []byte
	err      error
}

func (p *fakePrinter) GeneratePDF(ctx context.Context, state form.State) ([]byte, error) {
	p.pdfCalls++
	if p.err != nil {
		return nil, p.err
	}
	return []byte("%PDF-1.4 fake"), nil
}

func (p *fakePrinter) GeneratePNG(ctx context.Context, state form.State, count int) (map[int][]byte, error) {
	p.pngCalls++
	if p.err != nil {
		return nil, p.err
	}
	pages := make(map[int][]byte, count)
	for i := 1; i <= count; i++ {
		pages[i] = p.png
	}
	return pages, nil
}

func testPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, imaging.New(794, 520, color.White), imaging.PNG))
	return buf.Bytes()
}

type testDeps struct {
	printer   *fakePrinter
	printJobs *service.PrintJobService
	sessions  *service.SessionService
	labels    *LabelController
	session   *SessionController
	jobs      *PrintJobController
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	log := logging.Nop()
	printer := &fakePrinter{png: testPNG(t)}
	printJobs := service.NewPrintJobService(repository.NewMemoryPrintJobRepository(), log, nil)
	sessions := service.NewSessionService(time.Hour, form.DefaultPlacaTitle, log, nil)
	labels := NewLabelController(
		render.NewRenderer(render.DefaultBranding),
		printer,
		printJobs,
		service.NewPNGStore(time.Minute),
		form.DefaultPlacaTitle,
		50*time.Millisecond,
		log,
	)
	return &testDeps{
		printer:   printer,
		printJobs: printJobs,
		sessions:  sessions,
		labels:    labels,
		session:   NewSessionController(sessions, labels, log),
		jobs:      NewPrintJobController(printJobs, log),
	}
}
