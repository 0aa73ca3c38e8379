package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"

	"variant-studio/models"
	"variant-studio/utils"
)

// SheetFileName is the contact sheet's name inside workspaces and archives
const SheetFileName = "sheet.pdf"

const sheetHTMLName = "sheet.html"

var sheetTemplate = template.Must(template.New("sheet").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  @page { size: A4; margin: 10mm; }
  body { font-family: sans-serif; margin: 0; }
  h1 { font-size: 14pt; margin: 0 0 6mm; }
  .grid { display: grid; grid-template-columns: repeat(4, 1fr); gap: 4mm; }
  figure { margin: 0; page-break-inside: avoid; }
  img { width: 100%; display: block; border: 1px solid #ddd; }
  figcaption { font-size: 8pt; text-align: center; margin-top: 1mm; }
</style>
</head>
<body>
<h1>Category {{.CategoryID}} &middot; {{len .Items}} variants</h1>
<div class="grid">
{{range .Items}}  <figure><img src="{{.File}}"><figcaption>#{{.ID}}</figcaption></figure>
{{end}}</div>
</body>
</html>
`))

type sheetItem struct {
	ID   int
	File string
}

// SheetRenderer prints variant grids to PDF with headless Chrome
// Implements SheetRendererInterface
type SheetRenderer struct {
	chromePath string
	timeout    time.Duration
}

// NewSheetRenderer creates a new SheetRenderer. An empty chromePath means auto-detect.
func NewSheetRenderer(chromePath string) *SheetRenderer {
	if chromePath == "" {
		chromePath = detectChromePath()
	}
	return &SheetRenderer{
		chromePath: chromePath,
		timeout:    60 * time.Second,
	}
}

// Ensure SheetRenderer implements SheetRendererInterface
var _ SheetRendererInterface = (*SheetRenderer)(nil)

// chromeCandidates are probed in order when no browser path is configured
var chromeCandidates = []string{
	"/usr/bin/chromium",
	"/usr/bin/chromium-browser",
	"/usr/bin/google-chrome",
	"/usr/bin/google-chrome-stable",
	"/snap/bin/chromium",
}

// detectChromePath returns the first installed browser, or "" to let chromedp search PATH
func detectChromePath() string {
	for _, candidate := range chromeCandidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// RenderSheetHTML renders the contact sheet page, linking images by archive file name
func RenderSheetHTML(categoryID string, variants []models.RenderedVariant) (string, error) {
	items := make([]sheetItem, 0, len(variants))
	for _, v := range variants {
		items = append(items, sheetItem{ID: v.TemplateID, File: utils.ArchiveFileName(v.TemplateID)})
	}

	var buf bytes.Buffer
	err := sheetTemplate.Execute(&buf, struct {
		CategoryID string
		Items      []sheetItem
	}{categoryID, items})
	if err != nil {
		return "", fmt.Errorf("failed to execute sheet template: %w", err)
	}
	return buf.String(), nil
}

// RenderPDF writes the sheet page into ws, opens it in Chrome and prints it
func (r *SheetRenderer) RenderPDF(ctx context.Context, ws *Workspace, categoryID string, variants []models.RenderedVariant) ([]byte, error) {
	html, err := RenderSheetHTML(categoryID, variants)
	if err != nil {
		return nil, err
	}
	htmlPath, err := ws.WriteFile(sheetHTMLName, []byte(html))
	if err != nil {
		return nil, err
	}
	if htmlPath, err = filepath.Abs(htmlPath); err != nil {
		return nil, fmt.Errorf("failed to resolve sheet path: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
		chromedp.Flag("allow-file-access-from-files", true),
	)
	if r.chromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	log.Printf("🖨️  Printing contact sheet for %d variants", len(variants))

	var pdfBuf []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body"),
		// Wait for every image to decode before printing
		chromedp.Evaluate(`Promise.all(Array.from(document.images).map(img => img.decode().catch(() => null)))`, nil,
			func(p *runtime.EvaluateParams) *runtime.EvaluateParams { return p.WithAwaitPromise(true) }),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate contact sheet PDF: %w", err)
	}

	log.Printf("✓ Contact sheet printed (%d bytes)", len(pdfBuf))
	return pdfBuf, nil
}
