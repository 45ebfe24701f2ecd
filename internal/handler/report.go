package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
)

// reportRenderer turns a pool into a printable HTML maintenance report.
// The report is written as Markdown and converted with goldmark; raw HTML in
// owner-supplied text is dropped by the renderer.
type reportRenderer struct {
	md       goldmark.Markdown
	template *template.Template
}

type reportPageData struct {
	Title   string
	Content template.HTML
}

func newReportRenderer() *reportRenderer {
	tmpl := template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #1f2933; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #cbd2d9; padding: 0.4rem 0.6rem; text-align: left; }
th { background: #f5f7fa; }
</style>
</head>
<body>
{{.Content}}
</body>
</html>`))

	return &reportRenderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		template: tmpl,
	}
}

// markdown builds the report source: pool details, the logbook as a table and
// the advisories for the most recent entry.
func (rr *reportRenderer) markdown(p domain.Pool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Pool report: %s\n\n", cell(p.OwnerName))
	for _, line := range strings.Split(p.DisplayInfo(), "\n") {
		fmt.Fprintf(&b, "- %s\n", cell(line))
	}
	if p.NextMaintenance != "" {
		fmt.Fprintf(&b, "- Next maintenance: %s\n", cell(p.NextMaintenance))
	}

	b.WriteString("\n## Logbook\n\n")
	if len(p.Logbook) == 0 {
		b.WriteString("No maintenance logs available.\n")
		return b.String()
	}
	b.WriteString("| Date | pH | Chlorine (ppm) | Notes |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, l := range p.Logbook {
		fmt.Fprintf(&b, "| %s | %g | %g | %s |\n", cell(l.Date), l.PHLevel, l.ChlorineLevel, cell(l.Notes))
	}

	latest := p.Logbook[len(p.Logbook)-1]
	adv := latest.Advisories()
	fmt.Fprintf(&b, "\n## Latest readings (%s)\n\n", cell(latest.Date))
	fmt.Fprintf(&b, "- **pH** (%s): %s\n", adv.PH.Level, adv.PH.Message)
	fmt.Fprintf(&b, "- **Chlorine** (%s): %s\n", adv.Chlorine.Level, adv.Chlorine.Message)
	return b.String()
}

// render writes the complete HTML page for p.
func (rr *reportRenderer) render(p domain.Pool) ([]byte, error) {
	var body bytes.Buffer
	if err := rr.md.Convert([]byte(rr.markdown(p)), &body); err != nil {
		return nil, fmt.Errorf("convert report markdown: %w", err)
	}
	var page bytes.Buffer
	err := rr.template.Execute(&page, reportPageData{
		Title:   "Pool report: " + p.OwnerName,
		Content: template.HTML(body.String()),
	})
	if err != nil {
		return nil, fmt.Errorf("execute report template: %w", err)
	}
	return page.Bytes(), nil
}

// cell flattens s onto one line and escapes table delimiters.
func cell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

// GetPoolReport handles GET /pools/{poolId}/report.
func (s *Server) GetPoolReport(w http.ResponseWriter, r *http.Request) {
	id, ok := s.poolID(w, r)
	if !ok {
		return
	}
	pool, err := s.pools.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, msgPoolNotFound)
		return
	}
	page, err := s.report.render(pool)
	if err != nil {
		s.writeError(w, r, err, msgPoolNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page)
}
