package digest

import (
	"fmt"
	"html"
	"strings"

	"regnews/internal/model"
)

// Format renders the articles as a self-contained HTML document body for the
// email digest.
func Format(articles []model.Article) string {
	if len(articles) == 0 {
		return "<h3>No new regulatory news found in this cycle.</h3>"
	}

	var b strings.Builder
	b.WriteString("<h2>Regulatory News Digest</h2>")

	for _, a := range articles {
		pubDate := "N/A"
		if !a.PublicationDate.IsZero() {
			pubDate = a.PublicationDate.Format("2006-01-02 15:04")
		}

		fmt.Fprintf(&b, `
		<div style="border: 1px solid #ddd; padding: 10px; margin-bottom: 10px;">
			<p style="font-weight: bold; font-size: 16px;">
				<a href="%s" target="_blank">%s</a>
			</p>
			<p style="font-size: 12px; color: #555;">Source: %s | Time: %s</p>
		</div>
		`, a.SourceURL, html.EscapeString(a.Title), html.EscapeString(a.SourceCategory), pubDate)
	}

	return b.String()
}
