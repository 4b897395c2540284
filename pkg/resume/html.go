package resume

import (
	"html/template"
	"io"

	"resume-builder-backend/internal/domain"
)

var pageTmpl = template.Must(template.New("resume").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Header.Name}} - Resume</title>
<style>
body { font-family: Georgia, serif; max-width: 800px; margin: 2rem auto; color: #222; }
header { display: flex; gap: 1.5rem; align-items: center; border-bottom: 2px solid #1E3A5F; padding-bottom: 1rem; }
header img { width: 96px; height: 96px; border-radius: 50%; object-fit: cover; }
h1 { margin: 0; color: #1E3A5F; }
h2 { color: #1E3A5F; border-bottom: 1px solid #ccc; margin-top: 1.5rem; }
.meta { color: #555; font-size: 0.9rem; }
.entry { margin-bottom: 0.75rem; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
<header>
{{- if .Header.Photo}}
<img src="{{.Header.Photo}}" alt="{{.Header.Name}}">
{{- end}}
<div>
<h1>{{.Header.Name}}</h1>
<div class="meta">@{{.Header.Username}} | {{.Header.Mobile}} | {{.Header.Location}}</div>
</div>
</header>
{{- range .Sections}}
<section>
<h2>{{.Title}}</h2>
{{- range .Entries}}
<div class="entry">
<strong>{{.Heading}}</strong>
{{- if .Meta}}<div class="meta">{{.Meta}}</div>{{end}}
{{- if .Body}}<p>{{.Body}}</p>{{end}}
{{- if .Link}}<div><a href="{{.Link}}">{{.Link}}</a></div>{{end}}
</div>
{{- end}}
</section>
{{- end}}
</body>
</html>
`))

// RenderHTML writes a printable résumé page for doc.
func RenderHTML(w io.Writer, doc *domain.ProfileDocument) error {
	return pageTmpl.Execute(w, struct {
		Header   Header
		Sections []Section
	}{
		Header:   headerOf(doc.User),
		Sections: Sections(doc),
	})
}
