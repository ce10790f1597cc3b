package render

import (
	"fmt"
	"html/template"
	"io"

	"github.com/jmylchreest/blend/internal/gradient"
)

var htmlTemplate = template.Must(template.New("gradient").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Start}} → {{.End}} in {{.Steps}} steps</title>
<style>
.models { display: flex; flex-wrap: wrap; flex-direction: row; justify-content: flex-start; align-content: flex-start; align-items: baseline; gap: 0.5em 1em; }
.model { width: max-content; min-width: max-content; display: inline-block; }
.model h3 { text-align: center; }
.swatch { display: inline-block; height: 1.2lh; width: 8em; text-align: center; font-weight: bold; }
</style>
</head>
<body>
<p>{{.Start}} → {{.End}}, {{.Steps}} steps</p>
<div class="models">
{{- range .Models}}
<div class="model">
<h3><a href="{{.Reference}}" target="_blank">{{.Model}}</a></h3>
<ol>
{{- range .Swatches}}
<li><span class="swatch" style="background-color: {{.Background.Hex}}; color: {{.Text.Hex}}"><tt>{{.Background.Hex}}</tt></span></li>
{{- end}}
</ol>
</div>
{{- end}}
</div>
</body>
</html>
`))

type htmlPage struct {
	Start  string
	End    string
	Steps  int
	Models []gradient.Result
}

// writeHTML writes a self-contained page with one coloured list per model.
func writeHTML(w io.Writer, results []gradient.Result, opts Options) error {
	page := htmlPage{
		Start:  opts.Start.Hex(),
		End:    opts.End.Hex(),
		Steps:  opts.Steps,
		Models: results,
	}
	if err := htmlTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}
	return nil
}
