package report

import (
	"io"
	"os"
	"text/template"

	"github.com/pingcap/errors"
)

var consoleTpl = template.Must(template.New("console").Parse(consoleTemplate))

const consoleTemplate = `{{ range .Records -}}
Question: {{ .Question }}
Expected SQL: {{ .ExpectedSQL }}
Generated SQL: {{ .GeneratedSQL }}
{{- if .ParseErr }}
Parse error: {{ .ParseErr }}
{{- else if .DiffString }}
{{ .DiffString }}
{{- end }}
Valid query: {{ .Valid }}
Result match: {{ .Outcome }}
Similarity: {{ printf "%.3f" .Similarity }} (clauses: {{ printf "%.3f" .ClauseSimilarity }})
{{- if .Changes }}
Changes:
{{- range .Changes }}
  {{ .Action }}: {{ .Text }}
{{- end }}
{{- end }}
{{- if .ExpectedResult.Err }}
Expected error: {{ .ExpectedResult.Err }}
{{- end }}
{{- if .GeneratedResult.Err }}
Generated error: {{ .GeneratedResult.Err }}
{{- end }}
------
{{ end -}}
Valid queries: {{ .Stats.ValidCount }}/{{ .Stats.Total }} ({{ printf "%.1f" .Stats.ValidPct }}%)
Exact matches: {{ .Stats.ExactCount }}/{{ .Stats.Total }} ({{ printf "%.1f" .Stats.ExactPct }}%)
Partial matches: {{ .Stats.PartialCount }}/{{ .Stats.Total }} ({{ printf "%.1f" .Stats.PartialPct }}%)
Partial-incomplete matches: {{ .Stats.PartialIncompleteCount }}/{{ .Stats.Total }} ({{ printf "%.1f" .Stats.PartialIncompletePct }}%)
Mean similarity (valid queries): {{ printf "%.3f" .Stats.MeanSimilarity }}
Mean change count (valid queries): {{ printf "%.2f" .Stats.MeanChangeCount }}
Mean change similarity: {{ printf "%.3f" .Stats.MeanChangeSimilarity }}
Execution errors: expected {{ printf "%.1f" .Stats.ExpectedErrPct }}%, generated {{ printf "%.1f" .Stats.GeneratedErrPct }}%
`

// RenderText writes the plain-text report. The output carries no terminal
// escape codes, coloring is left to whatever displays it.
func RenderText(r *Report, w io.Writer) error {
	return errors.Trace(consoleTpl.Execute(w, r))
}

// RenderHTML writes the HTML report to outFilename.
func RenderHTML(r *Report, outFilename string) error {
	file, err := os.Create(outFilename)
	if err != nil {
		return errors.Trace(err)
	}
	defer file.Close()

	return errors.Trace(htmlTpl.Execute(file, r))
}
