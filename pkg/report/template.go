package report

import "html/template"

var htmlTpl = template.Must(template.New("report").Parse(tpl))

const tpl = `
<!DOCTYPE html>
<html>
 <head>
  <meta charset="UTF-8">
  <title>NL2SQL Evaluation Report</title>
 </head>
 <body>
  <h1>NL2SQL Evaluation Report</h1>
  <h2>Summary:</h2>
  <table>
   <tr>
    <th>Category</th>
    <th>Count</th>
    <th>Percent</th>
   </tr>
   <tr>
    <td>Total</td>
    <td>{{ .Stats.Total }}</td>
    <td></td>
   </tr>
   <tr>
    <td>Valid</td>
    <td>{{ .Stats.ValidCount }}</td>
    <td>{{ printf "%.1f" .Stats.ValidPct }}%</td>
   </tr>
   <tr>
    <td>Exact</td>
    <td>{{ .Stats.ExactCount }}</td>
    <td>{{ printf "%.1f" .Stats.ExactPct }}%</td>
   </tr>
   <tr>
    <td>Partial</td>
    <td>{{ .Stats.PartialCount }}</td>
    <td>{{ printf "%.1f" .Stats.PartialPct }}%</td>
   </tr>
   <tr>
    <td>Partial Incomplete</td>
    <td>{{ .Stats.PartialIncompleteCount }}</td>
    <td>{{ printf "%.1f" .Stats.PartialIncompletePct }}%</td>
   </tr>
   <tr>
    <td>No Match</td>
    <td>{{ .Stats.NoMatchCount }}</td>
    <td></td>
   </tr>
  </table>
  <b>Mean similarity (valid queries) : </b>{{ printf "%.3f" .Stats.MeanSimilarity }}<br>
  <b>Mean change count (valid queries) : </b>{{ printf "%.2f" .Stats.MeanChangeCount }}<br>
  <b>Mean change similarity : </b>{{ printf "%.3f" .Stats.MeanChangeSimilarity }}<br>
  <h2>Details:</h2>
  {{ range .Records }}
  <h3>{{ .Question }}</h3>
  <b>Expected SQL : </b><code>{{ .ExpectedSQL }}</code><br>
  <b>Generated SQL : </b><code>{{ .GeneratedSQL }}</code><br>
  <b>Valid : </b>{{ .Valid }}<br>
  <b>Result match : </b>{{ .Outcome }}<br>
  <b>Similarity : </b>{{ printf "%.3f" .Similarity }}<br>
  {{ if .DiffString }}
  <pre>{{ .DiffString }}</pre>
  {{ end }}
  {{ if .Changes }}
  Changes:<br>
  <ul>
  {{ range .Changes }}
   <li><b>{{ .Action }}</b> : <code>{{ .Text }}</code></li>
  {{ end }}
  </ul>
  {{ end }}
  {{ if .ExpectedResult.Err }}
  <b>Expected error : </b>{{ .ExpectedResult.Err }}<br>
  {{ end }}
  {{ if .GeneratedResult.Err }}
  <b>Generated error : </b>{{ .GeneratedResult.Err }}<br>
  {{ end }}
  {{ end }}
 </body>
</html>`
