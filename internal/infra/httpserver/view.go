package httpserver

import (
	"fmt"
	"html/template"
	"io"
	"strconv"

	appanalysis "github.com/bryanwahyu/clarity-analyzer/internal/application/analysis"
	domain "github.com/bryanwahyu/clarity-analyzer/internal/domain/analysis"
)

// Metric is one of the four snapshot tiles.
type Metric struct {
	Label string
	Value string
}

// Bar is one bar group of the clarity-vs-empathy chart. Heights are
// percentages of the chart area (ordinal score 1..3 → 33/66/99). A
// missing score draws no bar.
type Bar struct {
	Label      string
	ClarityPct int
	EmpathyPct int
	HasClarity bool
	HasEmpathy bool
}

// ViewModel is everything the page template needs, computed fresh per
// request. There is no session state: selection re-submits the input.
type ViewModel struct {
	Title       string
	InputText   string
	Warning     string
	Status      string
	HasResults  bool
	RunID       string
	Rows        []domain.SummaryRow
	Metrics     []Metric
	Bars        []Bar
	URLs        []string
	SelectedURL string
	Detail      *domain.Record
}

// BuildViewModel projects a run result for rendering. res may be nil
// (initial GET or the empty-input warning path). selected falls back to
// the first URL of the run; duplicate URLs resolve first-match.
func BuildViewModel(title, inputText, selected string, res *appanalysis.RunResult) ViewModel {
	vm := ViewModel{Title: title, InputText: inputText}
	if res == nil {
		return vm
	}

	vm.HasResults = true
	vm.RunID = res.RunID
	vm.Status = fmt.Sprintf("Running demo analysis for %d URL(s)…", res.Requested)
	vm.Rows = res.Report.Rows

	c := res.Report.Counts
	vm.Metrics = []Metric{
		{Label: "URLs analyzed", Value: strconv.Itoa(c.Total)},
		{Label: "High clarity pages", Value: fmt.Sprintf("%d/%d", c.HighClarity, c.Total)},
		{Label: "Supportive tone (Med/High)", Value: fmt.Sprintf("%d/%d", c.GoodEmpathy, c.Total)},
		{Label: "WCAG pass (demo)", Value: fmt.Sprintf("%d/%d", c.WCAGPass, c.Total)},
	}

	for _, p := range res.Report.Points {
		b := Bar{Label: p.URL}
		if p.Clarity != nil {
			b.HasClarity = true
			b.ClarityPct = *p.Clarity * 33
		}
		if p.Empathy != nil {
			b.HasEmpathy = true
			b.EmpathyPct = *p.Empathy * 33
		}
		vm.Bars = append(vm.Bars, b)
	}

	vm.URLs = domain.DistinctURLs(res.Records)
	sel := selected
	if domain.FirstMatch(res.Records, sel) == nil {
		sel = vm.URLs[0]
	}
	vm.SelectedURL = sel
	vm.Detail = domain.FirstMatch(res.Records, sel)
	return vm
}

var pageTemplate = template.Must(template.New("page").Parse(pageHTML))

func renderPage(w io.Writer, vm ViewModel) error {
	return pageTemplate.Execute(w, vm)
}

var pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}}</title>
  <style>
    :root {
      --primary-yellow: #F9D342;
      --primary-amber: #F59E0B;
      --accent-blue: #2563EB;
    }
    * { box-sizing: border-box; }
    body {
      font-family: "Georgia", "Times New Roman", serif;
      background-color: #F7F7FB;
      color: #222;
      margin: 0;
      padding: 32px 20px;
      line-height: 1.55;
    }
    .container { max-width: 1000px; margin: 0 auto; }
    .section-title {
      font-size: 1.3rem;
      font-weight: 600;
      margin: 1.4rem 0 0.6rem 0;
    }
    .section-title span {
      border-bottom: 4px solid var(--primary-amber);
      padding-bottom: 4px;
    }
    .card {
      background: white;
      border-radius: 14px;
      padding: 18px 20px;
      box-shadow: 0px 4px 12px rgba(0,0,0,0.06);
      margin-bottom: 1rem;
    }
    .card-border-amber { border-left: 6px solid var(--primary-amber); }
    .soft-card {
      background: #FFF8E5;
      border-radius: 14px;
      padding: 16px 18px;
      margin-bottom: 1rem;
    }
    .columns { display: flex; gap: 20px; flex-wrap: wrap; }
    .columns > div { flex: 1; min-width: 280px; }
    textarea {
      width: 100%;
      min-height: 150px;
      border: 1px solid #ddd;
      border-radius: 10px;
      padding: 10px 12px;
      font-family: inherit;
      font-size: 0.95rem;
      resize: vertical;
    }
    button {
      background-color: var(--accent-blue);
      color: white;
      border-radius: 999px;
      padding: 0.45rem 1.5rem;
      border: none;
      font-weight: 600;
      font-family: inherit;
      font-size: 0.95rem;
      cursor: pointer;
      margin-top: 8px;
    }
    button:hover { background-color: #1E48A8; }
    .msg-warning {
      background: #FDECEA;
      border-left: 6px solid #D93025;
      border-radius: 8px;
      padding: 12px 16px;
      margin: 1rem 0;
    }
    .msg-success {
      background: #E6F4EA;
      border-left: 6px solid #188038;
      border-radius: 8px;
      padding: 12px 16px;
      margin: 1rem 0;
    }
    .metrics { display: flex; gap: 14px; flex-wrap: wrap; }
    .metric {
      flex: 1;
      min-width: 150px;
      background: white;
      border-radius: 14px;
      padding: 14px 16px;
      box-shadow: 0px 4px 12px rgba(0,0,0,0.06);
      text-align: center;
    }
    .metric .value { font-size: 1.6rem; font-weight: 700; }
    .metric .label { font-size: 0.8rem; color: #666; }
    table { width: 100%; border-collapse: collapse; background: white; border-radius: 10px; }
    th, td { text-align: left; padding: 8px 12px; border-bottom: 1px solid #eee; font-size: 0.9rem; }
    th { background: #FFF8E5; }
    .chart {
      display: flex;
      align-items: flex-end;
      gap: 28px;
      height: 220px;
      padding: 16px 16px 0 16px;
      background: white;
      border-radius: 14px;
      box-shadow: 0px 4px 12px rgba(0,0,0,0.06);
      overflow-x: auto;
    }
    .bar-group { display: flex; flex-direction: column; align-items: center; height: 100%; }
    .bars { display: flex; align-items: flex-end; gap: 6px; flex: 1; }
    .bar { width: 26px; border-radius: 4px 4px 0 0; }
    .bar.clarity { background: var(--accent-blue); }
    .bar.empathy { background: var(--primary-amber); }
    .bar-label {
      font-size: 0.7rem;
      color: #666;
      max-width: 110px;
      overflow: hidden;
      text-overflow: ellipsis;
      white-space: nowrap;
      padding: 6px 0;
    }
    .legend { font-size: 0.8rem; color: #444; margin: 6px 2px 0 2px; }
    .legend .swatch {
      display: inline-block;
      width: 10px; height: 10px;
      border-radius: 2px;
      margin: 0 4px 0 12px;
    }
    select {
      font-family: inherit;
      font-size: 0.95rem;
      padding: 6px 10px;
      border-radius: 8px;
      border: 1px solid #ddd;
    }
    .pill {
      display: inline-block;
      padding: 3px 9px;
      border-radius: 999px;
      background: rgba(37,99,235,0.08);
      font-size: 0.75rem;
    }
    hr { border: none; border-top: 1px solid #e3e3e8; margin: 1.6rem 0; }
    footer { margin-top: 2rem; font-size: 0.85rem; color: #666; }
    ul.recs { margin: 0.4rem 0 0 1.2rem; }
  </style>
</head>
<body>
<div class="container">

  <div class="columns">
    <div style="flex: 2.5">
      <div class="section-title"><span>&#9999;&#65039; {{.Title}}</span></div>
      <p>Checks how <b>clear, empathetic and accessible</b> a web page feels.
      Paste URLs and get a quick UX snapshot inspired by healthcare communication.</p>
    </div>
    <div>
      <div class="soft-card">
        <b>Quick steps</b><br><br>
        1. Paste one or more URLs<br>
        2. Click <b>Run analysis</b><br>
        3. Review the dashboard + deep-dive cards
      </div>
    </div>
  </div>

  <div class="columns">
    <div style="flex: 2">
      <div class="section-title"><span>Input</span></div>
      <form method="POST" action="/">
        <textarea name="urls" placeholder="https://example.com/page-1&#10;https://example.com/page-2">{{.InputText}}</textarea>
        <button type="submit">Run analysis</button>
      </form>
    </div>
    <div>
      <div class="section-title"><span>What this tool checks</span></div>
      <div class="card">
        &#129504; <b>Clarity</b> &mdash; is the content easy to understand?<br>
        &#128172; <b>Empathy</b> &mdash; does the tone feel supportive, not harsh?<br>
        &#9855; <b>Accessibility</b> &mdash; simple WCAG-inspired checks (demo).<br>
        &#129658; <b>Healthcare-inspired UX</b> (non-clinical): low-literacy
        friendliness, emotionally safe tone, clear hierarchy, visual stress.
      </div>
      <div class="soft-card">
        The analysis is mocked so you can explore the interface. A real
        deployment would call the content-analysis workflow and log results
        to an external sheet.
      </div>
    </div>
  </div>

  {{if .Warning}}
  <div class="msg-warning">{{.Warning}}</div>
  {{end}}

  {{if .HasResults}}
  <div class="msg-success">{{.Status}}</div>

  <hr>
  <div class="section-title"><span>&#128202; Analysis snapshot</span></div>
  <div class="metrics">
    {{range .Metrics}}
    <div class="metric">
      <div class="value">{{.Value}}</div>
      <div class="label">{{.Label}}</div>
    </div>
    {{end}}
  </div>

  <div class="section-title"><span>Summary table</span></div>
  <table>
    <thead>
      <tr><th>URL</th><th>Empathy</th><th>Clarity</th><th>WCAG</th><th>Visual schema</th></tr>
    </thead>
    <tbody>
      {{range .Rows}}
      <tr>
        <td>{{.URL}}</td>
        <td>{{.Empathy}}</td>
        <td>{{.Clarity}}</td>
        <td>{{.WCAG}}</td>
        <td>{{.VisualSchema}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>

  <div class="section-title"><span>&#129504; Clarity vs Empathy</span></div>
  <div class="chart">
    {{range .Bars}}
    <div class="bar-group">
      <div class="bars">
        {{if .HasClarity}}<div class="bar clarity" style="height: {{.ClarityPct}}%"></div>{{end}}
        {{if .HasEmpathy}}<div class="bar empathy" style="height: {{.EmpathyPct}}%"></div>{{end}}
      </div>
      <div class="bar-label" title="{{.Label}}">{{.Label}}</div>
    </div>
    {{end}}
  </div>
  <div class="legend">
    <span class="swatch" style="background: var(--accent-blue)"></span>Clarity score
    <span class="swatch" style="background: var(--primary-amber)"></span>Empathy score
  </div>

  <hr>
  <div class="section-title"><span>&#128269; Page deep-dive</span></div>
  <form method="POST" action="/">
    <input type="hidden" name="urls" value="{{.InputText}}">
    <label for="selected">Select a URL to view detailed insights:</label>
    <select id="selected" name="selected">
      {{$sel := .SelectedURL}}
      {{range .URLs}}
      <option value="{{.}}"{{if eq . $sel}} selected{{end}}>{{.}}</option>
      {{end}}
    </select>
    <button type="submit">View details</button>
  </form>

  {{with .Detail}}
  <div class="columns" style="margin-top: 1rem">
    <div>
      <div class="card card-border-amber">
        <h4>Core metrics</h4>
        <b>URL:</b> {{.URL}}<br><br>
        <b>Empathy:</b> {{.EmpathyScore}}<br>
        <b>Clarity:</b> {{.ClarityScore}}<br>
        <b>WCAG status:</b> {{.WCAGStatus}}<br>
        <b>Visual layout:</b> {{.VisualSchema}}
      </div>
      <div class="soft-card">
        <h4>Summary</h4>
        {{.Summary}}
      </div>
    </div>
    <div>
      <div class="card">
        <h4>AI rewrite suggestion</h4>
        {{.RewriteSuggestion}}
      </div>
    </div>
  </div>

  <div class="card">
    <h4>&#129658; Healthcare-inspired UX indicators</h4>
    <b>Low-literacy friendliness:</b> {{.LowLiteracyNote}}<br><br>
    <b>Tone safety:</b> {{.ToneSafetyNote}}<br><br>
    <b>Information hierarchy:</b> {{.HierarchyNote}}<br><br>
    <b>Visual stress:</b> {{.VisualStressNote}}
  </div>

  <div class="section-title"><span>&#9989; Recommendations</span></div>
  <ul class="recs">
    {{range .Recommendations}}
    <li>{{.}}</li>
    {{end}}
  </ul>
  {{end}}

  <span class="pill">run {{.RunID}}</span>
  {{end}}

  <footer>
    <hr>
    Demo interface &mdash; analysis results are mocked.
  </footer>
</div>
</body>
</html>
`
