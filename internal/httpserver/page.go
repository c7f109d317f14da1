package httpserver

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/tinytelemetry/brewdeck/internal/anim"
	"github.com/tinytelemetry/brewdeck/internal/card"
	"github.com/tinytelemetry/brewdeck/internal/model"
)

const indexTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Breweries in {{.Place}}</title>
<style>
body { font-family: system-ui, sans-serif; background: #1e1b18; color: #ede6da; margin: 2rem; }
#resultsContainer { display: grid; gap: 1rem; grid-template-columns: repeat(auto-fill, minmax(18rem, 1fr)); }
.brewery-card { border: 1px solid #7a5c36; border-radius: .75rem; padding: 1rem; }
.brewery-card h2 { color: #f2a93b; margin: 0 0 .5rem; font-size: 1.2rem; }
.brewery-card a { color: #6cb6ff; }
{{- if .Animated}}
.brewery-card { transform: translateY({{.InitialOffset}}px); opacity: 0; animation: brewery-enter {{.DurationMS}}ms linear forwards; }
{{.Keyframes}}
{{- end}}
</style>
</head>
<body>
<p id="messageArea">{{.Status.Text}}</p>
<div id="resultsContainer">
{{- range .Cards}}
<div class="brewery-card"{{if $.Animated}} style="animation-delay: {{.DelayMS}}ms"{{end}}>
<h2>{{.Card.Name}}</h2>
<p>{{.Card.Type}}</p>
<p>{{.Card.Address}}</p>
{{- with .Card.Website}}
<p><a href="{{.Href}}" target="{{.Target}}" rel="{{.Rel}}">{{.Label}}</a></p>
{{- else}}
<p>{{.Card.WebsiteText}}</p>
{{- end}}
</div>
{{- end}}
</div>
</body>
</html>
`

var pageTemplate = template.Must(template.New("index").Parse(indexTemplate))

type cardData struct {
	Card    card.Card
	DelayMS int64
}

type pageData struct {
	Place         string
	Status        model.Status
	Cards         []cardData
	Animated      bool
	InitialOffset float64
	DurationMS    int64
	Keyframes     template.CSS
}

// buildPage lays out the cards with their stagger delays. Animation CSS is
// only emitted when a spring is available.
func buildPage(place string, status model.Status, records []model.Brewery, e anim.Entrance, css template.CSS, durationMS int64) pageData {
	rendered := card.RenderAll(records)
	cards := make([]cardData, len(rendered))
	for i, c := range rendered {
		cards[i] = cardData{
			Card:    c,
			DelayMS: e.Delay(i).Milliseconds(),
		}
	}
	return pageData{
		Place:         place,
		Status:        status,
		Cards:         cards,
		Animated:      css != "",
		InitialOffset: card.InitialOffset,
		DurationMS:    durationMS,
		Keyframes:     css,
	}
}

// keyframesCSS renders the sampled spring as a CSS @keyframes rule.
func keyframesCSS(frames []anim.Keyframe) template.CSS {
	if len(frames) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("@keyframes brewery-enter {\n")
	for _, f := range frames {
		fmt.Fprintf(&b, "  %.2f%% { transform: translateY(%.2fpx); opacity: %.3f; }\n",
			f.Percent, f.State.Offset, f.State.Opacity)
	}
	b.WriteString("}")
	return template.CSS(b.String())
}
