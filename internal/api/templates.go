package api

import "html/template"

const errorTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.code}} {{.detail}} {{.msg}}</title>
</head>
<body>
  <h1>{{.code}} {{.detail}}</h1>
  <p>{{.msg}}</p>
</body>
</html>
`

const slideTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>{{.title}}</title>
  {{- if .description}}
  <meta name="description" content="{{.description}}">
  {{- end}}
  {{- if not .robots}}
  <meta name="robots" content="index, follow">
  {{- else}}
  <meta name="robots" content="{{.robots}}">
  {{- end}}
</head>
<body data-theme="{{.theme}}" data-views="{{.viewcount}}">
  <div class="reveal">
    <div class="slides">{{.body}}</div>
  </div>
</body>
</html>
`

// Templates returns the HTML templates rendered by this layer. They are
// compiled in; the surrounding application serves real assets itself.
func Templates() *template.Template {
	t := template.New("notehub")
	template.Must(t.New("error.tmpl").Parse(errorTemplate))
	template.Must(t.New("slide.tmpl").Parse(slideTemplate))
	return t
}
