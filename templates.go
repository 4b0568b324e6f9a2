package gpxitinerary

import (
	"html/template"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ridgeline-labs/gpx-to-itinerary/config"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>GPX to Itinerary</title>
<style>
body { font-family: sans-serif; max-width: 40em; margin: 2em auto; }
label { display: block; margin: 0.5em 0; }
.error { color: #b00; }
</style>
</head>
<body>
<h1>GPX to Itinerary</h1>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
<form method="post" enctype="multipart/form-data">
<label>GPX file: <input type="file" name="file" accept=".gpx" required></label>
<label>Departure: <input type="datetime-local" name="departure"></label>
<label>Average speed: <input type="number" name="speed" value="{{.Speed}}" min="1"></label>
<label><input type="checkbox" name="metric"> Metric units</label>
<label><input type="checkbox" name="ignore_times"> Ignore embedded times</label>
<label><input type="checkbox" name="coordinates"> Show coordinates</label>
<label>Output:
<select name="output">
<option value="html">HTML</option>
<option value="markdown">Markdown</option>
<option value="htmlcode">HTML source</option>
</select>
</label>
<input type="submit" value="Convert">
</form>
</body>
</html>
`))

var resultTemplate = template.Must(template.New("result").Parse(`<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{if .Title}}{{.Title}}{{else}}Itinerary{{end}}</title>
<style>
body { font-family: sans-serif; max-width: 60em; margin: 2em auto; }
table { border-collapse: collapse; }
th, td { border: 1px solid #999; padding: 0.25em 0.5em; }
</style>
</head>
<body>
{{.Body}}
<p><a href="/">Convert another file</a></p>
</body>
</html>
`))

func renderIndex(c *gin.Context, status int, errMsg string) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	err := indexTemplate.Execute(c.Writer, map[string]any{
		"Speed": config.Config.Trip.Speed,
		"Error": errMsg,
	})
	if err != nil {
		log.Printf("render index: %v", err)
	}
}

func renderResult(c *gin.Context, title string, body []byte) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	err := resultTemplate.Execute(c.Writer, map[string]any{
		"Title": title,
		"Body":  template.HTML(body),
	})
	if err != nil {
		log.Printf("render result: %v", err)
	}
}
