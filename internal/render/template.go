package render

import (
	"html/template"
	"io"
)

var pageTemplate = template.Must(template.New("summary").Parse(`<html>
<head>
    <meta charset="utf-8">
    <title>{{.Title}}</title>
    <link rel="stylesheet" href="https://maxcdn.bootstrapcdn.com/bootstrap/3.3.5/css/bootstrap.min.css">
    <link rel="stylesheet" href="https://maxcdn.bootstrapcdn.com/bootstrap/3.3.5/css/bootstrap-theme.min.css">
    <script src="https://ajax.googleapis.com/ajax/libs/jquery/1.11.3/jquery.min.js"></script>
    <style>
html { margin: auto; width: 85%; }
    </style>
</head>
<body>
    <h1><small>{{.Title}}</small></h1>
<table class="table table-condensed table-hover">
<thead>
<tr><th>Board</th><th>Tree</th><th>Version</th><th>Config</th>
<th>Boot log</th><th>Status</th></tr>
</thead>
<tbody>{{range .Rows}}<tr>
<td>{{.Board}}</td><td>{{.Tree}}</td><td>{{.Version}}</td><td>{{.Config}}</td>
<td><a href="{{.BootLog}}">Boot</a></td><td><a style="color:red;" href="{{.Link}}">{{.Status}}</a></td>
</tr>{{end}}</tbody>
</table>
</body>
</html>
`))

type pageData struct {
	Title string
	Rows  []Row
}

// RenderPage writes the summary page for rows to w. Every field is HTML escaped.
func RenderPage(w io.Writer, title string, rows []Row) error {
	return pageTemplate.Execute(w, pageData{Title: title, Rows: rows})
}
