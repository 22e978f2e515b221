// SPDX-License-Identifier: MIT
// Package: lvlalg/server
//
// page.go — the HTML exercise page (MathJax, solution toggle).

package server

import (
	"bytes"
	"html/template"

	"github.com/gofiber/fiber/v2"
)

const (
	pageTitle        = "Algebra exercise"
	fallbackProblem  = `\text{Exercise generation failed}`
	fallbackSolution = `\text{See the server log}`
)

type pageData struct {
	Title    string
	Problem  string
	Solution string
	Failed   bool
}

var pageTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script id="MathJax-script" async src="https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-chtml.js"></script>
</head>
<body>
<main>
<h1>{{.Title}}</h1>
<section id="problem"{{if .Failed}} class="failed"{{end}}>$${{.Problem}}$$</section>
<button id="show-solution-btn" type="button">Show solution</button>
<section id="solution" style="display: none">$${{.Solution}}$$</section>
<p><a href="/">New exercise</a></p>
</main>
<script>
const btn = document.getElementById('show-solution-btn');
const sol = document.getElementById('solution');
btn.addEventListener('click', function () {
  const hidden = sol.style.display === 'none';
  sol.style.display = hidden ? 'block' : 'none';
  this.textContent = hidden ? 'Hide solution' : 'Show solution';
});
</script>
</body>
</html>
`))

func (m *Module) renderPage(c *fiber.Ctx, data pageData) error {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}
