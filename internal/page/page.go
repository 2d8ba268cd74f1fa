// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package page assembles charts into standalone HTML pages and serves
// them over HTTP.
package page

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"io"

	"github.com/aclements/racechart/chart"
	"github.com/aclements/racechart/scene"
	"github.com/evanw/esbuild/pkg/api"
)

//go:embed tooltip.js
var tooltipJS string

// Options control page rendering.
type Options struct {
	// Debug leaves the tooltip script unminified.
	Debug bool
}

// Script returns the tooltip script, minified unless debug is set.
func Script(debug bool) (string, error) {
	res := api.Transform(tooltipJS, api.TransformOptions{
		Loader:            api.LoaderJS,
		Target:            api.ES2015,
		MinifySyntax:      !debug,
		MinifyIdentifiers: !debug,
		MinifyWhitespace:  !debug,
	})
	if len(res.Errors) > 0 {
		return "", fmt.Errorf("tooltip script: %v", res.Errors[0].Text)
	}
	return string(res.Code), nil
}

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 0; }
#container { display: flex; justify-content: center; padding: 1em; }
.dot { stroke: #000; stroke-width: 0.5; }
.tooltip { pointer-events: none; background: #dde6f0; border-radius: 4px; padding: 6px 8px; font-size: 12px; }
</style>
</head>
<body>
{{.Body}}
{{if .Script}}<script>{{.Script}}</script>{{end}}
</body>
</html>
`))

// Render writes a standalone HTML page showing c.
//
// The page contains c's container element, which holds the chart and
// its tooltip. The tooltip script is only included if c has a tooltip.
func Render(w io.Writer, c *chart.Chart, opts Options) error {
	container := c.Root().Parent()
	if container == nil {
		return fmt.Errorf("page: chart has no container")
	}
	if container.ID() == "" {
		container.SetAttr("id", "container")
	}

	var body bytes.Buffer
	if err := scene.WriteHTML(&body, container); err != nil {
		return err
	}

	data := struct {
		Title  string
		Body   template.HTML
		Script template.JS
	}{
		Title: "Alpe d'Huez",
		Body:  template.HTML(body.String()),
	}
	if cfg := c.Config(); cfg.Titles && cfg.Title != "" {
		data.Title = cfg.Title
	}
	if c.Tooltip() != nil {
		js, err := Script(opts.Debug)
		if err != nil {
			return err
		}
		data.Script = template.JS(js)
	}
	return pageTmpl.Execute(w, data)
}
