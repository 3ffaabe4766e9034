package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

//go:embed templates/*.tmpl static/* descriptions/*.md
var Assets embed.FS

// StaticFS returns a file system for serving /static assets.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(Assets, "static")
	if err != nil {
		return http.FS(embed.FS{})
	}
	return http.FS(sub)
}

var funcs = template.FuncMap{
	"ms": func(d time.Duration) string {
		return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
	},
	"pad": func(n int) string { return fmt.Sprintf("%02d", n) },
}

// Templates parses and returns the embedded templates.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(Assets, "templates/*.tmpl"))
}

var md = goldmark.New(goldmark.WithExtensions(extension.Typographer))

// Describe renders descriptions/dayNN.md. Days without a description
// render as the empty string.
func Describe(day int) template.HTML {
	src, err := Assets.ReadFile(fmt.Sprintf("descriptions/day%02d.md", day))
	if err != nil {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return ""
	}
	// goldmark drops raw HTML unless WithUnsafe is set.
	return template.HTML(buf.String())
}
