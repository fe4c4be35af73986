// Command minify builds assets/index.html, the single-file viewer page
// embedded by the server, from the template, stylesheet, script and icon.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"text/template"

	"github.com/jessevdk/go-flags"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/svg"
)

type Options struct {
	Dir string `short:"d" long:"dir" description:"Assets directory" default:"assets"`
}

type PageData struct {
	CSS string
	JS  string
	SVG string
}

// source is one asset inlined into the page.
type source struct {
	dst   *string
	file  string
	media string
}

func main() {
	var opts Options
	if _, err := flags.Parse(&opts); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/javascript", js.Minify)
	m.AddFunc("image/svg+xml", svg.Minify)

	var page PageData
	for _, src := range []source{
		{&page.CSS, "style.css", "text/css"},
		{&page.JS, "script.js", "text/javascript"},
		{&page.SVG, "favicon.svg", "image/svg+xml"},
	} {
		raw, err := os.ReadFile(filepath.Join(opts.Dir, src.file))
		if err != nil {
			log.Fatalf("error read %s: %v", src.file, err)
		}
		if *src.dst, err = m.String(src.media, string(raw)); err != nil {
			log.Fatalf("error minify %s: %v", src.file, err)
		}
	}

	tplRaw, err := os.ReadFile(filepath.Join(opts.Dir, "index.html.tpl"))
	if err != nil {
		log.Fatal("error read HTML:", err)
	}

	tmpl, err := template.New("index").Parse(string(tplRaw))
	if err != nil {
		log.Fatal("error parse template:", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, page); err != nil {
		log.Fatal("error render template:", err)
	}

	finalHTML, err := m.String("text/html", buf.String())
	if err != nil {
		log.Fatal("error minify HTML:", err)
	}

	out := filepath.Join(opts.Dir, "index.html")
	if err := os.WriteFile(out, []byte(finalHTML), 0644); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("minify done: %s (%d bytes)\n", out, len(finalHTML))
}
