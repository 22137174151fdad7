// Command introscan inspects intro sources from the command line. It
// either parses a single source file or resolves a logical key through
// the same fallback chain the server uses.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"introserve/internal/convert"
	"introserve/internal/docfs"
	"introserve/internal/intro"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("introscan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "", "parse a single source file instead of resolving a key")
	roots := fs.String("roots", "", "comma-separated base paths for key resolution")
	ext := fs.String("ext", ".html", "source extension used for key resolution")
	render := fs.Bool("render", false, "include the rendered body in the output")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if *file != "" {
		return scanFile(*file, *render, stdout, stderr)
	}

	if *roots == "" || fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: introscan -file <path> [-render]")
		fmt.Fprintln(stderr, "       introscan -roots <a,b> [-ext .html] [-render] <key>")
		return 1
	}
	return resolveKey(fs.Arg(0), splitList(*roots), *ext, *render, stdout, stderr)
}

// scanFile builds one source file directly, without key resolution.
func scanFile(path string, render bool, stdout, stderr io.Writer) int {
	if !convert.IsSupported(path) {
		fmt.Fprintf(stderr, "introscan: unsupported source extension: %s\n", path)
		return 1
	}
	data, err := docfs.OS{}.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "introscan: %v\n", err)
		return 1
	}
	conv, err := convert.ForPath(path)
	if err != nil {
		fmt.Fprintf(stderr, "introscan: %v\n", err)
		return 1
	}
	markup, err := conv.Convert(data)
	if err != nil {
		fmt.Fprintf(stderr, "introscan: %v\n", err)
		return 1
	}
	art, err := intro.NewBuilder(nil).Build(path, markup)
	if err != nil {
		fmt.Fprintf(stderr, "introscan: %v\n", err)
		return 1
	}
	return printArtifact(path, art, render, stdout, stderr)
}

// resolveKey runs the full resolver against the given roots.
func resolveKey(key string, roots []string, ext string, render bool, stdout, stderr io.Writer) int {
	source := intro.NewSource(docfs.OS{}, intro.SourceConfig{Roots: roots, Ext: ext})
	art, err := source.Get(key)
	if err != nil {
		fmt.Fprintf(stderr, "introscan: %v\n", err)
		return 1
	}
	return printArtifact(key, art, render, stdout, stderr)
}

func printArtifact(key string, art *intro.Artifact, render bool, stdout, stderr io.Writer) int {
	out := map[string]any{
		"key":   key,
		"title": art.Title,
		"toc":   art.TOC,
	}
	if render {
		var body bytes.Buffer
		if err := art.Body.Execute(&body, nil); err != nil {
			fmt.Fprintf(stderr, "introscan: render: %v\n", err)
			return 1
		}
		out["body"] = body.String()
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(stderr, "introscan: %v\n", err)
		return 1
	}
	return 0
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
