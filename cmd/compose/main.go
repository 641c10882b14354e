// Command compose applies a script of editor actions to an image and
// writes the flattened result.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"paintr/internal/actions"
	"paintr/internal/canvas"
	pimage "paintr/internal/image"
	"paintr/internal/version"
	"paintr/pkg/colorutil"
)

func main() {
	inPath := flag.String("in", "", "Base image to edit")
	size := flag.String("size", "", "Size of a new white base image, e.g. 640x480")
	scriptPath := flag.String("script", "-", "Script file, or - for stdin")
	outPath := flag.String("out", "", "Output image path (format from extension)")
	limit := flag.Int("limit", 0, "Maximum undo steps (0 = unlimited)")
	verbose := flag.Bool("v", false, "Log each step to stderr")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String("compose"))
		return
	}
	if *outPath == "" || (*inPath == "") == (*size == "") {
		fmt.Println("Usage: compose (-in <image> | -size WxH) -out <image> [-script file] [-limit n] [-v]")
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	doc, err := openBase(*inPath, *size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create base image: %v\n", err)
		os.Exit(1)
	}

	ops, err := readScript(*scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse script: %v\n", err)
		os.Exit(1)
	}

	history := actions.NewHistory()
	history.SetLimit(*limit)
	r := &runner{doc: doc, history: history, load: pimage.Load}

	results, err := r.run(ops)
	for _, res := range results {
		logger.Debug("step", "line", res.op.line, "applied", res.applied, "detail", res.detail)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Script failed: %v\n", err)
		os.Exit(1)
	}

	if err := doc.Save(*outPath); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fmt.Print(renderReport(results, history, doc))
	fmt.Println(styles.ok.Render("Wrote " + *outPath))
}

func openBase(inPath, size string) (*canvas.Data, error) {
	if inPath != "" {
		img, err := pimage.Load(inPath)
		if err != nil {
			return nil, err
		}
		return canvas.New(inPath, img), nil
	}
	var w, h int
	if _, err := fmt.Sscanf(size, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid size %q", size)
	}
	return canvas.New("Untitled", pimage.Solid(w, h, colorutil.White)), nil
}

func readScript(path string) ([]op, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return parseScript(r)
}
