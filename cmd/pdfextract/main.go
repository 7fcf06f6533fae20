// pdfextract - extract PDF pages as raster images
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/novvoo/go-pdfextract/pkg/extract"
)

var (
	zoom      = flag.Float64("zoom", 2.0, "render scale factor (1.0 = 72 DPI)")
	format    = flag.String("format", "png", "output format (png, jpeg, tiff)")
	gray      = flag.Bool("gray", false, "render in grayscale")
	quiet     = flag.Bool("q", false, "don't print progress messages")
	printVer  = flag.Bool("v", false, "print version information")
	printHelp = flag.Bool("h", false, "print usage information")
)

func usage() {
	fmt.Printf("pdfextract version 1.0.0\n")
	fmt.Printf("Usage: pdfextract [options] <PDF-file> <output-dir> <page-number> [<page-number> ...]\n\n")
	fmt.Printf("Extracts the given 1-based pages as page-<N>-actual.png files\n\n")
	fmt.Printf("Options:\n")
	flag.CommandLine.SetOutput(os.Stdout)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *printVer {
		fmt.Println("pdfextract version 1.0.0")
		os.Exit(0)
	}

	if *printHelp {
		usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) < 3 {
		usage()
		os.Exit(1)
	}

	pdfFile := args[0]
	outputDir := args[1]

	pageNumbers := make([]int, 0, len(args)-2)
	for _, arg := range args[2:] {
		pageNum, err := strconv.Atoi(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid page number %q\n", arg)
			os.Exit(1)
		}
		pageNumbers = append(pageNumbers, pageNum)
	}

	opts := extract.Options{
		Zoom:   *zoom,
		Format: *format,
		Gray:   *gray,
	}
	if *quiet {
		opts.Progress = io.Discard
	}

	if err := extract.Pages(pdfFile, pageNumbers, outputDir, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
