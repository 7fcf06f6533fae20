// pdfinfo - print PDF document information
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/novvoo/go-pdfextract/pkg/pdf"
)

var (
	box       = flag.Bool("box", false, "print the page sizes")
	printVer  = flag.Bool("v", false, "print version information")
	printHelp = flag.Bool("h", false, "print usage information")
)

func usage() {
	fmt.Fprintf(os.Stderr, "pdfinfo version 1.0.0\n")
	fmt.Fprintf(os.Stderr, "Usage: pdfinfo [options] <PDF-file>\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *printVer {
		fmt.Println("pdfinfo version 1.0.0")
		os.Exit(0)
	}

	if *printHelp {
		usage()
		os.Exit(0)
	}

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	info, err := pdf.Info(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printField("Title", info.Title)
	printField("Subject", info.Subject)
	printField("Keywords", info.Keywords)
	printField("Author", info.Author)
	printField("Creator", info.Creator)
	printField("Producer", info.Producer)
	fmt.Printf("%-16s%d\n", "Pages:", info.PageCount)
	if len(info.PageDims) > 0 {
		dim := info.PageDims[0]
		fmt.Printf("%-16s%.2f x %.2f pts\n", "Page size:", dim.Width, dim.Height)
	}
	printField("File format", info.Format)

	if *box {
		for i, dim := range info.PageDims {
			fmt.Printf("Page %4d size: %.2f x %.2f pts\n", i+1, dim.Width, dim.Height)
		}
	}
}

func printField(name, value string) {
	if value == "" {
		return
	}
	fmt.Printf("%-16s%s\n", name+":", value)
}
