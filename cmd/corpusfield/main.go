package main

import (
	"fmt"
	"os"

	"github.com/ternarybob/corpusfield/internal/common"
)

func versionString() string { return common.GetFullVersion() }

// configPaths is a custom flag type that allows multiple -config flags,
// merged in order with later files overriding earlier ones.
type configPaths []string

func (c *configPaths) String() string { return fmt.Sprintf("%v", *c) }
func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	mode := os.Args[1]
	args := os.Args[2:]

	var code int
	switch mode {
	case "extract":
		code = runExtract(args)
	case "transform":
		code = runTransform(args)
	case "-version", "--version", "version":
		fmt.Println("corpusfield", versionString())
		code = 0
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", mode)
		usage()
		code = 2
	}
	os.Exit(code)
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: corpusfield <extract|transform> [flags]")
	fmt.Fprintln(os.Stderr, "  extract   -dataset crossref|openalex -input DIR -output PATH -fields SPECS [flags]")
	fmt.Fprintln(os.Stderr, "  transform -dataset crossref|openalex -input FILE [-output PATH] [flags]")
}
