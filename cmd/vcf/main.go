// Command vcf converts "name line, phone line" text into a vCard 3.0 file.
//
// Usage:
//
//	vcf [-o contacts.vcf] [input.txt]
//
// Without an input file the text is read from stdin; without -o the vCard
// document goes to stdout. Warnings about skipped lines go to stderr and do
// not affect the exit code.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/textvcard/backend/internal/vcard"
)

func main() {
	out := flag.String("o", "", "write the vCard document to this file instead of stdout")
	flag.Parse()

	text, err := readInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "vcf: %v\n", err)
		os.Exit(1)
	}

	doc, warnings := vcard.ConvertToVCard(text)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}

	if doc == "" {
		fmt.Fprintln(os.Stderr, "no contacts recognized; nothing to write")
		return
	}

	if *out == "" {
		fmt.Println(doc)
		return
	}
	if err := os.WriteFile(*out, []byte(doc), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "vcf: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "saved: %s\n", *out)
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}
