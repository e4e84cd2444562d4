// Package main is a command-line inspector for key notation: it parses
// its arguments as a chord sequence and prints the structured result.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dshills/keyseq"
	"github.com/dshills/keyseq/backend/tcellkey"
	"github.com/dshills/keyseq/keymap"
)

func main() {
	os.Exit(run())
}

func run() int {
	flags := pflag.NewFlagSet("keyseq", pflag.ContinueOnError)
	logical := flags.BoolP("logical", "l", false, "resolve typed characters instead of physical key names")
	backend := flags.StringP("backend", "b", "", "validate key names against a backend namespace (tcell)")
	keymapPath := flags.StringP("keymap", "k", "", "load a JSON keymap file and print its bindings")
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: keyseq [options] NOTATION...\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n%s", flags.FlagUsages())
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  keyseq ctrl-A               Parse a single chord\n")
		fmt.Fprintf(os.Stderr, "  keyseq shift-A ctrl-B       Parse a sequence\n")
		fmt.Fprintf(os.Stderr, "  keyseq -b tcell ctrl-Enter  Validate against tcell keys\n")
		fmt.Fprintf(os.Stderr, "  keyseq -k keymap.json       Check a keymap file\n")
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	var resolver keyseq.Resolver
	switch {
	case *logical && *backend != "":
		fmt.Fprintln(os.Stderr, "Error: --logical cannot be combined with --backend")
		return 2
	case *logical:
		resolver = keyseq.LogicalResolver{}
	case *backend == "tcell":
		resolver = tcellkey.Resolver()
	case *backend != "":
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q (supported: tcell)\n", *backend)
		return 2
	}
	parser := keyseq.NewParser(resolver)

	if *keymapPath != "" {
		return dumpKeymap(*keymapPath)
	}

	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	notation := strings.Join(flags.Args(), " ")
	seq, err := parser.ParseSequence(notation)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	for _, chord := range seq {
		fmt.Printf("(%d, %q)\n", chord.Mods, chord.Key)
	}
	return 0
}

func dumpKeymap(path string) int {
	km, err := keymap.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("keymap %q: %d bindings\n", km.Name, km.Len())
	for _, b := range km.Bindings {
		fmt.Printf("  %-30s %s\n", b.Keys, b.Action)
	}
	return 0
}
