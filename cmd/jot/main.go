// Command jot validates, pretty-prints and minifies JSON documents from a
// file or stdin.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"go-simpler.org/env"

	jot "jot.mleku.dev"
	"jot.mleku.dev/lol"
)

type conf struct {
	LogLevel string `env:"LOG_LEVEL" default:"info" usage:"off|fatal|error|warn|info|debug|trace"`
}

var args struct {
	Command  string `arg:"positional" help:"fmt|min|check"`
	File     string `arg:"positional" help:"input file; stdin if absent"`
	Buffered bool   `help:"render through a single preallocated buffer sized from the input"`
}

func fail(format string, a ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

func usage() {
	fmt.Print(`jot help:

    jot fmt [file]      parse and pretty-print to stdout
    jot min [file]      strip whitespace and comments to stdout
    jot check [file]    validate; on failure report the byte offset
    jot version         print version info

	input is read from the file if given, stdin otherwise

	LOG_LEVEL environment variable sets logging verbosity

`)
	os.Exit(0)
}

func main() {
	var c conf
	if err := env.Load(&c, nil); err != nil {
		fail("bad environment: %v", err)
	}
	lol.SetLogLevel(c.LogLevel)
	arg.MustParse(&args)
	switch args.Command {
	case "", "help":
		usage()
	case "version":
		fmt.Println(jot.Version)
		os.Exit(0)
	case "fmt", "min", "check":
	default:
		fail("unknown command %q; use help to get usage information", args.Command)
	}
	var in []byte
	var err error
	if args.File != "" {
		if in, err = os.ReadFile(args.File); err != nil {
			fail("cannot read %s: %v", args.File, err)
		}
	} else {
		if in, err = io.ReadAll(os.Stdin); err != nil {
			fail("cannot read stdin: %v", err)
		}
	}
	switch args.Command {
	case "min":
		_, _ = os.Stdout.Write(jot.Minify(in))
		_, _ = os.Stdout.Write([]byte{'\n'})
	case "fmt":
		n, err := jot.Parse(in)
		if err != nil {
			fail("%v", describe(err, in))
		}
		var out []byte
		if args.Buffered {
			out, err = jot.PrintBuffered(n, len(in)+1, true)
		} else {
			out, err = jot.Print(n)
		}
		if err != nil {
			fail("print failed: %v", err)
		}
		_, _ = os.Stdout.Write(out)
		_, _ = os.Stdout.Write([]byte{'\n'})
	case "check":
		if _, err := jot.Parse(in); err != nil {
			fail("invalid: %v", describe(err, in))
		}
		fmt.Println("valid")
	}
}

// describe points at the offending byte with a little context around it.
func describe(err error, in []byte) string {
	var jerr *jot.Error
	if !errors.As(err, &jerr) {
		return err.Error()
	}
	start := jerr.Offset - 10
	if start < 0 {
		start = 0
	}
	end := jerr.Offset + 10
	if end > len(in) {
		end = len(in)
	}
	return fmt.Sprintf("%v near %q", jerr, in[start:end])
}
