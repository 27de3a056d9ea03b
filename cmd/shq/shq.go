package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/unixdj/shq"
	"github.com/unixdj/shq/quoting"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

var g = struct {
	dialect *quoting.Dialect  // target shell grammar
	enc     *encoding.Encoder // input transcoding
	join    bool              // all words on one line
	zero    bool              // NUL separated input
	nonl    bool              // no newline after last word
	latin1  bool              // transcode to Latin-1
	sjis    bool              // transcode to Shift JIS
}{
	dialect: quoting.POSIX,
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "Shell word quoter\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` [word ...]
Each word is quoted for the shell and written on its own line.  If no
word is given, words are read from standard input, one per line with
the final newline stripped, or NUL separated with -0.

`)
	cl.PrintOptions(w)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`shq version 1.0.0
Copyright (c) 2026 Vadim Vygonets`)
	os.Exit(0)
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(&g.zero, '0',
		"read NUL separated words from standard input")
	getopt.Flag(&g.join, 'j', "write all words on one line, separated "+
		"by single spaces")
	getopt.Flag(&g.nonl, 'n', "no newline after the last word")
	getopt.Flag(&g.latin1, '1', "convert input from UTF-8 to Latin-1")
	getopt.Flag(&g.sjis, 'k', "convert input from UTF-8 to Shift JIS")
	dia := getopt.Enum('d', []string{"posix", "bash"}, "posix",
		"shell dialect; bash adds $'...' quoting and keeps "+
			"control bytes out of the output", "dialect")

	getopt.Parse()
	if g.latin1 && g.sjis {
		fmt.Fprintln(os.Stderr, "-1 and -k are incompatible")
		usage()
	}
	switch {
	case g.latin1:
		g.enc = charmap.ISO8859_1.NewEncoder()
	case g.sjis:
		g.enc = japanese.ShiftJIS.NewEncoder()
	}
	if *dia == "bash" {
		g.dialect = quoting.Bash
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	words := getopt.Args()
	if len(words) == 0 {
		if isatty.IsTerminal(uintptr(syscall.Stdin)) {
			usage()
		}
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		words = split(b.String())
	}
	sep := "\n"
	if g.join {
		sep = " "
	}
	w := bufio.NewWriter(os.Stdout)
	for i, word := range words {
		var err error
		if g.enc != nil {
			if word, err = g.enc.String(word); err != nil {
				log.Fatalln(err)
			}
		}
		q, err := shq.QuoteDialect(word, g.dialect)
		if err != nil {
			log.Fatalln(err)
		}
		if i > 0 {
			w.WriteString(sep)
		}
		w.WriteString(q)
	}
	if len(words) != 0 && !g.nonl {
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		log.Fatalln(err)
	}
}

// split cuts standard input into words: text lines, or NUL separated
// raw strings with -0.  A trailing separator does not start another
// word.
func split(s string) []string {
	if g.zero {
		s, _ = strings.CutSuffix(s, "\x00")
		if s == "" {
			return nil
		}
		return strings.Split(s, "\x00")
	}
	s, _ = strings.CutSuffix(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
