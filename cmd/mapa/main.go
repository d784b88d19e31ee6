// Command mapa is a commandline calculator. With no arguments it runs an
// interactive read loop with line history; expressions may also be given
// on the command line.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/mapalang/mapa"
)

const historyFile = ".mapa_history"

func main() {
	log.SetFlags(0)
	var (
		complexMode = flag.Bool("complex", false, "switch on complex number mode")
		noVars      = flag.Bool("no-vars", false, "switch off variable assignment")
		unknown     = flag.Bool("unknown", false, "allow expressions with unknown variables")
	)
	flag.Parse()

	var opts []mapa.SessionOption
	if *complexMode {
		opts = append(opts, mapa.ComplexMode())
	}
	if *noVars {
		opts = append(opts, mapa.DisableAssignment())
	}
	if !*unknown {
		opts = append(opts, mapa.DisableFreeVariables())
	}
	s := mapa.NewSession(opts...)

	if args := flag.Args(); len(args) > 0 {
		code := 0
		for _, src := range args {
			if !report(s, src) {
				code = 1
			}
		}
		os.Exit(code)
	}

	repl(s)
}

// report parses one input against the session and prints the result or
// the error. It reports whether the parse succeeded.
func report(s *mapa.Session, src string) bool {
	r, err := s.ParseString(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return false
	}
	if !r.Empty() {
		fmt.Println(r)
	}
	return true
}

func repl(s *mapa.Session) {
	fmt.Println("Calculator")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt("> ")
		switch {
		case errors.Is(err, io.EOF):
			fmt.Println("\nGoodbye...")
			return
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case err != nil:
			log.Fatal(err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		report(s, line)
	}
}
