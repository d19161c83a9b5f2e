package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/treepat/compile"
	"github.com/npillmayer/treepat/pattern"
	"github.com/npillmayer/treepat/sexp"
	"github.com/npillmayer/treepat/trace"
	"github.com/npillmayer/treepat/viz"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// tracer traces with key 'treepat.tpdbg'.
func tracer() tracing.Trace {
	return tracing.Select("treepat.tpdbg")
}

// main() starts an interactive CLI ("tpdbg") for debugging tree patterns.
// Users may tokenize and parse patterns, inspect compiled programs, and run a
// pattern against sample input, with the input text colorized by match
// status.
//
// Commands:
//
//    tokens  <pattern>                show the pattern DSL tokens
//    parse   <pattern>                show the pattern tree
//    compile <pattern>                show the compiled program's contract
//    run     <pattern> << <input>     match against s-expr input, colorized
//    quit
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to tpdbg") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	repl, err := readline.New("tpdbg> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	for {
		line, err := repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := execute(line); quit {
			break
		}
	}
	println("Good bye!")
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func execute(line string) bool {
	cmd, rest := line, ""
	if i := strings.IndexByte(line, ' '); i >= 0 {
		cmd, rest = line[:i], strings.TrimSpace(line[i+1:])
	}
	var err error
	switch cmd {
	case "quit":
		return true
	case "tokens":
		err = showTokens(rest)
	case "parse":
		err = showPattern(rest)
	case "compile":
		err = showProgram(rest)
	case "run":
		err = runPattern(rest)
	default:
		err = fmt.Errorf("unknown command '%s'", cmd)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
	}
	return false
}

func showTokens(input string) error {
	toks, err := pattern.Tokenize(input)
	if err != nil {
		return err
	}
	for _, tok := range toks {
		pterm.Printf("%4d  %-10s %v\n", tok.TokType(), tok.Lexeme(), tok.Span())
	}
	return nil
}

func showPattern(input string) error {
	pat, err := pattern.Parse(input)
	if err != nil {
		return err
	}
	ll := leveledPattern(pat, pterm.LeveledList{}, 0)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
	return nil
}

func leveledPattern(pat *pattern.Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	text := pat.Tag
	if pat.Text != "" {
		text += " " + pat.Text
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: text})
	for _, ch := range pat.Children {
		ll = leveledPattern(ch, ll, level+1)
	}
	return ll
}

func showProgram(input string) error {
	pat, err := pattern.Parse(input)
	if err != nil {
		return err
	}
	c := compile.NewDebugCompiler()
	prog, err := c.Compile(pat)
	if err != nil {
		return err
	}
	pterm.Printf("params:   %v\n", prog.Params())
	pterm.Printf("captures: %d\n", prog.NumCaptures())
	ins := c.Instrumenter()
	for id := 0; id < ins.Count(); id++ {
		pterm.Printf("[%2d] %s\n", id, ins.NodeAt(id).String())
	}
	return nil
}

func runPattern(input string) error {
	parts := strings.SplitN(input, "<<", 2)
	if len(parts) != 2 {
		return fmt.Errorf("usage: run <pattern> << <input>")
	}
	patsrc := strings.TrimSpace(parts[0])
	treesrc := strings.TrimSpace(parts[1])
	pat, err := pattern.Parse(patsrc)
	if err != nil {
		return err
	}
	root, err := sexp.Parse(treesrc)
	if err != nil {
		return err
	}
	prog, err := compile.NewDebugCompiler().Compile(pat)
	if err != nil {
		return err
	}
	tr := trace.New()
	result, err := prog.Run(compile.Args{
		compile.ParamNode:  root,
		compile.ParamTrace: tr,
	})
	if err != nil {
		return err
	}
	rec := viz.Record{
		Matched: result.Matched,
		Root:    root,
		Trace:   tr,
		Extent:  len(treesrc),
	}
	pterm.Println(colorize(treesrc, rec.Classify()))
	if result.Matched {
		pterm.Info.Println("match")
		for i, capture := range result.Captures {
			pterm.Printf("$%d = %v %v\n", i, capture.Type(), capture.Span())
		}
	} else {
		pterm.Info.Println("no match")
	}
	return nil
}

// Display attributes for the four classes.
var styles = map[viz.Class]*pterm.Style{
	viz.NotVisitable: pterm.NewStyle(pterm.FgDefault),
	viz.NotVisited:   pterm.NewStyle(pterm.FgYellow),
	viz.Failed:       pterm.NewStyle(pterm.FgRed),
	viz.Matched:      pterm.NewStyle(pterm.FgGreen),
}

// colorize renders one source string with per-character classes, styling runs
// of equally classified characters.
func colorize(source string, classes []viz.Class) string {
	var b strings.Builder
	for start := 0; start < len(source); {
		end := start
		for end < len(source) && classAt(classes, end) == classAt(classes, start) {
			end++
		}
		b.WriteString(styles[classAt(classes, start)].Sprint(source[start:end]))
		start = end
	}
	return b.String()
}

func classAt(classes []viz.Class, i int) viz.Class {
	if i >= len(classes) {
		return viz.NotVisitable
	}
	return classes[i]
}
