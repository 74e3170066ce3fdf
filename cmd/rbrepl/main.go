package main

import (
	"bufio"
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
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

// tracer traces with key 'simbase.repl'.
func tracer() tracing.Trace {
	return tracing.Select("simbase.repl")
}

// main() starts an interactive CLI ("RB.REPL"), where users may enter commands
// operating on a single ordered map. RB.REPL is intended as a sandbox for
// watching the red-black tree re-balance itself while entries are added and
// deleted.
//
// Enter 'help' for a list of commands.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to RB.REPL")  // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(traceLevel(*tlevel)) // now set the user supplied level
	//
	intp, err := NewIntp()
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}
	// commands given on the command line are evaluated first
	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if quit := intp.Run(input); quit {
			return
		}
	}
	// set up REPL
	repl, err := readline.New("rb> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	//
	// load an init file and start receiving commands
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(*initf)           // init file name provided by flag
	intp.REPL()                         // go into interactive mode
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

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 1
	for scanner.Scan() {
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		res, err := intp.Eval(line)
		if err != nil {
			tracer().Errorf("Error line %d: "+err.Error(), lineno)
		} else {
			printResult(res)
		}
		lineno++
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Run(line); quit {
			break
		}
	}
	println("Good bye!")
}

// Run evaluates a line and prints the result. Returns true if the user asked
// to quit.
func (intp *Intp) Run(line string) bool {
	res, err := intp.Eval(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	printResult(res)
	return res.quit
}

func printResult(res result) {
	if res.text != "" {
		pterm.Info.Println(res.text)
	}
	if len(res.tree) > 0 {
		root := pterm.NewTreeFromLeveledList(res.tree)
		pterm.DefaultTree.WithRoot(root).Render()
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
