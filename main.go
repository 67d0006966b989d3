package main

// skop runs a structured scoping-demo program under static and/or
// dynamic scoping, so the difference between the two resolution
// policies is directly observable in the printed output.

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"

	"skop/eval"
	"skop/lang"
)

var VERSION string
var LOGO = `
      _
  ___| |_ ___ ___   | skop
 |_ -| '_| . | . |  | static vs dynamic scoping
 |___|_,_|___|  _|  | version: $VERSION
             |_|
`

func sliceVersion(v string) string {
	m := 10
	if len(v) < 10 {
		m = len(v)
	}
	return v[0:m]
}

// demoProgram is the built-in demonstration program:
//
//	x = 10
//	def f():
//	    print(x)
//	def g():
//	    x = 20
//	    f()
//	g()
//
// f's free x resolves to 10 through its definition environment under
// static scoping, and to 20 through g's live frame under dynamic.
func demoProgram() *lang.Program {
	return &lang.Program{
		Name: "demo",
		Body: []lang.Stmt{
			&lang.Assign{Name: "x", Value: &lang.IntLit{Value: 10}},
			&lang.Def{Name: "f", Body: []lang.Stmt{
				&lang.Print{Value: &lang.Var{Name: "x"}},
			}},
			&lang.Def{Name: "g", Body: []lang.Stmt{
				&lang.Assign{Name: "x", Value: &lang.IntLit{Value: 20}},
				&lang.Call{Name: "f"},
			}},
			&lang.Call{Name: "g"},
		},
	}
}

func main() {
	// .env supplies flag defaults only; flags always win.
	_ = godotenv.Load()
	defaultMode := os.Getenv("SKOP_MODE")
	if defaultMode == "" {
		defaultMode = "both"
	}

	modeFlag := flag.String("mode", defaultMode, "scoping mode: static, dynamic or both")
	interactive := flag.Bool("i", false, "start the interactive inspector")
	flag.Parse()

	prog := demoProgram()
	if flag.NArg() > 0 {
		p, err := lang.LoadFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		prog = p
	}

	if *interactive {
		if err := interact(prog, *modeFlag); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := run(prog, *modeFlag, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes prog under the named mode; "both" runs static then
// dynamic with a header before each, the side-by-side comparison the
// tool is for.
func run(prog *lang.Program, mode string, out io.Writer) error {
	if mode != "both" {
		m, err := eval.ParseMode(mode)
		if err != nil {
			return err
		}
		_, err = eval.NewContext(m, out).Run(prog)
		return err
	}
	fmt.Fprintln(out, "Static Scoping Output:")
	if _, err := eval.NewContext(eval.Static, out).Run(prog); err != nil {
		return err
	}
	fmt.Fprintln(out, "\nDynamic Scoping Output:")
	_, err := eval.NewContext(eval.Dynamic, out).Run(prog)
	return err
}

// interact drives a small command loop over the loaded program.
// Commands, not program text: there is no parser in this tool.
func interact(prog *lang.Program, mode string) error {
	fmt.Println(strings.Replace(LOGO, "$VERSION", sliceVersion(VERSION), 1))
	rl, err := readline.New("> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "run":
			target := mode
			if len(fields) > 1 {
				target = fields[1]
			}
			if err := run(prog, target, os.Stdout); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		case "mode":
			if len(fields) > 1 {
				next := fields[1]
				if next != "both" {
					if _, err := eval.ParseMode(next); err != nil {
						fmt.Fprintln(os.Stderr, err)
						continue
					}
				}
				mode = next
			}
			fmt.Println(mode)
		case "show":
			fmt.Println(prog)
		case "check":
			issues := lang.Check(prog)
			if len(issues) == 0 {
				fmt.Println("no issues")
			}
			for _, issue := range issues {
				fmt.Fprintln(os.Stderr, issue)
			}
		case "env":
			showGlobals(prog, mode)
		case "help":
			fmt.Print(usage)
		case "exit", "quit":
			return nil
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q (try help)\n", fields[0])
		}
	}
	return nil
}

var usage = `commands:
  run [static|dynamic|both]  run the program (default: current mode)
  mode [static|dynamic|both] show or set the current mode
  show                       pretty-print the program
  check                      report names suspect under lexical scoping
  env                        run silently and dump the global bindings
  help                       this message
  exit                       leave
`

// showGlobals runs the program with its output discarded and lists
// the bindings left in the global frame.
func showGlobals(prog *lang.Program, mode string) {
	m := eval.Static
	if mode == "dynamic" {
		m = eval.Dynamic
	}
	globals, err := eval.NewContext(m, io.Discard).Run(prog)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	for _, name := range globals.Keys() {
		value, err := globals.Get(name)
		if err != nil {
			continue
		}
		fmt.Printf("%s = %s\n", name, value)
	}
}
