/*
File    : ycc/main.go
*/

// Command ycc compiles one C-subset source file to a relocatable object
// file and links it into an executable with clang.
package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/yhyadev/ycc/arena"
	"github.com/yhyadev/ycc/codegen"
	"github.com/yhyadev/ycc/diagnostics"
	"github.com/yhyadev/ycc/parser"
	"tinygo.org/x/go-llvm"
)

const objectFilePath = "a.obj"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the testable entry point: it never calls os.Exit itself, returning
// the process exit code instead.
func run(args []string) int {
	inputFile, code, done := parseArgs(args)
	if done {
		return code
	}

	a := arena.New()
	defer a.Release()

	exitCode := 0
	func() {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(*diagnostics.FatalError); ok {
					exitCode = 1
					return
				}
				panic(r)
			}
		}()
		compileAndLink(a, inputFile, "a.out")
	}()
	return exitCode
}

// parseArgs implements the exact argument-count contract: zero files is an
// error, more than one is a not-yet-implemented error, anything else
// returns the single input file.
func parseArgs(args []string) (inputFile string, code int, done bool) {
	switch len(args) {
	case 0:
		fmt.Fprintln(os.Stderr, "error: no input files provided")
		return "", 1, true
	case 1:
		return args[0], 0, false
	default:
		fmt.Fprintln(os.Stderr, "todo: multiple input files not handled yet")
		return "", 1, true
	}
}

func compileAndLink(a *arena.Arena, inputFile, outputFile string) {
	src := readSourceFile(a, inputFile)

	root := parser.New(src).Parse()

	gen := codegen.New(src, inputFile)
	defer gen.Dispose()
	gen.Compile(root)

	emitObjectFile(gen.Module, objectFilePath)
	link(outputFile)
}

// readSourceFile opens and fully reads inputFile, copying it into the
// arena the way the source compiler's cli_read_file does. Failure prints
// the standard-library error string and exits 1, matching §6's I/O
// disposition.
func readSourceFile(a *arena.Arena, inputFile string) string {
	contents, err := os.ReadFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
	return a.AllocString(string(contents))
}

func emitObjectFile(module llvm.Module, path string) {
	llvm.InitializeNativeTarget()
	llvm.InitializeNativeAsmPrinter()

	triple := llvm.DefaultTargetTriple()
	target, err := llvm.GetTargetFromTriple(triple)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}

	machine := target.CreateTargetMachine(triple, "generic", "",
		llvm.CodeGenLevelDefault, llvm.RelocDefault, llvm.CodeModelDefault)
	defer machine.Dispose()

	if err := machine.EmitToFile(module, path, llvm.ObjectFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

// link shells out to the system linker, matching the source compiler's
// driver_link command shape: "clang -o <output> a.obj".
func link(outputFile string) {
	cmd := exec.Command("clang", "-o", outputFile, objectFilePath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			fmt.Fprintf(os.Stderr, "error: linker command failed with exit code %d\n", exitErr.ExitCode())
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
