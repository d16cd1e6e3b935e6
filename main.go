/*
File    : notlox/main.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy

Package main is the entry point for the NotLox interpreter.
It provides two modes of operation:
1. REPL Mode (default): interactive Read-Eval-Print Loop for live coding
2. File Mode: execute a NotLox script from the command line

The interpreter uses a lexer-parser-resolver-evaluator pipeline.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/CesGalaxy/notlox/file"
	"github.com/CesGalaxy/notlox/repl"
)

// VERSION represents the current version of the NotLox interpreter
var VERSION = "v1.0.0"

// LICENSE specifies the software license (MIT License)
var LICENSE = "MIT"

// BANNER is the ASCII art logo displayed when starting the REPL
var BANNER = `
  _   _       _   _
 | \ | | ___ | |_| |    _____  __
 |  \| |/ _ \| __| |   / _ \ \/ /
 | |\  | (_) | |_| |__| (_) >  <
 |_| \_|\___/ \__|_____\___/_/\_\
`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "----------------------------------------------------------------"

// Color definitions for CLI output
var (
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main dispatches on the command line:
//
//	notlox                  - Start in REPL (interactive) mode
//	notlox <script>         - Execute the given NotLox script
//	notlox --ast <script>   - Parse the script and dump its AST
//	notlox --help           - Display help information
//	notlox --version        - Display version information
//
// Exit codes: 0 on success, 64 on CLI misuse, 65 when the script has
// syntax or resolution errors, 70 when it fails at runtime.
func main() {
	args := os.Args[1:]

	if len(args) == 0 {
		// REPL mode: one live session until quit or EOF
		repler := repl.NewRepl(BANNER, VERSION, LINE, LICENSE, repl.LoadConfig())
		repler.Start(os.Stdin, os.Stdout)
		return
	}

	switch args[0] {
	case "--help", "-h":
		showHelp()
		return
	case "--version", "-v":
		showVersion()
		return
	case "--ast":
		if len(args) != 2 {
			usage()
			os.Exit(file.ExitUsage)
		}
		os.Exit(dumpAst(args[1]))
	}

	if len(args) > 1 {
		usage()
		os.Exit(file.ExitUsage)
	}

	// File mode: run the script and exit with its outcome
	os.Exit(file.RunFile(args[0]))
}

// usage prints the one-line CLI contract.
func usage() {
	fmt.Println("Usage: notlox [script]")
}

// showHelp displays the help information for the NotLox interpreter.
func showHelp() {
	cyanColor.Println("NotLox - A Tree-Walking Interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  notlox                    Start interactive REPL mode")
	yellowColor.Println("  notlox <path-to-file>     Execute a NotLox script (.lox)")
	yellowColor.Println("  notlox --ast <file>       Parse a script and dump its AST")
	yellowColor.Println("  notlox --help             Display this help message")
	yellowColor.Println("  notlox --version          Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  quit                      Exit the REPL")
	cyanColor.Println("")
	cyanColor.Println("EXAMPLES:")
	yellowColor.Println("  notlox                    # Start REPL")
	yellowColor.Println("  notlox samples/fib.lox")
}

// showVersion displays the version information for the NotLox interpreter.
func showVersion() {
	cyanColor.Println("NotLox - A Tree-Walking Interpreter")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
}
