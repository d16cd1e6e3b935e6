/*
File    : notlox/print_visitor.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/CesGalaxy/notlox/diag"
	"github.com/CesGalaxy/notlox/file"
	"github.com/CesGalaxy/notlox/parser"
)

const INDENT_SIZE = 4

// AstPrinter renders a parsed program as an indented tree, one node per
// line. It backs the --ast debugging flag.
type AstPrinter struct {
	Indent int
	Buf    bytes.Buffer
}

// indent writes the current indentation prefix.
func (p *AstPrinter) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// line writes one indented line describing a node.
func (p *AstPrinter) line(format string, args ...any) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf(format, args...))
	p.Buf.WriteString("\n")
}

// nested prints child nodes one indentation level deeper.
func (p *AstPrinter) nested(children ...parser.Node) {
	p.Indent += INDENT_SIZE
	for _, child := range children {
		if child != nil {
			p.PrintNode(child)
		}
	}
	p.Indent -= INDENT_SIZE
}

// PrintNode renders one node and its children into the buffer.
func (p *AstPrinter) PrintNode(n parser.Node) {
	switch node := n.(type) {
	case *parser.RootNode:
		p.line("Program")
		children := make([]parser.Node, len(node.Statements))
		for i, stmt := range node.Statements {
			children[i] = stmt
		}
		p.nested(children...)

	case *parser.LiteralExpressionNode:
		p.line("Literal %s", node.Literal())
	case *parser.IdentifierExpressionNode:
		p.line("Identifier %s", node.Name)
	case *parser.AssignExpressionNode:
		p.line("Assign %s", node.Name.Lexeme)
		p.nested(node.Value)
	case *parser.UnaryExpressionNode:
		p.line("Unary %s", node.Operation.Lexeme)
		p.nested(node.Right)
	case *parser.BinaryExpressionNode:
		p.line("Binary %s", node.Operation.Lexeme)
		p.nested(node.Left, node.Right)
	case *parser.LogicalExpressionNode:
		p.line("Logical %s", node.Operation.Lexeme)
		p.nested(node.Left, node.Right)
	case *parser.ParenthesizedExpressionNode:
		p.line("Grouping")
		p.nested(node.Expr)
	case *parser.CallExpressionNode:
		p.line("Call")
		children := []parser.Node{node.Callee}
		for _, arg := range node.Arguments {
			children = append(children, arg)
		}
		p.nested(children...)
	case *parser.GetExpressionNode:
		p.line("Get %s", node.Name.Lexeme)
		p.nested(node.Object)
	case *parser.SetExpressionNode:
		p.line("Set %s", node.Name.Lexeme)
		p.nested(node.Object, node.Value)
	case *parser.ThisExpressionNode:
		p.line("This")

	case *parser.ExpressionStatementNode:
		p.line("ExpressionStatement")
		p.nested(node.Expr)
	case *parser.PrintStatementNode:
		p.line("Print")
		p.nested(node.Expr)
	case *parser.DeclarativeStatementNode:
		p.line("Var %s", node.Name.Lexeme)
		if node.Initializer != nil {
			p.nested(node.Initializer)
		}
	case *parser.BlockStatementNode:
		p.line("Block")
		children := make([]parser.Node, len(node.Statements))
		for i, stmt := range node.Statements {
			children[i] = stmt
		}
		p.nested(children...)
	case *parser.IfStatementNode:
		p.line("If")
		p.nested(node.Cond, node.Then, node.Else)
	case *parser.WhileLoopStatementNode:
		p.line("While")
		p.nested(node.Cond, node.Body)
	case *parser.FunctionStatementNode:
		params := ""
		for i, param := range node.Params {
			if i > 0 {
				params += ", "
			}
			params += param.Name
		}
		p.line("Function %s(%s)", node.Name.Lexeme, params)
		p.nested(node.Body)
	case *parser.ReturnStatementNode:
		p.line("Return")
		if node.Value != nil {
			p.nested(node.Value)
		}
	case *parser.ClassStatementNode:
		p.line("Class %s", node.Name.Lexeme)
		children := make([]parser.Node, len(node.Methods))
		for i, method := range node.Methods {
			children[i] = method
		}
		p.nested(children...)

	default:
		p.line("%T", n)
	}
}

// String returns the accumulated rendering.
func (p *AstPrinter) String() string {
	return p.Buf.String()
}

// dumpAst parses the script at path and prints its AST to stdout,
// returning the process exit code (65 on syntax errors).
func dumpAst(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read script %q: %v\n", path, err)
		return file.ExitUsage
	}

	session := diag.NewSession()
	root := parser.NewParser(string(data), session).Parse()
	if session.HadError {
		return file.ExitSyntaxError
	}

	printer := &AstPrinter{}
	printer.PrintNode(root)
	fmt.Print(printer.String())
	return file.ExitOK
}
