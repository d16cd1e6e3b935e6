/*
File    : notlox/resolver/resolver_test.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package resolver

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CesGalaxy/notlox/diag"
	"github.com/CesGalaxy/notlox/parser"
)

// resolveSource parses and resolves src, returning the root, the locals
// table, the captured diagnostics and the session.
func resolveSource(t *testing.T, src string) (*parser.RootNode, map[parser.ExpressionNode]int, *bytes.Buffer, *diag.Session) {
	t.Helper()
	session := diag.NewSession()
	buf := &bytes.Buffer{}
	session.Out = buf
	root := parser.NewParser(src, session).Parse()
	require.False(t, session.HadError, "parse errors: %s", buf.String())
	locals := NewResolver(session).Resolve(root)
	return root, locals, buf, session
}

// TestResolver_BlockDistances verifies hop counts across nested blocks.
func TestResolver_BlockDistances(t *testing.T) {
	root, locals, _, session := resolveSource(t, `
{
	var x = 1;
	{
		print x;
		var y = x;
	}
	print x;
}`)
	require.False(t, session.HadError)

	outer := root.Statements[0].(*parser.BlockStatementNode)
	inner := outer.Statements[1].(*parser.BlockStatementNode)

	// print x from the inner block: one hop out
	innerPrint := inner.Statements[0].(*parser.PrintStatementNode)
	assert.Equal(t, 1, locals[innerPrint.Expr])

	// initializer of y: same hop
	yDecl := inner.Statements[1].(*parser.DeclarativeStatementNode)
	assert.Equal(t, 1, locals[yDecl.Initializer])

	// print x from the outer block: zero hops
	outerPrint := outer.Statements[2].(*parser.PrintStatementNode)
	assert.Equal(t, 0, locals[outerPrint.Expr])
}

// TestResolver_GlobalsStayUnresolved: references to globals never enter
// the locals table; they fall back to dynamic globals lookup.
func TestResolver_GlobalsStayUnresolved(t *testing.T) {
	root, locals, _, session := resolveSource(t, "var a = 1;\nprint a;")
	require.False(t, session.HadError)
	assert.Empty(t, locals)

	printStmt := root.Statements[1].(*parser.PrintStatementNode)
	_, resolved := locals[printStmt.Expr]
	assert.False(t, resolved)
}

// TestResolver_FunctionParamDistance: a parameter read from inside the
// body block is one hop out (the parameter scope wraps the body scope).
func TestResolver_FunctionParamDistance(t *testing.T) {
	root, locals, _, session := resolveSource(t, "fun id(n) { return n; }")
	require.False(t, session.HadError)

	fn := root.Statements[0].(*parser.FunctionStatementNode)
	body := fn.Body.(*parser.BlockStatementNode)
	ret := body.Statements[0].(*parser.ReturnStatementNode)
	distance, resolved := locals[ret.Value]
	require.True(t, resolved)
	assert.Equal(t, 1, distance)
}

// TestResolver_ClosureDistance: a captured variable referenced from a
// nested function hops across the function boundary scopes.
func TestResolver_ClosureDistance(t *testing.T) {
	root, locals, _, session := resolveSource(t, `
fun make(n) {
	fun add(x) {
		return x + n;
	}
	return add;
}`)
	require.False(t, session.HadError)

	makeFn := root.Statements[0].(*parser.FunctionStatementNode)
	makeBody := makeFn.Body.(*parser.BlockStatementNode)
	add := makeBody.Statements[0].(*parser.FunctionStatementNode)
	addBody := add.Body.(*parser.BlockStatementNode)
	ret := addBody.Statements[0].(*parser.ReturnStatementNode)
	sum := ret.Value.(*parser.BinaryExpressionNode)

	// x: add's body block -> add's params
	assert.Equal(t, 1, locals[sum.Left])
	// n: add's body block -> add's params -> make's body block -> make's params
	assert.Equal(t, 3, locals[sum.Right])

	// return add: bound in make's body block itself
	makeReturn := makeBody.Statements[1].(*parser.ReturnStatementNode)
	assert.Equal(t, 0, locals[makeReturn.Value])
}

// TestResolver_ThisDistance: method bodies resolve inside the class-body
// scope where 'this' is declared.
func TestResolver_ThisDistance(t *testing.T) {
	root, locals, _, session := resolveSource(t, `
class Box {
	get() { return this; }
}`)
	require.False(t, session.HadError)

	class := root.Statements[0].(*parser.ClassStatementNode)
	body := class.Methods[0].Body.(*parser.BlockStatementNode)
	ret := body.Statements[0].(*parser.ReturnStatementNode)
	distance, resolved := locals[ret.Value]
	require.True(t, resolved)
	// method body block -> method params -> class 'this' scope
	assert.Equal(t, 2, distance)
}

// TestResolver_SelfInitializer rejects reading a local inside its own
// initializer.
func TestResolver_SelfInitializer(t *testing.T) {
	_, _, buf, session := resolveSource(t, "{ var a = a; }")
	assert.True(t, session.HadError)
	assert.Contains(t, buf.String(), "Can't read local variable in its own initializer.")
}

// TestResolver_SelfInitializerAtGlobal: the same shape at global scope is
// legal (it reads the previous global binding, or fails at runtime).
func TestResolver_SelfInitializerAtGlobal(t *testing.T) {
	_, _, _, session := resolveSource(t, "var a = a;")
	assert.False(t, session.HadError)
}

// TestResolver_TopLevelReturn rejects return outside any function.
func TestResolver_TopLevelReturn(t *testing.T) {
	_, _, buf, session := resolveSource(t, "return 1;")
	assert.True(t, session.HadError)
	assert.Contains(t, buf.String(), "Can't return from top-level code.")

	// Inside a function it is fine, and that includes methods
	_, _, _, session = resolveSource(t, "fun f() { return 1; }")
	assert.False(t, session.HadError)
	_, _, _, session = resolveSource(t, "class C { m() { return 1; } }")
	assert.False(t, session.HadError)
}

// TestResolver_DuplicateDeclaration rejects redeclaring a name in the
// same local scope while allowing it at globals and in distinct scopes.
func TestResolver_DuplicateDeclaration(t *testing.T) {
	_, _, buf, session := resolveSource(t, "{ var a = 1; var a = 2; }")
	assert.True(t, session.HadError)
	assert.Contains(t, buf.String(), "Already a variable with this name in this scope.")

	_, _, _, session = resolveSource(t, "var a = 1; var a = 2;")
	assert.False(t, session.HadError, "global redeclaration is allowed")

	_, _, _, session = resolveSource(t, "{ var a = 1; { var a = 2; } }")
	assert.False(t, session.HadError, "shadowing in a nested scope is allowed")
}
