/*
File    : notlox/eval/evaluator_test.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CesGalaxy/notlox/diag"
	"github.com/CesGalaxy/notlox/objects"
	"github.com/CesGalaxy/notlox/parser"
	"github.com/CesGalaxy/notlox/resolver"
)

// runSource pushes src through parse, resolve and eval against a fresh
// evaluator, returning the captured print output, the evaluation result
// and the evaluator itself.
func runSource(t *testing.T, src string) (string, objects.Object, *Evaluator) {
	t.Helper()
	session := diag.NewSession()
	diagBuf := &bytes.Buffer{}
	session.Out = diagBuf

	root := parser.NewParser(src, session).Parse()
	require.False(t, session.HadError, "parse errors: %s", diagBuf.String())
	locals := resolver.NewResolver(session).Resolve(root)
	require.False(t, session.HadError, "resolve errors: %s", diagBuf.String())

	ev := NewEvaluator()
	out := &bytes.Buffer{}
	ev.SetWriter(out)
	ev.AddLocals(locals)
	result := ev.Eval(root)
	return out.String(), result, ev
}

// requireRuntimeError asserts that evaluating src fails with the given
// message and returns the error object.
func requireRuntimeError(t *testing.T, src, message string) *objects.Error {
	t.Helper()
	_, result, _ := runSource(t, src)
	err, ok := result.(*objects.Error)
	require.True(t, ok, "expected a runtime error, got %T", result)
	assert.Equal(t, message, err.Message)
	return err
}

// TestEvaluator_Scenarios runs the language's end-to-end print programs.
func TestEvaluator_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"arithmetic",
			`print 1 + 2;`,
			"3\n",
		},
		{
			"string concatenation",
			`var a = "he"; var b = "llo"; print a + b;`,
			"hello\n",
		},
		{
			"closures capture parameters",
			`fun make(n) { fun add(x) { return x + n; } return add; }
			 var f = make(10);
			 print f(5);
			 print f(7);`,
			"15\n17\n",
		},
		{
			"for loop",
			`for (var i = 0; i < 3; i = i + 1) print i;`,
			"0\n1\n2\n",
		},
		{
			"class method call",
			`class Greeter { greet() { print "hi"; } }
			 var g = Greeter();
			 g.greet();`,
			"hi\n",
		},
		{
			"block shadowing",
			`var x = 1; { var x = 2; print x; } print x;`,
			"2\n1\n",
		},
		{
			"unary minus reverses strings",
			`print -"abc";`,
			"cba\n",
		},
		{
			"nil equals only nil",
			`print nil == false;`,
			"false\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, result, _ := runSource(t, tt.input)
			require.False(t, IsError(result), "runtime error: %s", result.ToString())
			assert.Equal(t, tt.expected, out)
		})
	}
}

// TestEvaluator_Printing covers the stringification rules.
func TestEvaluator_Printing(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`print 3;`, "3\n"},
		{`print 3.0;`, "3\n"},
		{`print 1.5;`, "1.5\n"},
		{`print -0.25;`, "-0.25\n"},
		{`print nil;`, "nil\n"},
		{`print true;`, "true\n"},
		{`print false;`, "false\n"},
		{`print "text";`, "text\n"},
		{`print 1 / 0;`, "+Inf\n"},
		{`print -1 / 0;`, "-Inf\n"},
		{`class C {} print C;`, "C\n"},
		{`class C {} print C();`, "C instance\n"},
	}

	for _, tt := range tests {
		out, result, _ := runSource(t, tt.input)
		require.False(t, IsError(result), "input %q: %s", tt.input, result.ToString())
		assert.Equal(t, tt.expected, out, "input %q", tt.input)
	}
}

// TestEvaluator_Operators covers the operator semantics tables.
func TestEvaluator_Operators(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// equality across types
		{`print 1 == 1;`, "true\n"},
		{`print 1 == 2;`, "false\n"},
		{`print 1 != 2;`, "true\n"},
		{`print "a" == "a";`, "true\n"},
		{`print 1 == "1";`, "false\n"},
		{`print nil == nil;`, "true\n"},
		{`print nil == 0;`, "false\n"},
		// comparisons
		{`print 2 > 1;`, "true\n"},
		{`print 2 >= 2;`, "true\n"},
		{`print 1 < 2;`, "true\n"},
		{`print 2 <= 1;`, "false\n"},
		// logical operators yield the deciding operand
		{`print "a" or "b";`, "a\n"},
		{`print nil or "b";`, "b\n"},
		{`print nil and 2;`, "nil\n"},
		{`print 1 and 2;`, "2\n"},
		{`print false or false;`, "false\n"},
		// truthiness of 0 and ""
		{`print 0 and "yes";`, "yes\n"},
		{`print "" and "yes";`, "yes\n"},
		// unary
		{`print !true;`, "false\n"},
		{`print !nil;`, "true\n"},
		{`print !0;`, "false\n"},
		{`print -3;`, "-3\n"},
		{`print -true;`, "false\n"},
		{`print -false;`, "true\n"},
	}

	for _, tt := range tests {
		out, result, _ := runSource(t, tt.input)
		require.False(t, IsError(result), "input %q: %s", tt.input, result.ToString())
		assert.Equal(t, tt.expected, out, "input %q", tt.input)
	}
}

// TestEvaluator_ShortCircuit: the untaken operand must not evaluate.
func TestEvaluator_ShortCircuit(t *testing.T) {
	// boom() would fail; short-circuiting keeps it unevaluated
	out, result, _ := runSource(t, `
fun boom() { return 1 + nil; }
print false and boom();
print true or boom();`)
	require.False(t, IsError(result), "%s", result.ToString())
	assert.Equal(t, "false\ntrue\n", out)
}

// TestEvaluator_RuntimeErrors checks the error messages and carried
// lines.
func TestEvaluator_RuntimeErrors(t *testing.T) {
	tests := []struct {
		input   string
		message string
	}{
		{`print 1 + "a";`, "Operands must be two numbers or two strings."},
		{`print "a" + 1;`, "Operands must be two numbers or two strings."},
		{`print 1 - "a";`, "Operands must be numbers."},
		{`print "a" < "b";`, "Operands must be numbers."},
		{`print -nil;`, "Operand must be a number."},
		{`print missing;`, "Undefined variable 'missing'."},
		{`missing = 1;`, "Undefined variable 'missing'."},
		{`var x = 1; x();`, "Can only call functions and classes."},
		{`fun f(a) {} f();`, "Expected 1 arguments but got 0."},
		{`fun f() {} f(1, 2);`, "Expected 0 arguments but got 2."},
		{`class C {} C(1);`, "Expected 0 arguments but got 1."},
		{`var s = "a"; s.x = 1;`, "Only instances have fields."},
		{`var n = 1; print n.x;`, "Only instances have properties."},
		{`class C {} print C().missing;`, "Undefined property 'missing'."},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			requireRuntimeError(t, tt.input, tt.message)
		})
	}
}

// TestEvaluator_RuntimeErrorLine: the error carries the offending line.
func TestEvaluator_RuntimeErrorLine(t *testing.T) {
	err := requireRuntimeError(t, "var a = 1;\nvar b = 2;\nprint a + nil;", "Operands must be two numbers or two strings.")
	assert.Equal(t, 3, err.Line)
}

// TestEvaluator_ErrorAbortsStatement: a failing statement stops the run;
// the statements after it do not execute.
func TestEvaluator_ErrorAbortsStatement(t *testing.T) {
	out, result, _ := runSource(t, `print 1; print 1 + nil; print 2;`)
	assert.True(t, IsError(result))
	assert.Equal(t, "1\n", out)
}

// TestEvaluator_Closures covers capture-by-reference behavior: mutation
// through the closure, sharing between sibling closures, and capture of
// the exact live scope.
func TestEvaluator_Closures(t *testing.T) {
	out, result, _ := runSource(t, `
fun makeCounter() {
	var i = 0;
	fun count() {
		i = i + 1;
		print i;
	}
	return count;
}
var c = makeCounter();
c();
c();
var d = makeCounter();
d();`)
	require.False(t, IsError(result), "%s", result.ToString())
	assert.Equal(t, "1\n2\n1\n", out)

	// Sibling closures share one captured scope
	out, result, _ = runSource(t, `
fun makePair() {
	var n = 0;
	fun set(v) { n = v; }
	fun get() { return n; }
	set(42);
	print get();
}
makePair();`)
	require.False(t, IsError(result), "%s", result.ToString())
	assert.Equal(t, "42\n", out)
}

// TestEvaluator_Recursion: a function can call itself through the name
// bound in its defining scope.
func TestEvaluator_Recursion(t *testing.T) {
	out, result, _ := runSource(t, `
fun fib(n) {
	if (n < 2) return n;
	return fib(n - 1) + fib(n - 2);
}
print fib(10);`)
	require.False(t, IsError(result), "%s", result.ToString())
	assert.Equal(t, "55\n", out)
}

// TestEvaluator_ReturnWithoutValue: a bare return yields nil, and a body
// that falls off the end yields nil too.
func TestEvaluator_ReturnWithoutValue(t *testing.T) {
	out, result, _ := runSource(t, `
fun early(n) {
	if (n) return;
	print "not reached";
}
print early(true);
fun silent() { var unused = 1; }
print silent();`)
	require.False(t, IsError(result), "%s", result.ToString())
	assert.Equal(t, "nil\nnil\n", out)
}

// TestEvaluator_ReturnUnwindsLoops: a return inside nested blocks and
// loops exits the whole function, not just the loop.
func TestEvaluator_ReturnUnwindsLoops(t *testing.T) {
	out, result, _ := runSource(t, `
fun firstOver(limit) {
	for (var i = 0; i < 100; i = i + 1) {
		if ((i > limit)) {
			return i;
		}
	}
	return -1;
}
print firstOver(3);`)
	require.False(t, IsError(result), "%s", result.ToString())
	assert.Equal(t, "4\n", out)
}

// TestEvaluator_WhileEquivalence: the desugared for and a hand-written
// while print the same sequence.
func TestEvaluator_WhileEquivalence(t *testing.T) {
	forOut, forResult, _ := runSource(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.False(t, IsError(forResult))

	whileOut, whileResult, _ := runSource(t, `{ var i = 0; while (i < 3) { print i; i = i + 1; } }`)
	require.False(t, IsError(whileResult))

	assert.Equal(t, whileOut, forOut)
}

// TestEvaluator_ScopeRestoration: the current scope equals the entry
// scope after blocks, calls, returns and runtime errors alike.
func TestEvaluator_ScopeRestoration(t *testing.T) {
	_, result, ev := runSource(t, `{ var a = 1; { var b = 2; } }`)
	require.False(t, IsError(result))
	assert.Same(t, ev.Globals, ev.Scp)

	_, result, ev = runSource(t, `fun f() { return 1; } f();`)
	require.False(t, IsError(result))
	assert.Same(t, ev.Globals, ev.Scp)

	_, result, ev = runSource(t, `{ var a = 1; print a + nil; }`)
	require.True(t, IsError(result))
	assert.Same(t, ev.Globals, ev.Scp)
}

// TestEvaluator_Fields: instance fields are created on first write, read
// back, and shadow methods of the same name.
func TestEvaluator_Fields(t *testing.T) {
	out, result, _ := runSource(t, `
class Point {}
var p = Point();
p.x = 3;
p.y = 4;
print p.x + p.y;
var q = Point();
q.x = 10;
print p.x;
print q.x;`)
	require.False(t, IsError(result), "%s", result.ToString())
	assert.Equal(t, "7\n3\n10\n", out)

	// Field shadows the method with the same name
	out, result, _ = runSource(t, `
class Box {
	label() { return "method"; }
}
var b = Box();
b.label = "field";
print b.label;`)
	require.False(t, IsError(result), "%s", result.ToString())
	assert.Equal(t, "field\n", out)
}

// TestEvaluator_MethodBinding: an extracted method keeps its receiver,
// and 'this' resolves to the instance it was bound to.
func TestEvaluator_MethodBinding(t *testing.T) {
	out, result, _ := runSource(t, `
class Cell {
	put(v) { this.value = v; }
	get() { return this.value; }
}
var cell = Cell();
cell.put(9);
print cell.get();
var extracted = cell.get;
print extracted();`)
	require.False(t, IsError(result), "%s", result.ToString())
	assert.Equal(t, "9\n9\n", out)

	out, result, _ = runSource(t, `
class C {
	self() { return this; }
}
var a = C();
print a.self() == a;
var b = C();
print a.self() == b;`)
	require.False(t, IsError(result), "%s", result.ToString())
	assert.Equal(t, "true\nfalse\n", out)
}

// TestEvaluator_MethodClosesOverDeclarationScope: methods capture the
// scope the class was declared in, like any function.
func TestEvaluator_MethodClosesOverDeclarationScope(t *testing.T) {
	out, result, _ := runSource(t, `
{
	var greeting = "hello";
	class Greeter {
		greet() { print greeting; }
	}
	var g = Greeter();
	g.greet();
}`)
	require.False(t, IsError(result), "%s", result.ToString())
	assert.Equal(t, "hello\n", out)
}

// TestEvaluator_Builtins: clock is callable, and the now snapshot is a
// positive number.
func TestEvaluator_Builtins(t *testing.T) {
	out, result, _ := runSource(t, `
print clock() > 0;
print now > 0;
print clock() >= now;`)
	require.False(t, IsError(result), "%s", result.ToString())
	assert.Equal(t, "true\ntrue\ntrue\n", out)

	requireRuntimeError(t, `clock(1);`, "Expected 0 arguments but got 1.")
}

// TestEvaluator_VarWithoutInitializer defaults to nil.
func TestEvaluator_VarWithoutInitializer(t *testing.T) {
	out, result, _ := runSource(t, `var a; print a;`)
	require.False(t, IsError(result))
	assert.Equal(t, "nil\n", out)
}

// TestEvaluator_IfElse exercises both branches and the dangling else.
func TestEvaluator_IfElse(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`if (true) print "t"; else print "f";`, "t\n"},
		{`if (false) print "t"; else print "f";`, "f\n"},
		{`if (nil) print "t"; else print "f";`, "f\n"},
		{`if (0) print "t"; else print "f";`, "t\n"},
		{`if (false) print "t";`, ""},
	}

	for _, tt := range tests {
		out, result, _ := runSource(t, tt.input)
		require.False(t, IsError(result), "input %q", tt.input)
		assert.Equal(t, tt.expected, out, "input %q", tt.input)
	}
}

// TestEvaluator_AssignmentChains: assignment evaluates to the assigned
// value and writes the scope the resolver picked.
func TestEvaluator_AssignmentChains(t *testing.T) {
	out, result, _ := runSource(t, `
var a = 1;
var b = 2;
a = b = 7;
print a;
print b;
{
	var a = 100;
	a = 200;
	print a;
}
print a;`)
	require.False(t, IsError(result), "%s", result.ToString())
	assert.Equal(t, "7\n7\n200\n7\n", out)
}

// TestEvaluator_FunctionValues: functions print as values and flow
// through variables.
func TestEvaluator_FunctionValues(t *testing.T) {
	out, result, _ := runSource(t, `
fun named() {}
print named;
var alias = named;
print alias == named;`)
	require.False(t, IsError(result), "%s", result.ToString())
	assert.Equal(t, "<fn named>\ntrue\n", out)
}
