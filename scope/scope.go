/*
File    : notlox/scope/scope.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package scope

import "github.com/CesGalaxy/notlox/objects"

// Scope defines a lexical scope boundary for variable lifetime and
// accessibility.
//
// Scope implements a hierarchical scope chain that enables lexical scoping
// and closures. Each scope maintains its own variable bindings and can
// reach variables of enclosing scopes through the Parent pointer. This
// structure supports:
// - Variable shadowing: inner scopes can redefine names from outer scopes
// - Closures: functions capture their defining scope by reference and keep
//   it alive for as long as the function value exists
// - Block scoping: each block, function call and bound method gets its own
//   scope
//
// The chain is acyclic and rooted at the globals scope (Parent == nil).
// Several closures may share one enclosing scope instance; they observe
// each other's assignments through it.
//
// The resolver precomputes, for every variable reference, the number of
// Parent hops to the scope holding that name. GetAt/AssignAt use those
// distances so resolved lookups cost exactly the computed hops instead of
// a search.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.Object

	// Parent points to the enclosing scope, forming a scope chain.
	// nil indicates this is the global (root) scope
	Parent *Scope
}

// NewScope creates and initializes a new Scope with the specified parent.
//
// Parameters:
//   - parent: The enclosing scope, or nil for the globals scope
//
// Returns:
//   - *Scope: A fully initialized scope ready for variable bindings
//
// Example usage:
//
//	globals := NewScope(nil)          // Create the root scope
//	functionScope := NewScope(globals) // Create a function scope
//	blockScope := NewScope(functionScope)
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.Object),
		Parent:    parent,
	}
}

// Bind creates (or overwrites) a variable binding in this scope only.
//
// Binding never touches parent scopes, so it is what variable
// declarations use: a declaration in an inner scope shadows an outer
// binding with the same name. Re-binding an existing name in the same
// scope is permitted at the globals level; inner-scope duplicates are
// rejected earlier by the resolver.
//
// Parameters:
//   - varName: The name of the variable to bind
//   - obj: The value to bind to the variable
func (s *Scope) Bind(varName string, obj objects.Object) {
	s.Variables[varName] = obj
}

// LookUp searches for a variable by name in this scope and all parents.
//
// 1. First checks the current scope's Variables map
// 2. If not found and a parent scope exists, recursively searches it
// 3. Continues up the chain until the name is found or the root is passed
//
// This traversal order ensures that inner bindings shadow outer ones and
// that the nearest binding always wins.
//
// Parameters:
//   - varName: The name of the variable to look up
//
// Returns:
//   - objects.Object: The value bound to the variable (if found)
//   - bool: true if the name was found in this scope or any parent
func (s *Scope) LookUp(varName string) (objects.Object, bool) {
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		return s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Assign updates an existing variable in the scope where it is bound.
//
// Unlike Bind (which always writes the current scope), Assign walks the
// chain to find the original binding and updates it in place. This is
// what makes closures able to mutate captured variables: the write lands
// in the shared enclosing scope, not in a fresh local copy.
//
// Parameters:
//   - varName: The name of the variable to assign to
//   - obj: The new value to assign
//
// Returns:
//   - bool: true if the variable was found and updated, false if the name
//     is not bound anywhere in the chain
func (s *Scope) Assign(varName string, obj objects.Object) bool {
	if _, ok := s.Variables[varName]; ok {
		s.Variables[varName] = obj
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(varName, obj)
	}
	return false
}

// Ancestor returns the scope exactly distance Parent-hops up the chain.
// Distance 0 is the receiver itself. The resolver guarantees the chain is
// at least that deep for every distance it hands out.
func (s *Scope) Ancestor(distance int) *Scope {
	scope := s
	for i := 0; i < distance; i++ {
		scope = scope.Parent
	}
	return scope
}

// GetAt reads a name directly from the scope at the given distance,
// without searching. The resolver's invariant is that the name is bound
// there; a miss returns (nil, false) and indicates a resolver bug.
func (s *Scope) GetAt(distance int, varName string) (objects.Object, bool) {
	obj, ok := s.Ancestor(distance).Variables[varName]
	return obj, ok
}

// AssignAt writes a name directly into the scope at the given distance,
// the write analogue of GetAt.
func (s *Scope) AssignAt(distance int, varName string, obj objects.Object) {
	s.Ancestor(distance).Variables[varName] = obj
}
