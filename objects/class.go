/*
File    : notlox/objects/class.go
Author  : CesGalaxy
Contact : github.com/CesGalaxy
*/
package objects

import "fmt"

// MethodInterface is the surface a class needs from its methods. Methods
// are user-defined functions, which live in the function package; keeping
// an interface here avoids a circular import between the two packages.
type MethodInterface interface {
	Object
	Arity() int
	GetName() string
}

// Class represents a class value in NotLox. It is immutable after
// construction: a name plus a table of unbound methods. Calling a class
// constructs a fresh Instance; classes take no constructor arguments.
type Class struct {
	Name    string                     // Name of the class
	Methods map[string]MethodInterface // Unbound methods by name
}

// NewClass creates a class value with the given method table.
func NewClass(name string, methods map[string]MethodInterface) *Class {
	if methods == nil {
		methods = make(map[string]MethodInterface)
	}
	return &Class{Name: name, Methods: methods}
}

// FindMethod retrieves a method by name.
// It returns the method and a boolean indicating if it was found.
func (c *Class) FindMethod(name string) (MethodInterface, bool) {
	method, found := c.Methods[name]
	return method, found
}

// Arity implements Callable. Classes construct bare instances and take no
// arguments.
func (c *Class) Arity() int {
	return 0
}

// GetType returns the type of the Class object
func (c *Class) GetType() ObjectType {
	return ClassType
}

// ToString returns the class name, which is how class values print
func (c *Class) ToString() string {
	return c.Name
}

// ToObject returns a detailed representation including the method names
func (c *Class) ToObject() string {
	methodStr := ""
	for name := range c.Methods {
		methodStr += fmt.Sprintf("\n  %s", name)
	}
	return fmt.Sprintf("<class(%s) {%s}>", c.Name, methodStr)
}

// Instance represents an instance of a class, holding its mutable field
// map and a reference to the class it was constructed from.
type Instance struct {
	Class  *Class            // Reference to the defining class
	Fields map[string]Object // Per-instance field storage
}

// NewInstance creates an instance of the given class with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{
		Class:  class,
		Fields: make(map[string]Object),
	}
}

// GetField reads a field by name. Fields shadow methods: property access
// checks fields first, and only then the class's method table.
func (i *Instance) GetField(name string) (Object, bool) {
	value, found := i.Fields[name]
	return value, found
}

// SetField stores a field value, creating the field if needed.
func (i *Instance) SetField(name string, value Object) {
	i.Fields[name] = value
}

// GetType returns the type of the Instance object
func (i *Instance) GetType() ObjectType {
	return InstanceType
}

// ToString returns the conventional "<Name> instance" display form
func (i *Instance) ToString() string {
	return i.Class.Name + " instance"
}

// ToObject returns a detailed representation including the fields
func (i *Instance) ToObject() string {
	fieldStr := ""
	for name, value := range i.Fields {
		fieldStr += fmt.Sprintf("\n  %s = %s", name, value.ToString())
	}
	return fmt.Sprintf("<instance(%s) {%s}>", i.Class.Name, fieldStr)
}
