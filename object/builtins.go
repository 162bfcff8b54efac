/*
File    : gomonkey/object/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"fmt"
	"io"
)

// BuiltinNames fixes the order builtins are registered in: the compiler's
// root symbol table defines BUILTIN-scope symbols at these indices, and
// the VM's GET_BUILTIN opcode indexes into a Builtins slice built in this
// same order (spec.md §4.6, "Builtins are pre-defined on the root symbol
// table by name-ordered index matching a parallel table the VM uses").
var BuiltinNames = []string{"len", "puts", "first", "last", "rest", "push"}

// NewBuiltins builds the ordered Builtin table, binding puts's output to
// w the way the teacher's Evaluator.Writer field lets `puts`-equivalents
// be redirected for testing (eval/evaluator.go's SetWriter).
func NewBuiltins(w io.Writer) []*Builtin {
	return []*Builtin{
		{Name: "len", Fn: builtinLen},
		{Name: "puts", Fn: builtinPuts(w)},
		{Name: "first", Fn: builtinFirst},
		{Name: "last", Fn: builtinLast},
		{Name: "rest", Fn: builtinRest},
		{Name: "push", Fn: builtinPush},
	}
}

func newError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}

func wrongArgCount(got, want int) *Error {
	return newError("wrong number of arguments, got %d, want %d", got, want)
}

func builtinLen(args ...Object) Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	switch arg := args[0].(type) {
	case *String:
		return &Integer{Value: int64(len(arg.Value))}
	case *Array:
		return &Integer{Value: int64(len(arg.Elements))}
	default:
		return newError("argument to `len` not supported, got %s", args[0].Type())
	}
}

func builtinPuts(w io.Writer) BuiltinFunction {
	return func(args ...Object) Object {
		for _, arg := range args {
			fmt.Fprintln(w, arg.Inspect())
		}
		return NULL
	}
}

func builtinFirst(args ...Object) Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to `first` must be ARRAY, got %s", args[0].Type())
	}
	if len(arr.Elements) > 0 {
		return arr.Elements[0]
	}
	return NULL
}

func builtinLast(args ...Object) Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to `last` must be ARRAY, got %s", args[0].Type())
	}
	if length := len(arr.Elements); length > 0 {
		return arr.Elements[length-1]
	}
	return NULL
}

func builtinRest(args ...Object) Object {
	if len(args) != 1 {
		return wrongArgCount(len(args), 1)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to `rest` must be ARRAY, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	if length == 0 {
		return &Array{Elements: []Object{}}
	}
	newElements := make([]Object, length-1)
	copy(newElements, arr.Elements[1:length])
	return &Array{Elements: newElements}
}

func builtinPush(args ...Object) Object {
	if len(args) != 2 {
		return wrongArgCount(len(args), 2)
	}
	arr, ok := args[0].(*Array)
	if !ok {
		return newError("argument to `push` must be ARRAY, got %s", args[0].Type())
	}
	length := len(arr.Elements)
	newElements := make([]Object, length+1)
	copy(newElements, arr.Elements)
	newElements[length] = args[1]
	return &Array{Elements: newElements}
}
