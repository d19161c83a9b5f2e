/*
Package compile turns pattern trees into executable matcher programs.

The compiler walks a pattern tree top-down in a single pass, dispatching each
node through a registry of handlers keyed by the node's type tag. Handlers
emit matcher fragments (closures over the analyzed tree) and may recursively
compile child patterns. Registries are snapshot-inherited: deriving a registry
copies the parent's mapping in full, after which the two are independently
mutable.

A debug configuration (NewDebugCompiler) wraps every emitted fragment with
trace instrumentation without handlers being aware of it, and requires the
resulting program to be invoked with an additional "trace" argument.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package compile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treepat.compile'.
func tracer() tracing.Trace {
	return tracing.Select("treepat.compile")
}
