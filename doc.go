/*
Package treepat is a tree-pattern compiler with match tracing.

treepat compiles a small declarative pattern language—matching against nodes
of a parsed syntax tree—into executable matcher logic. A debug configuration
additionally records, for every position of the compiled pattern, whether it
was reached and whether it matched during one execution, and a visualizer maps
that record back onto the analyzed source text as a per-character
classification. Package structure is as follows:

■ scanner: Tokenizer interface plus two implementations, a thin wrapper over
the Go std lib 'text/scanner' and a lexmachine adapter.

■ pattern: The pattern tree type and the pattern DSL front end (tokenizer and
parser).

■ compile: Registry-driven pattern compiler, instrumentation overlay, compiled
programs and a structural compile cache.

■ trace: Per-run trace records.

■ viz: Per-character classification of analyzed source text from a trace.

■ sexp: A simple producer of analyzed trees from s-expression input, used by
tests and the debugging CLI.

The base package contains data types which are used throughout all the other
packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treepat
