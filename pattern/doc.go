/*
Package pattern provides the pattern-tree type of treepat, together with the
front end for the pattern DSL: a tokenizer and a parser.

The pattern DSL is a small s-expression surface. A pattern

    (send nil? :foo)

matches a "send" node whose first child satisfies the nil? predicate and whose
second child is the symbol foo. Constructs are sequences '(…)', unions '{…}',
captures '$…', wildcards '_', symbol literals ':sym', node-type literals
(bare identifiers) and predicates 'name?'.

Pattern trees are immutable once parsed; the compiler in package compile only
reads them.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pattern

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treepat.pattern'.
func tracer() tracing.Trace {
	return tracing.Select("treepat.pattern")
}
