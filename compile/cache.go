package compile

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/cnf/structhash"
	"github.com/npillmayer/treepat/pattern"
)

// Cache memoizes compiled programs, keyed by a structural fingerprint of the
// pattern tree. Two structurally equal pattern trees share one compiled
// program. Caches are not safe for concurrent use.
type Cache struct {
	c     *Compiler
	progs map[string]*Program
}

// NewCache creates a compile cache in front of a compiler.
func NewCache(c *Compiler) *Cache {
	return &Cache{
		c:     c,
		progs: make(map[string]*Program),
	}
}

// Compile returns the cached program for a structurally equal pattern tree,
// or compiles pat and caches the result. If fingerprinting fails, Compile
// falls back to an uncached compilation.
func (cache *Cache) Compile(pat *pattern.Node) (*Program, error) {
	key, err := structhash.Hash(pat, 1)
	if err != nil {
		tracer().Errorf("cannot fingerprint pattern: %v", err)
		return cache.c.Compile(pat)
	}
	if prog, ok := cache.progs[key]; ok {
		tracer().Debugf("cache hit for %s", pat.String())
		return prog, nil
	}
	prog, err := cache.c.Compile(pat)
	if err != nil {
		return nil, err
	}
	cache.progs[key] = prog
	return prog, nil
}

// Len returns the number of cached programs.
func (cache *Cache) Len() int {
	return len(cache.progs)
}
