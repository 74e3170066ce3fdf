/*
Package ordmap implements an ordered map of items, backed by a red-black tree.

Keys and values are simbase.Items. Keys are placed by Compare, a Compare result
of 0 signals equal keys; duplicates are refused. The map owns its keys and values
and releases them (see simbase.Releaser) when entries are deleted or the map is
cleared.

    m := ordmap.New()
    m.Add(simbase.Int(5), simbase.String("five"))
    m.Add(simbase.Int(3), simbase.String("three"))
    v := m.Value(simbase.Int(5))     // returns "five"

A sorted snapshot of the map may be exported into two ordlist lists, one for the
keys and one for the values. Clonable items are exported as copies, all other
items are exported as borrowed entries, i.e. the lists will not release them.

Configuration

If global configuration key "verify-tree-invariants" is set, the red-black
properties are checked after every mutation and violations are traced. Setting
"panic-on-tree-corruption" additionally panics on a violation. Both are
debugging aids.

Maps are not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ordmap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'simbase.ordmap'.
func tracer() tracing.Trace {
	return tracing.Select("simbase.ordmap")
}
