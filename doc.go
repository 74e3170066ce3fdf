/*
Package simbase provides foundational data structures for a simulation toolkit.

Containers in this module do not use type parameters. Everything stored into them
has to satisfy the Item interface, which is the minimal capability of equality and
ordering. Package structure is as follows:

■ container/ordlist: Package ordlist implements a doubly linked list with a single
traversal cursor.

■ container/ordmap: Package ordmap implements an ordered map as a red-black tree,
with sorted export into ordlist lists.

■ cmd/rbrepl: An interactive sandbox to experiment with the ordered map.

The base package contains the Item capability and a couple of stock items which
are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package simbase
