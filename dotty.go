package fingertree

import (
	"fmt"
	"io"
)

type nodeids struct {
	idTable map[any]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[any]int),
		max:     1,
	}
}

// alloc returns a stable id for a pointer-identified tree part, so shared
// substructure is drawn once.
func (ids *nodeids) alloc(n any) int {
	if id, ok := ids.idTable[n]; ok {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// fresh returns a new id for parts without pointer identity.
func (ids *nodeids) fresh() int {
	ids.max++
	return ids.max - 1
}

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes).
//
// Spine variants, digits and 2-3-nodes are drawn as separate node shapes,
// labelled with their cached measures. Substructure shared between tree
// levels is drawn once.
func Tree2Dot[V, A any](t Tree[V, A], w io.Writer) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	dotSpine[V, A](t.spine(), &ids, w)
	io.WriteString(w, "}\n")
}

func dotSpine[V, A any](t spine[V], ids *nodeids, w io.Writer) int {
	switch t := t.(type) {
	case emptyTree[V]:
		id := ids.fresh()
		fmt.Fprintf(w, "\t\"%d\" [label=\"empty\" shape=plaintext];\n", id)
		return id
	case singleTree[V]:
		id := ids.fresh()
		fmt.Fprintf(w, "\t\"%d\" [label=\"single\" shape=ellipse];\n", id)
		el := dotElement[V, A](t.el, ids, w)
		fmt.Fprintf(w, "\t\"%d\" -> \"%d\";\n", id, el)
		return id
	case *deepTree[V]:
		id := ids.alloc(t)
		fmt.Fprintf(w, "\t\"%d\" [label=\"deep [%v]\" shape=ellipse];\n", id, t.m)
		pr := dotDigit[V, A](t.pr, ids, w)
		mid := dotSpine[V, A](t.mid, ids, w)
		sf := dotDigit[V, A](t.sf, ids, w)
		fmt.Fprintf(w, "\t\"%d\" -> \"%d\" [label=\"pr\"];\n", id, pr)
		fmt.Fprintf(w, "\t\"%d\" -> \"%d\" [label=\"mid\"];\n", id, mid)
		fmt.Fprintf(w, "\t\"%d\" -> \"%d\" [label=\"sf\"];\n", id, sf)
		return id
	}
	assert(false, "dot output: unknown tree variant")
	return 0
}

func dotDigit[V, A any](d digit[V], ids *nodeids, w io.Writer) int {
	id := ids.fresh()
	fmt.Fprintf(w, "\t\"%d\" [label=\"digit/%d [%v]\" shape=box];\n", id, len(d.els), d.m)
	for _, el := range d.els {
		kid := dotElement[V, A](el, ids, w)
		fmt.Fprintf(w, "\t\"%d\" -> \"%d\";\n", id, kid)
	}
	return id
}

func dotElement[V, A any](el element[V], ids *nodeids, w io.Writer) int {
	if n, ok := el.(*node[V]); ok {
		id := ids.alloc(n)
		fmt.Fprintf(w, "\t\"%d\" [label=\"node%d [%v]\" shape=box style=rounded];\n", id, len(n.kids), n.m)
		for _, kid := range n.kids {
			kidID := dotElement[V, A](kid, ids, w)
			fmt.Fprintf(w, "\t\"%d\" -> \"%d\";\n", id, kidID)
		}
		return id
	}
	lf, ok := el.(leaf[V, A])
	assert(ok, "dot output: unexpected element type")
	id := ids.fresh()
	fmt.Fprintf(w, "\t\"%d\" [label=\"“%v” [%v]\" shape=plaintext];\n", id, lf.a, lf.m)
	return id
}
