// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

import (
	"io"
	"strings"

	"cogentcore.org/vrml/base/indent"
	"cogentcore.org/vrml/field"
)

// Print writes the node and the nodes it references in the textual
// encoding of the content format. A named node is written once and
// referenced with USE afterward. An unnamed node reached again through
// a cycle is written as NULL.
func (n *Node) Print(w io.Writer) error {
	p := &printer{w: indent.NewWriter(w, 2), used: map[*Node]bool{}, open: map[*Node]bool{}}
	p.node(n)
	return p.w.Flush()
}

func (n *Node) String() string {
	var b strings.Builder
	n.Print(&b)
	return b.String()
}

// printer writes nodes with indentation.
type printer struct {
	w *indent.Writer

	// used has the named nodes written so far.
	used map[*Node]bool

	// open has the nodes being written.
	open map[*Node]bool
}

func (p *printer) node(n *Node) {
	if n == nil {
		p.w.WriteString("NULL")
		return
	}
	id := n.ID()
	switch {
	case id != "" && p.used[n]:
		p.w.WriteString("USE " + id)
		return
	case p.open[n]:
		p.w.WriteString("NULL")
		return
	}
	p.open[n] = true
	defer delete(p.open, n)
	if id != "" {
		p.used[n] = true
		p.w.WriteString("DEF " + id + " ")
	}
	p.w.WriteString(n.typ.id + " {")

	n.mu.Lock()
	ids := append([]string(nil), n.fields.Keys...)
	vals := make([]field.Value, len(n.fields.Values))
	for i, v := range n.fields.Values {
		vals[i] = v.Clone()
	}
	n.mu.Unlock()

	if len(ids) == 0 {
		p.w.WriteString("}")
		return
	}
	p.w.In()
	for i, id := range ids {
		p.w.Line()
		p.w.WriteString(id + " ")
		p.value(vals[i])
	}
	p.w.Out()
	p.w.Line()
	p.w.WriteString("}")
}

func (p *printer) value(v field.Value) {
	switch x := v.(type) {
	case *field.SFNode:
		p.node(asNode(x.Value))
	case *field.MFNode:
		if len(x.Values) == 0 {
			p.w.WriteString("[]")
			return
		}
		p.w.WriteString("[")
		p.w.In()
		for _, c := range x.Values {
			p.w.Line()
			p.node(asNode(c))
		}
		p.w.Out()
		p.w.Line()
		p.w.WriteString("]")
	default:
		v.Print(p.w)
	}
}

// asNode returns c as a *Node, or nil if it is null or
// another implementation of [field.Node].
func asNode(c field.Node) *Node {
	n, _ := c.(*Node)
	return n
}
