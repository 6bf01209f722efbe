package jff

import (
	"fmt"
	"slices"

	"github.com/automata-kit/automaton/table"
)

// Bracket-range shorthands the visual editor allows on a transition's read
// field. Each expands to one row per concrete character when converting to
// the tabular form; the reverse direction never re-collapses them.
var classes = map[string]string{
	"[0-9]": "0123456789",
	"[a-z]": "abcdefghijklmnopqrstuvwxyz",
	"[A-Z]": "ABCDEFGHIJKLMNOPQRSTUVWXYZ",
}

// Rows expands the document's transitions into tabular rows, in document
// order.
func (d *Document) Rows() []table.Row {
	var rows []table.Row
	for _, edge := range d.Edges {
		if chars, ok := classes[edge.Read]; ok {
			for _, c := range chars {
				rows = append(rows, table.Row{From: edge.From, Input: string(c), To: edge.To})
			}
			continue
		}
		rows = append(rows, table.Row{From: edge.From, Input: edge.Read, To: edge.To})
	}
	return rows
}

// Markers returns the initial and final state ids, in document order.
func (d *Document) Markers() table.Markers {
	m := table.Markers{Initial: []int{}, Final: []int{}}
	for _, state := range d.States {
		if state.Initial {
			m.Initial = append(m.Initial, state.ID)
		}
		if state.Final {
			m.Final = append(m.Final, state.ID)
		}
	}
	return m
}

type layout struct {
	spacingX float64
	baseline float64
}

// Option adjusts the layout used when synthesizing a document from rows.
type Option func(*layout)

// WithSpacing sets the horizontal distance between generated states.
func WithSpacing(x float64) Option {
	return func(l *layout) {
		l.spacingX = x
	}
}

// WithBaseline sets the fixed y coordinate of generated states.
func WithBaseline(y float64) Option {
	return func(l *layout) {
		l.baseline = y
	}
}

// FromRows synthesizes a visual-editor document from tabular rows. Every
// state mentioned by a row gets a node named q<id> laid out on a horizontal
// line at x = id * spacing. The smallest id is marked initial and the
// largest final; the editor is where anything fancier gets decided.
func FromRows(rows []table.Row, opts ...Option) *Document {
	l := layout{spacingX: 100, baseline: 100}
	for _, opt := range opts {
		opt(&l)
	}

	seen := make(map[int]struct{})
	var ids []int
	for _, row := range rows {
		for _, id := range []int{row.From, row.To} {
			if _, ok := seen[id]; !ok {
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	slices.Sort(ids)

	doc := &Document{}
	if len(ids) == 0 {
		return doc
	}
	for _, id := range ids {
		doc.States = append(doc.States, State{
			ID:      id,
			Name:    fmt.Sprintf("q%d", id),
			X:       float64(id) * l.spacingX,
			Y:       l.baseline,
			Initial: id == ids[0],
			Final:   id == ids[len(ids)-1],
		})
	}
	for _, row := range rows {
		doc.Edges = append(doc.Edges, Edge{From: row.From, To: row.To, Read: row.Input})
	}
	return doc
}
