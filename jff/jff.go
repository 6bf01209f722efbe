// Package jff converts between the visual-editor automaton format (JFLAP
// .jff XML documents) and the tabular transition form.
package jff

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/beevik/etree"

	"github.com/automata-kit/automaton/internal/logging"
)

// ErrFormat is returned when a document cannot be parsed as a finite
// automaton at all.
var ErrFormat = errors.New("malformed jff document")

// State is one visual-editor state node.
type State struct {
	ID      int
	Name    string
	X, Y    float64
	Initial bool
	Final   bool
}

// Edge is one visual-editor transition node. An empty Read denotes epsilon.
type Edge struct {
	From, To int
	Read     string
}

// Document is the in-memory form of a .jff automaton.
type Document struct {
	States []State
	Edges  []Edge
}

// Parse reads a .jff document. The root must be a <structure> of type "fa".
// State and transition nodes with non-integer ids or endpoints are skipped,
// matching the lenient row policy of the tabular reader.
func Parse(r io.Reader) (*Document, error) {
	xml := etree.NewDocument()
	if _, err := xml.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	root := xml.SelectElement("structure")
	if root == nil {
		return nil, fmt.Errorf("%w: missing structure element", ErrFormat)
	}
	if typ := root.SelectElement("type"); typ == nil || typ.Text() != "fa" {
		return nil, fmt.Errorf("%w: not a finite automaton", ErrFormat)
	}

	doc := &Document{}
	skipped := 0

	for _, el := range root.FindElements(".//state") {
		id, err := strconv.Atoi(el.SelectAttrValue("id", ""))
		if err != nil {
			skipped++
			continue
		}
		state := State{
			ID:      id,
			Name:    el.SelectAttrValue("name", ""),
			Initial: el.SelectElement("initial") != nil,
			Final:   el.SelectElement("final") != nil,
		}
		if x := el.SelectElement("x"); x != nil {
			state.X, _ = strconv.ParseFloat(x.Text(), 64)
		}
		if y := el.SelectElement("y"); y != nil {
			state.Y, _ = strconv.ParseFloat(y.Text(), 64)
		}
		doc.States = append(doc.States, state)
	}

	for _, el := range root.FindElements(".//transition") {
		from, to := el.SelectElement("from"), el.SelectElement("to")
		if from == nil || to == nil {
			skipped++
			continue
		}
		fromID, err := strconv.Atoi(from.Text())
		if err != nil {
			skipped++
			continue
		}
		toID, err := strconv.Atoi(to.Text())
		if err != nil {
			skipped++
			continue
		}
		edge := Edge{From: fromID, To: toID}
		if read := el.SelectElement("read"); read != nil {
			edge.Read = read.Text()
		}
		doc.Edges = append(doc.Edges, edge)
	}

	if skipped > 0 {
		logger := logging.GetLogger("jff")
		logger.Debug().
			Int("states", len(doc.States)).
			Int("edges", len(doc.Edges)).
			Int("skipped", skipped).
			Msg("skipped unparseable nodes")
	}
	return doc, nil
}

// ParseFile reads a .jff document from path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// WriteTo writes the document as .jff XML.
func (d *Document) WriteTo(w io.Writer) error {
	xml := etree.NewDocument()
	xml.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := xml.CreateElement("structure")
	root.CreateElement("type").SetText("fa")
	fa := root.CreateElement("automaton")

	for _, state := range d.States {
		el := fa.CreateElement("state")
		el.CreateAttr("id", strconv.Itoa(state.ID))
		el.CreateAttr("name", state.Name)
		el.CreateElement("x").SetText(strconv.FormatFloat(state.X, 'f', 1, 64))
		el.CreateElement("y").SetText(strconv.FormatFloat(state.Y, 'f', 1, 64))
		if state.Initial {
			el.CreateElement("initial")
		}
		if state.Final {
			el.CreateElement("final")
		}
	}

	for _, edge := range d.Edges {
		el := fa.CreateElement("transition")
		el.CreateElement("from").SetText(strconv.Itoa(edge.From))
		el.CreateElement("to").SetText(strconv.Itoa(edge.To))
		el.CreateElement("read").SetText(edge.Read)
	}

	xml.Indent(2)
	_, err := xml.WriteTo(w)
	return err
}

// WriteFile writes the document to path.
func (d *Document) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := d.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
