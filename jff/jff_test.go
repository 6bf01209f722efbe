package jff

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/automata-kit/automaton/table"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<structure>
  <type>fa</type>
  <automaton>
    <state id="0" name="q0">
      <x>0.0</x>
      <y>100.0</y>
      <initial/>
    </state>
    <state id="1" name="q1">
      <x>100.0</x>
      <y>100.0</y>
    </state>
    <state id="2" name="q2">
      <x>200.0</x>
      <y>100.0</y>
      <final/>
    </state>
    <transition>
      <from>0</from>
      <to>1</to>
      <read>a</read>
    </transition>
    <transition>
      <from>1</from>
      <to>2</to>
      <read/>
    </transition>
  </automaton>
</structure>
`

func TestParse(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDoc))
	assert.Nil(t, err)

	assert.Equal(t, []State{
		{ID: 0, Name: "q0", X: 0, Y: 100, Initial: true},
		{ID: 1, Name: "q1", X: 100, Y: 100},
		{ID: 2, Name: "q2", X: 200, Y: 100, Final: true},
	}, doc.States)
	assert.Equal(t, []Edge{
		{From: 0, To: 1, Read: "a"},
		{From: 1, To: 2, Read: ""},
	}, doc.Edges)
}

func TestParseRejectsNonAutomata(t *testing.T) {
	t.Run("notXML", func(t *testing.T) {
		_, err := Parse(strings.NewReader("not xml at all <<<"))
		assert.True(t, errors.Is(err, ErrFormat))
	})

	t.Run("missingStructure", func(t *testing.T) {
		_, err := Parse(strings.NewReader(`<?xml version="1.0"?><other/>`))
		assert.True(t, errors.Is(err, ErrFormat))
	})

	t.Run("wrongType", func(t *testing.T) {
		_, err := Parse(strings.NewReader(`<structure><type>grammar</type></structure>`))
		assert.True(t, errors.Is(err, ErrFormat))
	})
}

func TestParseSkipsBadNodes(t *testing.T) {
	in := `<structure><type>fa</type><automaton>
		<state id="zero" name="bad"/>
		<state id="1" name="ok"/>
		<transition><from>1</from><to>oops</to><read>a</read></transition>
		<transition><from>1</from><to>1</to><read>a</read></transition>
	</automaton></structure>`

	doc, err := Parse(strings.NewReader(in))
	assert.Nil(t, err)
	assert.Len(t, doc.States, 1)
	assert.Len(t, doc.Edges, 1)
}

func TestRowsExpandsClasses(t *testing.T) {
	doc := &Document{
		Edges: []Edge{
			{From: 0, To: 1, Read: "[0-9]"},
			{From: 1, To: 2, Read: "x"},
			{From: 2, To: 3, Read: ""},
		},
	}

	rows := doc.Rows()
	assert.Len(t, rows, 12)
	assert.Equal(t, table.Row{From: 0, Input: "0", To: 1}, rows[0])
	assert.Equal(t, table.Row{From: 0, Input: "9", To: 1}, rows[9])
	assert.Equal(t, table.Row{From: 1, Input: "x", To: 2}, rows[10])
	assert.Equal(t, table.Row{From: 2, Input: "", To: 3}, rows[11])
}

func TestRowsExpandsLetterClasses(t *testing.T) {
	doc := &Document{Edges: []Edge{
		{From: 0, To: 0, Read: "[a-z]"},
		{From: 0, To: 0, Read: "[A-Z]"},
	}}
	rows := doc.Rows()
	assert.Len(t, rows, 52)
	assert.Equal(t, "a", rows[0].Input)
	assert.Equal(t, "z", rows[25].Input)
	assert.Equal(t, "A", rows[26].Input)
	assert.Equal(t, "Z", rows[51].Input)
}

func TestMarkers(t *testing.T) {
	doc, err := Parse(strings.NewReader(sampleDoc))
	assert.Nil(t, err)
	assert.Equal(t, table.Markers{Initial: []int{0}, Final: []int{2}}, doc.Markers())
}

func TestFromRows(t *testing.T) {
	rows := []table.Row{
		{From: 0, Input: "a", To: 1},
		{From: 1, Input: "", To: 3},
	}
	doc := FromRows(rows)

	assert.Equal(t, []State{
		{ID: 0, Name: "q0", X: 0, Y: 100, Initial: true},
		{ID: 1, Name: "q1", X: 100, Y: 100},
		{ID: 3, Name: "q3", X: 300, Y: 100, Final: true},
	}, doc.States)
	assert.Equal(t, []Edge{
		{From: 0, To: 1, Read: "a"},
		{From: 1, To: 3, Read: ""},
	}, doc.Edges)
}

func TestFromRowsLayoutOptions(t *testing.T) {
	doc := FromRows([]table.Row{{From: 0, Input: "a", To: 2}},
		WithSpacing(50), WithBaseline(10))

	assert.Equal(t, 100.0, doc.States[1].X)
	assert.Equal(t, 10.0, doc.States[0].Y)
}

func TestFromRowsEmpty(t *testing.T) {
	doc := FromRows(nil)
	assert.Empty(t, doc.States)
	assert.Empty(t, doc.Edges)
}

func TestWriteToRoundTrip(t *testing.T) {
	original, err := Parse(strings.NewReader(sampleDoc))
	assert.Nil(t, err)

	var buf bytes.Buffer
	assert.Nil(t, original.WriteTo(&buf))
	assert.Contains(t, buf.String(), `<?xml version="1.0" encoding="UTF-8"?>`)

	reread, err := Parse(&buf)
	assert.Nil(t, err)
	assert.Equal(t, original.States, reread.States)
	assert.Equal(t, original.Edges, reread.Edges)
}
