package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automata-kit/automaton/table"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.Nil(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestConvertPipeline(t *testing.T) {
	dir := t.TempDir()
	nfaCSV := writeFile(t, dir, "nfa.csv",
		"From,Input,To\n// epsilon chain\n0,,1\n1,a,2\n2,,3\n3,b,4\n")
	statesJSON := writeFile(t, dir, "states.json",
		`{"initial": [0], "final": [[4, "accept"]]}`)
	outCSV := filepath.Join(dir, "dfa.csv")
	outJSON := filepath.Join(dir, "dfa-final.json")

	err := execute(t, "convert", nfaCSV, statesJSON, "-o", outCSV, "--final-out", outJSON)
	require.Nil(t, err)

	rows, err := table.ReadRowsFile(outCSV)
	require.Nil(t, err)
	assert.Equal(t, []table.Row{
		{From: 0, Input: "a", To: 1},
		{From: 1, Input: "b", To: 2},
	}, rows)

	pairs, err := table.ReadAcceptPairsFile(outJSON)
	require.Nil(t, err)
	assert.Equal(t, []table.AcceptPair{{State: 2, Label: "accept"}}, pairs)

	// The produced DFA should be runnable as-is.
	err = execute(t, "run", outCSV, outJSON, "ab", "ba")
	assert.Nil(t, err)
}

func TestConvertStateLimit(t *testing.T) {
	dir := t.TempDir()
	nfaCSV := writeFile(t, dir, "nfa.csv",
		"0,a,0\n0,b,0\n0,a,1\n1,a,2\n1,b,2\n2,a,3\n2,b,3\n")
	statesJSON := writeFile(t, dir, "states.json",
		`{"initial": [0], "final": [[3, "match"]]}`)

	err := execute(t, "convert", nfaCSV, statesJSON,
		"-o", filepath.Join(dir, "dfa.csv"),
		"--final-out", filepath.Join(dir, "dfa-final.json"),
		"--max-states", "2")
	assert.NotNil(t, err)
}

func TestJFFPipeline(t *testing.T) {
	dir := t.TempDir()
	jffIn := writeFile(t, dir, "in.jff", `<?xml version="1.0"?>
<structure>
  <type>fa</type>
  <automaton>
    <state id="0" name="q0"><x>0.0</x><y>100.0</y><initial/></state>
    <state id="1" name="q1"><x>100.0</x><y>100.0</y><final/></state>
    <transition><from>0</from><to>1</to><read>[0-9]</read></transition>
  </automaton>
</structure>`)
	outCSV := filepath.Join(dir, "out.csv")
	outStates := filepath.Join(dir, "states.json")
	outJFF := filepath.Join(dir, "roundtrip.jff")

	require.Nil(t, execute(t, "jff2csv", jffIn, outCSV))
	rows, err := table.ReadRowsFile(outCSV)
	require.Nil(t, err)
	assert.Len(t, rows, 10)

	require.Nil(t, execute(t, "jff2states", jffIn, outStates))
	data, err := os.ReadFile(outStates)
	require.Nil(t, err)
	assert.JSONEq(t, `{"initial": [0], "final": [1]}`, string(data))

	require.Nil(t, execute(t, "csv2jff", outCSV, outJFF))
	_, err = os.Stat(outJFF)
	assert.Nil(t, err)
}
