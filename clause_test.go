package restq

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCondition_ImplementsClause(t *testing.T) {
	var c Clause = Condition{Field: "price", Operator: OpGreaterThanEqual, Value: 10}
	assert.NotNil(t, c)

	// Sealed interface - can type switch exhaustively
	switch c.(type) {
	case Condition:
		// Expected
	case Conjunction:
		t.Fatal("unexpected type")
	}
}

func TestConjunction_ImplementsClause(t *testing.T) {
	var c Clause = Conjunction{Operator: OpOr, Groups: [][]Clause{}}
	assert.NotNil(t, c)
}

func TestClause_SealedInterface(t *testing.T) {
	clauses := []Clause{
		Condition{Field: "a", Value: 1},
		Conjunction{Operator: OpAnd, Groups: [][]Clause{}},
	}

	for _, c := range clauses {
		// Type switch is exhaustive - compiler knows all types
		switch c.(type) {
		case Condition:
			// OK
		case Conjunction:
			// OK
		default:
			t.Fatal("unexpected clause type")
		}
	}
}

func TestClause_MarkerMethodExists(t *testing.T) {
	Condition{Field: "a"}.clauseNode()
	Conjunction{Operator: OpOr}.clauseNode()
}

func TestCondition_Op(t *testing.T) {
	assert.Equal(t, OpEqual, Condition{Field: "a"}.Op())
	assert.Equal(t, OpLessThan, Condition{Field: "a", Operator: OpLessThan}.Op())
}

func TestCondition_MarshalExplicitOperator(t *testing.T) {
	data, err := json.Marshal(Condition{Field: "price", Operator: OpGreaterThanEqual, Value: 10})
	require.NoError(t, err)

	assert.JSONEq(t, `{"field":"price","operator":"gte","value":10}`, string(data))
}

func TestCondition_MarshalImplicitEqual(t *testing.T) {
	// Implicit equality omits the operator key entirely
	data, err := json.Marshal(Condition{Field: "first_name", Value: "Jo"})
	require.NoError(t, err)

	assert.Equal(t, `{"field":"first_name","value":"Jo"}`, string(data))
	assert.NotContains(t, string(data), "operator")
}

func TestCondition_MarshalNullValue(t *testing.T) {
	data, err := json.Marshal(Condition{Field: "parent", Value: nil})
	require.NoError(t, err)

	assert.Equal(t, `{"field":"parent","value":null}`, string(data))
}

func TestConjunction_MarshalNullField(t *testing.T) {
	conj := Conjunction{
		Operator: OpOr,
		Groups: [][]Clause{
			{Condition{Field: "a", Value: 1}},
			{Condition{Field: "b", Value: 2}},
		},
	}

	data, err := json.Marshal(conj)
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"field":null,"operator":"or","value":[[{"field":"a","value":1}],[{"field":"b","value":2}]]}`,
		string(data))
}

func TestConjunction_MarshalNested(t *testing.T) {
	conj := Conjunction{
		Operator: OpOr,
		Groups: [][]Clause{
			{Conjunction{
				Operator: OpAnd,
				Groups:   [][]Clause{{Condition{Field: "a", Value: 1}}},
			}},
		},
	}

	data, err := json.Marshal(conj)
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"field":null,"operator":"or","value":[[{"field":null,"operator":"and","value":[[{"field":"a","value":1}]]}]]}`,
		string(data))
}

func TestClause_MarshalThroughInterface(t *testing.T) {
	// Clause values marshal correctly from inside a []Clause
	where := []Clause{
		Condition{Field: "title", Operator: OpContains, Value: "dune"},
		Conjunction{Operator: OpAnd, Groups: [][]Clause{}},
	}

	data, err := json.Marshal(where)
	require.NoError(t, err)

	assert.JSONEq(t,
		`[{"field":"title","operator":"contains","value":"dune"},{"field":null,"operator":"and","value":[]}]`,
		string(data))
}
