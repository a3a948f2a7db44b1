package relation

import (
	"errors"
	"testing"
	"time"

	"gotest.tools/v3/assert"
	"pgregory.net/rapid"

	"reltest/violation"
)

func eqInt(a, b int) bool  { return a == b }
func leInt(a, b int) bool  { return a <= b }
func ltInt(a, b int) bool  { return a < b }
func gtInt(a, b int) bool  { return a > b }
func neInt(a, b int) bool  { return a != b }
func anyInt(a, b int) bool { return true }

func TestPrimitivesHoldForIntegers(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int().Draw(t, "a")
		b := rapid.Int().Draw(t, "b")
		c := rapid.Int().Draw(t, "c")

		assert.NilError(t, Reflexive("==", eqInt, a))
		assert.NilError(t, Reflexive("<=", leInt, a))
		assert.NilError(t, Irreflexive("<", ltInt, a))
		assert.NilError(t, Symmetric("==", eqInt, eqInt, a, b))
		assert.NilError(t, Antisymmetric("<=", leInt, leInt, eqInt, a, b))
		assert.NilError(t, Transitive("<=", leInt, leInt, leInt, a, b, c))
		assert.NilError(t, Transitive("<", ltInt, ltInt, ltInt, a, b, c))
		assert.NilError(t, Dual(ltInt, gtInt, a, b))
	})
}

func TestPrimitiveViolations(t *testing.T) {
	for i, test := range primitiveViolationTest {
		err := test.check()
		if !errors.Is(err, test.expected) {
			t.Errorf("Received unexpected result in test %v. Got %v. Expected a %v", i, err, test.expected)
		}
	}
}

// Relations between different operand types
func TestHeterogeneousOperands(t *testing.T) {
	type stamp struct{ unix int64 }
	when := time.Unix(1700000000, 0)
	tEq := func(a time.Time, b stamp) bool { return a.Unix() == b.unix }
	sEq := func(b stamp, a time.Time) bool { return b.unix == a.Unix() }

	assert.NilError(t, Symmetric("==", tEq, sEq, when, stamp{1700000000}))
	assert.NilError(t, Symmetric("==", tEq, sEq, when, stamp{1}))

	broken := func(b stamp, a time.Time) bool { return true }
	assert.ErrorIs(t, Symmetric("==", tEq, broken, when, stamp{1}), violation.SymmetryViolation)
}

func TestViolationNamesOperands(t *testing.T) {
	err := Transitive("==", anyInt, anyInt, neInt, 1, 2, 3)
	v, ok := violation.As(err)
	assert.Assert(t, ok)
	assert.DeepEqual(t, v.Operands, []violation.Operand{{Name: "a", Value: 1}, {Name: "b", Value: 2}, {Name: "c", Value: 3}})
	assert.ErrorContains(t, err, "a == b and b == c but not a == c")
}

var primitiveViolationTest = []struct {
	check    func() error
	expected violation.Kind
}{
	{func() error { return Reflexive("<", ltInt, 1) }, violation.ReflexivityViolation},
	{func() error { return Irreflexive("<=", leInt, 1) }, violation.ReflexivityViolation},
	{func() error { return Symmetric("<", ltInt, ltInt, 1, 2) }, violation.SymmetryViolation},
	{func() error { return Antisymmetric("~", anyInt, anyInt, eqInt, 1, 2) }, violation.AntisymmetryViolation},
	{func() error { return Transitive("!=", neInt, neInt, neInt, 1, 2, 1) }, violation.TransitivityViolation},
	{func() error { return Dual(ltInt, ltInt, 1, 2) }, violation.MethodInconsistency},
}
