package equality

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"gotest.tools/v3/assert"
	"pgregory.net/rapid"

	"reltest/violation"
)

var zones = []*time.Location{time.UTC, time.FixedZone("CET", 3600), time.FixedZone("PST", -8*3600)}

func genTime() *rapid.Generator[time.Time] {
	return rapid.Custom(func(t *rapid.T) time.Time {
		sec := rapid.Int64Range(0, 4).Draw(t, "sec")
		zone := rapid.SampledFrom(zones).Draw(t, "zone")
		return time.Unix(sec, 0).In(zone)
	})
}

// time.Time compares instants, so values in different zones are equal without being identical
func TestTimeEqualIsTotal(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a, b, c := genTime().Draw(t, "a"), genTime().Draw(t, "b"), genTime().Draw(t, "c")
		assert.NilError(t, TotalCheck(a, b, c))
		assert.NilError(t, Check(a, b, c))
	})
}

func TestSameValueIsLawful(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.Int().Draw(t, "a")
		assert.NilError(t, TotalCheckComparable(a, a, a))
	})
}

func TestBuiltinEquality(t *testing.T) {
	properties := gopter.NewProperties(nil)
	properties.Property("float64 == is a partial equality", prop.ForAll(
		func(a, b, c float64) bool {
			return CheckComparable(a, b, c) == nil
		},
		gen.Float64(), gen.Float64(), gen.Float64(),
	))
	properties.Property("string == is a total equality", prop.ForAll(
		func(a, b, c string) bool {
			return TotalCheckComparable(a, b, c) == nil
		},
		gen.AlphaString(), gen.AlphaString(), gen.AlphaString(),
	))
	properties.TestingRun(t)
}

func TestNaN(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "reltest.equality")
	defer teardown()

	nan := math.NaN()
	for i, test := range nanTest {
		partial := CheckComparable(test.samples[0], test.samples[1], test.samples[2])
		if partial != nil {
			t.Errorf("Received unexpected violation from partial check in test %v. Got %v", i, partial)
		}
		total := TotalCheckComparable(test.samples[0], test.samples[1], test.samples[2])
		if violation.KindOf(total) != test.total {
			t.Errorf("Received unexpected result from total check in test %v. Got %v", i, total)
		}
	}
	assert.ErrorIs(t, TotalCheckComparable(1.0, 2.0, nan), violation.ReflexivityViolation)
}

func TestBrokenEquality(t *testing.T) {
	for i, test := range brokenEqualityTest {
		err := CheckFunc(test.a, test.b, test.c, test.eq)
		if violation.KindOf(err) != test.expected {
			t.Errorf("Received unexpected result in test %v. Got %v. Expected %v", i, err, test.expected)
		}
		if !errors.Is(TotalCheckFunc(test.a, test.b, test.c, test.eq), test.expected) {
			t.Errorf("Expected the total check to report the same violation in test %v", i)
		}
	}
}

// Unrelated samples are never checked for reflexivity under the partial contract
func TestPartialReflexivityIsConditional(t *testing.T) {
	never := func(a, b int) bool { return false }
	assert.NilError(t, CheckFunc(1, 2, 3, never))
	assert.ErrorIs(t, TotalCheckFunc(1, 2, 3, never), violation.ReflexivityViolation)
}

func TestCheckIsIdempotent(t *testing.T) {
	first := CheckFunc(1, 2, 3, closeTo)
	second := CheckFunc(1, 2, 3, closeTo)
	assert.Equal(t, first.Error(), second.Error())
}

func closeTo(a, b int) bool {
	d := a - b
	return d >= -1 && d <= 1
}

var nanTest = []struct {
	samples [3]float64
	total   violation.Kind
}{
	{[3]float64{math.NaN(), math.NaN(), math.NaN()}, violation.ReflexivityViolation},
	{[3]float64{1, math.NaN(), 1}, violation.ReflexivityViolation},
	{[3]float64{1, 2, 3}, violation.None},
	{[3]float64{math.Inf(1), math.Inf(1), 0}, violation.None},
}

var brokenEqualityTest = []struct {
	a, b, c  int
	eq       func(int, int) bool
	expected violation.Kind
}{
	// < is not reflexive, and 1 < 2 relates the first sample
	{1, 2, 3, func(a, b int) bool { return a < b }, violation.ReflexivityViolation},
	// <= is reflexive but not symmetric
	{1, 2, 3, func(a, b int) bool { return a <= b }, violation.SymmetryViolation},
	// closeness is reflexive and symmetric but not transitive
	{1, 2, 3, closeTo, violation.TransitivityViolation},
	{3, 1, 2, closeTo, violation.TransitivityViolation},
}
