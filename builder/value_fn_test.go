// Package builder_test contains unit tests for the ValueFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/matlab/builder"
)

// assertPanics fails the test if fn does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

// TestValueFnConstructors verifies that ValueFn constructors panic
// on invalid parameters according to their documented contracts.
func TestValueFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.ValueFn
	}{
		{"ConstantValueFn_zero", func() builder.ValueFn { return builder.ConstantValueFn(0) }},
		{"ConstantValueFn_NaN", func() builder.ValueFn { return builder.ConstantValueFn(math.NaN()) }},
		{"UniformValueFn_maxLessThanMin", func() builder.ValueFn { return builder.UniformValueFn(5, 4) }},
		{"UniformValueFn_infinite", func() builder.ValueFn { return builder.UniformValueFn(0, math.Inf(1)) }},
		{"NormalValueFn_stddevNegative", func() builder.ValueFn { return builder.NormalValueFn(0, -0.1) }},
		{"IntegerValueFn_zero", func() builder.ValueFn { return builder.IntegerValueFn(0) }},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assertPanics(t, func() {
				tc.constructor()
			}, tc.name)
		})
	}
}

// TestValueFnBehavior covers the runtime behavior of each ValueFn:
//   - DefaultValueFn always returns DefaultValue.
//   - ConstantValueFn returns the fixed value.
//   - UniformValueFn returns DefaultValue on nil RNG, and values in [min,max).
//   - NormalValueFn and IntegerValueFn return DefaultValue on nil RNG.
func TestValueFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultValue, builder.DefaultValueFn(nil))
	assert.Equal(t, builder.DefaultValue, builder.DefaultValueFn(rng))
	assert.Equal(t, -2.5, builder.ConstantValueFn(-2.5)(rng))

	uniform := builder.UniformValueFn(-3, 7)
	assert.Equal(t, builder.DefaultValue, uniform(nil))
	for i := 0; i < 100; i++ {
		v := uniform(rng)
		assert.GreaterOrEqual(t, v, -3.0)
		assert.Less(t, v, 7.0)
	}
	assert.Equal(t, 4.0, builder.UniformValueFn(4, 4)(rng))

	normal := builder.NormalValueFn(10, 0)
	assert.Equal(t, builder.DefaultValue, normal(nil))
	assert.Equal(t, 10.0, normal(rng))

	integer := builder.IntegerValueFn(3)
	assert.Equal(t, builder.DefaultValue, integer(nil))
	for i := 0; i < 50; i++ {
		v := integer(rng)
		assert.Equal(t, math.Trunc(v), v)
		assert.GreaterOrEqual(t, v, 1.0)
		assert.LessOrEqual(t, v, 3.0)
	}
}
