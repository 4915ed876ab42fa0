// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package morph_test

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/morph"
)

func TestOptionBasics(t *testing.T) {
	t.Run("some holds the value", func(t *testing.T) {
		o := morph.Some(42)
		assert.True(t, o.IsSome())
		assert.False(t, o.IsNone())
		v, ok := o.Get()
		require.True(t, ok)
		assert.Equal(t, 42, v)
		assert.Equal(t, 42, o.GetOr(-1))
	})
	t.Run("none is empty", func(t *testing.T) {
		o := morph.None[int]()
		assert.False(t, o.IsSome())
		assert.True(t, o.IsNone())
		v, ok := o.Get()
		assert.False(t, ok)
		assert.Zero(t, v)
		assert.Equal(t, -1, o.GetOr(-1))
	})
}

func TestOptionMap(t *testing.T) {
	assert.Equal(t, morph.Some("42"), morph.MapOption(morph.Some(42), strconv.Itoa))
	assert.True(t, morph.MapOption(morph.None[int](), strconv.Itoa).IsNone())
}

func TestOptionFlatMap(t *testing.T) {
	half := func(x int) morph.Option[int] {
		if x%2 == 0 {
			return morph.Some(x / 2)
		}
		return morph.None[int]()
	}
	assert.Equal(t, morph.Some(21), morph.FlatMapOption(morph.Some(42), half))
	assert.True(t, morph.FlatMapOption(morph.Some(41), half).IsNone())
	assert.True(t, morph.FlatMapOption(morph.None[int](), half).IsNone())
}

func TestOptionMatch(t *testing.T) {
	describe := func(o morph.Option[int]) string {
		return morph.MatchOption(o,
			func(v int) string { return "some " + strconv.Itoa(v) },
			func() string { return "none" },
		)
	}
	assert.Equal(t, "some 7", describe(morph.Some(7)))
	assert.Equal(t, "none", describe(morph.None[int]()))
}

func TestOptionFmapCanonicalizes(t *testing.T) {
	double := func(v morph.Erased) morph.Erased { return v.(int) * 2 }

	f := morph.Some(21).Fmap(double)
	o := morph.UnliftOption[int](f)
	assert.Equal(t, morph.Some(42), o)

	assert.True(t, morph.UnliftOption[int](morph.None[int]().Fmap(double)).IsNone())
}

func TestOptionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("map on some preserves structure", prop.ForAll(
		func(n int) bool {
			fn := func(x int) int { return x * 2 }
			mapped := morph.MapOption(morph.Some(n), fn)
			return mapped.IsSome() && mapped.GetOr(0) == fn(n)
		},
		gen.Int(),
	))

	properties.Property("map on none returns none", prop.ForAll(
		func(n int) bool {
			fn := func(x int) int { return x + n }
			return morph.MapOption(morph.None[int](), fn).IsNone()
		},
		gen.Int(),
	))

	properties.Property("get or falls back only when empty", prop.ForAll(
		func(n, fallback int) bool {
			return morph.Some(n).GetOr(fallback) == n &&
				morph.None[int]().GetOr(fallback) == fallback
		},
		gen.Int(), gen.Int(),
	))

	properties.TestingRun(t)
}
