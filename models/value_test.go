package models

import (
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("scalars", func(t *testing.T) {
		v, err := Parse([]byte(`null`))
		require.NoError(t, err)
		assert.True(t, v.IsNull())

		v, err = Parse([]byte(`true`))
		require.NoError(t, err)
		assert.Equal(t, KindBool, v.Kind())
		assert.Equal(t, true, v.Interface())

		v, err = Parse([]byte(`"llama"`))
		require.NoError(t, err)
		assert.Equal(t, "llama", v.Interface())

		v, err = Parse([]byte(`42`))
		require.NoError(t, err)
		assert.Equal(t, int64(42), v.Interface())

		v, err = Parse([]byte(`1.5e3`))
		require.NoError(t, err)
		assert.Equal(t, 1500.0, v.Interface())
		assert.Equal(t, NumberLiteral("1.5e3"), v)

		v, err = Parse([]byte(" 42 \n"))
		require.NoError(t, err)
		assert.Equal(t, NumberLiteral("42"), v)
	})

	t.Run("object keys keep document order", func(t *testing.T) {
		v, err := Parse([]byte(`{"zeta":1,"alpha":2,"ethereum:0xdAC17F958D2ee523a2206206994597C13D831ec7":3}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"zeta", "alpha", "ethereum:0xdAC17F958D2ee523a2206206994597C13D831ec7"}, v.Keys())

		f, ok := v.Field("alpha")
		require.True(t, ok)
		assert.Equal(t, int64(2), f.Interface())

		_, ok = v.Field("missing")
		assert.False(t, ok)
	})

	t.Run("nested", func(t *testing.T) {
		v, err := Parse([]byte(`{"a":[1,{"b":null}],"c":"d"}`))
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"a": []any{int64(1), map[string]any{"b": nil}},
			"c": "d",
		}, v.Interface())
	})

	t.Run("rejects malformed documents", func(t *testing.T) {
		for _, doc := range []string{``, `{`, `[1,`, `{"a":}`, `tru`, `<html>`, `[1] junk`, `[1]]`, `42abc`, `{} {}`, `"a""b"`} {
			_, err := Parse([]byte(doc))
			assert.Error(t, err, "document %q", doc)
		}
	})
}

func TestChartPointKeepsIntegerTyping(t *testing.T) {
	v, err := Parse([]byte(`[[1700000000, 12], [1700086400, 12.5]]`))
	require.NoError(t, err)

	points, err := listOf(decodeChartPoint)(v, RootPath)
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.True(t, points[0][0].IsInt())
	assert.True(t, points[0].Value().IsInt())
	assert.Equal(t, int64(12), points[0].Value().Int64())

	assert.Equal(t, int64(1700086400), points[1].Timestamp())
	assert.False(t, points[1].Value().IsInt())
	assert.Equal(t, 12.5, points[1].Value().Float64())

	out, err := jsonAPI.Marshal(points)
	require.NoError(t, err)
	assert.JSONEq(t, `[[1700000000,12],[1700086400,12.5]]`, string(out))
}

func TestParseProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("integer arrays keep their length and values", prop.ForAll(
		func(xs []int64) bool {
			parts := make([]string, len(xs))
			for i, x := range xs {
				parts[i] = strconv.FormatInt(x, 10)
			}
			v, err := Parse([]byte("[" + strings.Join(parts, ",") + "]"))
			if err != nil || v.Kind() != KindArray || len(v.Items()) != len(xs) {
				return false
			}
			for i, item := range v.Items() {
				if item.Interface() != xs[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Int64()),
	))

	properties.Property("strings round trip through the parser", prop.ForAll(
		func(s string) bool {
			doc, err := jsonAPI.Marshal(s)
			if err != nil {
				return false
			}
			v, err := Parse(doc)
			return err == nil && v.Interface() == s
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
