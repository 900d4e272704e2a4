package xmd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var variantCmpOpts = cmp.Comparer(func(a, b Variant) bool { return a.Equal(b) })

func TestVariantEqualAndCopy(t *testing.T) {
	original := Map(map[string]Variant{
		"top": List(String("a"), String("b")),
		"nested": Map(map[string]Variant{
			"flag": String("true"),
		}),
	})

	cp := original.Copy()
	require.True(t, original.Equal(cp))

	nestedMap, ok := cp.MapValue()
	require.True(t, ok)
	inner, ok := nestedMap["nested"].MapValue()
	require.True(t, ok)
	inner["flag"] = String("false")

	// Mutating the copy's nested map must not affect the original.
	originalMap, _ := original.MapValue()
	originalInner, _ := originalMap["nested"].MapValue()
	require.Equal(t, "true", originalInner["flag"].str)
}

func TestVariantScalarsStayStrings(t *testing.T) {
	v := String("42")
	s, ok := v.StringValue()
	require.True(t, ok)
	require.Equal(t, "42", s)
}

func TestVariantSortedKeysDeterministic(t *testing.T) {
	v := Map(map[string]Variant{"b": String("2"), "a": String("1"), "c": String("3")})
	require.Equal(t, []string{"a", "b", "c"}, v.SortedKeys())
}

func TestVariantNotEqualDifferentKind(t *testing.T) {
	require.False(t, String("x").Equal(List(String("x"))))
}

func TestVariantCopyIsStructurallyIdenticalViaCmp(t *testing.T) {
	original := Map(map[string]Variant{
		"rpms": List(String("foo"), String("bar")),
		"config": Map(map[string]Variant{
			"debug": String("false"),
		}),
	})
	cp := original.Copy()

	if diff := cmp.Diff(original, cp, variantCmpOpts); diff != "" {
		t.Errorf("copy diverged from original (-want +got):\n%s", diff)
	}
}
