package linearmap

import (
	"hash/maphash"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMakeDefaultHashFunc(t *testing.T) {
	v := "foo"
	s := maphash.MakeSeed()

	h1 := MakeDefaultHashFunc[string](s)(v)
	h2 := maphash.Comparable(s, v)

	require.Equal(t, h2, h1)
}

func TestMakeDefaultHashFunc_Deterministic(t *testing.T) {
	f := MakeDefaultHashFunc[string](maphash.MakeSeed())

	require.Equal(t, f("foo"), f("foo"))
}

func TestMakeDefaultHashFunc_SeedIsolation(t *testing.T) {
	// Two tables built from different seeds should not share digests,
	// otherwise a bad key distribution in one propagates to the other.
	f1 := MakeDefaultHashFunc[string](maphash.MakeSeed())
	f2 := MakeDefaultHashFunc[string](maphash.MakeSeed())

	require.NotEqual(t, f1("foo"), f2("foo"))
}
