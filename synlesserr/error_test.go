package synlesserr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	e := New(KindEdit, errors.New("sort mismatch"))
	require.Equal(t, "edit: sort mismatch", e.Error())

	e2 := AtRow(KindLanguage, 4, errors.New("duplicate construct"))
	require.Equal(t, "language:4: duplicate construct", e2.Error())
}

func TestIs(t *testing.T) {
	e := New(KindBookmark, errors.New("dangling"))
	require.True(t, Is(e, KindBookmark))
	require.False(t, Is(e, KindEdit))
	require.False(t, Is(errors.New("plain"), KindEdit))
}

func TestAggregateNilWhenEmpty(t *testing.T) {
	require.Nil(t, Aggregate(KindLanguage))
}

func TestAggregateCombinesErrors(t *testing.T) {
	err := Aggregate(KindLanguage, errors.New("a"), errors.New("b"))
	require.Error(t, err)
	require.True(t, Is(err, KindLanguage))
	require.Contains(t, err.Error(), "a")
	require.Contains(t, err.Error(), "b")
}

func TestBugPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		e, ok := r.(*Error)
		require.True(t, ok)
		require.Equal(t, KindBug, e.Kind)
	}()
	Bug("invariant violated: %v", "child/parent mismatch")
}
