package collections_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alkime/postcraft/pkg/collections"
)

func TestApply(t *testing.T) {
	ints := []int{1, 2, 3, 4}
	squared := collections.Apply(ints, func(i int) int {
		return i * i
	})
	require.Equal(t, []int{1, 4, 9, 16}, squared)

	strs := []string{"a", "bb", "ccc"}
	lengths := collections.Apply(strs, func(s string) int {
		return len(s)
	})
	require.Equal(t, []int{1, 2, 3}, lengths)
}

func TestApplyEmpty(t *testing.T) {
	require.Empty(t, collections.Apply([]string{}, func(s string) string { return s }))
}
