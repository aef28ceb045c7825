package anticlust

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMergeCategories_ObservedCombinations verifies that only combinations
// present in the data get ids, assigned in first-appearance order.
func TestMergeCategories_ObservedCombinations(t *testing.T) {
	merged, count, err := MergeCategories([][]int{
		{0, 0, 1, 1},
		{0, 1, 0, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	assert.Equal(t, []int{0, 1, 2, 3}, merged)

	// Only two of the four theoretical combinations occur here.
	merged, count, err = MergeCategories([][]int{
		{0, 0, 1},
		{2, 2, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []int{0, 0, 1}, merged)
}

// TestMergeCategories_SingleVectorIsIdentityShape checks relabeling of a
// lone vector (values become dense first-appearance ids).
func TestMergeCategories_SingleVectorIsIdentityShape(t *testing.T) {
	merged, count, err := MergeCategories([][]int{{7, 7, -2, 7, -2}})
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, []int{0, 0, 1, 0, 1}, merged)
}

// TestMergeCategories_LengthMismatch covers the sentinel.
func TestMergeCategories_LengthMismatch(t *testing.T) {
	_, _, err := MergeCategories([][]int{{0, 1}, {0}})
	assert.ErrorIs(t, err, ErrCategoriesLength)

	_, _, err = MergeCategories(nil)
	assert.ErrorIs(t, err, ErrCategoriesLength)
}

// TestGroupSizesFor pins the remainder policy: the first N mod K groups get
// one extra element.
func TestGroupSizesFor(t *testing.T) {
	assert.Equal(t, []int{4, 3, 3}, groupSizesFor(10, 3))
	assert.Equal(t, []int{3, 3, 3}, groupSizesFor(9, 3))
	assert.Equal(t, []int{2, 2, 1, 1, 1}, groupSizesFor(7, 5))
}

// TestClassCaps verifies the graceful-degradation cap ⌈|class|/K⌉.
func TestClassCaps(t *testing.T) {
	// Classes of sizes 3, 2, 5 with K=3: caps 1, 1, 2.
	classes := []int{0, 0, 0, 1, 1, 2, 2, 2, 2, 2}
	assert.Equal(t, []int{1, 1, 2}, classCaps(classes, 3, 3))
}

// TestRandomInit_HonorsSizes checks that random assignments carry exactly
// the requested group sizes.
func TestRandomInit_HonorsSizes(t *testing.T) {
	sizes := []int{4, 3, 3}
	assign := randomInit(sizes, rngFromSeed(42))
	require.Len(t, assign, 10)

	got := make([]int, 3)
	for _, g := range assign {
		require.GreaterOrEqual(t, g, 0)
		require.Less(t, g, 3)
		got[g]++
	}
	assert.Equal(t, sizes, got)
}

// TestConstrainedInit_BalancesClasses verifies the hard property at init:
// with class sizes ≤ K, each group holds at most one member per class while
// the group sizes stay exact.
func TestConstrainedInit_BalancesClasses(t *testing.T) {
	// 12 elements, 4 classes of size 3, K=4 (groups of 3).
	classes := []int{0, 1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3}
	sizes := groupSizesFor(12, 4)

	assign := constrainedInit(classes, 4, sizes, rngFromSeed(9))
	require.Len(t, assign, 12)

	var (
		got   = make([]int, 4)
		count = make(map[[2]int]int)
		i     int
	)
	for i = 0; i < 12; i++ {
		got[assign[i]]++
		count[[2]int{assign[i], classes[i]}]++
	}
	assert.Equal(t, sizes, got, "group sizes must be exact")
	for key, c := range count {
		assert.LessOrEqual(t, c, 1, "group %d holds %d members of class %d", key[0], c, key[1])
	}
}

// TestConstrainedInit_DegradesGracefully: a class larger than K spreads as
// evenly as possible (≤ ⌈|class|/K⌉ per group) instead of failing.
func TestConstrainedInit_DegradesGracefully(t *testing.T) {
	// One class of 5 members over K=2 groups: cap would be 3.
	classes := []int{0, 0, 0, 0, 0, 1, 1, 1}
	sizes := groupSizesFor(8, 2)

	assign := constrainedInit(classes, 2, sizes, rngFromSeed(4))

	var (
		class0 = make([]int, 2)
		i      int
	)
	for i = 0; i < 5; i++ {
		class0[assign[i]]++
	}
	assert.LessOrEqual(t, class0[0], 3)
	assert.LessOrEqual(t, class0[1], 3)
	assert.Equal(t, 5, class0[0]+class0[1])
}

// TestConstraintState_Eligibility pins the partner filter: same-class
// partners are never eligible, and a swap may not push a class past its cap
// in the destination group.
func TestConstraintState_Eligibility(t *testing.T) {
	// Elements 0..3; classes a,a,b,b; groups {0,2} vs {1,3}.
	classes := []int{0, 0, 1, 1}
	assign := []int{0, 1, 0, 1}
	s := newConstraintState(classes, 2, 2, assign)

	// Same class: never eligible.
	assert.False(t, s.eligible(0, 1, 0, 1))
	// Different classes, both destination groups have a free cap slot?
	// Group 1 already holds class-0 member 1, cap is 1 ⇒ moving 0 there is barred.
	assert.False(t, s.eligible(0, 3, 0, 1))

	// After 1 and 2 trade places ({0,1} vs {2,3}) the same swap frees up.
	s.commitSwap(1, 2, 1, 0)
	assign[1], assign[2] = 0, 1
	assert.True(t, s.eligible(0, 3, 0, 1))
}
