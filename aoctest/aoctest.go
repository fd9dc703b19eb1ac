// Package aoctest runs the samples embedded in solver doc comments as tests.
package aoctest

import (
	"fmt"
	"testing"

	"github.com/adventsolutions/aoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Samples runs every part of y that carries a sample as a subtest named
// dayNN/partP.
func Samples(t *testing.T, y aoc.Year) {
	t.Helper()
	results, err := aoc.CheckSamples(y)
	require.NoError(t, err)
	require.NotEmpty(t, results, "%d has no samples", y.Year)
	for _, r := range results {
		t.Run(fmt.Sprintf("day%02d/part%s", r.Day, r.Part), func(t *testing.T) {
			require.NoError(t, r.Err)
			assert.Equal(t, r.Want, fmt.Sprint(r.Got))
		})
	}
}
