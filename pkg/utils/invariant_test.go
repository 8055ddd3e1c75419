package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRaiseInvariant(t *testing.T) {
	invariantsMetric.Reset() // Reset the metric to ensure a clean state for the test.
	RaiseInvariant("list", "test", "This is a test invariant violation")
	gotInvariants := GetMetricValue("list" /*module*/, "test" /*invariantType*/)
	assert.Equal(t, 1, gotInvariants)
}

func TestGetMetricValue_Unset(t *testing.T) {
	invariantsMetric.Reset()
	assert.Equal(t, 0, GetMetricValue("list", "never_raised"))
}
