// Copyright ETOS group, Aalto University, 2026. MIT license.

package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestHazardLists_Defaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	lists := hazardLists()

	cmr, other := lists.Partition([]string{"H372", "H300"})
	assert.Equal(t, []string{"H372"}, cmr)
	assert.Equal(t, []string{"H300"}, other)
}

func TestHazardLists_ConfigOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("hazard.cmr", []string{"H999"})

	lists := hazardLists()

	cmr, other := lists.Partition([]string{"H999", "H372"})
	assert.Equal(t, []string{"H999"}, cmr)
	assert.Equal(t, []string{"H372"}, other)

	// The red-flag list keeps its default when only the CMR list is set.
	assert.True(t, lists.ParticularlyHazardous([]string{"H372"}))
}
