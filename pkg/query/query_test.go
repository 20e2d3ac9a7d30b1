// Copyright (c) 2026 Turath. All rights reserved.
// Author: dev@turath-dz.org

package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSlice(t *testing.T) {
	assert.Equal(t, []string{"publie", "rejete"}, StringSlice("publie,rejete"))
	assert.Equal(t, []string{"publie", "rejete"}, StringSlice(" publie , rejete "))
	assert.Equal(t, []string{"publie"}, StringSlice("publie,,"))
	assert.Nil(t, StringSlice(""))
}

func TestFloatAndIntReportPresence(t *testing.T) {
	value, ok := Float("36.7538")
	assert.True(t, ok)
	assert.InDelta(t, 36.7538, value, 1e-9)

	_, ok = Float("")
	assert.False(t, ok)
	_, ok = Float("nord")
	assert.False(t, ok)

	year, ok := Int("1962")
	assert.True(t, ok)
	assert.Equal(t, 1962, year)

	_, ok = Int("")
	assert.False(t, ok)
}
