package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPlans(t *testing.T) {
	plans := DefaultPlans()
	if assert.Len(t, plans, 4) {
		assert.True(t, plans[0].IsFree())
		for _, p := range plans[1:] {
			assert.False(t, p.IsFree(), p.ID)
			assert.Positive(t, p.Credits, p.ID)
		}
	}
}

func TestDefaultPackagesHaveOneBestValue(t *testing.T) {
	best := 0
	for _, p := range DefaultPackages() {
		assert.Positive(t, p.TotalCredits(), p.ID)
		if p.BestValue {
			best++
			assert.Equal(t, "pkg4", p.ID)
		}
	}
	assert.Equal(t, 1, best)
}

func TestInitDBPanicsWithoutURL(t *testing.T) {
	assert.Panics(t, func() { InitDB("") })
}
