package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortLines(t *testing.T) {
	lines := []Line{
		{Name: "salt", MeasurementUnit: "g", Total: 1},
		{Name: "sugar", MeasurementUnit: "tbsp", Total: 5},
		{Name: "flour", MeasurementUnit: "g", Total: 5},
		{Name: "sugar", MeasurementUnit: "g", Total: 5},
		{Name: "eggs", MeasurementUnit: "pcs", Total: 12},
	}
	SortLines(lines)

	assert.Equal(t, []Line{
		{Name: "eggs", MeasurementUnit: "pcs", Total: 12},
		{Name: "flour", MeasurementUnit: "g", Total: 5},
		{Name: "sugar", MeasurementUnit: "g", Total: 5},
		{Name: "sugar", MeasurementUnit: "tbsp", Total: 5},
		{Name: "salt", MeasurementUnit: "g", Total: 1},
	}, lines)
}

func TestRender(t *testing.T) {
	assert.Empty(t, Render(nil))
	assert.Equal(t, "мука (г) — 500", string(Render([]Line{{Name: "мука", MeasurementUnit: "г", Total: 500}})))
	assert.Equal(t, "a (g) — 2\nb (ml) — 1", string(Render([]Line{
		{Name: "a", MeasurementUnit: "g", Total: 2},
		{Name: "b", MeasurementUnit: "ml", Total: 1},
	})))
}
