package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.57, Round2(10.567))
	assert.Equal(t, 10.56, Round2(10.564))
	assert.Equal(t, -2.5, Round2(-2.5))
	assert.Equal(t, 0.0, Round2(0))
}

func TestNormalizeDTO(t *testing.T) {
	type dto struct {
		Name  string
		Price float64
		Count int
	}
	d := dto{Name: "  りんご ", Price: 80.006, Count: 3}
	NormalizeDTO(&d)
	assert.Equal(t, "りんご", d.Name)
	assert.Equal(t, 80.01, d.Price)
	assert.Equal(t, 3, d.Count)

	// non-pointer input is a no-op, not a panic
	NormalizeDTO(dto{Name: " x "})
}

func TestNormalizePtrDTO(t *testing.T) {
	type patch struct {
		Name  *string
		Price *float64
	}
	name := " みかん  "
	p := patch{Name: &name}
	NormalizePtrDTO(&p)
	assert.Equal(t, "みかん", *p.Name)
	assert.Nil(t, p.Price)
}
