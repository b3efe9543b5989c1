package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLimbComponentMidY(t *testing.T) {
	c := LimbComponent{X: 10, Y: 20, Width: 8, Height: 7}
	require.Equal(t, 23, c.MidY())
}
