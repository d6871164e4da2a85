package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2PixelConversion(t *testing.T) {
	v := FromPixels(120, 200)
	assert.Equal(t, int32(120*256), v.X)
	assert.Equal(t, 120, v.PixelX())
	assert.Equal(t, 200, v.PixelY())

	// дробная часть отбрасывается, отрицательные значения сдвигаются арифметически
	assert.Equal(t, 1, Vector2{X: 511}.PixelX())
	assert.Equal(t, -1, Vector2{X: -1}.PixelX())
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 8, H: 8}
	assert.True(t, a.Intersects(Rect{X: 7, Y: 7, W: 8, H: 8}))
	assert.False(t, a.Intersects(Rect{X: 8, Y: 0, W: 8, H: 8}), "касание краями не пересечение")
	assert.True(t, a.Contains(0, 0))
	assert.False(t, a.Contains(8, 0))
	assert.True(t, Rect{X: 0, Y: 0, W: 16, H: 16}.ContainsRect(Rect{X: 8, Y: 8, W: 8, H: 8}))
}

func TestDirectionVelocity(t *testing.T) {
	assert.Equal(t, Vector2{Y: -256}, DirUp.Velocity(256))
	assert.Equal(t, Vector2{X: 384}, DirRight.Velocity(384))
	assert.Equal(t, Vector2{}, DirNone.Velocity(256))
	for _, d := range Cardinals {
		assert.Equal(t, d, d.Opposite().Opposite())
	}
}

func TestOwner(t *testing.T) {
	assert.True(t, OwnerPlayer2.IsPlayer())
	assert.False(t, OwnerEnemy.IsPlayer())
	assert.Equal(t, 1, OwnerPlayer2.PlayerIndex())
	assert.Equal(t, -1, OwnerEnemy.PlayerIndex())
	assert.Equal(t, OwnerPlayer2, OwnerForPlayer(1))
}
