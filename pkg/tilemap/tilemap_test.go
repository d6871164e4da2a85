package tilemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtOutOfBoundsIsSteel(t *testing.T) {
	g := NewGrid(16, 16, 8)
	assert.Equal(t, Grass, g.At(3, 3))
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {Size, 0}, {0, Size}, {100, 100}} {
		assert.Equal(t, Steel, g.At(c[0], c[1]), "cell %v", c)
	}
	g.Set(-1, -1, Water) // не паникует
}

func TestPixelToTile(t *testing.T) {
	g := NewGrid(16, 16, 8)
	tx, ty := g.PixelToTile(16, 8)
	assert.Equal(t, 0, tx)
	assert.Equal(t, 0, ty)

	tx, ty = g.PixelToTile(15, 7)
	assert.Equal(t, -1, tx)
	assert.Equal(t, -1, ty)
	assert.Equal(t, Steel, g.AtPixel(15, 7))

	px, py := g.TileToPixel(6, 11)
	assert.Equal(t, 112, px)
	assert.Equal(t, 184, py)
}

func TestDestroyAt(t *testing.T) {
	g := NewGrid(16, 0, 0)
	g.Set(2, 2, Brick)
	g.Set(3, 3, Steel)
	g.Set(4, 4, BaseBrick)

	prev, ok := g.DestroyAt(2, 2)
	assert.True(t, ok)
	assert.Equal(t, Brick, prev)
	assert.Equal(t, Grass, g.At(2, 2))

	_, ok = g.DestroyAt(3, 3)
	assert.False(t, ok)
	assert.Equal(t, Steel, g.At(3, 3))

	_, ok = g.DestroyAt(4, 4)
	assert.True(t, ok)

	_, ok = g.DestroyAt(-1, 0)
	assert.False(t, ok)
}

func TestTerrainPredicates(t *testing.T) {
	assert.True(t, Water.BlocksTank())
	assert.False(t, Water.BlocksBullet())
	assert.True(t, Steel.BlocksBullet())
	assert.False(t, Grass.BlocksTank())
	assert.True(t, BaseBrick.Destructible())
	assert.False(t, Steel.Destructible())
}

func TestLayoutsApply(t *testing.T) {
	for i, rows := range Layouts {
		g := NewGrid(16, 0, 0)
		g.SetBorder(Steel)
		require.NoError(t, g.ApplyLayout(rows), "layout %d", i)
		for k := 0; k < Size; k++ {
			assert.Equal(t, Steel, g.At(k, 0))
			assert.Equal(t, Steel, g.At(0, k))
			assert.Equal(t, Steel, g.At(k, Size-1))
			assert.Equal(t, Steel, g.At(Size-1, k))
		}
	}
}

func TestApplyLayoutRejectsBadInput(t *testing.T) {
	g := NewGrid(16, 0, 0)
	assert.Error(t, g.ApplyLayout([]string{"..."}))

	rows := make([]string, Size-2)
	for i := range rows {
		rows[i] = "..........."
	}
	rows[3] = "....x......"
	assert.Error(t, g.ApplyLayout(rows))
}

func TestLayoutForLevel(t *testing.T) {
	assert.Equal(t, 0, LayoutForLevel(1))
	assert.Equal(t, 1, LayoutForLevel(2))
	assert.Equal(t, 0, LayoutForLevel(len(Layouts)+1))
	assert.Equal(t, 0, LayoutForLevel(0))
}
