// pkg/tilemap/tilemap.go
package tilemap

// TerrainType тип клетки поля
type TerrainType uint8

const (
	Grass TerrainType = iota
	Brick
	Steel
	Water
	BaseBrick
)

func (t TerrainType) String() string {
	switch t {
	case Grass:
		return "grass"
	case Brick:
		return "brick"
	case Steel:
		return "steel"
	case Water:
		return "water"
	case BaseBrick:
		return "base-brick"
	}
	return "unknown"
}

// BlocksTank true, если клетка непроходима для танка
func (t TerrainType) BlocksTank() bool {
	return t != Grass
}

// BlocksBullet true, если клетка останавливает снаряд
func (t TerrainType) BlocksBullet() bool {
	return t == Brick || t == Steel || t == BaseBrick
}

// Destructible true для клеток, которые снаряд превращает в траву
func (t TerrainType) Destructible() bool {
	return t == Brick || t == BaseBrick
}

// Size сторона квадратной сетки в клетках
const Size = 13

// Grid сетка 13×13 с началом координат (OriginX, OriginY) в пикселях
type Grid struct {
	cells    [Size][Size]TerrainType
	TileSize int
	OriginX  int
	OriginY  int
}

// NewGrid создаёт сетку, заполненную травой
func NewGrid(tileSize, originX, originY int) *Grid {
	return &Grid{TileSize: tileSize, OriginX: originX, OriginY: originY}
}

// InBounds проверяет координаты клетки
func InBounds(tx, ty int) bool {
	return tx >= 0 && tx < Size && ty >= 0 && ty < Size
}

// At возвращает тип клетки; вне сетки всегда сталь
func (g *Grid) At(tx, ty int) TerrainType {
	if !InBounds(tx, ty) {
		return Steel
	}
	return g.cells[ty][tx]
}

// Set записывает клетку; координаты вне сетки игнорируются
func (g *Grid) Set(tx, ty int, t TerrainType) {
	if !InBounds(tx, ty) {
		return
	}
	g.cells[ty][tx] = t
}

// Fill заполняет всю сетку одним типом
func (g *Grid) Fill(t TerrainType) {
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			g.cells[y][x] = t
		}
	}
}

// SetBorder делает периметр стальным
func (g *Grid) SetBorder(t TerrainType) {
	for i := 0; i < Size; i++ {
		g.cells[0][i] = t
		g.cells[Size-1][i] = t
		g.cells[i][0] = t
		g.cells[i][Size-1] = t
	}
}

// PixelToTile переводит пиксель холста в координаты клетки
func (g *Grid) PixelToTile(px, py int) (int, int) {
	return floorDiv(px-g.OriginX, g.TileSize), floorDiv(py-g.OriginY, g.TileSize)
}

// TileToPixel левый верхний угол клетки в пикселях холста
func (g *Grid) TileToPixel(tx, ty int) (int, int) {
	return g.OriginX + tx*g.TileSize, g.OriginY + ty*g.TileSize
}

// AtPixel тип клетки под пикселем
func (g *Grid) AtPixel(px, py int) TerrainType {
	tx, ty := g.PixelToTile(px, py)
	return g.At(tx, ty)
}

// DestroyAt превращает разрушаемую клетку в траву. Возвращает прежний тип
// и признак разрушения.
func (g *Grid) DestroyAt(tx, ty int) (TerrainType, bool) {
	prev := g.At(tx, ty)
	if !InBounds(tx, ty) || !prev.Destructible() {
		return prev, false
	}
	g.cells[ty][tx] = Grass
	return prev, true
}

// Count количество клеток заданного типа
func (g *Grid) Count(t TerrainType) int {
	n := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g.cells[y][x] == t {
				n++
			}
		}
	}
	return n
}

// floorDiv деление с округлением вниз (для отрицательных пикселей)
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
