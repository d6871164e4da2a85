// internal/types/types.go
package types

// SubPixelShift количество бит дробной части координат (1/256 пикселя)
const SubPixelShift = 8

// Vector2 позиция или скорость в фиксированной точке
type Vector2 struct {
	X, Y int32
}

// FromPixels строит вектор из пиксельных координат
func FromPixels(px, py int) Vector2 {
	return Vector2{X: int32(px) << SubPixelShift, Y: int32(py) << SubPixelShift}
}

// PixelX целая пиксельная координата X (арифметический сдвиг)
func (v Vector2) PixelX() int {
	return int(v.X >> SubPixelShift)
}

// PixelY целая пиксельная координата Y
func (v Vector2) PixelY() int {
	return int(v.Y >> SubPixelShift)
}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// IsZero true для нулевого вектора
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Rect прямоугольник в пикселях
type Rect struct {
	X, Y, W, H int
}

// Intersects проверяет пересечение двух прямоугольников
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Contains проверяет, лежит ли точка внутри прямоугольника
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// ContainsRect true, если o целиком внутри r
func (r Rect) ContainsRect(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.X+o.W <= r.X+r.W && o.Y+o.H <= r.Y+r.H
}

// Center центр прямоугольника
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenteredRect прямоугольник w×h с центром в (cx, cy)
func CenteredRect(cx, cy, w, h int) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Direction направление движения
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	DirNone
)

// Cardinals четыре направления в порядке выбора ИИ
var Cardinals = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Opposite противоположное направление
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	}
	return DirNone
}

// Velocity вектор скорости для направления при заданной скорости (суб-пиксели за тик)
func (d Direction) Velocity(speed int32) Vector2 {
	switch d {
	case DirUp:
		return Vector2{Y: -speed}
	case DirDown:
		return Vector2{Y: speed}
	case DirLeft:
		return Vector2{X: -speed}
	case DirRight:
		return Vector2{X: speed}
	}
	return Vector2{}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return "none"
}

// Owner владелец снаряда
type Owner int

const (
	OwnerPlayer1 Owner = iota
	OwnerPlayer2
	OwnerEnemy
)

// IsPlayer true для снарядов игроков
func (o Owner) IsPlayer() bool {
	return o == OwnerPlayer1 || o == OwnerPlayer2
}

// PlayerIndex индекс игрока (0 или 1); -1 для врагов
func (o Owner) PlayerIndex() int {
	switch o {
	case OwnerPlayer1:
		return 0
	case OwnerPlayer2:
		return 1
	}
	return -1
}

// OwnerForPlayer владелец для индекса игрока
func OwnerForPlayer(index int) Owner {
	if index == 1 {
		return OwnerPlayer2
	}
	return OwnerPlayer1
}

func (o Owner) String() string {
	switch o {
	case OwnerPlayer1:
		return "player1"
	case OwnerPlayer2:
		return "player2"
	}
	return "enemy"
}
