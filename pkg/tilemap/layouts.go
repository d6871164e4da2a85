package tilemap

import "fmt"

// Layouts внутренние 11×11 клеток уровней (периметр всегда сталь).
// '.' трава, '#' кирпич, '@' сталь, '~' вода.
var Layouts = [][]string{
	{
		"...........",
		".#.#.#.#.#.",
		".#.#.#.#.#.",
		".#.#@#@#.#.",
		".#.#...#.#.",
		"...........",
		"#.##...##.#",
		"@....#....@",
		".#.#####.#.",
		".#.#...#.#.",
		".#.......#.",
	},
	{
		"...@...@...",
		".#.@...@.#.",
		".#.......#.",
		"...~~.~~...",
		"##.~...~.##",
		"@@.......@@",
		"...#.#.#...",
		".#.#####.#.",
		".#.......#.",
		"...#.#.#...",
		".#.......#.",
	},
	{
		".....#.....",
		".@@..#..@@.",
		".....#.....",
		"###.....###",
		"...~~.~~...",
		".#.......#.",
		".#.@@@@@.#.",
		".#.......#.",
		"...#####...",
		".#.......#.",
		".#.......#.",
	},
	{
		"...........",
		".~~~...~~~.",
		".#.#.#.#.#.",
		".#.#.#.#.#.",
		"..@.....@..",
		".###...###.",
		".....@.....",
		".#.#.#.#.#.",
		".#.#####.#.",
		".#.......#.",
		"...........",
	},
}

// LayoutForLevel номер раскладки для уровня (уровни нумеруются с 1)
func LayoutForLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return (level - 1) % len(Layouts)
}

// ApplyLayout переносит раскладку во внутреннюю часть сетки
func (g *Grid) ApplyLayout(rows []string) error {
	if len(rows) != Size-2 {
		return fmt.Errorf("layout has %d rows, want %d", len(rows), Size-2)
	}
	for y, row := range rows {
		if len(row) != Size-2 {
			return fmt.Errorf("layout row %d has %d cells, want %d", y, len(row), Size-2)
		}
		for x := 0; x < len(row); x++ {
			t, err := parseCell(row[x])
			if err != nil {
				return fmt.Errorf("layout row %d col %d: %w", y, x, err)
			}
			g.cells[y+1][x+1] = t
		}
	}
	return nil
}

func parseCell(c byte) (TerrainType, error) {
	switch c {
	case '.':
		return Grass, nil
	case '#':
		return Brick, nil
	case '@':
		return Steel, nil
	case '~':
		return Water, nil
	case 'B':
		return BaseBrick, nil
	}
	return Grass, fmt.Errorf("unknown cell %q", c)
}
