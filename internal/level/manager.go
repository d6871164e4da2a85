package level

import (
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/types"
	"go-battle-city/internal/utils"
	"go-battle-city/pkg/tilemap"

	"github.com/rs/zerolog"
)

// SpawnFunc просит мир создать врага; false, если лимит врагов исчерпан
type SpawnFunc func(kind defs.EnemyType, pos types.Vector2) bool

// Tile координаты клетки
type Tile struct{ X, Y int }

var (
	enemySpawnTiles  = [4]Tile{{1, 1}, {11, 1}, {1, 11}, {11, 11}}
	playerSpawnTiles = [2]Tile{{4, 11}, {8, 11}}
	baseTile         = Tile{config.BaseTileX, config.BaseTileY}
	baseRing         = []Tile{{5, 10}, {6, 10}, {7, 10}, {5, 11}, {7, 11}}
)

// Data геометрия загруженного уровня
type Data struct {
	Number       int
	Grid         *tilemap.Grid
	BasePosition types.Vector2    // Центр штаба
	EnemySpawns  [4]types.Vector2 // Левый верхний угол танка
	PlayerSpawns [2]types.Vector2
}

// Manager хранит поле и планирует появление врагов
type Manager struct {
	data             Data
	rng              *utils.PRNGService
	logger           zerolog.Logger
	onSpawn          SpawnFunc
	enemiesRemaining int
	enemiesToSpawn   int
	spawnTimer       int
	spawnIndex       int
}

// NewManager создаёт менеджер; уровень 1 загружается сразу
func NewManager(rng *utils.PRNGService, logger zerolog.Logger) *Manager {
	m := &Manager{
		rng:    rng,
		logger: logger.With().Str("component", "level").Logger(),
	}
	m.LoadLevel(1)
	return m
}

// SetSpawnCallback регистрирует обработчик появления врагов
func (m *Manager) SetSpawnCallback(fn SpawnFunc) {
	m.onSpawn = fn
}

// LoadLevel сбрасывает счётчики и перестраивает поле уровня n (1..35)
func (m *Manager) LoadLevel(n int) {
	if n < 1 {
		n = 1
	}
	if n > config.MaxLevels {
		n = config.MaxLevels
	}

	m.enemiesRemaining = config.EnemiesPerLevel
	m.enemiesToSpawn = config.EnemiesPerLevel
	m.spawnTimer = config.FirstSpawnDelay
	m.spawnIndex = 0

	grid := tilemap.NewGrid(config.TileSize, config.FieldX, config.FieldY)
	grid.SetBorder(tilemap.Steel)
	if err := grid.ApplyLayout(tilemap.Layouts[tilemap.LayoutForLevel(n)]); err != nil {
		m.logger.Error().Err(err).Int("level", n).Msg("Broken layout, using empty field")
		grid.Fill(tilemap.Grass)
	}
	grid.SetBorder(tilemap.Steel)

	m.data = Data{Number: n, Grid: grid}
	for i, t := range enemySpawnTiles {
		grid.Set(t.X, t.Y, tilemap.Grass)
		m.data.EnemySpawns[i] = tankSpawn(grid, t)
	}
	for i, t := range playerSpawnTiles {
		grid.Set(t.X, t.Y, tilemap.Grass)
		m.data.PlayerSpawns[i] = tankSpawn(grid, t)
	}
	bx, by := grid.TileToPixel(baseTile.X, baseTile.Y)
	m.data.BasePosition = types.FromPixels(bx+config.TileSize/2, by+config.TileSize/2)
	m.RebuildBaseBricks()

	m.logger.Debug().Int("level", n).Int("layout", tilemap.LayoutForLevel(n)).Msg("Level loaded")
}

// tankSpawn позиция танка по центру клетки
func tankSpawn(g *tilemap.Grid, t Tile) types.Vector2 {
	px, py := g.TileToPixel(t.X, t.Y)
	off := (config.TileSize - config.TankSize) / 2
	return types.FromPixels(px+off, py+off)
}

// RebuildBaseBricks восстанавливает кирпичное кольцо вокруг штаба
func (m *Manager) RebuildBaseBricks() {
	g := m.data.Grid
	g.Set(baseTile.X, baseTile.Y, tilemap.Grass)
	for _, t := range baseRing {
		g.Set(t.X, t.Y, tilemap.BaseBrick)
	}
}

// Update один тик планировщика появления
func (m *Manager) Update() {
	if m.spawnTimer > 0 {
		m.spawnTimer--
	}
	if m.enemiesToSpawn <= 0 || m.spawnTimer > 0 {
		return
	}
	if m.onSpawn == nil {
		return
	}

	spawned := config.EnemiesPerLevel - m.enemiesToSpawn
	kind := defs.EnemyForSpawn(m.data.Number, spawned)
	pos := m.data.EnemySpawns[m.spawnIndex]
	if !m.onSpawn(kind, pos) {
		m.logger.Debug().Str("kind", kind.String()).Msg("Spawn declined, retrying next tick")
		return
	}

	m.enemiesToSpawn--
	m.spawnIndex = (m.spawnIndex + 1) % len(m.data.EnemySpawns)
	m.spawnTimer = m.SpawnInterval()
	m.logger.Debug().Str("kind", kind.String()).Int("toSpawn", m.enemiesToSpawn).Msg("Enemy spawned")
}

// SpawnInterval интервал до следующего появления с разбросом
func (m *Manager) SpawnInterval() int {
	interval := config.BaseSpawnInterval - (m.data.Number-1)*config.SpawnIntervalPerStep +
		m.rng.Range(-config.SpawnJitter, config.SpawnJitter)
	if interval < config.MinSpawnInterval {
		interval = config.MinSpawnInterval
	}
	return interval
}

// EnemyDestroyed учитывает одно подтверждённое уничтожение врага
func (m *Manager) EnemyDestroyed() {
	if m.enemiesRemaining > 0 {
		m.enemiesRemaining--
	}
}

// IsLevelComplete уровень пройден, когда все враги уничтожены
func (m *Manager) IsLevelComplete() bool {
	return m.enemiesRemaining == 0
}

// ShouldSpawnPowerUp бросок на выпадение бонуса с врага
func (m *Manager) ShouldSpawnPowerUp() bool {
	return m.rng.Chance(config.PowerUpDropChance)
}

func (m *Manager) Level() int            { return m.data.Number }
func (m *Manager) Data() *Data           { return &m.data }
func (m *Manager) Grid() *tilemap.Grid   { return m.data.Grid }
func (m *Manager) EnemiesRemaining() int { return m.enemiesRemaining }
func (m *Manager) EnemiesToSpawn() int   { return m.enemiesToSpawn }
func (m *Manager) SpawnTimer() int       { return m.spawnTimer }

// TerrainAt клетка поля; вне сетки сталь
func (m *Manager) TerrainAt(tx, ty int) tilemap.TerrainType {
	return m.data.Grid.At(tx, ty)
}

// TerrainAtPixel клетка под пикселем холста
func (m *Manager) TerrainAtPixel(px, py int) tilemap.TerrainType {
	return m.data.Grid.AtPixel(px, py)
}

// IsBlocked непроходимость пикселя для танка или снаряда (вода снаряд пропускает)
func (m *Manager) IsBlocked(px, py int, forBullet bool) bool {
	t := m.TerrainAtPixel(px, py)
	if forBullet {
		return t.BlocksBullet()
	}
	return t.BlocksTank()
}

// DestroyTerrainAt разрушает кирпич под пикселем
func (m *Manager) DestroyTerrainAt(px, py int) (tilemap.TerrainType, bool) {
	tx, ty := m.data.Grid.PixelToTile(px, py)
	return m.data.Grid.DestroyAt(tx, ty)
}

// BaseBounds прямоугольник штаба 16×16
func (m *Manager) BaseBounds() types.Rect {
	p := m.data.BasePosition
	return types.CenteredRect(p.PixelX(), p.PixelY(), config.BaseSize, config.BaseSize)
}

// FieldBounds игровое поле в пикселях
func (m *Manager) FieldBounds() types.Rect {
	g := m.data.Grid
	return types.Rect{X: g.OriginX, Y: g.OriginY, W: tilemap.Size * g.TileSize, H: tilemap.Size * g.TileSize}
}
