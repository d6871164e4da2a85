// internal/defs/loot_tables.go
package defs

// LootEntry одна запись таблицы выпадения бонусов.
// Weight относительный шанс выпадения.
type LootEntry struct {
	PowerUp PowerUpType `json:"power_up"`
	Weight  int         `json:"weight"`
}

// PowerUpLoot таблица выпадения бонуса с уничтоженного врага
var PowerUpLoot = []LootEntry{
	{PowerUp: PowerUpTankUpgrade, Weight: 25},
	{PowerUp: PowerUpExtraLife, Weight: 25},
	{PowerUp: PowerUpShield, Weight: 20},
	{PowerUp: PowerUpTimerBomb, Weight: 15},
	{PowerUp: PowerUpClearEnemies, Weight: 15},
}
