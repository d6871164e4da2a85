// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadEnemyDefinitions читает файл переопределений и заменяет записи EnemyLibrary.
// Возвращает количество заменённых определений.
func LoadEnemyDefinitions(path string) (int, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return 0, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	library := DefaultEnemyLibrary()
	for _, def := range enemyDefs {
		t, err := ParseEnemyType(def.ID)
		if err != nil {
			return 0, fmt.Errorf("invalid enemy definition: %w", err)
		}
		if def.Health < 1 || def.MoveSpeed < 0 || def.Cooldown < 1 {
			return 0, fmt.Errorf("invalid enemy definition %s: non-positive stats", def.ID)
		}
		def.BulletPower = ClampBulletPower(def.BulletPower)
		library[t] = def
	}

	EnemyLibrary = library
	return len(enemyDefs), nil
}
