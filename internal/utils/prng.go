// internal/utils/prng.go
package utils

import (
	"go-battle-city/internal/defs"
	"go-battle-city/internal/types"
)

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
)

// PRNGService детерминированный линейный конгруэнтный генератор.
// Один поток на процесс: одинаковый сид и одинаковый порядок вызовов
// дают одинаковую симуляцию.
type PRNGService struct {
	seed uint32
}

// NewPRNGService создает генератор с указанным сидом.
func NewPRNGService(seed uint32) *PRNGService {
	return &PRNGService{seed: seed}
}

// Seed текущее внутреннее состояние
func (s *PRNGService) Seed() uint32 {
	return s.seed
}

// SetSeed перезапускает поток
func (s *PRNGService) SetSeed(seed uint32) {
	s.seed = seed
}

// Next следующее значение в диапазоне [0, 65535]
func (s *PRNGService) Next() int {
	s.seed = s.seed*lcgMultiplier + lcgIncrement
	return int(s.seed >> 16)
}

// Range случайное целое в [min, max] включительно
func (s *PRNGService) Range(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.Next()%(max-min+1)
}

// Chance true с вероятностью percent процентов
func (s *PRNGService) Chance(percent int) bool {
	return s.Range(0, 99) < percent
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.Next() % n
}

// Float64 возвращает случайное число в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return float64(s.Next()) / 65536.0
}

// Direction равномерно выбирает одно из четырёх направлений
func (s *PRNGService) Direction() types.Direction {
	return types.Cardinals[s.Range(0, 3)]
}

// ChooseWeighted выполняет взвешенный случайный выбор из таблицы выпадения.
// Суммирует веса, выбирает число в этом диапазоне и находит
// элемент, которому оно соответствует.
func (s *PRNGService) ChooseWeighted(entries []defs.LootEntry) defs.PowerUpType {
	if len(entries) == 0 {
		return defs.PowerUpTankUpgrade
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}

	if totalWeight <= 0 {
		return entries[0].PowerUp
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.PowerUp
		}
		upto += entry.Weight
	}

	return entries[len(entries)-1].PowerUp
}
