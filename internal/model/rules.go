package model

import "fmt"

const (
	// DefaultSize Размер карточки (5x5, колонки B I N G O)
	DefaultSize = 5
	// DefaultColumnSpan Сколько номеров приходится на одну колонку (B: 1-15, I: 16-30 ...)
	DefaultColumnSpan = 15
	// DefaultWinLines Сколько собранных линий нужно для бинго
	DefaultWinLines = 3
)

// Rules Параметры партии. Общие для ведущего и для игроков
type Rules struct {
	Size       int
	ColumnSpan int
	WinLines   int
}

// DefaultRules Классическое бинго на 75 шаров
func DefaultRules() Rules {
	return Rules{
		Size:       DefaultSize,
		ColumnSpan: DefaultColumnSpan,
		WinLines:   DefaultWinLines,
	}
}

// Validate проверяет, что из правил можно собрать карточку
func (r Rules) Validate() error {
	if r.Size < 3 || r.Size%2 == 0 {
		return fmt.Errorf("board size must be odd and at least 3, got %d", r.Size)
	}
	if r.ColumnSpan < r.Size {
		return fmt.Errorf("column span %d is smaller than board size %d", r.ColumnSpan, r.Size)
	}
	if r.WinLines < 1 || r.WinLines > r.LineCount() {
		return fmt.Errorf("win lines must be in [1,%d], got %d", r.LineCount(), r.WinLines)
	}
	return nil
}

// MaxNumber Последний номер в барабане (75 для классики)
func (r Rules) MaxNumber() int {
	return r.Size * r.ColumnSpan
}

// Center Индекс центральной строки и колонки, где стоит свободная клетка
func (r Rules) Center() int {
	return r.Size / 2
}

// LineCount Всего линий на карточке: строки, колонки и две диагонали
func (r Rules) LineCount() int {
	return 2*r.Size + 2
}

// ColumnRange Диапазон номеров колонки col, включительно
func (r Rules) ColumnRange(col int) (lo, hi int) {
	lo = col*r.ColumnSpan + 1
	return lo, lo + r.ColumnSpan - 1
}

// AllNumbers Полный барабан 1..MaxNumber
func (r Rules) AllNumbers() []int {
	numbers := make([]int, r.MaxNumber())
	for i := range numbers {
		numbers[i] = i + 1
	}
	return numbers
}
