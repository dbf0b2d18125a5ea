// Package board builds player cards and counts completed lines on them.
//
// Cards never touch shared state: a player generates one locally and checks it
// against the draw log it polls from the caller.
package board

import (
	"bingo_backend/internal/model"
	"math/rand/v2"
)

// Generator Генератор карточек по правилам партии
type Generator struct {
	rules model.Rules
	intN  func(n int) int
}

// NewGenerator Генератор на глобальном источнике math/rand/v2,
// он безопасен для параллельных вызовов
func NewGenerator(rules model.Rules) *Generator {
	return &Generator{
		rules: rules,
		intN:  rand.IntN,
	}
}

// NewSeededGenerator Детерминированный генератор. Не для параллельного использования
func NewSeededGenerator(rules model.Rules, seed uint64) *Generator {
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return &Generator{
		rules: rules,
		intN:  rnd.IntN,
	}
}

// Generate Новая карточка. Каждая колонка берет Size разных номеров
// из своего диапазона, центральная клетка свободна
func (g *Generator) Generate() model.Board {
	size := g.rules.Size

	board := make(model.Board, size)
	for row := range board {
		board[row] = make([]model.Cell, size)
	}

	for col := 0; col < size; col++ {
		column := g.sampleColumn(col)
		// Колонка ложится сверху вниз
		for row, n := range column {
			board[row][col] = model.Cell(n)
		}
	}

	center := g.rules.Center()
	board[center][center] = model.Free

	return board
}

// sampleColumn Выборка без повторений отбраковкой: тянем, пока не наберем Size разных.
// Диапазон в 3 раза больше выборки, повторов мало
func (g *Generator) sampleColumn(col int) []int {
	lo, _ := g.rules.ColumnRange(col)

	seen := make(map[int]struct{}, g.rules.Size)
	column := make([]int, 0, g.rules.Size)
	for len(column) < g.rules.Size {
		n := lo + g.intN(g.rules.ColumnSpan)
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		column = append(column, n)
	}
	return column
}
