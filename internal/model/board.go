package model

// Cell Ячейка карточки: номер или свободная клетка
type Cell int

// Free Свободная клетка в центре. Номера начинаются с 1, поэтому 0 свободен
const Free Cell = 0

func (c Cell) IsFree() bool {
	return c == Free
}

// Board Карточка игрока, Board[row][col]
type Board [][]Cell

// Column Значения колонки сверху вниз
func (b Board) Column(col int) []Cell {
	column := make([]Cell, len(b))
	for row := range b {
		column[row] = b[row][col]
	}
	return column
}

// Numbers Все номера карточки без свободной клетки
func (b Board) Numbers() []int {
	var numbers []int
	for _, row := range b {
		for _, cell := range row {
			if !cell.IsFree() {
				numbers = append(numbers, int(cell))
			}
		}
	}
	return numbers
}
