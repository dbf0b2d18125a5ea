package board

import "bingo_backend/internal/model"

// CountLines Сколько линий карточки закрыто выпавшими номерами.
// Свободная клетка закрыта всегда. Считается с нуля при каждом вызове
func CountLines(b model.Board, drawn []int) int {
	hit := make(map[int]struct{}, len(drawn))
	for _, n := range drawn {
		hit[n] = struct{}{}
	}

	count := 0
	for _, line := range Lines(len(b)) {
		if lineComplete(b, line, hit) {
			count++
		}
	}
	return count
}

func lineComplete(b model.Board, line Line, hit map[int]struct{}) bool {
	for _, rc := range line {
		cell := b[rc[0]][rc[1]]
		if cell.IsFree() {
			continue
		}
		if _, ok := hit[int(cell)]; !ok {
			return false
		}
	}
	return true
}
