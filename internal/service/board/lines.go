package board

// Line Клетки одной линии, [row, col]
type Line [][2]int

// Lines Все линии карточки: строки, колонки, главная и побочная диагонали
func Lines(size int) []Line {
	lines := make([]Line, 0, 2*size+2)

	for r := 0; r < size; r++ {
		line := make(Line, size)
		for c := 0; c < size; c++ {
			line[c] = [2]int{r, c}
		}
		lines = append(lines, line)
	}

	for c := 0; c < size; c++ {
		line := make(Line, size)
		for r := 0; r < size; r++ {
			line[r] = [2]int{r, c}
		}
		lines = append(lines, line)
	}

	diag := make(Line, size)
	anti := make(Line, size)
	for i := 0; i < size; i++ {
		diag[i] = [2]int{i, i}
		anti[i] = [2]int{i, size - 1 - i}
	}
	lines = append(lines, diag, anti)

	return lines
}
