package board

import (
	"bingo_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const F = model.Free

// fixedBoard Карточка с известными номерами, свободная клетка в центре
func fixedBoard() model.Board {
	return model.Board{
		{5, 20, 35, 50, 70},
		{3, 18, 33, 48, 65},
		{1, 16, F, 46, 61},
		{2, 17, 32, 47, 62},
		{4, 19, 34, 49, 63},
	}
}

func TestGenerateRespectsColumnRanges(t *testing.T) {
	rules := model.DefaultRules()
	gen := NewGenerator(rules)

	for i := 0; i < 200; i++ {
		b := gen.Generate()
		require.Len(t, b, 5)

		for col := 0; col < 5; col++ {
			lo, hi := rules.ColumnRange(col)
			seen := make(map[model.Cell]bool)
			for row, cell := range b.Column(col) {
				if row == 2 && col == 2 {
					require.Equal(t, model.Free, cell)
					continue
				}
				require.GreaterOrEqual(t, int(cell), lo, "col %d row %d", col, row)
				require.LessOrEqual(t, int(cell), hi, "col %d row %d", col, row)
				require.False(t, seen[cell], "duplicate %d in col %d", cell, col)
				seen[cell] = true
			}
		}

		assert.Len(t, b.Numbers(), 24)
	}
}

func TestGenerateColumnBounds(t *testing.T) {
	rules := model.DefaultRules()
	expected := [][2]int{{1, 15}, {16, 30}, {31, 45}, {46, 60}, {61, 75}}
	for col, want := range expected {
		lo, hi := rules.ColumnRange(col)
		assert.Equal(t, want, [2]int{lo, hi})
	}
}

func TestGenerateIndependentBoards(t *testing.T) {
	gen := NewGenerator(model.DefaultRules())

	distinct := make(map[string]bool)
	for i := 0; i < 20; i++ {
		distinct[boardKey(gen.Generate())] = true
	}
	assert.Greater(t, len(distinct), 1)
}

func TestSeededGeneratorIsDeterministic(t *testing.T) {
	rules := model.DefaultRules()
	a := NewSeededGenerator(rules, 42).Generate()
	b := NewSeededGenerator(rules, 42).Generate()
	assert.Equal(t, a, b)
}

func TestGenerateCustomSize(t *testing.T) {
	rules := model.Rules{Size: 3, ColumnSpan: 3, WinLines: 1}
	b := NewGenerator(rules).Generate()

	require.Len(t, b, 3)
	assert.Equal(t, model.Free, b[1][1])
	// Диапазон равен размеру колонки: колонка - перестановка всего диапазона
	assert.ElementsMatch(t, []model.Cell{1, 2, 3}, b.Column(0))
}

func TestLines(t *testing.T) {
	lines := Lines(5)
	require.Len(t, lines, 12)

	assert.Equal(t, Line{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}}, lines[0])
	assert.Equal(t, Line{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}, lines[5])
	assert.Equal(t, Line{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}, lines[10])
	assert.Equal(t, Line{{0, 4}, {1, 3}, {2, 2}, {3, 1}, {4, 0}}, lines[11])
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		name  string
		drawn []int
		want  int
	}{
		{name: "nothing drawn", drawn: nil, want: 0},
		{name: "column B", drawn: []int{5, 3, 1, 2, 4}, want: 1},
		{name: "middle row uses free cell", drawn: []int{1, 16, 46, 61}, want: 1},
		{name: "both diagonals", drawn: []int{5, 18, 47, 63, 70, 48, 17, 4}, want: 2},
		{name: "numbers not on board", drawn: []int{6, 7, 8, 9, 10, 11}, want: 0},
		{name: "everything", drawn: model.DefaultRules().AllNumbers(), want: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountLines(fixedBoard(), tt.drawn))
		})
	}
}

func TestCountLinesIsIdempotent(t *testing.T) {
	b := fixedBoard()
	drawn := []int{5, 3, 1, 2, 4, 20, 18}

	first := CountLines(b, drawn)
	second := CountLines(b, drawn)
	assert.Equal(t, first, second)
	assert.Equal(t, fixedBoard(), b)
	assert.Equal(t, []int{5, 3, 1, 2, 4, 20, 18}, drawn)
}

func TestTrackerFiresOnce(t *testing.T) {
	fired := 0
	tr := NewTracker(fixedBoard(), 3, func(lines int) {
		fired++
		assert.Equal(t, 3, lines)
	})

	// Колонки B и I
	drawn := []int{5, 3, 1, 2, 4, 20, 18, 16, 17, 19}
	res := tr.Evaluate(drawn)
	assert.Equal(t, Result{Lines: 2}, res)
	assert.False(t, tr.Won())

	// Верхняя строка дает третью линию
	drawn = append(drawn, 35, 50, 70)
	res = tr.Evaluate(drawn)
	assert.Equal(t, Result{Lines: 3, Bingo: true, Won: true}, res)
	assert.Equal(t, 1, fired)

	// Та же история и надмножество не повторяют сигнал
	res = tr.Evaluate(drawn)
	assert.Equal(t, Result{Lines: 3, Won: true}, res)
	res = tr.Evaluate(append(drawn, 33, 48, 65))
	assert.False(t, res.Bingo)
	assert.Equal(t, 1, fired)
}

func TestTrackerKeepsWinAfterReset(t *testing.T) {
	tr := NewTracker(fixedBoard(), 3, nil)

	res := tr.Evaluate(model.DefaultRules().AllNumbers())
	require.True(t, res.Bingo)

	// Ведущий сбросил игру: история пуста, но карточка уже выиграла
	res = tr.Evaluate(nil)
	assert.Equal(t, Result{Lines: 0, Won: true}, res)
	assert.True(t, tr.Won())
}

func boardKey(b model.Board) string {
	key := make([]byte, 0, 25)
	for _, row := range b {
		for _, cell := range row {
			key = append(key, byte(cell))
		}
	}
	return string(key)
}
