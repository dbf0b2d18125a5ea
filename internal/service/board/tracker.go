package board

import "bingo_backend/internal/model"

// Result Итог одной проверки карточки
type Result struct {
	Lines int  // закрытых линий сейчас
	Bingo bool // бинго случилось именно на этой проверке
	Won   bool // бинго уже было
}

// Tracker Состояние выигрыша одной карточки.
// Переход "не выиграл -> выиграл" происходит один раз, дальше флаг не сбрасывается.
// Не для параллельного использования: карточка принадлежит одному игроку
type Tracker struct {
	board    model.Board
	winLines int
	won      bool
	onBingo  func(lines int)
}

// NewTracker onBingo вызывается ровно один раз, в момент бинго. Может быть nil
func NewTracker(b model.Board, winLines int, onBingo func(lines int)) *Tracker {
	return &Tracker{
		board:    b,
		winLines: winLines,
		onBingo:  onBingo,
	}
}

// Evaluate Пересчитывает линии по истории и переключает флаг выигрыша
func (t *Tracker) Evaluate(drawn []int) Result {
	lines := CountLines(t.board, drawn)

	if lines >= t.winLines && !t.won {
		t.won = true
		if t.onBingo != nil {
			t.onBingo(lines)
		}
		return Result{Lines: lines, Bingo: true, Won: true}
	}

	return Result{Lines: lines, Won: t.won}
}

func (t *Tracker) Won() bool {
	return t.won
}

func (t *Tracker) Board() model.Board {
	return t.board
}
