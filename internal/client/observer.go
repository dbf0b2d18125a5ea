package client

import (
	"bingo_backend/internal/model"
	"bingo_backend/internal/service/board"
	"slices"
	"sync"

	"github.com/charmbracelet/log"
)

// Observer Игрок: своя карточка, закешированная история и флаг выигрыша.
// Ничего из этого не уходит на сервер
type Observer struct {
	mtx       sync.Mutex
	rules     model.Rules
	generator *board.Generator
	tracker   *board.Tracker
	drawn     []int
	onBingo   func(model.Board, int)
	logger    *log.Logger
}

// NewObserver Сразу генерирует первую карточку. onBingo может быть nil,
// вызывается под блокировкой наблюдателя и не должен обращаться к нему
func NewObserver(rules model.Rules, generator *board.Generator, onBingo func(model.Board, int), logger *log.Logger) *Observer {
	o := &Observer{
		rules:     rules,
		generator: generator,
		onBingo:   onBingo,
		logger:    logger.WithPrefix("player"),
	}
	o.NewBoard()
	return o
}

// NewBoard Новая карточка - новая сессия: флаг выигрыша сбрасывается
func (o *Observer) NewBoard() model.Board {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	b := o.generator.Generate()
	o.tracker = board.NewTracker(b, o.rules.WinLines, func(lines int) {
		o.logger.Info("BINGO", "lines", lines)
		if o.onBingo != nil {
			o.onBingo(b, lines)
		}
	})
	return b
}

// Update Принимает свежую историю и перепроверяет карточку
func (o *Observer) Update(drawn []int) board.Result {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	switch {
	case len(drawn) < len(o.drawn):
		o.logger.Info("caller reset the game", "won", o.tracker.Won())
	case len(drawn) > len(o.drawn):
		o.logger.Debug("new numbers", "numbers", drawn[len(o.drawn):])
	}
	o.drawn = slices.Clone(drawn)

	return o.tracker.Evaluate(o.drawn)
}

// Evaluate Перепроверка по кешу, без нового опроса
func (o *Observer) Evaluate() board.Result {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	return o.tracker.Evaluate(o.drawn)
}

func (o *Observer) Board() model.Board {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	return o.tracker.Board()
}

func (o *Observer) Drawn() []int {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	return slices.Clone(o.drawn)
}

func (o *Observer) Won() bool {
	o.mtx.Lock()
	defer o.mtx.Unlock()

	return o.tracker.Won()
}
