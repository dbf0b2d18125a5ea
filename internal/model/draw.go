package model

// DrawStatus Состояние барабана для наблюдателей
type DrawStatus struct {
	Drawn     []int // Выпавшие номера в порядке выпадения
	Remaining int   // Сколько номеров осталось в барабане
}

// Current Последний выпавший номер, 0 если еще ничего не выпало
func (s DrawStatus) Current() int {
	if len(s.Drawn) == 0 {
		return 0
	}
	return s.Drawn[len(s.Drawn)-1]
}
