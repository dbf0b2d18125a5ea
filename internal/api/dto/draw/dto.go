package draw

type StatusResponse struct {
	DrawnNumbers []string `json:"drawnNumbers"` // Выпавшие номера в порядке выпадения
	Remaining    int      `json:"remaining"`    // Осталось в барабане
	Current      string   `json:"current"`      // Последний номер, "" если ничего не выпало
}

type DrawResponse struct {
	Number string `json:"number"` // Выпавший номер
}

type MessageResponse struct {
	Message string `json:"message"`
}
