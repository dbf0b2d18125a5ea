package converter

import (
	"bingo_backend/internal/api/dto/draw"
	"bingo_backend/internal/model"
	"strconv"
)

func ToStatusResponse(status model.DrawStatus) draw.StatusResponse {
	current := ""
	if n := status.Current(); n != 0 {
		current = strconv.Itoa(n)
	}

	return draw.StatusResponse{
		DrawnNumbers: ToNumberStrings(status.Drawn),
		Remaining:    status.Remaining,
		Current:      current,
	}
}

func ToDrawResponse(number int) draw.DrawResponse {
	return draw.DrawResponse{
		Number: strconv.Itoa(number),
	}
}

// ToNumberStrings Номера уходят клиентам строками
func ToNumberStrings(numbers []int) []string {
	result := make([]string, len(numbers))
	for i, n := range numbers {
		result[i] = strconv.Itoa(n)
	}
	return result
}

// ParseNumbers Обратное преобразование. Возвращает разобранные номера
// и записи, которые разобрать не удалось
func ParseNumbers(raw []string) (numbers []int, skipped []string) {
	numbers = make([]int, 0, len(raw))
	for _, s := range raw {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			skipped = append(skipped, s)
			continue
		}
		numbers = append(numbers, n)
	}
	return numbers, skipped
}
