package req

import (
	"encoding/json"
	"fmt"
	"io"
)

// Decode Читает JSON тело запроса в T. Неизвестные поля запрещены
func Decode[T any](body io.Reader) (T, error) {
	var payload T

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return payload, fmt.Errorf("decode request: %w", err)
	}

	return payload, nil
}
