package main

import (
	"bingo_backend/internal/model"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBoard(t *testing.T) {
	b := model.Board{
		{5, 20, 35, 50, 70},
		{3, 18, 33, 48, 65},
		{1, 16, model.Free, 46, 61},
		{2, 17, 32, 47, 62},
		{4, 19, 34, 49, 63},
	}

	var buf bytes.Buffer
	printBoard(&buf, b)

	want := "   B    I    N    G    O\n" +
		"   5   20   35   50   70\n" +
		"   3   18   33   48   65\n" +
		"   1   16 FREE   46   61\n" +
		"   2   17   32   47   62\n" +
		"   4   19   34   49   63\n"
	assert.Equal(t, want, buf.String())
}
