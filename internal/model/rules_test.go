package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRules(t *testing.T) {
	r := DefaultRules()

	assert.NoError(t, r.Validate())
	assert.Equal(t, 75, r.MaxNumber())
	assert.Equal(t, 12, r.LineCount())
	assert.Equal(t, 2, r.Center())
	assert.Len(t, r.AllNumbers(), 75)
	assert.Equal(t, 1, r.AllNumbers()[0])
	assert.Equal(t, 75, r.AllNumbers()[74])
}

func TestRulesValidate(t *testing.T) {
	assert.Error(t, Rules{Size: 4, ColumnSpan: 15, WinLines: 3}.Validate())
	assert.Error(t, Rules{Size: 1, ColumnSpan: 15, WinLines: 1}.Validate())
	assert.Error(t, Rules{Size: 5, ColumnSpan: 4, WinLines: 3}.Validate())
	assert.Error(t, Rules{Size: 5, ColumnSpan: 15, WinLines: 0}.Validate())
	assert.Error(t, Rules{Size: 5, ColumnSpan: 15, WinLines: 13}.Validate())
	assert.NoError(t, Rules{Size: 3, ColumnSpan: 3, WinLines: 8}.Validate())
}

func TestDrawStatusCurrent(t *testing.T) {
	assert.Zero(t, DrawStatus{}.Current())
	assert.Equal(t, 9, DrawStatus{Drawn: []int{4, 9}}.Current())
}
