package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageWindow_StartOfRange(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2, 3, 4}, PageWindow(0, 10))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, PageWindow(1, 10))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, PageWindow(2, 10))
}

func TestPageWindow_EndOfRange(t *testing.T) {
	assert.Equal(t, []int{5, 6, 7, 8, 9}, PageWindow(9, 10))
	assert.Equal(t, []int{5, 6, 7, 8, 9}, PageWindow(8, 10))
	assert.Equal(t, []int{5, 6, 7, 8, 9}, PageWindow(7, 10))
}

func TestPageWindow_Centered(t *testing.T) {
	assert.Equal(t, []int{3, 4, 5, 6, 7}, PageWindow(5, 10))
	assert.Equal(t, []int{2, 3, 4, 5, 6}, PageWindow(4, 10))
}

func TestPageWindow_FewerPagesThanWindow(t *testing.T) {
	assert.Equal(t, []int{0, 1, 2}, PageWindow(1, 3))
	assert.Equal(t, []int{0}, PageWindow(0, 1))
}

func TestPageWindow_NoPages(t *testing.T) {
	assert.Nil(t, PageWindow(0, 0))
	assert.Nil(t, PageWindow(3, -1))
}
