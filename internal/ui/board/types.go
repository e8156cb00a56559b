package board

import "github.com/elenalowe/tasktide/internal/domain"

// Column represents one category column with its visible tasks
type Column struct {
	Title string
	Tasks []domain.Task
}

// Cursor represents the current cursor position on the board
type Cursor struct {
	Column int // Column index
	Task   int // Task index within column
}
