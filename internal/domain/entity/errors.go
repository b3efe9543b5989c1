package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidGrid сетка температур не прошла проверку при загрузке.
	ErrInvalidGrid = errors.New("invalid temperature grid")
	// ErrSessionNotFound сессия отсутствует в хранилище.
	ErrSessionNotFound = errors.New("session not found")
	// ErrCaptureNotFound снимок отсутствует в сессии.
	ErrCaptureNotFound = errors.New("capture not found")
)

// CellError ячейка с нечисловым или пустым значением.
type CellError struct {
	File  string
	Row   int // с единицы
	Col   int // с единицы
	Value string
}

func (e *CellError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: invalid temperature cell at row %d, col %d: %q", e.File, e.Row, e.Col, e.Value)
	}
	return fmt.Sprintf("invalid temperature cell at row %d, col %d: %q", e.Row, e.Col, e.Value)
}

func (e *CellError) Unwrap() error { return ErrInvalidGrid }
