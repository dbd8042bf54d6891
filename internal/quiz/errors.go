package quiz

import "errors"

// Ошибки квиза. Вызывающая сторона проверяет их через errors.Is,
// текст конкретного нарушения добавляется при оборачивании.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrOutOfRange      = errors.New("question does not exist")
	ErrEmptyQuiz       = errors.New("the quiz is empty")
)
