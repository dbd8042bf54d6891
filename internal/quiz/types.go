package quiz

import "context"

// Verdict — результат проверки одного ответа.
type Verdict string

const (
	Correct   Verdict = "Correct"
	Incorrect Verdict = "Incorrect"
)

// Asker определяет источник ответов пользователя при прохождении квиза.
type Asker interface {
	// Ask показывает вопрос prompt и возвращает ответ пользователя как есть.
	Ask(ctx context.Context, prompt string) (string, error)
}

// Reporter получает вердикт сразу после проверки каждого вопроса.
type Reporter interface {
	// Report сообщает пользователю "Correct" или "Incorrect".
	Report(v Verdict) error
}

// Mistake описывает вопрос, на который дан неправильный ответ.
type Mistake struct {
	Number        int
	Question      string
	CorrectAnswer string
	GivenAnswer   string
}

// Result содержит итог полного прохождения квиза.
type Result struct {
	RunID    string
	QuizName string
	Total    int
	Score    float64
	Mistakes []Mistake
}
