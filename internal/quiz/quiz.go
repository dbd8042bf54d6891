package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Quiz представляет именованный упорядоченный набор вопросов.
// Номера вопросов начинаются с 1 и совпадают с порядком добавления.
type Quiz struct {
	id    string
	name  string
	items []*Item
}

// NewQuiz создаёт пустой квиз.
func NewQuiz(name string) *Quiz {
	return &Quiz{
		id:   uuid.NewString(),
		name: name,
	}
}

// ID возвращает идентификатор квиза.
func (q *Quiz) ID() string {
	return q.id
}

// Name возвращает название квиза.
func (q *Quiz) Name() string {
	return q.name
}

// Len возвращает количество вопросов.
func (q *Quiz) Len() int {
	return len(q.items)
}

// Items возвращает вопросы в порядке добавления.
func (q *Quiz) Items() []*Item {
	return slices.Clone(q.items)
}

// AddItem добавляет вопрос в конец квиза. Повторы разрешены.
func (q *Quiz) AddItem(item *Item) error {
	if item == nil {
		return fmt.Errorf("%w: quiz item is nil", ErrInvalidArgument)
	}

	q.items = append(q.items, item)

	return nil
}

// Item возвращает вопрос по номеру (с 1).
func (q *Quiz) Item(number int) (*Item, error) {
	if number < 1 || number > len(q.items) {
		return nil, fmt.Errorf("%w: question %d, quiz has %d", ErrOutOfRange, number, len(q.items))
	}

	return q.items[number-1], nil
}

// RenderAll возвращает все вопросы с вариантами и правильными ответами.
func (q *Quiz) RenderAll() (string, error) {
	if len(q.items) == 0 {
		return "", ErrEmptyQuiz
	}

	result := make([]string, 0, len(q.items)*4)

	for i, item := range q.items {
		result = append(result, questionLines(i+1, item)...)
		result = append(result, "Answer: "+item.answer, "")
	}

	return strings.Join(result, "\n"), nil
}

// CheckAnswer проверяет ответ на вопрос number без учёта регистра и пробелов по краям.
func (q *Quiz) CheckAnswer(number int, userAnswer string) (Verdict, error) {
	item, err := q.Item(number)
	if err != nil {
		return "", err
	}

	if item.Matches(userAnswer) {
		return Correct, nil
	}

	return Incorrect, nil
}

// RunFull проводит квиз целиком: задаёт каждый вопрос через asker,
// сообщает вердикт через reporter и считает итоговый процент.
func (q *Quiz) RunFull(ctx context.Context, asker Asker, reporter Reporter) (*Result, error) {
	if len(q.items) == 0 {
		return nil, fmt.Errorf("%w, add quiz items first", ErrEmptyQuiz)
	}

	result := &Result{
		RunID:    uuid.NewString(),
		QuizName: q.name,
		Total:    len(q.items),
	}
	slog.Debug("quiz run started", "quiz", q.name, "run_id", result.RunID, "questions", result.Total)

	for i, item := range q.items {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("quiz run interrupted at question %d: %w", i+1, err)
		}

		userAnswer, err := asker.Ask(ctx, strings.Join(questionLines(i+1, item), "\n"))
		if err != nil {
			return nil, fmt.Errorf("can not get answer for question %d: %w", i+1, err)
		}

		verdict := Correct
		if !item.Matches(userAnswer) {
			verdict = Incorrect
			result.Mistakes = append(result.Mistakes, Mistake{
				Number:        i + 1,
				Question:      item.question,
				CorrectAnswer: item.answer,
				GivenAnswer:   userAnswer,
			})
		}

		if err = reporter.Report(verdict); err != nil {
			return nil, fmt.Errorf("can not report verdict for question %d: %w", i+1, err)
		}

		slog.Debug("question answered", "run_id", result.RunID, "question", i+1, "verdict", verdict)
	}

	result.Score = score(len(result.Mistakes), result.Total)
	slog.Debug("quiz run finished", "run_id", result.RunID, "score", result.Score)

	return result, nil
}

func questionLines(number int, item *Item) []string {
	lines := make([]string, 0, len(item.choices)+1)
	lines = append(lines, fmt.Sprintf("Question %d: %s", number, item.question))

	for j, choice := range item.choices {
		lines = append(lines, fmt.Sprintf("     %d: %s", j+1, choice))
	}

	return lines
}
