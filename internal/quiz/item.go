package quiz

import (
	"fmt"
	"slices"
	"strings"
)

// Item представляет один вопрос квиза: текст, варианты ответа и правильный ответ.
// Правильный ответ всегда входит в варианты, все сеттеры проверяют это до изменения.
type Item struct {
	question string
	choices  []string
	answer   string
}

// NewItem создаёт вопрос и проверяет его корректность.
func NewItem(question string, choices []string, answer string) (*Item, error) {
	if err := validateQuestion(question); err != nil {
		return nil, err
	}

	if len(choices) == 0 {
		return nil, fmt.Errorf("%w: choices must be a non-empty list", ErrInvalidArgument)
	}

	if !slices.Contains(choices, answer) {
		return nil, fmt.Errorf("%w: answer must match one of the provided choices", ErrInvalidArgument)
	}

	return &Item{
		question: question,
		choices:  slices.Clone(choices),
		answer:   answer,
	}, nil
}

// Question возвращает текст вопроса.
func (it *Item) Question() string {
	return it.question
}

// Choices возвращает копию вариантов ответа.
func (it *Item) Choices() []string {
	return slices.Clone(it.choices)
}

// Answer возвращает правильный ответ.
func (it *Item) Answer() string {
	return it.answer
}

// SetQuestion заменяет текст вопроса.
func (it *Item) SetQuestion(question string) error {
	if err := validateQuestion(question); err != nil {
		return err
	}

	it.question = question

	return nil
}

// SetChoices заменяет варианты ответа.
// Текущий правильный ответ должен остаться среди новых вариантов,
// для одновременной замены используйте SetChoicesWithAnswer.
func (it *Item) SetChoices(choices []string) error {
	if len(choices) == 0 {
		return fmt.Errorf("%w: the choices cannot be empty", ErrInvalidArgument)
	}

	if !slices.Contains(choices, it.answer) {
		return fmt.Errorf("%w: new choices must include the current answer %q", ErrInvalidArgument, it.answer)
	}

	it.choices = slices.Clone(choices)

	return nil
}

// SetChoicesWithAnswer заменяет варианты ответа и правильный ответ за один вызов.
func (it *Item) SetChoicesWithAnswer(choices []string, answer string) error {
	if len(choices) == 0 {
		return fmt.Errorf("%w: the choices cannot be empty", ErrInvalidArgument)
	}

	if !slices.Contains(choices, answer) {
		return fmt.Errorf("%w: answer must match one of the provided choices", ErrInvalidArgument)
	}

	it.choices = slices.Clone(choices)
	it.answer = answer

	return nil
}

// SetAnswer заменяет правильный ответ, если он есть среди текущих вариантов.
func (it *Item) SetAnswer(answer string) error {
	if !slices.Contains(it.choices, answer) {
		return fmt.Errorf("%w: answer must match one of the choices", ErrInvalidArgument)
	}

	it.answer = answer

	return nil
}

// Matches сравнивает ответ пользователя с правильным без учёта регистра и пробелов по краям.
func (it *Item) Matches(userAnswer string) bool {
	return normalizeAnswer(it.answer) == normalizeAnswer(userAnswer)
}

// Render возвращает вопрос, пронумерованные варианты и правильный ответ.
func (it *Item) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\nChoices:\n", it.question)
	for i, choice := range it.choices {
		fmt.Fprintf(&b, "%d: %s\n", i+1, choice)
	}
	fmt.Fprintf(&b, "\nCorrect Answer: %s", it.answer)

	return b.String()
}

func (it *Item) String() string {
	return it.Render()
}

func validateQuestion(question string) error {
	if strings.TrimSpace(question) == "" {
		return fmt.Errorf("%w: the question description must be a non-empty string", ErrInvalidArgument)
	}

	return nil
}

func normalizeAnswer(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
