package loader

import (
	"fmt"
	"strings"
)

// isCorrectDefinition проверяет на корректность структуру квиза.
// Номера вопросов в ошибках начинаются с 1.
func isCorrectDefinition(def *Definition) error {
	if strings.TrimSpace(def.Title) == "" {
		return fmt.Errorf("%w, missing field title", ErrValidation)
	}

	if len(def.Questions) == 0 {
		return fmt.Errorf("%w, need at least one question", ErrValidation)
	}

	for i, question := range def.Questions {
		number := i + 1

		if strings.TrimSpace(question.Text) == "" {
			return fmt.Errorf("%w, missing field text of %d question", ErrValidation, number)
		}

		if len(question.Options) == 0 {
			return fmt.Errorf("%w, missing field options of %d question", ErrValidation, number)
		}

		if question.Answer == "" && question.Correct == nil {
			return fmt.Errorf("%w, missing field answer of %d question", ErrValidation, number)
		}

		if question.Answer != "" && question.Correct != nil {
			return fmt.Errorf("%w, only one of answer and correct can be set in %d question", ErrValidation, number)
		}

		if question.Correct == nil {
			continue
		}

		if *question.Correct < 0 {
			return fmt.Errorf("%w, index of correct answer must not be negative in %d question", ErrValidation, number)
		}

		if *question.Correct >= len(question.Options) {
			return fmt.Errorf("%w, index of correct answer in %d question is out of range", ErrValidation, number)
		}
	}

	return nil
}

// correctAnswer возвращает текст правильного ответа вопроса.
func (q Question) correctAnswer() string {
	if q.Correct != nil {
		return q.Options[*q.Correct]
	}

	return q.Answer
}
