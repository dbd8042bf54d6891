package quiz

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Correct возвращает количество правильных ответов.
func (r *Result) Correct() int {
	return r.Total - len(r.Mistakes)
}

// Summary возвращает текстовый итог: процент и разбор неправильных ответов.
func (r *Result) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "You scored %s%% on the quiz!\n", formatScore(r.Score))
	b.WriteString("You answered the following questions incorrectly:\n")
	for _, m := range r.Mistakes {
		fmt.Fprintf(&b, "Question: %s\nCorrect Answer: %s\nYour Answer: %s\n",
			m.Question, m.CorrectAnswer, m.GivenAnswer)
	}

	return b.String()
}

// ExportCSV экспортирует неправильные ответы в CSV.
func (r *Result) ExportCSV() ([]byte, error) {
	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"Number", "Question", "CorrectAnswer", "YourAnswer"})

	for _, m := range r.Mistakes {
		_ = w.Write([]string{
			strconv.Itoa(m.Number),
			m.Question,
			m.CorrectAnswer,
			m.GivenAnswer,
		})
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush buffer: %w", err)
	}

	return buf.Bytes(), nil
}

// score считает процент правильных ответов с округлением до сотых,
// половины округляются к чётному.
func score(wrong, total int) float64 {
	ratio := (1 - float64(wrong)/float64(total)) * 100
	return math.RoundToEven(ratio*100) / 100
}

// formatScore печатает целые значения с одним знаком после точки (50.0),
// остальные без лишних нулей (66.67).
func formatScore(s float64) string {
	if s == math.Trunc(s) {
		return strconv.FormatFloat(s, 'f', 1, 64)
	}

	return strconv.FormatFloat(s, 'f', -1, 64)
}
