package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/letsssgooo/quizrunner/internal/quiz"
)

// LineAsker реализует quiz.Asker для терминала: печатает вопрос и читает одну строку.
// Чтение строки идёт в отдельной горутине, чтобы Ask можно было прервать через ctx.
// Незавершённое чтение переходит к следующему вызову Ask.
type LineAsker struct {
	in      *bufio.Reader
	out     io.Writer
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

// NewLineAsker создаёт LineAsker, читающий ответы из in и печатающий вопросы в out.
func NewLineAsker(in io.Reader, out io.Writer) *LineAsker {
	return &LineAsker{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask печатает prompt и возвращает введённую строку без перевода строки.
func (a *LineAsker) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if _, err := fmt.Fprintf(a.out, "%s\n> ", prompt); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}

	if a.pending == nil {
		a.pending = make(chan readResult, 1)
		go func(res chan<- readResult) {
			line, err := a.in.ReadString('\n')
			res <- readResult{line: line, err: err}
		}(a.pending)
	}

	var res readResult
	select {
	case res = <-a.pending:
		a.pending = nil
	case <-ctx.Done():
		return "", ctx.Err()
	}

	line, err := res.line, res.err
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read answer: %w", err)
		}

		if line == "" {
			return "", fmt.Errorf("read answer: %w", io.ErrUnexpectedEOF)
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// Reporter реализует quiz.Reporter: печатает вердикт цветом.
type Reporter struct {
	out     io.Writer
	correct *color.Color
	wrong   *color.Color
}

// NewReporter создаёт Reporter, печатающий в out.
// Цвета отключаются через color.NoColor.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:     out,
		correct: color.New(color.FgGreen, color.Bold),
		wrong:   color.New(color.FgRed, color.Bold),
	}
}

// Report печатает "Correct" или "Incorrect" отдельной строкой.
func (r *Reporter) Report(v quiz.Verdict) error {
	c := r.wrong
	if v == quiz.Correct {
		c = r.correct
	}

	if _, err := c.Fprintln(r.out, string(v)); err != nil {
		return fmt.Errorf("write verdict: %w", err)
	}

	return nil
}

var (
	_ quiz.Asker    = (*LineAsker)(nil)
	_ quiz.Reporter = (*Reporter)(nil)
)
