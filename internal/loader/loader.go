package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/letsssgooo/quizrunner/internal/quiz"
)

// LoadFile читает файл с квизом и создаёт квиз.
// Файлы с расширением .json разбираются как JSON, остальные как YAML.
func LoadFile(path string) (*quiz.Quiz, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz file: %w", err)
	}

	q, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("can not load quiz %s: %w", path, err)
	}

	slog.Debug("quiz loaded", "path", path, "title", q.Name(), "questions", q.Len())

	return q, nil
}

// FormatFromPath определяет формат файла по расширению.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}

	return FormatYAML
}

// Parse разбирает описание квиза и создаёт квиз.
func Parse(data []byte, format Format) (*quiz.Quiz, error) {
	var (
		def Definition
		err error
	)

	switch format {
	case FormatJSON:
		def, err = parseJSON(data)
	case FormatYAML:
		def, err = parseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	if err != nil {
		return nil, err
	}

	if err = isCorrectDefinition(&def); err != nil {
		return nil, err
	}

	return build(&def)
}

func build(def *Definition) (*quiz.Quiz, error) {
	q := quiz.NewQuiz(strings.TrimSpace(def.Title))

	for i, question := range def.Questions {
		item, err := quiz.NewItem(question.Text, question.Options, question.correctAnswer())
		if err != nil {
			return nil, fmt.Errorf("%w, question %d: %w", ErrValidation, i+1, err)
		}

		if err = q.AddItem(item); err != nil {
			return nil, err
		}
	}

	return q, nil
}

func parseJSON(data []byte) (Definition, error) {
	var def Definition

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&def); err != nil {
		return Definition{}, fmt.Errorf("parse json: %w", err)
	}

	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return Definition{}, errors.New("parse json: multiple documents are not supported")
		}

		return Definition{}, fmt.Errorf("parse json: %w", err)
	}

	return def, nil
}

func parseYAML(data []byte) (Definition, error) {
	var def Definition

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&def); err != nil {
		return Definition{}, fmt.Errorf("parse yaml: %w", err)
	}

	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			return Definition{}, errors.New("parse yaml: multiple documents are not supported")
		}

		return Definition{}, fmt.Errorf("parse yaml: %w", err)
	}

	return def, nil
}
