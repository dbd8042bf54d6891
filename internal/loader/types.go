package loader

import "errors"

// Definition описывает файл с квизом в формате JSON или YAML.
type Definition struct {
	Title     string     `json:"title" yaml:"title"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question описывает один вопрос в файле.
// Правильный ответ задаётся либо текстом (answer), либо индексом варианта с 0 (correct).
type Question struct {
	Text    string   `json:"text" yaml:"text"`
	Options []string `json:"options" yaml:"options"`
	Answer  string   `json:"answer" yaml:"answer"`
	Correct *int     `json:"correct" yaml:"correct"`
}

// Format — формат файла с квизом.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrValidation возвращается, если файл с квизом составлен некорректно.
var ErrValidation = errors.New("validation error")
