package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem_Valid(t *testing.T) {
	choices := []string{"Paris", "Rome", "Berlin"}

	item, err := NewItem("Capital of France?", choices, "Paris")
	require.NoError(t, err)

	assert.Equal(t, "Capital of France?", item.Question())
	assert.Equal(t, []string{"Paris", "Rome", "Berlin"}, item.Choices())
	assert.Equal(t, "Paris", item.Answer())

	// Изменение исходного слайса не влияет на вопрос
	choices[0] = "Lyon"
	assert.Equal(t, "Paris", item.Choices()[0])
}

func TestNewItem_Invalid(t *testing.T) {
	testCases := []struct {
		name     string
		question string
		choices  []string
		answer   string
	}{
		{
			name:     "blank question",
			question: "   ",
			choices:  []string{"A", "B"},
			answer:   "A",
		},
		{
			name:     "nil choices",
			question: "Question?",
			choices:  nil,
			answer:   "A",
		},
		{
			name:     "empty choices",
			question: "Question?",
			choices:  []string{},
			answer:   "A",
		},
		{
			name:     "answer not among choices",
			question: "Question?",
			choices:  []string{"A", "B"},
			answer:   "C",
		},
		{
			name:     "answer differs by case",
			question: "Question?",
			choices:  []string{"Paris", "Rome"},
			answer:   "paris",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item, err := NewItem(tc.question, tc.choices, tc.answer)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Nil(t, item)
		})
	}
}

func TestNewItem_ErrorMessage(t *testing.T) {
	_, err := NewItem("Question?", []string{"A", "B"}, "C")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "answer must match one of the provided choices")
}

func TestItem_SetQuestion(t *testing.T) {
	item := mustItem(t, "Old?", []string{"A", "B"}, "A")

	require.NoError(t, item.SetQuestion("New?"))
	assert.Equal(t, "New?", item.Question())

	err := item.SetQuestion("")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "New?", item.Question())
}

func TestItem_SetChoices(t *testing.T) {
	item := mustItem(t, "Question?", []string{"A", "B"}, "A")

	require.NoError(t, item.SetChoices([]string{"C", "A", "D"}))
	assert.Equal(t, []string{"C", "A", "D"}, item.Choices())
	assert.Equal(t, "A", item.Answer())

	err := item.SetChoices(nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	err = item.SetChoices([]string{})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// Новые варианты без текущего ответа отклоняются, вопрос не меняется
	err = item.SetChoices([]string{"X", "Y"})
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, []string{"C", "A", "D"}, item.Choices())
	assert.Equal(t, "A", item.Answer())
}

func TestItem_SetChoicesWithAnswer(t *testing.T) {
	item := mustItem(t, "Question?", []string{"A", "B"}, "A")

	require.NoError(t, item.SetChoicesWithAnswer([]string{"X", "Y"}, "Y"))
	assert.Equal(t, []string{"X", "Y"}, item.Choices())
	assert.Equal(t, "Y", item.Answer())

	err := item.SetChoicesWithAnswer([]string{"P", "Q"}, "Z")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, []string{"X", "Y"}, item.Choices())
	assert.Equal(t, "Y", item.Answer())

	err = item.SetChoicesWithAnswer(nil, "Y")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestItem_SetAnswer(t *testing.T) {
	item := mustItem(t, "Question?", []string{"A", "B", "C"}, "A")

	require.NoError(t, item.SetAnswer("C"))
	assert.Equal(t, "C", item.Answer())

	err := item.SetAnswer("D")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, "C", item.Answer())
}

func TestItem_Matches(t *testing.T) {
	item := mustItem(t, "Capital of France?", []string{"Paris", "Rome"}, "Paris")

	assert.True(t, item.Matches("Paris"))
	assert.True(t, item.Matches("paris"))
	assert.True(t, item.Matches("  PARIS \n"))
	assert.False(t, item.Matches("Rome"))
	assert.False(t, item.Matches(""))
}

func TestItem_Render(t *testing.T) {
	item := mustItem(t, "Capital of France?", []string{"Paris", "Rome", "Berlin"}, "Paris")

	expected := "Question: Capital of France?\n" +
		"Choices:\n" +
		"1: Paris\n" +
		"2: Rome\n" +
		"3: Berlin\n" +
		"\n" +
		"Correct Answer: Paris"

	assert.Equal(t, expected, item.Render())
	assert.Equal(t, item.Render(), item.Render())
	assert.Equal(t, expected, item.String())
}

func mustItem(t *testing.T, question string, choices []string, answer string) *Item {
	t.Helper()

	item, err := NewItem(question, choices, answer)
	require.NoError(t, err)

	return item
}
