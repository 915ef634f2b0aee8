package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAnswerKey(t *testing.T) {
	t.Run("Single correct option per question", func(t *testing.T) {
		rows := []CorrectAnswer{
			{QuestionID: 1, OptionID: 11},
			{QuestionID: 2, OptionID: 23},
		}
		key := BuildAnswerKey(rows)
		assert.Len(t, key, 2)
		assert.Equal(t, "11", key["1"])
		assert.Equal(t, "23", key["2"])
	})

	t.Run("Multiple correct options keep the lowest option id", func(t *testing.T) {
		// Rows arrive ordered by option id; the first one wins.
		rows := []CorrectAnswer{
			{QuestionID: 1, OptionID: 11},
			{QuestionID: 1, OptionID: 14},
		}
		key := BuildAnswerKey(rows)
		assert.Len(t, key, 1)
		assert.Equal(t, "11", key["1"])
	})

	t.Run("No rows yields empty key", func(t *testing.T) {
		key := BuildAnswerKey(nil)
		assert.Empty(t, key)
	})
}

func TestAnswerKey_Grade(t *testing.T) {
	t.Run("Perfect submission scores total", func(t *testing.T) {
		key := BuildAnswerKey([]CorrectAnswer{
			{QuestionID: 1, OptionID: 11},
			{QuestionID: 2, OptionID: 23},
			{QuestionID: 3, OptionID: 31},
		})
		result := key.Grade([]SubmittedAnswer{
			{QuestionID: 1, OptionID: 11},
			{QuestionID: 2, OptionID: 23},
			{QuestionID: 3, OptionID: 31},
		})
		assert.Equal(t, ScoreResult{Score: 3, Total: 3}, result)
	})

	t.Run("Partial match", func(t *testing.T) {
		// Q1 correct=O1, Q2 correct=O3; submission [{Q1,O1},{Q2,O9}] -> 1/2
		key := BuildAnswerKey([]CorrectAnswer{
			{QuestionID: 1, OptionID: 1},
			{QuestionID: 2, OptionID: 3},
		})
		result := key.Grade([]SubmittedAnswer{
			{QuestionID: 1, OptionID: 1},
			{QuestionID: 2, OptionID: 9},
		})
		assert.Equal(t, ScoreResult{Score: 1, Total: 2}, result)
	})

	t.Run("Unknown question ids contribute nothing", func(t *testing.T) {
		key := BuildAnswerKey([]CorrectAnswer{{QuestionID: 1, OptionID: 11}})
		result := key.Grade([]SubmittedAnswer{
			{QuestionID: 1, OptionID: 11},
			{QuestionID: 999, OptionID: 11},
			{QuestionID: 1000, OptionID: 1},
		})
		assert.Equal(t, ScoreResult{Score: 1, Total: 1}, result)
	})

	t.Run("Duplicate question ids each count", func(t *testing.T) {
		// Documented quirk: [{Q1,O1},{Q1,O1}] against a quiz with only Q1
		// yields score 2, total 1.
		key := BuildAnswerKey([]CorrectAnswer{{QuestionID: 1, OptionID: 1}})
		result := key.Grade([]SubmittedAnswer{
			{QuestionID: 1, OptionID: 1},
			{QuestionID: 1, OptionID: 1},
		})
		assert.Equal(t, ScoreResult{Score: 2, Total: 1}, result)
	})

	t.Run("Quiz with no questions grades to zero over zero", func(t *testing.T) {
		key := BuildAnswerKey(nil)
		result := key.Grade([]SubmittedAnswer{{QuestionID: 1, OptionID: 1}})
		assert.Equal(t, ScoreResult{Score: 0, Total: 0}, result)
	})

	t.Run("Grading is deterministic for identical inputs", func(t *testing.T) {
		key := BuildAnswerKey([]CorrectAnswer{
			{QuestionID: 1, OptionID: 2},
			{QuestionID: 2, OptionID: 4},
		})
		answers := []SubmittedAnswer{
			{QuestionID: 1, OptionID: 2},
			{QuestionID: 2, OptionID: 5},
		}
		first := key.Grade(answers)
		second := key.Grade(answers)
		assert.Equal(t, first, second)
	})
}
