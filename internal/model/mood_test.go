package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMood(t *testing.T) {
	cases := map[string]Mood{
		"Happy":       MoodHappy,
		"  sad  ":     MoodSad,
		"ANGRY.":      MoodAngry,
		"\"Anxious\"": MoodAnxious,
		"**Calm**":    MoodCalm,
		"excited!\n":  MoodExcited,
		"Neutral":     MoodNeutral,
	}
	for in, want := range cases {
		got, ok := ParseMood(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "Joyful", "Happy and sad", "..."} {
		_, ok := ParseMood(in)
		assert.False(t, ok, in)
	}
}
