package model

import "strings"

// Mood 是情绪识别端点返回的标签。
type Mood string

const (
	MoodHappy   Mood = "Happy"
	MoodSad     Mood = "Sad"
	MoodAngry   Mood = "Angry"
	MoodAnxious Mood = "Anxious"
	MoodCalm    Mood = "Calm"
	MoodExcited Mood = "Excited"
	MoodNeutral Mood = "Neutral"
)

// Moods 按提示词中的顺序列出全部标签。
var Moods = []Mood{MoodHappy, MoodSad, MoodAngry, MoodAnxious, MoodCalm, MoodExcited, MoodNeutral}

// ParseMood 将模型输出规范化为标签，例如 " sad." -> Sad。无法识别时 ok 为 false。
func ParseMood(s string) (Mood, bool) {
	word := strings.TrimFunc(strings.TrimSpace(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
	})
	for _, m := range Moods {
		if strings.EqualFold(word, string(m)) {
			return m, true
		}
	}
	return "", false
}
