// Package emoji 判断一段文本是否只由 emoji 组成。
package emoji

import "unicode"

const (
	variationSelector16 = '\uFE0F'
	keycap              = '\u20E3'
)

// keycapBase 报告 r 是否为 ASCII 键帽基字符（0-9、#、*）。
// 这些字符本身也带有 Emoji 属性，但单独出现时按普通文本处理。
func keycapBase(r rune) bool {
	return r == '#' || r == '*' || (r >= '0' && r <= '9')
}

// IsEmojiOnly 报告 s 是否非空且只包含 emoji 码位。
// 调用方负责事先去掉首尾空白；emoji 之间的空白或任何文字都会使结果为 false。
func IsEmojiOnly(s string) bool {
	runes := []rune(s)
	if len(runes) == 0 {
		return false
	}

	sawBase := false
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case keycapBase(r):
			// 1️⃣ = '1' [U+FE0F] U+20E3
			j := i + 1
			if j < len(runes) && runes[j] == variationSelector16 {
				j++
			}
			if j >= len(runes) || runes[j] != keycap {
				return false
			}
			i = j
			sawBase = true
		case unicode.Is(Pictographic, r):
			sawBase = true
		case unicode.Is(sequenceGlue, r):
			if !sawBase {
				return false
			}
		default:
			return false
		}
	}
	return sawBase
}
