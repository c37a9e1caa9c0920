package service

import (
	"fmt"
	"strings"
)

const wordsPerMinute = 200

// ReadingTime 以空白分词估算阅读时长，最少 1 分钟
func ReadingTime(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
