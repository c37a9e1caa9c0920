package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// IsDuplicate 唯一键冲突判定。TranslateError 覆盖不到的驱动走字符串兜底
func IsDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
