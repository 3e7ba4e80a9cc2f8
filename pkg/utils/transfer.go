package utils

import (
	"strconv"

	"VidTube.com/pkg/errno"
)

// Transfer 将jwt载荷中的用户ID还原为int64
func Transfer(value interface{}) int64 {
	switch v := value.(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	case string:
		if intValue, err := strconv.ParseInt(v, 10, 64); err == nil {
			return intValue
		}
	}
	return -1
}

// ParseId 校验路径参数中的实体ID 格式不合法时不触碰存储层
func ParseId(v string) (int64, error) {
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, errno.InvalidIdErr
	}
	return id, nil
}

// CheckId 校验已解析的实体ID
func CheckId(id int64) error {
	if id <= 0 {
		return errno.InvalidIdErr
	}
	return nil
}
