package owned

import (
	"context"
	"strings"

	"VidTube.com/pkg/errno"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Entity 可被所有权校验的实体
type Entity interface {
	Owner() int64
}

// Store 单实体的加载与持久化
type Store[T Entity] interface {
	Load(ctx context.Context, id int64) (T, error)
	Save(ctx context.Context, entity T) error
	Delete(ctx context.Context, id int64) error
}

// CheckContent 校验更新内容 去除空白后不可为空
func CheckContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errno.EmptyContentErr
	}
	return nil
}

// Check 所有权校验 需要先拿到实体再做副作用的调用方使用
func Check(entity Entity, userId int64) error {
	if entity.Owner() != userId {
		return errno.PermissionErr
	}
	return nil
}

// Update loads the entity, verifies the requester owns it, applies the
// mutation and persists it. A non-owner always gets PermissionErr; the
// ownership check is never folded into the query filter so a mismatch
// is a distinguishable denial, not a silent no-op.
func Update[T Entity](ctx context.Context, store Store[T], id, userId int64, apply func(T)) (T, error) {
	var zero T
	entity, err := store.Load(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, errno.RecordNotExistErr
		}
		return zero, errors.WithMessage(err, "owned: load entity failed")
	}
	if entity.Owner() != userId {
		return zero, errno.PermissionErr
	}
	apply(entity)
	if err := store.Save(ctx, entity); err != nil {
		return zero, errors.WithMessage(err, "owned: save entity failed")
	}
	return entity, nil
}

// Delete 同Update 先校验所有权再删除
func Delete[T Entity](ctx context.Context, store Store[T], id, userId int64) error {
	entity, err := store.Load(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.RecordNotExistErr
		}
		return errors.WithMessage(err, "owned: load entity failed")
	}
	if entity.Owner() != userId {
		return errno.PermissionErr
	}
	if err := store.Delete(ctx, id); err != nil {
		return errors.WithMessage(err, "owned: delete entity failed")
	}
	return nil
}
