package toggle

import (
	"context"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Relation 一对(target, actor)之间的关系存储
// Like和Subscription各自实现 toggle逻辑只写一处
type Relation interface {
	Exists(ctx context.Context, targetId, actorId int64) (bool, error)
	Create(ctx context.Context, targetId, actorId int64) error
	Delete(ctx context.Context, targetId, actorId int64) error
}

// Toggle flips the relation record for (targetId, actorId): present
// records are deleted, absent records are created. The returned bool is
// the state after the call. Exactly one write is issued.
//
// Two concurrent toggles can both observe "absent"; the unique index on
// the relation table makes the second insert fail with
// gorm.ErrDuplicatedKey, which is reinterpreted as "already active"
// rather than surfaced.
func Toggle(ctx context.Context, rel Relation, targetId, actorId int64) (bool, error) {
	exist, err := rel.Exists(ctx, targetId, actorId)
	if err != nil {
		return false, errors.WithMessage(err, "toggle: check relation failed")
	}

	if exist {
		if err := rel.Delete(ctx, targetId, actorId); err != nil {
			return false, errors.WithMessage(err, "toggle: delete relation failed")
		}
		return false, nil
	}

	if err := rel.Create(ctx, targetId, actorId); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// 并发下的重复插入 视为已点赞/已订阅
			hlog.CtxWarnf(ctx, "duplicate relation for target=%d actor=%d, treated as active", targetId, actorId)
			return true, nil
		}
		return false, errors.WithMessage(err, "toggle: create relation failed")
	}
	return true, nil
}
