package toggle

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// fakeRelation 内存中的关系表
type fakeRelation struct {
	rows      map[[2]int64]bool
	createErr error
	existsErr error
	deleteErr error
	creates   int
	deletes   int
}

func newFakeRelation() *fakeRelation {
	return &fakeRelation{rows: make(map[[2]int64]bool)}
}

func (f *fakeRelation) Exists(ctx context.Context, targetId, actorId int64) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.rows[[2]int64{targetId, actorId}], nil
}

func (f *fakeRelation) Create(ctx context.Context, targetId, actorId int64) error {
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	f.rows[[2]int64{targetId, actorId}] = true
	return nil
}

func (f *fakeRelation) Delete(ctx context.Context, targetId, actorId int64) error {
	f.deletes++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.rows, [2]int64{targetId, actorId})
	return nil
}

func TestToggleOscillation(t *testing.T) {
	ctx := context.Background()
	rel := newFakeRelation()

	active, err := Toggle(ctx, rel, 100, 1)
	assert.NoError(t, err)
	assert.True(t, active)

	active, err = Toggle(ctx, rel, 100, 1)
	assert.NoError(t, err)
	assert.False(t, active)

	active, err = Toggle(ctx, rel, 100, 1)
	assert.NoError(t, err)
	assert.True(t, active)

	assert.Equal(t, 2, rel.creates)
	assert.Equal(t, 1, rel.deletes)
}

func TestToggleIndependentPairs(t *testing.T) {
	ctx := context.Background()
	rel := newFakeRelation()

	_, err := Toggle(ctx, rel, 100, 1)
	assert.NoError(t, err)

	// 另一个用户对同一目标 互不影响
	active, err := Toggle(ctx, rel, 100, 2)
	assert.NoError(t, err)
	assert.True(t, active)

	active, err = Toggle(ctx, rel, 100, 1)
	assert.NoError(t, err)
	assert.False(t, active)
	assert.True(t, rel.rows[[2]int64{100, 2}])
}

func TestToggleDuplicateKeyTreatedAsActive(t *testing.T) {
	ctx := context.Background()
	rel := newFakeRelation()
	rel.createErr = gorm.ErrDuplicatedKey

	active, err := Toggle(ctx, rel, 100, 1)
	assert.NoError(t, err)
	assert.True(t, active)
}

func TestToggleErrorPaths(t *testing.T) {
	ctx := context.Background()

	rel := newFakeRelation()
	rel.existsErr = errors.New("db gone")
	_, err := Toggle(ctx, rel, 100, 1)
	assert.Error(t, err)

	rel = newFakeRelation()
	rel.createErr = errors.New("insert failed")
	_, err = Toggle(ctx, rel, 100, 1)
	assert.Error(t, err)

	rel = newFakeRelation()
	rel.rows[[2]int64{100, 1}] = true
	rel.deleteErr = errors.New("delete failed")
	_, err = Toggle(ctx, rel, 100, 1)
	assert.Error(t, err)
}
