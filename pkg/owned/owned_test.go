package owned

import (
	"context"
	"testing"

	"VidTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type testNote struct {
	Id      int64
	UserId  int64
	Content string
}

func (n *testNote) Owner() int64 { return n.UserId }

// fakeNoteStore 内存中的单实体存储
type fakeNoteStore struct {
	notes   map[int64]*testNote
	saveErr error
}

func newFakeNoteStore(notes ...*testNote) *fakeNoteStore {
	s := &fakeNoteStore{notes: make(map[int64]*testNote)}
	for _, n := range notes {
		s.notes[n.Id] = n
	}
	return s
}

func (s *fakeNoteStore) Load(ctx context.Context, id int64) (*testNote, error) {
	n, ok := s.notes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return n, nil
}

func (s *fakeNoteStore) Save(ctx context.Context, n *testNote) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.notes[n.Id] = n
	return nil
}

func (s *fakeNoteStore) Delete(ctx context.Context, id int64) error {
	delete(s.notes, id)
	return nil
}

func TestUpdateByOwner(t *testing.T) {
	ctx := context.Background()
	store := newFakeNoteStore(&testNote{Id: 1, UserId: 42, Content: "old"})

	updated, err := Update[*testNote](ctx, store, 1, 42, func(n *testNote) {
		n.Content = "new"
	})
	assert.NoError(t, err)
	assert.Equal(t, "new", updated.Content)
	assert.Equal(t, "new", store.notes[1].Content)
}

func TestUpdateByNonOwnerForbidden(t *testing.T) {
	ctx := context.Background()
	store := newFakeNoteStore(&testNote{Id: 1, UserId: 42, Content: "old"})

	_, err := Update[*testNote](ctx, store, 1, 7, func(n *testNote) {
		n.Content = "new"
	})
	assert.ErrorIs(t, err, errno.PermissionErr)
	// 未持久化任何修改
	assert.Equal(t, "old", store.notes[1].Content)
}

func TestUpdateMissingEntity(t *testing.T) {
	ctx := context.Background()
	store := newFakeNoteStore()

	_, err := Update[*testNote](ctx, store, 99, 42, func(n *testNote) {})
	assert.ErrorIs(t, err, errno.RecordNotExistErr)
}

func TestDeleteByOwner(t *testing.T) {
	ctx := context.Background()
	store := newFakeNoteStore(&testNote{Id: 1, UserId: 42})

	err := Delete[*testNote](ctx, store, 1, 42)
	assert.NoError(t, err)
	assert.NotContains(t, store.notes, int64(1))
}

func TestDeleteByNonOwnerForbidden(t *testing.T) {
	ctx := context.Background()
	store := newFakeNoteStore(&testNote{Id: 1, UserId: 42})

	err := Delete[*testNote](ctx, store, 1, 7)
	assert.ErrorIs(t, err, errno.PermissionErr)
	assert.Contains(t, store.notes, int64(1))
}

func TestDeleteMissingEntity(t *testing.T) {
	ctx := context.Background()
	store := newFakeNoteStore()

	err := Delete[*testNote](ctx, store, 99, 42)
	assert.ErrorIs(t, err, errno.RecordNotExistErr)
}

func TestCheckContent(t *testing.T) {
	assert.NoError(t, CheckContent("hello"))
	assert.ErrorIs(t, CheckContent(""), errno.EmptyContentErr)
	assert.ErrorIs(t, CheckContent("   \t\n"), errno.EmptyContentErr)
}

func TestCheck(t *testing.T) {
	note := &testNote{Id: 1, UserId: 42}
	assert.NoError(t, Check(note, 42))
	assert.ErrorIs(t, Check(note, 7), errno.PermissionErr)
}
