//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"meeting-room-api/internal/pkg/errs"

	cr "github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	t.Run("基本成功ケース: 標準のerrors.Isでセンチネルを判定できる", func(t *testing.T) {
		cause := errs.New("DUPLICATE_KEY: duplicate email")
		marked := errs.Mark(cause, errs.ErrEmailTaken)

		require.Error(t, marked)
		assert.True(t, errors.Is(marked, errs.ErrEmailTaken))
		assert.True(t, cr.Is(marked, errs.ErrEmailTaken))
	})

	t.Run("元のエラーも判定できる", func(t *testing.T) {
		cause := errs.New("constraint violated")
		marked := errs.Mark(cause, errs.ErrRoomConflict)

		assert.True(t, errors.Is(marked, cause))
	})

	t.Run("nilエラーはセンチネルそのものになる", func(t *testing.T) {
		marked := errs.Mark(nil, errs.ErrReservationNotFound)
		assert.Equal(t, errs.ErrReservationNotFound, marked)
	})

	t.Run("多段のMarkでも外側のセンチネルを判定できる", func(t *testing.T) {
		cause := errs.New("no rows")
		inner := errs.Mark(cause, errs.ErrUserNotFound)
		outer := errs.Mark(inner, errs.ErrDatabaseOperationFailed)

		assert.True(t, errors.Is(outer, errs.ErrDatabaseOperationFailed))
		assert.True(t, errors.Is(outer, errs.ErrUserNotFound))
	})
}

func TestWrap(t *testing.T) {
	t.Run("nilはnilのまま", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "context"))
	})

	t.Run("ラップ後も元のエラーを判定できる", func(t *testing.T) {
		cause := errs.New("boom")
		wrapped := errs.Wrap(cause, "while saving")

		assert.True(t, errors.Is(wrapped, cause))
		assert.Contains(t, wrapped.Error(), "while saving")
	})
}
