//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	reqdto "meeting-room-api/internal/handler/dto/request"
	"meeting-room-api/internal/infra"
	"meeting-room-api/internal/pkg/clock"
	"meeting-room-api/internal/pkg/errs"
	"meeting-room-api/internal/usecase/commands"
	"meeting-room-api/tests/common/builder"
	commandsmock "meeting-room-api/tests/mock/commands"
	queriesmock "meeting-room-api/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockRepo      *commandsmock.MockReservationRepository
	mockReadStore *queriesmock.MockReservationReadStore
	clock         *clock.MockClock
	cmds          commands.ReservationCommands
}

func (s *ReservationCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = commandsmock.NewMockReservationRepository(s.mockCtrl)
	s.mockReadStore = queriesmock.NewMockReservationReadStore(s.mockCtrl)
	s.clock = clock.NewMockClock(builder.BaseTime)
	s.cmds = commands.NewReservationCommands(s.mockRepo, s.mockReadStore, s.clock)
}

func (s *ReservationCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationCommandsSuite(t *testing.T) {
	suite.Run(t, new(ReservationCommandsTestSuite))
}

func requestWithRoomID(roomID string) reqdto.UpdateReservationRequest {
	return reqdto.UpdateReservationRequest{RoomID: &roomID}
}

func requestWithSlot(start, end time.Time) reqdto.UpdateReservationRequest {
	return reqdto.UpdateReservationRequest{StartTime: &start, EndTime: &end}
}

func (s *ReservationCommandsTestSuite) TestCreate() {
	ctx := context.Background()
	userID := uuid.New()

	s.Run("空きルームで予約成功", func() {
		b := builder.NewReservationBuilder().WithUserID(userID)
		req := b.BuildCreateRequestDTO()
		view := b.BuildView()

		s.mockRepo.EXPECT().ExistsOverlapping(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(view, nil)

		result, err := s.cmds.Create(ctx, req, userID)
		s.Require().NoError(err)
		if diff := cmp.Diff(view, result); diff != "" {
			s.T().Errorf("ReservationView mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("重なる時間帯は競合で拒否", func() {
		// 既存 10:00-11:00 に対して 10:30-11:30
		b := builder.NewReservationBuilder().WithUserID(userID).WithSlot(
			builder.BaseTime.Add(90*time.Minute),
			builder.BaseTime.Add(150*time.Minute),
		)

		s.mockRepo.EXPECT().ExistsOverlapping(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil)

		_, err := s.cmds.Create(ctx, b.BuildCreateRequestDTO(), userID)
		s.ErrorIs(err, errs.ErrRoomConflict)
	})

	s.Run("別ルームなら同時間帯でも成功", func() {
		b := builder.NewReservationBuilder().WithUserID(userID).WithRoomID("room-b")
		view := b.BuildView()

		s.mockRepo.EXPECT().ExistsOverlapping(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(view, nil)

		result, err := s.cmds.Create(ctx, b.BuildCreateRequestDTO(), userID)
		s.Require().NoError(err)
		s.Equal("room-b", result.RoomID)
	})

	s.Run("過去開始は重複チェック前に拒否", func() {
		b := builder.NewReservationBuilder().WithUserID(userID)

		// 時計を予約開始時刻より後に進めて既定のスロットを過去にする
		s.clock.Set(b.StartTime.Add(time.Minute))
		defer s.clock.Set(builder.BaseTime)

		// リポジトリは一切呼ばれない
		_, err := s.cmds.Create(ctx, b.BuildCreateRequestDTO(), userID)
		s.ErrorIs(err, errs.ErrPastStartTime)
	})

	s.Run("1時間未満は拒否", func() {
		b := builder.NewReservationBuilder().WithUserID(userID).WithSlot(
			builder.BaseTime.Add(time.Hour),
			builder.BaseTime.Add(90*time.Minute),
		)

		_, err := s.cmds.Create(ctx, b.BuildCreateRequestDTO(), userID)
		s.ErrorIs(err, errs.ErrDurationTooShort)
	})

	s.Run("空のルームIDは拒否", func() {
		b := builder.NewReservationBuilder().WithUserID(userID).WithRoomID("  ")

		_, err := s.cmds.Create(ctx, b.BuildCreateRequestDTO(), userID)
		s.ErrorIs(err, errs.ErrDomainValidation)
	})

	s.Run("排他制約違反は競合として扱う", func() {
		// 事前チェックを通過した後、コミット時に排他制約で敗北したケース
		b := builder.NewReservationBuilder().WithUserID(userID)

		s.mockRepo.EXPECT().ExistsOverlapping(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil)
		s.mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("exclusion constraint violated", nil, infra.KindConflict))

		_, err := s.cmds.Create(ctx, b.BuildCreateRequestDTO(), userID)
		s.ErrorIs(err, errs.ErrRoomConflict)
	})
}

func (s *ReservationCommandsTestSuite) TestUpdate() {
	ctx := context.Background()
	owner := uuid.New()

	s.Run("所有者による部分更新成功", func() {
		b := builder.NewReservationBuilder().WithUserID(owner)
		existing := b.BuildReconstructed()
		view := b.BuildView()

		newRoom := "room-c"
		req := requestWithRoomID(newRoom)

		s.mockRepo.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)
		s.mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(view, nil)

		_, err := s.cmds.Update(ctx, existing.ID(), req, owner)
		s.NoError(err)
	})

	s.Run("更新では時間検証を再実行しない", func() {
		// 過去に開始する時間帯への変更も所有者なら通る
		b := builder.NewReservationBuilder().WithUserID(owner)
		existing := b.BuildReconstructed()
		view := b.BuildView()

		past := builder.BaseTime.Add(-24 * time.Hour)
		pastEnd := past.Add(30 * time.Minute)
		req := requestWithSlot(past, pastEnd)

		s.mockRepo.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)
		s.mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(view, nil)

		_, err := s.cmds.Update(ctx, existing.ID(), req, owner)
		s.NoError(err)
	})

	s.Run("他人の予約は更新不可", func() {
		existing := builder.NewReservationBuilder().WithUserID(owner).BuildReconstructed()

		s.mockRepo.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)

		_, err := s.cmds.Update(ctx, existing.ID(), requestWithRoomID("room-c"), uuid.New())
		s.ErrorIs(err, errs.ErrNotReservationOwner)
	})

	s.Run("存在しない予約は404相当", func() {
		id := uuid.New()
		s.mockRepo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		_, err := s.cmds.Update(ctx, id, requestWithRoomID("room-c"), owner)
		s.ErrorIs(err, errs.ErrReservationNotFound)
	})

	s.Run("排他制約違反は競合として扱う", func() {
		existing := builder.NewReservationBuilder().WithUserID(owner).BuildReconstructed()

		s.mockRepo.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)
		s.mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("exclusion constraint violated", nil, infra.KindConflict))

		_, err := s.cmds.Update(ctx, existing.ID(), requestWithRoomID("room-c"), owner)
		s.ErrorIs(err, errs.ErrRoomConflict)
	})
}

func (s *ReservationCommandsTestSuite) TestRemove() {
	ctx := context.Background()
	owner := uuid.New()

	s.Run("所有者による削除成功", func() {
		existing := builder.NewReservationBuilder().WithUserID(owner).BuildReconstructed()

		s.mockRepo.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)
		s.mockRepo.EXPECT().Delete(gomock.Any(), existing.ID()).Return(nil)

		s.NoError(s.cmds.Remove(ctx, existing.ID(), owner))
	})

	s.Run("他人の予約は削除不可", func() {
		existing := builder.NewReservationBuilder().WithUserID(owner).BuildReconstructed()

		s.mockRepo.EXPECT().FindByID(gomock.Any(), existing.ID()).Return(existing, nil)

		err := s.cmds.Remove(ctx, existing.ID(), uuid.New())
		s.ErrorIs(err, errs.ErrNotReservationOwner)
	})

	s.Run("存在しない予約は404相当", func() {
		id := uuid.New()
		s.mockRepo.EXPECT().FindByID(gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound))

		err := s.cmds.Remove(ctx, id, owner)
		s.ErrorIs(err, errs.ErrReservationNotFound)
	})
}
