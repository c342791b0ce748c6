package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"lead_dashboard/internal/domain"
	"lead_dashboard/internal/service/mocks"
)

type ArchiveServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	archive   *mocks.MockLeadArchive
	state     *mocks.MockArchiveStateStore
	txManager *mocks.MockTransactionManager
	publisher *mocks.MockPublisher

	service *ArchiveService
	logger  *slog.Logger
}

func (s *ArchiveServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.archive = mocks.NewMockLeadArchive(s.ctrl)
	s.state = mocks.NewMockArchiveStateStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	s.service = NewArchiveService(
		"http://backend",
		s.archive,
		s.state,
		s.txManager,
		s.publisher,
		s.logger,
	)
}

func (s *ArchiveServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestArchiveServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ArchiveServiceTestSuite))
}

func (s *ArchiveServiceTestSuite) passThroughTx(times int) {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).Times(times)
}

func (s *ArchiveServiceTestSuite) expectState(total int64, seq uint64) {
	s.state.EXPECT().Get(gomock.Any(), "http://backend").Return(&domain.ArchiveState{ID: 1, Backend: "http://backend", TotalArchived: total}, nil)
	s.state.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, st *domain.ArchiveState) error {
			s.Equal(int64(seq), st.LastSeq)
			s.False(st.LastArchivedAt.IsZero())
			return nil
		},
	)
}

func (s *ArchiveServiceTestSuite) TestArchive_NewLeads() {
	ctx := context.Background()
	lead := domain.Lead{Source: "facebook", UserID: "1", PostID: "p", Timestamp: "t", Priority: "High"}
	snap := domain.Snapshot{Seq: 3, Leads: []domain.Lead{lead}}

	s.archive.EXPECT().GetExisting(ctx, []uuid.UUID{lead.ID()}).Return(map[uuid.UUID]domain.Lead{}, nil)
	s.passThroughTx(1)
	s.archive.EXPECT().Upsert(ctx, &lead).Return(nil)
	s.publisher.EXPECT().Publish(ctx, &lead, true).Return(nil)
	s.expectState(0, 3)

	stats, err := s.service.Archive(ctx, snap)

	s.NoError(err)
	s.Equal(1, stats.Seen)
	s.Equal(1, stats.New)
	s.Equal(0, stats.Updated)
	s.Equal(0, stats.Skipped)
	s.Equal(1, stats.Published)
}

func (s *ArchiveServiceTestSuite) TestArchive_ChangedReplyIsUpdate() {
	ctx := context.Background()
	lead := domain.Lead{Source: "instagram", UserID: "2", Priority: "Medium", AIResponse: "new reply"}
	stored := lead
	stored.AIResponse = ""

	s.archive.EXPECT().GetExisting(ctx, gomock.Any()).Return(map[uuid.UUID]domain.Lead{lead.ID(): stored}, nil)
	s.passThroughTx(1)
	s.archive.EXPECT().Upsert(ctx, &lead).Return(nil)
	s.publisher.EXPECT().Publish(ctx, &lead, false).Return(nil)
	s.expectState(5, 1)

	stats, err := s.service.Archive(ctx, domain.Snapshot{Seq: 1, Leads: []domain.Lead{lead}})

	s.NoError(err)
	s.Equal(0, stats.New)
	s.Equal(1, stats.Updated)
}

func (s *ArchiveServiceTestSuite) TestArchive_EditedCommentIsUpdate() {
	ctx := context.Background()
	lead := domain.Lead{Source: "facebook", UserID: "8", Priority: "High", CommentText: "edited"}
	stored := lead
	stored.CommentText = "original"

	s.archive.EXPECT().GetExisting(ctx, gomock.Any()).Return(map[uuid.UUID]domain.Lead{lead.ID(): stored}, nil)
	s.passThroughTx(1)
	s.archive.EXPECT().Upsert(ctx, &lead).Return(nil)
	s.publisher.EXPECT().Publish(ctx, &lead, false).Return(nil)
	s.expectState(2, 6)

	stats, err := s.service.Archive(ctx, domain.Snapshot{Seq: 6, Leads: []domain.Lead{lead}})

	s.NoError(err)
	s.Equal(1, stats.Updated)
	s.Equal(0, stats.Skipped)
}

func (s *ArchiveServiceTestSuite) TestArchive_FirstRunSeedsTotalFromArchive() {
	ctx := context.Background()
	lead := domain.Lead{UserID: "9", Priority: "Low"}

	s.archive.EXPECT().GetExisting(ctx, gomock.Any()).Return(map[uuid.UUID]domain.Lead{}, nil)
	s.passThroughTx(1)
	s.archive.EXPECT().Upsert(ctx, &lead).Return(nil)
	s.publisher.EXPECT().Publish(ctx, &lead, true).Return(nil)
	s.state.EXPECT().Get(ctx, "http://backend").Return(&domain.ArchiveState{Backend: "http://backend"}, nil)
	s.archive.EXPECT().Count(ctx).Return(int64(42), nil)
	s.state.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, st *domain.ArchiveState) error {
			s.Equal(int64(42), st.TotalArchived)
			s.Equal(int64(2), st.LastSeq)
			return nil
		},
	)

	stats, err := s.service.Archive(ctx, domain.Snapshot{Seq: 2, Leads: []domain.Lead{lead}})

	s.NoError(err)
	s.Equal(1, stats.New)
}

func (s *ArchiveServiceTestSuite) TestArchive_FirstRunCountError() {
	ctx := context.Background()

	s.state.EXPECT().Get(ctx, "http://backend").Return(&domain.ArchiveState{Backend: "http://backend"}, nil)
	s.archive.EXPECT().Count(ctx).Return(int64(0), errors.New("db down"))

	_, err := s.service.Archive(ctx, domain.Snapshot{Seq: 1})

	s.Error(err)
	s.Contains(err.Error(), "count archived leads")
}

func (s *ArchiveServiceTestSuite) TestArchive_SkipsUnchanged() {
	ctx := context.Background()
	lead := domain.Lead{UserID: "3", Priority: "Low"}

	s.archive.EXPECT().GetExisting(ctx, gomock.Any()).Return(map[uuid.UUID]domain.Lead{lead.ID(): lead}, nil)
	s.expectState(1, 2)

	stats, err := s.service.Archive(ctx, domain.Snapshot{Seq: 2, Leads: []domain.Lead{lead}})

	s.NoError(err)
	s.Equal(1, stats.Skipped)
	s.Equal(0, stats.New+stats.Updated)
}

func (s *ArchiveServiceTestSuite) TestArchive_DuplicateLeadsStoredOnce() {
	ctx := context.Background()
	lead := domain.Lead{UserID: "4", PostID: "p"}

	s.archive.EXPECT().GetExisting(ctx, []uuid.UUID{lead.ID()}).Return(map[uuid.UUID]domain.Lead{}, nil)
	s.passThroughTx(1)
	s.archive.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any(), true).Return(nil)
	s.expectState(0, 1)

	stats, err := s.service.Archive(ctx, domain.Snapshot{Seq: 1, Leads: []domain.Lead{lead, lead}})

	s.NoError(err)
	s.Equal(2, stats.Seen)
	s.Equal(1, stats.New)
	s.Equal(1, stats.Skipped)
}

func (s *ArchiveServiceTestSuite) TestArchive_UpsertErrorCounted() {
	ctx := context.Background()
	lead := domain.Lead{UserID: "5"}

	s.archive.EXPECT().GetExisting(ctx, gomock.Any()).Return(map[uuid.UUID]domain.Lead{}, nil)
	s.passThroughTx(1)
	s.archive.EXPECT().Upsert(ctx, gomock.Any()).Return(errors.New("db down"))
	s.expectState(0, 1)

	stats, err := s.service.Archive(ctx, domain.Snapshot{Seq: 1, Leads: []domain.Lead{lead}})

	s.NoError(err)
	s.Equal(1, stats.Errors)
	s.Equal(0, stats.New)
	s.Equal(0, stats.Published)
}

func (s *ArchiveServiceTestSuite) TestArchive_LookupError() {
	ctx := context.Background()

	s.archive.EXPECT().GetExisting(ctx, gomock.Any()).Return(nil, errors.New("db error"))

	stats, err := s.service.Archive(ctx, domain.Snapshot{Leads: []domain.Lead{{UserID: "6"}}})

	s.Error(err)
	s.Nil(stats)
	s.Contains(err.Error(), "filter for archive")
}

func (s *ArchiveServiceTestSuite) TestArchive_PublisherNil() {
	ctx := context.Background()

	service := NewArchiveService("http://backend", s.archive, s.state, s.txManager, nil, s.logger)
	lead := domain.Lead{UserID: "7"}

	s.archive.EXPECT().GetExisting(ctx, gomock.Any()).Return(map[uuid.UUID]domain.Lead{}, nil)
	s.passThroughTx(1)
	s.archive.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
	s.expectState(0, 4)

	stats, err := service.Archive(ctx, domain.Snapshot{Seq: 4, Leads: []domain.Lead{lead}})

	s.NoError(err)
	s.Equal(1, stats.New)
	s.Equal(0, stats.Published)
}

func (s *ArchiveServiceTestSuite) TestObserve_IgnoresFailedAndStale() {
	s.service.Observe(domain.Snapshot{Seq: 1, LastError: errors.New("down")})
	s.service.Observe(domain.Snapshot{Seq: 1, Loading: true})
	s.Nil(s.service.pending)

	s.service.Observe(domain.Snapshot{Seq: 5})
	s.service.Observe(domain.Snapshot{Seq: 4})
	s.Require().NotNil(s.service.pending)
	s.Equal(uint64(5), s.service.pending.Seq)
}

func (s *ArchiveServiceTestSuite) TestRun_ArchivesQueuedSnapshot() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	s.state.EXPECT().Get(gomock.Any(), gomock.Any()).Return(&domain.ArchiveState{ID: 1}, nil)
	s.state.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, *domain.ArchiveState) error {
			close(done)
			return nil
		},
	)

	errCh := make(chan error, 1)
	go func() { errCh <- s.service.Run(ctx) }()

	s.service.Observe(domain.Snapshot{Seq: 1, Leads: []domain.Lead{}})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.Fail("archive did not run")
	}

	cancel()
	s.ErrorIs(<-errCh, context.Canceled)
}
