package journal_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
	"github.com/KirkDiggler/monster-api/internal/errors"
	"github.com/KirkDiggler/monster-api/internal/orchestrators/journal"
	"github.com/KirkDiggler/monster-api/internal/repositories/tuxepedia"
	tuxepediamock "github.com/KirkDiggler/monster-api/internal/repositories/tuxepedia/mock"
	"github.com/KirkDiggler/monster-api/internal/testutils"
)

type JournalTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *tuxepediamock.MockRepository
	orchestrator journal.Service
	ctx          context.Context
}

func TestJournalTestSuite(t *testing.T) {
	suite.Run(t, new(JournalTestSuite))
}

func (s *JournalTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = tuxepediamock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()

	o, err := journal.NewOrchestrator(&journal.Config{
		Monsters:      testutils.NewMonsterCatalog(s.T(), testutils.FixtureMonsters()),
		TuxepediaRepo: s.mockRepo,
	})
	s.Require().NoError(err)
	s.orchestrator = o
}

func (s *JournalTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *JournalTestSuite) TestNewOrchestratorValidation() {
	_, err := journal.NewOrchestrator(&journal.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Monsters")
	s.Contains(err.Error(), "TuxepediaRepo")
}

func (s *JournalTestSuite) TestListEntries() {
	s.mockRepo.EXPECT().
		Get(s.ctx, tuxepedia.GetInput{PlayerID: "player-1"}).
		Return(&tuxepedia.GetOutput{Statuses: map[string]tuxemon.SeenStatus{
			"rockitten": tuxemon.SeenStatusCaught,
			"fruitera":  tuxemon.SeenStatusSeen,
			"prototype": tuxemon.SeenStatusSeen,
		}}, nil)

	out, err := s.orchestrator.ListEntries(s.ctx, &journal.ListEntriesInput{PlayerID: "player-1"})
	s.Require().NoError(err)
	s.Equal([]*tuxemon.JournalEntry{
		{Slug: "bigfin", TxmnID: 1, Status: tuxemon.SeenStatusUnseen},
		{Slug: "fruitera", TxmnID: 2, Status: tuxemon.SeenStatusSeen},
		{Slug: "rockitten", TxmnID: 3, Status: tuxemon.SeenStatusCaught},
	}, out.Entries)
	s.Equal(2, out.Seen)
	s.Equal(1, out.Caught)
}

func (s *JournalTestSuite) TestListEntriesErrors() {
	_, err := s.orchestrator.ListEntries(s.ctx, &journal.ListEntriesInput{})
	s.True(errors.IsInvalidArgument(err))

	s.mockRepo.EXPECT().
		Get(s.ctx, gomock.Any()).
		Return(nil, fmt.Errorf("connection refused"))
	_, err = s.orchestrator.ListEntries(s.ctx, &journal.ListEntriesInput{PlayerID: "player-1"})
	s.True(errors.IsInternal(err))
}

func (s *JournalTestSuite) TestRecordEncounter() {
	s.mockRepo.EXPECT().
		Record(s.ctx, tuxepedia.RecordInput{
			PlayerID: "player-1",
			Slug:     "rockitten",
			Status:   tuxemon.SeenStatusSeen,
		}).
		Return(&tuxepedia.RecordOutput{Status: tuxemon.SeenStatusCaught}, nil)

	out, err := s.orchestrator.RecordEncounter(s.ctx, &journal.RecordEncounterInput{
		PlayerID: "player-1",
		Slug:     "rockitten",
		Status:   tuxemon.SeenStatusSeen,
	})
	s.Require().NoError(err)
	s.Equal(tuxemon.SeenStatusCaught, out.Status)
}

func (s *JournalTestSuite) TestRecordEncounterErrors() {
	testCases := []struct {
		name  string
		input *journal.RecordEncounterInput
		check func(error) bool
	}{
		{
			name:  "unknown species",
			input: &journal.RecordEncounterInput{PlayerID: "player-1", Slug: "missingno", Status: tuxemon.SeenStatusSeen},
			check: errors.IsNotFound,
		},
		{
			name:  "missing player",
			input: &journal.RecordEncounterInput{Slug: "rockitten", Status: tuxemon.SeenStatusSeen},
			check: errors.IsInvalidArgument,
		},
		{
			name:  "unseen status",
			input: &journal.RecordEncounterInput{PlayerID: "player-1", Slug: "rockitten", Status: tuxemon.SeenStatusUnseen},
			check: errors.IsInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.RecordEncounter(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(tc.check(err))
		})
	}
}
