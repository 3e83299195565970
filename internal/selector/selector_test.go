package selector_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	catalogmock "github.com/KirkDiggler/monster-api/internal/catalog/mock"
	"github.com/KirkDiggler/monster-api/internal/entities/tuxemon"
	"github.com/KirkDiggler/monster-api/internal/errors"
	"github.com/KirkDiggler/monster-api/internal/selector"
	"github.com/KirkDiggler/monster-api/internal/testutils"
)

type SelectorTestSuite struct {
	suite.Suite
}

func TestSelectorSuite(t *testing.T) {
	suite.Run(t, new(SelectorTestSuite))
}

func (s *SelectorTestSuite) newSelector(techniques []*tuxemon.Technique, roller *testutils.ScriptedRoller) selector.Service {
	cfg := &selector.Config{
		Techniques: testutils.NewTechniqueCatalog(s.T(), techniques),
	}
	if roller != nil {
		cfg.Roller = roller
	}
	svc, err := selector.New(cfg)
	s.Require().NoError(err)
	return svc
}

func abcCatalog() []*tuxemon.Technique {
	return []*tuxemon.Technique{
		{Slug: "A", Types: []tuxemon.ElementType{tuxemon.ElementFire}, Randomly: true},
		{Slug: "B", Types: []tuxemon.ElementType{tuxemon.ElementFire}, Randomly: false},
		{Slug: "C", Types: []tuxemon.ElementType{tuxemon.ElementWater}, Randomly: true},
	}
}

func (s *SelectorTestSuite) TestNewValidation() {
	_, err := selector.New(nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = selector.New(&selector.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Techniques: is required")
}

func (s *SelectorTestSuite) TestOnlyLearnableMatchingTechnique() {
	roller := testutils.NewScriptedRoller()
	svc := s.newSelector(abcCatalog(), roller)

	result, err := svc.SelectRandomTechnique(&selector.SelectRandomTechniqueInput{
		Element: tuxemon.ElementFire,
	})
	s.Require().NoError(err)
	s.Equal(&tuxemon.SelectionResult{Success: true, Slug: "A"}, result)
	s.Empty(roller.Sizes(), "a single candidate needs no roll")
}

func (s *SelectorTestSuite) TestKnownCandidateLeavesNothing() {
	svc := s.newSelector(abcCatalog(), testutils.NewScriptedRoller())

	result, err := svc.SelectRandomTechnique(&selector.SelectRandomTechniqueInput{
		Element: tuxemon.ElementFire,
		Known:   []string{"A"},
	})
	s.Require().NoError(err)
	s.False(result.Success)
	s.Empty(result.Slug)
}

func (s *SelectorTestSuite) TestNoTechniquesOfElement() {
	svc := s.newSelector(abcCatalog(), testutils.NewScriptedRoller())

	result, err := svc.SelectRandomTechnique(&selector.SelectRandomTechniqueInput{
		Element: tuxemon.ElementMetal,
	})
	s.Require().NoError(err)
	s.False(result.Success)
}

func (s *SelectorTestSuite) TestRollPicksByCatalogOrder() {
	// fire candidates in order: fire_claw, ember, flame_ring, steam
	testCases := []struct {
		name     string
		known    []string
		roll     int
		wantSize int
		want     string
	}{
		{name: "first", roll: 1, wantSize: 4, want: testutils.TechniqueFireClaw},
		{name: "last", roll: 4, wantSize: 4, want: testutils.TechniqueSteam},
		{
			name:     "known ones are skipped",
			known:    []string{testutils.TechniqueFireClaw, testutils.TechniqueSplash},
			roll:     1,
			wantSize: 3,
			want:     testutils.TechniqueEmber,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			roller := testutils.NewScriptedRoller(tc.roll)
			svc := s.newSelector(testutils.FixtureTechniques(), roller)

			result, err := svc.SelectRandomTechnique(&selector.SelectRandomTechniqueInput{
				Element: tuxemon.ElementFire,
				Known:   tc.known,
			})
			s.Require().NoError(err)
			s.True(result.Success)
			s.Equal(tc.want, result.Slug)
			s.Equal([]int{tc.wantSize}, roller.Sizes())
		})
	}
}

func (s *SelectorTestSuite) TestSelectionIsAlwaysLearnableAndUnknown() {
	techniques := testutils.FixtureTechniques()
	c := testutils.NewTechniqueCatalog(s.T(), techniques)
	svc, err := selector.New(&selector.Config{
		Techniques: c,
		Roller:     testutils.NewSeededRoller(42),
	})
	s.Require().NoError(err)

	knownSets := [][]string{
		{},
		{testutils.TechniqueFireClaw},
		{testutils.TechniqueFireClaw, testutils.TechniqueEmber, testutils.TechniqueSteam},
		{testutils.TechniqueSplash, testutils.TechniqueFireball},
		{"not_in_catalog"},
	}

	for _, element := range tuxemon.AllElementTypes() {
		for _, known := range knownSets {
			for i := 0; i < 20; i++ {
				result, err := svc.SelectRandomTechnique(&selector.SelectRandomTechniqueInput{
					Element: element,
					Known:   known,
				})
				s.Require().NoError(err)

				expected := expectedCandidates(techniques, element, known)
				if len(expected) == 0 {
					s.False(result.Success, "element %s known %v", element, known)
					continue
				}

				s.Require().True(result.Success)
				s.NotContains(known, result.Slug)
				s.Contains(expected, result.Slug)

				t, err := c.Lookup(result.Slug)
				s.Require().NoError(err)
				s.True(t.Randomly)
				s.True(t.HasType(element))
			}
		}
	}
}

func (s *SelectorTestSuite) TestFixedSourceIsDeterministic() {
	pick := func() []string {
		svc, err := selector.New(&selector.Config{
			Techniques: testutils.NewTechniqueCatalog(s.T(), testutils.FixtureTechniques()),
			Roller:     testutils.NewSeededRoller(7),
		})
		s.Require().NoError(err)

		var picks []string
		for i := 0; i < 10; i++ {
			result, err := svc.SelectRandomTechnique(&selector.SelectRandomTechniqueInput{
				Element: tuxemon.ElementFire,
			})
			s.Require().NoError(err)
			picks = append(picks, result.Slug)
		}
		return picks
	}

	s.Equal(pick(), pick())
}

func (s *SelectorTestSuite) TestUniformDistribution() {
	svc, err := selector.New(&selector.Config{
		Techniques: testutils.NewTechniqueCatalog(s.T(), testutils.FixtureTechniques()),
		Roller:     testutils.NewSeededRoller(2024),
	})
	s.Require().NoError(err)

	const draws = 20000
	counts := make(map[string]int)
	for i := 0; i < draws; i++ {
		result, err := svc.SelectRandomTechnique(&selector.SelectRandomTechniqueInput{
			Element: tuxemon.ElementFire,
		})
		s.Require().NoError(err)
		counts[result.Slug]++
	}

	s.Len(counts, 4)
	expected := float64(draws) / 4
	for slug, n := range counts {
		s.InDelta(expected, float64(n), expected*0.1, "slug %s drawn %d times", slug, n)
	}
}

func (s *SelectorTestSuite) TestErrors() {
	s.Run("nil input", func() {
		svc := s.newSelector(abcCatalog(), nil)
		_, err := svc.SelectRandomTechnique(nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("unknown element", func() {
		svc := s.newSelector(abcCatalog(), nil)
		_, err := svc.SelectRandomTechnique(&selector.SelectRandomTechniqueInput{Element: "plasma"})
		s.True(errors.IsInvalidArgument(err))
		s.Equal("plasma", errors.GetMeta(err)["element"])
	})

	s.Run("roller failure", func() {
		svc := s.newSelector(testutils.FixtureTechniques(), testutils.NewScriptedRoller())
		_, err := svc.SelectRandomTechnique(&selector.SelectRandomTechniqueInput{Element: tuxemon.ElementFire})
		s.Require().Error(err)
		s.True(errors.IsInternal(err))
	})

	for _, roll := range []int{0, 5, -1} {
		s.Run(fmt.Sprintf("roller returns %d for four candidates", roll), func() {
			svc, err := selector.New(&selector.Config{
				Techniques: testutils.NewTechniqueCatalog(s.T(), testutils.FixtureTechniques()),
				Roller:     fixedRoller(roll),
			})
			s.Require().NoError(err)

			_, err = svc.SelectRandomTechnique(&selector.SelectRandomTechniqueInput{Element: tuxemon.ElementFire})
			s.Require().Error(err)
			s.True(errors.IsInternal(err))
			s.Contains(err.Error(), fmt.Sprintf("roller returned %d for 4 candidates", roll))
		})
	}
}

// fixedRoller always returns the same value without checking it
type fixedRoller int

func (r fixedRoller) Roll(int) (int, error) { return int(r), nil }

func (r fixedRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = int(r)
	}
	return out, nil
}

func (s *SelectorTestSuite) TestReadsCatalogOncePerSelection() {
	ctrl := gomock.NewController(s.T())
	techniques := catalogmock.NewMockTechniques(ctrl)

	techniques.EXPECT().All().Return(testutils.FixtureTechniques()).Times(2)
	techniques.EXPECT().Lookup(gomock.Any()).Times(0)

	svc, err := selector.New(&selector.Config{
		Techniques: techniques,
		Roller:     testutils.NewScriptedRoller(2),
	})
	s.Require().NoError(err)

	first, err := svc.SelectRandomTechnique(&selector.SelectRandomTechniqueInput{Element: tuxemon.ElementFire})
	s.Require().NoError(err)
	s.Equal(testutils.TechniqueEmber, first.Slug)

	second, err := svc.SelectRandomTechnique(&selector.SelectRandomTechniqueInput{
		Element: tuxemon.ElementWater,
		Known:   []string{testutils.TechniqueSteam},
	})
	s.Require().NoError(err)
	s.Equal(testutils.TechniqueSplash, second.Slug)
}

func expectedCandidates(techniques []*tuxemon.Technique, element tuxemon.ElementType, known []string) []string {
	var out []string
	for _, t := range techniques {
		if !t.Randomly || !t.HasType(element) {
			continue
		}
		skip := false
		for _, k := range known {
			if k == t.Slug {
				skip = true
			}
		}
		if !skip {
			out = append(out, t.Slug)
		}
	}
	return out
}
