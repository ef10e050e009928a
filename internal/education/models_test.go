package education

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"digitaldivide/pkg/domain"
	dErrors "digitaldivide/pkg/domain-errors"
)

type RecordSuite struct {
	suite.Suite
}

func TestRecordSuite(t *testing.T) {
	suite.Run(t, new(RecordSuite))
}

func validRecord() *Record {
	return &Record{
		ID:       domain.NewEducationRecordID(),
		PersonID: "P001",
		Stage:    domain.StageSecondary,
	}
}

func (s *RecordSuite) TestStageScore() {
	cases := map[domain.EducationStage]int{
		domain.StageNone:       0,
		domain.StagePrimary:    1,
		domain.StageSecondary:  2,
		domain.StageHighSchool: 3,
		domain.StageVocational: 4,
		domain.StageAssociates: 5,
		domain.StageBachelors:  6,
		domain.StageMasters:    7,
		domain.StageDoctorate:  8,
		domain.StageOther:      0,
	}
	for stage, want := range cases {
		r := validRecord()
		r.Stage = stage
		s.Equal(want, r.StageScore(), stage)
	}
}

func (s *RecordSuite) TestIsHigherEducation() {
	s.Run("associate level and above counts", func() {
		for _, stage := range []domain.EducationStage{
			domain.StageAssociates, domain.StageBachelors, domain.StageMasters, domain.StageDoctorate,
		} {
			r := validRecord()
			r.Stage = stage
			s.True(r.IsHigherEducation(), stage)
		}
	})

	s.Run("school stages do not count", func() {
		for _, stage := range []domain.EducationStage{
			domain.StageNone, domain.StagePrimary, domain.StageSecondary,
			domain.StageHighSchool, domain.StageVocational, domain.StageOther,
		} {
			r := validRecord()
			r.Stage = stage
			s.False(r.IsHigherEducation(), stage)
		}
	})
}

func (s *RecordSuite) TestAcademicStatus() {
	s.Run("bare stage", func() {
		r := validRecord()
		s.Equal("Level: secondary", r.AcademicStatus())
	})

	s.Run("enrolled with a school", func() {
		r := validRecord()
		r.Stage = domain.StageBachelors
		r.IsCurrentlyEnrolled = true
		r.SchoolName = "UCT"
		s.Equal("Level: bachelors (Currently Enrolled) at UCT", r.AcademicStatus())
	})
}

func (s *RecordSuite) TestValidate() {
	s.Run("valid record passes", func() {
		s.NoError(validRecord().Validate())
	})

	s.Run("missing person rejected", func() {
		r := validRecord()
		r.PersonID = ""
		err := r.Validate()
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("unknown stage rejected", func() {
		r := validRecord()
		r.Stage = "kindergarten"
		s.Error(r.Validate())
	})

	s.Run("empty institution type allowed", func() {
		r := validRecord()
		r.InstitutionType = ""
		s.NoError(r.Validate())
	})

	s.Run("negative scholarship rejected", func() {
		r := validRecord()
		r.ScholarshipAmount = -1
		err := r.Validate()
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("negative years of education rejected", func() {
		r := validRecord()
		r.YearsOfEducation = -1
		s.Error(r.Validate())
	})
}
