package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"digitaldivide/internal/education"
	"digitaldivide/internal/household"
	"digitaldivide/internal/person"
	"digitaldivide/pkg/domain"
	dErrors "digitaldivide/pkg/domain-errors"
	"digitaldivide/pkg/platform/sentinel"
)

type PersonServiceSuite struct {
	suite.Suite
	households *household.InMemoryStore
	persons    *person.InMemoryStore
	education  *education.InMemoryStore
	svc        *Service
	ctx        context.Context
}

func TestPersonServiceSuite(t *testing.T) {
	suite.Run(t, new(PersonServiceSuite))
}

func (s *PersonServiceSuite) SetupTest() {
	s.households = household.NewInMemoryStore()
	s.persons = person.NewInMemoryStore()
	s.education = education.NewInMemoryStore()

	var err error
	s.svc, err = New(s.persons, s.households, s.education, nil, nil)
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *PersonServiceSuite) seedHousehold(id domain.HouseholdID, hasInternet bool) {
	h := &household.Household{
		ID:            id,
		Province:      domain.ProvinceWesternCape,
		Municipality:  "Cape Town",
		AreaType:      domain.AreaTypeUrban,
		HouseholdSize: 3,
		HasInternet:   hasInternet,
		InternetType:  domain.InternetNone,
	}
	s.Require().NoError(s.households.Upsert(s.ctx, h))
}

func testPerson(id domain.PersonID, householdID domain.HouseholdID) *person.Person {
	return &person.Person{
		ID:             id,
		HouseholdID:    householdID,
		Age:            30,
		Gender:         domain.GenderMale,
		EducationLevel: domain.EducationLevelDegree,
		SchoolType:     domain.SchoolTypeNone,
	}
}

func (s *PersonServiceSuite) TestSave() {
	s.Run("computes the literacy score on save", func() {
		s.seedHousehold("HH001", true)

		p := testPerson("P001", "HH001")
		p.HasOwnDevice = true
		p.UsesInternetForEducation = true
		p.InternetUsageHours = 4
		p.DigitalLiteracyScore = 0.123 // must be overwritten

		s.Require().NoError(s.svc.Save(s.ctx, p))

		got, err := s.svc.Get(s.ctx, "P001")
		s.Require().NoError(err)
		s.InDelta(0.8, got.DigitalLiteracyScore, 1e-9)
	})

	s.Run("rejects a person whose household does not exist", func() {
		p := testPerson("P002", "HH404")

		err := s.svc.Save(s.ctx, p)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("rejects an invalid person before the household check", func() {
		p := testPerson("P003", "HH404")
		p.Age = -1

		err := s.svc.Save(s.ctx, p)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func (s *PersonServiceSuite) TestListByHousehold() {
	s.seedHousehold("HH010", false)

	older := testPerson("P010", "HH010")
	older.Age = 52
	younger := testPerson("P011", "HH010")
	younger.Age = 9

	s.Require().NoError(s.svc.Save(s.ctx, older))
	s.Require().NoError(s.svc.Save(s.ctx, younger))

	out, err := s.svc.ListByHousehold(s.ctx, "HH010")
	s.Require().NoError(err)
	s.Require().Len(out, 2)
	s.Equal(domain.PersonID("P011"), out[0].ID)
	s.Equal(domain.PersonID("P010"), out[1].ID)
}

func (s *PersonServiceSuite) TestDelete() {
	s.seedHousehold("HH020", false)
	s.Require().NoError(s.svc.Save(s.ctx, testPerson("P020", "HH020")))
	s.Require().NoError(s.education.Upsert(s.ctx, &education.Record{
		ID:       domain.NewEducationRecordID(),
		PersonID: "P020",
		Stage:    domain.StageBachelors,
	}))

	s.Require().NoError(s.svc.Delete(s.ctx, "P020"))

	_, err := s.education.FindByPerson(s.ctx, "P020")
	s.ErrorIs(err, sentinel.ErrNotFound)

	err = s.svc.Delete(s.ctx, "P020")
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *PersonServiceSuite) TestHasAdequateDigitalAccess() {
	s.Run("true when device, household internet and usage line up", func() {
		s.seedHousehold("HH030", true)
		p := testPerson("P030", "HH030")
		p.HasOwnDevice = true
		p.InternetUsageHours = 2
		s.Require().NoError(s.svc.Save(s.ctx, p))

		ok, err := s.svc.HasAdequateDigitalAccess(s.ctx, "P030")
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("false without own device", func() {
		s.seedHousehold("HH031", true)
		p := testPerson("P031", "HH031")
		p.InternetUsageHours = 2
		s.Require().NoError(s.svc.Save(s.ctx, p))

		ok, err := s.svc.HasAdequateDigitalAccess(s.ctx, "P031")
		s.Require().NoError(err)
		s.False(ok)
	})

	s.Run("reads the household live", func() {
		s.seedHousehold("HH032", false)
		p := testPerson("P032", "HH032")
		p.HasOwnDevice = true
		p.InternetUsageHours = 5
		s.Require().NoError(s.svc.Save(s.ctx, p))

		ok, err := s.svc.HasAdequateDigitalAccess(s.ctx, "P032")
		s.Require().NoError(err)
		s.False(ok)

		// Household comes online; the predicate flips without re-saving
		// the person.
		s.seedHousehold("HH032", true)

		ok, err = s.svc.HasAdequateDigitalAccess(s.ctx, "P032")
		s.Require().NoError(err)
		s.True(ok)
	})

	s.Run("missing person reports not found", func() {
		_, err := s.svc.HasAdequateDigitalAccess(s.ctx, "P404")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}
