//go:build integration

package person_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"digitaldivide/internal/household"
	"digitaldivide/internal/person"
	"digitaldivide/pkg/domain"
	"digitaldivide/pkg/platform/sentinel"
	"digitaldivide/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres   *containers.PostgresContainer
	store      *person.PostgresStore
	households *household.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.postgres = mgr.GetPostgres(s.T())
	s.store = person.NewPostgres(s.postgres.DB)
	s.households = household.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	ctx := context.Background()
	s.Require().NoError(s.postgres.TruncateTables(ctx, "households"))

	now := time.Now().UTC().Truncate(time.Microsecond)
	h := &household.Household{
		ID:            "HH001",
		Province:      domain.ProvinceGauteng,
		Municipality:  "Johannesburg",
		AreaType:      domain.AreaTypeUrban,
		HouseholdSize: 4,
		InternetType:  domain.InternetNone,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.Require().NoError(s.households.Upsert(ctx, h))
}

func testPerson(id domain.PersonID, age int) *person.Person {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &person.Person{
		ID:                   id,
		HouseholdID:          "HH001",
		Age:                  age,
		Gender:               domain.GenderFemale,
		EducationLevel:       domain.EducationLevelMatric,
		SchoolType:           domain.SchoolTypeNone,
		InternetUsageHours:   2,
		DigitalLiteracyScore: 0.1,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

func (s *PostgresStoreSuite) TestUpsertAndFind() {
	ctx := context.Background()

	score := 68.5
	p := testPerson("P001", 30)
	p.DeviceType = "smartphone"
	p.AverageAcademicScore = &score
	s.Require().NoError(s.store.Upsert(ctx, p))

	got, err := s.store.FindByID(ctx, "P001")
	s.Require().NoError(err)
	s.Equal(p.HouseholdID, got.HouseholdID)
	s.Equal("smartphone", got.DeviceType)
	s.Require().NotNil(got.AverageAcademicScore)
	s.InDelta(score, *got.AverageAcademicScore, 1e-9)

	_, err = s.store.FindByID(ctx, "P404")
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestNullFieldsRoundTrip() {
	ctx := context.Background()

	p := testPerson("P002", 8)
	s.Require().NoError(s.store.Upsert(ctx, p))

	got, err := s.store.FindByID(ctx, "P002")
	s.Require().NoError(err)
	s.Empty(got.DeviceType)
	s.Nil(got.AverageAcademicScore)
}

func (s *PostgresStoreSuite) TestListByHouseholdOrdersByAge() {
	ctx := context.Background()

	s.Require().NoError(s.store.Upsert(ctx, testPerson("P010", 52)))
	s.Require().NoError(s.store.Upsert(ctx, testPerson("P011", 9)))

	out, err := s.store.ListByHousehold(ctx, "HH001")
	s.Require().NoError(err)
	s.Require().Len(out, 2)
	s.Equal(domain.PersonID("P011"), out[0].ID)
	s.Equal(domain.PersonID("P010"), out[1].ID)
}

func (s *PostgresStoreSuite) TestDeleteByHousehold() {
	ctx := context.Background()

	s.Require().NoError(s.store.Upsert(ctx, testPerson("P020", 20)))
	s.Require().NoError(s.store.Upsert(ctx, testPerson("P021", 21)))

	s.Require().NoError(s.store.DeleteByHousehold(ctx, "HH001"))

	ids, err := s.store.ListIDsByHousehold(ctx, "HH001")
	s.Require().NoError(err)
	s.Empty(ids)

	// Idempotent on an already-empty household.
	s.NoError(s.store.DeleteByHousehold(ctx, "HH001"))
}

func (s *PostgresStoreSuite) TestSchemaCascadeOnHouseholdDelete() {
	ctx := context.Background()

	s.Require().NoError(s.store.Upsert(ctx, testPerson("P030", 30)))
	s.Require().NoError(s.households.Delete(ctx, "HH001"))

	_, err := s.store.FindByID(ctx, "P030")
	s.ErrorIs(err, sentinel.ErrNotFound)
}
