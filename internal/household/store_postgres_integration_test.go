//go:build integration

package household_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"digitaldivide/internal/household"
	"digitaldivide/pkg/domain"
	"digitaldivide/pkg/platform/sentinel"
	"digitaldivide/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *household.PostgresStore
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
	s.store = household.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "households"))
}

func testHousehold(id domain.HouseholdID) *household.Household {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &household.Household{
		ID:                 id,
		Province:           domain.ProvinceGauteng,
		Municipality:       "Johannesburg",
		AreaType:           domain.AreaTypeUrban,
		HouseholdSize:      4,
		HasElectricity:     true,
		InternetType:       domain.InternetMobile,
		DigitalAccessIndex: 0.5,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (s *PostgresStoreSuite) TestUpsertAndFind() {
	ctx := context.Background()

	income := 15000.0
	h := testHousehold("HH001")
	h.MonthlyIncome = &income
	s.Require().NoError(s.store.Upsert(ctx, h))

	got, err := s.store.FindByID(ctx, "HH001")
	s.Require().NoError(err)
	s.Equal(h.Municipality, got.Municipality)
	s.Equal(h.InternetType, got.InternetType)
	s.Require().NotNil(got.MonthlyIncome)
	s.InDelta(income, *got.MonthlyIncome, 1e-9)
	s.True(h.CreatedAt.Equal(got.CreatedAt))
}

func (s *PostgresStoreSuite) TestUpsertReplacesOnConflict() {
	ctx := context.Background()

	h := testHousehold("HH002")
	s.Require().NoError(s.store.Upsert(ctx, h))

	h.Municipality = "Tshwane"
	h.DigitalAccessIndex = 0.75
	s.Require().NoError(s.store.Upsert(ctx, h))

	got, err := s.store.FindByID(ctx, "HH002")
	s.Require().NoError(err)
	s.Equal("Tshwane", got.Municipality)
	s.InDelta(0.75, got.DigitalAccessIndex, 1e-9)
}

func (s *PostgresStoreSuite) TestListByProvince() {
	ctx := context.Background()

	a := testHousehold("HH010")
	a.Municipality = "Soweto"
	b := testHousehold("HH011")
	b.Municipality = "Alberton"
	c := testHousehold("HH012")
	c.Province = domain.ProvinceWesternCape
	for _, h := range []*household.Household{a, b, c} {
		s.Require().NoError(s.store.Upsert(ctx, h))
	}

	out, err := s.store.ListByProvince(ctx, domain.ProvinceGauteng)
	s.Require().NoError(err)
	s.Require().Len(out, 2)
	s.Equal("Alberton", out[0].Municipality)
	s.Equal("Soweto", out[1].Municipality)
}

func (s *PostgresStoreSuite) TestDelete() {
	ctx := context.Background()

	s.Require().NoError(s.store.Upsert(ctx, testHousehold("HH020")))
	s.Require().NoError(s.store.Delete(ctx, "HH020"))

	_, err := s.store.FindByID(ctx, "HH020")
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.ErrorIs(s.store.Delete(ctx, "HH020"), sentinel.ErrNotFound)
}
