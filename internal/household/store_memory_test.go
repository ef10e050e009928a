package household

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"digitaldivide/pkg/domain"
	"digitaldivide/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemoryStore()
	s.ctx = context.Background()
}

func (s *InMemoryStoreSuite) seed(id domain.HouseholdID, province domain.Province, municipality string) {
	h := validHousehold()
	h.ID = id
	h.Province = province
	h.Municipality = municipality
	s.Require().NoError(s.store.Upsert(s.ctx, h))
}

func (s *InMemoryStoreSuite) TestUpsertAndFind() {
	s.Run("missing household is not found", func() {
		_, err := s.store.FindByID(s.ctx, "HH404")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("round-trips a saved household", func() {
		s.seed("HH001", domain.ProvinceGauteng, "Johannesburg")

		got, err := s.store.FindByID(s.ctx, "HH001")
		s.Require().NoError(err)
		s.Equal("Johannesburg", got.Municipality)
	})

	s.Run("upsert replaces the existing record", func() {
		s.seed("HH002", domain.ProvinceGauteng, "Pretoria")
		s.seed("HH002", domain.ProvinceGauteng, "Tshwane")

		got, err := s.store.FindByID(s.ctx, "HH002")
		s.Require().NoError(err)
		s.Equal("Tshwane", got.Municipality)
	})

	s.Run("returned record is a copy", func() {
		s.seed("HH003", domain.ProvinceWesternCape, "Cape Town")

		got, err := s.store.FindByID(s.ctx, "HH003")
		s.Require().NoError(err)
		got.Municipality = "mutated"

		again, err := s.store.FindByID(s.ctx, "HH003")
		s.Require().NoError(err)
		s.Equal("Cape Town", again.Municipality)
	})
}

func (s *InMemoryStoreSuite) TestListByProvince() {
	s.seed("HH010", domain.ProvinceGauteng, "Soweto")
	s.seed("HH011", domain.ProvinceGauteng, "Johannesburg")
	s.seed("HH012", domain.ProvinceWesternCape, "Cape Town")

	out, err := s.store.ListByProvince(s.ctx, domain.ProvinceGauteng)
	s.Require().NoError(err)
	s.Require().Len(out, 2)
	s.Equal("Johannesburg", out[0].Municipality)
	s.Equal("Soweto", out[1].Municipality)
}

func (s *InMemoryStoreSuite) TestDelete() {
	s.Run("deletes an existing household", func() {
		s.seed("HH020", domain.ProvinceLimpopo, "Polokwane")

		s.Require().NoError(s.store.Delete(s.ctx, "HH020"))
		_, err := s.store.FindByID(s.ctx, "HH020")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("deleting a missing household reports not found", func() {
		s.ErrorIs(s.store.Delete(s.ctx, "HH404"), sentinel.ErrNotFound)
	})
}
