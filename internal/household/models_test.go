package household

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"digitaldivide/pkg/domain"
	dErrors "digitaldivide/pkg/domain-errors"
)

type HouseholdSuite struct {
	suite.Suite
}

func TestHouseholdSuite(t *testing.T) {
	suite.Run(t, new(HouseholdSuite))
}

func validHousehold() *Household {
	return &Household{
		ID:            "HH001",
		Province:      domain.ProvinceGauteng,
		Municipality:  "Johannesburg",
		AreaType:      domain.AreaTypeUrban,
		HouseholdSize: 4,
		InternetType:  domain.InternetNone,
	}
}

func (s *HouseholdSuite) TestComputeDigitalAccessIndex() {
	s.Run("no connectivity, devices or electricity scores zero", func() {
		h := validHousehold()
		h.InternetType = domain.InternetNone

		s.InDelta(0.0, h.ComputeDigitalAccessIndex(), 1e-9)
	})

	s.Run("fully connected household scores one", func() {
		h := validHousehold()
		h.InternetType = domain.InternetFiber
		h.HasElectricity = true
		h.NumberOfComputers = 2
		h.NumberOfSmartphones = 2

		s.InDelta(1.0, h.ComputeDigitalAccessIndex(), 1e-9)
	})

	s.Run("device score is per capita and capped", func() {
		h := validHousehold()
		h.HouseholdSize = 2
		h.NumberOfSmartphones = 10

		// Devices alone contribute at most the 0.3 weight.
		s.InDelta(0.3, h.ComputeDigitalAccessIndex(), 1e-9)
	})

	s.Run("mobile connection scores half the internet weight", func() {
		h := validHousehold()
		h.InternetType = domain.InternetMobile

		s.InDelta(0.4*(2.0/4.0), h.ComputeDigitalAccessIndex(), 1e-9)
	})

	s.Run("adsl and satellite score alike", func() {
		adsl := validHousehold()
		adsl.InternetType = domain.InternetADSL
		sat := validHousehold()
		sat.InternetType = domain.InternetSatellite

		s.InDelta(adsl.ComputeDigitalAccessIndex(), sat.ComputeDigitalAccessIndex(), 1e-9)
	})

	s.Run("computation is idempotent", func() {
		h := validHousehold()
		h.InternetType = domain.InternetADSL
		h.HasElectricity = true
		h.NumberOfComputers = 1

		first := h.ComputeDigitalAccessIndex()
		s.InDelta(first, h.ComputeDigitalAccessIndex(), 1e-9)
	})
}

func (s *HouseholdSuite) TestValidate() {
	s.Run("valid household passes", func() {
		s.NoError(validHousehold().Validate())
	})

	s.Run("missing id rejected", func() {
		h := validHousehold()
		h.ID = ""
		err := h.Validate()
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("unknown province rejected", func() {
		h := validHousehold()
		h.Province = "XX"
		s.Error(h.Validate())
	})

	s.Run("empty municipality rejected", func() {
		h := validHousehold()
		h.Municipality = ""
		s.Error(h.Validate())
	})

	s.Run("zero household size rejected", func() {
		h := validHousehold()
		h.HouseholdSize = 0
		err := h.Validate()
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("negative device count rejected", func() {
		h := validHousehold()
		h.NumberOfComputers = -1
		s.Error(h.Validate())
	})
}
