package technology

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"digitaldivide/pkg/domain"
	dErrors "digitaldivide/pkg/domain-errors"
)

type AccessSuite struct {
	suite.Suite
}

func TestAccessSuite(t *testing.T) {
	suite.Run(t, new(AccessSuite))
}

func validAccess() *Access {
	return &Access{
		ID:             domain.NewTechnologyAccessID(),
		HouseholdID:    "HH001",
		ConnectionType: domain.ConnectionNone,
	}
}

func (s *AccessSuite) TestAdoptionScore() {
	s.Run("empty record scores zero", func() {
		s.InDelta(0.0, validAccess().AdoptionScore(), 1e-9)
	})

	s.Run("broadband household with devices and a smart tv scores seven", func() {
		a := validAccess()
		a.HasInternet = true
		a.ConnectionType = domain.ConnectionBroadband
		a.NumSmartphones = 3
		a.NumComputers = 2
		a.NumTablets = 1
		a.HasSmartTV = true

		s.InDelta(7.0, a.AdoptionScore(), 1e-9)
	})

	s.Run("mobile internet earns no broadband bonus", func() {
		a := validAccess()
		a.HasInternet = true
		a.ConnectionType = domain.ConnectionMobile

		s.InDelta(2.0, a.AdoptionScore(), 1e-9)
	})

	s.Run("legacy fiber exports earn the broadband bonus", func() {
		a := validAccess()
		a.HasInternet = true
		a.ConnectionType = "fiber"

		s.InDelta(3.0, a.AdoptionScore(), 1e-9)
	})

	s.Run("device points cap at three", func() {
		a := validAccess()
		a.NumSmartphones = 50

		s.InDelta(3.0, a.AdoptionScore(), 1e-9)
	})

	s.Run("smart device points cap at two", func() {
		a := validAccess()
		a.HasSmartTV = true
		a.HasSmartSpeaker = true
		a.HasSmartThermostat = true

		s.InDelta(2.0, a.AdoptionScore(), 1e-9)
	})

	s.Run("everything maxed scores ten", func() {
		a := validAccess()
		a.HasInternet = true
		a.ConnectionType = domain.ConnectionBroadband
		a.NumComputers = 6
		a.HasSmartTV = true
		a.HasSmartSpeaker = true
		a.HasGamingConsole = true
		a.HasStreamingService = true

		s.InDelta(10.0, a.AdoptionScore(), 1e-9)
	})

	s.Run("score is a multiple of one tenth", func() {
		a := validAccess()
		a.NumSmartphones = 1 // half a device point

		score := a.AdoptionScore()
		s.InDelta(0.5, score, 1e-9)
		s.InDelta(score, math.Round(score*10)/10, 1e-9)
	})
}

func (s *AccessSuite) TestTotalDevices() {
	a := validAccess()
	a.NumSmartphones = 2
	a.NumComputers = 1
	a.NumTablets = 3

	s.Equal(6, a.TotalDevices())
}

func (s *AccessSuite) TestHasAnySmartDevices() {
	a := validAccess()
	s.False(a.HasAnySmartDevices())

	a.HasSmartSpeaker = true
	s.True(a.HasAnySmartDevices())
}

func (s *AccessSuite) TestValidate() {
	s.Run("valid record passes", func() {
		s.NoError(validAccess().Validate())
	})

	s.Run("missing household rejected", func() {
		a := validAccess()
		a.HouseholdID = ""
		err := a.Validate()
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("negative device count rejected", func() {
		a := validAccess()
		a.NumTablets = -1
		err := a.Validate()
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("negative speed rejected", func() {
		a := validAccess()
		speed := -10.0
		a.InternetSpeedMbps = &speed
		s.Error(a.Validate())
	})

	s.Run("fiber is not a valid stored connection type", func() {
		a := validAccess()
		a.ConnectionType = "fiber"
		s.Error(a.Validate())
	})
}
