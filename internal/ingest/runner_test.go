package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"digitaldivide/internal/education"
	educationservice "digitaldivide/internal/education/service"
	"digitaldivide/internal/household"
	householdservice "digitaldivide/internal/household/service"
	"digitaldivide/internal/person"
	personservice "digitaldivide/internal/person/service"
	"digitaldivide/internal/technology"
	technologyservice "digitaldivide/internal/technology/service"
)

type RunnerSuite struct {
	suite.Suite
	households *household.InMemoryStore
	persons    *person.InMemoryStore
	technology *technology.InMemoryStore
	education  *education.InMemoryStore
	runner     *Runner
	ctx        context.Context
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func (s *RunnerSuite) SetupTest() {
	s.households = household.NewInMemoryStore()
	s.persons = person.NewInMemoryStore()
	s.technology = technology.NewInMemoryStore()
	s.education = education.NewInMemoryStore()

	householdSvc, err := householdservice.New(s.households, s.persons, s.technology, s.education, nil, nil)
	s.Require().NoError(err)
	personSvc, err := personservice.New(s.persons, s.households, s.education, nil, nil)
	s.Require().NoError(err)
	technologySvc, err := technologyservice.New(s.technology, s.households, nil)
	s.Require().NoError(err)
	educationSvc, err := educationservice.New(s.education, s.persons)
	s.Require().NoError(err)

	s.runner, err = NewRunner(householdSvc, personSvc, technologySvc, educationSvc, 2, nil, nil)
	s.Require().NoError(err)
	s.ctx = context.Background()
}

func (s *RunnerSuite) writeFile(dir, name, content string) {
	s.T().Helper()
	s.Require().NoError(os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func (s *RunnerSuite) TestRun() {
	dir := s.T().TempDir()

	s.writeFile(dir, HouseholdsFile,
		"household_id,province,municipality,area_type,household_size,monthly_income,has_electricity,has_internet,internet_type,number_of_computers,number_of_smartphones\n"+
			"HH001,GP,Johannesburg,URB,4,12000,true,true,FIBER,2,2\n"+
			"HH002,WC,Cape Town,RUR,2,,false,false,NONE,0,1\n"+
			"HH003,ZZ,Nowhere,URB,1,,false,false,NONE,0,0\n")

	s.writeFile(dir, PersonsFile,
		"person_id,household_id,age,gender,education_level,currently_studying,school_type,has_own_device,device_type,internet_usage_hours,uses_internet_for_education,average_academic_score\n"+
			"P001,HH001,34,F,DEGR,false,NONE,true,laptop,4,true,\n"+
			"P002,HH001,10,M,PRIM,true,PUB,false,,1,true,72.5\n"+
			"P003,HH404,50,M,MATR,false,NONE,false,,0,false,\n")

	s.writeFile(dir, TechnologyFile,
		"household_id,has_internet,connection_type,internet_speed_mbps,num_smartphones,num_computers,num_tablets,has_smart_tv,has_smart_speaker,has_smart_thermostat,has_gaming_console,has_streaming_service\n"+
			"HH001,true,broadband,100,3,2,1,true,false,false,false,false\n")

	s.writeFile(dir, EducationFile,
		"person_id,stage,is_currently_enrolled,school_name,institution_type,grade_point_average,years_of_education,primary_language\n"+
			"P002,primary,true,Melville Primary,public,3.2,4,English\n")

	summary, err := s.runner.Run(s.ctx, dir)
	s.Require().NoError(err)

	s.Run("counts imports and rejections per file", func() {
		s.Equal(2, summary.Households.Imported)
		s.Equal(1, summary.Households.Rejected) // unknown province
		s.Equal(2, summary.Persons.Imported)
		s.Equal(1, summary.Persons.Rejected) // missing household
		s.Equal(1, summary.Technology.Imported)
		s.Equal(1, summary.Education.Imported)
		s.Equal(2, summary.TotalRejected())
	})

	s.Run("derives the access index during import", func() {
		h, err := s.households.FindByID(s.ctx, "HH001")
		s.Require().NoError(err)
		s.InDelta(1.0, h.DigitalAccessIndex, 1e-9)
	})

	s.Run("derives the literacy score during import", func() {
		p, err := s.persons.FindByID(s.ctx, "P001")
		s.Require().NoError(err)
		s.InDelta(0.8, p.DigitalLiteracyScore, 1e-9)
	})

	s.Run("technology records get minted ids", func() {
		a, err := s.technology.FindByHousehold(s.ctx, "HH001")
		s.Require().NoError(err)
		s.False(a.ID.IsZero())
		s.InDelta(7.0, a.AdoptionScore(), 1e-9)
	})

	s.Run("education records land on the person", func() {
		r, err := s.education.FindByPerson(s.ctx, "P002")
		s.Require().NoError(err)
		s.Equal(4, r.YearsOfEducation)
		s.Equal("Melville Primary", r.SchoolName)
	})
}

func (s *RunnerSuite) TestRunWithoutOptionalFiles() {
	dir := s.T().TempDir()

	s.writeFile(dir, HouseholdsFile,
		"household_id,province,municipality,area_type,household_size,has_electricity,internet_type\n"+
			"HH001,LP,Polokwane,RUR,5,true,MOB\n")

	summary, err := s.runner.Run(s.ctx, dir)
	s.Require().NoError(err)
	s.Equal(1, summary.Households.Imported)
	s.True(summary.Persons.Skipped)
	s.True(summary.Technology.Skipped)
	s.True(summary.Education.Skipped)
}

func (s *RunnerSuite) TestRunMissingHouseholdFile() {
	dir := s.T().TempDir()

	_, err := s.runner.Run(s.ctx, dir)
	s.Require().Error(err)
}

func (s *RunnerSuite) TestMalformedValueRejectsRow() {
	dir := s.T().TempDir()

	s.writeFile(dir, HouseholdsFile,
		"household_id,province,municipality,area_type,household_size\n"+
			"HH001,GP,Johannesburg,URB,four\n"+
			"HH002,GP,Johannesburg,URB,3\n")

	summary, err := s.runner.Run(s.ctx, dir)
	s.Require().NoError(err)
	s.Equal(1, summary.Households.Imported)
	s.Equal(1, summary.Households.Rejected)
}
