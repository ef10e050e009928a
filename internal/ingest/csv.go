package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"digitaldivide/internal/education"
	"digitaldivide/internal/household"
	"digitaldivide/internal/person"
	"digitaldivide/internal/technology"
	"digitaldivide/pkg/domain"
)

// fields gives typed access to one CSV row by header name. Columns absent
// from the file read as zero values; malformed values are errors.
type fields struct {
	index map[string]int
	row   []string
}

func (f fields) str(name string) string {
	i, ok := f.index[name]
	if !ok || i >= len(f.row) {
		return ""
	}
	return strings.TrimSpace(f.row[i])
}

func (f fields) intVal(name string) (int, error) {
	s := f.str(name)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", name, err)
	}
	return v, nil
}

func (f fields) floatVal(name string) (float64, error) {
	s := f.str(name)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", name, err)
	}
	return v, nil
}

func (f fields) optFloat(name string) (*float64, error) {
	s := f.str(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("column %s: %w", name, err)
	}
	return &v, nil
}

func (f fields) boolVal(name string) (bool, error) {
	s := f.str(name)
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("column %s: %w", name, err)
	}
	return v, nil
}

// forEachRow streams path row by row, calling fn with typed field access.
// The error fn returns marks that single row as rejected; forEachRow itself
// fails only on file-level problems.
func forEachRow(path string, fn func(fields) error) (imported, rejected int, _ []error, err error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, 0, nil, fmt.Errorf("read header of %s: %w", path, err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(strings.ToLower(name))] = i
	}

	var rowErrs []error
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return imported, rejected, rowErrs, fmt.Errorf("read %s: %w", path, err)
		}
		if err := fn(fields{index: index, row: row}); err != nil {
			rejected++
			rowErrs = append(rowErrs, fmt.Errorf("%s line %d: %w", path, line, err))
			continue
		}
		imported++
	}
	return imported, rejected, rowErrs, nil
}

func buildHousehold(f fields) (*household.Household, error) {
	id, err := domain.ParseHouseholdID(f.str("household_id"))
	if err != nil {
		return nil, err
	}
	province, err := domain.ParseProvince(f.str("province"))
	if err != nil {
		return nil, err
	}
	areaType, err := domain.ParseAreaType(f.str("area_type"))
	if err != nil {
		return nil, err
	}
	internetType, err := domain.ParseInternetType(f.str("internet_type"))
	if err != nil {
		return nil, err
	}
	size, err := f.intVal("household_size")
	if err != nil {
		return nil, err
	}
	income, err := f.optFloat("monthly_income")
	if err != nil {
		return nil, err
	}
	electricity, err := f.boolVal("has_electricity")
	if err != nil {
		return nil, err
	}
	internet, err := f.boolVal("has_internet")
	if err != nil {
		return nil, err
	}
	computers, err := f.intVal("number_of_computers")
	if err != nil {
		return nil, err
	}
	smartphones, err := f.intVal("number_of_smartphones")
	if err != nil {
		return nil, err
	}

	return &household.Household{
		ID:                  id,
		Province:            province,
		Municipality:        f.str("municipality"),
		AreaType:            areaType,
		HouseholdSize:       size,
		MonthlyIncome:       income,
		HasElectricity:      electricity,
		HasInternet:         internet,
		InternetType:        internetType,
		NumberOfComputers:   computers,
		NumberOfSmartphones: smartphones,
	}, nil
}

func buildPerson(f fields) (*person.Person, error) {
	id, err := domain.ParsePersonID(f.str("person_id"))
	if err != nil {
		return nil, err
	}
	householdID, err := domain.ParseHouseholdID(f.str("household_id"))
	if err != nil {
		return nil, err
	}
	gender, err := domain.ParseGender(f.str("gender"))
	if err != nil {
		return nil, err
	}
	level, err := domain.ParseEducationLevel(f.str("education_level"))
	if err != nil {
		return nil, err
	}
	schoolType, err := domain.ParseSchoolType(f.str("school_type"))
	if err != nil {
		return nil, err
	}
	age, err := f.intVal("age")
	if err != nil {
		return nil, err
	}
	studying, err := f.boolVal("currently_studying")
	if err != nil {
		return nil, err
	}
	ownDevice, err := f.boolVal("has_own_device")
	if err != nil {
		return nil, err
	}
	usageHours, err := f.floatVal("internet_usage_hours")
	if err != nil {
		return nil, err
	}
	eduUse, err := f.boolVal("uses_internet_for_education")
	if err != nil {
		return nil, err
	}
	academic, err := f.optFloat("average_academic_score")
	if err != nil {
		return nil, err
	}

	return &person.Person{
		ID:                       id,
		HouseholdID:              householdID,
		Age:                      age,
		Gender:                   gender,
		EducationLevel:           level,
		CurrentlyStudying:        studying,
		SchoolType:               schoolType,
		HasOwnDevice:             ownDevice,
		DeviceType:               f.str("device_type"),
		InternetUsageHours:       usageHours,
		UsesInternetForEducation: eduUse,
		AverageAcademicScore:     academic,
	}, nil
}

func buildTechnologyAccess(f fields) (*technology.Access, error) {
	householdID, err := domain.ParseHouseholdID(f.str("household_id"))
	if err != nil {
		return nil, err
	}
	connectionType, err := domain.ParseConnectionType(f.str("connection_type"))
	if err != nil {
		return nil, err
	}
	internet, err := f.boolVal("has_internet")
	if err != nil {
		return nil, err
	}
	speed, err := f.optFloat("internet_speed_mbps")
	if err != nil {
		return nil, err
	}
	smartphones, err := f.intVal("num_smartphones")
	if err != nil {
		return nil, err
	}
	computers, err := f.intVal("num_computers")
	if err != nil {
		return nil, err
	}
	tablets, err := f.intVal("num_tablets")
	if err != nil {
		return nil, err
	}

	a := &technology.Access{
		HouseholdID:       householdID,
		HasInternet:       internet,
		ConnectionType:    connectionType,
		InternetSpeedMbps: speed,
		NumSmartphones:    smartphones,
		NumComputers:      computers,
		NumTablets:        tablets,
	}
	for name, dst := range map[string]*bool{
		"has_smart_tv":          &a.HasSmartTV,
		"has_smart_speaker":     &a.HasSmartSpeaker,
		"has_smart_thermostat":  &a.HasSmartThermostat,
		"has_gaming_console":    &a.HasGamingConsole,
		"has_streaming_service": &a.HasStreamingService,
	} {
		v, err := f.boolVal(name)
		if err != nil {
			return nil, err
		}
		*dst = v
	}
	return a, nil
}

func buildEducationRecord(f fields) (*education.Record, error) {
	personID, err := domain.ParsePersonID(f.str("person_id"))
	if err != nil {
		return nil, err
	}
	stage, err := domain.ParseEducationStage(f.str("stage"))
	if err != nil {
		return nil, err
	}
	var institutionType domain.InstitutionType
	if s := f.str("institution_type"); s != "" {
		institutionType, err = domain.ParseInstitutionType(s)
		if err != nil {
			return nil, err
		}
	}
	gpa, err := f.optFloat("grade_point_average")
	if err != nil {
		return nil, err
	}
	years, err := f.intVal("years_of_education")
	if err != nil {
		return nil, err
	}
	scholarship, err := f.floatVal("scholarship_amount")
	if err != nil {
		return nil, err
	}

	r := &education.Record{
		PersonID:                  personID,
		Stage:                     stage,
		SchoolName:                f.str("school_name"),
		InstitutionType:           institutionType,
		GradePointAverage:         gpa,
		YearsOfEducation:          years,
		PrimaryLanguage:           f.str("primary_language"),
		ScholarshipAmount:         scholarship,
		ExtracurricularActivities: f.str("extracurricular_activities"),
	}
	for name, dst := range map[string]*bool{
		"is_currently_enrolled":           &r.IsCurrentlyEnrolled,
		"has_special_education":           &r.HasSpecialEducation,
		"is_bilingual":                    &r.IsBilingual,
		"receives_financial_aid":          &r.ReceivesFinancialAid,
		"has_access_to_computer":          &r.HasAccessToComputer,
		"participates_in_remote_learning": &r.ParticipatesInRemoteLearning,
		"participates_in_extracurricular": &r.ParticipatesInExtracurricular,
	} {
		v, err := f.boolVal(name)
		if err != nil {
			return nil, err
		}
		*dst = v
	}
	return r, nil
}
