package domain

import dErrors "digitaldivide/pkg/domain-errors"

// Province is a South African province code as used on the survey instrument.
//
// Usage: construct via ParseProvince at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type Province string

const (
	ProvinceEasternCape  Province = "EC"
	ProvinceFreeState    Province = "FS"
	ProvinceGauteng      Province = "GP"
	ProvinceKwaZuluNatal Province = "KZN"
	ProvinceLimpopo      Province = "LP"
	ProvinceMpumalanga   Province = "MP"
	ProvinceNorthernCape Province = "NC"
	ProvinceNorthWest    Province = "NW"
	ProvinceWesternCape  Province = "WC"
)

// validProvinces is the single source of truth for valid province codes.
var validProvinces = map[Province]bool{
	ProvinceEasternCape:  true,
	ProvinceFreeState:    true,
	ProvinceGauteng:      true,
	ProvinceKwaZuluNatal: true,
	ProvinceLimpopo:      true,
	ProvinceMpumalanga:   true,
	ProvinceNorthernCape: true,
	ProvinceNorthWest:    true,
	ProvinceWesternCape:  true,
}

// ParseProvince constructs a Province from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseProvince(s string) (Province, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "province cannot be empty")
	}
	p := Province(s)
	if !p.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid province: "+s)
	}
	return p, nil
}

// IsValid checks if the province is one of the supported codes.
func (p Province) IsValid() bool {
	return validProvinces[p]
}

func (p Province) String() string {
	return string(p)
}

// AreaType classifies the settlement a household is located in.
type AreaType string

const (
	AreaTypeUrban    AreaType = "URB"
	AreaTypeRural    AreaType = "RUR"
	AreaTypeInformal AreaType = "INF"
)

var validAreaTypes = map[AreaType]bool{
	AreaTypeUrban:    true,
	AreaTypeRural:    true,
	AreaTypeInformal: true,
}

// ParseAreaType constructs an AreaType from external input.
func ParseAreaType(s string) (AreaType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "area type cannot be empty")
	}
	a := AreaType(s)
	if !a.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid area type: "+s)
	}
	return a, nil
}

// IsValid checks if the area type is one of the supported codes.
func (a AreaType) IsValid() bool {
	return validAreaTypes[a]
}

func (a AreaType) String() string {
	return string(a)
}
