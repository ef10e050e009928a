package domain

import dErrors "digitaldivide/pkg/domain-errors"

// InternetType is the household questionnaire's connection classification.
//
// The technology access module carries its own, independently defined
// ConnectionType below; the two enumerations are not interchangeable and are
// deliberately kept separate.
type InternetType string

const (
	InternetNone      InternetType = "NONE"
	InternetFiber     InternetType = "FIBER"
	InternetADSL      InternetType = "ADSL"
	InternetMobile    InternetType = "MOB"
	InternetSatellite InternetType = "SAT"
)

var validInternetTypes = map[InternetType]bool{
	InternetNone:      true,
	InternetFiber:     true,
	InternetADSL:      true,
	InternetMobile:    true,
	InternetSatellite: true,
}

// ParseInternetType constructs an InternetType from external input.
func ParseInternetType(s string) (InternetType, error) {
	if s == "" {
		return InternetNone, nil
	}
	t := InternetType(s)
	if !t.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid internet type: "+s)
	}
	return t, nil
}

// IsValid checks if the internet type is one of the supported codes.
func (t InternetType) IsValid() bool {
	return validInternetTypes[t]
}

func (t InternetType) String() string {
	return string(t)
}

// ConnectionType is the technology access record's connection classification.
type ConnectionType string

const (
	ConnectionNone      ConnectionType = "none"
	ConnectionBroadband ConnectionType = "broadband"
	ConnectionMobile    ConnectionType = "mobile"
	ConnectionSatellite ConnectionType = "satellite"
	ConnectionDialUp    ConnectionType = "dial_up"
	ConnectionOther     ConnectionType = "other"
)

var validConnectionTypes = map[ConnectionType]bool{
	ConnectionNone:      true,
	ConnectionBroadband: true,
	ConnectionMobile:    true,
	ConnectionSatellite: true,
	ConnectionDialUp:    true,
	ConnectionOther:     true,
}

// ParseConnectionType constructs a ConnectionType from external input.
func ParseConnectionType(s string) (ConnectionType, error) {
	if s == "" {
		return ConnectionNone, nil
	}
	c := ConnectionType(s)
	if !c.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid connection type: "+s)
	}
	return c, nil
}

// IsValid checks if the connection type is one of the supported codes.
func (c ConnectionType) IsValid() bool {
	return validConnectionTypes[c]
}

func (c ConnectionType) String() string {
	return string(c)
}
