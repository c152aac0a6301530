package units

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Conversion factors from meters.
const (
	FeetPerMeter  = 3.2808399
	MilesPerMeter = 0.00062137119
	MetersPerFoot = 0.3048
)

// Meters is a length in meters. The formatting helpers render it in the
// unit the report asks for, one decimal place, matching the report layout.
type Meters float64

func (m Meters) String() string {
	return fmt.Sprintf("%.1f m", float64(m))
}

// Feet renders the length in feet.
func (m Meters) Feet() string {
	return fmt.Sprintf("%.1f ft", float64(m)*FeetPerMeter)
}

// Miles renders the length in miles.
func (m Meters) Miles() string {
	return fmt.Sprintf("%.1f mi", float64(m)*MilesPerMeter)
}

// Kilometers renders the length in kilometers.
func (m Meters) Kilometers() string {
	return fmt.Sprintf("%.1f km", float64(m)*0.001)
}

// ParseMeters parses a length. A bare number is meters; an "ft" suffix is
// converted from feet.
func ParseMeters(s string) (Meters, error) {
	s = strings.TrimSpace(s)
	if ft, ok := strings.CutSuffix(s, "ft"); ok {
		v, err := strconv.ParseFloat(strings.TrimSpace(ft), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid length %q: %w", s, err)
		}
		return Meters(v * MetersPerFoot), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q: %w", s, err)
	}
	return Meters(v), nil
}

// FormatDuration renders a duration as H:MM.
func FormatDuration(d time.Duration) string {
	hours := int(d.Hours())
	mins := int((d - time.Duration(hours)*time.Hour).Minutes())
	return fmt.Sprintf("%d:%02d", hours, mins)
}
