package report

import "fmt"

const YardsPerMeter = 1.09361

type Units string

const (
	Meters Units = "meters"
	Yards  Units = "yards"
)

func ParseUnits(s string) (Units, error) {
	switch Units(s) {
	case Meters, Yards:
		return Units(s), nil
	case "m":
		return Meters, nil
	case "yd":
		return Yards, nil
	default:
		return "", fmt.Errorf("unknown units: %s", s)
	}
}

// FromMeters converts a length in meters to u.
func (u Units) FromMeters(m float64) float64 {
	if u == Yards {
		return m * YardsPerMeter
	}
	return m
}

func (u Units) Abbrev() string {
	if u == Yards {
		return "yd"
	}
	return "m"
}
