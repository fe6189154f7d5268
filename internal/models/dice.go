package models

import "fmt"

// DieType identifies one of the supported dice
type DieType string

const (
	// DieTypeD4 is a four-sided die
	DieTypeD4 DieType = "d4"

	// DieTypeD6 is a six-sided die
	DieTypeD6 DieType = "d6"

	// DieTypeD8 is an eight-sided die
	DieTypeD8 DieType = "d8"

	// DieTypeD10 is a ten-sided die
	DieTypeD10 DieType = "d10"

	// DieTypeD12 is a twelve-sided die
	DieTypeD12 DieType = "d12"

	// DieTypeD20 is a twenty-sided die
	DieTypeD20 DieType = "d20"

	// DieTypeD100 is a hundred-sided die
	DieTypeD100 DieType = "d100"
)

// dieSides maps each die type to its number of sides
var dieSides = map[DieType]int{
	DieTypeD4:   4,
	DieTypeD6:   6,
	DieTypeD8:   8,
	DieTypeD10:  10,
	DieTypeD12:  12,
	DieTypeD20:  20,
	DieTypeD100: 100,
}

// AllDieTypes returns every supported die type in ascending order
func AllDieTypes() []DieType {
	return []DieType{
		DieTypeD4,
		DieTypeD6,
		DieTypeD8,
		DieTypeD10,
		DieTypeD12,
		DieTypeD20,
		DieTypeD100,
	}
}

// Sides returns the number of sides for the die type, or an error if
// the type is not recognized
func (d DieType) Sides() (int, error) {
	sides, ok := dieSides[d]
	if !ok {
		return 0, fmt.Errorf("invalid die type: %s", d)
	}
	return sides, nil
}

// IsValid reports whether the die type is one of the supported dice
func (d DieType) IsValid() bool {
	_, ok := dieSides[d]
	return ok
}

// ParseDieType converts a string into a DieType
func ParseDieType(s string) (DieType, error) {
	d := DieType(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid die type: %s", s)
	}
	return d, nil
}
