package models

// SodaSize is the container size category of a soda.
type SodaSize string

const (
	SizeVerySmall SodaSize = "VERYSMALL"
	SizeSmall     SodaSize = "SMALL"
	SizeRegular   SodaSize = "REGULAR"
	SizeBig       SodaSize = "BIG"
	SizeVeryBig   SodaSize = "VERYBIG"
)

var sizeLabels = map[SodaSize]string{
	SizeVerySmall: "350ml",
	SizeSmall:     "600ml",
	SizeRegular:   "1L",
	SizeBig:       "2L",
	SizeVeryBig:   "2.5L",
}

// AllSizes returns the size catalogue from smallest to largest.
func AllSizes() []SodaSize {
	return []SodaSize{SizeVerySmall, SizeSmall, SizeRegular, SizeBig, SizeVeryBig}
}

// Valid reports whether s is one of the known sizes.
func (s SodaSize) Valid() bool {
	_, ok := sizeLabels[s]
	return ok
}

// Label returns the human readable volume, or an empty string for unknown sizes.
func (s SodaSize) Label() string {
	return sizeLabels[s]
}

func (s SodaSize) String() string {
	return string(s)
}
