package models

import (
	"fmt"
	"strconv"
	"strings"
)

// LeagueTier is a ranked division. Tiers are numbered 1 (Bronze V) through
// 27 (Grandmaster), five divisions per metal.
type LeagueTier int

const (
	BronzeV LeagueTier = iota + 1
	BronzeIV
	BronzeIII
	BronzeII
	BronzeI
	SilverV
	SilverIV
	SilverIII
	SilverII
	SilverI
	GoldV
	GoldIV
	GoldIII
	GoldII
	GoldI
	PlatinumV
	PlatinumIV
	PlatinumIII
	PlatinumII
	PlatinumI
	DiamondV
	DiamondIV
	DiamondIII
	DiamondII
	DiamondI
	MastersI
	Grandmaster
)

var (
	tierMetals    = []string{"Bronze", "Silver", "Gold", "Platinum", "Diamond"}
	tierDivisions = []string{"V", "IV", "III", "II", "I"}
)

func (t LeagueTier) Valid() bool {
	return t >= BronzeV && t <= Grandmaster
}

func (t LeagueTier) WireValue() string {
	return strconv.Itoa(int(t))
}

func (t LeagueTier) String() string {
	switch {
	case t == MastersI:
		return "MastersI"
	case t == Grandmaster:
		return "Grandmaster"
	case t.Valid():
		i := int(t) - 1
		return tierMetals[i/5] + tierDivisions[i%5]
	default:
		return fmt.Sprintf("LeagueTier(%d)", int(t))
	}
}

// ParseLeagueTier accepts the numeric tier or its name ("GoldIII").
func ParseLeagueTier(s string) (LeagueTier, error) {
	s = strings.TrimSpace(s)
	if id, err := strconv.Atoi(s); err == nil {
		if t := LeagueTier(id); t.Valid() {
			return t, nil
		}
		return 0, fmt.Errorf("%w: league tier %q", ErrUnknownValue, s)
	}
	for t := BronzeV; t <= Grandmaster; t++ {
		if strings.EqualFold(t.String(), s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: league tier %q", ErrUnknownValue, s)
}
