package models

import (
	"fmt"
	"strconv"
	"strings"
)

// LanguageCode selects the localisation of catalog endpoints (gods, items,
// skins, recommended items).
type LanguageCode int

const (
	English             LanguageCode = 1
	German              LanguageCode = 2
	French              LanguageCode = 3
	Chinese             LanguageCode = 5
	Spanish             LanguageCode = 7
	SpanishLatinAmerica LanguageCode = 9
	Portuguese          LanguageCode = 10
	Russian             LanguageCode = 11
	Polish              LanguageCode = 12
	Turkish             LanguageCode = 13
)

var languageNames = map[LanguageCode]string{
	English:             "English",
	German:              "German",
	French:              "French",
	Chinese:             "Chinese",
	Spanish:             "Spanish",
	SpanishLatinAmerica: "SpanishLatinAmerica",
	Portuguese:          "Portuguese",
	Russian:             "Russian",
	Polish:              "Polish",
	Turkish:             "Turkish",
}

func (l LanguageCode) Valid() bool {
	_, ok := languageNames[l]
	return ok
}

func (l LanguageCode) WireValue() string {
	return strconv.Itoa(int(l))
}

func (l LanguageCode) String() string {
	if name, ok := languageNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LanguageCode(%d)", int(l))
}

// ParseLanguageCode accepts the numeric code or the case-insensitive name.
func ParseLanguageCode(s string) (LanguageCode, error) {
	s = strings.TrimSpace(s)
	if id, err := strconv.Atoi(s); err == nil {
		if l := LanguageCode(id); l.Valid() {
			return l, nil
		}
		return 0, fmt.Errorf("%w: language %q", ErrUnknownValue, s)
	}
	for l, name := range languageNames {
		if strings.EqualFold(name, s) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: language %q", ErrUnknownValue, s)
}
