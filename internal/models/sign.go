// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

// Sign is one of the 12 zodiac signs, stored lowercase. It forms half of
// the (sign, date) key under which daily horoscopes are cached.
type Sign string

const (
	SignAries       Sign = "aries"
	SignTaurus      Sign = "taurus"
	SignGemini      Sign = "gemini"
	SignCancer      Sign = "cancer"
	SignLeo         Sign = "leo"
	SignVirgo       Sign = "virgo"
	SignLibra       Sign = "libra"
	SignScorpio     Sign = "scorpio"
	SignSagittarius Sign = "sagittarius"
	SignCapricorn   Sign = "capricorn"
	SignAquarius    Sign = "aquarius"
	SignPisces      Sign = "pisces"
)

// AllSigns lists the 12 signs in traditional zodiac order. Used for the
// homepage sign picker and for iterating in tests.
var AllSigns = []Sign{
	SignAries, SignTaurus, SignGemini, SignCancer,
	SignLeo, SignVirgo, SignLibra, SignScorpio,
	SignSagittarius, SignCapricorn, SignAquarius, SignPisces,
}

// signLabels maps each sign to its display label.
var signLabels = map[Sign]string{
	SignAries:       "Aries",
	SignTaurus:      "Taurus",
	SignGemini:      "Gemini",
	SignCancer:      "Cancer",
	SignLeo:         "Leo",
	SignVirgo:       "Virgo",
	SignLibra:       "Libra",
	SignScorpio:     "Scorpio",
	SignSagittarius: "Sagittarius",
	SignCapricorn:   "Capricorn",
	SignAquarius:    "Aquarius",
	SignPisces:      "Pisces",
}

// ParseSign validates a raw query value against the 12 known signs.
// The second return value is false for anything else, including the
// empty string. No case folding; the API contract is lowercase values.
func ParseSign(value string) (Sign, bool) {
	s := Sign(value)
	if _, ok := signLabels[s]; !ok {
		return "", false
	}
	return s, true
}

// Label returns the capitalized display name of the sign.
func (s Sign) Label() string {
	return signLabels[s]
}
