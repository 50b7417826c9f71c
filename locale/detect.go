package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Detect reads the POSIX locale variables in priority order and returns the
// parsed language preferences. getenv is usually os.Getenv.
func Detect(getenv func(string) string) []language.Tag {
	var prefs []language.Tag
	add := func(value string) {
		if tag, ok := ParsePOSIX(value); ok {
			prefs = append(prefs, tag)
		}
	}

	add(getenv("LC_ALL"))
	add(getenv("LC_MESSAGES"))
	for _, v := range strings.Split(getenv("LANGUAGE"), ":") {
		add(v)
	}
	add(getenv("LANG"))
	return prefs
}

// ParsePOSIX parses values such as "cs_CZ.UTF-8" or "de_DE@euro". The "C"
// and "POSIX" locales carry no language and are rejected.
func ParsePOSIX(value string) (language.Tag, bool) {
	v := strings.TrimSpace(value)
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "C" || v == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}
