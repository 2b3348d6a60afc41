package utils

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

	swedishLetters = strings.NewReplacer("å", "a", "ä", "a", "ö", "o")
)

// Slugify переводит название в URL-safe вид: нижний регистр, å/ä -> a, ö -> o,
// остальные символы вне [a-z0-9] схлопываются в один дефис.
func Slugify(name string) string {
	s := swedishLetters.Replace(strings.ToLower(name))
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// GenerateSlug строит slug места. Суффикс с OSM id делает slug уникальным
// даже для одинаковых названий.
func GenerateSlug(name string, id int64) string {
	base := Slugify(name)
	if base == "" {
		return strconv.FormatInt(id, 10)
	}
	return base + "-" + strconv.FormatInt(id, 10)
}

// FoldAccents убирает диакритику и приводит строку к нижнему регистру
// ("  Göteborg " -> "goteborg"). Используется для свободного поиска.
func FoldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
