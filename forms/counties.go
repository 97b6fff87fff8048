package forms

import "strings"

// CaliforniaCounties lists every county a petition can be filed in
var CaliforniaCounties = []string{
	"Los Angeles", "San Francisco", "Orange", "San Diego", "Riverside", "Sacramento",
	"Alameda", "Santa Clara", "San Bernardino", "Contra Costa", "Fresno", "Kern",
	"Ventura", "San Mateo", "Sonoma", "Stanislaus", "San Joaquin", "Santa Barbara",
	"Solano", "Monterey", "Placer", "San Luis Obispo", "Santa Cruz", "Merced",
	"Butte", "Yolo", "El Dorado", "Imperial", "Shasta", "Kings", "Madera", "Napa",
	"Tulare", "Nevada", "Humboldt", "Lake", "Mendocino", "Sutter", "Yuba",
	"Amador", "Calaveras", "Colusa", "Del Norte", "Glenn", "Inyo", "Lassen",
	"Mariposa", "Mono", "Plumas", "San Benito", "Sierra", "Siskiyou", "Tehama",
	"Trinity", "Tuolumne",
}

var countyByToken = func() map[string]string {
	m := make(map[string]string, len(CaliforniaCounties))
	for _, name := range CaliforniaCounties {
		m[CountyToken(name)] = name
	}
	return m
}()

// CountyToken normalizes a county name to its lowercase-hyphenated
// token form, e.g. "Los Angeles" -> "los-angeles".
func CountyToken(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// CountyName returns the official county name for a token. Unknown
// tokens fall back to de-hyphenating whatever was stored.
func CountyName(token string) string {
	if name, ok := countyByToken[token]; ok {
		return name
	}
	return strings.ReplaceAll(token, "-", " ")
}

// ValidCounty reports whether token names a California county
func ValidCounty(token string) bool {
	_, ok := countyByToken[token]
	return ok
}
