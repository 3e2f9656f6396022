package languages

import "sort"

// codes is the set of language codes a book is allowed to carry. It mirrors
// the fixed enumeration the catalog was originally seeded with, so records
// imported from external providers are rejected when they carry anything
// outside of it.
var codes = map[string]struct{}{
	"af": {}, "ar": {}, "ast": {}, "az": {}, "be": {}, "bg": {}, "bn": {},
	"br": {}, "bs": {}, "ca": {}, "cs": {}, "cy": {}, "da": {}, "de": {},
	"dsb": {}, "el": {}, "en": {}, "en-au": {}, "en-gb": {}, "eo": {},
	"es": {}, "es-ar": {}, "es-co": {}, "es-mx": {}, "es-ni": {}, "es-ve": {},
	"et": {}, "eu": {}, "fa": {}, "fi": {}, "fr": {}, "fy": {}, "ga": {},
	"gd": {}, "gl": {}, "he": {}, "hi": {}, "hr": {}, "hsb": {}, "hu": {},
	"hy": {}, "ia": {}, "id": {}, "io": {}, "is": {}, "it": {}, "ja": {},
	"ka": {}, "kab": {}, "kk": {}, "km": {}, "kn": {}, "ko": {}, "lb": {},
	"lt": {}, "lv": {}, "mk": {}, "ml": {}, "mn": {}, "mr": {}, "my": {},
	"nb": {}, "ne": {}, "nl": {}, "nn": {}, "os": {}, "pa": {}, "pl": {},
	"pt": {}, "pt-br": {}, "ro": {}, "ru": {}, "sk": {}, "sl": {}, "sq": {},
	"sr": {}, "sr-latn": {}, "sv": {}, "sw": {}, "ta": {}, "te": {}, "th": {},
	"tr": {}, "tt": {}, "udm": {}, "uk": {}, "ur": {}, "vi": {},
	"zh-hans": {}, "zh-hant": {},
}

// Valid reports whether code is a recognized language code.
func Valid(code string) bool {
	_, ok := codes[code]
	return ok
}

// Codes returns the sorted list of recognized language codes.
func Codes() []string {
	out := make([]string, 0, len(codes))
	for code := range codes {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
