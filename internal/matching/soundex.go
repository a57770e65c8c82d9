package matching

import (
	"strings"
	"unicode"
)

// soundexClass groups consonants that sound alike, so transliteration
// variants of the same player name (Fischer/Fisher, Carlsen/Carlson) still
// collapse to the same code.
var soundexClass = map[byte]byte{
	'B': '1', 'F': '1', 'P': '1', 'V': '1', 'W': '1',
	'C': '2', 'G': '2', 'J': '2', 'K': '2', 'Q': '2', 'S': '2', 'X': '2', 'Z': '2',
	'D': '3', 'T': '3',
	'L': '4',
	'M': '5', 'N': '5',
	'R': '6',
}

func consonantClass(c byte) byte {
	if class, ok := soundexClass[c]; ok {
		return class
	}
	return '0' // vowels and anything else carry no sound class
}

// Soundex produces a 6-character phonetic code for name: its first letter
// followed by up to five digits, one per consonant class encountered,
// collapsing consecutive repeats of the same class and skipping vowels.
func Soundex(name string) string {
	letters := lettersOnly(strings.ToUpper(strings.TrimSpace(name)))
	if letters == "" {
		return ""
	}

	code := strings.Builder{}
	code.WriteByte(letters[0])

	lastClass := consonantClass(letters[0])
	for i := 1; i < len(letters) && code.Len() < 6; i++ {
		class := consonantClass(letters[i])
		if class != '0' && class != lastClass {
			code.WriteByte(class)
		}
		if class != '0' {
			lastClass = class
		}
	}

	result := code.String()
	for len(result) < 6 {
		result += "0"
	}
	return result
}

func lettersOnly(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// SoundexMatch reports whether two names share a soundex code.
func SoundexMatch(name1, name2 string) bool {
	return Soundex(name1) == Soundex(name2)
}
