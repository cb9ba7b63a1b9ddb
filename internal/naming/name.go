package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Name is a word-segmented identifier such as ["value","in","u","s","d"].
//
// The zero value is the empty Name. Names are immutable.
type Name struct {
	words []Symbol
}

// ParseName segments s into lowercase words.
//
// A word is a letter followed by lowercase letters, or a run of digits.
// Uppercase letters therefore start a new word, consecutive capitals become
// single-letter words and every other character is a separator:
//
//	ParseName("valueInUSD")  // value-in-u-s-d
//	ParseName("a1b2")        // a-1-b-2
//	ParseName("snake_case")  // snake-case
//
// Input is decomposed with NFKD first so accented letters keep their base
// letter. ParseName never fails; input without a word yields the empty Name.
func ParseName(s string) Name {
	s = foldASCII(s)

	var words []Symbol
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isLetter(c):
			j := i + 1
			for j < len(s) && isLower(s[j]) {
				j++
			}
			words = append(words, Intern(strings.ToLower(s[i:j])))
			i = j
		case isDigit(c):
			j := i + 1
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			words = append(words, Intern(s[i:j]))
			i = j
		default:
			i++
		}
	}
	return Name{words: words}
}

// NameFromWords builds a Name from already segmented words, verbatim.
// This is the decode path for wire formats that store words explicitly.
func NameFromWords(words ...string) Name {
	if len(words) == 0 {
		return Name{}
	}
	syms := make([]Symbol, len(words))
	for i, w := range words {
		syms[i] = Intern(w)
	}
	return Name{words: syms}
}

// foldASCII decomposes s, drops combining marks and turns any other
// non-ASCII rune into a separator.
func foldASCII(s string) string {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			ascii = false
			break
		}
	}
	if ascii {
		return s
	}
	var b strings.Builder
	for _, r := range norm.NFKD.String(s) {
		switch {
		case r < utf8.RuneSelf:
			b.WriteRune(r)
		case unicode.Is(unicode.Mn, r):
			// combining mark left over from decomposition
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func isLetter(c byte) bool { return isLower(c) || (c >= 'A' && c <= 'Z') }
func isLower(c byte) bool  { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool  { return c >= '0' && c <= '9' }

// Words returns the segments of the Name.
func (n Name) Words() []string {
	if len(n.words) == 0 {
		return nil
	}
	out := make([]string, len(n.words))
	for i, w := range n.words {
		out[i] = Resolve(w)
	}
	return out
}

// Len returns the number of words.
func (n Name) Len() int { return len(n.words) }

// IsEmpty reports whether the Name has no words.
func (n Name) IsEmpty() bool { return len(n.words) == 0 }

// Equal reports whether two Names have the same word sequence.
func (n Name) Equal(other Name) bool {
	if len(n.words) != len(other.words) {
		return false
	}
	for i := range n.words {
		if n.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// String returns the canonical kebab-case form.
func (n Name) String() string {
	return strings.Join(n.Words(), "-")
}

// ToSnakeCase returns the words joined with underscores.
func (n Name) ToSnakeCase() string {
	return strings.Join(n.Words(), "_")
}

// ToCamelCase returns the Name in camelCase ("valueInUSD" style).
func (n Name) ToCamelCase() string {
	var b strings.Builder
	for i, w := range n.Words() {
		if i == 0 {
			b.WriteString(w)
			continue
		}
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// ToTitleCase returns the Name in TitleCase.
func (n Name) ToTitleCase() string {
	var b strings.Builder
	for _, w := range n.Words() {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

func capitalize(w string) string {
	if w == "" || !isLower(w[0]) {
		return w
	}
	return string(w[0]-'a'+'A') + w[1:]
}
