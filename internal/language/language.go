package language

import (
	"strings"

	xlang "golang.org/x/text/language"
)

type entry struct {
	code2   string   // ISO 639-1 (2-letter)
	code3   string   // ISO 639-2 primary (3-letter)
	alt3    string   // ISO 639-2 alternate (e.g. "fre" vs "fra")
	display string   // Human-readable name
	rtl     bool     // Right-to-left script
	words   []string // Full word forms (e.g. "english")
}

var languages = []entry{
	{"en", "eng", "", "English", false, []string{"english"}},
	{"es", "spa", "", "Spanish", false, []string{"spanish"}},
	{"fr", "fra", "fre", "French", false, []string{"french"}},
	{"de", "deu", "ger", "German", false, []string{"german"}},
	{"it", "ita", "", "Italian", false, []string{"italian"}},
	{"pt", "por", "", "Portuguese", false, []string{"portuguese"}},
	{"ja", "jpn", "", "Japanese", false, []string{"japanese"}},
	{"ko", "kor", "", "Korean", false, []string{"korean"}},
	{"zh", "zho", "chi", "Chinese", false, []string{"chinese"}},
	{"ru", "rus", "", "Russian", false, []string{"russian"}},
	{"ar", "ara", "", "Arabic", true, []string{"arabic"}},
	{"he", "heb", "", "Hebrew", true, []string{"hebrew"}},
	{"fa", "fas", "per", "Persian", true, []string{"farsi", "persian"}},
	{"hi", "hin", "", "Hindi", false, []string{"hindi"}},
	{"nl", "nld", "dut", "Dutch", false, []string{"dutch"}},
	{"pl", "pol", "", "Polish", false, []string{"polish"}},
	{"sv", "swe", "", "Swedish", false, []string{"swedish"}},
	{"da", "dan", "", "Danish", false, []string{"danish"}},
	{"no", "nor", "", "Norwegian", false, []string{"norwegian"}},
	{"fi", "fin", "", "Finnish", false, []string{"finnish"}},
	{"tr", "tur", "", "Turkish", false, []string{"turkish"}},
	{"el", "ell", "gre", "Greek", false, []string{"greek"}},
}

// Index maps built at init time.
var (
	byCode2 map[string]*entry
	byCode3 map[string]*entry
	byWord  map[string]*entry
)

func init() {
	byCode2 = make(map[string]*entry, len(languages))
	byCode3 = make(map[string]*entry, len(languages)*2)
	byWord = make(map[string]*entry, len(languages))
	for i := range languages {
		e := &languages[i]
		byCode2[e.code2] = e
		byCode3[e.code3] = e
		if e.alt3 != "" {
			byCode3[e.alt3] = e
		}
		for _, w := range e.words {
			byWord[w] = e
		}
	}
}

func lookup(code string) *entry {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	if e, ok := byCode2[code]; ok {
		return e
	}
	if e, ok := byCode3[code]; ok {
		return e
	}
	if e, ok := byWord[code]; ok {
		return e
	}
	return nil
}

// Resolve normalizes any language identifier (ISO code, full word, or BCP-47
// tag such as "pt-BR") to an ISO 639-2 code. Unresolvable input yields "und",
// which callers treat as "no restriction".
func Resolve(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return "und"
	}
	if e := lookup(tag); e != nil {
		return e.code3
	}
	parsed, err := xlang.Parse(tag)
	if err != nil {
		return "und"
	}
	base, confidence := parsed.Base()
	if confidence == xlang.No {
		return "und"
	}
	if e := lookup(base.String()); e != nil {
		return e.code3
	}
	if iso3 := base.ISO3(); iso3 != "" {
		return iso3
	}
	return "und"
}

// ToISO2 converts any recognized language identifier to ISO 639-1 (2-letter).
// Returns empty string for unrecognized input; an unknown 2-letter code
// passes through.
func ToISO2(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return ""
	}
	if e := lookup(code); e != nil {
		return e.code2
	}
	if len(code) == 2 {
		return code
	}
	return ""
}

// DisplayName returns a human-readable language name for any recognized code.
// Returns "Unknown" for empty input, or the uppercased code for unrecognized
// input.
func DisplayName(code string) string {
	if strings.TrimSpace(code) == "" {
		return "Unknown"
	}
	if e := lookup(code); e != nil {
		return e.display
	}
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsRTL reports whether the language is written right-to-left. Unrecognized
// codes are treated as left-to-right.
func IsRTL(code string) bool {
	if e := lookup(code); e != nil {
		return e.rtl
	}
	return false
}

// RTLCodes returns the ISO 639-2 codes of every right-to-left language in the
// table.
func RTLCodes() []string {
	codes := make([]string, 0, 4)
	for i := range languages {
		if languages[i].rtl {
			codes = append(codes, languages[i].code3)
		}
	}
	return codes
}

