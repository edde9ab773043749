package chapter

import (
	"regexp"
	"strings"
)

// Numbering prefixes stripped before rule matching.  Applied repeatedly so
// that stacked prefixes like "第三章 3.1 施工准备" reduce fully.  The chapter
// word is unanchored: 第N章 is removed wherever it appears in the title, not
// only at the front.
var prefixPatterns = []*regexp.Regexp{
	// 第三章 / 第十二章, anywhere in the title
	regexp.MustCompile(`第[一二三四五六七八九十百千零\d]+[章节部分篇]\s*`),
	// 一、 / 十、
	regexp.MustCompile(`^[一二三四五六七八九十]+[、．.]\s*`),
	// 1 / 1.2 / 3.4.5 followed by whitespace
	regexp.MustCompile(`^\d+(?:\.\d+)*[、．.]?\s+`),
	// (1) / （2）
	regexp.MustCompile(`^[(（]\d+[)）][、．.]?\s*`),
	// circled digits
	regexp.MustCompile(`^[①②③④⑤⑥⑦⑧⑨⑩]\s*`),
}

// sectionNumber captures a leading dotted section number, e.g. "3.2.1".
var sectionNumber = regexp.MustCompile(`^(\d+(?:\.\d+)*)[、．.]?\s+`)

// NormalizeTitle strips leading numbering prefixes and surrounding whitespace
// so that rule matching sees only the semantic core of the heading.  The
// original text is preserved separately in MappingResult.OriginalTitle.
func NormalizeTitle(title string) string {
	cleaned := strings.TrimSpace(title)
	for {
		before := cleaned
		for _, re := range prefixPatterns {
			cleaned = re.ReplaceAllString(cleaned, "")
		}
		cleaned = strings.TrimSpace(cleaned)
		if cleaned == before {
			break
		}
	}
	return cleaned
}

// SectionID extracts a dotted section number from the start of a heading,
// e.g. "3.2.1 基础开挖" → "3.2.1".  Returns "" when the heading carries no
// digit-style numbering.
func SectionID(title string) string {
	m := sectionNumber.FindStringSubmatch(strings.TrimSpace(title))
	if m == nil {
		return ""
	}
	return m[1]
}

// chineseOrdinals maps the ordinal numerals used by top-level chapter
// headings onto digits; used by OrdinalDepth.
var chineseOrdinals = map[string]int{
	"一": 1, "二": 2, "三": 3, "四": 4, "五": 5,
	"六": 6, "七": 7, "八": 8, "九": 9, "十": 10,
}

var ordinalPrefix = regexp.MustCompile(`^([一二三四五六七八九十]+)[、．.]`)

// OrdinalNumber returns the ordinal value of a "三、" style prefix, or 0 when
// the heading does not start with one.  Only the single-numeral ordinals used
// by the ten-chapter structure are recognised.
func OrdinalNumber(title string) int {
	m := ordinalPrefix.FindStringSubmatch(strings.TrimSpace(title))
	if m == nil {
		return 0
	}
	return chineseOrdinals[m[1]]
}

//Personal.AI order the ending
