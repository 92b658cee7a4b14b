package parser

import "regexp"

// Bare eight-digit numbers are assumed to belong to the Hong Kong numbering
// plan, the market most of these chats trade in.
const hkCountryCode = "+852"

var (
	contactPrefixPattern = regexp.MustCompile(`(?i)^(?:Contact|聯絡|联系)[:：\s]*`)

	intlPhonePattern  = regexp.MustCompile(`\+\d{1,4}[\s-]?\d{3,4}[\s-]?\d{3,4}[\s-]?\d{0,4}`)
	localPhonePattern = regexp.MustCompile(`\b[2-9]\d{7}\b`)
	barePhonePattern  = regexp.MustCompile(`\b\d{8,15}\b`)
	phoneSeparators   = regexp.MustCompile(`[\s-]`)
)

// ExtractPhoneNumber returns the best phone-number candidate found in text,
// which may be a display name or a message body. International +CC numbers
// win over local eight-digit ones, which win over any bare digit run.
func ExtractPhoneNumber(text string) (string, bool) {
	text = contactPrefixPattern.ReplaceAllString(text, "")

	if m := intlPhonePattern.FindString(text); m != "" {
		return phoneSeparators.ReplaceAllString(m, ""), true
	}
	if m := localPhonePattern.FindString(text); m != "" {
		return hkCountryCode + m, true
	}
	if m := barePhonePattern.FindString(text); m != "" {
		return m, true
	}
	return "", false
}
