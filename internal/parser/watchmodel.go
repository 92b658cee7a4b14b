package parser

import "regexp"

// modelRule is one reference-number convention. group selects the submatch
// to report; 0 means the whole match.
type modelRule struct {
	name    string
	pattern *regexp.Regexp
	group   int
}

// modelRules cover the reference conventions that show up in dealer chats.
// Every family runs over the whole body regardless of earlier matches: one
// message often quotes several references. The brand rule reports only the
// reference token, so "Rolex 116500LN" and a bare "116500LN" collapse into
// one candidate.
var modelRules = []modelRule{
	// Six digits plus optional letters (116500LN, 126710BLRO).
	{"six-digit", regexp.MustCompile(`\b\d{6}[A-Z]{0,6}\b`), 0},
	// Slash references (5711/1A, 5990/1A-001).
	{"slash", regexp.MustCompile(`\b\d{4,5}/\d{1,2}[A-Z]{0,5}(?:-\d{3})?\b`), 0},
	// Five digits plus letters (15500ST, 26331ST).
	{"five-digit", regexp.MustCompile(`\b\d{5}[A-Z]{2,4}\b`), 0},
	// Brand name immediately followed by a reference token.
	{"brand", regexp.MustCompile(`(?i)(?:Rolex|Patek|AP|Audemars|Omega|Cartier|IWC|Panerai|勞力士|百達翡麗|愛彼|歐米茄|卡地亞)\s+([A-Z0-9/-]{4,15})`), 1},
}

// ExtractWatchModels returns the distinct watch references found in text,
// in the order they were first seen.
func ExtractWatchModels(text string) []string {
	return extractWatchModels(text, [2]int{})
}

// extractWatchModels skips candidates overlapping the given span, so the
// digits of an already-matched price literal (which look like a bare
// six-digit reference) are never reported as a model. A zero span skips
// nothing.
func extractWatchModels(text string, skip [2]int) []string {
	var found []string
	seen := make(map[string]struct{})
	for _, rule := range modelRules {
		for _, idx := range rule.pattern.FindAllStringSubmatchIndex(text, -1) {
			start, end := idx[2*rule.group], idx[2*rule.group+1]
			if start < skip[1] && end > skip[0] && skip[0] != skip[1] {
				continue
			}
			ref := text[start:end]
			if _, dup := seen[ref]; dup {
				continue
			}
			seen[ref] = struct{}{}
			found = append(found, ref)
		}
	}
	return found
}
