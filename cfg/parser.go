package cfg

import "strings"

// ParseText decodes data as the game's lenient textual dialect, producing
// the same Section stream the BINI decoder produces. Malformed lines are
// reported as diagnostics and skipped; the whole file is never rejected for
// one bad line, matching the game's own tolerant loader.
func ParseText(data []byte) ([]Section, []*Diagnostic) {
	data = stripBOM(data)
	lines := splitLines(data)

	var sections []Section
	var diags []*Diagnostic
	currentIdx := -1 // index into sections of the open section, or -1

	for i, raw := range lines {
		lineNo := i + 1
		trimmed := strings.TrimSpace(stripComment(raw))

		kind, sectionName := classifyLine(trimmed)
		switch kind {
		case lineBlank:
			continue

		case lineSectionHeader:
			sections = append(sections, Section{Name: strings.ToLower(sectionName)})
			currentIdx = len(sections) - 1

		case lineEntry:
			eq := strings.IndexByte(trimmed, '=')
			key := strings.ToLower(strings.TrimSpace(trimmed[:eq]))
			if key == "" {
				diags = append(diags, newTextDiag(lineNo, errEmptyKey))
				continue
			}
			if currentIdx < 0 {
				diags = append(diags, newTextDiag(lineNo, errEntryOutsideSection).WithContext("key", key))
				continue
			}
			tokens := splitValueList(trimmed[eq+1:])
			if len(tokens) == 0 {
				diags = append(diags, newTextDiag(lineNo, errEmptyValueList).WithContext("key", key))
				continue
			}
			entry := Entry{Name: key}
			for _, tok := range tokens {
				entry.Values = append(entry.Values, parseValue(tok))
			}
			sections[currentIdx].Entries = append(sections[currentIdx].Entries, entry)

		case lineMalformed:
			diags = append(diags, newTextDiag(lineNo, errMalformedLine).WithContext("text", raw))
		}
	}

	return sections, diags
}
