package universe

import "strings"

// htmlTagTable maps a known markup tag to its HTML substitution. Tags
// absent from the table are dropped along with their brackets, in both
// html and plain mode. Modeled as data, the same table-plus-lookup shape
// as classify.go's archetype table.
var htmlTagTable = map[string]string{
	"<TRA>":   "<span>",
	"</TRA>":  "</span>",
	"<PARA/>": "<p>",
	"<RDL>":   "",
	"</RDL>":  "",
}

// markupToHTML substitutes known tags for their HTML equivalents and
// drops anything unrecognized (spec.md §4.8).
func markupToHTML(raw string) string {
	var b strings.Builder
	for i := 0; i < len(raw); {
		if raw[i] != '<' {
			b.WriteByte(raw[i])
			i++
			continue
		}
		end := strings.IndexByte(raw[i:], '>')
		if end == -1 {
			break // unterminated tag at end of input; drop the remainder
		}
		if repl, ok := htmlTagTable[raw[i:i+end+1]]; ok {
			b.WriteString(repl)
		}
		i += end + 1
	}
	return b.String()
}

// markupToPlain strips every tag, known or not, leaving bare text. Since
// markupToHTML only ever emits original non-tag runs verbatim plus more
// "<...>" runs (its substitutions), stripping all tags from its output
// reproduces exactly what stripping all tags from the input does:
// plain(html(x)) == plain(x) for any x.
func markupToPlain(raw string) string {
	var b strings.Builder
	for i := 0; i < len(raw); {
		if raw[i] != '<' {
			b.WriteByte(raw[i])
			i++
			continue
		}
		end := strings.IndexByte(raw[i:], '>')
		if end == -1 {
			break
		}
		i += end + 1
	}
	return b.String()
}
