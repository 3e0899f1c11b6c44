package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// ParseCSS reads a small subset of CSS: rulesets whose selectors are .class or #id (comma lists
// allowed) with "key: value" declarations. Other selectors and at-rules are skipped. Later rules
// override earlier ones.
func ParseCSS(src string) (*Stylesheet, error) {
	p := css.NewParser(parse.NewInputString(src), false)
	sheet := &Stylesheet{}

	var (
		pending []string // selectors of the ruleset being read
		first   = -1     // index of the first rule opened by the current ruleset
		skip    int      // depth inside at-rules
	)
	for {
		gt, _, data := p.Next()
		switch gt {
		case css.ErrorGrammar:
			err := p.Err()
			if err == nil {
				// a malformed rule; the parser recovers at the next one
				continue
			}
			if err != io.EOF {
				return nil, fmt.Errorf("css: %w", err)
			}
			return sheet, nil
		case css.BeginAtRuleGrammar:
			skip++
		case css.EndAtRuleGrammar:
			skip--
		case css.QualifiedRuleGrammar:
			pending = append(pending, tokenText(p.Values()))
		case css.BeginRulesetGrammar:
			pending = append(pending, tokenText(p.Values()))
			first = len(sheet.Rules)
			for _, sel := range pending {
				if skip == 0 && validSelector(sel) {
					sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: map[string]string{}})
				}
			}
			pending = pending[:0]
		case css.DeclarationGrammar:
			if first < 0 {
				continue
			}
			key := strings.ToLower(string(data))
			val := tokenText(p.Values())
			for i := first; i < len(sheet.Rules); i++ {
				sheet.Rules[i].Props[key] = val
			}
		case css.EndRulesetGrammar:
			first = -1
		}
	}
}

func tokenText(tokens []css.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}

func validSelector(sel string) bool {
	if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
		return false
	}
	return !strings.ContainsAny(sel[1:], " .#>:[+~")
}
