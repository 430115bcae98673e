// Package sector parses industrial-statistics text into ETF recommendations
package sector

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/weihan/gridmate/internal/models"
)

// A lineStrategy attempts to extract one sector record from a single line.
// Strategies are tried in declared order; the first success wins.
type lineStrategy struct {
	name string
	re   *regexp.Regexp
}

// match returns the extracted record, or false when the line does not fit
// this strategy. A match is accepted only when both figures parse as real
// numbers and the name is non-empty after trimming.
func (ls *lineStrategy) match(line string) (models.Sector, bool) {
	m := ls.re.FindStringSubmatch(line)
	if m == nil {
		return models.Sector{}, false
	}
	name := strings.Trim(strings.TrimSpace(m[1]), "|")
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Sector{}, false
	}
	revenue, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return models.Sector{}, false
	}
	profit, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return models.Sector{}, false
	}
	return models.Sector{Name: name, RevenueGrowth: revenue, ProfitGrowth: profit}, true
}

const signedNumber = `([+-]?[0-9]+(?:\.[0-9]+)?)`

// The three strategies, highest priority first:
//  1. Labeled bilingual colon form, the native format of the statistics
//     bureau releases. Accepts ASCII and full-width colon/percent/comma.
//  2. Dash-separated English labeled form.
//  3. Generic tabular form: a leading non-numeric name followed by two
//     numeric tokens, with optional markdown table pipes.
var defaultStrategies = []lineStrategy{
	{
		name: "labeled-bilingual",
		re: regexp.MustCompile(`^\s*(.+?)\s*[:：]\s*营业收入(?:同比)?增长\s*` + signedNumber +
			`\s*[%％][,，、;；]?\s*.*?利润(?:总额)?(?:同比)?增长\s*` + signedNumber + `\s*[%％]`),
	},
	{
		name: "dash-english",
		re: regexp.MustCompile(`(?i)^\s*(.+?)\s*[-—–]\s*Revenue\s+Growth[:：]?\s*` + signedNumber +
			`\s*[%％].*?Profit\s+Growth[:：]?\s*` + signedNumber + `\s*[%％]`),
	},
	{
		name: "generic-tabular",
		re: regexp.MustCompile(`^\s*\|?\s*([^0-9+\-|]+?)[\s:：|]+` + signedNumber +
			`\s*[%％]?[\s,，、|]+` + signedNumber + `\s*[%％]?`),
	},
}

// boilerplateMarkers identify header and preamble lines that are discarded
// before any strategy runs. These never carry sector figures.
var boilerplateMarkers = []string{
	"数据来源",
	"国家统计局",
	"规模以上工业企业",
	"单位：",
	"单位:",
	"行业名称",
	"Sector Name",
	"Industry Name",
	"Source:",
}

// Parser extracts sector records from raw multi-line text using an ordered
// cascade of pattern strategies. It is a best-effort extractor: lines that
// no strategy can read are dropped silently.
type Parser struct {
	strategies []lineStrategy
}

// NewParser creates a parser with the default strategy cascade.
func NewParser() *Parser {
	return &Parser{strategies: defaultStrategies}
}

// ParseResult carries the extracted sectors plus the non-empty line count
// the data-quality assessment needs.
type ParseResult struct {
	Sectors   []models.Sector
	LineCount int
}

// Parse extracts sector records from text. Output order is the order of
// first successful match in the source, never sorted.
func (p *Parser) Parse(text string) ParseResult {
	var result ParseResult

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}
		result.LineCount++

		if isBoilerplate(line) {
			continue
		}

		for i := range p.strategies {
			if sec, ok := p.strategies[i].match(line); ok {
				result.Sectors = append(result.Sectors, sec)
				break
			}
		}
	}
	return result
}

// isBoilerplate reports whether a line is a known header, separator, or
// preamble that carries no sector figures.
func isBoilerplate(line string) bool {
	if strings.HasPrefix(line, "#") {
		return true
	}
	if strings.Contains(line, "---") || strings.Contains(line, "===") {
		return true
	}
	for _, marker := range boilerplateMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
