package parser

import (
	"regexp"
	"strings"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
)

// DefaultSkipPrefixes are section headers and banners that never carry a transaction
var DefaultSkipPrefixes = []string{"LUGAR", "OPERACIÓN", "TOTAL", "III.", "II.", "I."}

// DefaultIssuerPrefix starts every synthesized source document id
const DefaultIssuerPrefix = "BCI"

var (
	// date, optional reference number, description, operation amount, total amount
	linePattern = regexp.MustCompile(
		`(\d{2}/\d{2}/\d{2})\s+` +
			`(?:\d{9,}\s+)?` +
			`(.+?)\s+\$\s*(-?\d[\d.,]*)` +
			`\s+\$\s*(-?\d[\d.,]*)`)

	cardholderPattern = regexp.MustCompile(`NOMBRE DEL TITULAR\s*:?\s*([A-ZÁÉÍÓÚÑ][A-ZÁÉÍÓÚÑ ]*[A-ZÁÉÍÓÚÑ])`)
	issueDatePattern  = regexp.MustCompile(`FECHA ESTADO DE CUENTA\s*:?\s*(\d{2}/\d{2}/\d{4})`)
	repeatedSpaces    = regexp.MustCompile(`\s{2,}`)
)

// Options configures a Parser
type Options struct {
	IssuerPrefix string
	SkipPrefixes []string
}

// Result is the outcome of parsing one document
type Result struct {
	Records          []*entity.TransactionRecord
	SourceDocumentID string
	Cardholder       string
	IssueDate        string // YYYYMMDD when recovered from the header
	LinesSeen        int
	LinesSkipped     int
	LinesMatched     int
}

// Parser converts extracted statement text into transaction candidates
type Parser struct {
	issuerPrefix string
	skipPrefixes []string
}

// NewParser creates a parser, falling back to the default markers when none are configured
func NewParser(opts Options) *Parser {
	p := &Parser{
		issuerPrefix: opts.IssuerPrefix,
		skipPrefixes: opts.SkipPrefixes,
	}
	if p.issuerPrefix == "" {
		p.issuerPrefix = DefaultIssuerPrefix
	}
	if len(p.skipPrefixes) == 0 {
		p.skipPrefixes = DefaultSkipPrefixes
	}
	return p
}

// Parse scans every line of every page. Lines that do not look like a
// transaction are dropped silently; malformed amounts become nil.
func (p *Parser) Parse(pages []string, displayName string) Result {
	result := Result{SourceDocumentID: displayName}

	if len(pages) > 0 {
		result.Cardholder, result.IssueDate = p.scanHeader(pages[0])
		if result.Cardholder != "" && result.IssueDate != "" {
			result.SourceDocumentID = entity.BuildDocumentID(p.issuerPrefix, result.Cardholder, result.IssueDate)
		}
	}

	for _, page := range pages {
		for _, raw := range strings.Split(page, "\n") {
			line := strings.TrimSpace(raw)
			if line == "" {
				continue
			}
			result.LinesSeen++

			if p.isSkipped(line) {
				result.LinesSkipped++
				continue
			}

			record, ok := p.ParseLine(line)
			if !ok {
				continue
			}
			record.SourceDocumentID = result.SourceDocumentID
			result.Records = append(result.Records, record)
			result.LinesMatched++
		}
	}

	return result
}

// ParseLine matches a single trimmed line against the transaction shape
func (p *Parser) ParseLine(line string) (*entity.TransactionRecord, bool) {
	match := linePattern.FindStringSubmatch(line)
	if match == nil {
		return nil, false
	}

	return &entity.TransactionRecord{
		OperationDate:   entity.NormalizeSourceDate(match[1]),
		Description:     CollapseSpaces(match[2]),
		OperationAmount: entity.ParseAmount(match[3]),
		TotalAmount:     entity.ParseAmount(match[4]),
	}, true
}

func (p *Parser) isSkipped(line string) bool {
	for _, prefix := range p.skipPrefixes {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func (p *Parser) scanHeader(firstPage string) (cardholder, issueDate string) {
	if m := cardholderPattern.FindStringSubmatch(firstPage); m != nil {
		cardholder = CollapseSpaces(m[1])
	}
	if m := issueDatePattern.FindStringSubmatch(firstPage); m != nil {
		if converted, ok := entity.ConvertDateLayout(m[1], "02/01/2006", "20060102"); ok {
			issueDate = converted
		}
	}
	return cardholder, issueDate
}

// CollapseSpaces trims s and replaces runs of whitespace with a single space
func CollapseSpaces(s string) string {
	return repeatedSpaces.ReplaceAllString(strings.TrimSpace(s), " ")
}
