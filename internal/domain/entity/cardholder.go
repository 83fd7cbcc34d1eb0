package entity

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// documentIDPattern matches ids shaped like ISSUER_FIRST_LAST_20240315
var documentIDPattern = regexp.MustCompile(`^[A-Z]+_([A-Za-zÁÉÍÓÚÑáéíóúñ_]+)_`)

var titleCaser = cases.Title(language.Spanish)

// CardholderFromDocumentID extracts a display cardholder name from a
// synthesized source document id. Arbitrary filenames yield an empty string.
func CardholderFromDocumentID(sourceDocumentID string) string {
	match := documentIDPattern.FindStringSubmatch(sourceDocumentID)
	if match == nil {
		return ""
	}
	name := strings.Trim(strings.ReplaceAll(match[1], "_", " "), " ")
	if name == "" {
		return ""
	}
	return titleCaser.String(strings.ToLower(name))
}

// BuildDocumentID synthesizes a deterministic source document id from header fields
func BuildDocumentID(issuer, cardholder, issueDate string) string {
	name := strings.Join(strings.Fields(strings.ToUpper(cardholder)), "_")
	return strings.ToUpper(issuer) + "_" + name + "_" + issueDate
}
