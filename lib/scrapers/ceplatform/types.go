// Package ceplatform scrapes the good-practices directory of the
// EU Circular Economy Stakeholder Platform.
package ceplatform

import "go.opentelemetry.io/otel"

var tracer = otel.Tracer("cescrape.scrapers.ceplatform")

const (
	BaseDomain     = "https://circulareconomy.europa.eu"
	BaseListingURL = BaseDomain + "/platform/en/good-practices"
)

// Practice is one normalized good-practice listing. Every field is
// always present, an extraction miss leaves it as the empty string.
// KeyArea, Sector, Scope (and occasionally TypeOfOrganisation) hold
// several tags joined with ", " in document order.
type Practice struct {
	Title              string
	Description        string
	Link               string
	Organisation       string
	TypeOfOrganisation string
	Country            string
	Language           string
	KeyArea            string
	Sector             string
	Scope              string
}

// Columns is the canonical dataset header, in persisted order.
var Columns = []string{
	"Title",
	"Description",
	"Link",
	"Organisation",
	"Type of Organisation",
	"Country",
	"Language",
	"Key Area",
	"Sector",
	"Scope",
}

// CategoricalColumns are the columns whose cells hold tags rather than
// free text, the analyzer charts these by default.
var CategoricalColumns = []string{
	"Organisation",
	"Type of Organisation",
	"Country",
	"Language",
	"Key Area",
	"Sector",
	"Scope",
}

// Row returns the record's cells in Columns order.
func (p Practice) Row() []string {
	return []string{
		p.Title,
		p.Description,
		p.Link,
		p.Organisation,
		p.TypeOfOrganisation,
		p.Country,
		p.Language,
		p.KeyArea,
		p.Sector,
		p.Scope,
	}
}

// Column returns the cell for a header name, false when the name is not
// part of the schema.
func (p Practice) Column(name string) (string, bool) {
	switch name {
	case "Title":
		return p.Title, true
	case "Description":
		return p.Description, true
	case "Link":
		return p.Link, true
	case "Organisation":
		return p.Organisation, true
	case "Type of Organisation":
		return p.TypeOfOrganisation, true
	case "Country":
		return p.Country, true
	case "Language":
		return p.Language, true
	case "Key Area":
		return p.KeyArea, true
	case "Sector":
		return p.Sector, true
	case "Scope":
		return p.Scope, true
	}
	return "", false
}

// SetColumn is the write counterpart of Column.
func (p *Practice) SetColumn(name, value string) bool {
	switch name {
	case "Title":
		p.Title = value
	case "Description":
		p.Description = value
	case "Link":
		p.Link = value
	case "Organisation":
		p.Organisation = value
	case "Type of Organisation":
		p.TypeOfOrganisation = value
	case "Country":
		p.Country = value
	case "Language":
		p.Language = value
	case "Key Area":
		p.KeyArea = value
	case "Sector":
		p.Sector = value
	case "Scope":
		p.Scope = value
	default:
		return false
	}
	return true
}
