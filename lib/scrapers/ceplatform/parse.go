package ceplatform

import (
	"bytes"
	"log/slog"

	"cescrape/lib/htmlutil"
	"cescrape/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// selectors into the platform's Drupal markup. these silently break
// (yielding fewer or zero cards) when the site changes its structure.
const (
	cardSelector         = "div.node--type-cecon-good-practice"
	descriptionSelector  = ".field-node--field-cecon-abstract"
	organisationSelector = ".field-node--field-cecon-organisation-company a"
	orgTypeSelector      = ".field-node--field-cecon-contributor-category a"
	countrySelector      = ".field-node--field-cecon-country .field-item"
	languageSelector     = ".field-node--field-cecon-main-language a"
	keyAreaSelector      = ".field-node--field-cecon-key-area a"
	sectorSelector       = ".field-node--field-cecon-sector a"
	scopeSelector        = ".field-node--field-cecon-scope a"
)

// ParseListing extracts every good-practice card from a listing page
// body. An empty result on a well-formed page means the directory has
// no further entries.
func ParseListing(body []byte) ([]Practice, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	cards := doc.Find(cardSelector)
	slog.Debug("found practice cards", "count", cards.Length())

	var practices []Practice
	cards.Each(func(_ int, card *goquery.Selection) {
		practices = append(practices, parseCard(card))
	})
	return practices, nil
}

func parseCard(card *goquery.Selection) Practice {
	title := ""
	link := ""
	heading := card.Find("h2").First()
	if heading.Length() == 0 {
		slog.Warn("practice card missing field", "field", "Title")
		slog.Warn("practice card missing field", "field", "Link")
	} else {
		title = htmlutil.CleanText(heading.Text())
		href, ok := heading.Find("a").First().Attr("href")
		if !ok {
			slog.Warn("practice card missing field", "field", "Link")
		} else {
			link = htmlutil.ResolveHref(BaseDomain, href)
		}
	}

	return Practice{
		Title:              title,
		Description:        selectText(card, descriptionSelector, "Description"),
		Link:               link,
		Organisation:       selectText(card, organisationSelector, "Organisation"),
		TypeOfOrganisation: selectText(card, orgTypeSelector, "Type of Organisation"),
		Country:            selectText(card, countrySelector, "Country"),
		Language:           selectText(card, languageSelector, "Language"),
		KeyArea:            selectTagList(card, keyAreaSelector, "Key Area"),
		Sector:             selectTagList(card, sectorSelector, "Sector"),
		Scope:              selectTagList(card, scopeSelector, "Scope"),
	}
}

// selectText returns the cleaned text of the first selector match,
// logging one warning when the field is absent.
func selectText(card *goquery.Selection, selector, field string) string {
	sel := card.Find(selector).First()
	if sel.Length() == 0 {
		slog.Warn("practice card missing field", "field", field)
		return ""
	}
	return htmlutil.CleanText(sel.Text())
}

// selectTagList joins the cleaned text of every selector match in
// document order. Repeated tags are kept as-is.
func selectTagList(card *goquery.Selection, selector, field string) string {
	var tags []string
	for _, node := range card.Find(selector).Nodes {
		text := htmlutil.CleanText(htmlutil.GetText(node))
		if text != "" {
			tags = append(tags, text)
		}
	}
	if len(tags) == 0 {
		slog.Warn("practice card missing field", "field", field)
		return ""
	}
	return textutil.JoinTags(tags)
}
