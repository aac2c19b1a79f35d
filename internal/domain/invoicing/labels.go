package invoicing

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// labelTexts are printf formats; a literal percent sign is written %%.
var labelTexts = map[string][3]string{
	// key: English, Dutch, German
	string(CategoryRegularHours):           {"Regular hours", "Normale uren", "Normalstunden"},
	string(CategoryAdjustedHours):          {"Adjusted hours", "Toeslaguren", "Zuschlagsstunden"},
	string(CategoryFixedCompensation):      {"Fixed compensation", "Vaste vergoeding", "Feste Vergütung"},
	string(CategoryTravelExpenses):         {"Travel expenses", "Reiskosten", "Reisekosten"},
	string(CategoryTravelTimeExpenses):     {"Travel time", "Reistijd", "Reisezeit"},
	string(CategoryFoodExpenses):           {"Food expenses", "Voedingskosten", "Verpflegungskosten"},
	string(CategoryOtherExpenses):          {"Other expenses", "Overige kosten", "Sonstige Kosten"},
	string(CategoryDefaultExpenses):        {"Recurring expenses", "Vaste onkosten", "Wiederkehrende Kosten"},
	string(CategoryMeditationTimeExpenses): {"Mediation fee", "Bemiddelingskosten", "Vermittlungsgebühr"},
	string(CategoryFinanceTimeExpenses):    {"Pre-financing", "Voorfinanciering", "Vorfinanzierung"},

	"hours": {"hours", "uren", "Stunden"},
	"days":  {"days", "dagen", "Tage"},
	"weeks": {"weeks", "weken", "Wochen"},
	"km":    {"km", "km", "km"},

	"invoice":        {"Invoice", "Factuur", "Rechnung"},
	"credit_note":    {"Credit note", "Creditnota", "Gutschrift"},
	"invoice_number": {"Invoice number", "Factuurnummer", "Rechnungsnummer"},
	"invoice_date":   {"Invoice date", "Factuurdatum", "Rechnungsdatum"},
	"due_date":       {"Due date", "Vervaldatum", "Fälligkeitsdatum"},
	"po_number":      {"PO number", "Inkoopordernummer", "Bestellnummer"},
	"credits":        {"Credits invoice", "Crediteert factuur", "Storniert Rechnung"},
	"week":           {"Week", "Week", "Woche"},
	"worker":         {"Worker", "Medewerker", "Mitarbeiter"},
	"description":    {"Description", "Omschrijving", "Beschreibung"},
	"quantity":       {"Quantity", "Aantal", "Menge"},
	"rate":           {"Rate", "Tarief", "Satz"},
	"amount":         {"Amount", "Bedrag", "Betrag"},
	"timesheets":     {"Hours", "Uren", "Stunden"},
	"expenses":       {"Expenses", "Onkosten", "Auslagen"},
	"others":         {"Other", "Overig", "Sonstiges"},
	"subtotal":       {"Subtotal", "Subtotaal", "Zwischensumme"},
	"vat":            {"VAT", "BTW", "MwSt."},
	"total":          {"Total", "Totaal", "Gesamt"},
	"g_account":      {"G-account", "G-rekening", "G-Konto"},
	"c_account":      {"C-account", "C-rekening", "C-Konto"},
	"reverse_charge": {"VAT reverse-charged", "BTW verlegd", "Steuerschuldnerschaft des Leistungsempfängers"},
	"cross_border":   {"Intra-community supply, VAT 0%%", "Intracommunautaire levering, BTW 0%%", "Innergemeinschaftliche Leistung, MwSt. 0%%"},
}

var labelCatalog = newLabelCatalog()

func newLabelCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	tags := [3]language.Tag{language.English, language.Dutch, language.German}
	for key, texts := range labelTexts {
		for i, tag := range tags {
			// keys and texts are static, SetString only fails on malformed messages
			_ = b.SetString(tag, key, texts[i])
		}
	}
	return b
}

type labeler struct {
	printer *message.Printer
}

func newLabeler(tag language.Tag) labeler {
	return labeler{printer: message.NewPrinter(tag, message.Catalog(labelCatalog))}
}

// label translates a known key. Unknown keys, such as rate-plan labels and
// custom expense categories, are returned unchanged.
func (l labeler) label(key string) string {
	if _, ok := labelTexts[key]; !ok {
		return key
	}
	return l.printer.Sprintf(key)
}
