package invoicing

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"backoffice/internal/domain/worklog"
	"backoffice/internal/platform/money"
)

// ViewItem is an item as printed: labelled, formatted and with its week
// reference.
type ViewItem struct {
	Item
	Label                string     `json:"label"`
	Week                 string     `json:"week"`
	YearWeek             string     `json:"yearWeek"`
	Project              string     `json:"project,omitempty"`
	FormattedRate        string     `json:"formattedRate"`
	FormattedAmount      string     `json:"formattedAmount"`
	FormattedTotalAmount string     `json:"formattedTotalAmount"`
	FormattedChargeable  Chargeable `json:"formattedChargeable"`
}

type ViewOther struct {
	Other
	Week           string `json:"week"`
	YearWeek       string `json:"yearWeek"`
	FormattedRate  string `json:"formattedRate"`
	FormattedTotal string `json:"formattedTotal"`
}

// View is the presentation of an invoice used by the PDF and the API.
type View struct {
	Language string `json:"language"`
	Title    string `json:"title"`
	FileName string `json:"fileName"`

	Number     string `json:"number"`
	Type       Type   `json:"type"`
	Status     Status `json:"status"`
	SubmitDate string `json:"submitDate"`
	DueDate    string `json:"dueDate"`
	PONumber   string `json:"poNumber"`

	Sender   Party `json:"sender"`
	Receiver Party `json:"receiver"`

	TimeSheetItems []ViewItem  `json:"timeSheetItems"`
	ExpenseItems   []ViewItem  `json:"expenseItems"`
	Others         []ViewOther `json:"others"`

	VATPercentage                   decimal.Decimal `json:"vatPercentage"`
	TotalAmountVatExcluded          decimal.Decimal `json:"totalAmountVatExcluded"`
	TotalVatAmount                  decimal.Decimal `json:"totalVatAmount"`
	TotalAmount                     decimal.Decimal `json:"totalAmount"`
	FormattedVATPercentage          string          `json:"formattedVatPercentage"`
	FormattedTotalTimeSheetAmount   string          `json:"formattedTotalTimeSheetAmount"`
	FormattedTotalExpenseAmount     string          `json:"formattedTotalExpenseAmount"`
	FormattedTotalOtherAmount       string          `json:"formattedTotalOtherAmount"`
	FormattedTotalAmountVatExcluded string          `json:"formattedTotalAmountVatExcluded"`
	FormattedTotalVatAmount         string          `json:"formattedTotalVatAmount"`
	FormattedTotalAmount            string          `json:"formattedTotalAmount"`

	GAccount         *GAccountSplit `json:"gAccount,omitempty"`
	FormattedGAmount string         `json:"formattedGAmount,omitempty"`
	FormattedCAmount string         `json:"formattedCAmount,omitempty"`

	CancelledInvoiceNumber string `json:"cancelledInvoiceNumber,omitempty"`
	CreditInvoiceNumber    string `json:"creditInvoiceNumber,omitempty"`
	AllowCrossBorderVAT    bool   `json:"allowCrossBorderVat"`
	AllowNetherlandsVAT    bool   `json:"allowNetherlandsVat"`
}

// BuildView formats inv for presentation in lang. With lang empty the
// receiver's invoice language is used.
func BuildView(inv Invoice, p Parties, projects []Project, lang string) (View, error) {
	sender, receiver, err := SenderReceiver(inv.Type, p)
	if err != nil {
		return View{}, err
	}
	if inv.Sender != nil {
		sender = *inv.Sender
	}
	if inv.Receiver != nil {
		receiver = *inv.Receiver
	}
	if lang == "" {
		lang = receiver.Language
	}
	tag := money.Lang(lang)
	l := newLabeler(tag)

	title := l.label("invoice")
	if inv.Status == StatusCredited {
		title = l.label("credit_note")
	}
	v := View{
		Language:       tag.String(),
		Title:          title,
		FileName:       FileName(inv.Number),
		Number:         inv.Number,
		Type:           inv.Type,
		Status:         inv.Status,
		PONumber:       inv.PONumber,
		Sender:         sender,
		Receiver:       receiver,
		TimeSheetItems: FormatItems(inv.TimeSheetItems, false, tag, nil),
		ExpenseItems:   FormatItems(inv.ExpenseItems, true, tag, projects),
		Others:         formatOthers(inv.Others, tag),

		VATPercentage:                   inv.VATPercentage,
		TotalAmountVatExcluded:          inv.TotalAmountVatExcluded,
		TotalVatAmount:                  inv.TotalVatAmount,
		TotalAmount:                     inv.TotalAmount,
		FormattedVATPercentage:          money.PercentString(inv.VATPercentage),
		FormattedTotalTimeSheetAmount:   money.Currency(tag, inv.TotalTimeSheetAmount),
		FormattedTotalExpenseAmount:     money.Currency(tag, inv.TotalExpenseAmount),
		FormattedTotalOtherAmount:       money.Currency(tag, inv.TotalOtherAmount),
		FormattedTotalAmountVatExcluded: money.Currency(tag, inv.TotalAmountVatExcluded),
		FormattedTotalVatAmount:         money.Currency(tag, inv.TotalVatAmount),
		FormattedTotalAmount:            money.Currency(tag, inv.TotalAmount),

		CancelledInvoiceNumber: inv.CancelledInvoiceNumber,
		CreditInvoiceNumber:    inv.CreditInvoiceNumber,
		AllowCrossBorderVAT:    inv.AllowCrossBorderVAT,
		AllowNetherlandsVAT:    inv.AllowNetherlandsVAT,
	}
	if inv.SubmitDate != nil {
		v.SubmitDate = money.NLDate(*inv.SubmitDate)
	}
	if inv.DueDate != nil {
		v.DueDate = money.NLDate(*inv.DueDate)
	}
	if p.HiringCompany.GAccountEnabled && inv.Type == TypePaymentCompanyToHiringCompany {
		g := p.HiringCompany.GAccount
		if inv.GAccount.Valid {
			g = inv.GAccount.Decimal
		}
		split := SplitGAccount(inv.TotalAmount, g)
		v.GAccount = &split
		v.FormattedGAmount = money.Currency(tag, split.GAmount)
		v.FormattedCAmount = money.Currency(tag, split.CAmount)
	}
	return v, nil
}

// FormatItems prepares items for printing. Hidden items are dropped and the
// rest are ordered by week and then by worker name, ignoring case.
func FormatItems(items []Item, expense bool, tag language.Tag, projects []Project) []ViewItem {
	l := newLabeler(tag)
	out := make([]ViewItem, 0, len(items))
	for _, item := range items {
		if item.Chargeable == ChargeableHide {
			continue
		}
		v := ViewItem{Item: item, Label: l.label(string(item.Category))}
		switch {
		case item.Rate.IsZero():
			v.Rate = decimal.Zero
			v.FormattedRate = " "
		case item.Category == CategoryFinanceTimeExpenses:
			v.FormattedRate = item.Rate.String()
		default:
			v.FormattedRate = money.Currency(tag, item.Rate)
		}

		v.Week = fmt.Sprintf("%02d", item.WeekNumber)
		v.YearWeek = fmt.Sprintf("%d-%s", item.Date.Year(), v.Week)
		if item.Type == worklog.TypeExpense && (item.Rate.IsZero() || item.IsExpenses) {
			v.YearWeek = fmt.Sprintf("%s (%s)", v.YearWeek, money.NLDate(item.Date))
		}
		v.JobTitle = truncate(item.JobTitle, maxJobTitle)
		v.FormattedAmount = formatAmount(l, tag, item.Amount, item.Unit)
		v.FormattedTotalAmount = money.Currency(tag, item.TotalAmount)
		v.FormattedChargeable = ChargeableNo
		if item.Chargeable == ChargeableYes {
			v.FormattedChargeable = ChargeableYes
		}
		if expense && item.ProjectID != "" {
			if i := slices.IndexFunc(projects, func(p Project) bool { return p.ID == item.ProjectID }); i >= 0 {
				v.Project = projects[i].Name + " " + projects[i].Code
			}
		}
		out = append(out, v)
	}

	names := collate.New(tag, collate.IgnoreCase)
	slices.SortStableFunc(out, func(a, b ViewItem) int {
		if c := strings.Compare(a.YearWeek, b.YearWeek); c != 0 {
			return c
		}
		return names.CompareString(strings.ToUpper(a.WorkerName), strings.ToUpper(b.WorkerName))
	})
	return out
}

func formatOthers(others []Other, tag language.Tag) []ViewOther {
	out := make([]ViewOther, 0, len(others))
	for _, o := range others {
		_, week := o.Date.ISOWeek()
		v := ViewOther{
			Other:          o,
			Week:           fmt.Sprintf("%02d", week),
			FormattedRate:  money.Currency(tag, o.Rate),
			FormattedTotal: money.Currency(tag, o.Total),
		}
		v.YearWeek = fmt.Sprintf("%d-%s", o.Date.Year(), v.Week)
		out = append(out, v)
	}
	slices.SortStableFunc(out, func(a, b ViewOther) int { return strings.Compare(a.YearWeek, b.YearWeek) })
	return out
}

func formatAmount(l labeler, tag language.Tag, amount decimal.Decimal, unit Unit) string {
	switch unit {
	case UnitPerAmount:
		return money.Currency(tag, amount)
	case UnitPerHour:
		return money.Round(amount).String() + " " + l.label("hours")
	case UnitPerDay:
		return money.Round(amount).String() + " " + l.label("days")
	case UnitPerWeek:
		return money.Round(amount).String() + " " + l.label("weeks")
	case UnitPerKilometer:
		return money.Round(amount).String() + " " + l.label("km")
	}
	return money.Round(amount).String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
