package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/SscSPs/share_register/internal/core/domain"
	"github.com/SscSPs/share_register/internal/utils"
	"github.com/gocarina/gocsv"
)

const (
	titleOwnershipList = "ÄGARFÖRTECKNING"
	titleClasses       = "AKTIESLAG"
	titleHistory       = "TRANSAKTIONSHISTORIK"

	percentPlaces int32 = 2
	moneyPlaces   int32 = 2
	dateLayout          = "2006-01-02"
)

var transactionTypeLabels = map[domain.ShareTransactionType]string{
	domain.Issuance:   "Nyemission",
	domain.Transfer:   "Överlåtelse",
	domain.Redemption: "Inlösen",
	domain.Split:      "Split",
}

type holderRow struct {
	Name      string `csv:"Namn"`
	Shares    string `csv:"Antal aktier"`
	Ownership string `csv:"Ägarandel (%)"`
	Voting    string `csv:"Röstandel (%)"`
	Classes   string `csv:"Aktieslag"`
}

type classRow struct {
	Class         string `csv:"Aktieslag"`
	VotesPerShare string `csv:"Röster per aktie"`
	Shares        string `csv:"Antal aktier"`
	Votes         string `csv:"Antal röster"`
	Percentage    string `csv:"Andel av aktier (%)"`
	ShareCapital  string `csv:"Aktiekapital"`
}

type transactionRow struct {
	Date        string `csv:"Datum"`
	Type        string `csv:"Typ"`
	Description string `csv:"Beskrivning"`
	Class       string `csv:"Aktieslag"`
	Count       string `csv:"Antal"`
	From        string `csv:"Från nr"`
	To          string `csv:"Till nr"`
	Price       string `csv:"Pris per aktie"`
	Total       string `csv:"Totalbelopp"`
}

func (f *Formatter) renderCSV(doc Document) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = f.delimiter
	out := gocsv.NewSafeCSVWriter(w)

	sections := []func(*gocsv.SafeCSVWriter) error{
		func(out *gocsv.SafeCSVWriter) error { return writeHolders(out, doc.CapTable) },
		func(out *gocsv.SafeCSVWriter) error { return writeTotals(out, doc.CapTable) },
		func(out *gocsv.SafeCSVWriter) error { return writeClasses(out, doc.CapTable) },
		func(out *gocsv.SafeCSVWriter) error { return writeHistory(out, doc.Transactions) },
	}
	for i, section := range sections {
		if i > 0 {
			out.Flush()
			buf.WriteString("\n")
		}
		if err := section(out); err != nil {
			return nil, err
		}
	}
	out.Flush()
	if err := out.Error(); err != nil {
		return nil, fmt.Errorf("failed to write csv export: %w", err)
	}
	return buf.Bytes(), nil
}

func writeHolders(out *gocsv.SafeCSVWriter, summary domain.CapTableSummary) error {
	if err := out.Write([]string{titleOwnershipList}); err != nil {
		return err
	}
	rows := make([]holderRow, 0, len(summary.Shareholders))
	for _, h := range summary.Shareholders {
		rows = append(rows, holderRow{
			Name:      h.Name,
			Shares:    strconv.FormatInt(h.TotalShares, 10),
			Ownership: utils.FormatFixed(h.OwnershipPercentage, percentPlaces),
			Voting:    utils.FormatFixed(h.VotingPercentage, percentPlaces),
			Classes:   classBreakdown(h.Classes),
		})
	}
	return marshalBlock(rows, out)
}

func writeTotals(out *gocsv.SafeCSVWriter, summary domain.CapTableSummary) error {
	records := [][]string{
		{"Totalt antal aktier", strconv.FormatInt(summary.TotalShares, 10)},
		{"Totalt antal röster", utils.FormatWithPrecision(summary.TotalVotes, 4)},
		{"Aktiekapital", utils.FormatFixed(summary.TotalShareCapital, moneyPlaces)},
	}
	for _, r := range records {
		if err := out.Write(r); err != nil {
			return err
		}
	}
	return nil
}

func writeClasses(out *gocsv.SafeCSVWriter, summary domain.CapTableSummary) error {
	if err := out.Write([]string{titleClasses}); err != nil {
		return err
	}
	rows := make([]classRow, 0, len(summary.Classes))
	for _, c := range summary.Classes {
		rows = append(rows, classRow{
			Class:         c.ShareClass,
			VotesPerShare: utils.FormatWithPrecision(c.VotesPerShare, 4),
			Shares:        strconv.FormatInt(c.TotalShares, 10),
			Votes:         utils.FormatWithPrecision(c.TotalVotes, 4),
			Percentage:    utils.FormatFixed(c.Percentage, percentPlaces),
			ShareCapital:  utils.FormatFixed(c.ShareCapital, moneyPlaces),
		})
	}
	return marshalBlock(rows, out)
}

func writeHistory(out *gocsv.SafeCSVWriter, transactions []domain.ShareTransaction) error {
	if err := out.Write([]string{titleHistory}); err != nil {
		return err
	}
	rows := make([]transactionRow, 0, len(transactions))
	for _, t := range transactions {
		label, ok := transactionTypeLabels[t.Type]
		if !ok {
			label = string(t.Type)
		}
		rows = append(rows, transactionRow{
			Date:        t.TransactionDate.Format(dateLayout),
			Type:        label,
			Description: t.Description,
			Class:       t.ShareClass,
			Count:       strconv.FormatInt(t.NumberOfShares, 10),
			From:        strconv.FormatInt(t.ShareNumberFrom, 10),
			To:          strconv.FormatInt(t.ShareNumberTo, 10),
			Price:       utils.FormatOptionalFixed(t.PricePerShare, moneyPlaces),
			Total:       utils.FormatOptionalFixed(t.TotalAmount, moneyPlaces),
		})
	}
	return marshalBlock(rows, out)
}

// marshalBlock writes a header row and one row per element. gocsv flushes the writer when done.
func marshalBlock(rows any, out *gocsv.SafeCSVWriter) error {
	if err := gocsv.MarshalCSV(rows, out); err != nil {
		return fmt.Errorf("failed to marshal csv block: %w", err)
	}
	return nil
}

// classBreakdown renders per-class holdings as "A: 100, B: 50".
func classBreakdown(classes []domain.ClassHolding) string {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		parts = append(parts, fmt.Sprintf("%s: %d", c.ShareClass, c.Shares))
	}
	return strings.Join(parts, ", ")
}
