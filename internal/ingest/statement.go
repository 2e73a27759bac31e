package ingest

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/bizpulse/backend/internal/model"
)

const (
	maxStatementText = 100 * 1024 // cap on extracted text
	scannedThreshold = 50         // chars per page below which the PDF is treated as scanned
	minParseRate     = 0.50       // parsed lines vs estimated transaction lines
)

// StatementAnalysis holds the pre-processed text of an uploaded bank statement.
type StatementAnalysis struct {
	PageCount        int
	Lines            []string
	EstimatedTxCount int
	IsScanned        bool
	Err              error
}

// statementLineRe matches a statement line of the form: date, description,
// amount with optional sign, currency symbol or CR/DR suffix.
var statementLineRe = regexp.MustCompile(
	`(?i)` +
		`(\d{1,2}[/\-\.]\d{1,2}[/\-\.]\d{2,4}|\d{4}[/\-]\d{2}[/\-]\d{2}|` +
		`(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2}(?:[,\s]+\d{2,4})?|` +
		`\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?(?:[,\s]+\d{2,4})?)` +
		`\s+(.+?)\s+` +
		`(-?\$?\d{1,3}(?:,\d{3})*\.\d{2})\s*(?:CR|DR)?$`,
)

var statementDateRe = regexp.MustCompile(
	`(?i)(?:\d{1,2}[/\-\.]\d{1,2}[/\-\.]\d{2,4})` +
		`|(?:\d{4}[/\-]\d{2}[/\-]\d{2})` +
		`|(?:(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2})` +
		`|(?:\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?)`,
)

var statementAmountRe = regexp.MustCompile(
	`[\$\-]?\d{1,3}(?:[,]\d{3})*(?:\.\d{1,2})|\d+\.\d{2}`,
)

// AnalyzeStatement extracts text and line metadata from an uploaded PDF.
// The pdf library panics on some malformed documents, so the whole pass is
// wrapped in recover and returns a conservative result instead.
func AnalyzeStatement(data []byte) (result *StatementAnalysis) {
	result = &StatementAnalysis{PageCount: 1, IsScanned: true}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Ingest] recovered from PDF panic: %v", r)
			result.Err = fmt.Errorf("panic during statement analysis: %v", r)
			result.IsScanned = true
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		result.Err = fmt.Errorf("open PDF reader: %w", err)
		return result
	}

	result.PageCount = reader.NumPage()
	if result.PageCount < 1 {
		result.PageCount = 1
	}

	plainText, err := reader.GetPlainText()
	if err != nil {
		result.Err = fmt.Errorf("extract plain text: %w", err)
		return result
	}

	textBytes, err := io.ReadAll(io.LimitReader(plainText, int64(maxStatementText)))
	if err != nil {
		result.Err = fmt.Errorf("read plain text: %w", err)
		return result
	}

	text := string(textBytes)
	result.IsScanned = len(text)/result.PageCount < scannedThreshold

	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			result.Lines = append(result.Lines, trimmed)
		}
	}

	for _, line := range result.Lines {
		if statementDateRe.MatchString(line) && statementAmountRe.MatchString(line) {
			result.EstimatedTxCount++
		}
	}

	return result
}

// ParseStatementLines turns pre-analyzed statement text into transactions.
// Credits become revenue records and debits become expenses, with the
// vendor mapping supplying expense categories. Returns an error when too
// few of the candidate lines parse, which usually means the statement
// layout is one the line pattern does not cover.
func ParseStatementLines(analysis *StatementAnalysis, businessID string) ([]model.Transaction, error) {
	if analysis == nil || analysis.IsScanned {
		return nil, fmt.Errorf("cannot parse a scanned statement")
	}

	var txns []model.Transaction
	for _, line := range analysis.Lines {
		matches := statementLineRe.FindStringSubmatch(line)
		if matches == nil {
			continue
		}

		date := parseDateString(strings.TrimSpace(matches[1]))
		description := strings.TrimSpace(matches[2])
		amount, isDebit := parseStatementAmount(strings.TrimSpace(matches[3]), line)
		if amount <= 0 || date.IsZero() {
			continue
		}

		info := NormalizeVendor(description)
		tx := model.Transaction{
			BusinessID:  businessID,
			Amount:      amount,
			Date:        date,
			Description: info.Name,
		}
		if isDebit {
			tx.Kind = model.KindExpense
			tx.Label = info.Category
		} else {
			tx.Kind = model.KindRevenue
			tx.Label = info.Name
		}
		txns = append(txns, tx)
	}

	if analysis.EstimatedTxCount > 0 {
		rate := float64(len(txns)) / float64(analysis.EstimatedTxCount)
		if rate < minParseRate {
			return nil, fmt.Errorf("parsed %d of %d candidate lines, below the %.0f%% floor",
				len(txns), analysis.EstimatedTxCount, minParseRate*100)
		}
	}
	if len(txns) == 0 {
		return nil, fmt.Errorf("no transactions parsed from statement")
	}

	return txns, nil
}

// ImportStatement analyzes and parses an uploaded statement in one call.
func ImportStatement(data []byte, businessID string) ([]model.Transaction, error) {
	analysis := AnalyzeStatement(data)
	if analysis.Err != nil {
		return nil, analysis.Err
	}
	return ParseStatementLines(analysis, businessID)
}

// parseStatementAmount extracts the numeric amount and debit/credit
// direction from strings like "$1,234.56", "-45.00" or "45.00 CR".
// The CR suffix sits outside the captured amount group, so the full line
// is consulted for it.
func parseStatementAmount(s, line string) (float64, bool) {
	isDebit := true
	if strings.HasSuffix(strings.ToUpper(strings.TrimSpace(line)), "CR") {
		isDebit = false
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "-") {
		// Negative amounts on bank statements are usually credits or refunds.
		s = s[1:]
		isDebit = false
	}

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return amount, isDebit
}

// statementImportWindow bounds how old a parsed transaction may be before
// it is dropped as a probable date misparse.
const statementImportWindow = 5 * 365 * 24 * time.Hour

// FilterRecent removes transactions dated unreasonably far in the past or
// future relative to now.
func FilterRecent(txns []model.Transaction, now time.Time) []model.Transaction {
	out := make([]model.Transaction, 0, len(txns))
	for _, t := range txns {
		if now.Sub(t.Date) > statementImportWindow {
			continue
		}
		if t.Date.Sub(now) > 24*time.Hour {
			continue
		}
		out = append(out, t)
	}
	return out
}
