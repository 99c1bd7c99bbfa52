// Package ofx imports bank statements in OFX/QFX format and maps them
// onto the tracker's transaction model.
package ofx

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/aclindsa/ofxgo"

	"github.com/dompet/dompet/internal/model"
)

// Parser parses OFX/QFX statement files.
type Parser struct{}

// NewParser creates a new OFX parser.
func NewParser() *Parser {
	return &Parser{}
}

var (
	severityRegex = regexp.MustCompile(`(?i)<SEVERITY>(Info|Warn|Error)</SEVERITY>`)
	tagFixRegex   = regexp.MustCompile(`(?m)^(\s*<[A-Z][A-Z0-9._]*[A-Z0-9])$`)
)

// preprocess fixes common formatting issues in bank-exported OFX:
// leading whitespace before the header, mixed-case SEVERITY values,
// and SGML-style opening tags missing their closing bracket.
func (p *Parser) preprocess(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")
	content = severityRegex.ReplaceAllStringFunc(content, strings.ToUpper)
	return tagFixRegex.ReplaceAllString(content, "$1>")
}

// ParseFile parses an OFX/QFX file into tracker transactions. The
// returned records carry no id; the transaction store assigns ids
// when they are added. Duplicate statement entries (same FITID) are
// collapsed.
func (p *Parser) ParseFile(reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(p.preprocess(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var txns []model.Transaction
	seen := make(map[string]bool)

	collect := func(list *ofxgo.TransactionList) {
		if list == nil {
			return
		}
		for _, ofxTx := range list.Transactions {
			fitID := string(ofxTx.FiTID)
			if fitID != "" && seen[fitID] {
				continue
			}
			seen[fitID] = true
			txns = append(txns, p.convert(ofxTx))
		}
	}

	var bankStmts, ccStmts int
	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok {
			bankStmts++
			collect(stmt.BankTranList)
		}
	}
	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok {
			ccStmts++
			collect(stmt.BankTranList)
		}
	}

	slog.Info("Parsed OFX file",
		"transactions", len(txns),
		"bank_statements", bankStmts,
		"cc_statements", ccStmts)

	return txns, nil
}

// convert maps one OFX statement entry onto the tracker model. OFX
// uses signed amounts (negative for debits); the tracker stores a
// magnitude plus a type.
func (p *Parser) convert(ofxTx ofxgo.Transaction) model.Transaction {
	amount, _ := ofxTx.TrnAmt.Float64()
	txType := model.TypeIncome
	if amount < 0 {
		amount = -amount
		txType = model.TypeExpense
	}

	description := strings.TrimSpace(string(ofxTx.Name))
	if description == "" {
		description = strings.TrimSpace(string(ofxTx.Memo))
	}
	if description == "" {
		description = "Imported transaction"
	}

	return model.Transaction{
		Description: description,
		Amount:      amount,
		Date:        ofxTx.DtPosted.Time.Format(model.DateLayout),
		Type:        txType,
		Category:    categoryForTrnType(fmt.Sprintf("%v", ofxTx.TrnType), txType),
	}
}

// categoryForTrnType infers a category key from the OFX transaction
// type. The inference is deliberately coarse; users recategorize
// after import.
func categoryForTrnType(trnType string, txType model.TransactionType) string {
	switch trnType {
	case "INT", "DIV":
		return "investment"
	case "DIRECTDEP":
		return "salary"
	}
	if txType == model.TypeIncome {
		return "other-income"
	}
	return "other-expense"
}
