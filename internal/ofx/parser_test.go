package ofx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dompet/dompet/internal/model"
)

// Sample OFX data for testing.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20250515120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20250501120000[0:GMT]
<DTEND>20250531120000[0:GMT]
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20250512120000[0:GMT]
<TRNAMT>-150.00
<FITID>2025051201
<NAME>Whole Foods Market
</STMTTRN>
<STMTTRN>
<TRNTYPE>DIRECTDEP
<DTPOSTED>20250510120000[0:GMT]
<TRNAMT>5000.00
<FITID>2025051001
<NAME>ACME CORP PAYROLL
</STMTTRN>
<STMTTRN>
<TRNTYPE>INT
<DTPOSTED>20250520120000[0:GMT]
<TRNAMT>12.34
<FITID>2025052001
<NAME>INTEREST PAYMENT
</STMTTRN>
<STMTTRN>
<TRNTYPE>INT
<DTPOSTED>20250520120000[0:GMT]
<TRNAMT>12.34
<FITID>2025052001
<NAME>INTEREST PAYMENT
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20250531120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestParseFile(t *testing.T) {
	parser := NewParser()
	txns, err := parser.ParseFile(strings.NewReader(sampleBankOFX))
	require.NoError(t, err)

	// The duplicated FITID entry is collapsed.
	require.Len(t, txns, 3)

	byDescription := make(map[string]model.Transaction, len(txns))
	for _, txn := range txns {
		byDescription[txn.Description] = txn
		assert.Empty(t, txn.ID, "ids are assigned by the store, not the importer")
	}

	groceries := byDescription["Whole Foods Market"]
	assert.Equal(t, model.TypeExpense, groceries.Type)
	assert.Equal(t, 150.00, groceries.Amount)
	assert.Equal(t, "2025-05-12", groceries.Date)
	assert.Equal(t, "other-expense", groceries.Category)

	payroll := byDescription["ACME CORP PAYROLL"]
	assert.Equal(t, model.TypeIncome, payroll.Type)
	assert.Equal(t, 5000.00, payroll.Amount)
	assert.Equal(t, "salary", payroll.Category)

	interest := byDescription["INTEREST PAYMENT"]
	assert.Equal(t, model.TypeIncome, interest.Type)
	assert.Equal(t, "investment", interest.Category)
}

func TestParseFileMalformed(t *testing.T) {
	parser := NewParser()
	_, err := parser.ParseFile(strings.NewReader("this is not OFX"))
	require.Error(t, err)
}

func TestPreprocess(t *testing.T) {
	parser := NewParser()

	t.Run("uppercases severity values", func(t *testing.T) {
		got := parser.preprocess("<SEVERITY>Info</SEVERITY>")
		assert.Equal(t, "<SEVERITY>INFO</SEVERITY>", got)
	})

	t.Run("closes dangling SGML tags", func(t *testing.T) {
		got := parser.preprocess("<STMTTRN\n")
		assert.Equal(t, "<STMTTRN>\n", got)
	})

	t.Run("trims leading blank lines before the header", func(t *testing.T) {
		got := parser.preprocess("\n\n  OFXHEADER:100")
		assert.True(t, strings.HasPrefix(got, "OFXHEADER"))
	})
}

func TestCategoryForTrnType(t *testing.T) {
	assert.Equal(t, "investment", categoryForTrnType("INT", model.TypeIncome))
	assert.Equal(t, "investment", categoryForTrnType("DIV", model.TypeIncome))
	assert.Equal(t, "salary", categoryForTrnType("DIRECTDEP", model.TypeIncome))
	assert.Equal(t, "other-income", categoryForTrnType("CREDIT", model.TypeIncome))
	assert.Equal(t, "other-expense", categoryForTrnType("DEBIT", model.TypeExpense))
}
