// Package codes holds the fixed reference tables and formatting rules for
// the human-readable identifiers: member register numbers, structured loan
// numbers and loan registration numbers.
package codes

import "fmt"

// LoanNumberBranch is the fixed leading segment of every loan number.
const LoanNumberBranch = "12"

// Town -> 3-char code. Unmapped towns fall back to "000".
var townCodes = map[string]string{
	"Matara":        "001",
	"Galle":         "002",
	"Weligama":      "003",
	"Akuressa":      "004",
	"Kamburupitiya": "005",
	"Hakmana":       "006",
	"Deniyaya":      "007",
	"Dickwella":     "008",
	"Tangalle":      "009",
}

// Group -> 3-char code. Unmapped groups fall back to "000".
var groupCodes = map[string]string{
	"Group 1": "001",
	"Group 2": "002",
	"Group 3": "003",
}

const unmappedCode = "000"

func TownCode(town string) string {
	if c, ok := townCodes[town]; ok {
		return c
	}
	return unmappedCode
}

func GroupCode(group string) string {
	if c, ok := groupCodes[group]; ok {
		return c
	}
	return unmappedCode
}

// LoanNumberPrefix builds the counting prefix "12-<town>-<group>-" that
// scopes the per-town-per-group ordinal.
func LoanNumberPrefix(townCode, groupCode string) string {
	return LoanNumberBranch + "-" + townCode + "-" + groupCode + "-"
}

// FormatLoanNumber renders the full structured code, e.g. with town code
// "007", group code "002" and ordinal 3: "12-007-002-003".
func FormatLoanNumber(townCode, groupCode string, ordinal int) string {
	return fmt.Sprintf("%s%03d", LoanNumberPrefix(townCode, groupCode), ordinal)
}

// FormatRegisterNumber renders a dense sequence value for display,
// zero-padded to six digits (000001, 000002, ...). Applies to both member
// register numbers and loan registration numbers.
func FormatRegisterNumber(n int) string {
	return fmt.Sprintf("%06d", n)
}
