package spreadsheet

import (
	"encoding/json"
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// inferColumnRules builds one validation rule per column from the
// runtime type of the first data row's cell at that column: strings
// require text, numbers require numbers, booleans require TRUE/FALSE.
// Columns whose first value is of any other type, and all columns when
// there are no data rows, get no rule. The returned slice is indexed by
// column; nil entries mean "no rule".
func inferColumnRules(headers []string, rows [][]any) []*sheets.DataValidationRule {
	rules := make([]*sheets.DataValidationRule, len(headers))
	if len(rows) == 0 {
		return rules
	}

	first := rows[0]
	for col := range headers {
		if col >= len(first) {
			continue
		}
		formula := validationFormula(first[col], col)
		if formula == "" {
			continue
		}
		rules[col] = &sheets.DataValidationRule{
			Condition: &sheets.BooleanCondition{
				Type:   "CUSTOM_FORMULA",
				Values: []*sheets.ConditionValue{{UserEnteredValue: formula}},
			},
			Strict: true,
		}
	}
	return rules
}

// validationFormula picks the formula for a column based on the sampled
// cell value. The cell reference is the column's first data cell (row 2)
// and is relative, so the rule adjusts per row when applied to a range.
func validationFormula(sample any, col int) string {
	cell := fmt.Sprintf("%s2", columnLetter(col))
	switch sample.(type) {
	case string:
		return fmt.Sprintf("=ISTEXT(%s)", cell)
	case bool:
		return fmt.Sprintf("=OR(EQ(%s,TRUE),EQ(%s,FALSE))", cell, cell)
	case int, int32, int64, float32, float64, json.Number:
		return fmt.Sprintf("=ISNUMBER(%s)", cell)
	default:
		return ""
	}
}

// columnLetter converts a zero-based column index to its A1 letter
// form: 0 -> A, 25 -> Z, 26 -> AA.
func columnLetter(col int) string {
	letters := ""
	for col >= 0 {
		letters = string(rune('A'+col%26)) + letters
		col = col/26 - 1
	}
	return letters
}
