// Package classify maps raw chat text onto a typed action.
//
// The bot understands three Thai message shapes, tried in fixed order:
// "ได้รับเงินจาก<note> <amount>" records income, "จ่ายค่า<note> <amount>"
// records an expense, and a message starting with "สรุป" requests the daily
// summary. Anything else is unrecognized and answered with the usage help.
package classify

import (
	"regexp"

	"poongtao/internal/core"
)

// Patterns are anchored at the start of the message only; trailing text
// after the amount is ignored.
var (
	incomeRe  = regexp.MustCompile(`^ได้รับเงินจาก\s*(.+)\s+(\d+(\.\d{1,2})?)`)
	expenseRe = regexp.MustCompile(`^จ่ายค่า\s*(.+)\s+(\d+(\.\d{1,2})?)`)
	summaryRe = regexp.MustCompile(`^สรุป`)
)

// HelpText describes the three accepted message formats.
const HelpText = "กรุณาพิมพ์ตามรูปแบบ เช่น 'ได้รับเงินจาก<แฟนจ๋า> <3000>' หรือ 'จ่ายค่า<ข้าวเช้า> <70.75>' หรือ 'สรุป' เพื่อดูสรุปรายรับรายจ่าย"

type (
	// Action is the result of classifying one message. Callers branch on the
	// concrete type instead of catching errors.
	Action interface{ isAction() }

	Income struct {
		Note   string
		Amount core.Money
	}

	Expense struct {
		Note   string
		Amount core.Money
	}

	SummaryRequest struct{}

	Unrecognized struct {
		Help string
	}

	// Failure means the message matched a record pattern but the amount
	// could not be parsed (e.g. overflow). It maps to a fixed error reply.
	Failure struct{}
)

func (Income) isAction()         {}
func (Expense) isAction()        {}
func (SummaryRequest) isAction() {}
func (Unrecognized) isAction()   {}
func (Failure) isAction()        {}

// Classify parses text into one of the five actions. It never panics; a
// malformed amount inside an otherwise matching message yields Failure.
func Classify(text string) Action {
	if m := incomeRe.FindStringSubmatch(text); m != nil {
		satang, err := core.ParseDecimalToSatang(m[2])
		if err != nil {
			return Failure{}
		}
		return Income{Note: m[1], Amount: core.Money{Satang: satang}}
	}
	if m := expenseRe.FindStringSubmatch(text); m != nil {
		satang, err := core.ParseDecimalToSatang(m[2])
		if err != nil {
			return Failure{}
		}
		return Expense{Note: m[1], Amount: core.Money{Satang: satang}}
	}
	if summaryRe.MatchString(text) {
		return SummaryRequest{}
	}
	return Unrecognized{Help: HelpText}
}
