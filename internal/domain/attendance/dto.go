package attendance

import (
	"regexp"
	"strconv"

	"github.com/haneco/timesheet-backend-go/internal/pkg/validator"
)

var monthRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// IsValidMonth checks the "YYYY-MM" ledger month format.
func IsValidMonth(month string) bool {
	return monthRe.MatchString(month)
}

type SaveLedgerRequest struct {
	UserID   string            `json:"user_id"`
	Month    string            `json:"month"`
	DayCodes map[string]string `json:"day_codes"`
}

func (r *SaveLedgerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}

	if !IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must use the YYYY-MM format",
		})
	}

	days, _ := DaysInMonth(r.Month)
	for key := range r.DayCodes {
		day, err := strconv.Atoi(key)
		if err != nil || day < 1 || (days > 0 && day > days) {
			errs = append(errs, validator.ValidationError{
				Field:   "day_codes",
				Message: "day_codes keys must be valid days of the month",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LedgerResponse struct {
	UserID      string            `json:"user_id"`
	DisplayName string            `json:"display_name,omitempty"`
	Month       string            `json:"month"`
	DayCodes    map[string]string `json:"day_codes"`
	Summary     Summary           `json:"summary"`
}

type MonthGridResponse struct {
	Month string           `json:"month"`
	Days  int              `json:"days"`
	Rows  []LedgerResponse `json:"rows"`
}
