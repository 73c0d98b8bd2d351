package shop

import "fmt"

// WarningCode identifies the condition that raised a warning.
type WarningCode string

const (
	WarnInputClamped    WarningCode = "input_clamped"
	WarnMaterialScarce  WarningCode = "material_scarcity"
	WarnStorageOverflow WarningCode = "storage_overflow"
	WarnLostSales       WarningCode = "lost_sales"
	WarnNoWorkers       WarningCode = "no_workers"
	WarnLowCash         WarningCode = "low_cash"
)

// Warning is a non-fatal condition recorded on the State produced by the
// period in which it occurred.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

func Warningf(code WarningCode, format string, args ...any) Warning {
	return Warning{Code: code, Message: fmt.Sprintf(format, args...)}
}

// HasWarning reports whether ws contains a warning with the given code.
func HasWarning(ws []Warning, code WarningCode) bool {
	for _, w := range ws {
		if w.Code == code {
			return true
		}
	}
	return false
}
