package utils

import "fmt"

// Money is stored as int64 paise everywhere; formatting to rupees happens
// only at the document edge.

func Rupees(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}
	return fmt.Sprintf("%s₹%d.%02d", sign, paise/100, paise%100)
}
