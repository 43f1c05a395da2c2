package shared

import (
	"math"
	"strconv"
	"strings"

	"hotel/shared/constant"
)

func ConvertStringToInt(value string) (int, error) {
	intValue, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	return intValue, nil
}

// CalculateTotalPage returns ceil(total/limit) with a floor of one page.
func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// SplitAndTrim splits a comma separated list, trimming each entry and dropping empty ones.
func SplitAndTrim(value string) []string {
	res := []string{}

	for _, item := range strings.Split(value, constant.Comma) {
		item = strings.TrimSpace(item)
		if item == constant.Empty {
			continue
		}

		res = append(res, item)
	}

	return res
}

// RoundCurrency rounds a currency amount to two decimal places.
func RoundCurrency(amount float64) float64 {
	const cents = 100

	return math.Round(amount*cents) / cents
}
