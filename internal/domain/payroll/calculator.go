package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/subkh4n/SIPILPRO-sub001/internal/domain/worker"
)

// NormalDailyHours is the overtime threshold: hours past it in one day
// are paid at the overtime rate.
const NormalDailyHours = 8.0

// CalculateWage computes one worker-day's wage. On a holiday every hour
// is paid at the flat holiday rate; there is no overtime split. On a
// normal day the first 8 hours are paid at the normal rate and the rest
// at the overtime rate.
func CalculateWage(totalHours float64, rates worker.RateProfile, isHoliday bool) (decimal.Decimal, error) {
	if totalHours < 0 {
		return decimal.Zero, ErrInvalidHours
	}

	hours := decimal.NewFromFloat(totalHours)
	if isHoliday {
		return rates.Holiday.Mul(hours), nil
	}
	if totalHours <= NormalDailyHours {
		return rates.Normal.Mul(hours), nil
	}

	normal := rates.Normal.Mul(decimal.NewFromFloat(NormalDailyHours))
	overtime := rates.Overtime.Mul(decimal.NewFromFloat(totalHours - NormalDailyHours))
	return normal.Add(overtime), nil
}

// DescribeRate returns the applicable rate for display. Past the 8-hour
// threshold the descriptor carries the blended effective rate, since no
// single table rate applies to the whole day.
func DescribeRate(rates worker.RateProfile, isHoliday bool, totalHours float64) RateDescriptor {
	switch {
	case isHoliday:
		return RateDescriptor{Label: "Tarif libur", Rate: rates.Holiday}
	case totalHours <= NormalDailyHours:
		return RateDescriptor{Label: "Tarif normal", Rate: rates.Normal}
	default:
		wage, err := CalculateWage(totalHours, rates, false)
		if err != nil || totalHours == 0 {
			return RateDescriptor{Label: "Tarif normal", Rate: rates.Normal}
		}
		effective := wage.Div(decimal.NewFromFloat(totalHours))
		return RateDescriptor{Label: "Tarif campuran (normal + lembur)", Rate: effective}
	}
}
