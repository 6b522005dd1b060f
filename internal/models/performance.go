package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PerformanceBand - цветовая полоса показателя на графиках
type PerformanceBand string

const (
	BandGood PerformanceBand = "good"
	BandFair PerformanceBand = "fair"
	BandPoor PerformanceBand = "poor"
)

func BandFor(value int) PerformanceBand {
	switch {
	case value >= 95:
		return BandGood
	case value >= 65:
		return BandFair
	}
	return BandPoor
}

// Percent - округленный показатель в процентах и его полоса
type Percent struct {
	Value     int             `json:"value"`
	Remaining int             `json:"remaining"`
	Band      PerformanceBand `json:"band"`
}

func NewPercent(value decimal.Decimal) Percent {
	v := int(value.Round(0).IntPart())
	return Percent{Value: v, Remaining: 100 - v, Band: BandFor(v)}
}

// ParsePercent разбирает строковый процент API ("87.5", "87.5%"); мусор и пустая строка дают 0
func ParsePercent(raw string) Percent {
	d, err := decimal.NewFromString(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "%")))
	if err != nil {
		d = decimal.Zero
	}
	return NewPercent(d)
}

// PercentOf превращает nullable метрику в процент; null считается нулем
func PercentOf(value *float64) Percent {
	if value == nil {
		return NewPercent(decimal.Zero)
	}
	return NewPercent(decimal.NewFromFloat(*value))
}
