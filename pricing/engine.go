package pricing

import (
	"github.com/shopspring/decimal"

	"madeireira-orcamento/models"
)

// crossSectionScale converts width_cm * thickness_cm into the fraction used by
// the cost estimate. The factor is kept as the business has always used it.
var crossSectionScale = decimal.NewFromInt(10000)

// LineInput represents input data for pricing a quote line
type LineInput struct {
	Product           models.Product
	LengthM           float64
	Quantity          int
	SellPricePerMeter float64
}

// UnitPrice returns the price of one piece: sellPricePerMeter * length
func UnitPrice(sellPricePerMeter, lengthM float64) float64 {
	return decimal.NewFromFloat(sellPricePerMeter).
		Mul(decimal.NewFromFloat(lengthM)).
		InexactFloat64()
}

// CostFraction returns the estimated material cost per linear meter:
// sellPricePerMeter * (width_cm * thickness_cm / 10000)
func CostFraction(sellPricePerMeter, widthCM, thicknessCM float64) float64 {
	return costFraction(decimal.NewFromFloat(sellPricePerMeter), widthCM, thicknessCM).InexactFloat64()
}

func costFraction(price decimal.Decimal, widthCM, thicknessCM float64) decimal.Decimal {
	area := decimal.NewFromFloat(widthCM).Mul(decimal.NewFromFloat(thicknessCM)).Div(crossSectionScale)
	return price.Mul(area)
}

// CalculateLine prices a quote line. UnitPrice, LineTotal and LineProfit are
// derived here and nowhere else.
func CalculateLine(in LineInput) models.QuoteLine {
	price := decimal.NewFromFloat(in.SellPricePerMeter)
	length := decimal.NewFromFloat(in.LengthM)
	qty := decimal.NewFromInt(int64(in.Quantity))

	unitPrice := price.Mul(length)
	lineTotal := unitPrice.Mul(qty)
	cost := costFraction(price, in.Product.WidthCM, in.Product.ThicknessCM)
	profit := price.Sub(cost).Mul(length).Mul(qty)

	return models.QuoteLine{
		ProductDescription:    in.Product.Description,
		WoodType:              in.Product.WoodType,
		WidthCM:               in.Product.WidthCM,
		ThicknessCM:           in.Product.ThicknessCM,
		LengthM:               in.LengthM,
		Quantity:              in.Quantity,
		UnitSellPricePerMeter: in.SellPricePerMeter,
		UnitPrice:             unitPrice.InexactFloat64(),
		LineTotal:             lineTotal.InexactFloat64(),
		LineProfit:            profit.InexactFloat64(),
	}
}

// Total sums the line totals of a quote
func Total(lines []models.QuoteLine) float64 {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(decimal.NewFromFloat(l.LineTotal))
	}
	return sum.InexactFloat64()
}

// Profit sums the line profits of a quote
func Profit(lines []models.QuoteLine) float64 {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(decimal.NewFromFloat(l.LineProfit))
	}
	return sum.InexactFloat64()
}
