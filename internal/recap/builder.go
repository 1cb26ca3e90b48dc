// Package recap turns a flat list of finalized purchases into the monthly
// and yearly recap report: per-record tax/PO-value/profit derivation,
// per-month buckets and one grand total row.
package recap

import (
	"sort"
	"time"

	"github.com/purchasing-admin/backend-go/internal/domain"
	"github.com/shopspring/decimal"
)

// Derived holds the per-record figures computed from a purchase. PPN is the
// purchase total times the tax rate rounded to currency precision, NilaiPO
// is the purchase total with PPN on top, and profit is what remains of the
// PPN margin after the handling fee. Deriving NilaiPO from the rounded PPN
// keeps the three figures mutually consistent to the smallest currency unit.
type Derived struct {
	PPN     decimal.Decimal `json:"ppn"`
	NilaiPO decimal.Decimal `json:"nilai_po"`
	Profit  decimal.Decimal `json:"profit"`
}

// MonthlyBucket owns the purchases of one calendar month plus their running
// sums. Buckets are rebuilt from scratch on every request; the sums are
// always recomputable from Records.
type MonthlyBucket struct {
	Year    int                     `json:"year"`
	Month   time.Month              `json:"month"`
	Records []domain.PurchaseRecord `json:"records"`

	TotalPembelian decimal.Decimal `json:"total_pembelian"`
	TotalPPN       decimal.Decimal `json:"total_ppn"`
	TotalNilaiPO   decimal.Decimal `json:"total_nilai_po"`
	TotalFee       decimal.Decimal `json:"total_fee"`
	TotalProfit    decimal.Decimal `json:"total_profit"`
}

// GrandTotal is the report footer: elementwise sums over all buckets plus
// the profit margin as a percentage of total purchases (0 when there were
// no purchases).
type GrandTotal struct {
	TotalPembelian   decimal.Decimal `json:"total_pembelian"`
	TotalPPN         decimal.Decimal `json:"total_ppn"`
	TotalNilaiPO     decimal.Decimal `json:"total_nilai_po"`
	TotalFee         decimal.Decimal `json:"total_fee"`
	TotalProfit      decimal.Decimal `json:"total_profit"`
	ProfitPercentage decimal.Decimal `json:"profit_percentage"`
}

// YearlyReport is the full recap for one selected year.
type YearlyReport struct {
	Year       int             `json:"year"`
	Buckets    []MonthlyBucket `json:"buckets"`
	GrandTotal GrandTotal      `json:"grand_total"`
	Skipped    int             `json:"skipped"`
}

// Builder derives per-record figures and groups purchases into monthly
// buckets. Zero-valued it applies the statutory 11% PPN in UTC with
// 2-digit currency precision.
type Builder struct {
	classifier Classifier
	ppnRate    decimal.Decimal
	precision  int32
}

func NewBuilder(classifier Classifier, ppnRate decimal.Decimal, precision int32) Builder {
	if ppnRate.IsZero() {
		ppnRate = decimal.New(11, -2)
	}

	return Builder{classifier: classifier, ppnRate: ppnRate, precision: precision}
}

// Derive computes the tax, PO value and profit of one purchase. A zero
// purchase total yields zero PPN and PO value and a profit of -fee; the fee
// is owed regardless.
func (b Builder) Derive(r domain.PurchaseRecord) Derived {
	ppn := r.PriceTotal.Mul(b.ppnRate).Round(b.precision)
	nilaiPO := r.PriceTotal.Add(ppn)

	return Derived{
		PPN:     ppn,
		NilaiPO: nilaiPO,
		Profit:  nilaiPO.Sub(r.PriceTotal).Sub(r.PriceFee),
	}
}

// Build groups records into monthly buckets for the given year, ordered by
// calendar month ascending regardless of input order. A yearFilter of 0
// includes every year (ordered year then month). Records whose timestamp
// cannot be classified are counted in Skipped, never dropped silently and
// never fatal to the other months.
func (b Builder) Build(records []domain.PurchaseRecord, yearFilter int) ([]MonthlyBucket, int) {
	buckets := make(map[Period]*MonthlyBucket)
	skipped := 0

	for _, r := range records {
		period, err := b.classifier.Classify(r.CreatedAt)
		if err != nil {
			skipped++
			continue
		}
		if yearFilter != 0 && period.Year != yearFilter {
			continue
		}

		bucket, ok := buckets[period]
		if !ok {
			bucket = &MonthlyBucket{
				Year:           period.Year,
				Month:          period.Month,
				TotalPembelian: decimal.Zero,
				TotalPPN:       decimal.Zero,
				TotalNilaiPO:   decimal.Zero,
				TotalFee:       decimal.Zero,
				TotalProfit:    decimal.Zero,
			}
			buckets[period] = bucket
		}

		derived := b.Derive(r)
		bucket.Records = append(bucket.Records, r)
		bucket.TotalPembelian = bucket.TotalPembelian.Add(r.PriceTotal)
		bucket.TotalPPN = bucket.TotalPPN.Add(derived.PPN)
		bucket.TotalNilaiPO = bucket.TotalNilaiPO.Add(derived.NilaiPO)
		bucket.TotalFee = bucket.TotalFee.Add(r.PriceFee)
		bucket.TotalProfit = bucket.TotalProfit.Add(derived.Profit)
	}

	out := make([]MonthlyBucket, 0, len(buckets))
	for _, bucket := range buckets {
		out = append(out, *bucket)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}

		return out[i].Month < out[j].Month
	})

	return out, skipped
}

// BuildYearly is Build plus Totalize for one selected year.
func (b Builder) BuildYearly(records []domain.PurchaseRecord, year int) YearlyReport {
	buckets, skipped := b.Build(records, year)

	return YearlyReport{
		Year:       year,
		Buckets:    buckets,
		GrandTotal: Totalize(buckets),
		Skipped:    skipped,
	}
}

// Totalize reduces monthly buckets into the grand total row. The profit
// percentage is defined as 0 when there were no purchases.
func Totalize(buckets []MonthlyBucket) GrandTotal {
	total := GrandTotal{
		TotalPembelian:   decimal.Zero,
		TotalPPN:         decimal.Zero,
		TotalNilaiPO:     decimal.Zero,
		TotalFee:         decimal.Zero,
		TotalProfit:      decimal.Zero,
		ProfitPercentage: decimal.Zero,
	}

	for _, bucket := range buckets {
		total.TotalPembelian = total.TotalPembelian.Add(bucket.TotalPembelian)
		total.TotalPPN = total.TotalPPN.Add(bucket.TotalPPN)
		total.TotalNilaiPO = total.TotalNilaiPO.Add(bucket.TotalNilaiPO)
		total.TotalFee = total.TotalFee.Add(bucket.TotalFee)
		total.TotalProfit = total.TotalProfit.Add(bucket.TotalProfit)
	}

	if !total.TotalPembelian.IsZero() {
		total.ProfitPercentage = total.TotalProfit.
			Div(total.TotalPembelian).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	return total
}
