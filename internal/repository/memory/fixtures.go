package memory

import (
	"time"

	"github.com/purchasing-admin/backend-go/internal/domain"
	"github.com/shopspring/decimal"
)

// SeedDemoData loads a small demo dataset so the dashboard renders
// something out of the box: three vendors, two tenders and a handful of
// purchases spread over the current year.
func SeedDemoData(s *Store) {
	now := time.Now()
	year := now.Year()

	vendors := []domain.Vendor{
		{ID: "v-001", Name: "PT Sumber Energi", Address: "Jl. Gas Alam 12, Balikpapan", Phone: "+62-542-110011", Email: "sales@sumberenergi.example", Status: domain.StatusApproved, Active: true},
		{ID: "v-002", Name: "CV Mitra Teknik", Address: "Jl. Industri 4, Surabaya", Phone: "+62-31-220022", Email: "info@mitrateknik.example", Status: domain.StatusApproved, Active: true},
		{ID: "v-003", Name: "UD Cahaya Logam", Address: "Jl. Baja 9, Cilegon", Phone: "+62-254-330033", Email: "cs@cahayalogam.example", Status: domain.StatusPending, Active: false},
	}

	tenders := []domain.Tender{
		{ID: "t-001", Title: "Pengadaan pipa distribusi", VendorID: "v-002", Status: domain.StatusApproved, Urgent: false, CreatedAt: time.Date(year, time.February, 3, 9, 0, 0, 0, time.UTC)},
		{ID: "t-002", Title: "Kontrak gas industri tahunan", VendorID: "v-001", Status: domain.StatusPending, Urgent: true, CreatedAt: time.Date(year, time.April, 18, 14, 30, 0, 0, time.UTC)},
	}

	purchases := []domain.PurchaseRecord{
		{
			ID: "p-001", VendorID: "v-001", Description: "Pengisian gas bulanan",
			Category: domain.CategoryKPG, Status: domain.StatusApproved, HasPO: true,
			CreatedAt:  time.Date(year, time.January, 12, 10, 0, 0, 0, time.UTC),
			PriceTotal: decimal.NewFromInt(12_500_000), PriceFee: decimal.NewFromInt(250_000),
		},
		{
			ID: "p-002", VendorID: "v-002", Description: "Suku cadang kompresor",
			Category: domain.CategoryPurchase, Status: domain.StatusApproved, HasPO: true,
			CreatedAt:  time.Date(year, time.January, 27, 13, 45, 0, 0, time.UTC),
			PriceTotal: decimal.NewFromInt(4_750_000), PriceFee: decimal.NewFromInt(0),
		},
		{
			ID: "p-003", VendorID: "v-002", Description: "Bahan habis pakai laboratorium",
			Category: domain.CategoryKPC, Status: domain.StatusPending, HasPO: false,
			CreatedAt:  time.Date(year, time.March, 5, 8, 20, 0, 0, time.UTC),
			PriceTotal: decimal.NewFromInt(1_980_000), PriceFee: decimal.NewFromInt(60_000),
		},
		{
			ID: "p-004", VendorID: "v-003", Description: "Plat baja galvanis",
			Category: domain.CategoryPurchase, Status: domain.StatusRejected, HasPO: false,
			CreatedAt:  time.Date(year, time.March, 22, 16, 10, 0, 0, time.UTC),
			PriceTotal: decimal.NewFromInt(8_200_000), PriceFee: decimal.NewFromInt(120_000),
		},
	}

	s.Seed(vendors, tenders, purchases)
}
