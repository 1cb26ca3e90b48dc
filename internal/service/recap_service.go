package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/purchasing-admin/backend-go/internal/cache"
	"github.com/purchasing-admin/backend-go/internal/domain"
	"github.com/purchasing-admin/backend-go/internal/filter"
	"github.com/purchasing-admin/backend-go/internal/recap"
	"github.com/purchasing-admin/backend-go/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// overviewConcurrency bounds how many yearly reports are built at once for
// the multi-year overview.
const overviewConcurrency = 4

// RecapService builds the monthly/yearly recap reports from the purchase
// repository, with an optional cache in front.
type RecapService struct {
	repo        repository.PurchaseRepository
	builder     recap.Builder
	cache       cache.RecapCache
	allSentinel string
}

func NewRecapService(repo repository.PurchaseRepository, builder recap.Builder, recapCache cache.RecapCache, allSentinel string) *RecapService {
	if allSentinel == "" {
		allSentinel = filter.DefaultAllSentinel
	}

	return &RecapService{
		repo:        repo,
		builder:     builder,
		cache:       recapCache,
		allSentinel: allSentinel,
	}
}

// YearlyReport returns the recap for one year, optionally narrowed to a
// purchase category ("all" or empty means every category). Cache errors are
// logged and the report is rebuilt; a broken cache must not break the page.
func (s *RecapService) YearlyReport(ctx context.Context, year int, category string) (*recap.YearlyReport, error) {
	cached, hit, err := s.cache.GetReport(ctx, year, category)
	if err != nil {
		log.Warn().Err(err).Int("year", year).Msg("recap cache read failed")
	} else if hit {
		return cached, nil
	}

	records, err := s.repo.ListPurchases(ctx)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}

	records = filter.Apply(records, filter.Enum(category, s.allSentinel, func(r domain.PurchaseRecord) string {
		return r.Category.String()
	}))

	report := s.builder.BuildYearly(records, year)
	if report.Skipped > 0 {
		log.Warn().Int("skipped", report.Skipped).Int("year", year).Msg("recap skipped records with unclassifiable timestamps")
	}

	if err := s.cache.SetReport(ctx, year, category, &report); err != nil {
		log.Warn().Err(err).Int("year", year).Msg("recap cache write failed")
	}

	return &report, nil
}

// Overview builds the yearly reports for an inclusive year range, a few
// years at a time. Report order in the result is ascending by year.
func (s *RecapService) Overview(ctx context.Context, fromYear, toYear int) ([]recap.YearlyReport, error) {
	if fromYear > toYear {
		return nil, fmt.Errorf("invalid year range %d..%d", fromYear, toYear)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(overviewConcurrency)

	reports := make([]recap.YearlyReport, toYear-fromYear+1)
	for year := fromYear; year <= toYear; year++ {
		year := year
		g.Go(func() error {
			report, err := s.YearlyReport(ctx, year, "")
			if err != nil {
				return err
			}
			reports[year-fromYear] = *report

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Year < reports[j].Year })

	return reports, nil
}
