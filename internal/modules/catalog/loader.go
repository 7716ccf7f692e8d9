// README: CSV bulk loader for reference data; runs at startup and on a periodic refresh tick.
package catalog

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"roamcost/internal/logging"
	"roamcost/internal/metrics"
)

// RefStore is the write side of the catalog store used by the loader.
type RefStore interface {
	UpsertCountry(ctx context.Context, c Country) error
	UpsertRate(ctx context.Context, r RateEntry) error
	UpsertPack(ctx context.Context, p Pack) error
}

type Loader struct {
	store    RefStore
	dataDir  string
	interval time.Duration
	catalog  *Service
	metrics  *metrics.Collector
}

func NewLoader(store RefStore, catalogSvc *Service, dataDir string, interval time.Duration, m *metrics.Collector) *Loader {
	return &Loader{store: store, dataDir: dataDir, interval: interval, catalog: catalogSvc, metrics: m}
}

// Refresh loads all three reference CSVs. Rows already present are left
// untouched; only missing rows are inserted.
func (l *Loader) Refresh(ctx context.Context) error {
	if err := l.loadCountries(ctx); err != nil {
		return fmt.Errorf("load countries: %w", err)
	}
	if err := l.loadRates(ctx); err != nil {
		return fmt.Errorf("load rates: %w", err)
	}
	if err := l.loadPacks(ctx); err != nil {
		return fmt.Errorf("load packs: %w", err)
	}
	if l.catalog != nil {
		l.catalog.Invalidate(ctx)
	}
	return nil
}

// Run refreshes the catalog on a fixed tick until ctx is cancelled.
func (l *Loader) Run(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := l.Refresh(ctx); err != nil {
				logging.Logger.Error("catalog refresh failed", zap.Error(err))
				l.countRefresh("error")
				continue
			}
			logging.Logger.Info("catalog refreshed")
			l.countRefresh("ok")
		}
	}
}

func (l *Loader) countRefresh(outcome string) {
	if l.metrics != nil {
		l.metrics.CatalogRefreshes.WithLabelValues(outcome).Inc()
	}
}

func (l *Loader) loadCountries(ctx context.Context) error {
	f, err := os.Open(filepath.Join(l.dataDir, "countries.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	countries, err := parseCountries(f)
	if err != nil {
		return err
	}
	for _, c := range countries {
		if err := l.store.UpsertCountry(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) loadRates(ctx context.Context) error {
	f, err := os.Open(filepath.Join(l.dataDir, "roaming_rates.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	rates, err := parseRates(f)
	if err != nil {
		return err
	}
	for _, r := range rates {
		if err := l.store.UpsertRate(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) loadPacks(ctx context.Context) error {
	f, err := os.Open(filepath.Join(l.dataDir, "roaming_packs.csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	packs, err := parsePacks(f)
	if err != nil {
		return err
	}
	for _, p := range packs {
		if err := l.store.UpsertPack(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// parseCountries reads code,name,region rows. The first row is a header.
func parseCountries(r io.Reader) ([]Country, error) {
	records, err := readRecords(r, 3)
	if err != nil {
		return nil, err
	}
	out := make([]Country, 0, len(records))
	for _, rec := range records {
		out = append(out, Country{Code: rec[0], Name: rec[1], Region: rec[2]})
	}
	return out, nil
}

// parseRates reads code,dataPerMb,voicePerMin,smsPerMsg,currency rows.
func parseRates(r io.Reader) ([]RateEntry, error) {
	records, err := readRecords(r, 5)
	if err != nil {
		return nil, err
	}
	out := make([]RateEntry, 0, len(records))
	for _, rec := range records {
		data, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("rate %s: %w", rec[0], err)
		}
		voice, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("rate %s: %w", rec[0], err)
		}
		sms, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, fmt.Errorf("rate %s: %w", rec[0], err)
		}
		out = append(out, RateEntry{
			CountryCode: rec[0],
			DataPerMB:   data,
			VoicePerMin: voice,
			SMSPerMsg:   sms,
			Currency:    rec[4],
		})
	}
	return out, nil
}

// parsePacks reads id,name,coverage,coverageType,dataGb,voiceMin,sms,price,validityDays,currency rows.
func parsePacks(r io.Reader) ([]Pack, error) {
	records, err := readRecords(r, 10)
	if err != nil {
		return nil, err
	}
	out := make([]Pack, 0, len(records))
	for _, rec := range records {
		id, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("pack id %q: %w", rec[0], err)
		}
		dataGB, err := strconv.Atoi(rec[4])
		if err != nil {
			return nil, fmt.Errorf("pack %s: %w", rec[1], err)
		}
		voiceMin, err := strconv.Atoi(rec[5])
		if err != nil {
			return nil, fmt.Errorf("pack %s: %w", rec[1], err)
		}
		sms, err := strconv.Atoi(rec[6])
		if err != nil {
			return nil, fmt.Errorf("pack %s: %w", rec[1], err)
		}
		price, err := strconv.ParseFloat(rec[7], 64)
		if err != nil {
			return nil, fmt.Errorf("pack %s: %w", rec[1], err)
		}
		validity, err := strconv.Atoi(rec[8])
		if err != nil {
			return nil, fmt.Errorf("pack %s: %w", rec[1], err)
		}
		out = append(out, Pack{
			ID:            id,
			Name:          rec[1],
			CoverageValue: rec[2],
			CoverageScope: rec[3],
			DataGB:        dataGB,
			VoiceMin:      voiceMin,
			SMS:           sms,
			Price:         price,
			ValidityDays:  validity,
			Currency:      rec[9],
		})
	}
	return out, nil
}

// readRecords parses CSV content, skips the header row, trims whitespace,
// and drops rows with fewer than minFields fields.
func readRecords(r io.Reader, minFields int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	all, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(all) <= 1 {
		return nil, nil
	}

	out := make([][]string, 0, len(all)-1)
	for _, rec := range all[1:] {
		if len(rec) < minFields {
			continue
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		out = append(out, rec)
	}
	return out, nil
}
