// README: User service; account lookup and CSV seed of demo accounts.
package user

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Accounts is the user store surface the service needs.
type Accounts interface {
	Get(ctx context.Context, id int64) (*User, error)
	GetProfile(ctx context.Context, userID int64) (*UsageProfile, error)
	UpsertUser(ctx context.Context, u User) error
	UpsertProfile(ctx context.Context, p UsageProfile) error
}

type Service struct {
	store Accounts
}

func NewService(store Accounts) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) GetProfile(ctx context.Context, userID int64) (*UsageProfile, error) {
	return s.store.GetProfile(ctx, userID)
}

// SeedFromDir loads demo users and usage profiles from CSV files. Existing
// rows are kept.
func (s *Service) SeedFromDir(ctx context.Context, dir string) error {
	users, err := readUsersCSV(filepath.Join(dir, "users.csv"))
	if err != nil {
		return fmt.Errorf("load users: %w", err)
	}
	for _, u := range users {
		if err := s.store.UpsertUser(ctx, u); err != nil {
			return err
		}
	}

	profiles, err := readProfilesCSV(filepath.Join(dir, "usage_profile.csv"))
	if err != nil {
		return fmt.Errorf("load usage profiles: %w", err)
	}
	for _, p := range profiles {
		if err := s.store.UpsertProfile(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func readUsersCSV(path string) ([]User, error) {
	rows, err := readCSV(path, 3)
	if err != nil {
		return nil, err
	}
	out := make([]User, 0, len(rows))
	for _, rec := range rows {
		id, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("user id %q: %w", rec[0], err)
		}
		out = append(out, User{ID: id, Name: rec[1], HomePlan: rec[2]})
	}
	return out, nil
}

func readProfilesCSV(path string) ([]UsageProfile, error) {
	rows, err := readCSV(path, 4)
	if err != nil {
		return nil, err
	}
	out := make([]UsageProfile, 0, len(rows))
	for _, rec := range rows {
		id, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("profile user id %q: %w", rec[0], err)
		}
		mb, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", rec[0], err)
		}
		min, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", rec[0], err)
		}
		sms, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", rec[0], err)
		}
		out = append(out, UsageProfile{UserID: id, AvgDailyMB: mb, AvgDailyMin: min, AvgDailySMS: sms})
	}
	return out, nil
}

func readCSV(path string, minFields int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
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
