package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chhinhsovath/next-native-sa-tracking/internal/config"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/office"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/domain/user"
	"github.com/chhinhsovath/next-native-sa-tracking/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

// DefaultOffices are created when no active office exists yet.
var DefaultOffices = []office.Office{
	{Name: "Phnom Penh Office", Latitude: 11.556374, Longitude: 104.928207, Radius: office.DefaultRadius, IsActive: true},
	{Name: "Siem Reap Office", Latitude: 13.362922, Longitude: 103.860897, Radius: office.DefaultRadius, IsActive: true},
}

type Seeder struct {
	tx postgresql.TxManager
	office.OfficeRepository
	user.UserRepository
	cfg config.SeedConfig
}

func NewSeeder(tx postgresql.TxManager, officeRepository office.OfficeRepository, userRepository user.UserRepository, cfg config.SeedConfig) *Seeder {
	return &Seeder{
		tx:               tx,
		OfficeRepository: officeRepository,
		UserRepository:   userRepository,
		cfg:              cfg,
	}
}

// Run is idempotent: existing offices and an existing admin are left alone.
func (s *Seeder) Run(ctx context.Context) error {
	return s.tx.WithinTx(ctx, func(txCtx context.Context) error {
		if err := s.seedOffices(txCtx); err != nil {
			return err
		}
		return s.seedAdmin(txCtx)
	})
}

func (s *Seeder) seedOffices(ctx context.Context) error {
	active, err := s.OfficeRepository.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list offices: %w", err)
	}
	if len(active) > 0 {
		return nil
	}

	for _, o := range DefaultOffices {
		created, err := s.OfficeRepository.Create(ctx, o)
		if err != nil {
			return fmt.Errorf("failed to seed office %s: %w", o.Name, err)
		}
		slog.Info("seeded office", "id", created.ID, "name", created.Name)
	}
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	email := strings.ToLower(strings.TrimSpace(s.cfg.AdminEmail))
	if email == "" || s.cfg.AdminPassword == "" {
		return nil
	}

	_, err := s.UserRepository.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return fmt.Errorf("failed to look up seed admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "System",
		LastName:     "Admin",
		Role:         user.RoleAdmin,
		IsActive:     true,
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	slog.Info("seeded admin account", "id", created.ID, "email", created.Email)
	return nil
}
