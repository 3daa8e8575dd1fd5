package main

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"

	"github.com/m04kA/MedConnect-AppointmentService/internal/auth"
	"github.com/m04kA/MedConnect-AppointmentService/internal/config"
	"github.com/m04kA/MedConnect-AppointmentService/internal/domain"
	availabilityRepo "github.com/m04kA/MedConnect-AppointmentService/internal/infra/storage/availability"
	connectionRepo "github.com/m04kA/MedConnect-AppointmentService/internal/infra/storage/connection"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/logger"
	"github.com/m04kA/MedConnect-AppointmentService/pkg/txmanager"
)

// Пользователи живут в UserService; seed выдает им идентификаторы из отдельных диапазонов
const (
	seedDoctorIDBase  = 1000
	seedPatientIDBase = 5000
)

var seedSlotDurations = []int{15, 20, 30, 45, 60}

type seedOptions struct {
	doctors  int
	patients int
}

func seedCmd(configPath *string) *cobra.Command {
	opts := seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed doctor templates and patient connections for local testing",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.doctors <= 0 || opts.patients <= 0 {
				return fmt.Errorf("--doctors and --patients must be positive")
			}
			return runSeed(cmd, *configPath, opts)
		},
	}
	cmd.Flags().IntVar(&opts.doctors, "doctors", 3, "number of doctors")
	cmd.Flags().IntVar(&opts.patients, "patients", 5, "number of patients")

	return cmd
}

func runSeed(cmd *cobra.Command, configPath string, opts seedOptions) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Close()

	db, err := openDB(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	wrappedDB := dbmetrics.Wrap(db, nil)
	txMgr := txmanager.NewTransactionManager(wrappedDB)
	availabilityRepository := availabilityRepo.NewRepository(wrappedDB)
	connectionRepository := connectionRepo.NewRepository(wrappedDB)

	doctors := make([]auth.Identity, 0, opts.doctors)
	patients := make([]auth.Identity, 0, opts.patients)

	log.Info("Seeding %d doctors and %d patients", opts.doctors, opts.patients)

	err = txMgr.Do(ctx, func(txCtx context.Context) error {
		for i := 0; i < opts.doctors; i++ {
			doctor := auth.Identity{
				ID:       int64(seedDoctorIDBase + i + 1),
				Email:    gofakeit.Email(),
				UserType: auth.UserTypeDoctor,
			}

			availability, err := availabilityRepository.GetOrCreate(txCtx, domain.DefaultAvailability(doctor.ID))
			if err != nil {
				return fmt.Errorf("create availability for doctor %d: %w", doctor.ID, err)
			}
			availability.SlotDuration = seedSlotDurations[gofakeit.Number(0, len(seedSlotDurations)-1)]
			availability.BufferTime = gofakeit.RandomInt([]int{0, 5, 10})
			availability.Location = fmt.Sprintf("%s, room %d", gofakeit.Street(), gofakeit.Number(1, 400))
			if _, err := availabilityRepository.Update(txCtx, availability); err != nil {
				return fmt.Errorf("update availability for doctor %d: %w", doctor.ID, err)
			}

			doctors = append(doctors, doctor)
		}

		for i := 0; i < opts.patients; i++ {
			patients = append(patients, auth.Identity{
				ID:       int64(seedPatientIDBase + i + 1),
				Email:    gofakeit.Email(),
				UserType: auth.UserTypePatient,
			})
		}

		// Каждый пациент связан со всеми врачами
		for _, patient := range patients {
			for _, doctor := range doctors {
				if _, err := connectionRepository.Upsert(txCtx, &domain.Connection{
					PatientID: patient.ID,
					DoctorID:  doctor.ID,
					Status:    domain.ConnectionAccepted,
				}); err != nil {
					return fmt.Errorf("connect patient %d to doctor %d: %w", patient.ID, doctor.ID, err)
				}
			}
		}
		return nil
	})
	if err != nil {
		log.Error("Seed failed: %v", err)
		return err
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret)
	ttl := time.Duration(cfg.Auth.TokenTTL) * time.Minute
	out := cmd.OutOrStdout()

	for _, identity := range append(doctors, patients...) {
		token, err := tokens.Issue(identity, ttl)
		if err != nil {
			return fmt.Errorf("issue token for user %d: %w", identity.ID, err)
		}
		fmt.Fprintf(out, "%-8s id=%-5d email=%s\n  token=%s\n", identity.UserType, identity.ID, identity.Email, token)
	}

	log.Info("Seed complete: %d doctors, %d patients, %d connections",
		len(doctors), len(patients), len(doctors)*len(patients))
	return nil
}
