package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mrshoofer/mrshoofer/internal/pkg/config"
	"github.com/mrshoofer/mrshoofer/internal/pkg/database"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
	"github.com/mrshoofer/mrshoofer/internal/utils"
	"github.com/mrshoofer/mrshoofer/services/admins/repository"
	"github.com/mrshoofer/mrshoofer/services/admins/usecase"
	"github.com/spf13/cobra"
)

const commandTimeout = 30 * time.Second

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:          "shooferctl",
		Short:        "Operations tool for the MrShoofer backend",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.GetEnv("CONFIG_PATH", ".env"), "path to the .env file")

	loadConfig := func() *models.Config {
		return config.InitConfig(configPath)
	}

	rootCmd.AddCommand(
		newMigrateCmd(loadConfig),
		newCreateAdminCmd(loadConfig),
		newGenSecretCmd(),
	)
	return rootCmd
}

func newMigrateCmd(loadConfig func() *models.Config) *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			if printOnly {
				fmt.Fprint(cmd.OutOrStdout(), database.Schema())
				return nil
			}

			cfg := loadConfig()

			postgresClient, err := database.NewPostgresClient(cfg.Database)
			if err != nil {
				return err
			}
			defer postgresClient.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			if err := database.Migrate(ctx, postgresClient.GetDB()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date")
			return nil
		},
	}
	cmd.Flags().BoolVar(&printOnly, "print", false, "print the schema instead of applying it")
	return cmd
}

func newCreateAdminCmd(loadConfig func() *models.Config) *cobra.Command {
	var req models.CreateAdminRequest

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a console admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			if cfg.Admin.Secret == "" {
				return errors.New("ADMIN_SECRET must be set to create admins")
			}
			req.Secret = cfg.Admin.Secret
			if err := utils.ValidateStruct(&req); err != nil {
				return err
			}

			logger.SetGlobalLogger(logger.NewNopLogger())

			postgresClient, err := database.NewPostgresClient(cfg.Database)
			if err != nil {
				return err
			}
			defer postgresClient.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			adminUC := usecase.NewAdminUC(repository.NewAdminRepo(cfg, postgresClient.GetDB()), nil, nil, cfg)
			admin, err := adminUC.CreateAdmin(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s (%s)\n", admin.Email, admin.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "display name")
	cmd.Flags().StringVar(&req.Email, "email", "", "login email")
	cmd.Flags().StringVar(&req.Password, "password", "", "initial password")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "mobile number for OTP login")
	cmd.Flags().BoolVar(&req.IsSuperAdmin, "super", false, "grant superadmin")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newGenSecretCmd() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "gen-secret",
		Short: "Print a random hex secret for JWT_SECRET, ADMIN_SECRET or PARTNER_API_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			if length < 16 {
				return fmt.Errorf("length must be at least 16, got %d", length)
			}
			secret, err := utils.GenerateRandomHex(length)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	}
	cmd.Flags().IntVar(&length, "length", 64, "number of hex characters")
	return cmd
}
