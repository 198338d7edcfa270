package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/config"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage/sqlite"
	"github.com/mmynk/splitledger/pkg/logging"
)

var (
	adminEmail    string
	adminUsername string
	adminPassword string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative tasks run directly against the database",
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an admin account",
	Long: `Create an admin account directly in the database. Use this once to
bootstrap a fresh deployment; further users are created through the API.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		logging.Setup(cfg.LogLevel, cfg.LogFormat)

		email := strings.TrimSpace(adminEmail)
		username := strings.TrimSpace(adminUsername)
		if err := models.ValidateNewUser(email, username, adminPassword); err != nil {
			return err
		}

		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer store.Close()

		authenticator := auth.NewPasswordAuthenticator(store, cfg.BcryptCost)
		user, err := authenticator.Register(cmd.Context(), email, username, adminPassword, true)
		if err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}

		slog.Info("Admin created", "user_id", user.ID, "email", user.Email)
		fmt.Fprintln(cmd.OutOrStdout(), user.ID)
		return nil
	},
}

func init() {
	adminCreateCmd.Flags().StringVar(&adminEmail, "email", "", "Email address used to log in.")
	adminCreateCmd.Flags().StringVar(&adminUsername, "username", "", "Display name shown to group members.")
	adminCreateCmd.Flags().StringVar(&adminPassword, "password", "", "Password, at least 8 characters.")
	_ = adminCreateCmd.MarkFlagRequired("email")
	_ = adminCreateCmd.MarkFlagRequired("username")
	_ = adminCreateCmd.MarkFlagRequired("password")

	adminCmd.AddCommand(adminCreateCmd)
}
