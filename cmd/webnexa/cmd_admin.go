package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/webnexa/api/app/models"
	"github.com/webnexa/api/config"
	"github.com/webnexa/api/internal/store"
	"github.com/webnexa/api/pkg/auth"
)

var (
	adminUsername string
	adminPassword string
)

// webnexa admin:create — create the admin account from the shell, so the
// HTTP registration endpoint can stay closed (REGISTRATION_MODE=bootstrap).
var adminCreateCmd = &cobra.Command{
	Use:   "admin:create",
	Short: "Create an admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		if len(adminPassword) < 8 {
			return errors.New("password must be at least 8 characters")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		st, err := store.Connect(ctx)
		if err != nil {
			return err
		}
		defer st.Close(ctx)

		hash, err := auth.HashPassword(adminPassword)
		if err != nil {
			return err
		}

		admin := &models.AdminAccount{
			Username:     adminUsername,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}
		if err := st.Admins().Insert(ctx, admin); err != nil {
			if errors.Is(err, store.ErrDuplicateUsername) {
				return fmt.Errorf("admin %q already exists", adminUsername)
			}
			return err
		}

		fmt.Printf("Admin %q created (id %s)\n", admin.Username, admin.ID.Hex())
		return nil
	},
}

func init() {
	adminCreateCmd.Flags().StringVarP(&adminUsername, "username", "u", "", "admin username")
	adminCreateCmd.Flags().StringVarP(&adminPassword, "password", "p", "", "admin password")
	_ = adminCreateCmd.MarkFlagRequired("username")
	_ = adminCreateCmd.MarkFlagRequired("password")
}
