package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/webnexa/api/config"
	"github.com/webnexa/api/database/seeders"
	"github.com/webnexa/api/internal/store"
)

// webnexa seed — populate the portfolio with demo entries.
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the portfolio with demo client entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		st, err := store.Connect(ctx)
		if err != nil {
			return err
		}
		defer st.Close(ctx)

		n, err := seeders.Portfolio(ctx, st.Portfolio())
		if err != nil {
			return err
		}

		fmt.Printf("Seeded %d portfolio entries\n", n)
		return nil
	},
}
