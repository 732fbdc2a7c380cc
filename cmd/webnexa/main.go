package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "webnexa",
	Short: "WebNexa marketing-site API",
	Long:  "WebNexa serves the agency marketing site: public contact form, client showcase, and the admin dashboard API.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)
	rootCmd.AddCommand(adminCreateCmd)
	rootCmd.AddCommand(seedCmd)
}
