package main

import (
	"os"

	"github.com/spf13/cobra"
)

// @title Petclinic API
// @version 1.0
// @description API REST de la clínica veterinaria: owners, pets, visits, vets, pet types y specialties.
// @BasePath /api
func main() {
	serve := newServeCommand()

	rootCmd := &cobra.Command{
		Use:   "petclinic",
		Short: "Petclinic - API REST de la clínica veterinaria",
		// sin subcomando => serve
		RunE: serve.RunE,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	rootCmd.AddCommand(
		serve,
		newMigrateCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
