package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"foodgram/internal/domain/ingredient"
	"foodgram/internal/logging"
)

var ingredientsFile string

var ingredientsCmd = &cobra.Command{
	Use:   "ingredients",
	Short: "Load the ingredient catalogue from a JSON file",
	Long: `Reads a JSON array of {"name": ..., "measurement_unit": ...} objects
and inserts every (name, unit) pair that is not stored yet. Running it twice
is harmless.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openDB()
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		f, err := os.Open(ingredientsFile)
		if err != nil {
			return fmt.Errorf("open %s: %w", ingredientsFile, err)
		}
		defer f.Close()

		svc := ingredient.NewService(ingredient.NewRepository(db))
		created, err := svc.Import(cmd.Context(), f)
		if err != nil {
			return err
		}
		logging.Info().Str("file", ingredientsFile).Int("created", created).Msg("ingredients imported")
		return nil
	},
}

func init() {
	ingredientsCmd.Flags().StringVarP(&ingredientsFile, "file", "f", "data/ingredients.json", "path to the ingredients JSON file")
	rootCmd.AddCommand(ingredientsCmd)
}
