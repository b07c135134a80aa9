package main

import (
	"errors"

	"github.com/spf13/cobra"

	"foodgram/internal/domain/tag"
	"foodgram/internal/logging"
)

var defaultTags = []tag.CreateTagRequest{
	{Name: "Завтрак", Color: "#E26C2D", Slug: "breakfast"},
	{Name: "Обед", Color: "#49B64E", Slug: "lunch"},
	{Name: "Ужин", Color: "#8775D2", Slug: "dinner"},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Create the default breakfast, lunch and dinner tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openDB()
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		svc := tag.NewService(tag.NewRepository(db))
		for _, req := range defaultTags {
			t, err := svc.Create(cmd.Context(), req)
			switch {
			case errors.Is(err, tag.ErrDuplicateTag):
				logging.Info().Str("slug", req.Slug).Msg("tag exists, skipped")
			case err != nil:
				return err
			default:
				logging.Info().Int64("id", t.ID).Str("slug", t.Slug).Msg("tag created")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}
