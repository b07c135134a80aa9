package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"foodgram/internal/domain/user"
	"foodgram/internal/logging"
	jwtsvc "foodgram/internal/pkg/jwt"
)

var adminReq user.RegisterRequest

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Create an administrator or promote an existing account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := openDB()
		if err != nil {
			return err
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		svc := user.NewService(user.NewRepository(db))
		u, err := svc.CreateAdmin(cmd.Context(), adminReq)
		if err != nil {
			return err
		}
		logging.Info().Int64("user_id", u.ID).Str("email", u.Email).Msg("admin ready")

		if !cfg.IsProduction() {
			token, err := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL).GenerateToken(u.ID, string(u.Role))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
		}
		return nil
	},
}

func init() {
	f := adminCmd.Flags()
	f.StringVar(&adminReq.Email, "email", "", "admin email")
	f.StringVar(&adminReq.Username, "username", "admin", "admin username")
	f.StringVar(&adminReq.FirstName, "first-name", "Admin", "first name")
	f.StringVar(&adminReq.LastName, "last-name", "Foodgram", "last name")
	f.StringVar(&adminReq.Password, "password", "", "password, at least 8 characters")
	_ = adminCmd.MarkFlagRequired("email")
	_ = adminCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(adminCmd)
}
