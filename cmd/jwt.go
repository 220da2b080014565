package main

import (
	"context"
	"fmt"
	"heritage/internal/auth"
	"heritage/internal/config"
	"heritage/pkg/domain"
	"heritage/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// jwtCommand constructs the 'jwt' subcommand that issues a session token for
// API clients. The token is accepted as a bearer token by every endpoint that
// requires login.
func jwtCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Issues a session token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			subject, _ := cmd.Flags().GetString("subject")
			email, _ := cmd.Flags().GetString("email")
			name, _ := cmd.Flags().GetString("name")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			options := auth.NewSessionOptions(cfg)
			if ttl > 0 {
				options.TTL = ttl
			}
			sessions, err := auth.NewSessions(options)
			if err != nil {
				logger.Fatal(context.Background(), "could not create sessions", zap.Error(err))
			}

			token, _, err := sessions.Issue(domain.User{ID: subject, Email: email, Name: name})
			if err != nil {
				logger.Fatal(context.Background(), "could not issue token", zap.Error(err))
			}

			fmt.Println(token) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "Token subject (e.g., user ID)")
	cmd.Flags().String("email", "", "User email")
	cmd.Flags().String("name", "", "User display name")
	cmd.Flags().Duration("ttl", 0, "Token TTL, defaults to the configured session TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}

