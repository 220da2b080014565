package main

import (
	"context"
	"fmt"
	"heritage/internal/config"
	"heritage/pkg/domain"
	"heritage/pkg/logger"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func kindNames() string {
	names := make([]string, 0, len(domain.ReferenceKinds))
	for _, k := range domain.ReferenceKinds {
		names = append(names, string(k))
	}

	return strings.Join(names, ", ")
}

// referenceCommand groups maintenance of reference data (geography, development
// statuses and categories).
func referenceCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reference",
		Short: "Maintains reference data",
	}

	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Deletes a reference row nothing depends on",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			rawKind, _ := cmd.Flags().GetString("kind")
			id, _ := cmd.Flags().GetInt64("id")

			kind, err := domain.ParseReferenceKind(rawKind)
			if err != nil {
				return fmt.Errorf("%w (known kinds: %s)", err, kindNames())
			}

			reg, closeRegistry := getRegistry(ctx, cfg)
			defer closeRegistry()

			if err := reg.DeleteReference(ctx, kind, id); err != nil {
				logger.Error(ctx, "could not delete reference",
					zap.String("kind", string(kind)), zap.Int64("id", id), zap.Error(err))

				return err //nolint: wrapcheck
			}

			logger.Info(ctx, "reference deleted", zap.String("kind", string(kind)), zap.Int64("id", id))

			return nil
		},
	}
	deleteCmd.Flags().String("kind", "", "Reference kind ("+kindNames()+")")
	deleteCmd.Flags().Int64("id", 0, "Reference row ID")
	_ = deleteCmd.MarkFlagRequired("kind")
	_ = deleteCmd.MarkFlagRequired("id")

	cmd.AddCommand(deleteCmd)

	return cmd
}
