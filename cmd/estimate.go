package main

import (
	"Genie-Expiry-Tracker/domain"
	"Genie-Expiry-Tracker/pkg/estimation"
	"Genie-Expiry-Tracker/pkg/guideline"
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"
)

func estimateCmd() *cobra.Command {
	var category, storage string

	cmd := &cobra.Command{
		Use:   "estimate <item name>",
		Short: "Estimate an expiry date from the shelf-life guidelines",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var override *domain.StorageCondition
			if storage != "" {
				parsed, err := domain.ParseStorageCondition(storage)
				if err != nil {
					return err
				}
				override = &parsed
			}

			repo, err := guideline.NewGuidelineRepository(guideline.DefaultCacheSize)
			if err != nil {
				return err
			}
			result := estimation.NewEstimationService(repo, nil).
				Estimate(strings.Join(args, " "), category, override)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", domain.CategoryOther, "item category")
	cmd.Flags().StringVarP(&storage, "storage", "s", "", "storage override: refrigerator, freezer or room")
	return cmd
}
