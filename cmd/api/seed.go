package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the table and top it up with seed records",
		Long: `seed creates the books table if needed and, when it holds fewer than
seed.target records, inserts the rows from seed.file (JSON or YAML) or the
built-in fallback rows, then tops up with generated records.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			job, cleanup, err := InitializeSeedJob(flagConfig)
			if err != nil {
				return err
			}
			defer cleanup()

			inserted, err := job.Seeder.Seed(cmd.Context())
			if err != nil {
				return err
			}
			if inserted == 0 {
				fmt.Println(color.GreenString("✓"), "nothing to seed, table already has", job.Config.Seed.Target, "or more records")
				return nil
			}
			fmt.Println(color.GreenString("✓"), "inserted", inserted, "records")
			return nil
		},
	}
}
