package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matsols/matsols-api/internal/domain/degree"
	"github.com/matsols/matsols-api/internal/domain/update"
	degreerepo "github.com/matsols/matsols-api/internal/infrastructure/repository/degree"
	updaterepo "github.com/matsols/matsols-api/internal/infrastructure/repository/update"
	"github.com/matsols/matsols-api/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load catalog fixtures",
	Long:  `Load degrees and landing page updates from YAML fixtures.`,
}

var seedDegreesCmd = &cobra.Command{
	Use:   "degrees",
	Short: "Upsert degrees by slug",
	Long:  `Upsert every degree in the fixture. Existing degrees with the same slug are overwritten.`,
	RunE:  runSeedDegrees,
}

var seedUpdatesCmd = &cobra.Command{
	Use:   "updates",
	Short: "Create landing page updates",
	Long:  `Create every hero and grid card in the fixture. Cards are appended, not deduplicated.`,
	RunE:  runSeedUpdates,
}

func init() {
	seedCmd.AddCommand(seedDegreesCmd)
	seedCmd.AddCommand(seedUpdatesCmd)

	seedDegreesCmd.Flags().String("file", "seed/degrees.yaml", "Degrees fixture")
	seedUpdatesCmd.Flags().String("file", "seed/updates.yaml", "Updates fixture")
}

func runSeedDegrees(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := seed.DecodeDegrees(f)
	if err != nil {
		return err
	}

	rt, err := openRuntime(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.Close()

	svc := degree.NewService(degreerepo.NewDegreeRepository(rt.db), nil, rt.log)
	report := seed.Degrees(cmd.Context(), svc, records, rt.log)
	fmt.Printf("degrees: %d written, %d failed\n", report.Written, report.Failed)
	return nil
}

func runSeedUpdates(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	file, err := seed.DecodeUpdates(f)
	if err != nil {
		return err
	}

	rt, err := openRuntime(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.Close()

	svc := update.NewService(updaterepo.NewUpdateRepository(rt.db), rt.log)
	report := seed.Updates(cmd.Context(), svc, file, rt.log)
	fmt.Printf("updates: %d written, %d failed\n", report.Written, report.Failed)
	return nil
}
