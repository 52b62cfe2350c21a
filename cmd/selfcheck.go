package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matrun/matrun/internal/selfcheck"
)

var selfcheckCmd = &cobra.Command{
	Use:   "selfcheck",
	Short: "Verify the config against the project and the version index",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, root, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		problems := selfcheck.Run(cfg, root)
		if len(problems) == 0 {
			fmt.Println("configuration ok")
			return nil
		}
		for _, p := range problems {
			fmt.Println(p)
		}
		return fmt.Errorf("selfcheck found %d problem(s)", len(problems))
	},
}
