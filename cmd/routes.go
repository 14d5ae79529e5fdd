package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/todolabs/rocketd/internal/routetable"
	"github.com/todolabs/rocketd/internal/ui"
)

var routesJSON bool

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the registered routes",
	Long: `List every route the server answers, with the body each one returns.

Examples:
  rocketd routes          # Aligned table
  rocketd routes --json   # Machine-readable output`,
	RunE: runRoutes,
}

func init() {
	rootCmd.AddCommand(routesCmd)
	routesCmd.Flags().BoolVar(&routesJSON, "json", false, "Output routes as JSON")
}

func runRoutes(cmd *cobra.Command, args []string) error {
	table := routetable.Default()

	if routesJSON {
		data, err := json.MarshalIndent(table.Routes(), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode routes: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	rows := make([][]string, 0, table.Len())
	for _, r := range table.Routes() {
		rows = append(rows, []string{r.Method, r.Path, r.Body})
	}

	fmt.Print(ui.Table([]string{"METHOD", "PATH", "BODY"}, rows))
	return nil
}
