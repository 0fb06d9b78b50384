package market

import (
	"context"
	"fmt"

	"marketstore/internal/app/client"

	"github.com/spf13/cobra"
)

var readFields = &fieldFlags{}

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Найти рынки",
	Long: `Выводит рынки, у которых все заданные поля совпадают с флагами.
Без флагов выводит все рынки.`,
	Example: `  marketstore market read --state California -o yaml`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		t := readFields.template(cmd.Flags())

		return run(cmd, func(ctx context.Context, c *client.Client) error {
			records, err := c.Read(ctx, t)
			if err != nil {
				return fmt.Errorf("ошибка поиска рынков: %w", err)
			}
			return printRecords(cmd.OutOrStdout(), output, records)
		})
	},
}

func init() {
	readFields.register(readCmd.Flags(), "для поиска")
}
