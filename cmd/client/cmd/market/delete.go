package market

import (
	"context"
	"fmt"

	"marketstore/internal/app/client"

	"github.com/spf13/cobra"
)

var deleteFields = &fieldFlags{}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Удалить рынки",
	Long: `Удаляет рынки, подходящие под заданные поля, и выводит удаленные.
Без флагов удаляет все рынки.`,
	Example: `  marketstore market delete --id 3`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		t := deleteFields.template(cmd.Flags())

		return run(cmd, func(ctx context.Context, c *client.Client) error {
			records, err := c.Delete(ctx, t)
			if err != nil {
				return fmt.Errorf("ошибка удаления рынков: %w", err)
			}
			return printRecords(cmd.OutOrStdout(), output, records)
		})
	},
}

func init() {
	deleteFields.register(deleteCmd.Flags(), "для удаления")
}
