package market

import (
	"context"
	"fmt"

	"marketstore/internal/app/client"

	"github.com/spf13/cobra"
)

var (
	updateValues     = &fieldFlags{}
	updateConditions = &fieldFlags{prefix: "where-"}
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Обновить рынки",
	Long: `Присваивает заданные поля (--name, --city, ...) всем рынкам,
подходящим под условия (--where-name, --where-city, ...). Без условий
обновляются все рынки. Очистить поле обновлением нельзя.`,
	Example: `  marketstore market update --zip 90000 --where-city "Los Angeles"`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		values := updateValues.template(cmd.Flags())
		conditions := updateConditions.template(cmd.Flags())

		return run(cmd, func(ctx context.Context, c *client.Client) error {
			records, err := c.Update(ctx, values, conditions)
			if err != nil {
				return fmt.Errorf("ошибка обновления рынков: %w", err)
			}
			return printRecords(cmd.OutOrStdout(), output, records)
		})
	},
}

func init() {
	updateValues.register(updateCmd.Flags(), "(новое значение)")
	updateConditions.register(updateCmd.Flags(), "(условие)")
}
