package market

import (
	"context"
	"fmt"

	"marketstore/internal/app/client"

	"github.com/spf13/cobra"
)

var createFields = &fieldFlags{}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Создать рынок",
	Long: `Создает рынок из заданных полей. Название обязательно,
id назначает сервер.`,
	Example: `  marketstore market create --name "Ferry Plaza" --city "San Francisco" --lat 37.7955 --long -122.3937`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		t := createFields.template(cmd.Flags())

		return run(cmd, func(ctx context.Context, c *client.Client) error {
			rec, err := c.Create(ctx, t)
			if err != nil {
				return fmt.Errorf("ошибка создания рынка: %w", err)
			}
			return printRecord(cmd.OutOrStdout(), output, rec)
		})
	},
}

func init() {
	createFields.register(createCmd.Flags(), "рынка")
}
