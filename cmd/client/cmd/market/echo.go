package market

import (
	"context"
	"fmt"

	"marketstore/internal/app/client"
	"marketstore/internal/domain/market"

	"github.com/spf13/cobra"
)

var echoFields = &fieldFlags{}

var echoCmd = &cobra.Command{
	Use:   "echo",
	Short: "Отправить рынок серверу и получить его обратно",
	Long:  `Проверка связи: сервер возвращает переданный рынок без изменений и ничего не сохраняет.`,
	Example: `  marketstore market echo --id 1 --name "Ferry Plaza" --zip 94111`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		t := echoFields.template(cmd.Flags())
		rec := market.NewRecord(t.ID.ValueOr(0), t)

		return run(cmd, func(ctx context.Context, c *client.Client) error {
			got, err := c.Echo(ctx, rec)
			if err != nil {
				return fmt.Errorf("ошибка echo: %w", err)
			}
			return printRecord(cmd.OutOrStdout(), output, got)
		})
	},
}

func init() {
	echoFields.register(echoCmd.Flags(), "рынка")
}
