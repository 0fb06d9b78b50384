package market

import (
	"context"
	"fmt"

	"marketstore/internal/app/client"

	"github.com/spf13/cobra"
)

func clientFrom(cmd *cobra.Command) (*client.Client, error) {
	c, ok := client.FromContext(cmd.Context())
	if !ok {
		return nil, fmt.Errorf("клиент не инициализирован")
	}
	return c, nil
}

// run достает клиента и выполняет fn с контекстом команды.
func run(cmd *cobra.Command, fn func(ctx context.Context, c *client.Client) error) error {
	c, err := clientFrom(cmd)
	if err != nil {
		return err
	}
	return fn(cmd.Context(), c)
}
