package market

import (
	"fmt"

	"github.com/spf13/cobra"
)

var output string

// MarketCmd - родительская команда для всех операций с рынками
var MarketCmd = &cobra.Command{
	Use:   "market",
	Short: "Управление фермерскими рынками",
	Long: `Создание, поиск, обновление и удаление рынков.

Поля задаются флагами --id, --name, --address, --city, --county, --state,
--zip, --lat и --long. Незаданный флаг означает незаданное поле: в поиске
оно не участвует, при обновлении сохраняет старое значение.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		switch output {
		case formatText, formatJSON, formatYAML:
			return nil
		default:
			return fmt.Errorf("неизвестный формат вывода %q (text, json, yaml)", output)
		}
	},
}

func init() {
	MarketCmd.PersistentFlags().StringVarP(&output, "output", "o", formatText, "формат вывода: text, json или yaml")

	MarketCmd.AddCommand(echoCmd)
	MarketCmd.AddCommand(createCmd)
	MarketCmd.AddCommand(readCmd)
	MarketCmd.AddCommand(updateCmd)
	MarketCmd.AddCommand(deleteCmd)
}
