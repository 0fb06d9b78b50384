package cmd

import (
	"fmt"

	"marketstore/internal/app/server"

	"github.com/spf13/cobra"
)

var resetSchema bool

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Применить миграции базы данных",
	Long: `Применяет недостающие миграции к базе выбранного хранилища.

С флагом --reset схема сначала удаляется: все рынки будут потеряны.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := server.Migrate(cfg.DB, resetSchema, log); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Миграции применены")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&resetSchema, "reset", false, "удалить схему и создать заново")
}
