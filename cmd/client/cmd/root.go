package cmd

import (
	"fmt"
	"os"

	"marketstore/cmd/client/cmd/market"
	"marketstore/internal/app/client"
	"marketstore/internal/app/client/config"
	"marketstore/internal/utils/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	v         = viper.New()
	cfgFile   string
	debug     bool
	serverURL string
)

var rootCmd = &cobra.Command{
	Use:   "marketstore",
	Short: "Market Store - клиент хранилища фермерских рынков",
	Long: `Клиент для сервиса Market Store: создает, ищет, обновляет и
удаляет рынки на сервере по HTTP.

Адрес сервера берется из флага --server, переменной SERVER_ADDRESS
или файла конфигурации.`,
	PersistentPreRunE: setupClient,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Проверить доступность сервера",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, _ := client.FromContext(cmd.Context())
		h, err := c.HealthCheck(cmd.Context())
		if err != nil {
			return fmt.Errorf("сервер недоступен: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Сервер доступен: %s, рынков: %d\n", h.Status, h.Markets)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupClient(cmd *cobra.Command, _ []string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}

	level := cfg.LogLevel
	if debug {
		level = "debug"
	} else if level == "" {
		level = "warn"
	}
	log := logger.NewWithLevel(cfg.Env, level)

	cmd.SetContext(client.NewContext(cmd.Context(), client.New(cfg, log)))
	return nil
}

func init() {
	cobra.EnableTraverseRunHooks = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "конфигурационный файл (yaml)")
	flags.BoolVar(&debug, "debug", false, "включить отладочный вывод")
	flags.StringVar(&serverURL, "server", "", "адрес сервера Market Store")
	if err := v.BindPFlag(config.KeyServerAddress, flags.Lookup("server")); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(market.MarketCmd)
}
