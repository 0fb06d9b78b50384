package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"marketstore/internal/app/server"
	"marketstore/internal/app/server/config"
	"marketstore/internal/utils/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slog"
)

var (
	v   = viper.New()
	cfg *config.Config
	log *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "marketstore-server",
	Short: "Market Store - HTTP сервис хранения фермерских рынков",
	Long: `Market Store хранит записи о фермерских рынках и отдает их по HTTP.
Поиск, обновление и удаление выполняются по шаблону: заданные поля
сравниваются на точное совпадение.

Без подкоманды запускает сервер (то же, что serve).`,
	PersistentPreRunE: setup,
	RunE:              runServe,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP сервер",
	RunE:  runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(v)
	if err != nil {
		return err
	}
	log = logger.NewWithLevel(cfg.Env, cfg.Logger.LogLevel)
	return nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, log).Run(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("port", "", "порт (8080) или адрес (127.0.0.1:8080) сервера")
	flags.String("db", "", "путь к файлу SQLite")
	flags.String("backend", "", "хранилище: sqlite, postgres или memory")
	flags.String("database-uri", "", "строка подключения к PostgreSQL")
	flags.String("env", "", "окружение: local, dev или prod")

	bindFlag(config.KeyRunAddress, "port")
	bindFlag(config.KeySQLitePath, "db")
	bindFlag(config.KeyBackend, "backend")
	bindFlag(config.KeyDatabaseURI, "database-uri")
	bindFlag(config.KeyEnv, "env")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.SetContext(context.Background())
}

// bindFlag связывает флаг с ключом viper. Флаг, не заданный явно,
// не перекрывает окружение и значения по умолчанию.
func bindFlag(key, name string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(name)); err != nil {
		panic(err)
	}
}
