package main

import (
	"Recipe-Sharing-API/cmd/config"
	migration "Recipe-Sharing-API/cmd/database/migrate"
	"Recipe-Sharing-API/cmd/database/seed"
	"Recipe-Sharing-API/internal/utils"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2/log"
	"github.com/spf13/cobra"
)

var (
	flagMigrate bool

	rootCmd = &cobra.Command{
		Use:   "recipe-api",
		Short: "Recipe-Sharing-API serves the recipe book over GraphQL",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			utils.LoadConfig()
		},
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  serve,
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := config.ConnectDB()
			if err != nil {
				return err
			}
			return migration.Migrate(db)
		},
	}

	seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Load the demo users, categories, recipes and reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := config.ConnectDB()
			if err != nil {
				return err
			}
			if err := migration.Migrate(db); err != nil {
				return err
			}
			_, err = seed.Seed(cmd.Context(), config.NewRepositories(db))
			return err
		},
	}
)

func serve(cmd *cobra.Command, args []string) error {
	db, err := config.ConnectDB()
	if err != nil {
		return err
	}
	if flagMigrate {
		if err := migration.Migrate(db); err != nil {
			return err
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	return app.Listen(":" + utils.GetConfig("PORT"))
}

func init() {
	serveCmd.Flags().BoolVar(&flagMigrate, "migrate", false, "run the database migration before serving")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
