package catalog

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql" // enable mysql migrations
	_ "github.com/golang-migrate/migrate/v4/source/file"    // enable file migration source
	"github.com/sirupsen/logrus"
	"github.com/toolmart/catalog/config"
	"github.com/toolmart/catalog/query"
	"github.com/urfave/cli/v3"
)

// Application is Service Main Object.
type Application struct {
	container *Container
}

// NewApplication constructor.
func NewApplication(cfg config.Config) *Application {
	return &Application{
		container: NewContainer(cfg),
	}
}

func (s *Application) Migrate() error {
	_, err := s.container.DB()
	if err != nil {
		return err
	}

	err = applyMigrations(s.container.Config().Migrations)
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}

func applyMigrations(cfg config.MigrationsConfig) error {
	logrus.Info("Apply migrations")

	dir := cfg.Dir
	if dir == "" {
		ex, err := os.Executable()
		if err != nil {
			return err
		}

		dir = filepath.Dir(ex) + "/migrations"
	}

	m, err := migrate.New("file://"+dir, cfg.DSN)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil {
		return err
	}

	logrus.Info("Migrations applied")

	return nil
}

// Run dispatches a CLI invocation.
func (s *Application) Run(ctx context.Context, args []string) error {
	cmd := &cli.Command{
		Name:  "catalog",
		Usage: "Product catalog faceted filtering engine",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "apply database migrations",
				Action: func(_ context.Context, _ *cli.Command) error {
					return s.Migrate()
				},
			},
			{
				Name:  "attrs",
				Usage: "list attribute definitions",
				Action: func(ctx context.Context, _ *cli.Command) error {
					repository, err := s.container.AttrsRepository()
					if err != nil {
						return err
					}

					rows, err := repository.Attributes(ctx, &query.AttributeListOptions{})
					if err != nil {
						return err
					}

					for _, row := range rows {
						fmt.Printf("%d\t%s\t%s\tactive=%t\n", row.ID, row.Name, row.DisplayName, row.Active)
					}

					return nil
				},
			},
			{
				Name:      "facets",
				Usage:     "dump the public facet list, optionally scoped to a category",
				ArgsUsage: "[category]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					idx, err := s.container.Index()
					if err != nil {
						return err
					}

					facets, err := idx.Facets(ctx, cmd.Args().First())
					if err != nil {
						return err
					}

					for _, facet := range facets {
						values := make([]string, 0, len(facet.Values))
						for _, value := range facet.Values {
							values = append(values, value.Value)
						}

						fmt.Printf("%s: %s\n", facet.Name, strings.Join(values, ", "))
					}

					return nil
				},
			},
			{
				Name:  "facets-reset",
				Usage: "invalidate every cached facet list",
				Action: func(ctx context.Context, _ *cli.Command) error {
					idx, err := s.container.Index()
					if err != nil {
						return err
					}

					return idx.Reset(ctx)
				},
			},
		},
	}

	return cmd.Run(ctx, args)
}

// Close Destructor.
func (s *Application) Close() error {
	logrus.Info("Closing service")

	err := s.container.Close()
	if err != nil {
		return err
	}

	logrus.Info("Service closed")

	return nil
}
