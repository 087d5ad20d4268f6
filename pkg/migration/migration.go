package migration

import (
	"fmt"
	"path"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

const sourceURL = "file://migrations"

func databaseURL(dsn string) string {
	return "mysql://" + dsn
}

func newMigrate(source string, dsn string) *migrate.Migrate {
	m, err := migrate.New(source, databaseURL(dsn))
	if err != nil {
		panic(err)
	}
	return m
}

func ignoreNoChange(err error) error {
	if err == migrate.ErrNoChange {
		return nil
	}
	return err
}

// MigrateCommand creates the root command of the migrate binary, it requires the database/mysql
// and source/file drivers to be imported
func MigrateCommand(dsn string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use: "migrate",
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "migrate up to the latest version",
			RunE: func(cmd *cobra.Command, args []string) error {
				return ignoreNoChange(newMigrate(sourceURL, dsn).Up())
			},
		},
		&cobra.Command{
			Use:   "down [N]",
			Short: "migrate down N steps",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				return ignoreNoChange(newMigrate(sourceURL, dsn).Steps(-n))
			},
		},
		&cobra.Command{
			Use:   "force [VERSION]",
			Short: "force set the version without running migrations",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				return newMigrate(sourceURL, dsn).Force(version)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "print the current version",
			RunE: func(cmd *cobra.Command, args []string) error {
				version, dirty, err := newMigrate(sourceURL, dsn).Version()
				if err != nil {
					return err
				}
				fmt.Println("VERSION:", version, "DIRTY:", dirty)
				return nil
			},
		},
	)
	return rootCmd
}

// MigrateUpForTesting drops everything then migrates up using the migrations of rootDir
func MigrateUpForTesting(rootDir string, dsn string) {
	m := newMigrate("file://"+path.Join(rootDir, "migrations"), dsn)

	err := m.Drop()
	if err != nil {
		panic(err)
	}

	m = newMigrate("file://"+path.Join(rootDir, "migrations"), dsn)
	err = ignoreNoChange(m.Up())
	if err != nil {
		panic(err)
	}
}
