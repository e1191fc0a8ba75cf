package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/bizdesk/backend/internal/infrastructure/config"
	"github.com/bizdesk/backend/internal/infrastructure/logger"
	"github.com/bizdesk/backend/internal/infrastructure/migration"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const usage = `Usage: migrate <command> [arguments]

Commands:
  create <name>   create a new up/down migration pair
  list            list available migrations
  up              apply all pending migrations
  down            roll back all migrations
  step <n>        apply n migrations (negative rolls back)
  goto <version>  migrate to a specific version
  version         print the current schema version
  force <version> overwrite the schema version (dirty state recovery)
  drop            drop everything in the database

Flags:
  -dir <path>     migrations directory (default "migrations")
`

func main() {
	dir := flag.String("dir", "migrations", "migrations directory")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	log, err := logger.New(&logger.Config{Level: "info", Format: "console", Output: "stdout"})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer func() {
		_ = log.Sync()
	}()

	command, args := args[0], args[1:]

	// create and list only touch the filesystem
	switch command {
	case "create":
		if len(args) != 1 {
			fatal(log, "create requires a migration name")
		}
		p, err := migration.Create(*dir, args[0])
		if err != nil {
			fatal(log, "failed to create migration", zap.Error(err))
		}
		log.Info("Migration created",
			zap.String("up", p.Up),
			zap.String("down", p.Down),
		)
		return
	case "list":
		names, err := migration.List(*dir)
		if err != nil {
			fatal(log, "failed to list migrations", zap.Error(err))
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fatal(log, "failed to load configuration", zap.Error(err))
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		fatal(log, "failed to open database", zap.Error(err))
	}
	defer db.Close()

	m, err := migration.New(db, *dir, log)
	if err != nil {
		fatal(log, "failed to initialize migrator", zap.Error(err))
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Error("Error closing migrator", zap.Error(err))
		}
	}()

	switch command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "step":
		n, parseErr := intArg(args, "step")
		if parseErr != nil {
			fatal(log, parseErr.Error())
		}
		err = m.Steps(n)
	case "goto":
		v, parseErr := intArg(args, "goto")
		if parseErr != nil || v < 0 {
			fatal(log, "goto requires a non-negative version")
		}
		err = m.To(uint(v))
	case "version":
		version, dirty, verErr := m.Version()
		if verErr != nil {
			fatal(log, "failed to read schema version", zap.Error(verErr))
		}
		log.Info("Schema version", zap.Uint("version", version), zap.Bool("dirty", dirty))
		return
	case "force":
		v, parseErr := intArg(args, "force")
		if parseErr != nil {
			fatal(log, parseErr.Error())
		}
		err = m.Force(v)
	case "drop":
		err = m.Drop()
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		fatal(log, "migration failed", zap.Error(err))
	}
}

func intArg(args []string, command string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%s requires a numeric argument", command)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%s requires a numeric argument: %w", command, err)
	}
	return n, nil
}

func fatal(log *zap.Logger, msg string, fields ...zap.Field) {
	log.Error(msg, fields...)
	os.Exit(1)
}
