package main

import (
	"errors"
	"flag"
	"urban_life/internal/pkg/config"
	"urban_life/pkg/logger"

	"github.com/golang-migrate/migrate/v4"
	"go.uber.org/zap"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	var (
		source = flag.String("path", "file://migrations", "migration source URL")
		down   = flag.Bool("down", false, "roll back one step")
		force  = flag.Int("force", -1, "force version after a failed migration left the database dirty")
	)
	flag.Parse()

	config.LoadConfig()
	log, err := logger.InitLogger(logger.Options{Env: config.GlobalConfig.App.Env, Level: config.GlobalConfig.Log.Level})
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	m, err := migrate.New(*source, config.GlobalConfig.Database.MigrateURL())
	if err != nil {
		log.Fatal("open migration source failed", zap.Error(err))
	}
	defer m.Close()

	if *force >= 0 {
		if err := m.Force(*force); err != nil {
			log.Fatal("force version failed", zap.Int("version", *force), zap.Error(err))
		}
		log.Info("version forced", zap.Int("version", *force))
	}

	if *down {
		err = m.Steps(-1)
	} else {
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		var dirty migrate.ErrDirty
		if errors.As(err, &dirty) {
			log.Fatal("database is dirty, fix the schema then rerun with -force", zap.Int("version", dirty.Version))
		}
		log.Fatal("migration failed", zap.Error(err))
	}

	version, isDirty, _ := m.Version()
	log.Info("migration finished", zap.Uint("version", version), zap.Bool("dirty", isDirty))
}
