package main

import (
	"fmt"
	"strconv"

	"github.com/zulandar/hwrel/internal/config"
	"github.com/zulandar/hwrel/internal/db"
	"gorm.io/gorm"
)

// connectFromConfig loads the config and opens the database it names.
func connectFromConfig(configPath string) (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	gormDB, err := openDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, gormDB, nil
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	d := cfg.Database
	if d.Driver == "mysql" {
		gormDB, err := db.Connect(d.Host, d.Port, d.Name)
		if err != nil {
			return nil, fmt.Errorf("connect to %s: %w", d.Name, err)
		}
		return gormDB, nil
	}
	gormDB, err := db.ConnectSQLite(d.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.Path, err)
	}
	return gormDB, nil
}

// parseID parses a positive hardware id argument.
func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid hardware id %q", s)
	}
	return uint(id), nil
}
