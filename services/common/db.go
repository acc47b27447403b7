package common

import (
	"path/filepath"

	"github.com/Qitmeer/zmqnotify/config"
	"github.com/Qitmeer/zmqnotify/database"
	"github.com/Qitmeer/zmqnotify/log"
)

const (
	// blockDbNamePrefix is the prefix for the block database name.  The
	// database type is appended to this value to form the full block
	// database name.
	blockDbNamePrefix = "blocks"
)

// LoadBlockDB opens (creating when needed) the block database of the
// configured backend.  The backend driver must be linked in by the caller.
func LoadBlockDB(cfg *config.Config) (database.DB, error) {
	dbPath := blockDbPath(cfg.DbType, cfg)

	log.Info("Loading block database", "dbPath", dbPath, "dbType", cfg.DbType)
	db, err := database.Open(cfg.DbType, dbPath)
	if err != nil {
		return nil, err
	}
	log.Info("Block database loaded")
	return db, nil
}

// blockDbPath returns the path to the block database given a database type.
func blockDbPath(dbType string, cfg *config.Config) string {
	// The database name is based on the database type.
	dbName := blockDbNamePrefix + "_" + dbType
	dbPath := filepath.Join(cfg.DataDir, dbName)
	return dbPath
}
