package storage

import (
	"path"

	"go.etcd.io/bbolt"

	"godreidel/utils"
)

const DBPath = "db"

func GetDBPath() string {
	return path.Join(utils.GetSubFolder(DBPath), "spins.db")
}

func GetDB() (*bbolt.DB, error) {
	return OpenDB(GetDBPath())
}

func OpenDB(dbPath string) (*bbolt.DB, error) {
	return bbolt.Open(dbPath, 0600, nil)
}
