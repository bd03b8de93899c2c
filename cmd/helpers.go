package cmd

import (
	"recipe-box/config"
	"recipe-box/database"
)

// withDB opens the configured database, migrating it first when migrate is set
func withDB(migrate bool, run func(*database.DB) error) error {
	db, err := database.New(config.AppConfig.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if migrate {
		if err := db.Migrate(); err != nil {
			return err
		}
	}
	return run(db)
}
