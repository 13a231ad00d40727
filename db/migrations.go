package db

import "embed"

// Migrations holds the SQL migrations applied by cmd/migration and by the API when DB_AUTO_MIGRATE is set.
//
//go:embed migrations/*.sql
var Migrations embed.FS

const MigrationsPath = "migrations"
