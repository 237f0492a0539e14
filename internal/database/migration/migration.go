package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_table_posts",
		SQL: `CREATE TABLE IF NOT EXISTS posts (
  id                UUID        PRIMARY KEY,
  name              TEXT        NOT NULL UNIQUE,
  slug              TEXT        NOT NULL UNIQUE,
  short_description TEXT        NOT NULL DEFAULT '',
  content           TEXT        NOT NULL DEFAULT '',
  published_at      TEXT        NOT NULL DEFAULT '',
  attachment        TEXT        NOT NULL DEFAULT '',
  status            BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_brands",
		SQL: `CREATE TABLE IF NOT EXISTS brands (
  id         UUID        PRIMARY KEY,
  name       TEXT        NOT NULL UNIQUE,
  attachment TEXT        NOT NULL DEFAULT '',
  status     BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_galleries",
		SQL: `CREATE TABLE IF NOT EXISTS galleries (
  id          UUID        PRIMARY KEY,
  name        TEXT        NOT NULL UNIQUE,
  is_featured BOOLEAN     NOT NULL DEFAULT FALSE,
  attachment  TEXT        NOT NULL DEFAULT '',
  status      BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_services",
		SQL: `CREATE TABLE IF NOT EXISTS services (
  id          UUID        PRIMARY KEY,
  name        TEXT        NOT NULL UNIQUE,
  slug        TEXT        NOT NULL UNIQUE,
  description TEXT        NOT NULL DEFAULT '',
  list        JSONB       NOT NULL DEFAULT '[]',
  attachment  TEXT        NOT NULL DEFAULT '',
  status      BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_shops",
		SQL: `CREATE TABLE IF NOT EXISTS shops (
  id          UUID        PRIMARY KEY,
  name        TEXT        NOT NULL UNIQUE,
  description TEXT        NOT NULL DEFAULT '',
  attachment  TEXT        NOT NULL DEFAULT '',
  status      BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_sliders",
		SQL: `CREATE TABLE IF NOT EXISTS sliders (
  id            UUID        PRIMARY KEY,
  name          TEXT        NOT NULL UNIQUE,
  button_text   TEXT        NOT NULL DEFAULT '',
  bottom_banner TEXT        NOT NULL DEFAULT '',
  attachment    TEXT        NOT NULL DEFAULT '',
  status        BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_works",
		SQL: `CREATE TABLE IF NOT EXISTS works (
  id          UUID        PRIMARY KEY,
  name        TEXT        NOT NULL UNIQUE,
  slug        TEXT        NOT NULL UNIQUE,
  description TEXT        NOT NULL DEFAULT '',
  main_image  TEXT        NOT NULL DEFAULT '',
  images      JSONB       NOT NULL DEFAULT '[]',
  status      BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_newsletters",
		SQL: `CREATE TABLE IF NOT EXISTS newsletters (
  id         UUID        PRIMARY KEY,
  email      TEXT        NOT NULL UNIQUE,
  status     BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_users",
		SQL: `CREATE TABLE IF NOT EXISTS users (
  id            UUID        PRIMARY KEY,
  name          TEXT        NOT NULL,
  email         TEXT        NOT NULL UNIQUE,
  number        TEXT        NOT NULL DEFAULT '',
  address       TEXT        NOT NULL DEFAULT '',
  role          TEXT        NOT NULL DEFAULT 'user',
  profile_image TEXT        NOT NULL DEFAULT '',
  status        BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_settings",
		SQL: `CREATE TABLE IF NOT EXISTS settings (
  id                   UUID        PRIMARY KEY,
  name                 TEXT        NOT NULL DEFAULT '',
  description          TEXT        NOT NULL DEFAULT '',
  business_number      TEXT        NOT NULL DEFAULT '',
  business_address     TEXT        NOT NULL DEFAULT '',
  business_location    TEXT        NOT NULL DEFAULT '',
  business_slogan      TEXT        NOT NULL DEFAULT '',
  business_email       TEXT        NOT NULL DEFAULT '',
  business_facebook    TEXT        NOT NULL DEFAULT '',
  business_instagram   TEXT        NOT NULL DEFAULT '',
  business_twitter     TEXT        NOT NULL DEFAULT '',
  business_linkedin    TEXT        NOT NULL DEFAULT '',
  business_youtube     TEXT        NOT NULL DEFAULT '',
  business_whatsapp    TEXT        NOT NULL DEFAULT '',
  business_work_hours  TEXT        NOT NULL DEFAULT '',
  primary_color        TEXT        NOT NULL DEFAULT '',
  secondary_color      TEXT        NOT NULL DEFAULT '',
  logo                 TEXT        NOT NULL DEFAULT '',
  favicon              TEXT        NOT NULL DEFAULT '',
  about_banner         TEXT        NOT NULL DEFAULT '',
  service_banner       TEXT        NOT NULL DEFAULT '',
  work_banner          TEXT        NOT NULL DEFAULT '',
  process_banner       TEXT        NOT NULL DEFAULT '',
  gallery_banner       TEXT        NOT NULL DEFAULT '',
  shop_banner          TEXT        NOT NULL DEFAULT '',
  contact_banner       TEXT        NOT NULL DEFAULT '',
  blog_banner          TEXT        NOT NULL DEFAULT '',
  currency             TEXT        NOT NULL DEFAULT '',
  delivery             TEXT        NOT NULL DEFAULT '',
  payment_terms        TEXT        NOT NULL DEFAULT '',
  pickup_point         TEXT        NOT NULL DEFAULT '',
  privacy_policy       TEXT        NOT NULL DEFAULT '',
  refund_and_returns   TEXT        NOT NULL DEFAULT '',
  terms_and_conditions TEXT        NOT NULL DEFAULT '',
  ssl                  TEXT        NOT NULL DEFAULT '',
  status               BOOLEAN     NOT NULL DEFAULT TRUE,
  created_at           TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at           TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_posts_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_posts_created_at ON posts (created_at DESC, id DESC);`,
	},
	{
		Name: "create_index_works_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_works_created_at ON works (created_at DESC, id DESC);`,
	},
	{
		Name: "create_index_galleries_created_at",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_galleries_created_at ON galleries (created_at DESC, id DESC);`,
	},
}

// EnsureMigrated checks if the 'posts' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.posts') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
