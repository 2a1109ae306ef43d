// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: PostgreSQL connection string (required)
  - JWTSecret: Symmetric token signing secret (required)
  - JWTIssuer: Issuer claim for issued tokens (required)
  - JWTAudience: Audience claim for issued tokens (required)
  - AdminUsername: Superuser login name (required)
  - AdminPassword: Superuser password (required)

# CLI Flags

	-p             Server port
	-d             Database URL
	--jwt-secret   Token signing secret
	--jwt-issuer   Token issuer
	--jwt-audience Token audience
	--admin-user   Admin username
	--admin-pass   Admin password

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	JWT_SECRET     → --jwt-secret
	JWT_ISSUER     → --jwt-issuer
	JWT_AUDIENCE   → --jwt-audience
	ADMIN_USERNAME → --admin-user
	ADMIN_PASSWORD → --admin-pass

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if any required value is missing. Secrets and
credentials are never defaulted; the process refuses to start without them.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(db, cfg, hub)
*/
package cliparse
