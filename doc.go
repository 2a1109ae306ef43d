// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the livepoll API server.

Livepoll is a minimal live polling service: clients create polls with
multiple options, anyone can vote, and connected websocket subscribers
receive every new vote count as it happens.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... JWT_SECRET=... go run main.go

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string
  - JWT_SECRET (--jwt-secret): Symmetric token signing secret
  - JWT_ISSUER (--jwt-issuer): Issuer claim on issued tokens
  - JWT_AUDIENCE (--jwt-audience): Audience claim on issued tokens
  - ADMIN_USERNAME (--admin-user): Superuser login name
  - ADMIN_PASSWORD (--admin-pass): Superuser password

Optional settings:

  - PORT (-p): Server port (default: 3318)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (login, polls, voting, realtime)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Bearer auth, CORS, logging, JSON helpers
  - models: Request/response types
  - auth: JWT issuance and verification
  - realtime: Websocket fanout hub for vote events
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
