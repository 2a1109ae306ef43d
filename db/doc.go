// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - poll: Poll id and question
  - poll_option: Options per poll, each carrying its vote count

# Relationships

	poll 1──* poll_option

The foreign key uses ON DELETE CASCADE, so options never outlive their
poll. Vote counts are guarded by a CHECK (votes >= 0) constraint and only
ever move upward via a single-statement atomic increment.
*/
package db
