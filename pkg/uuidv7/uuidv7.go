// Copyright (c) 2026 Aticom Group. All rights reserved.
// Author: kirubel.wolde@aticomgroup.com

// Package uuidv7 generates time-sortable UUIDv7 identifiers.
//
// # Why v7?
//
// Content rows are written by admins over years. Time-sortable primary keys
// keep the PostgreSQL B-tree append-mostly and make raw table scans roughly
// chronological, which helps ops debugging.
package uuidv7

import "github.com/google/uuid"

// New returns a new UUIDv7 string.
//
// It falls back to a random UUIDv4 in the unlikely event that the system
// clock source fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
