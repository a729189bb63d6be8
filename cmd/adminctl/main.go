// Copyright (c) 2026 Aticom Group. All rights reserved.
// Author: kirubel.wolde@aticomgroup.com

// Command adminctl provisions admin panel accounts from the command line.
//
// The login API has no registration endpoint, so the first account (and any
// later operator accounts) are created here, directly against the database:
//
//	DATABASE_URL=postgres://... adminctl \
//	    -email ops@aticomgroup.com -name "Site Admin" -role admin
//
// The password is read from the ADMIN_PASSWORD environment variable so it
// never appears in shell history or process listings.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/auth"
	pgstore "github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/postgres"
	"github.com/kirubelwolde/aticom-group-latest-sub001/internal/platform/sec"
)

func main() {
	email := flag.String("email", "", "account email (required)")
	name := flag.String("name", "", "display name (required)")
	role := flag.String("role", string(sec.RoleEditor), "account role: admin or editor")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	dsn := os.Getenv("DATABASE_URL")
	password := os.Getenv("ADMIN_PASSWORD")

	if *email == "" || *name == "" || dsn == "" || password == "" {
		fmt.Fprintln(os.Stderr, "usage: DATABASE_URL=... ADMIN_PASSWORD=... adminctl -email <email> -name <name> [-role admin|editor]")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, dsn, log)
	if err != nil {
		log.Error("connect failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	// Token issuance is not needed for provisioning.
	service := auth.NewService(auth.NewPostgresRepository(pool), nil, log)

	account, err := service.ProvisionAccount(ctx, *email, password, *name, sec.Role(*role))
	if err != nil {
		log.Error("provisioning failed", slog.Any("error", err))
		os.Exit(1)
	}

	fmt.Printf("account created: %s (%s, role=%s)\n", account.Email, account.ID, account.Role)
}
