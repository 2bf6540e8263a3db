package integration

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	_ "github.com/lib/pq"
)

func setupPQ(t *testing.T) *sql.DB {
	t.Helper()

	var db *sql.DB
	setupDatabase(t, func(dsn string) error {
		var err error
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
		defer cancel()
		return db.PingContext(ctx)
	})
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func setupPGX(t *testing.T) *pgxpool.Pool {
	t.Helper()

	var db *pgxpool.Pool
	setupDatabase(t, func(dsn string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
		defer cancel()
		var err error
		db, err = pgxpool.New(ctx, dsn)
		if err != nil {
			return err
		}
		return db.Ping(ctx)
	})
	t.Cleanup(func() {
		db.Close() //nolint:errcheck
	})

	return db
}

func setupDatabase(t *testing.T, connect func(string) error) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("Could not construct pool: %s", err)
	}

	err = pool.Client.Ping()
	if err != nil {
		t.Fatalf("Could not connect to Docker: %s", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=test",
			"POSTGRES_USER=test",
			"POSTGRES_DB=test",
			"listen_addresses='*'",
			"fsync='off'",
			"full_page_writes='off'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(120) //nolint:errcheck

	dsn := fmt.Sprintf("postgres://test:test@%s/test?sslmode=disable", resource.GetHostPort("5432/tcp"))

	pool.MaxWait = 120 * time.Second
	if err = pool.Retry(func() error {
		return connect(dsn)
	}); err != nil {
		t.Fatalf("Could not connect to docker: %s", err)
	}

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Fatalf("Could not purge resource: %s", err)
		}
	})
}

const usersSchema = `
	CREATE TABLE users (
		"id" serial PRIMARY KEY,
		"name" text,
		"age" int,
		"role" text,
		"email" text
	);
`

const usersRows = `
	INSERT INTO users
		("id", "name",  "age", "role",      "email") VALUES
		(1,    'Alice', 30,    'admin',     'alice@poki.com'),
		(2,    'Adam',  17,    'user',      'adam@example.org'),
		(3,    'Aaron', 22,    'user',      'aaron@example.org'),
		(4,    'Bob',   25,    'user',      'bob@poki.com'),
		(5,    'Carol', 41,    'moderator', 'carol@example.org'),
		(6,    'Alina', 19,    'user',      'alina@poki.com'),
		(7,    'Grace', 29,    'admin',     'grace@example.org'),
		(8,    'Heidi', 55,    'user',      'heidi@poki.com'),
		(9,    'Ivan',  23,    'user',      'ivan@example.org'),
		(10,   'Judy',  35,    'user',      'judy@poki.com');
`

// createUsersTable creates a users table with 10 users.
func createUsersTable(t *testing.T, db *sql.DB) {
	t.Helper()

	if _, err := db.Exec(usersSchema); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(usersRows); err != nil {
		t.Fatal(err)
	}
}

func createUsersTablePGX(t *testing.T, db *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()
	if _, err := db.Exec(ctx, usersSchema); err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(ctx, usersRows); err != nil {
		t.Fatal(err)
	}
}
