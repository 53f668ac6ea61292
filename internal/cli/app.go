// Package cli implements the interactive terminal front end. It is thin
// glue: every command reads input, calls a service, and prints the result;
// no invariants live here.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"path/filepath"

	"github.com/jmoranq/recetario/internal/backup"
	"github.com/jmoranq/recetario/internal/config"
	"github.com/jmoranq/recetario/internal/filex"
	"github.com/jmoranq/recetario/internal/logging"
	"github.com/jmoranq/recetario/internal/services"
	"github.com/jmoranq/recetario/internal/storage"
)

type App struct {
	config    *config.Config
	db        *sql.DB
	users     *services.UserService
	recipes   *services.RecipeService
	share     *services.ShareService
	userEmail string
	reader    *bufio.Reader
	out       io.Writer
	log       logging.Logger
}

func NewApp(cfg *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewDefault()

	dbPath, backupPath, err := dataPaths(cfg)
	if err != nil {
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, dbPath)
	if err != nil {
		return nil, err
	}

	bw := backup.NewWriter(backupPath, log)

	app := &App{
		config:  cfg,
		db:      db,
		users:   services.NewUserService(db, bw, log),
		recipes: services.NewRecipeService(db, log),
		share:   services.NewShareService(db, log),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		log:     log,
	}

	// A session left by a previous run is picked up again.
	if email, err := app.users.GetSession(ctx); err == nil {
		app.userEmail = email
	}

	return app, nil
}

func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// dataPaths resolves the database and backup locations. Relative paths land
// in a "data" subdirectory of the working directory, created on demand;
// absolute paths are used as given.
func dataPaths(cfg *config.Config) (string, string, error) {
	dbPath, backupPath := cfg.DatabasePath, cfg.BackupPath
	if filepath.IsAbs(dbPath) && filepath.IsAbs(backupPath) {
		return dbPath, backupPath, nil
	}

	dir, err := filex.EnsureSubDir("data")
	if err != nil {
		return "", "", err
	}
	if !filepath.IsAbs(dbPath) {
		dbPath = filepath.Join(dir, dbPath)
	}
	if !filepath.IsAbs(backupPath) {
		backupPath = filepath.Join(dir, backupPath)
	}
	return dbPath, backupPath, nil
}

func (a *App) isLoggedIn() bool {
	return a.userEmail != ""
}

func (a *App) getStatus() string {
	if a.userEmail == "" {
		return ""
	}
	return "(" + a.userEmail + ")"
}
