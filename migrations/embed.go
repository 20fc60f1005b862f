// Package migrations embute os arquivos SQL do goose para que cmd/migrate
// e as suítes de integração apliquem exatamente o mesmo schema.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var FS embed.FS

// Up aplica todas as migrations pendentes.
func Up(db *sql.DB) error {
	return Run("up", db)
}

// Run executa um comando do goose (up, down, status, reset...) sobre o FS embutido.
func Run(command string, db *sql.DB, args ...string) error {
	goose.SetBaseFS(FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose: dialeto inválido: %w", err)
	}
	return goose.Run(command, db, ".", args...)
}
