package userrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"userhub/internal/domain"
	apperror "userhub/internal/errors"
	"userhub/internal/pkg/cache"
	"userhub/internal/pkg/database"
	"userhub/internal/pkg/logger"
)

// UserRepository implementa o acesso a dados da entidade User (tabela users).
type UserRepository struct {
	DB        database.DBTX
	Cache     *cache.Aside
	DBTimeout time.Duration
	Logger    logger.Logger
}

// NewUserRepository cria o repositório injetando o DB, o cache e o timeout de cada query.
func NewUserRepository(db database.DBTX, aside *cache.Aside, dbTimeout time.Duration, log logger.Logger) *UserRepository {
	return &UserRepository{
		DB:        db,
		Cache:     aside,
		DBTimeout: dbTimeout,
		Logger:    log,
	}
}

const (
	userColumns  = `id, name, age, email, phone`
	userCacheKey = "user:%d"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.Age, &u.Email, &u.Phone)
	return u, err
}

// queryUsers executa uma consulta de listagem. Nunca retorna slice nil.
func (r *UserRepository) queryUsers(ctx context.Context, query string, args ...interface{}) ([]domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		return nil, apperror.NewDBError("Failed to fetch users", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, apperror.NewDBError("Failed to read user row", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Failed to iterate users", err)
	}
	return users, nil
}

// FindAll retorna todos os usuários em ordem de id.
func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	return r.queryUsers(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
}

// FindAllSortedByName retorna todos os usuários em ordem alfabética de nome.
func (r *UserRepository) FindAllSortedByName(ctx context.Context) ([]domain.User, error) {
	return r.queryUsers(ctx, `SELECT `+userColumns+` FROM users ORDER BY name ASC, id ASC`)
}

// FindByID busca um usuário pelo id, utilizando a estratégia Cache-Aside.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (domain.User, error) {
	key := fmt.Sprintf(userCacheKey, id)

	// 1. Cache HIT
	var user domain.User
	if r.Cache.Get(ctx, key, &user) {
		return user, nil
	}

	// 2. Busca no PostgreSQL
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	row := r.DB.QueryRowContext(ctxTimeout, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, apperror.NewNotFoundError(fmt.Sprintf("User with id %d not found", id))
	}
	if err != nil {
		return domain.User{}, apperror.NewDBError("Failed to fetch user", err)
	}

	// 3. Popula o cache para as próximas leituras
	r.Cache.Set(ctx, key, user)
	return user, nil
}

// FindByFilter retorna os usuários que casam com QUALQUER critério presente.
// Sem critérios, nenhum usuário casa.
func (r *UserRepository) FindByFilter(ctx context.Context, filter domain.UserFilter) ([]domain.User, error) {
	if filter.IsEmpty() {
		return []domain.User{}, nil
	}

	conditions := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)
	add := func(column string, value interface{}) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if filter.Name != nil {
		add("name", *filter.Name)
	}
	if filter.Age != nil {
		add("age", *filter.Age)
	}
	if filter.Email != nil {
		add("email", *filter.Email)
	}
	if filter.Phone != nil {
		add("phone", *filter.Phone)
	}

	query := `SELECT ` + userColumns + ` FROM users WHERE ` + strings.Join(conditions, " OR ") + ` ORDER BY id`
	return r.queryUsers(ctx, query, args...)
}

// Count retorna o total de usuários.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var total int64
	if err := r.DB.QueryRowContext(ctxTimeout, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return 0, apperror.NewDBError("Failed to count users", err)
	}
	return total, nil
}

// Create insere o usuário e devolve a entidade com o id gerado pelo PostgreSQL.
func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const insertSQL = `INSERT INTO users (name, age, email, phone)
                       VALUES ($1, $2, $3, $4)
                       RETURNING ` + userColumns

	created, err := scanUser(r.DB.QueryRowContext(ctxTimeout, insertSQL, user.Name, user.Age, user.Email, user.Phone))
	if err != nil {
		return domain.User{}, apperror.NewDBError("Failed to create user", err)
	}

	r.Logger.Debug("Usuário inserido no PostgreSQL", map[string]interface{}{"id": created.ID})
	return created, nil
}

// Update sobrescreve todos os campos mutáveis do usuário identificado por id.
func (r *UserRepository) Update(ctx context.Context, id int64, user domain.User) (domain.User, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const updateSQL = `UPDATE users
                       SET name = $1, age = $2, email = $3, phone = $4
                       WHERE id = $5
                       RETURNING ` + userColumns

	updated, err := scanUser(r.DB.QueryRowContext(ctxTimeout, updateSQL, user.Name, user.Age, user.Email, user.Phone, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, apperror.NewNotFoundError(fmt.Sprintf("User with id %d not found", id))
	}
	if err != nil {
		return domain.User{}, apperror.NewDBError("Failed to update user", err)
	}

	r.Cache.Invalidate(ctx, fmt.Sprintf(userCacheKey, id))
	return updated, nil
}

// Delete remove fisicamente o usuário. Um id inexistente resulta em NotFound.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperror.NewDBError("Failed to delete user", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperror.NewDBError("Failed to delete user", err)
	}
	if affected == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("User with id %d not found", id))
	}

	r.Cache.Invalidate(ctx, fmt.Sprintf(userCacheKey, id))
	return nil
}
