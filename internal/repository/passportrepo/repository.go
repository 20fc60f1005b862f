package passportrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"userhub/internal/domain"
	apperror "userhub/internal/errors"
	"userhub/internal/pkg/cache"
	"userhub/internal/pkg/database"
	"userhub/internal/pkg/logger"
)

// PassportRepository implementa o acesso a dados de UserPassport (tabela user_passport).
type PassportRepository struct {
	DB        database.DBTX
	Cache     *cache.Aside
	DBTimeout time.Duration
	Logger    logger.Logger
}

func NewPassportRepository(db database.DBTX, aside *cache.Aside, dbTimeout time.Duration, log logger.Logger) *PassportRepository {
	return &PassportRepository{
		DB:        db,
		Cache:     aside,
		DBTimeout: dbTimeout,
		Logger:    log,
	}
}

const (
	passportColumns  = `id, name, surname, sex, date_of_birth, nationality, date_of_issue, date_of_expire, passport_number`
	passportCacheKey = "passport:%d"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPassport(row rowScanner) (domain.UserPassport, error) {
	var (
		p      domain.UserPassport
		expire sql.NullString
	)
	err := row.Scan(&p.ID, &p.Name, &p.Surname, &p.Sex, &p.DateOfBirth, &p.Nationality, &p.DateOfIssue, &expire, &p.PassportNumber)
	if expire.Valid {
		p.DateOfExpire = &expire.String
	}
	return p, err
}

// nullable converte a data opcional para o driver (nil vira NULL).
func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func notFound(number int) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Passport with number %d not found", number))
}

func (r *PassportRepository) queryPassports(ctx context.Context, query string, args ...interface{}) ([]domain.UserPassport, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		return nil, apperror.NewDBError("Failed to fetch passports", err)
	}
	defer rows.Close()

	passports := make([]domain.UserPassport, 0)
	for rows.Next() {
		p, err := scanPassport(rows)
		if err != nil {
			return nil, apperror.NewDBError("Failed to read passport row", err)
		}
		passports = append(passports, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Failed to iterate passports", err)
	}
	return passports, nil
}

func (r *PassportRepository) FindAll(ctx context.Context) ([]domain.UserPassport, error) {
	return r.queryPassports(ctx, `SELECT `+passportColumns+` FROM user_passport ORDER BY id`)
}

// FindByNumber busca o passaporte pelo número (Cache-Aside).
func (r *PassportRepository) FindByNumber(ctx context.Context, number int) (domain.UserPassport, error) {
	key := fmt.Sprintf(passportCacheKey, number)

	var passport domain.UserPassport
	if r.Cache.Get(ctx, key, &passport) {
		return passport, nil
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	row := r.DB.QueryRowContext(ctxTimeout, `SELECT `+passportColumns+` FROM user_passport WHERE passport_number = $1`, number)
	passport, err := scanPassport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UserPassport{}, notFound(number)
	}
	if err != nil {
		return domain.UserPassport{}, apperror.NewDBError("Failed to fetch passport", err)
	}

	r.Cache.Set(ctx, key, passport)
	return passport, nil
}

func (r *PassportRepository) FindByNationality(ctx context.Context, nationality string) ([]domain.UserPassport, error) {
	return r.queryPassports(ctx, `SELECT `+passportColumns+` FROM user_passport WHERE nationality = $1 ORDER BY id`, nationality)
}

func (r *PassportRepository) Create(ctx context.Context, p domain.UserPassport) (domain.UserPassport, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const insertSQL = `INSERT INTO user_passport (name, surname, sex, date_of_birth, nationality, date_of_issue, date_of_expire, passport_number)
                       VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                       RETURNING ` + passportColumns

	created, err := scanPassport(r.DB.QueryRowContext(ctxTimeout, insertSQL,
		p.Name, p.Surname, p.Sex, p.DateOfBirth, p.Nationality, p.DateOfIssue, nullable(p.DateOfExpire), p.PassportNumber))
	if err != nil {
		return domain.UserPassport{}, apperror.NewDBError("Failed to create passport", err)
	}

	r.Logger.Debug("Passaporte inserido no PostgreSQL", map[string]interface{}{"id": created.ID})
	return created, nil
}

// UpdateByNumber sobrescreve todos os campos mutáveis, inclusive o próprio número.
func (r *PassportRepository) UpdateByNumber(ctx context.Context, number int, p domain.UserPassport) (domain.UserPassport, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const updateSQL = `UPDATE user_passport
                       SET name = $1, surname = $2, sex = $3, date_of_birth = $4, nationality = $5,
                           date_of_issue = $6, date_of_expire = $7, passport_number = $8
                       WHERE passport_number = $9
                       RETURNING ` + passportColumns

	updated, err := scanPassport(r.DB.QueryRowContext(ctxTimeout, updateSQL,
		p.Name, p.Surname, p.Sex, p.DateOfBirth, p.Nationality, p.DateOfIssue, nullable(p.DateOfExpire), p.PassportNumber, number))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UserPassport{}, notFound(number)
	}
	if err != nil {
		return domain.UserPassport{}, apperror.NewDBError("Failed to update passport", err)
	}

	r.Cache.Invalidate(ctx, fmt.Sprintf(passportCacheKey, number), fmt.Sprintf(passportCacheKey, updated.PassportNumber))
	return updated, nil
}

func (r *PassportRepository) DeleteByNumber(ctx context.Context, number int) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM user_passport WHERE passport_number = $1`, number)
	if err != nil {
		return apperror.NewDBError("Failed to delete passport", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperror.NewDBError("Failed to delete passport", err)
	}
	if affected == 0 {
		return notFound(number)
	}

	r.Cache.Invalidate(ctx, fmt.Sprintf(passportCacheKey, number))
	return nil
}
