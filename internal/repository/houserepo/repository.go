package houserepo

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

// HouseRepository implementa o acesso a dados de UserHouse (tabela user_house).
// A chave natural é o par (house_number, flat_number).
type HouseRepository struct {
	DB        database.DBTX
	Cache     *cache.Aside
	DBTimeout time.Duration
	Logger    logger.Logger
}

func NewHouseRepository(db database.DBTX, aside *cache.Aside, dbTimeout time.Duration, log logger.Logger) *HouseRepository {
	return &HouseRepository{
		DB:        db,
		Cache:     aside,
		DBTimeout: dbTimeout,
		Logger:    log,
	}
}

const (
	houseColumns  = `id, user_name, user_phone, country, town, address, house_number, flat_number`
	houseCacheKey = "house:%d:%d"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanHouse(row rowScanner) (domain.UserHouse, error) {
	var h domain.UserHouse
	err := row.Scan(&h.ID, &h.UserName, &h.UserPhone, &h.Country, &h.Town, &h.Address, &h.HouseNumber, &h.FlatNumber)
	return h, err
}

func notFound(houseNumber, flatNumber int) error {
	return apperror.NewNotFoundError(fmt.Sprintf("House with house number %d and flat number %d not found", houseNumber, flatNumber))
}

func (r *HouseRepository) queryHouses(ctx context.Context, query string, args ...interface{}) ([]domain.UserHouse, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		return nil, apperror.NewDBError("Failed to fetch houses", err)
	}
	defer rows.Close()

	houses := make([]domain.UserHouse, 0)
	for rows.Next() {
		h, err := scanHouse(rows)
		if err != nil {
			return nil, apperror.NewDBError("Failed to read house row", err)
		}
		houses = append(houses, h)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Failed to iterate houses", err)
	}
	return houses, nil
}

func (r *HouseRepository) FindAll(ctx context.Context) ([]domain.UserHouse, error) {
	return r.queryHouses(ctx, `SELECT `+houseColumns+` FROM user_house ORDER BY id`)
}

// FindByHouseAndFlat busca pela chave composta (Cache-Aside).
func (r *HouseRepository) FindByHouseAndFlat(ctx context.Context, houseNumber, flatNumber int) (domain.UserHouse, error) {
	key := fmt.Sprintf(houseCacheKey, houseNumber, flatNumber)

	var house domain.UserHouse
	if r.Cache.Get(ctx, key, &house) {
		return house, nil
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	row := r.DB.QueryRowContext(ctxTimeout,
		`SELECT `+houseColumns+` FROM user_house WHERE house_number = $1 AND flat_number = $2`, houseNumber, flatNumber)
	house, err := scanHouse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UserHouse{}, notFound(houseNumber, flatNumber)
	}
	if err != nil {
		return domain.UserHouse{}, apperror.NewDBError("Failed to fetch house", err)
	}

	r.Cache.Set(ctx, key, house)
	return house, nil
}

func (r *HouseRepository) FindByTown(ctx context.Context, town string) ([]domain.UserHouse, error) {
	return r.queryHouses(ctx, `SELECT `+houseColumns+` FROM user_house WHERE town = $1 ORDER BY id`, town)
}

// FindByCountry compara o país sem diferenciar maiúsculas.
func (r *HouseRepository) FindByCountry(ctx context.Context, country string) ([]domain.UserHouse, error) {
	return r.queryHouses(ctx, `SELECT `+houseColumns+` FROM user_house WHERE upper(country) = upper($1) ORDER BY id`, country)
}

func (r *HouseRepository) Create(ctx context.Context, house domain.UserHouse) (domain.UserHouse, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const insertSQL = `INSERT INTO user_house (user_name, user_phone, country, town, address, house_number, flat_number)
                       VALUES ($1, $2, $3, $4, $5, $6, $7)
                       RETURNING ` + houseColumns

	created, err := scanHouse(r.DB.QueryRowContext(ctxTimeout, insertSQL,
		house.UserName, house.UserPhone, house.Country, house.Town, house.Address, house.HouseNumber, house.FlatNumber))
	if err != nil {
		return domain.UserHouse{}, apperror.NewDBError("Failed to create house", err)
	}

	r.Logger.Debug("Casa inserida no PostgreSQL", map[string]interface{}{"id": created.ID})
	return created, nil
}

// UpdateByHouseAndFlat sobrescreve todos os campos mutáveis, inclusive a própria chave composta.
func (r *HouseRepository) UpdateByHouseAndFlat(ctx context.Context, houseNumber, flatNumber int, house domain.UserHouse) (domain.UserHouse, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const updateSQL = `UPDATE user_house
                       SET user_name = $1, user_phone = $2, country = $3, town = $4, address = $5,
                           house_number = $6, flat_number = $7
                       WHERE house_number = $8 AND flat_number = $9
                       RETURNING ` + houseColumns

	updated, err := scanHouse(r.DB.QueryRowContext(ctxTimeout, updateSQL,
		house.UserName, house.UserPhone, house.Country, house.Town, house.Address,
		house.HouseNumber, house.FlatNumber, houseNumber, flatNumber))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UserHouse{}, notFound(houseNumber, flatNumber)
	}
	if err != nil {
		return domain.UserHouse{}, apperror.NewDBError("Failed to update house", err)
	}

	r.Cache.Invalidate(ctx,
		fmt.Sprintf(houseCacheKey, houseNumber, flatNumber),
		fmt.Sprintf(houseCacheKey, updated.HouseNumber, updated.FlatNumber))
	return updated, nil
}

func (r *HouseRepository) DeleteByHouseAndFlat(ctx context.Context, houseNumber, flatNumber int) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout,
		`DELETE FROM user_house WHERE house_number = $1 AND flat_number = $2`, houseNumber, flatNumber)
	if err != nil {
		return apperror.NewDBError("Failed to delete house", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperror.NewDBError("Failed to delete house", err)
	}
	if affected == 0 {
		return notFound(houseNumber, flatNumber)
	}

	r.Cache.Invalidate(ctx, fmt.Sprintf(houseCacheKey, houseNumber, flatNumber))
	return nil
}
