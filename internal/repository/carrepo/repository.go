package carrepo

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

// CarRepository implementa o acesso a dados de UserCar (tabela user_car).
// A chave natural é o VIN (car_vin_code).
type CarRepository struct {
	DB        database.DBTX
	Cache     *cache.Aside
	DBTimeout time.Duration
	Logger    logger.Logger
}

func NewCarRepository(db database.DBTX, aside *cache.Aside, dbTimeout time.Duration, log logger.Logger) *CarRepository {
	return &CarRepository{
		DB:        db,
		Cache:     aside,
		DBTimeout: dbTimeout,
		Logger:    log,
	}
}

const (
	carColumns  = `id, user_name, user_email, brand_car, graduation_year, model, car_vin_code`
	carCacheKey = "car:vin:%s"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCar(row rowScanner) (domain.UserCar, error) {
	var c domain.UserCar
	err := row.Scan(&c.ID, &c.UserName, &c.UserEmail, &c.BrandCar, &c.GraduationYear, &c.Model, &c.CarVinCode)
	return c, err
}

func (r *CarRepository) queryCars(ctx context.Context, query string, args ...interface{}) ([]domain.UserCar, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		return nil, apperror.NewDBError("Failed to fetch cars", err)
	}
	defer rows.Close()

	cars := make([]domain.UserCar, 0)
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, apperror.NewDBError("Failed to read car row", err)
		}
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDBError("Failed to iterate cars", err)
	}
	return cars, nil
}

// queryOneCar retorna a primeira linha (menor id) ou NotFound com a mensagem informada.
func (r *CarRepository) queryOneCar(ctx context.Context, notFound string, query string, args ...interface{}) (domain.UserCar, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	car, err := scanCar(r.DB.QueryRowContext(ctxTimeout, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UserCar{}, apperror.NewNotFoundError(notFound)
	}
	if err != nil {
		return domain.UserCar{}, apperror.NewDBError("Failed to fetch car", err)
	}
	return car, nil
}

func (r *CarRepository) FindAll(ctx context.Context) ([]domain.UserCar, error) {
	return r.queryCars(ctx, `SELECT `+carColumns+` FROM user_car ORDER BY id`)
}

// FindByVinCode busca o carro pelo VIN (Cache-Aside).
func (r *CarRepository) FindByVinCode(ctx context.Context, vinCode string) (domain.UserCar, error) {
	key := fmt.Sprintf(carCacheKey, vinCode)

	var car domain.UserCar
	if r.Cache.Get(ctx, key, &car) {
		return car, nil
	}

	car, err := r.queryOneCar(ctx,
		fmt.Sprintf("Car with vin code %s not found", vinCode),
		`SELECT `+carColumns+` FROM user_car WHERE car_vin_code = $1 ORDER BY id LIMIT 1`, vinCode)
	if err != nil {
		return domain.UserCar{}, err
	}

	r.Cache.Set(ctx, key, car)
	return car, nil
}

// FindByGraduationYear retorna o primeiro carro (por id) do ano informado.
func (r *CarRepository) FindByGraduationYear(ctx context.Context, year int) (domain.UserCar, error) {
	return r.queryOneCar(ctx,
		fmt.Sprintf("Car with graduation year %d not found", year),
		`SELECT `+carColumns+` FROM user_car WHERE graduation_year = $1 ORDER BY id LIMIT 1`, year)
}

func (r *CarRepository) FindByUserNameAndEmail(ctx context.Context, userName, email string) ([]domain.UserCar, error) {
	return r.queryCars(ctx,
		`SELECT `+carColumns+` FROM user_car WHERE user_name = $1 AND user_email = $2 ORDER BY id`, userName, email)
}

func (r *CarRepository) FindByBrandAndModel(ctx context.Context, brand, model string) ([]domain.UserCar, error) {
	return r.queryCars(ctx,
		`SELECT `+carColumns+` FROM user_car WHERE brand_car = $1 AND model = $2 ORDER BY id`, brand, model)
}

// Create insere o carro e devolve a entidade com o id gerado.
func (r *CarRepository) Create(ctx context.Context, car domain.UserCar) (domain.UserCar, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const insertSQL = `INSERT INTO user_car (user_name, user_email, brand_car, graduation_year, model, car_vin_code)
                       VALUES ($1, $2, $3, $4, $5, $6)
                       RETURNING ` + carColumns

	created, err := scanCar(r.DB.QueryRowContext(ctxTimeout, insertSQL,
		car.UserName, car.UserEmail, car.BrandCar, car.GraduationYear, car.Model, car.CarVinCode))
	if err != nil {
		return domain.UserCar{}, apperror.NewDBError("Failed to create car", err)
	}

	r.Logger.Debug("Carro inserido no PostgreSQL", map[string]interface{}{"id": created.ID, "vin": created.CarVinCode})
	return created, nil
}

// UpdateByVinCode sobrescreve os campos mutáveis. O VIN em si não é reescrito.
func (r *CarRepository) UpdateByVinCode(ctx context.Context, vinCode string, car domain.UserCar) (domain.UserCar, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const updateSQL = `UPDATE user_car
                       SET user_name = $1, user_email = $2, brand_car = $3, graduation_year = $4, model = $5
                       WHERE car_vin_code = $6
                       RETURNING ` + carColumns

	updated, err := scanCar(r.DB.QueryRowContext(ctxTimeout, updateSQL,
		car.UserName, car.UserEmail, car.BrandCar, car.GraduationYear, car.Model, vinCode))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.UserCar{}, apperror.NewNotFoundError(fmt.Sprintf("Car with vin code %s not found", vinCode))
	}
	if err != nil {
		return domain.UserCar{}, apperror.NewDBError("Failed to update car", err)
	}

	r.Cache.Invalidate(ctx, fmt.Sprintf(carCacheKey, vinCode))
	return updated, nil
}

// DeleteByVinCode remove fisicamente o carro.
func (r *CarRepository) DeleteByVinCode(ctx context.Context, vinCode string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM user_car WHERE car_vin_code = $1`, vinCode)
	if err != nil {
		return apperror.NewDBError("Failed to delete car", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return apperror.NewDBError("Failed to delete car", err)
	}
	if affected == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("Car with vin code %s not found", vinCode))
	}

	r.Cache.Invalidate(ctx, fmt.Sprintf(carCacheKey, vinCode))
	return nil
}
