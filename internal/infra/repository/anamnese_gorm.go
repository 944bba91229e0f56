package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/studioink/anamnese-api/internal/domain/anamnese"
	"github.com/studioink/anamnese-api/internal/httperr"
	"github.com/studioink/anamnese-api/internal/models"
)

type AnamneseGormRepository struct {
	db *gorm.DB
}

func NewAnamneseGormRepository(db *gorm.DB) *AnamneseGormRepository {
	return &AnamneseGormRepository{db: db}
}

// --------------------------------------------------
// Profissional
// --------------------------------------------------

func (r *AnamneseGormRepository) GetProfissionalByID(
	ctx context.Context,
	id uint,
) (*models.Profissional, error) {

	var prof models.Profissional
	if err := r.db.WithContext(ctx).First(&prof, id).Error; err != nil {
		return nil, err
	}
	return &prof, nil
}

// --------------------------------------------------
// Ficha (criação / duplicidade)
// --------------------------------------------------

func (r *AnamneseGormRepository) AssertNoDuplicate(
	ctx context.Context,
	cpfDigits string,
	profissionalID *uint,
) error {

	q := r.db.WithContext(ctx).
		Model(&models.FichaAnamnese{}).
		Where("cpf = ?", cpfDigits)

	if profissionalID != nil {
		q = q.Where("id_profissional = ?", *profissionalID)
	} else {
		q = q.Where("id_profissional IS NULL")
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness(httperr.CodeDuplicateCPF)
	}

	return nil
}

func (r *AnamneseGormRepository) CreateFicha(
	ctx context.Context,
	ficha *models.FichaAnamnese,
) error {

	if err := r.db.WithContext(ctx).Create(ficha).Error; err != nil {
		// Duas submissões concorrentes podem passar pela checagem de
		// duplicidade; o índice único parcial decide e a violação vira
		// a mesma rejeição de duplicata.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return httperr.ErrBusiness(httperr.CodeDuplicateCPF)
		}
		return err
	}

	return nil
}

// --------------------------------------------------
// Ficha (consulta)
// --------------------------------------------------

func (r *AnamneseGormRepository) GetFichaByCPF(
	ctx context.Context,
	cpfDigits string,
) (*models.FichaAnamnese, error) {

	var ficha models.FichaAnamnese
	if err := r.db.WithContext(ctx).
		Where("cpf = ?", cpfDigits).
		First(&ficha).Error; err != nil {
		return nil, err
	}
	return &ficha, nil
}

func (r *AnamneseGormRepository) GetFichaByID(
	ctx context.Context,
	id uint,
) (*models.FichaAnamnese, error) {

	var ficha models.FichaAnamnese
	if err := r.db.WithContext(ctx).First(&ficha, id).Error; err != nil {
		return nil, err
	}
	return &ficha, nil
}

func (r *AnamneseGormRepository) ListFichas(
	ctx context.Context,
	profissionalID *uint,
	offset int,
	limit int,
) ([]models.FichaAnamnese, int64, error) {

	// Filtro defensivo contra linhas legadas malformadas: só linhas com
	// nome e cpf não vazios após trim contam para a listagem.
	q := r.db.WithContext(ctx).
		Model(&models.FichaAnamnese{}).
		Where("TRIM(nome) <> ''").
		Where("TRIM(cpf) <> ''")

	if profissionalID != nil {
		q = q.Where("id_profissional = ?", *profissionalID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var fichas []models.FichaAnamnese
	if err := q.
		Order("LOWER(nome) ASC").
		Limit(limit).
		Offset(offset).
		Find(&fichas).Error; err != nil {
		return nil, 0, err
	}

	return fichas, total, nil
}

func (r *AnamneseGormRepository) SearchFichas(
	ctx context.Context,
	params domain.SearchParams,
) ([]models.FichaAnamnese, error) {

	q := r.db.WithContext(ctx).Model(&models.FichaAnamnese{})

	like := "%" + params.Term + "%"
	if params.ByCPF {
		q = q.Where("cpf LIKE ?", like)
	} else {
		q = q.Where("LOWER(nome) LIKE ?", like)
	}

	var fichas []models.FichaAnamnese
	if err := q.
		Order("LOWER(nome) ASC").
		Limit(params.Limit).
		Find(&fichas).Error; err != nil {
		return nil, err
	}

	return fichas, nil
}

// Compile-time check
var _ domain.Repository = (*AnamneseGormRepository)(nil)
