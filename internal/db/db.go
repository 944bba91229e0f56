package db

import (
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/studioink/anamnese-api/internal/config"
	"github.com/studioink/anamnese-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Profissional{},
		&models.FichaAnamnese{},
		&models.AuditLog{},
	); err != nil {
		logrus.Fatalf("failed to migrate: %v", err)
	}

	// Unicidade de CPF por escopo de profissional garantida no banco.
	// Dois índices parciais: fichas atribuídas são únicas por
	// (cpf, id_profissional); fichas sem profissional são únicas por cpf
	// entre si. Fecha a corrida check-then-act do fluxo de submissão.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uq_ficha_cpf_profissional
        ON ficha_anamnese (cpf, id_profissional)
        WHERE id_profissional IS NOT NULL
    `)
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS uq_ficha_cpf_sem_profissional
        ON ficha_anamnese (cpf)
        WHERE id_profissional IS NULL
    `)

	return db
}
