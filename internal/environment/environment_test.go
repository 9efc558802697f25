package environment_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"notehub/internal/database"
	"notehub/internal/environment"
	"notehub/internal/logging"
)

func TestEnvironment_Null(t *testing.T) {
	env := environment.Null()

	if env == nil {
		t.Fatalf("Null environment returned nil")
	}

	switch env.Repository.(type) {
	case *database.NullRepository:
	default:
		t.Errorf("want repository to be NullRepository, got %v", env.Repository)
	}

	switch env.Logger.(type) {
	case *logging.NullLogger:
	default:
		t.Errorf("want logger to be NullLogger, got %v", env.Logger)
	}
}

func TestEnvironment(t *testing.T) {
	db, err := setupMockedDb(t)
	if err != nil {
		t.Error(err)
		return
	}

	var core zapcore.Core
	logger := zap.New(core)

	env := environment.Environment(
		&database.GormRepository{DB: db},
		&logging.DefaultLogger{Logger: logger.Sugar()},
	)

	switch env.Repository.(type) {
	case *database.GormRepository:
	default:
		t.Errorf("want repository to be GormRepository, got %v", env.Repository)
	}

	switch env.Logger.(type) {
	case *logging.DefaultLogger:
	default:
		t.Errorf("want logger to be DefaultLogger, got %v", env.Logger)
	}
}

func setupMockedDb(t *testing.T) (*gorm.DB, error) {
	mockDb, _, _ := sqlmock.New()
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Error initializing mocked database: %v", err)
		return nil, err
	}

	return db, nil
}
