package database

import (
	"context"

	"github.com/VorteXproCR/Expense-Tracker/internal/config"
	"github.com/VorteXproCR/Expense-Tracker/internal/model"
	"github.com/VorteXproCR/Expense-Tracker/pkg/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	return mysql.NewConnection(context.Background(), cfg.Database, logger)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Expense{}, &model.EventLog{})
}
