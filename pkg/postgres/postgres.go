package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crime_analytics/internal/config"
)

const applicationName = "crime-analytics"

// NewPostgresDB создает пул соединений PostgreSQL только для чтения
func NewPostgresDB(ctx context.Context, appCfg *config.Config) (*pgxpool.Pool, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}

	// Аналитика только читает журнал, запись запрещаем на уровне сессии
	cfgPool.ConnConfig.RuntimeParams["default_transaction_read_only"] = "on"
	cfgPool.ConnConfig.RuntimeParams["application_name"] = applicationName
	if appCfg.LedgerTimezone != "" {
		cfgPool.ConnConfig.RuntimeParams["timezone"] = appCfg.LedgerTimezone
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул соединений: %w", err)
	}

	// Проверяем соединение с базой данных
	err = dbpool.Ping(ctx)
	if err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("не удалось выполнить ping к postgres: %w", err)
	}

	return dbpool, nil
}
