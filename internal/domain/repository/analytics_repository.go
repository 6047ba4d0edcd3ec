package repository

import "context"

// AnalyticsRepository consultas de solo lectura para el tablero.
// Cada conteo es independiente para poder pedirlos en paralelo.
type AnalyticsRepository interface {
	CountSales(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountUsers(ctx context.Context) (int64, error)
	CountProviders(ctx context.Context) (int64, error)
}
