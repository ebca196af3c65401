package analytics

import (
	"context"

	"github.com/tu-usuario/distribuidora-pdv/internal/application/dto"
	"github.com/tu-usuario/distribuidora-pdv/internal/application/usecase"
	"github.com/tu-usuario/distribuidora-pdv/internal/domain/repository"
)

// Umbrales del dashboard. Fijos: la pantalla principal no los parametriza.
const (
	criticalStockThreshold = 10
	topProductsLimit       = 5
	topProductsWindowDays  = 30
)

// DashboardUseCase arma el resumen de la pantalla principal con varias
// consultas de solo lectura. Se ejecutan en secuencia sobre la misma
// conexión; el resultado es un snapshot informativo, no transaccional.
type DashboardUseCase struct {
	repo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Stats devuelve ventas de hoy y del mes, productos en stock crítico, los
// más vendidos del último mes y cuántos clientes compraron este mes.
func (uc *DashboardUseCase) Stats(ctx context.Context) (*dto.DashboardStatsDTO, error) {
	salesToday, err := uc.repo.SalesToday(ctx)
	if err != nil {
		return nil, err
	}
	salesMonth, err := uc.repo.SalesMonth(ctx)
	if err != nil {
		return nil, err
	}
	critical, err := uc.repo.CriticalStock(ctx, criticalStockThreshold)
	if err != nil {
		return nil, err
	}
	top, err := uc.repo.TopProducts(ctx, topProductsLimit, topProductsWindowDays)
	if err != nil {
		return nil, err
	}
	active, err := uc.repo.ActiveCustomers(ctx)
	if err != nil {
		return nil, err
	}

	criticalDTO := make([]dto.ProductResponse, 0, len(critical))
	for _, p := range critical {
		criticalDTO = append(criticalDTO, usecase.ToProductResponse(p))
	}
	topDTO := make([]dto.TopProductDTO, 0, len(top))
	for _, t := range top {
		topDTO = append(topDTO, dto.TopProductDTO{
			ProductID:     t.ProductID,
			ProductName:   t.ProductName,
			TotalQuantity: t.TotalQuantity,
			TotalRevenue:  t.TotalRevenue,
		})
	}

	return &dto.DashboardStatsDTO{
		SalesToday:      salesToday,
		SalesMonth:      salesMonth,
		CriticalStock:   criticalDTO,
		TopProducts:     topDTO,
		ActiveCustomers: active,
	}, nil
}
