package usecase

import (
	"context"

	"github.com/tu-usuario/biblioteca-admin/internal/application/dto"
	"github.com/tu-usuario/biblioteca-admin/internal/infrastructure/rest"
)

// DashboardUseCase métricas agregadas de la pantalla principal.
type DashboardUseCase struct {
	api *rest.Client
}

// NewDashboardUseCase construye el caso de uso del dashboard.
func NewDashboardUseCase(api *rest.Client) *DashboardUseCase {
	return &DashboardUseCase{api: api}
}

// Summary devuelve los contadores agregados del sistema.
func (uc *DashboardUseCase) Summary(ctx context.Context) (*dto.DashboardSummary, error) {
	return decodeOne[dto.DashboardSummary](uc.api.GetAll(ctx, "dashboard", nil))
}
