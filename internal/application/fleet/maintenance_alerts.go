package fleet

import (
	"context"
	"sort"

	"github.com/jhoicas/Logistica-api/internal/application/dto"
	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	domainfleet "github.com/jhoicas/Logistica-api/internal/domain/fleet"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
)

// MaintenanceAlertUseCase cruza el odómetro de cada vehículo activo con los planes de mantenimiento
// y el último servicio registrado. Solo lectura; se recalcula completo en cada llamada.
type MaintenanceAlertUseCase struct {
	vehicleRepo     repository.VehicleRepository
	maintenanceRepo repository.MaintenanceRepository
}

// NewMaintenanceAlertUseCase construye el caso de uso.
func NewMaintenanceAlertUseCase(
	vehicleRepo repository.VehicleRepository,
	maintenanceRepo repository.MaintenanceRepository,
) *MaintenanceAlertUseCase {
	return &MaintenanceAlertUseCase{
		vehicleRepo:     vehicleRepo,
		maintenanceRepo: maintenanceRepo,
	}
}

type serviceKey struct {
	vehicleID   int64
	serviceType string
}

// ComputeAlerts devuelve las alertas con utilización >= 80% del intervalo (Vencido desde 100%).
// Un vehículo sin servicio previo con odómetro para el tipo no genera alerta (modelo solo por km).
func (uc *MaintenanceAlertUseCase) ComputeAlerts(ctx context.Context) ([]dto.MaintenanceAlertDTO, error) {
	vehicles, err := uc.vehicleRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	plans, err := uc.maintenanceRepo.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	if len(vehicles) == 0 || len(plans) == 0 {
		return []dto.MaintenanceAlertDTO{}, nil
	}

	services, err := uc.maintenanceRepo.LatestServiceOdometers(ctx)
	if err != nil {
		return nil, err
	}
	lastService := make(map[serviceKey]entity.ServiceOdometer, len(services))
	// Grafías distintas del mismo tipo llegan en filas separadas: gana el registro más reciente
	for _, s := range services {
		k := serviceKey{s.VehicleID, domainfleet.ServiceKey(s.ServiceType)}
		if cur, ok := lastService[k]; !ok || s.NewerThan(cur) {
			lastService[k] = s
		}
	}

	alerts := make([]dto.MaintenanceAlertDTO, 0)
	for _, v := range vehicles {
		for _, plan := range plans {
			svc, ok := lastService[serviceKey{v.ID, domainfleet.ServiceKey(plan.ServiceType)}]
			if !ok {
				continue
			}
			ev, ok := domainfleet.Evaluate(v.CurrentOdometer, svc.OdometerAtService, plan.IntervalKm)
			if !ok {
				continue
			}
			alerts = append(alerts, dto.MaintenanceAlertDTO{
				VehicleID:           v.ID,
				Plate:               v.Plate,
				ServiceType:         plan.ServiceType,
				IntervalKm:          plan.IntervalKm,
				LastServiceOdometer: svc.OdometerAtService,
				CurrentOdometer:     v.CurrentOdometer,
				KmSinceService:      ev.KmSinceService,
				Utilization:         ev.Utilization,
				NextDueKm:           ev.NextDueKm,
				RemainingKm:         ev.RemainingKm,
				Status:              ev.Status,
			})
		}
	}

	// Más urgentes primero
	sort.SliceStable(alerts, func(i, j int) bool {
		a, b := alerts[i], alerts[j]
		if !a.Utilization.Equal(b.Utilization) {
			return a.Utilization.GreaterThan(b.Utilization)
		}
		if a.VehicleID != b.VehicleID {
			return a.VehicleID < b.VehicleID
		}
		return a.ServiceType < b.ServiceType
	})
	return alerts, nil
}
