package fleet_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Logistica-api/internal/application/fleet"
	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	domainfleet "github.com/jhoicas/Logistica-api/internal/domain/fleet"
	"github.com/jhoicas/Logistica-api/internal/infrastructure/memory"
)

func i64(v int64) *int64 { return &v }

func newStore() *memory.Store {
	store := memory.New()
	store.AddPlan(entity.MaintenancePlan{ServiceType: "Troca de Óleo", IntervalKm: 10000})
	store.AddPlan(entity.MaintenancePlan{ServiceType: "Filtro de Ar", IntervalKm: 20000})
	return store
}

func TestComputeAlerts_UmbralesPorUtilizacion(t *testing.T) {
	store := newStore()
	base := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	// 1: 85% próximo; 2: 105% vencido; 3: 79% sin alerta
	store.AddVehicle(entity.Vehicle{ID: 1, Plate: "AAA-0001", CurrentOdometer: 48500, Active: true})
	store.AddVehicle(entity.Vehicle{ID: 2, Plate: "AAA-0002", CurrentOdometer: 50500, Active: true})
	store.AddVehicle(entity.Vehicle{ID: 3, Plate: "AAA-0003", CurrentOdometer: 47900, Active: true})
	for _, id := range []int64{1, 2, 3} {
		store.AddMaintenanceRecord(entity.MaintenanceRecord{
			VehicleID: id, ServiceType: "Troca de Óleo", OdometerAtService: i64(40000), ServiceDate: base,
		})
	}

	uc := fleet.NewMaintenanceAlertUseCase(store.Vehicles(), store.Maintenance())
	alerts, err := uc.ComputeAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 2)

	overdue := alerts[0]
	assert.Equal(t, int64(2), overdue.VehicleID, "los más urgentes primero")
	assert.Equal(t, domainfleet.AlertStatusOverdue, overdue.Status)
	assert.Equal(t, int64(-500), overdue.RemainingKm)

	upcoming := alerts[1]
	assert.Equal(t, int64(1), upcoming.VehicleID)
	assert.Equal(t, "AAA-0001", upcoming.Plate)
	assert.Equal(t, domainfleet.AlertStatusUpcoming, upcoming.Status)
	assert.Equal(t, int64(8500), upcoming.KmSinceService)
	assert.Equal(t, int64(50000), upcoming.NextDueKm)
	assert.Equal(t, int64(1500), upcoming.RemainingKm)
	assert.Equal(t, "0.85", upcoming.Utilization.String())
}

func TestComputeAlerts_UsaUltimoServicioActivoConOdometro(t *testing.T) {
	store := newStore()
	store.AddVehicle(entity.Vehicle{ID: 1, Plate: "BBB-0001", CurrentOdometer: 59000, Active: true})
	d := func(m time.Month) time.Time { return time.Date(2026, m, 1, 0, 0, 0, 0, time.UTC) }

	store.AddMaintenanceRecord(entity.MaintenanceRecord{VehicleID: 1, ServiceType: "Troca de Óleo", OdometerAtService: i64(40000), ServiceDate: d(1)})
	store.AddMaintenanceRecord(entity.MaintenanceRecord{VehicleID: 1, ServiceType: "Troca de Óleo", OdometerAtService: i64(50000), ServiceDate: d(3)})
	// anulado y correctivo sin odómetro no cuentan
	store.AddMaintenanceRecord(entity.MaintenanceRecord{VehicleID: 1, ServiceType: "Troca de Óleo", OdometerAtService: i64(58000), ServiceDate: d(5), Status: entity.MaintenanceStatusVoided})
	store.AddMaintenanceRecord(entity.MaintenanceRecord{VehicleID: 1, ServiceType: "Troca de Óleo", ServiceDate: d(6)})

	uc := fleet.NewMaintenanceAlertUseCase(store.Vehicles(), store.Maintenance())
	alerts, err := uc.ComputeAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, int64(50000), alerts[0].LastServiceOdometer)
	assert.Equal(t, "0.9", alerts[0].Utilization.String())
}

func TestComputeAlerts_SinServicioPrevioNoAlerta(t *testing.T) {
	store := newStore()
	store.AddVehicle(entity.Vehicle{ID: 1, Plate: "CCC-0001", CurrentOdometer: 250000, Active: true})

	uc := fleet.NewMaintenanceAlertUseCase(store.Vehicles(), store.Maintenance())
	alerts, err := uc.ComputeAlerts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestComputeAlerts_VehiculoInactivoSeIgnora(t *testing.T) {
	store := newStore()
	store.AddVehicle(entity.Vehicle{ID: 1, Plate: "DDD-0001", CurrentOdometer: 90000, Active: false})
	store.AddMaintenanceRecord(entity.MaintenanceRecord{VehicleID: 1, ServiceType: "Filtro de Ar", OdometerAtService: i64(10000), ServiceDate: time.Now()})

	uc := fleet.NewMaintenanceAlertUseCase(store.Vehicles(), store.Maintenance())
	alerts, err := uc.ComputeAlerts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestComputeAlerts_TipoDeServicioNormalizado(t *testing.T) {
	store := memory.New()
	store.AddPlan(entity.MaintenancePlan{ServiceType: "Troca de Óleo", IntervalKm: 10000})
	store.AddVehicle(entity.Vehicle{ID: 1, Plate: "EEE-0001", CurrentOdometer: 20000, Active: true})
	store.AddMaintenanceRecord(entity.MaintenanceRecord{
		VehicleID: 1, ServiceType: "Troca de Óleo ", OdometerAtService: i64(10000), ServiceDate: time.Now(),
	})

	uc := fleet.NewMaintenanceAlertUseCase(store.Vehicles(), store.Maintenance())
	alerts, err := uc.ComputeAlerts(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, domainfleet.AlertStatusOverdue, alerts[0].Status)
	assert.Equal(t, "Troca de Óleo", alerts[0].ServiceType)
}

func TestComputeAlerts_GrafiasMixtasUsanElServicioMasReciente(t *testing.T) {
	store := memory.New()
	store.AddPlan(entity.MaintenancePlan{ServiceType: "Troca de \u00d3leo", IntervalKm: 10000})
	store.AddVehicle(entity.Vehicle{ID: 1, Plate: "FFF-0001", CurrentOdometer: 49000, Active: true})
	// antiguo con Ó compuesta; reciente con O + acento combinante
	store.AddMaintenanceRecord(entity.MaintenanceRecord{
		VehicleID: 1, ServiceType: "Troca de \u00d3leo", OdometerAtService: i64(40000),
		ServiceDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	store.AddMaintenanceRecord(entity.MaintenanceRecord{
		VehicleID: 1, ServiceType: "Troca de O\u0301leo", OdometerAtService: i64(50000),
		ServiceDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	})

	uc := fleet.NewMaintenanceAlertUseCase(store.Vehicles(), store.Maintenance())
	alerts, err := uc.ComputeAlerts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alerts, "el servicio a 50000 km es el vigente: 49000 km no alerta")

	// el orden inverso de carga no cambia el resultado
	store.AddVehicle(entity.Vehicle{ID: 2, Plate: "FFF-0002", CurrentOdometer: 49000, Active: true})
	store.AddMaintenanceRecord(entity.MaintenanceRecord{
		VehicleID: 2, ServiceType: "Troca de O\u0301leo", OdometerAtService: i64(50000),
		ServiceDate: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	store.AddMaintenanceRecord(entity.MaintenanceRecord{
		VehicleID: 2, ServiceType: "Troca de \u00d3leo", OdometerAtService: i64(40000),
		ServiceDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	alerts, err = uc.ComputeAlerts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, alerts)
}
