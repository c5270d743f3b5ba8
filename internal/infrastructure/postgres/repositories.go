package postgres

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories agrupa los adaptadores de solo lectura sobre el pool (consultas y alertas).
type Repositories struct {
	StockItems  *StockItemRepo
	Movements   *MovementRepo
	Vehicles    *VehicleRepo
	Maintenance *MaintenanceRepo
}

// NewRepositories construye los repositorios atados al pool.
func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		StockItems:  NewStockItemRepository(pool),
		Movements:   NewMovementRepository(pool),
		Vehicles:    NewVehicleRepository(pool),
		Maintenance: NewMaintenanceRepository(pool),
	}
}
