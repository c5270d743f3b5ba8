package dto

import "github.com/shopspring/decimal"

// MaintenanceAlertDTO alerta de mantenimiento por km (no se persiste; se recalcula en cada consulta).
type MaintenanceAlertDTO struct {
	VehicleID           int64           `json:"vehicle_id"`
	Plate               string          `json:"plate"`
	ServiceType         string          `json:"service_type"`
	IntervalKm          int64           `json:"interval_km"`
	LastServiceOdometer int64           `json:"last_service_odometer"`
	CurrentOdometer     int64           `json:"current_odometer"`
	KmSinceService      int64           `json:"km_since_service"`
	Utilization         decimal.Decimal `json:"utilization"`
	NextDueKm           int64           `json:"next_due_km"`
	RemainingKm         int64           `json:"remaining_km"`
	Status              string          `json:"status"` // Upcoming | Overdue
}
