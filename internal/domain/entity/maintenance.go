package entity

import "time"

// Estados de un registro de mantenimiento.
const (
	MaintenanceStatusActive = "ACTIVE"
	MaintenanceStatusVoided = "VOIDED"
)

// MaintenancePlan intervalo en km tras el cual un tipo de servicio vence. Configuración estática.
type MaintenancePlan struct {
	ServiceType string // ej. "Troca de Óleo"
	IntervalKm  int64
}

// MaintenanceRecord servicio realizado a un vehículo (lo escribe el CRUD de mantenimiento).
// OdometerAtService solo viene en registros preventivos.
type MaintenanceRecord struct {
	ID                int64
	VehicleID         int64
	ServiceType       string
	OdometerAtService *int64
	ServiceDate       time.Time
	Status            string
}

// ServiceOdometer último odómetro de servicio activo por vehículo y tipo de servicio (texto tal como se grabó).
// ServiceDate y RecordID permiten elegir el más reciente entre grafías distintas del mismo tipo.
type ServiceOdometer struct {
	VehicleID         int64
	ServiceType       string
	OdometerAtService int64
	ServiceDate       time.Time
	RecordID          int64
}

// NewerThan orden de recencia de registros: fecha de servicio y, en empate, mayor ID.
func (s ServiceOdometer) NewerThan(o ServiceOdometer) bool {
	if !s.ServiceDate.Equal(o.ServiceDate) {
		return s.ServiceDate.After(o.ServiceDate)
	}
	return s.RecordID > o.RecordID
}
