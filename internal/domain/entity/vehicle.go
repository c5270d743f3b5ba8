package entity

import "time"

// Vehicle subconjunto del registro de vehículos que usa el motor de combustible.
type Vehicle struct {
	ID              int64
	Plate           string
	BranchID        int64
	CurrentOdometer int64 // km; solo lo mueven consumos (avance) y estornos (recálculo)
	Active          bool
	UpdatedAt       time.Time
}

// AdvanceOdometer registra la lectura informada en un abastecimiento.
func (v *Vehicle) AdvanceOdometer(reading int64) {
	v.CurrentOdometer = reading
}

// RollbackOdometer fija el odómetro a la última lectura vigente del libro (0 si no hay historial).
func (v *Vehicle) RollbackOdometer(reading *OdometerReading) {
	if reading == nil {
		v.CurrentOdometer = 0
		return
	}
	v.CurrentOdometer = reading.Odometer
}
