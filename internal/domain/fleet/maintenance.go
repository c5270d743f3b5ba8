package fleet

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/unicode/norm"
)

// Estados de alerta de mantenimiento.
const (
	AlertStatusUpcoming = "Upcoming"
	AlertStatusOverdue  = "Overdue"
)

// Umbrales de utilización, iguales para todos los tipos de servicio.
var (
	UpcomingThreshold = decimal.NewFromFloat(0.8)
	OverdueThreshold  = decimal.NewFromInt(1)
)

// Evaluation resultado de cruzar el odómetro actual con el último servicio y el intervalo del plan.
type Evaluation struct {
	KmSinceService int64
	Utilization    decimal.Decimal
	NextDueKm      int64
	RemainingKm    int64
	Status         string
}

// Evaluate calcula la utilización del intervalo. ok=false si está por debajo del umbral de alerta
// o si el intervalo no es positivo.
func Evaluate(currentOdometer, odometerAtService, intervalKm int64) (ev Evaluation, ok bool) {
	if intervalKm <= 0 {
		return Evaluation{}, false
	}
	kmSince := currentOdometer - odometerAtService
	utilization := decimal.NewFromInt(kmSince).Div(decimal.NewFromInt(intervalKm))
	if utilization.LessThan(UpcomingThreshold) {
		return Evaluation{}, false
	}
	next := odometerAtService + intervalKm
	ev = Evaluation{
		KmSinceService: kmSince,
		Utilization:    utilization.Round(4),
		NextDueKm:      next,
		RemainingKm:    next - currentOdometer,
		Status:         AlertStatusUpcoming,
	}
	if utilization.GreaterThanOrEqual(OverdueThreshold) {
		ev.Status = AlertStatusOverdue
	}
	return ev, true
}

// ServiceKey normaliza el tipo de servicio para cruzar planes y registros (NFC, sin espacios extremos).
// "Óleo" compuesto y descompuesto producen la misma clave.
func ServiceKey(serviceType string) string {
	return norm.NFC.String(strings.TrimSpace(serviceType))
}
