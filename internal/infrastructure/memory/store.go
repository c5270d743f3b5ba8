// Package memory implementa los puertos del libro de combustible en memoria (desarrollo y tests).
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/Logistica-api/internal/domain/entity"
	"github.com/jhoicas/Logistica-api/internal/domain/repository"
)

// Store guarda ítems, movimientos, vehículos, mantenimiento y rateios en mapas.
// Run serializa las transacciones con un único mutex y restaura un snapshot si fn falla.
type Store struct {
	mu    sync.Mutex
	state state
}

type state struct {
	items        map[int64]entity.StockItem
	movements    map[int64]entity.Movement
	reversals    []entity.MovementReversal
	vehicles     map[int64]entity.Vehicle
	plans        []entity.MaintenancePlan
	records      []entity.MaintenanceRecord
	costShares   []entity.CostShare
	nextMovement int64
	nextShare    int64
	nextRecord   int64
}

// New crea un store vacío.
func New() *Store {
	return &Store{state: state{
		items:     make(map[int64]entity.StockItem),
		movements: make(map[int64]entity.Movement),
		vehicles:  make(map[int64]entity.Vehicle),
	}}
}

func (st state) clone() state {
	c := st
	c.items = make(map[int64]entity.StockItem, len(st.items))
	for k, v := range st.items {
		c.items[k] = v
	}
	c.movements = make(map[int64]entity.Movement, len(st.movements))
	for k, v := range st.movements {
		c.movements[k] = v
	}
	c.vehicles = make(map[int64]entity.Vehicle, len(st.vehicles))
	for k, v := range st.vehicles {
		c.vehicles[k] = v
	}
	c.reversals = append([]entity.MovementReversal(nil), st.reversals...)
	c.plans = append([]entity.MaintenancePlan(nil), st.plans...)
	c.records = append([]entity.MaintenanceRecord(nil), st.records...)
	c.costShares = append([]entity.CostShare(nil), st.costShares...)
	return c
}

// Run ejecuta fn con repositorios atados a la transacción. Si fn devuelve error el estado vuelve al snapshot.
func (s *Store) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	stockRepo repository.StockItemRepository,
	vehicleRepo repository.VehicleRepository,
	costRepo repository.CostShareRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	snapshot := s.state.clone()
	if err := fn(
		&movementRepo{s: s, inTx: true},
		&stockItemRepo{s: s, inTx: true},
		&vehicleRepo{s: s, inTx: true},
		&costShareRepo{s: s, inTx: true},
	); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

// Repositorios fuera de transacción (lecturas de consultas y alertas).

func (s *Store) StockItems() repository.StockItemRepository { return &stockItemRepo{s: s} }
func (s *Store) Movements() repository.MovementRepository { return &movementRepo{s: s} }
func (s *Store) Vehicles() repository.VehicleRepository { return &vehicleRepo{s: s} }
func (s *Store) Maintenance() repository.MaintenanceRepository { return &maintenanceRepo{s: s} }

// locked ejecuta fn con el mutex tomado, salvo que el llamador ya esté dentro de Run.
func (s *Store) locked(inTx bool, fn func()) {
	if !inTx {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	fn()
}

// ── Carga inicial ─────────────────────────────────────────────────────────────

// AddStockItem registra un ítem con su saldo inicial.
func (s *Store) AddStockItem(item entity.StockItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.items[item.ID] = item
}

// AddVehicle registra un vehículo.
func (s *Store) AddVehicle(v entity.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.vehicles[v.ID] = v
}

// AddPlan registra un plan de mantenimiento.
func (s *Store) AddPlan(p entity.MaintenancePlan) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.plans = append(s.state.plans, p)
}

// AddMaintenanceRecord registra un servicio realizado. Asigna ID si viene en cero.
func (s *Store) AddMaintenanceRecord(r entity.MaintenanceRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if r.ID == 0 {
		s.state.nextRecord++
		r.ID = s.state.nextRecord
	}
	if r.Status == "" {
		r.Status = entity.MaintenanceStatusActive
	}
	s.state.records = append(s.state.records, r)
}

// CostShares devuelve una copia de los rateios publicados.
func (s *Store) CostShares() []entity.CostShare {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.CostShare(nil), s.state.costShares...)
}

// Reversals devuelve una copia de la auditoría de estornos.
func (s *Store) Reversals() []entity.MovementReversal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.MovementReversal(nil), s.state.reversals...)
}

// ── Stock ─────────────────────────────────────────────────────────────────────

type stockItemRepo struct {
	s    *Store
	inTx bool
}

func (r *stockItemRepo) GetByID(_ context.Context, id int64) (*entity.StockItem, error) {
	var out *entity.StockItem
	r.s.locked(r.inTx, func() {
		if it, ok := r.s.state.items[id]; ok {
			out = &it
		}
	})
	return out, nil
}

// GetForUpdate: el bloqueo ya lo da el mutex de Run.
func (r *stockItemRepo) GetForUpdate(ctx context.Context, id int64) (*entity.StockItem, error) {
	return r.GetByID(ctx, id)
}

func (r *stockItemRepo) Save(_ context.Context, item *entity.StockItem) error {
	r.s.locked(r.inTx, func() {
		r.s.state.items[item.ID] = *item
	})
	return nil
}

// ── Movimientos ───────────────────────────────────────────────────────────────

type movementRepo struct {
	s    *Store
	inTx bool
}

func (r *movementRepo) Create(_ context.Context, m *entity.Movement) error {
	r.s.locked(r.inTx, func() {
		r.s.state.nextMovement++
		m.ID = r.s.state.nextMovement
		r.s.state.movements[m.ID] = *m
	})
	return nil
}

func (r *movementRepo) GetByID(_ context.Context, id int64) (*entity.Movement, error) {
	var out *entity.Movement
	r.s.locked(r.inTx, func() {
		if m, ok := r.s.state.movements[id]; ok {
			out = &m
		}
	})
	return out, nil
}

func (r *movementRepo) GetForUpdate(ctx context.Context, id int64) (*entity.Movement, error) {
	return r.GetByID(ctx, id)
}

func (r *movementRepo) MarkReversed(_ context.Context, rev entity.MovementReversal) error {
	r.s.locked(r.inTx, func() {
		m := r.s.state.movements[rev.MovementID]
		m.Status = entity.MovementStatusReversed
		r.s.state.movements[rev.MovementID] = m
		r.s.state.reversals = append(r.s.state.reversals, rev)
	})
	return nil
}

func (r *movementRepo) MostRecentActiveOdometerReading(_ context.Context, vehicleID, excludingMovementID int64) (*entity.OdometerReading, error) {
	var out *entity.OdometerReading
	r.s.locked(r.inTx, func() {
		for _, m := range r.s.sortedLocked() {
			if m.ID == excludingMovementID || !m.IsActive() || !m.IsVehicleConsumption() || m.Odometer == nil {
				continue
			}
			if *m.VehicleID != vehicleID {
				continue
			}
			out = &entity.OdometerReading{MovementID: m.ID, Odometer: *m.Odometer, Timestamp: m.Timestamp}
			return
		}
	})
	return out, nil
}

func (r *movementRepo) LatestTimestamp(_ context.Context, itemID int64, from, to time.Time) (*time.Time, error) {
	var out *time.Time
	r.s.locked(r.inTx, func() {
		for _, m := range r.s.state.movements {
			if m.ItemID != itemID || m.Timestamp.Before(from) || !m.Timestamp.Before(to) {
				continue
			}
			if out == nil || m.Timestamp.After(*out) {
				ts := m.Timestamp
				out = &ts
			}
		}
	})
	return out, nil
}

func (r *movementRepo) List(_ context.Context, f repository.MovementFilter) ([]*entity.Movement, error) {
	out := make([]*entity.Movement, 0)
	r.s.locked(r.inTx, func() {
		skipped := 0
		for _, m := range r.s.sortedLocked() {
			if !matches(m, f) {
				continue
			}
			if skipped < f.Offset {
				skipped++
				continue
			}
			if f.Limit > 0 && len(out) >= f.Limit {
				return
			}
			out = append(out, m)
		}
	})
	return out, nil
}

func matches(m *entity.Movement, f repository.MovementFilter) bool {
	if f.ItemID != nil && m.ItemID != *f.ItemID {
		return false
	}
	if f.VehicleID != nil && (m.VehicleID == nil || *m.VehicleID != *f.VehicleID) {
		return false
	}
	if f.Kind != "" && m.Kind != f.Kind {
		return false
	}
	if f.Status != "" && m.Status != f.Status {
		return false
	}
	if f.From != nil && m.Timestamp.Before(*f.From) {
		return false
	}
	if f.To != nil && !m.Timestamp.Before(*f.To) {
		return false
	}
	return true
}

// sortedLocked devuelve copias de los movimientos ordenadas por timestamp DESC, id DESC.
func (s *Store) sortedLocked() []*entity.Movement {
	list := make([]*entity.Movement, 0, len(s.state.movements))
	for _, m := range s.state.movements {
		m := m
		list = append(list, &m)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].Timestamp.Equal(list[j].Timestamp) {
			return list[i].Timestamp.After(list[j].Timestamp)
		}
		return list[i].ID > list[j].ID
	})
	return list
}

// ── Vehículos ─────────────────────────────────────────────────────────────────

type vehicleRepo struct {
	s    *Store
	inTx bool
}

func (r *vehicleRepo) GetByID(_ context.Context, id int64) (*entity.Vehicle, error) {
	var out *entity.Vehicle
	r.s.locked(r.inTx, func() {
		if v, ok := r.s.state.vehicles[id]; ok {
			out = &v
		}
	})
	return out, nil
}

func (r *vehicleRepo) UpdateOdometer(_ context.Context, vehicleID, odometer int64) error {
	r.s.locked(r.inTx, func() {
		v, ok := r.s.state.vehicles[vehicleID]
		if !ok {
			return
		}
		v.CurrentOdometer = odometer
		v.UpdatedAt = time.Now()
		r.s.state.vehicles[vehicleID] = v
	})
	return nil
}

func (r *vehicleRepo) ListActive(_ context.Context) ([]*entity.Vehicle, error) {
	out := make([]*entity.Vehicle, 0)
	r.s.locked(r.inTx, func() {
		for _, v := range r.s.state.vehicles {
			if !v.Active {
				continue
			}
			v := v
			out = append(out, &v)
		}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ── Mantenimiento ─────────────────────────────────────────────────────────────

type maintenanceRepo struct {
	s *Store
}

func (r *maintenanceRepo) ListPlans(_ context.Context) ([]entity.MaintenancePlan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]entity.MaintenancePlan(nil), r.s.state.plans...), nil
}

// LatestServiceOdometers: por (vehículo, tipo) el registro activo con odómetro de fecha más reciente.
// Empate de fecha: gana el de mayor ID.
func (r *maintenanceRepo) LatestServiceOdometers(_ context.Context) ([]entity.ServiceOdometer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	type key struct {
		vehicleID   int64
		serviceType string
	}
	latest := make(map[key]entity.MaintenanceRecord)
	for _, rec := range r.s.state.records {
		if rec.Status != entity.MaintenanceStatusActive || rec.OdometerAtService == nil {
			continue
		}
		k := key{rec.VehicleID, rec.ServiceType}
		cur, ok := latest[k]
		if !ok || rec.ServiceDate.After(cur.ServiceDate) ||
			(rec.ServiceDate.Equal(cur.ServiceDate) && rec.ID > cur.ID) {
			latest[k] = rec
		}
	}

	out := make([]entity.ServiceOdometer, 0, len(latest))
	for _, rec := range latest {
		out = append(out, entity.ServiceOdometer{
			VehicleID:         rec.VehicleID,
			ServiceType:       rec.ServiceType,
			OdometerAtService: *rec.OdometerAtService,
			ServiceDate:       rec.ServiceDate,
			RecordID:          rec.ID,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].VehicleID != out[j].VehicleID {
			return out[i].VehicleID < out[j].VehicleID
		}
		return out[i].ServiceType < out[j].ServiceType
	})
	return out, nil
}

// ── Rateio ────────────────────────────────────────────────────────────────────

type costShareRepo struct {
	s    *Store
	inTx bool
}

func (r *costShareRepo) Post(_ context.Context, share *entity.CostShare) error {
	r.s.locked(r.inTx, func() {
		r.s.state.nextShare++
		share.ID = r.s.state.nextShare
		c := *share
		c.Lines = append([]entity.CostShareLine(nil), share.Lines...)
		r.s.state.costShares = append(r.s.state.costShares, c)
	})
	return nil
}
