package services_test

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	appservices "github.com/ghuser/linentrack/services/cartlog/application/services"
	cartlogdomain "github.com/ghuser/linentrack/services/cartlog/domain"
	"github.com/ghuser/linentrack/services/cartlog/domain/models"
	"github.com/ghuser/linentrack/services/cartlog/domain/repositories"
)

// fakeStore is an in-memory stand-in for the Postgres repositories. It
// mirrors the persistence semantics: id generation, linen auto-creation,
// line-item reconciliation, and the linen cascade on delete.
type fakeStore struct {
	nextLogID   int64
	nextItemID  int64
	nextLinenID int64

	logs      map[int64]*models.CartLog
	carts     map[int64]*models.Cart
	locations map[int64]*models.Location
	employees map[int64]*models.EmployeeRef
	linens    map[int64]*models.Linen
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		nextLogID:   1,
		nextItemID:  1,
		nextLinenID: 1,
		logs:        map[int64]*models.CartLog{},
		carts:       map[int64]*models.Cart{},
		locations:   map[int64]*models.Location{},
		employees:   map[int64]*models.EmployeeRef{},
		linens:      map[int64]*models.Linen{},
	}
}

func (s *fakeStore) addCart(id int64, name, cartType string) {
	s.carts[id] = &models.Cart{ID: id, Name: name, Type: cartType}
}

func (s *fakeStore) addLocation(id int64, name string) {
	s.locations[id] = &models.Location{ID: id, Name: name, Type: "Storage"}
}

func (s *fakeStore) addEmployee(id int64, name string) {
	s.employees[id] = &models.EmployeeRef{ID: id, Name: name}
}

func copyLog(l *models.CartLog) *models.CartLog {
	out := *l
	out.LineItems = append([]models.LineItem(nil), l.LineItems...)
	return &out
}

// CartLogRepository

func (s *fakeStore) GetHeader(_ context.Context, id int64) (*models.CartLog, error) {
	log, ok := s.logs[id]
	if !ok {
		return nil, cartlogdomain.ErrCartLogNotFound
	}
	return copyLog(log), nil
}

func (s *fakeStore) Upsert(_ context.Context, log *models.CartLog) (*models.CartLog, error) {
	stored := copyLog(log)
	if stored.ID == 0 {
		stored.ID = s.nextLogID
		s.nextLogID++
	} else {
		existing, ok := s.logs[stored.ID]
		if !ok {
			return nil, cartlogdomain.ErrCartLogNotFound
		}
		// Items in storage but absent from the snapshot survive the update.
		for _, kept := range existing.LineItems {
			found := false
			for i := range stored.LineItems {
				if stored.LineItems[i].ID == kept.ID {
					found = true
					break
				}
			}
			if !found {
				stored.LineItems = append(stored.LineItems, kept)
			}
		}
	}

	for i := range stored.LineItems {
		item := &stored.LineItems[i]
		item.CartLogID = stored.ID
		item.LinenID = s.resolveLinen(item.LinenID, item.LinenName)
		if item.ID == 0 {
			item.ID = s.nextItemID
			s.nextItemID++
		}
	}

	s.logs[stored.ID] = copyLog(stored)
	return stored, nil
}

func (s *fakeStore) resolveLinen(id int64, name string) int64 {
	if existing, ok := s.linens[id]; ok {
		if name != "" {
			existing.Name = name
		}
		return id
	}
	created := &models.Linen{ID: s.nextLinenID, Name: name}
	s.nextLinenID++
	s.linens[created.ID] = created
	return created.ID
}

func (s *fakeStore) Delete(_ context.Context, id int64) error {
	log, ok := s.logs[id]
	if !ok {
		return cartlogdomain.ErrCartLogNotFound
	}
	referenced := map[int64]bool{}
	for _, item := range log.LineItems {
		referenced[item.LinenID] = true
	}
	delete(s.logs, id)
	for linenID := range referenced {
		if !s.linenStillReferenced(linenID) {
			delete(s.linens, linenID)
		}
	}
	return nil
}

func (s *fakeStore) linenStillReferenced(linenID int64) bool {
	for _, log := range s.logs {
		for _, item := range log.LineItems {
			if item.LinenID == linenID {
				return true
			}
		}
	}
	return false
}

func (s *fakeStore) GetView(ctx context.Context, id int64) (*models.CartLogView, error) {
	log, ok := s.logs[id]
	if !ok {
		return nil, cartlogdomain.ErrCartLogNotFound
	}
	return s.buildView(log), nil
}

func (s *fakeStore) buildView(log *models.CartLog) *models.CartLogView {
	view := &models.CartLogView{
		ID:             log.ID,
		ReceiptNumber:  log.ReceiptNumber,
		ReportedWeight: log.ReportedWeight,
		ActualWeight:   log.ActualWeight,
		Comments:       log.Comments,
		DateWeighed:    log.DateWeighed,
		Cart:           s.carts[log.CartID],
		Location:       s.locations[log.LocationID],
		Employee:       s.employees[log.EmployeeID],
		LineItems:      []models.LineItemView{},
	}
	for _, item := range log.LineItems {
		name := models.UnknownName
		if linen, ok := s.linens[item.LinenID]; ok {
			name = linen.Name
		}
		view.LineItems = append(view.LineItems, models.LineItemView{
			ID: item.ID, LinenID: item.LinenID, Name: name, Count: item.Count,
		})
	}
	return view
}

func (s *fakeStore) ListViews(ctx context.Context, f repositories.Filter) ([]*models.CartLogView, error) {
	views := []*models.CartLogView{}
	for _, log := range s.logs {
		if f.CartType != "" {
			cart, ok := s.carts[log.CartID]
			if !ok || cart.Type != f.CartType {
				continue
			}
		}
		if f.LocationName != "" {
			loc, ok := s.locations[log.LocationID]
			if !ok || loc.Name != f.LocationName {
				continue
			}
		}
		if f.EmployeeID != 0 && log.EmployeeID != f.EmployeeID {
			continue
		}
		views = append(views, s.buildView(log))
	}
	sort.Slice(views, func(i, j int) bool {
		if !views[i].DateWeighed.Equal(views[j].DateWeighed) {
			return views[i].DateWeighed.After(views[j].DateWeighed)
		}
		return views[i].ID < views[j].ID
	})
	return views, nil
}

// CatalogRepository

func (s *fakeStore) FindCart(_ context.Context, id int64) (*models.Cart, error) {
	cart, ok := s.carts[id]
	if !ok {
		return nil, cartlogdomain.ErrCartNotFound
	}
	return cart, nil
}

func (s *fakeStore) FindLocation(_ context.Context, id int64) (*models.Location, error) {
	loc, ok := s.locations[id]
	if !ok {
		return nil, cartlogdomain.ErrLocationNotFound
	}
	return loc, nil
}

func (s *fakeStore) FindEmployee(_ context.Context, id int64) (*models.EmployeeRef, error) {
	emp, ok := s.employees[id]
	if !ok {
		return nil, cartlogdomain.ErrEmployeeNotFound
	}
	return emp, nil
}

func newTestService(t *testing.T) (*appservices.CartLogService, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	store.addCart(1, "Cart A", "Clean")
	store.addCart(2, "Cart B", "Soiled")
	store.addLocation(1, "Laundry Room")
	store.addLocation(2, "Floor 3")
	store.addEmployee(10, "Jordan")
	store.addEmployee(20, "Riley")
	return appservices.NewCartLogService(store, store, nil), store
}

func validLog(employeeID int64) *models.CartLog {
	return &models.CartLog{
		ReceiptNumber:  "R-100",
		ReportedWeight: 50,
		ActualWeight:   51.5,
		DateWeighed:    time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		CartID:         1,
		LocationID:     1,
		EmployeeID:     employeeID,
		LineItems: []models.LineItem{
			{LinenName: "Sheet", Count: 5},
		},
	}
}

func TestUpsert_CreateAssignsIDs(t *testing.T) {
	svc, store := newTestService(t)

	persisted, err := svc.Upsert(context.Background(), validLog(10), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if persisted.ID == 0 {
		t.Error("expected a generated cart log id")
	}
	if len(persisted.LineItems) != 1 {
		t.Fatalf("expected 1 line item, got %d", len(persisted.LineItems))
	}
	item := persisted.LineItems[0]
	if item.ID == 0 {
		t.Error("expected a generated line item id")
	}
	if item.LinenID == 0 {
		t.Error("expected an auto-created linen id")
	}
	if linen := store.linens[item.LinenID]; linen == nil || linen.Name != "Sheet" {
		t.Errorf("expected linen catalog row named Sheet, got %+v", linen)
	}
}

func TestUpsert_EmptyCommentsDefaulted(t *testing.T) {
	svc, _ := newTestService(t)

	log := validLog(10)
	log.Comments = ""
	persisted, err := svc.Upsert(context.Background(), log, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if persisted.Comments != models.DefaultComments {
		t.Errorf("expected comments %q, got %q", models.DefaultComments, persisted.Comments)
	}
}

func TestUpsert_ValidationErrors(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		name   string
		mutate func(*models.CartLog)
	}{
		{"missing receipt", func(l *models.CartLog) { l.ReceiptNumber = "" }},
		{"negative weight", func(l *models.CartLog) { l.ActualWeight = -1 }},
		{"zero date", func(l *models.CartLog) { l.DateWeighed = time.Time{} }},
		{"missing cart", func(l *models.CartLog) { l.CartID = 0 }},
		{"missing location", func(l *models.CartLog) { l.LocationID = 0 }},
		{"missing employee", func(l *models.CartLog) { l.EmployeeID = 0 }},
		{"negative count", func(l *models.CartLog) { l.LineItems[0].Count = -2 }},
		{"nameless new linen", func(l *models.CartLog) {
			l.LineItems[0].LinenID = 0
			l.LineItems[0].LinenName = ""
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			log := validLog(10)
			tc.mutate(log)
			if _, err := svc.Upsert(context.Background(), log, 10); !errors.Is(err, cartlogdomain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestUpsert_UnknownCatalogRefs(t *testing.T) {
	svc, _ := newTestService(t)

	t.Run("cart", func(t *testing.T) {
		log := validLog(10)
		log.CartID = 99
		if _, err := svc.Upsert(context.Background(), log, 10); !errors.Is(err, cartlogdomain.ErrCartNotFound) {
			t.Errorf("expected ErrCartNotFound, got %v", err)
		}
	})
	t.Run("location", func(t *testing.T) {
		log := validLog(10)
		log.LocationID = 99
		if _, err := svc.Upsert(context.Background(), log, 10); !errors.Is(err, cartlogdomain.ErrLocationNotFound) {
			t.Errorf("expected ErrLocationNotFound, got %v", err)
		}
	})
	t.Run("employee", func(t *testing.T) {
		log := validLog(10)
		log.EmployeeID = 99
		if _, err := svc.Upsert(context.Background(), log, 10); !errors.Is(err, cartlogdomain.ErrEmployeeNotFound) {
			t.Errorf("expected ErrEmployeeNotFound, got %v", err)
		}
	})
}

func TestUpsert_UpdateOverwritesHeader(t *testing.T) {
	svc, store := newTestService(t)

	created, err := svc.Upsert(context.Background(), validLog(10), 10)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	update := copyLog(created)
	update.ActualWeight = 60
	update.Comments = "re-weighed"
	persisted, err := svc.Upsert(context.Background(), update, 10)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if persisted.ID != created.ID {
		t.Errorf("expected id %d to be stable, got %d", created.ID, persisted.ID)
	}
	if stored := store.logs[created.ID]; stored.ActualWeight != 60 || stored.Comments != "re-weighed" {
		t.Errorf("header not overwritten: %+v", stored)
	}
}

func TestUpsert_RepeatedSnapshotIsIdempotent(t *testing.T) {
	svc, store := newTestService(t)

	created, err := svc.Upsert(context.Background(), validLog(10), 10)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	again, err := svc.Upsert(context.Background(), copyLog(created), 10)
	if err != nil {
		t.Fatalf("re-upsert: %v", err)
	}
	if again.ID != created.ID {
		t.Errorf("expected stable id %d, got %d", created.ID, again.ID)
	}
	if len(store.logs[created.ID].LineItems) != 1 {
		t.Errorf("expected 1 line item after re-upsert, got %d", len(store.logs[created.ID].LineItems))
	}
	if again.LineItems[0].ID != created.LineItems[0].ID {
		t.Errorf("line item id changed: %d -> %d", created.LineItems[0].ID, again.LineItems[0].ID)
	}
}

func TestUpsert_ShrunkSnapshotKeepsStoredItems(t *testing.T) {
	svc, store := newTestService(t)

	log := validLog(10)
	log.LineItems = append(log.LineItems, models.LineItem{LinenName: "Towel", Count: 3})
	created, err := svc.Upsert(context.Background(), log, 10)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	update := copyLog(created)
	update.LineItems = update.LineItems[:1]
	if _, err := svc.Upsert(context.Background(), update, 10); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := len(store.logs[created.ID].LineItems); got != 2 {
		t.Errorf("expected both stored line items to survive, got %d", got)
	}
}

func TestUpsert_NonOwnerRejected(t *testing.T) {
	svc, store := newTestService(t)

	created, err := svc.Upsert(context.Background(), validLog(10), 10)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	before := copyLog(store.logs[created.ID])

	update := copyLog(created)
	update.ActualWeight = 999
	if _, err := svc.Upsert(context.Background(), update, 20); !errors.Is(err, cartlogdomain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	after := store.logs[created.ID]
	if after.ActualWeight != before.ActualWeight {
		t.Error("storage changed despite rejected update")
	}
}

func TestUpsert_UnknownIDRejected(t *testing.T) {
	svc, _ := newTestService(t)

	log := validLog(10)
	log.ID = 777
	if _, err := svc.Upsert(context.Background(), log, 10); !errors.Is(err, cartlogdomain.ErrCartLogNotFound) {
		t.Errorf("expected ErrCartLogNotFound, got %v", err)
	}
}

func TestGetByID(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.Upsert(context.Background(), validLog(10), 10)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("found", func(t *testing.T) {
		view, err := svc.GetByID(context.Background(), created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if view.Cart == nil || view.Cart.Name != "Cart A" {
			t.Errorf("expected joined cart, got %+v", view.Cart)
		}
		if view.Employee == nil || view.Employee.Name != "Jordan" {
			t.Errorf("expected joined employee, got %+v", view.Employee)
		}
		if len(view.LineItems) != 1 || view.LineItems[0].Name != "Sheet" {
			t.Errorf("expected line item named Sheet, got %+v", view.LineItems)
		}
	})

	t.Run("missing", func(t *testing.T) {
		if _, err := svc.GetByID(context.Background(), 4242); !errors.Is(err, cartlogdomain.ErrCartLogNotFound) {
			t.Errorf("expected ErrCartLogNotFound, got %v", err)
		}
	})
}

func TestGetByID_ToleratesDanglingCatalogRefs(t *testing.T) {
	svc, store := newTestService(t)

	created, err := svc.Upsert(context.Background(), validLog(10), 10)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	delete(store.carts, 1)

	view, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Cart != nil {
		t.Errorf("expected nil cart for dangling reference, got %+v", view.Cart)
	}
}

func TestList(t *testing.T) {
	svc, _ := newTestService(t)

	day := func(d int) time.Time {
		return time.Date(2024, 3, d, 9, 0, 0, 0, time.UTC)
	}
	mk := func(employee, cart, location int64, when time.Time) int64 {
		log := validLog(employee)
		log.CartID = cart
		log.LocationID = location
		log.DateWeighed = when
		persisted, err := svc.Upsert(context.Background(), log, employee)
		if err != nil {
			t.Fatalf("seed: %v", err)
		}
		return persisted.ID
	}
	a := mk(10, 1, 1, day(1))
	b := mk(10, 2, 2, day(3))
	c := mk(20, 1, 2, day(3))

	t.Run("ordering", func(t *testing.T) {
		views, err := svc.List(context.Background(), repositories.Filter{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := []int64{}
		for _, v := range views {
			got = append(got, v.ID)
		}
		// Newest weigh date first; same-day ties by ascending id.
		want := []int64{b, c, a}
		if len(got) != len(want) {
			t.Fatalf("expected %d views, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("order mismatch: got %v, want %v", got, want)
			}
		}
	})

	t.Run("cart type filter", func(t *testing.T) {
		views, err := svc.List(context.Background(), repositories.Filter{CartType: "Soiled"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 1 || views[0].ID != b {
			t.Errorf("expected only log %d, got %+v", b, views)
		}
	})

	t.Run("location filter", func(t *testing.T) {
		views, err := svc.List(context.Background(), repositories.Filter{LocationName: "Floor 3"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 2 {
			t.Errorf("expected 2 views, got %d", len(views))
		}
	})

	t.Run("employee filter", func(t *testing.T) {
		views, err := svc.List(context.Background(), repositories.Filter{EmployeeID: 20})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(views) != 1 || views[0].ID != c {
			t.Errorf("expected only log %d, got %+v", c, views)
		}
	})

	t.Run("no matches is empty slice", func(t *testing.T) {
		views, err := svc.List(context.Background(), repositories.Filter{CartType: "nonexistent"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if views == nil || len(views) != 0 {
			t.Errorf("expected empty slice, got %v", views)
		}
	})
}

func TestCartLogLifecycle(t *testing.T) {
	svc, _ := newTestService(t)

	log := &models.CartLog{
		ReceiptNumber:  "R1",
		ReportedWeight: 50,
		ActualWeight:   51,
		Comments:       "x",
		DateWeighed:    time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC),
		CartID:         1,
		LocationID:     1,
		EmployeeID:     10,
		LineItems:      []models.LineItem{{LinenName: "Sheet", Count: 5}},
	}
	created, err := svc.Upsert(context.Background(), log, 10)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	view, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.ReceiptNumber != "R1" || view.ActualWeight != 51 {
		t.Errorf("view header mismatch: %+v", view)
	}
	if len(view.LineItems) != 1 || view.LineItems[0].Name != "Sheet" || view.LineItems[0].Count != 5 {
		t.Errorf("view line items mismatch: %+v", view.LineItems)
	}

	// A stranger's delete bounces; the log is still readable.
	if ok, err := svc.Delete(context.Background(), created.ID, 20); ok || !errors.Is(err, cartlogdomain.ErrNotOwner) {
		t.Fatalf("expected (false, ErrNotOwner), got (%v, %v)", ok, err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); err != nil {
		t.Fatalf("log must survive a rejected delete: %v", err)
	}

	// The owner's delete makes the log and its line items unreachable.
	if ok, err := svc.Delete(context.Background(), created.ID, 10); !ok || err != nil {
		t.Fatalf("expected (true, nil), got (%v, %v)", ok, err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, cartlogdomain.ErrCartLogNotFound) {
		t.Errorf("expected ErrCartLogNotFound after delete, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	t.Run("owner deletes log and exclusive linens", func(t *testing.T) {
		svc, store := newTestService(t)
		created, err := svc.Upsert(context.Background(), validLog(10), 10)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		linenID := created.LineItems[0].LinenID

		ok, err := svc.Delete(context.Background(), created.ID, 10)
		if err != nil || !ok {
			t.Fatalf("expected (true, nil), got (%v, %v)", ok, err)
		}
		if _, exists := store.logs[created.ID]; exists {
			t.Error("cart log still in storage")
		}
		if _, exists := store.linens[linenID]; exists {
			t.Error("exclusively referenced linen not cascaded")
		}
	})

	t.Run("shared linen survives", func(t *testing.T) {
		svc, store := newTestService(t)
		first, err := svc.Upsert(context.Background(), validLog(10), 10)
		if err != nil {
			t.Fatalf("create first: %v", err)
		}
		linenID := first.LineItems[0].LinenID

		second := validLog(10)
		second.ReceiptNumber = "R-101"
		second.LineItems = []models.LineItem{{LinenID: linenID, Count: 2}}
		if _, err := svc.Upsert(context.Background(), second, 10); err != nil {
			t.Fatalf("create second: %v", err)
		}

		if ok, err := svc.Delete(context.Background(), first.ID, 10); err != nil || !ok {
			t.Fatalf("delete: (%v, %v)", ok, err)
		}
		if _, exists := store.linens[linenID]; !exists {
			t.Error("linen referenced by another log was deleted")
		}
	})

	t.Run("missing id", func(t *testing.T) {
		svc, _ := newTestService(t)
		ok, err := svc.Delete(context.Background(), 4242, 10)
		if ok || !errors.Is(err, cartlogdomain.ErrCartLogNotFound) {
			t.Errorf("expected (false, ErrCartLogNotFound), got (%v, %v)", ok, err)
		}
	})

	t.Run("non-owner leaves storage intact", func(t *testing.T) {
		svc, store := newTestService(t)
		created, err := svc.Upsert(context.Background(), validLog(10), 10)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		ok, err := svc.Delete(context.Background(), created.ID, 20)
		if ok || !errors.Is(err, cartlogdomain.ErrNotOwner) {
			t.Errorf("expected (false, ErrNotOwner), got (%v, %v)", ok, err)
		}
		if _, exists := store.logs[created.ID]; !exists {
			t.Error("cart log removed despite rejected delete")
		}
	})
}
