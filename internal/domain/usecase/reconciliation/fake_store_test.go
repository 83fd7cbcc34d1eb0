package reconciliation

import (
	"context"
	"errors"
	"sort"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/statement-processor/internal/domain/error"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/persistence"
)

type fakeTxKey struct{}

// fakeStore is an in-memory record store with copy-on-begin transactions
type fakeStore struct {
	records    map[uint64]entity.TransactionRecord
	nextID     uint64
	failUpdate error
	failLoad   error
	bookShort  bool
	commits    int
	rollbacks  int
}

func newFakeStore(records ...entity.TransactionRecord) *fakeStore {
	s := &fakeStore{records: make(map[uint64]entity.TransactionRecord)}
	for _, r := range records {
		s.nextID++
		r.ID = s.nextID
		s.records[r.ID] = r
	}
	return s
}

func (s *fakeStore) Begin(ctx context.Context) (context.Context, error) {
	snapshot := make(map[uint64]entity.TransactionRecord, len(s.records))
	for id, r := range s.records {
		snapshot[id] = r.Clone()
	}
	return context.WithValue(ctx, fakeTxKey{}, snapshot), nil
}

func (s *fakeStore) Commit(ctx context.Context) error {
	snapshot, ok := ctx.Value(fakeTxKey{}).(map[uint64]entity.TransactionRecord)
	if !ok {
		return errors.New("no transaction")
	}
	s.records = snapshot
	s.commits++
	return nil
}

func (s *fakeStore) Rollback(ctx context.Context) error {
	s.rollbacks++
	return nil
}

func (s *fakeStore) GetTransactionRecordRepository(ctx context.Context) persistence.TransactionRecordRepository {
	if snapshot, ok := ctx.Value(fakeTxKey{}).(map[uint64]entity.TransactionRecord); ok {
		return &fakeRecordRepo{store: s, rows: snapshot}
	}
	return &fakeRecordRepo{store: s}
}

func (s *fakeStore) GetProcessedDocumentRepository(ctx context.Context) persistence.ProcessedDocumentRepository {
	return nil
}

func (s *fakeStore) GetMaintenanceFlagRepository(ctx context.Context) persistence.MaintenanceFlagRepository {
	return nil
}

func (s *fakeStore) get(id uint64) entity.TransactionRecord {
	return s.records[id]
}

type fakeRecordRepo struct {
	store *fakeStore
	rows  map[uint64]entity.TransactionRecord
}

func (r *fakeRecordRepo) data() map[uint64]entity.TransactionRecord {
	if r.rows != nil {
		return r.rows
	}
	return r.store.records
}

func (r *fakeRecordRepo) sorted(keep func(entity.TransactionRecord) bool) []entity.TransactionRecord {
	var out []entity.TransactionRecord
	for _, rec := range r.data() {
		if keep(rec) {
			out = append(out, rec.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeRecordRepo) Insert(ctx context.Context, records []*entity.TransactionRecord) error {
	for _, rec := range records {
		r.store.nextID++
		rec.ID = r.store.nextID
		r.data()[rec.ID] = rec.Clone()
	}
	return nil
}

func (r *fakeRecordRepo) LoadAll(ctx context.Context) ([]entity.TransactionRecord, error) {
	return r.sorted(func(entity.TransactionRecord) bool { return true }), nil
}

func (r *fakeRecordRepo) LoadPending(ctx context.Context) ([]entity.TransactionRecord, error) {
	if r.store.failLoad != nil {
		return nil, r.store.failLoad
	}
	return r.sorted(func(rec entity.TransactionRecord) bool { return !rec.Booked }), nil
}

func (r *fakeRecordRepo) LoadBooked(ctx context.Context) ([]entity.TransactionRecord, error) {
	return r.sorted(func(rec entity.TransactionRecord) bool { return rec.Booked }), nil
}

func (r *fakeRecordRepo) FindByID(ctx context.Context, id uint64) (*entity.TransactionRecord, error) {
	rec, ok := r.data()[id]
	if !ok {
		return nil, errs.ErrRecordNotFound
	}
	return &rec, nil
}

func (r *fakeRecordRepo) UpdateWorkingFields(ctx context.Context, id uint64, reconciled bool, category string) error {
	if r.store.failUpdate != nil {
		return r.store.failUpdate
	}
	rec, ok := r.data()[id]
	if !ok {
		return errs.ErrRecordNotFound
	}
	if rec.Booked {
		return errs.ErrRecordBooked
	}
	rec.Reconciled = reconciled
	rec.ExpenseCategory = category
	r.data()[id] = rec
	return nil
}

func (r *fakeRecordRepo) Book(ctx context.Context, ids []uint64) (int64, error) {
	var n int64
	for _, id := range ids {
		rec, ok := r.data()[id]
		if !ok || rec.Booked {
			continue
		}
		rec.Booked = true
		r.data()[id] = rec
		n++
	}
	if r.store.bookShort {
		n--
	}
	return n, nil
}

func (r *fakeRecordRepo) UpdateOperationDate(ctx context.Context, id uint64, date string) error {
	rec := r.data()[id]
	rec.OperationDate = date
	r.data()[id] = rec
	return nil
}

func (r *fakeRecordRepo) PurgeAll(ctx context.Context) (int64, error) {
	n := int64(len(r.data()))
	for id := range r.data() {
		delete(r.data(), id)
	}
	return n, nil
}
