package repository

import (
	"context"
	"sort"
	"sync"

	"servicereviews/reviews-service/internal/app/reviews/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryCollection - потокобезопасная коллекция в памяти для STORE_DRIVER=memory и тестов.
// Порядок "от новых к старым" определяется порядковым номером вставки
type memoryCollection struct {
	mu   sync.RWMutex
	seq  int64
	docs map[primitive.ObjectID]memoryEntry
}

type memoryEntry struct {
	seq int64
	doc entity.Document
}

func newMemoryCollection() *memoryCollection {
	return &memoryCollection{docs: make(map[primitive.ObjectID]memoryEntry)}
}

func (m *memoryCollection) insert(doc entity.Document) entity.InsertResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := primitive.NewObjectID()
	stored := doc.WithoutID()
	stored[entity.FieldID] = id

	m.seq++
	m.docs[id] = memoryEntry{seq: m.seq, doc: stored}

	return entity.InsertResult{Acknowledged: true, InsertedID: id}
}

// find возвращает копии документов, прошедших match, от новых к старым
func (m *memoryCollection) find(match func(entity.Document) bool, limit int64) []entity.Document {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]memoryEntry, 0, len(m.docs))
	for _, e := range m.docs {
		if match(e.doc) {
			entries = append(entries, e)
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].seq > entries[j].seq })

	if limit > 0 && int64(len(entries)) > limit {
		entries = entries[:limit]
	}

	out := make([]entity.Document, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.doc.Clone())
	}
	return out
}

func (m *memoryCollection) get(id primitive.ObjectID, match func(entity.Document) bool) (entity.Document, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.docs[id]
	if !ok || !match(e.doc) {
		return nil, false
	}
	return e.doc.Clone(), true
}

func (m *memoryCollection) set(id primitive.ObjectID, match func(entity.Document) bool, key string, value interface{}) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.docs[id]
	if !ok || !match(e.doc) {
		return false
	}
	updated := e.doc.Clone()
	updated[key] = value
	m.docs[id] = memoryEntry{seq: e.seq, doc: updated}
	return true
}

func (m *memoryCollection) remove(id primitive.ObjectID, match func(entity.Document) bool) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.docs[id]
	if !ok || !match(e.doc) {
		return 0
	}
	delete(m.docs, id)
	return 1
}

func matchAll(entity.Document) bool { return true }

func matchField(key, value string) func(entity.Document) bool {
	return func(d entity.Document) bool {
		v, ok := d[key].(string)
		return ok && v == value
	}
}

// MemoryServiceRepository хранит услуги в памяти процесса
type MemoryServiceRepository struct {
	services *memoryCollection
}

func NewMemoryServiceRepository() *MemoryServiceRepository {
	return &MemoryServiceRepository{services: newMemoryCollection()}
}

func (r *MemoryServiceRepository) List(ctx context.Context, limit int64) ([]entity.Document, error) {
	return r.services.find(matchAll, limit), nil
}

func (r *MemoryServiceRepository) GetByID(ctx context.Context, id string) (entity.Document, error) {
	objectID, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}

	doc, ok := r.services.get(objectID, matchAll)
	if !ok {
		return nil, ErrServiceNotFound
	}
	return doc, nil
}

func (r *MemoryServiceRepository) Create(ctx context.Context, doc entity.Document) (entity.InsertResult, error) {
	return r.services.insert(doc), nil
}

// MemoryReviewRepository хранит отзывы в памяти процесса
type MemoryReviewRepository struct {
	reviews *memoryCollection
}

func NewMemoryReviewRepository() *MemoryReviewRepository {
	return &MemoryReviewRepository{reviews: newMemoryCollection()}
}

func (r *MemoryReviewRepository) Create(ctx context.Context, doc entity.Document) (entity.InsertResult, error) {
	return r.reviews.insert(doc), nil
}

func (r *MemoryReviewRepository) ListByServiceID(ctx context.Context, serviceID string) ([]entity.Document, error) {
	return r.reviews.find(matchField(entity.FieldServiceID, serviceID), 0), nil
}

func (r *MemoryReviewRepository) ListByEmail(ctx context.Context, email string) ([]entity.Document, error) {
	return r.reviews.find(matchField(entity.FieldEmail, email), 0), nil
}

func (r *MemoryReviewRepository) GetOwned(ctx context.Context, id string, owner string) (entity.Document, error) {
	objectID, err := ParseObjectID(id)
	if err != nil {
		return nil, err
	}

	doc, ok := r.reviews.get(objectID, matchField(entity.FieldEmail, owner))
	if !ok {
		return nil, ErrReviewNotFound
	}
	return doc, nil
}

func (r *MemoryReviewRepository) UpdateMessage(ctx context.Context, id string, owner string, message string) error {
	objectID, err := ParseObjectID(id)
	if err != nil {
		return err
	}

	if !r.reviews.set(objectID, matchField(entity.FieldEmail, owner), entity.FieldMessage, message) {
		return ErrReviewNotFound
	}
	return nil
}

func (r *MemoryReviewRepository) Delete(ctx context.Context, id string, owner string) (int64, error) {
	objectID, err := ParseObjectID(id)
	if err != nil {
		return 0, err
	}

	return r.reviews.remove(objectID, matchField(entity.FieldEmail, owner)), nil
}

var (
	_ ServiceRepository = (*MemoryServiceRepository)(nil)
	_ ReviewRepository  = (*MemoryReviewRepository)(nil)
)
