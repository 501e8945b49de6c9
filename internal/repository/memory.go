package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/lodger-platform/admin-service/internal/domain"
)

// In-memory implementations back the service tests and local development
// without a database. They return pgx.ErrNoRows for absent records so callers
// see the same sentinel as the Postgres implementations.

// InMemoryAdminSeatRepository keeps the roster under a mutex so the
// cap check and the insert stay serialized, mirroring the advisory-locked
// insert of the Postgres implementation.
type InMemoryAdminSeatRepository struct {
	mu    sync.Mutex
	seats map[string]domain.AdminSeat
}

// NewInMemoryAdminSeatRepository returns an empty roster.
func NewInMemoryAdminSeatRepository() *InMemoryAdminSeatRepository {
	return &InMemoryAdminSeatRepository{seats: make(map[string]domain.AdminSeat)}
}

func (r *InMemoryAdminSeatRepository) GetByIdentity(_ context.Context, identityID string) (*domain.AdminSeat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seat, ok := r.seats[identityID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &seat, nil
}

func (r *InMemoryAdminSeatRepository) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seats), nil
}

func (r *InMemoryAdminSeatRepository) CreateIfBelowCap(_ context.Context, seat *domain.AdminSeat, cap int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.seats[seat.IdentityID]; exists {
		return false, nil
	}
	if len(r.seats) >= cap {
		return false, nil
	}
	seat.CreatedAt = time.Now()
	r.seats[seat.IdentityID] = *seat
	return true, nil
}

func (r *InMemoryAdminSeatRepository) List(_ context.Context) ([]domain.AdminSeat, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seats := make([]domain.AdminSeat, 0, len(r.seats))
	for _, seat := range r.seats {
		seats = append(seats, seat)
	}
	sort.Slice(seats, func(i, j int) bool { return seats[i].CreatedAt.Before(seats[j].CreatedAt) })
	return seats, nil
}

// InMemoryUserRepository stores platform accounts.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
}

// NewInMemoryUserRepository returns an empty store.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: make(map[string]domain.User)}
}

// Put seeds an account; test helper standing in for the out-of-scope signup flow.
func (r *InMemoryUserRepository) Put(user domain.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	r.users[user.ID] = user
}

func (r *InMemoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &user, nil
}

func (r *InMemoryUserRepository) List(_ context.Context, search string, limit int) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	term := strings.ToLower(strings.TrimSpace(search))
	var result []domain.User
	for _, user := range r.users {
		if term != "" &&
			!strings.Contains(strings.ToLower(user.Name), term) &&
			!strings.Contains(strings.ToLower(user.Email), term) {
			continue
		}
		result = append(result, user)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	limit = normalizeLimit(limit)
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *InMemoryUserRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users), nil
}

func (r *InMemoryUserRepository) SetVerified(_ context.Context, id string, verified bool) error {
	return r.mutate(id, func(user *domain.User) { user.Verified = verified })
}

func (r *InMemoryUserRepository) SetBanned(_ context.Context, id string, banned bool) error {
	return r.mutate(id, func(user *domain.User) { user.Banned = banned })
}

func (r *InMemoryUserRepository) mutate(id string, apply func(*domain.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	apply(&user)
	r.users[id] = user
	return nil
}

func (r *InMemoryUserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *InMemoryUserRepository) ListByRole(_ context.Context, role domain.UserRole) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.User
	for _, user := range r.users {
		if user.Role == role {
			result = append(result, user)
		}
	}
	return result, nil
}

func (r *InMemoryUserRepository) ListAll(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.User, 0, len(r.users))
	for _, user := range r.users {
		result = append(result, user)
	}
	return result, nil
}

// InMemoryReportRepository stores abuse reports.
type InMemoryReportRepository struct {
	mu      sync.RWMutex
	reports map[string]domain.Report
}

// NewInMemoryReportRepository returns an empty store.
func NewInMemoryReportRepository() *InMemoryReportRepository {
	return &InMemoryReportRepository{reports: make(map[string]domain.Report)}
}

func (r *InMemoryReportRepository) Create(_ context.Context, report *domain.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}
	r.reports[report.ID] = *report
	return nil
}

func (r *InMemoryReportRepository) GetByID(_ context.Context, id string) (*domain.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	report, ok := r.reports[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &report, nil
}

func (r *InMemoryReportRepository) List(_ context.Context, limit int) ([]domain.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Report, 0, len(r.reports))
	for _, report := range r.reports {
		result = append(result, report)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	limit = normalizeLimit(limit)
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *InMemoryReportRepository) UpdateStatus(_ context.Context, id string, status domain.ReportStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	report, ok := r.reports[id]
	if !ok {
		return pgx.ErrNoRows
	}
	report.Status = status
	r.reports[id] = report
	return nil
}

func (r *InMemoryReportRepository) CountByStatus(_ context.Context, status domain.ReportStatus) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, report := range r.reports {
		if report.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryReportRepository) CountByReportedUser(_ context.Context, userID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, report := range r.reports {
		if report.ReportedUserID == userID {
			count++
		}
	}
	return count, nil
}

// InMemoryMessageRepository stores direct messages.
type InMemoryMessageRepository struct {
	mu       sync.RWMutex
	messages []domain.Message
	failNext bool
}

// NewInMemoryMessageRepository returns an empty store.
func NewInMemoryMessageRepository() *InMemoryMessageRepository {
	return &InMemoryMessageRepository{}
}

// FailNext makes the next Create return an error, for partial-failure tests.
func (r *InMemoryMessageRepository) FailNext() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failNext = true
}

func (r *InMemoryMessageRepository) Create(_ context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failNext {
		r.failNext = false
		return errStoreUnavailable
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *InMemoryMessageRepository) ListByRecipient(_ context.Context, recipientID string, limit int) ([]domain.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Message
	for _, msg := range r.messages {
		if msg.RecipientID == recipientID {
			result = append(result, msg)
		}
	}
	limit = normalizeLimit(limit)
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// All returns every stored message, newest last.
func (r *InMemoryMessageRepository) All() []domain.Message {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Message{}, r.messages...)
}

// InMemoryNotificationRepository stores bell notifications.
type InMemoryNotificationRepository struct {
	mu            sync.RWMutex
	notifications []domain.Notification
}

// NewInMemoryNotificationRepository returns an empty store.
func NewInMemoryNotificationRepository() *InMemoryNotificationRepository {
	return &InMemoryNotificationRepository{}
}

func (r *InMemoryNotificationRepository) Create(_ context.Context, notif *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if notif.CreatedAt.IsZero() {
		notif.CreatedAt = time.Now()
	}
	r.notifications = append(r.notifications, *notif)
	return nil
}

func (r *InMemoryNotificationRepository) ListByUser(_ context.Context, userID string, limit int) ([]domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Notification
	for _, notif := range r.notifications {
		if notif.UserID == userID {
			result = append(result, notif)
		}
	}
	limit = normalizeLimit(limit)
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// All returns every stored notification.
func (r *InMemoryNotificationRepository) All() []domain.Notification {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Notification{}, r.notifications...)
}

// InMemoryLeaseRepository stores lease agreements.
type InMemoryLeaseRepository struct {
	mu     sync.RWMutex
	leases []domain.Lease
}

// NewInMemoryLeaseRepository returns an empty store.
func NewInMemoryLeaseRepository() *InMemoryLeaseRepository {
	return &InMemoryLeaseRepository{}
}

// Put seeds a lease record.
func (r *InMemoryLeaseRepository) Put(lease domain.Lease) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.leases = append(r.leases, lease)
}

func (r *InMemoryLeaseRepository) List(_ context.Context, limit int) ([]domain.Lease, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := append([]domain.Lease{}, r.leases...)
	limit = normalizeLimit(limit)
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *InMemoryLeaseRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.leases), nil
}

func (r *InMemoryLeaseRepository) CountByTenant(_ context.Context, tenantID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, lease := range r.leases {
		if lease.TenantID == tenantID {
			count++
		}
	}
	return count, nil
}

// InMemoryPropertyRepository stores listings.
type InMemoryPropertyRepository struct {
	mu         sync.RWMutex
	properties []domain.Property
}

// NewInMemoryPropertyRepository returns an empty store.
func NewInMemoryPropertyRepository() *InMemoryPropertyRepository {
	return &InMemoryPropertyRepository{}
}

// Put seeds a listing.
func (r *InMemoryPropertyRepository) Put(property domain.Property) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.properties = append(r.properties, property)
}

func (r *InMemoryPropertyRepository) CountByStatus(_ context.Context, status string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, property := range r.properties {
		if property.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *InMemoryPropertyRepository) CountByLandlord(_ context.Context, landlordID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, property := range r.properties {
		if property.LandlordID == landlordID {
			count++
		}
	}
	return count, nil
}

// InMemoryBroadcastRepository stores announcement history.
type InMemoryBroadcastRepository struct {
	mu         sync.RWMutex
	broadcasts []domain.Broadcast
}

// NewInMemoryBroadcastRepository returns an empty store.
func NewInMemoryBroadcastRepository() *InMemoryBroadcastRepository {
	return &InMemoryBroadcastRepository{}
}

func (r *InMemoryBroadcastRepository) Create(_ context.Context, broadcast *domain.Broadcast) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if broadcast.CreatedAt.IsZero() {
		broadcast.CreatedAt = time.Now()
	}
	r.broadcasts = append(r.broadcasts, *broadcast)
	return nil
}

func (r *InMemoryBroadcastRepository) List(_ context.Context, limit int) ([]domain.Broadcast, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := append([]domain.Broadcast{}, r.broadcasts...)
	sort.Slice(result, func(i, j int) bool { return result[i].CreatedAt.After(result[j].CreatedAt) })
	limit = normalizeLimit(limit)
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
