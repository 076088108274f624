package create_booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenity-danang/Serenity-BookingService/internal/domain"
	bookingRepo "github.com/serenity-danang/Serenity-BookingService/internal/infra/storage/booking"
	"github.com/serenity-danang/Serenity-BookingService/internal/integrations/mailservice"
	"github.com/serenity-danang/Serenity-BookingService/pkg/dbmetrics"
	"github.com/serenity-danang/Serenity-BookingService/pkg/ptr"
	"github.com/serenity-danang/Serenity-BookingService/pkg/txmanager"
	"github.com/serenity-danang/Serenity-BookingService/pkg/types"
)

// fakeRepo in-memory репозиторий бронирований
type fakeRepo struct {
	mu         sync.Mutex
	bookings   []*domain.Booking
	nextID     int64
	getErr     error
	getErrOnce error
	getCalls   int
	createErr  error
}

func (r *fakeRepo) GetByDate(ctx context.Context, date time.Time, includeCancelled bool) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getCalls++
	if r.getErrOnce != nil {
		err := r.getErrOnce
		r.getErrOnce = nil
		return nil, err
	}
	if r.getErr != nil {
		return nil, r.getErr
	}

	var result []*domain.Booking
	for _, b := range r.bookings {
		if !b.BookingDate.Equal(date) {
			continue
		}
		if !includeCancelled && !b.IsActive() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (r *fakeRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return nil, r.createErr
	}

	r.nextID++
	created := *booking
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.bookings = append(r.bookings, &created)
	return &created, nil
}

// fakeTxManager сериализует транзакции мьютексом: проверки и вставка внутри
// fn видят согласованный снимок, как при serializable изоляции
type fakeTxManager struct {
	mu  sync.Mutex
	err error
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeMail struct {
	mu    sync.Mutex
	sent  []*mailservice.BookingConfirmation
	err   error
	sends chan struct{}
}

func newFakeMail() *fakeMail {
	return &fakeMail{sends: make(chan struct{}, 16)}
}

func (m *fakeMail) SendBookingConfirmation(ctx context.Context, params *mailservice.BookingConfirmation) error {
	m.mu.Lock()
	m.sent = append(m.sent, params)
	m.mu.Unlock()
	m.sends <- struct{}{}
	return m.err
}

func (m *fakeMail) waitForSend(t *testing.T) *mailservice.BookingConfirmation {
	t.Helper()
	select {
	case <-m.sends:
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation email was not sent")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent[len(m.sent)-1]
}

type fakeCache struct {
	mu          sync.Mutex
	invalidated []string
}

func (c *fakeCache) Invalidate(ctx context.Context, year int, month time.Month) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01"))
	return nil
}

type fixedTime struct {
	now time.Time
}

func (p *fixedTime) Now() time.Time { return p.now }

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

var testNow = time.Date(2026, time.February, 20, 12, 0, 0, 0, time.UTC)

func newTestUseCase(repo *fakeRepo, mail *fakeMail) *UseCase {
	uc := NewUseCase(repo, mail, &fakeCache{}, &fakeTxManager{}, nil, domain.StatusPending, noopLogger{})
	uc.timeProvider = &fixedTime{now: testNow}
	return uc
}

func validRequest() *Request {
	// 2026-02-26 — четверг, единственная групповая сессия в саду
	return &Request{
		Name:       "Linh Tran",
		Email:      "linh@example.com",
		Phone:      "+84 905 123 456",
		Date:       time.Date(2026, time.February, 26, 0, 0, 0, 0, time.UTC),
		TimeSlot:   types.TimeString("17:30"),
		GuestCount: 2,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{}
	mail := newFakeMail()
	uc := newTestUseCase(repo, mail)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "260201", resp.BookingCode)
	assert.Equal(t, string(domain.ServiceGroupSoundBath), resp.ServiceType)
	assert.Equal(t, "Serenity Garden Sanctuary", resp.VenueName)
	assert.Equal(t, int64(600000), resp.TotalPrice) // сад: 300000 x 2
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	sent := mail.waitForSend(t)
	assert.Equal(t, "linh@example.com", sent.ToEmail)
	assert.Equal(t, "26/02/2026", sent.Date)
	assert.Equal(t, "600.000 VND", sent.TotalPrice)
}

func TestExecute_BookingCodeFromSnapshot(t *testing.T) {
	repo := &fakeRepo{}
	mail := newFakeMail()
	uc := newTestUseCase(repo, mail)

	// Пять существующих бронирований даты — следующий код 260206
	for i := 0; i < 5; i++ {
		req := validRequest()
		req.GuestCount = 1
		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
	}

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "260206", resp.BookingCode)
}

func TestExecute_DayFull(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, newFakeMail())

	for i := 0; i < domain.MaxBookingsPerDay; i++ {
		req := validRequest()
		req.GuestCount = 1
		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
	}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDayFull)
}

func TestExecute_CancelledBookingsFreeCapacity(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, newFakeMail())

	for i := 0; i < domain.MaxBookingsPerDay; i++ {
		req := validRequest()
		req.GuestCount = 1
		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
	}

	// Отмена освобождает место в дневном лимите
	repo.mu.Lock()
	repo.bookings[0].Status = domain.StatusCancelled
	repo.mu.Unlock()

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_SlotFull(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, newFakeMail())

	req := validRequest()
	req.GuestCount = 15
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// 15 занято, 6 не помещаются в лимит 20
	req = validRequest()
	req.GuestCount = 6
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotFull)

	// А 5 помещаются впритык
	req = validRequest()
	req.GuestCount = 5
	_, err = uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_ConcurrentRequestsRespectCapacity(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, newFakeMail())

	// Три параллельные заявки по 8 гостей: помещаются только две (16 из 20)
	var wg sync.WaitGroup
	errs := make([]error, 3)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest()
			req.GuestCount = 8
			req.Email = "guest@example.com"
			_, errs[i] = uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrSlotFull)
		}
	}
	assert.Equal(t, 2, succeeded)

	// Итоговая занятость не превышает вместимость
	bookings, err := repo.GetByDate(context.Background(), validRequest().Date, false)
	require.NoError(t, err)
	total := 0
	for _, b := range bookings {
		total += b.GuestCount
	}
	assert.LessOrEqual(t, total, domain.MaxGuestsPerSlot)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, newFakeMail())

	req := validRequest()
	req.Date = time.Date(2026, time.February, 19, 0, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestExecute_TodayIsBookable(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, newFakeMail())

	req := validRequest()
	req.Date = time.Date(2026, time.February, 20, 0, 0, 0, 0, time.UTC) // пятница
	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}

func TestExecute_SlotNotOffered(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, newFakeMail())

	// Утренний слот не существует в четверг
	req := validRequest()
	req.TimeSlot = types.TimeString("11:00")
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)

	// Время вне словаря расписания
	req = validRequest()
	req.TimeSlot = types.TimeString("12:00")
	_, err = uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_TherapyTakesOneGuest(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, newFakeMail())

	req := validRequest()
	req.Date = time.Date(2026, time.February, 27, 0, 0, 0, 0, time.UTC) // пятница
	req.TimeSlot = types.TimeString("19:00")
	req.GuestCount = 2
	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)

	req.GuestCount = 1
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(900000), resp.TotalPrice)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, newFakeMail())

	tests := []struct {
		name   string
		mutate func(req *Request)
	}{
		{"empty name", func(req *Request) { req.Name = "  " }},
		{"bad email", func(req *Request) { req.Email = "not-an-email" }},
		{"empty phone", func(req *Request) { req.Phone = "" }},
		{"zero guests", func(req *Request) { req.GuestCount = 0 }},
		{"too many guests", func(req *Request) { req.GuestCount = 21 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_MailFailureDoesNotFailBooking(t *testing.T) {
	repo := &fakeRepo{}
	mail := newFakeMail()
	mail.err = errors.New("smtp: connection refused")
	uc := newTestUseCase(repo, mail)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.BookingCode)

	mail.waitForSend(t)
}

func TestExecute_StoreUnavailable(t *testing.T) {
	repo := &fakeRepo{getErr: errors.New("pq: connection refused")}
	uc := newTestUseCase(repo, newFakeMail())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestExecute_NotesArePassedThrough(t *testing.T) {
	repo := &fakeRepo{}
	mail := newFakeMail()
	uc := newTestUseCase(repo, mail)

	req := validRequest()
	req.Notes = ptr.Ptr("xin hãy chuẩn bị thảm cho hai người")
	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp.Notes)
	assert.Equal(t, *req.Notes, *resp.Notes)

	sent := mail.waitForSend(t)
	assert.Equal(t, *req.Notes, sent.Notes)
}

// fakeTxExecutor фиктивная транзакция для настоящего txmanager: запросы
// выполняет fakeRepo, транзакция нужна только как маркер в контексте
type fakeTxExecutor struct{}

func (fakeTxExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, errors.New("not implemented")
}

func (fakeTxExecutor) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("not implemented")
}

func (fakeTxExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func (fakeTxExecutor) Commit() error   { return nil }
func (fakeTxExecutor) Rollback() error { return nil }

type fakeTxBeginner struct{}

func (fakeTxBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return fakeTxExecutor{}, nil
}

// Ошибка сериализации из чтения FOR UPDATE приходит завернутой репозиторием
// и юзкейсом; транзакция должна повториться и завершиться успешно
func TestExecute_SerializationConflictIsRetried(t *testing.T) {
	repo := &fakeRepo{
		getErrOnce: fmt.Errorf("%w: GetByDate - execute query: %w",
			bookingRepo.ErrExecQuery,
			&pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}),
	}
	mail := newFakeMail()

	uc := NewUseCase(repo, mail, &fakeCache{}, txmanager.NewTransactionManager(fakeTxBeginner{}), nil, domain.StatusPending, noopLogger{})
	uc.timeProvider = &fixedTime{now: testNow}

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "260201", resp.BookingCode)
	assert.Equal(t, 2, repo.getCalls)
}

type fakeBookingMetrics struct {
	mu      sync.Mutex
	created []string
}

func (m *fakeBookingMetrics) IncBookingCreated(serviceType, venue string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, serviceType+"@"+venue)
}

func TestExecute_IncrementsCreatedCounter(t *testing.T) {
	repo := &fakeRepo{}
	mail := newFakeMail()
	metrics := &fakeBookingMetrics{}

	uc := newTestUseCase(repo, mail)
	uc.metrics = metrics

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, metrics.created, 1)
	assert.Equal(t, "group-sound-bath@sanctuary", metrics.created[0])

	// Отклоненная заявка счетчик не трогает
	past := validRequest()
	past.Date = time.Date(2026, time.February, 19, 0, 0, 0, 0, time.UTC)
	_, err = uc.Execute(context.Background(), past)
	require.Error(t, err)
	assert.Len(t, metrics.created, 1)
}
