package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jossainson/ticketing-backend/internal/models"
	"github.com/jossainson/ticketing-backend/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Файл интеграционных тестов для пакета postgres (репозиторий users.go):
// - поднимает реальный PostgreSQL через testcontainers-go (образ postgres:16-alpine);
// - применяет миграции из ./migrations;
// - проверяет happy-path (создание и поиск по email), уникальность email,
//   частичное обновление профиля и смену хэша пароля;
// - валидирует сценарии отсутствия записей (storage.ErrNotFound) и корректную
//   обработку ошибок контекста (Canceled/DeadlineExceeded).
//
// Запуск локально:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/postgres -v -race -count=1

// repoRootFromThisFile — определяет корень репозитория относительно текущего файла тестов.
// Используется для поиска SQL-миграций в каталоге ./migrations независимо от текущего рабочего каталога.
func repoRootFromThisFile() string {
	// internal/storage/postgres/... -> подняться на 3 уровня до корня.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", ".."))
}

// readMigration — читает содержимое SQL-миграции из подкаталога ./migrations.
func readMigration(t *testing.T, name string) string {
	t.Helper()
	root := repoRootFromThisFile()
	path := filepath.Join(root, "migrations", name)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "read migration %s", path)
	return string(b)
}

// startPostgres — поднимает временный экземпляр PostgreSQL через testcontainers-go,
// применяет все миграции и возвращает инициализированное хранилище и функцию очистки.
// Если переменная окружения GO_TEST_INTEGRATION не установлена — тест пропускается.
func startPostgres(t *testing.T) (*Storage, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		Env:          map[string]string{"POSTGRES_USER": "user", "POSTGRES_PASSWORD": "pass", "POSTGRES_DB": "db"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://user:pass@%s:%s/db?sslmode=disable", host, port.Port())

	// применяем миграции.
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	for _, m := range []string{
		"1_init_users.up.sql",
		"2_init_reset_tokens.up.sql",
		"3_init_events.up.sql",
		"4_init_offer_types.up.sql",
	} {
		_, err = pool.Exec(ctx, readMigration(t, m))
		require.NoError(t, err, "apply migration %s", m)
	}

	st, err := New(ctx, dsn)
	require.NoError(t, err)

	cleanup := func() {
		st.Close()
		_ = c.Terminate(context.Background())
	}
	return st, cleanup
}

func newTestUser(email string) *models.User {
	now := time.Now().UTC()
	return &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: "hash",
		FirstName:    "Jean",
		LastName:     "Dupont",
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// TestIntegration_SaveUser_And_UserByEmail_OK — happy-path:
// сохранение пользователя и последующий поиск по email; проверка полей и таймстемпов.
func TestIntegration_SaveUser_And_UserByEmail_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := newTestUser("user@example.com")
	require.NoError(t, st.SaveUser(context.Background(), u))

	got, err := st.UserByEmail(context.Background(), u.Email)
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, u.Email, got.Email)
	require.Equal(t, u.PasswordHash, got.PasswordHash)
	require.Equal(t, u.FirstName, got.FirstName)
	require.Equal(t, u.LastName, got.LastName)
	require.Equal(t, models.RoleUser, got.Role)
	require.WithinDuration(t, u.CreatedAt, got.CreatedAt, time.Second)
	require.WithinDuration(t, u.UpdatedAt, got.UpdatedAt, time.Second)
}

// TestIntegration_SaveUser_UniqueEmail_Violation — конфликт уникальности по email,
// ожидаем storage.ErrAlreadyExists.
func TestIntegration_SaveUser_UniqueEmail_Violation(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	a := newTestUser("user@example.com")
	require.NoError(t, st.SaveUser(context.Background(), a))

	b := newTestUser("user@example.com") // тот же email, другой id
	err := st.SaveUser(context.Background(), b)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

// TestIntegration_UserByEmail_NotFound — поиск по email для отсутствующей записи,
// ожидаем storage.ErrNotFound.
func TestIntegration_UserByEmail_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	_, err := st.UserByEmail(context.Background(), "absent@example.com")
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_UpdateUser_PartialUpdate_OK — частичное обновление профиля:
// меняются только поля с ненулевыми указателями, updated_at обновляется всегда.
func TestIntegration_UpdateUser_PartialUpdate_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := newTestUser("user@example.com")
	require.NoError(t, st.SaveUser(context.Background(), u))

	newFirst := "Marie"
	got, err := st.UpdateUser(context.Background(), u.Email, storage.UserUpdate{FirstName: &newFirst})
	require.NoError(t, err)
	require.Equal(t, newFirst, got.FirstName)
	require.Equal(t, u.LastName, got.LastName) // не тронуто
	require.Equal(t, u.Email, got.Email)      // не тронуто
	require.True(t, got.UpdatedAt.After(u.UpdatedAt) || got.UpdatedAt.Equal(u.UpdatedAt))
}

// TestIntegration_UpdateUser_NotFound — обновление несуществующего пользователя,
// ожидаем storage.ErrNotFound.
func TestIntegration_UpdateUser_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	newFirst := "Marie"
	_, err := st.UpdateUser(context.Background(), "absent@example.com", storage.UserUpdate{FirstName: &newFirst})
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_UpdateUser_EmailTaken — смена email на уже занятый другим пользователем,
// ожидаем storage.ErrAlreadyExists.
func TestIntegration_UpdateUser_EmailTaken(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	a := newTestUser("a@example.com")
	require.NoError(t, st.SaveUser(context.Background(), a))
	b := newTestUser("b@example.com")
	require.NoError(t, st.SaveUser(context.Background(), b))

	taken := a.Email
	_, err := st.UpdateUser(context.Background(), b.Email, storage.UserUpdate{Email: &taken})
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)
}

// TestIntegration_UpdatePassword_OK — замена хэша пароля видна при повторном чтении.
func TestIntegration_UpdatePassword_OK(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	u := newTestUser("user@example.com")
	require.NoError(t, st.SaveUser(context.Background(), u))

	require.NoError(t, st.UpdatePassword(context.Background(), u.Email, "new-hash"))

	got, err := st.UserByEmail(context.Background(), u.Email)
	require.NoError(t, err)
	require.Equal(t, "new-hash", got.PasswordHash)
}

// TestIntegration_UpdatePassword_NotFound — смена пароля несуществующего пользователя,
// ожидаем storage.ErrNotFound.
func TestIntegration_UpdatePassword_NotFound(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	err := st.UpdatePassword(context.Background(), "absent@example.com", "hash")
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

// TestIntegration_SaveUser_ContextDeadlineExceeded — SaveUser с мгновенным дедлайном
// должен завершиться ошибкой context.DeadlineExceeded.
func TestIntegration_SaveUser_ContextDeadlineExceeded(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 0)
	defer cancel()

	err := st.SaveUser(ctx, newTestUser("deadline@example.com"))
	require.Error(t, err)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

// TestIntegration_UserQueries_ContextCanceled — отменённый контекст должен «просочиться»
// в ошибки чтения как context.Canceled.
func TestIntegration_UserQueries_ContextCanceled(t *testing.T) {
	st, cleanup := startPostgres(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // отменяем заранее

	_, err := st.UserByEmail(ctx, "user@example.com")
	require.Error(t, err)
	require.ErrorIs(t, err, context.Canceled)
}
