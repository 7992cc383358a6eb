package purge_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/app"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/domain/entities"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/ports/repositories"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/internal/notes/purge"
	"github.com/mehdi-apdev/hackaton-2026-AEMT/pkg/logger"
)

type stubNoteRepo struct {
	repositories.NoteRepository
	calls atomic.Int32
}

func (s *stubNoteRepo) FindDeletedBefore(_ context.Context, _ time.Time) ([]*entities.Note, error) {
	s.calls.Add(1)
	return nil, nil
}

type stubFolderRepo struct {
	repositories.FolderRepository
}

func (s *stubFolderRepo) FindDeletedBefore(_ context.Context, _ time.Time) ([]*entities.Folder, error) {
	return nil, nil
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func TestPurger_StartRunsImmediatelyAndPeriodically(t *testing.T) {
	ctx := testContext(t)
	noteRepo := &stubNoteRepo{}
	binUseCase := app.NewBinUseCase(noteRepo, &stubFolderRepo{})

	purger := purge.New(binUseCase, 30, 10*time.Millisecond)
	purger.Start(ctx)
	defer purger.Stop(ctx)

	require.Eventually(t, func() bool {
		return noteRepo.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestPurger_StopHaltsPurging(t *testing.T) {
	ctx := testContext(t)
	noteRepo := &stubNoteRepo{}
	binUseCase := app.NewBinUseCase(noteRepo, &stubFolderRepo{})

	purger := purge.New(binUseCase, 30, 10*time.Millisecond)
	purger.Start(ctx)
	purger.Stop(ctx)

	stopped := noteRepo.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, noteRepo.calls.Load())
}
