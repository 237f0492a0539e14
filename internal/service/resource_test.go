package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"viscart/internal/attachment"
	"viscart/internal/fileurl"
	"viscart/internal/model"
	"viscart/internal/repository"
	repoMocks "viscart/internal/repository/mocks"
	"viscart/internal/storage"
	storeMocks "viscart/internal/storage/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://api.example.com"

func attachmentPurger(store storage.Storage) *attachment.Purger {
	return attachment.NewPurger(store)
}

func urlFormatter() *fileurl.Formatter {
	return fileurl.New(baseURL)
}

func newWorksService() (*Works, *repoMocks.MockResourceStore[model.Work, model.WorkPatch], *storeMocks.MockStorage) {
	mRepo := new(repoMocks.MockResourceStore[model.Work, model.WorkPatch])
	mStore := new(storeMocks.MockStorage)
	svc := NewWorks(mRepo, attachmentPurger(mStore), urlFormatter())
	return svc, mRepo, mStore
}

func newBrandsService() (*Brands, *repoMocks.MockResourceStore[model.Brand, model.BrandPatch], *storeMocks.MockStorage) {
	mRepo := new(repoMocks.MockResourceStore[model.Brand, model.BrandPatch])
	mStore := new(storeMocks.MockStorage)
	svc := NewBrands(mRepo, attachmentPurger(mStore), urlFormatter())
	return svc, mRepo, mStore
}

func TestResource_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("slug derived from name once", func(t *testing.T) {
		svc, mRepo, _ := newWorksService()

		mRepo.On("Insert", ctx, mock.MatchedBy(func(w *model.Work) bool {
			return w.Slug == "lobby-renovation" &&
				w.ID != "" &&
				!w.CreatedAt.IsZero() &&
				w.MainImage == "uploads/main.jpg"
		})).Return(&model.Work{ID: "stored"}, nil)

		rec := svc.NewRecord()
		rec.Name = "Lobby  Renovation!"
		rec.MainImage = "uploads/main.jpg"

		created, err := svc.Create(ctx, rec)

		assert.NoError(t, err)
		assert.Equal(t, "stored", created.ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("duplicate name fails with conflict, first record unaffected", func(t *testing.T) {
		svc, mRepo, _ := newWorksService()

		mRepo.On("Insert", ctx, mock.Anything).Return(nil, repository.ErrDuplicate)

		rec := svc.NewRecord()
		rec.Name = "Lobby Renovation"

		_, err := svc.Create(ctx, rec)

		assert.ErrorIs(t, err, ErrConflict)
		mRepo.AssertExpectations(t)
	})

	t.Run("slug-bearing type requires a name", func(t *testing.T) {
		svc, _, _ := newWorksService()

		_, err := svc.Create(ctx, svc.NewRecord())

		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("defaults set status active", func(t *testing.T) {
		svc, _, _ := newBrandsService()

		assert.True(t, svc.NewRecord().Status)
	})
}

func TestResource_List(t *testing.T) {
	ctx := context.Background()

	t.Run("paginated result carries metadata and formatted paths", func(t *testing.T) {
		svc, mRepo, _ := newBrandsService()

		mRepo.On("List", ctx, repository.ListQuery{Page: 2, Limit: 10}).
			Return(&repository.Page[model.Brand]{
				Items:      []model.Brand{{ID: "brand-11", Attachment: "uploads/logo.png"}},
				Total:      25,
				TotalPages: 3,
				Page:       2,
				Limit:      10,
				Paginated:  true,
			}, nil)

		res, err := svc.List(ctx, repository.ListQuery{Page: 2, Limit: 10})

		require.NoError(t, err)
		require.NotNil(t, res.Meta)
		assert.Equal(t, 25, res.Meta.Total)
		assert.Equal(t, 3, res.Meta.TotalPages)
		assert.Equal(t, baseURL+"/uploads/logo.png", res.Items[0].Attachment)
		mRepo.AssertExpectations(t)
	})

	t.Run("search without fields uses type defaults", func(t *testing.T) {
		svc, mRepo, _ := newBrandsService()

		mRepo.On("List", ctx, repository.ListQuery{
			SearchText:   "cafe",
			SearchFields: []string{"name"},
		}).Return(&repository.Page[model.Brand]{Items: []model.Brand{}}, nil)

		res, err := svc.List(ctx, repository.ListQuery{SearchText: "cafe"})

		assert.NoError(t, err)
		assert.Nil(t, res.Meta)
		mRepo.AssertExpectations(t)
	})
}

func TestResource_Get(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	t.Run("formats attachment fields", func(t *testing.T) {
		svc, mRepo, _ := newWorksService()

		mRepo.On("FindByID", ctx, id).Return(&model.Work{
			ID:        id,
			MainImage: "uploads/main.jpg",
			Images:    model.StringList{"uploads/a.jpg", `uploads\b.jpg`},
		}, nil)

		w, err := svc.Get(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, baseURL+"/uploads/main.jpg", w.MainImage)
		assert.Equal(t, model.StringList{
			baseURL + "/uploads/a.jpg",
			baseURL + "/uploads/b.jpg",
		}, w.Images)
	})

	t.Run("malformed id rejected before querying", func(t *testing.T) {
		svc, mRepo, _ := newWorksService()

		_, err := svc.Get(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, ErrInvalidID)
		mRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("missing record maps to not found", func(t *testing.T) {
		svc, mRepo, _ := newWorksService()

		mRepo.On("FindByID", ctx, id).Return(nil, sql.ErrNoRows)

		_, err := svc.Get(ctx, id)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestResource_GetBySlug(t *testing.T) {
	ctx := context.Background()
	svc, mRepo, _ := newWorksService()

	mRepo.On("FindBySlug", ctx, "lobby").Return(&model.Work{Slug: "lobby"}, nil)
	mRepo.On("FindBySlug", ctx, "missing").Return(nil, sql.ErrNoRows)

	w, err := svc.GetBySlug(ctx, "lobby")
	assert.NoError(t, err)
	assert.Equal(t, "lobby", w.Slug)

	_, err = svc.GetBySlug(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResource_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	t.Run("omitted attachment field purges nothing", func(t *testing.T) {
		svc, mRepo, mStore := newWorksService()
		name := "Renamed"
		patch := &model.WorkPatch{Name: &name}

		mRepo.On("FindByID", ctx, id).
			Return(&model.Work{ID: id, MainImage: "uploads/main.jpg", Images: model.StringList{"uploads/a.jpg"}}, nil)
		mRepo.On("Update", ctx, id, patch).
			Return(&model.Work{ID: id, Name: name, MainImage: "uploads/main.jpg"}, nil)

		updated, report, err := svc.Update(ctx, id, patch)

		require.NoError(t, err)
		assert.Equal(t, name, updated.Name)
		assert.True(t, report.Clean())
		mStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("replaced single attachment purges the previous file", func(t *testing.T) {
		svc, mRepo, mStore := newWorksService()
		next := "uploads/new.jpg"
		patch := &model.WorkPatch{MainImage: &next}

		mRepo.On("FindByID", ctx, id).Return(&model.Work{ID: id, MainImage: "uploads/old.jpg"}, nil)
		mStore.On("Delete", ctx, "uploads/old.jpg").Return(nil)
		mRepo.On("Update", ctx, id, patch).Return(&model.Work{ID: id, MainImage: next}, nil)

		_, report, err := svc.Update(ctx, id, patch)

		require.NoError(t, err)
		assert.Equal(t, []string{"uploads/old.jpg"}, report.Deleted)
		mStore.AssertExpectations(t)
	})

	t.Run("dropping one list entry purges exactly that path", func(t *testing.T) {
		svc, mRepo, mStore := newWorksService()
		next := model.StringList{"uploads/a.jpg", "uploads/c.jpg"}
		patch := &model.WorkPatch{Images: &next}

		mRepo.On("FindByID", ctx, id).Return(&model.Work{
			ID:     id,
			Images: model.StringList{"uploads/a.jpg", "uploads/b.jpg", "uploads/c.jpg"},
		}, nil)
		mStore.On("Delete", ctx, "uploads/b.jpg").Return(nil)
		mRepo.On("Update", ctx, id, patch).Return(&model.Work{ID: id, Images: next}, nil)

		_, report, err := svc.Update(ctx, id, patch)

		require.NoError(t, err)
		assert.Equal(t, []string{"uploads/b.jpg"}, report.Deleted)
		mStore.AssertExpectations(t)
	})

	t.Run("reordered list purges nothing", func(t *testing.T) {
		svc, mRepo, mStore := newWorksService()
		next := model.StringList{"uploads/b.jpg", "uploads/a.jpg"}
		patch := &model.WorkPatch{Images: &next}

		mRepo.On("FindByID", ctx, id).Return(&model.Work{
			ID:     id,
			Images: model.StringList{"uploads/a.jpg", "uploads/b.jpg"},
		}, nil)
		mRepo.On("Update", ctx, id, patch).Return(&model.Work{ID: id, Images: next}, nil)

		_, report, err := svc.Update(ctx, id, patch)

		require.NoError(t, err)
		assert.True(t, report.Clean())
		mStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("duplicate name maps to conflict", func(t *testing.T) {
		svc, mRepo, _ := newWorksService()
		name := "Taken"
		patch := &model.WorkPatch{Name: &name}

		mRepo.On("FindByID", ctx, id).Return(&model.Work{ID: id}, nil)
		mRepo.On("Update", ctx, id, patch).Return(nil, repository.ErrDuplicate)

		_, _, err := svc.Update(ctx, id, patch)

		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("missing record maps to not found before purging", func(t *testing.T) {
		svc, mRepo, mStore := newWorksService()

		mRepo.On("FindByID", ctx, id).Return(nil, sql.ErrNoRows)

		_, _, err := svc.Update(ctx, id, &model.WorkPatch{})

		assert.ErrorIs(t, err, ErrNotFound)
		mStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestResource_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.NewString()

	t.Run("purges every attachment path then removes the record", func(t *testing.T) {
		svc, mRepo, mStore := newWorksService()

		mRepo.On("FindByID", ctx, id).Return(&model.Work{
			ID:        id,
			MainImage: "uploads/main.jpg",
			Images:    model.StringList{"uploads/a.jpg"},
		}, nil)
		mStore.On("Delete", ctx, "uploads/main.jpg").Return(nil)
		mStore.On("Delete", ctx, "uploads/a.jpg").Return(nil)
		mRepo.On("Delete", ctx, id).Return(int64(1), nil)

		report, err := svc.Delete(ctx, id)

		assert.NoError(t, err)
		assert.ElementsMatch(t, []string{"uploads/main.jpg", "uploads/a.jpg"}, report.Deleted)
		mStore.AssertExpectations(t)
		mRepo.AssertExpectations(t)
	})

	// Pins the uniform best-effort policy: a file already absent from
	// storage is a warning, never a reason to keep the record.
	t.Run("missing file is skipped and the record is still deleted", func(t *testing.T) {
		svc, mRepo, mStore := newBrandsService()

		mRepo.On("FindByID", ctx, id).Return(&model.Brand{ID: id, Attachment: "uploads/a.jpg"}, nil)
		mStore.On("Delete", ctx, "uploads/a.jpg").Return(storage.ErrObjectNotFound)
		mRepo.On("Delete", ctx, id).Return(int64(1), nil)

		report, err := svc.Delete(ctx, id)

		assert.NoError(t, err)
		assert.Equal(t, []string{"uploads/a.jpg"}, report.Skipped)
		mRepo.AssertExpectations(t)
	})

	t.Run("missing record maps to not found", func(t *testing.T) {
		svc, mRepo, _ := newBrandsService()

		mRepo.On("FindByID", ctx, id).Return(nil, sql.ErrNoRows)

		_, err := svc.Delete(ctx, id)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestResource_DeleteMany(t *testing.T) {
	ctx := context.Background()
	idA, idB := uuid.NewString(), uuid.NewString()

	t.Run("purges per item and deletes all rows at once", func(t *testing.T) {
		svc, mRepo, mStore := newBrandsService()

		mRepo.On("FindByIDs", ctx, []string{idA, idB}).Return([]model.Brand{
			{ID: idA, Attachment: "uploads/a.png"},
			{ID: idB, Attachment: "uploads/b.png"},
		}, nil)
		mStore.On("Delete", ctx, "uploads/a.png").Return(nil)
		mStore.On("Delete", ctx, "uploads/b.png").Return(errors.New("connection reset"))
		mRepo.On("DeleteMany", ctx, []string{idA, idB}).Return(int64(2), nil)

		res, err := svc.DeleteMany(ctx, []string{idA, idB})

		require.NoError(t, err)
		assert.EqualValues(t, 2, res.DeletedCount)
		assert.Equal(t, []string{"uploads/a.png"}, res.Files.Deleted)
		assert.Equal(t, []string{"uploads/b.png"}, res.Files.Failed)
		mRepo.AssertExpectations(t)
	})

	t.Run("zero matching ids succeeds with count zero", func(t *testing.T) {
		svc, mRepo, _ := newBrandsService()

		mRepo.On("FindByIDs", ctx, []string{idA}).Return([]model.Brand{}, nil)
		mRepo.On("DeleteMany", ctx, []string{idA}).Return(int64(0), nil)

		res, err := svc.DeleteMany(ctx, []string{idA})

		require.NoError(t, err)
		assert.Zero(t, res.DeletedCount)
	})

	t.Run("malformed id aborts before any mutation", func(t *testing.T) {
		svc, mRepo, mStore := newBrandsService()

		_, err := svc.DeleteMany(ctx, []string{idA, "bogus"})

		assert.ErrorIs(t, err, ErrInvalidID)
		mRepo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything)
		mStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestSiteSettings_GetFirst(t *testing.T) {
	ctx := context.Background()
	mRepo := new(repoMocks.MockResourceStore[model.Settings, model.SettingsPatch])
	mStore := new(storeMocks.MockStorage)
	svc := NewSiteSettings(mRepo, attachmentPurger(mStore), urlFormatter())

	t.Run("formats every image field", func(t *testing.T) {
		mRepo.On("FindFirst", ctx).Return(&model.Settings{
			ID:   uuid.NewString(),
			Logo: "uploads/logo.svg",
		}, nil).Once()

		s, err := svc.GetFirst(ctx)

		require.NoError(t, err)
		assert.Equal(t, baseURL+"/uploads/logo.svg", s.Logo)
	})

	t.Run("empty table yields nil without error", func(t *testing.T) {
		mRepo.On("FindFirst", ctx).Return(nil, sql.ErrNoRows).Once()

		s, err := svc.GetFirst(ctx)

		assert.NoError(t, err)
		assert.Nil(t, s)
	})
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Lobby Renovation", "lobby-renovation"},
		{"Hello, World!", "hello-world"},
		{"  Spaced   Out  ", "spaced-out"},
		{"Already-Slug", "already-slug"},
		{"Ünïcode Çafe", "n-code-afe"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "input %q", tt.in)
	}
}
