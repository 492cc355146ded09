package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"projectassistant/backend/config"
	"projectassistant/backend/models"
	"projectassistant/backend/utils"
)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	db, err := utils.InitDB(&config.Config{DBDriver: config.DriverSQLite, DBName: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	s := New(db, opts...)
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func createUser(t *testing.T, s *Store, name string) uint {
	t.Helper()
	id, err := s.CreateUser(context.Background(), name, "password123", nil)
	require.NoError(t, err)
	return id
}

func TestCreateUserAndAuthenticate(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := createUser(t, s, "alice")
	assert.NotZero(t, id)

	_, err := s.CreateUser(ctx, "alice", "another", nil)
	assert.ErrorIs(t, err, ErrUserExists)

	got, err := s.Authenticate(ctx, "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = s.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Authenticate(ctx, "nobody", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.CreateUser(ctx, "", "pw", nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetUser(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpsertProfileDedupe(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	id := createUser(t, s, "bob")

	_, err := s.GetProfile(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.UpsertProfile(ctx, id, ProfileInput{CollegeName: "MIT", Branch: "CS", Semester: "3"}))
	require.NoError(t, s.UpsertProfile(ctx, id, ProfileInput{CollegeName: "Stanford", Branch: "CS", Semester: "4", SkillLevel: "beginner"}))

	profile, err := s.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Stanford", profile.CollegeName)
	assert.Equal(t, "4", profile.Semester)
	assert.Equal(t, models.SkillBeginner, profile.SkillLevel)

	var profiles int64
	require.NoError(t, s.db.Model(&models.StudentProfile{}).Where("user_id = ?", id).Count(&profiles).Error)
	assert.Equal(t, int64(1), profiles)

	exercises, err := s.GetSkillExercises(ctx, id)
	require.NoError(t, err)
	require.Len(t, exercises, 3)
	assert.Equal(t, "form_validation", exercises[0].ExerciseType)
}

func TestUpsertProfileAppend(t *testing.T) {
	s := newTestStore(t, WithAssignmentPolicy(AssignmentAppend))
	ctx := context.Background()
	id := createUser(t, s, "carol")

	in := ProfileInput{CollegeName: "MIT", SkillLevel: "advanced"}
	require.NoError(t, s.UpsertProfile(ctx, id, in))
	require.NoError(t, s.UpsertProfile(ctx, id, in))

	exercises, err := s.GetSkillExercises(ctx, id)
	require.NoError(t, err)
	assert.Len(t, exercises, 6)
	assert.Equal(t, "websockets", exercises[0].ExerciseType)
}

func TestUpsertProfileValidation(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.UpsertProfile(ctx, 42, ProfileInput{CollegeName: "MIT"})
	assert.ErrorIs(t, err, ErrNotFound)

	id := createUser(t, s, "dave")
	err = s.UpsertProfile(ctx, id, ProfileInput{SkillLevel: "guru"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMarkExerciseComplete(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s := newTestStore(t, WithClock(func() time.Time { return now }))
	ctx := context.Background()
	id := createUser(t, s, "erin")
	require.NoError(t, s.UpsertProfile(ctx, id, ProfileInput{SkillLevel: "intermediate"}))

	require.NoError(t, s.MarkExerciseComplete(ctx, id, "jwt_auth"))
	first, err := s.GetSkillExercises(ctx, id)
	require.NoError(t, err)
	require.True(t, first[0].Completed)
	require.NotNil(t, first[0].CompletedAt)
	firstDone := *first[0].CompletedAt

	now = now.Add(time.Hour)
	require.NoError(t, s.MarkExerciseComplete(ctx, id, "jwt_auth"))
	second, err := s.GetSkillExercises(ctx, id)
	require.NoError(t, err)
	assert.True(t, second[0].Completed)
	assert.True(t, firstDone.Equal(*second[0].CompletedAt))
	assert.False(t, second[1].Completed)

	assert.ErrorIs(t, s.MarkExerciseComplete(ctx, id, "unknown"), ErrNotFound)
}

func TestProjectHistoryOrder(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := newTestStore(t, WithClock(func() time.Time { return now }))
	ctx := context.Background()
	id := createUser(t, s, "frank")

	history, err := s.GetProjectHistory(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, history)

	_, err = s.AddProject(ctx, id, ProjectInput{ProjectName: "First"})
	require.NoError(t, err)
	_, err = s.AddProject(ctx, id, ProjectInput{ProjectName: "Second", Status: "completed"})
	require.NoError(t, err)

	history, err = s.GetProjectHistory(ctx, id)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Second", history[0].ProjectName)
	assert.NotNil(t, history[0].CompletedAt)
	assert.Equal(t, models.ProjectStatusPlanned, history[1].Status)

	_, err = s.AddProject(ctx, id, ProjectInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExerciseCacheTTL(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := newTestStore(t, WithClock(func() time.Time { return now }))
	ctx := context.Background()
	id := createUser(t, s, "cache")

	type item struct {
		Title string `json:"title"`
	}
	assert.ErrorIs(t, s.SetExerciseCache(ctx, id+1, "beginner", "web", []item{{Title: "Orphan"}}), ErrNotFound)
	require.NoError(t, s.SetExerciseCache(ctx, id, "beginner", "web", []item{{Title: "Build a form"}}))

	var got []item
	hit, err := s.GetExerciseCache(ctx, id, "beginner", "web", &got)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, "Build a form", got[0].Title)

	hit, err = s.GetExerciseCache(ctx, id, "beginner", "mobile", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	now = now.Add(8 * 24 * time.Hour)
	hit, err = s.GetExerciseCache(ctx, id, "beginner", "web", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	var rows int64
	require.NoError(t, s.db.Model(&models.AIExerciseCache{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)

	require.NoError(t, s.SetExerciseCache(ctx, id, "beginner", "web", []item{{Title: "Refreshed"}}))
	hit, err = s.GetExerciseCache(ctx, id, "beginner", "web", &got)
	require.NoError(t, err)
	require.True(t, hit)
	assert.Equal(t, "Refreshed", got[0].Title)
	require.NoError(t, s.db.Model(&models.AIExerciseCache{}).Count(&rows).Error)
	assert.Equal(t, int64(1), rows)
}

func TestPortfolioRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id := createUser(t, s, "folio")

	var out map[string]interface{}
	assert.ErrorIs(t, s.GetPortfolio(ctx, id, &out), ErrNotFound)

	require.NoError(t, s.SavePortfolio(ctx, id, map[string]interface{}{"name": "Old"}))
	require.NoError(t, s.SavePortfolio(ctx, id, map[string]interface{}{"name": "New"}))
	require.NoError(t, s.GetPortfolio(ctx, id, &out))
	assert.Equal(t, "New", out["name"])

	// no record is written for a user that does not exist
	assert.ErrorIs(t, s.SavePortfolio(ctx, id+1, map[string]interface{}{"name": "Ghost"}), ErrNotFound)
	assert.ErrorIs(t, s.GetPortfolio(ctx, id+1, &out), ErrNotFound)
}

func TestPortfolioTemplatesSeeded(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	// a second migration must not duplicate the seed
	require.NoError(t, s.Migrate(ctx))

	templates, err := s.ListPortfolioTemplates(ctx)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	assert.Equal(t, "Modern Portfolio", templates[0].Name)

	tmpl, err := s.GetPortfolioTemplate(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, tmpl.HTML, "[[skills]]")

	_, err = s.GetPortfolioTemplate(ctx, "Missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVersionControlHistory(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	s := newTestStore(t, WithClock(func() time.Time { return now }))
	ctx := context.Background()
	id := createUser(t, s, "vc")

	long := make([]rune, 600)
	for i := range long {
		long[i] = 'a'
	}
	for i := 0; i < 12; i++ {
		now = now.Add(time.Minute)
		require.NoError(t, s.SaveVersionControlRequest(ctx, id, string(long), "git status"))
	}
	require.NoError(t, s.SaveVersionControlRequest(ctx, id, "latest", "git log"))

	history, err := s.GetVersionControlHistory(ctx, id, 0)
	require.NoError(t, err)
	require.Len(t, history, DefaultHistoryLimit)
	assert.Equal(t, "latest", history[0].Request)
	assert.Len(t, history[1].Request, 500)

	history, err = s.GetVersionControlHistory(ctx, id, 2)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	assert.ErrorIs(t, s.SaveVersionControlRequest(ctx, id+1, "git status", "git status"), ErrNotFound)
}

func TestPing(t *testing.T) {
	s := newTestStore(t)
	assert.NoError(t, s.Ping(context.Background()))
}
