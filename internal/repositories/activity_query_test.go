package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"activity-tracker.com/activity-tracker/internal/constants"
	model "activity-tracker.com/activity-tracker/internal/models"
	"activity-tracker.com/activity-tracker/internal/testutil"
)

type queryFixture struct {
	repo   *ActivityRepository
	p1, p2 *model.Project
	u1, u2 *model.User
	a, b   *model.Activity
}

// newQueryFixture stores two activities:
// A (project P1, assignee U1, Created, due 2024-01-15 10:00) and
// B (project P2, assignee U2, Completed, due 2024-02-01 09:00).
func newQueryFixture(t *testing.T) *queryFixture {
	db := testutil.NewDB(t)
	f := &queryFixture{
		repo: NewActivityRepository(db),
		p1:   testutil.CreateProject(t, db, "P1"),
		p2:   testutil.CreateProject(t, db, "P2"),
		u1:   testutil.CreateUser(t, db, "u1@example.com", "User One"),
		u2:   testutil.CreateUser(t, db, "u2@example.com", ""),
	}

	f.a = insertActivity(t, f.repo, "A", constants.TypeProjectTask, constants.StatusCreated,
		time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), f.u1.ID, []string{f.p1.ID}, []string{f.u1.ID})
	f.b = insertActivity(t, f.repo, "B", constants.TypeAttendMeeting, constants.StatusCompleted,
		time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC), f.u1.ID, []string{f.p2.ID}, []string{f.u2.ID})
	return f
}

func insertActivity(
	t *testing.T,
	repo *ActivityRepository,
	description string,
	activityType constants.ActivityType,
	status constants.ActivityStatus,
	due time.Time,
	createdBy string,
	projectIDs, personIDs []string,
) *model.Activity {
	t.Helper()
	ctx := context.Background()

	activity := &model.Activity{
		ID:          uuid.NewString(),
		Description: description,
		Type:        activityType,
		Status:      status,
		DueDate:     due,
		CreatedByID: createdBy,
	}
	err := repo.Transaction(ctx, func(tx *ActivityRepository) error {
		if err := tx.Create(ctx, activity); err != nil {
			return err
		}
		return tx.ReplaceMembership(ctx, activity.ID, projectIDs, personIDs)
	})
	require.NoError(t, err)
	return activity
}

func descriptions(activities []model.Activity) []string {
	out := make([]string, 0, len(activities))
	for _, a := range activities {
		out = append(out, a.Description)
	}
	return out
}

func statusPtr(s constants.ActivityStatus) *constants.ActivityStatus { return &s }

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestList_NoFilterSortedByDueDate(t *testing.T) {
	f := newQueryFixture(t)

	got, err := f.repo.List(context.Background(), ActivityFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, descriptions(got))
}

func TestList_IncludesRelations(t *testing.T) {
	f := newQueryFixture(t)

	got, err := f.repo.List(context.Background(), ActivityFilter{ProjectIDs: []string{f.p1.ID}})
	require.NoError(t, err)
	require.Len(t, got, 1)

	a := got[0]
	require.NotNil(t, a.CreatedBy)
	assert.Equal(t, "u1@example.com", a.CreatedBy.Email)
	require.Len(t, a.Projects, 1)
	require.NotNil(t, a.Projects[0].Project)
	assert.Equal(t, "P1", a.Projects[0].Project.Name)
	require.Len(t, a.AssignedPersons, 1)
	require.NotNil(t, a.AssignedPersons[0].User)
	assert.Equal(t, f.u1.ID, a.AssignedPersons[0].User.ID)
}

func TestList_FilterSemantics(t *testing.T) {
	f := newQueryFixture(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		filter ActivityFilter
		want   []string
	}{
		{"project P1 only", ActivityFilter{ProjectIDs: []string{f.p1.ID}}, []string{"A"}},
		{"projects are OR-ed", ActivityFilter{ProjectIDs: []string{f.p1.ID, f.p2.ID}}, []string{"A", "B"}},
		{"status Completed only", ActivityFilter{Status: statusPtr(constants.StatusCompleted)}, []string{"B"}},
		{"project AND status", ActivityFilter{ProjectIDs: []string{f.p1.ID}, Status: statusPtr(constants.StatusCompleted)}, []string{}},
		{"project AND person", ActivityFilter{ProjectIDs: []string{f.p1.ID}, PersonIDs: []string{f.u2.ID}}, []string{}},
		{"persons are OR-ed", ActivityFilter{PersonIDs: []string{f.u1.ID, f.u2.ID}}, []string{"A", "B"}},
		{"unknown project", ActivityFilter{ProjectIDs: []string{"nope"}}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.repo.List(ctx, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, descriptions(got))
		})
	}
}

func TestList_DateToIsInclusiveEndOfDay(t *testing.T) {
	f := newQueryFixture(t)
	ctx := context.Background()

	got, err := f.repo.List(ctx, ActivityFilter{DateTo: datePtr(2024, 1, 15)})
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, descriptions(got))

	got, err = f.repo.List(ctx, ActivityFilter{DateTo: datePtr(2024, 1, 14)})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestList_DateRange(t *testing.T) {
	f := newQueryFixture(t)
	ctx := context.Background()

	got, err := f.repo.List(ctx, ActivityFilter{DateFrom: datePtr(2024, 1, 16), DateTo: datePtr(2024, 2, 1)})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, descriptions(got))

	from := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	got, err = f.repo.List(ctx, ActivityFilter{DateFrom: &from})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, descriptions(got), "dateFrom is inclusive")
}

func TestList_TypeAndWithoutProject(t *testing.T) {
	f := newQueryFixture(t)
	ctx := context.Background()

	insertActivity(t, f.repo, "C", constants.TypeRoutineWork, constants.StatusInProgress,
		time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), f.u2.ID, nil, nil)

	meeting := constants.TypeAttendMeeting
	got, err := f.repo.List(ctx, ActivityFilter{Type: &meeting})
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, descriptions(got))

	got, err = f.repo.List(ctx, ActivityFilter{WithoutProject: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, descriptions(got))
}

func TestCountBy(t *testing.T) {
	f := newQueryFixture(t)
	ctx := context.Background()

	insertActivity(t, f.repo, "C", constants.TypeProjectTask, constants.StatusCreated,
		time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), f.u2.ID, nil, nil)

	byStatus, err := f.repo.CountBy(ctx, ActivityFilter{}, "status")
	require.NoError(t, err)
	assert.Equal(t, []GroupCount{
		{Label: "Completed", Count: 1},
		{Label: "Created", Count: 2},
	}, byStatus)

	byType, err := f.repo.CountBy(ctx, ActivityFilter{PersonIDs: []string{f.u1.ID}}, "type")
	require.NoError(t, err)
	assert.Equal(t, []GroupCount{{Label: "ProjectTask", Count: 1}}, byType)

	_, err = f.repo.CountBy(ctx, ActivityFilter{}, "description")
	assert.Error(t, err)
}

func TestList_SchemaMissing(t *testing.T) {
	repo := NewActivityRepository(testutil.NewEmptyDB(t))

	_, err := repo.List(context.Background(), ActivityFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMissing)
}

func TestEndOfDay(t *testing.T) {
	got := EndOfDay(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 1, 15, 23, 59, 59, 999000000, time.UTC), got)
}
