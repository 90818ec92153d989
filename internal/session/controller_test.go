// ABOUTME: Tests for the session controller.
// ABOUTME: Uses a recording persister and a fixed clock.
package session

import (
	"go/build"
	"testing"
	"time"

	"github.com/harperreed/hypertrophy/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// glog is linked in by badger and starts a flush daemon from init.
		goleak.IgnoreTopFunction("github.com/golang/glog.(*fileSink).flushDaemon"),
	)
}

// The controller stays free of storage backends so its tests start no
// background goroutines.
func TestControllerImportsNoBackends(t *testing.T) {
	pkg, err := build.ImportDir(".", 0)
	require.NoError(t, err)

	for _, imp := range pkg.Imports {
		assert.NotContains(t, imp, "internal/storage")
		assert.NotContains(t, imp, "internal/charm")
		assert.NotContains(t, imp, "badger")
		assert.NotContains(t, imp, "sqlite")
	}
}

type recordingPersister struct {
	saves []models.WorkoutState
}

func (p *recordingPersister) Save(state *models.WorkoutState) bool {
	p.saves = append(p.saves, *state)
	return true
}

var fixedNow = time.Date(2026, 4, 6, 19, 0, 0, 0, time.UTC)

func newTestController(t *testing.T, state *models.WorkoutState) (*Controller, *recordingPersister, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	p := &recordingPersister{}
	c := New(state, p,
		WithClock(func() time.Time { return fixedNow }),
		WithLogger(logger),
	)
	return c, p, hook
}

func TestNewSeedsInitialState(t *testing.T) {
	c, p, _ := newTestController(t, nil)

	assert.Equal(t, 1, c.Week())
	assert.Equal(t, models.DayA, c.Day())
	assert.Equal(t, models.UnitKg, c.Unit())
	assert.Equal(t, "Lifter", c.State().User.Name)
	assert.Len(t, c.State().Exercises, 6)
	assert.Empty(t, p.saves, "construction must not persist")
}

func TestTargetsForCurrentWeek(t *testing.T) {
	state := models.NewInitialState(models.DayA)
	state.Program.CurrentWeek = 5
	c, _, _ := newTestController(t, state)

	assert.Equal(t, 27.5, c.TargetWeightFor(1))
	assert.Equal(t, 0.0, c.TargetWeightFor(2))
	assert.Equal(t, 0.0, c.TargetWeightFor(999))
	assert.Equal(t, 11, c.TargetRepsForWeek())
	assert.Equal(t, 3, c.TargetSetsForWeek())
}

func TestDayViews(t *testing.T) {
	c, _, _ := newTestController(t, nil)

	current := c.CurrentDayExercises()
	require.Len(t, current, 2)
	assert.Equal(t, 1, current[0].ID)
	assert.Equal(t, 2, current[1].ID)

	next := c.NextDayExercises()
	require.Len(t, next, 2)
	assert.Equal(t, models.DayB, next[0].WorkoutDay)
}

func TestUpdateUser(t *testing.T) {
	c, p, _ := newTestController(t, nil)

	assert.True(t, c.UpdateUser("Sam", models.UnitLbs))
	assert.Equal(t, "Sam", c.State().User.Name)
	assert.Equal(t, models.UnitLbs, c.Unit())
	assert.Len(t, p.saves, 1)

	assert.False(t, c.UpdateUser("Sam", models.WeightUnit("stone")))
	assert.Len(t, p.saves, 1)
}

func TestRosterUpdates(t *testing.T) {
	c, p, _ := newTestController(t, nil)

	require.True(t, c.UpdateExerciseWeight(1, 24))
	assert.Equal(t, 24.0, c.State().ExerciseByID(1).CurrentWeight)
	assert.Equal(t, 20.0, c.State().ExerciseByID(1).BaseWeight)

	require.True(t, c.UpdateExerciseBaseWeight(3, 15))
	ex := c.State().ExerciseByID(3)
	assert.Equal(t, 15.0, ex.BaseWeight)
	assert.Equal(t, 15.0, ex.CurrentWeight)

	require.True(t, c.UpdateExerciseBaseReps(2, 20))
	assert.Equal(t, 20, c.State().ExerciseByID(2).CurrentReps)

	require.True(t, c.UpdateExerciseBaseTime(6, 45))
	assert.Equal(t, 45, c.State().ExerciseByID(6).CurrentTime)

	assert.False(t, c.UpdateExerciseWeight(42, 10))
	assert.Len(t, p.saves, 4)
}

func TestCompleteWorkoutAdvancesDayOnly(t *testing.T) {
	c, p, _ := newTestController(t, nil)

	c.CompleteWorkout(models.WorkoutSession{
		Date: fixedNow,
		Week: 1,
		Day:  models.DayA,
		Exercises: []models.CompletedExercise{
			{ExerciseID: 1, Sets: []models.CompletedSet{
				{Weight: 20, Reps: 10, Completed: true},
				{Weight: 22.5, Reps: 9, Completed: true},
			}},
			{ExerciseID: 2, Sets: []models.CompletedSet{{Reps: 18, Completed: true}}},
		},
	})

	st := c.State()
	assert.Equal(t, models.DayB, st.Program.CurrentDay)
	assert.Equal(t, 1, st.Program.CurrentWeek)
	assert.Equal(t, 1, st.Program.TotalWorkoutsCompleted)
	require.NotNil(t, st.Program.LastWorkoutDate)
	assert.True(t, st.Program.LastWorkoutDate.Equal(fixedNow))
	assert.Equal(t, 22.5, st.ExerciseByID(1).CurrentWeight)
	assert.Equal(t, 18, st.ExerciseByID(2).CurrentReps)
	assert.Len(t, st.WorkoutHistory, 1)
	assert.Len(t, p.saves, 1)
}

func TestCompleteWorkoutOnFinalDayAdvancesWeek(t *testing.T) {
	state := models.NewInitialState(models.DayA)
	state.Program.CurrentDay = models.DayC
	state.Program.CurrentWeek = 4
	c, _, _ := newTestController(t, state)

	c.CompleteWorkout(models.WorkoutSession{Date: fixedNow, Week: 4, Day: models.DayC})

	assert.Equal(t, 5, c.Week())
	assert.Equal(t, models.DayA, c.Day())
}

func TestCompleteWorkoutWeekIsCapped(t *testing.T) {
	state := models.NewInitialState(models.DayA)
	state.Program.CurrentDay = models.DayC
	state.Program.CurrentWeek = 12
	c, _, _ := newTestController(t, state)

	c.CompleteWorkout(models.WorkoutSession{Date: fixedNow, Week: 12, Day: models.DayC})

	assert.Equal(t, 12, c.Week())
	assert.Equal(t, models.DayA, c.Day())
}

func TestCompleteWorkoutWritesHoldTimeBest(t *testing.T) {
	state := models.NewInitialState(models.DayA)
	state.Program.CurrentDay = models.DayC
	c, _, _ := newTestController(t, state)

	a, b := 40, 55
	c.CompleteWorkout(models.WorkoutSession{
		Date: fixedNow,
		Week: 1,
		Day:  models.DayC,
		Exercises: []models.CompletedExercise{
			{ExerciseID: 6, Sets: []models.CompletedSet{{Time: &a, Completed: true}, {Time: &b, Completed: true}}},
			{ExerciseID: 5, Sets: []models.CompletedSet{}},
		},
	})

	assert.Equal(t, 55, c.State().ExerciseByID(6).CurrentTime)
	assert.Equal(t, 10.0, c.State().ExerciseByID(5).CurrentWeight, "exercises without sets are untouched")
}

func TestResetProgram(t *testing.T) {
	c, p, _ := newTestController(t, nil)
	require.True(t, c.UpdateExerciseWeight(1, 50))
	require.True(t, c.StartWorkout().Success)

	c.ResetProgram()

	assert.False(t, c.IsActive())
	assert.Equal(t, 20.0, c.State().ExerciseByID(1).CurrentWeight)
	assert.Len(t, p.saves, 2)
}

func TestExportImportRoundTrip(t *testing.T) {
	c, _, _ := newTestController(t, nil)
	require.True(t, c.StartWorkout().Success)
	require.True(t, c.RecordSet(20, 10, nil))
	_, finished := c.FinishWorkout()
	require.True(t, finished)

	data, err := c.Export()
	require.NoError(t, err)

	other, p, _ := newTestController(t, nil)
	res := other.Import(data)
	require.True(t, res.Success, res.Error)
	assert.Equal(t, c.State(), other.State())
	assert.Len(t, p.saves, 1)
}

func TestImportRefusals(t *testing.T) {
	c, p, hook := newTestController(t, nil)

	res := c.Import([]byte("{}"))
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid data structure", res.Error)

	res = c.Import([]byte("not json"))
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid JSON format", res.Error)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	data, err := c.Export()
	require.NoError(t, err)
	require.True(t, c.StartWorkout().Success)
	res = c.Import(data)
	assert.False(t, res.Success)
	assert.Equal(t, models.ReasonWorkoutActive, res.Error)

	assert.Empty(t, p.saves)
}
