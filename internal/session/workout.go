// ABOUTME: Active workout operations: start, record sets, move the cursor, finish, and cancel.
// ABOUTME: Refused operations are silent no-ops or Result values, never errors.
package session

import (
	"github.com/harperreed/hypertrophy/internal/models"
	"github.com/sirupsen/logrus"
)

// IsActive reports whether a workout is in progress.
func (c *Controller) IsActive() bool {
	return c.active != nil
}

// Active returns a copy of the in-progress workout, or nil.
func (c *Controller) Active() *Active {
	if c.active == nil {
		return nil
	}
	return c.active.clone()
}

// StartWorkout begins a workout for the current day. It replaces any workout
// already in progress and is refused when nothing is scheduled.
func (c *Controller) StartWorkout() Result {
	exercises := c.CurrentDayExercises()
	if len(exercises) == 0 {
		c.log.WithField("day", c.state.Program.CurrentDay).Warn("no exercises found for current day")
		return refused(ReasonNothingScheduled)
	}

	if c.active != nil {
		c.log.Warn("replacing workout already in progress")
	}
	c.active = newActive(exercises, c.now())

	c.log.WithFields(logrus.Fields{
		"week":      c.state.Program.CurrentWeek,
		"day":       c.state.Program.CurrentDay,
		"exercises": len(exercises),
	}).Info("workout started")
	return ok()
}

// CurrentExercise returns the exercise under the cursor.
func (c *Controller) CurrentExercise() (models.Exercise, bool) {
	if c.active == nil {
		return models.Exercise{}, false
	}
	ex := c.currentExercise()
	if ex == nil {
		return models.Exercise{}, false
	}
	return *ex, true
}

func (c *Controller) currentExercise() *models.Exercise {
	a := c.active
	if a.ExerciseIndex < 0 || a.ExerciseIndex >= len(a.ExerciseIDs) {
		return nil
	}
	return c.state.ExerciseByID(a.ExerciseIDs[a.ExerciseIndex])
}

// CurrentProgress reports the set cursor and the sets recorded so far for the
// current exercise.
func (c *Controller) CurrentProgress() (Progress, bool) {
	if c.active == nil {
		return Progress{}, false
	}
	ex := c.currentExercise()
	if ex == nil {
		return Progress{}, false
	}

	var sets []models.CompletedSet
	if ce := c.active.completedFor(ex.ID); ce != nil {
		sets = append(sets, ce.Sets...)
	}
	return Progress{
		CurrentSet:    c.active.CurrentSet,
		TotalSets:     c.TargetSetsForWeek(),
		CompletedSets: sets,
	}, true
}

// RecordSet records the current set of the current exercise. Recording the
// same set twice is a no-op. The recorded values depend on the exercise's
// tracking discipline; the cursor does not move.
func (c *Controller) RecordSet(weight float64, reps int, seconds *int) bool {
	if c.active == nil {
		return false
	}
	ex := c.currentExercise()
	if ex == nil {
		return false
	}
	ce := c.active.completedFor(ex.ID)
	if ce == nil {
		return false
	}
	if len(ce.Sets) >= c.active.CurrentSet {
		return false
	}

	set := models.CompletedSet{
		Weight:    weight,
		Reps:      reps,
		Time:      seconds,
		Completed: true,
	}

	switch ex.Discipline() {
	case models.TrackReps:
		set.Weight = 0
		if tracked := c.active.ScratchReps[ex.ID]; tracked != 0 {
			set.Reps = tracked
		}
	case models.TrackTime:
		held := c.active.ScratchTime[ex.ID]
		if held == 0 && seconds != nil {
			held = *seconds
		}
		if held == 0 {
			held = models.DefaultHoldSeconds
		}
		set.Weight = 0
		set.Reps = 0
		set.Time = &held
	}

	ce.Sets = append(ce.Sets, set)

	switch ex.Discipline() {
	case models.TrackWeight:
		ex.CurrentWeight = maxWeight(ce.Sets)
	case models.TrackReps:
		if best := maxReps(ce.Sets); best > 0 {
			ex.CurrentReps = best
		}
	}

	c.persist()
	return true
}

// AdvanceCursor moves to the next exercise, wrapping to the first exercise of
// the next set. It is a no-op on the last exercise of the last set.
func (c *Controller) AdvanceCursor() bool {
	a := c.active
	if a == nil {
		return false
	}

	switch {
	case a.isLastExercise() && a.CurrentSet >= c.TargetSetsForWeek():
		return false
	case a.isLastExercise():
		a.CurrentSet++
		a.ExerciseIndex = 0
	default:
		a.ExerciseIndex++
	}
	return true
}

// RetreatCursor moves to the previous exercise, wrapping to the last exercise
// of the previous set. It is a no-op on the first exercise of set 1.
func (c *Controller) RetreatCursor() bool {
	a := c.active
	if a == nil {
		return false
	}

	switch {
	case a.ExerciseIndex > 0:
		a.ExerciseIndex--
	case a.CurrentSet > 1:
		a.CurrentSet--
		a.ExerciseIndex = len(a.ExerciseIDs) - 1
	default:
		return false
	}
	return true
}

// CanGoNext reports whether another exercise follows in the current set.
func (c *Controller) CanGoNext() bool {
	return c.active != nil && c.active.ExerciseIndex < len(c.active.ExerciseIDs)-1
}

// CanGoPrevious reports whether RetreatCursor would move.
func (c *Controller) CanGoPrevious() bool {
	return c.active != nil && (c.active.ExerciseIndex > 0 || c.active.CurrentSet > 1)
}

// IsLastExerciseOfLastSet reports whether the cursor is at the end of the workout.
func (c *Controller) IsLastExerciseOfLastSet() bool {
	return c.active != nil && c.active.isLastExercise() && c.active.CurrentSet >= c.TargetSetsForWeek()
}

// IsExerciseComplete reports whether the exercise has all its sets recorded.
func (c *Controller) IsExerciseComplete(id int) bool {
	if c.active == nil {
		return false
	}
	ce := c.active.completedFor(id)
	return ce != nil && len(ce.Sets) >= c.TargetSetsForWeek()
}

// IsCurrentSetComplete reports whether the exercise has recorded the set under the cursor.
func (c *Controller) IsCurrentSetComplete(id int) bool {
	if c.active == nil {
		return false
	}
	ce := c.active.completedFor(id)
	return ce != nil && len(ce.Sets) >= c.active.CurrentSet
}

// IsWorkoutComplete reports whether every scheduled exercise is complete.
func (c *Controller) IsWorkoutComplete() bool {
	if c.active == nil {
		return false
	}
	target := c.TargetSetsForWeek()
	for _, ce := range c.active.CompletedExercises {
		if len(ce.Sets) < target {
			return false
		}
	}
	return true
}

// SetActiveWeight changes an exercise's current weight during a workout.
func (c *Controller) SetActiveWeight(id int, weight float64) bool {
	if c.active == nil {
		return false
	}
	return c.UpdateExerciseWeight(id, weight)
}

// SetScratchReps sets the reps to record for a reps exercise.
func (c *Controller) SetScratchReps(id, reps int) bool {
	if c.active == nil || !c.active.scheduled(id) {
		return false
	}
	c.active.ScratchReps[id] = reps
	return true
}

// SetScratchTime sets the hold-time to record for a time exercise and writes
// it to the roster as the exercise's current hold-time.
func (c *Controller) SetScratchTime(id, seconds int) bool {
	if c.active == nil || !c.active.scheduled(id) {
		return false
	}
	c.active.ScratchTime[id] = seconds
	if ex := c.state.ExerciseByID(id); ex != nil {
		ex.CurrentTime = seconds
		c.persist()
	}
	return true
}

// ScratchReps returns the reps that would be recorded for the exercise.
func (c *Controller) ScratchReps(id int) int {
	if c.active != nil {
		if tracked, ok := c.active.ScratchReps[id]; ok {
			return tracked
		}
	}
	if ex := c.state.ExerciseByID(id); ex != nil {
		return ex.RepsTarget()
	}
	return 0
}

// ScratchTime returns the hold-time that would be recorded for the exercise.
func (c *Controller) ScratchTime(id int) int {
	if c.active == nil {
		return models.DefaultHoldSeconds
	}
	if tracked := c.active.ScratchTime[id]; tracked != 0 {
		return tracked
	}
	if ex := c.state.ExerciseByID(id); ex != nil {
		return ex.HoldTarget()
	}
	return models.DefaultHoldSeconds
}

// FinishWorkout commits the active workout as a session dated now and
// returns to idle.
func (c *Controller) FinishWorkout() (*models.WorkoutSession, bool) {
	if c.active == nil {
		return nil, false
	}

	completedAt := c.now()
	c.active.CompletionTime = &completedAt

	ws := models.NewWorkoutSession(completedAt, c.state.Program.CurrentWeek, c.state.Program.CurrentDay, c.active.CompletedExercises)
	c.active = nil
	c.CompleteWorkout(*ws)

	c.log.WithFields(logrus.Fields{
		"session": ws.ShortID(),
		"sets":    ws.SetCount(),
	}).Info("workout finished")
	return ws, true
}

// CancelWorkout discards the active workout. Roster values already updated
// while recording sets are kept.
func (c *Controller) CancelWorkout() {
	if c.active != nil {
		c.log.Info("workout cancelled")
	}
	c.active = nil
}
