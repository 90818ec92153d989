// ABOUTME: JSON views of controller state returned by tools and resources.
// ABOUTME: Views are built while holding the server lock.
package mcp

import (
	"time"

	"github.com/harperreed/hypertrophy/internal/models"
	"github.com/harperreed/hypertrophy/internal/session"
)

type exerciseTarget struct {
	ID           int                 `json:"id"`
	Name         string              `json:"name"`
	Day          models.Day          `json:"day"`
	TrackingType models.TrackingType `json:"tracking_type"`
	TargetWeight float64             `json:"target_weight,omitempty"`
	TargetReps   int                 `json:"target_reps,omitempty"`
	TargetTime   int                 `json:"target_time,omitempty"`
}

type statusView struct {
	User                   models.User      `json:"user"`
	Week                   int              `json:"week"`
	ProgramLength          int              `json:"program_length"`
	Day                    models.Day       `json:"day"`
	NextDay                models.Day       `json:"next_day"`
	TotalWorkoutsCompleted int              `json:"total_workouts_completed"`
	LastWorkoutDate        *time.Time       `json:"last_workout_date,omitempty"`
	WorkoutActive          bool             `json:"workout_active"`
	Today                  []exerciseTarget `json:"today"`
}

type targetsView struct {
	Week      int               `json:"week"`
	Sets      int               `json:"sets"`
	Reps      int               `json:"reps"`
	Unit      models.WeightUnit `json:"unit"`
	Exercises []exerciseTarget  `json:"exercises"`
}

type exerciseProgress struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	SetsDone int    `json:"sets_done"`
	Complete bool   `json:"complete"`
}

type activeView struct {
	Exercise                models.Exercise       `json:"exercise"`
	ExerciseIndex           int                   `json:"exercise_index"`
	CurrentSet              int                   `json:"current_set"`
	TotalSets               int                   `json:"total_sets"`
	CompletedSets           []models.CompletedSet `json:"completed_sets"`
	TargetWeight            float64               `json:"target_weight"`
	TargetReps              int                   `json:"target_reps"`
	ScratchReps             int                   `json:"scratch_reps,omitempty"`
	ScratchTime             int                   `json:"scratch_time,omitempty"`
	CanGoNext               bool                  `json:"can_go_next"`
	CanGoPrevious           bool                  `json:"can_go_previous"`
	IsLastExerciseOfLastSet bool                  `json:"is_last_exercise_of_last_set"`
	IsWorkoutComplete       bool                  `json:"is_workout_complete"`
	StartedAt               time.Time             `json:"started_at"`
	Exercises               []exerciseProgress    `json:"exercises"`
}

func targetFor(ctrl *session.Controller, ex models.Exercise, week int) exerciseTarget {
	scheme := ctrl.Scheme()
	t := exerciseTarget{
		ID:           ex.ID,
		Name:         ex.Name,
		Day:          ex.WorkoutDay,
		TrackingType: ex.Discipline(),
	}
	switch ex.Discipline() {
	case models.TrackReps:
		t.TargetReps = ex.RepsTarget()
	case models.TrackTime:
		t.TargetTime = ex.HoldTarget()
	default:
		t.TargetWeight = scheme.TargetWeight(ex, week, ctrl.Unit())
		t.TargetReps = scheme.TargetReps(week)
	}
	return t
}

func buildStatus(ctrl *session.Controller) statusView {
	st := ctrl.State()
	v := statusView{
		User:                   st.User,
		Week:                   ctrl.Week(),
		ProgramLength:          ctrl.Scheme().ProgramLength,
		Day:                    ctrl.Day(),
		NextDay:                ctrl.Scheme().NextDay(ctrl.Day()),
		TotalWorkoutsCompleted: st.Program.TotalWorkoutsCompleted,
		LastWorkoutDate:        st.Program.LastWorkoutDate,
		WorkoutActive:          ctrl.IsActive(),
		Today:                  []exerciseTarget{},
	}
	for _, ex := range ctrl.CurrentDayExercises() {
		v.Today = append(v.Today, targetFor(ctrl, ex, ctrl.Week()))
	}
	return v
}

func buildTargets(ctrl *session.Controller, week int) targetsView {
	scheme := ctrl.Scheme()
	v := targetsView{
		Week:      week,
		Sets:      scheme.TargetSets(),
		Reps:      scheme.TargetReps(week),
		Unit:      ctrl.Unit(),
		Exercises: []exerciseTarget{},
	}
	for _, ex := range ctrl.State().Exercises {
		v.Exercises = append(v.Exercises, targetFor(ctrl, ex, week))
	}
	return v
}

// buildActive returns nil when no workout is in progress.
func buildActive(ctrl *session.Controller) *activeView {
	active := ctrl.Active()
	if active == nil {
		return nil
	}
	ex, ok := ctrl.CurrentExercise()
	if !ok {
		return nil
	}
	progress, _ := ctrl.CurrentProgress()

	v := &activeView{
		Exercise:                ex,
		ExerciseIndex:           active.ExerciseIndex,
		CurrentSet:              progress.CurrentSet,
		TotalSets:               progress.TotalSets,
		CompletedSets:           progress.CompletedSets,
		TargetWeight:            ctrl.TargetWeightFor(ex.ID),
		TargetReps:              ctrl.TargetRepsForWeek(),
		CanGoNext:               ctrl.CanGoNext(),
		CanGoPrevious:           ctrl.CanGoPrevious(),
		IsLastExerciseOfLastSet: ctrl.IsLastExerciseOfLastSet(),
		IsWorkoutComplete:       ctrl.IsWorkoutComplete(),
		StartedAt:               active.StartTime,
	}
	switch ex.Discipline() {
	case models.TrackReps:
		v.ScratchReps = ctrl.ScratchReps(ex.ID)
	case models.TrackTime:
		v.ScratchTime = ctrl.ScratchTime(ex.ID)
	}

	for _, ce := range active.CompletedExercises {
		p := exerciseProgress{
			ID:       ce.ExerciseID,
			SetsDone: len(ce.Sets),
			Complete: ctrl.IsExerciseComplete(ce.ExerciseID),
		}
		if rosterEx := ctrl.State().ExerciseByID(ce.ExerciseID); rosterEx != nil {
			p.Name = rosterEx.Name
		}
		v.Exercises = append(v.Exercises, p)
	}
	return v
}

// recentSessions returns up to limit sessions, newest first.
func recentSessions(st *models.WorkoutState, limit int) []models.WorkoutSession {
	history := st.WorkoutHistory
	out := make([]models.WorkoutSession, 0, limit)
	for i := len(history) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, history[i])
	}
	return out
}
