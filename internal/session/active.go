// ABOUTME: Transient state of an in-progress workout.
// ABOUTME: Holds the cursor, per-exercise set accumulators, and scratch reps/time.
package session

import (
	"time"

	"github.com/harperreed/hypertrophy/internal/models"
)

// Active is the in-progress workout. It is never persisted.
type Active struct {
	ExerciseIDs        []int                      `json:"exerciseIds"`
	ExerciseIndex      int                        `json:"currentExerciseIndex"`
	CurrentSet         int                        `json:"currentSet"`
	CompletedExercises []models.CompletedExercise `json:"completedExercises"`
	ScratchReps        map[int]int                `json:"currentReps"`
	ScratchTime        map[int]int                `json:"currentTime"`
	StartTime          time.Time                  `json:"startTime"`
	CompletionTime     *time.Time                 `json:"completionDate"`
}

func newActive(exercises []models.Exercise, start time.Time) *Active {
	a := &Active{
		ExerciseIDs:        make([]int, 0, len(exercises)),
		CurrentSet:         1,
		CompletedExercises: make([]models.CompletedExercise, 0, len(exercises)),
		ScratchReps:        make(map[int]int),
		ScratchTime:        make(map[int]int),
		StartTime:          start,
	}
	for _, ex := range exercises {
		a.ExerciseIDs = append(a.ExerciseIDs, ex.ID)
		a.CompletedExercises = append(a.CompletedExercises, models.CompletedExercise{
			ExerciseID: ex.ID,
			Sets:       []models.CompletedSet{},
		})
		if ex.Discipline() == models.TrackTime {
			a.ScratchTime[ex.ID] = ex.HoldTarget()
		}
	}
	return a
}

func (a *Active) completedFor(id int) *models.CompletedExercise {
	for i := range a.CompletedExercises {
		if a.CompletedExercises[i].ExerciseID == id {
			return &a.CompletedExercises[i]
		}
	}
	return nil
}

func (a *Active) scheduled(id int) bool {
	return a.completedFor(id) != nil
}

func (a *Active) isLastExercise() bool {
	return a.ExerciseIndex == len(a.ExerciseIDs)-1
}

// clone returns a deep copy safe to hand to callers.
func (a *Active) clone() *Active {
	c := *a
	c.ExerciseIDs = append([]int(nil), a.ExerciseIDs...)
	c.CompletedExercises = make([]models.CompletedExercise, len(a.CompletedExercises))
	for i, ce := range a.CompletedExercises {
		c.CompletedExercises[i] = models.CompletedExercise{
			ExerciseID: ce.ExerciseID,
			Sets:       append([]models.CompletedSet{}, ce.Sets...),
		}
	}
	c.ScratchReps = make(map[int]int, len(a.ScratchReps))
	for k, v := range a.ScratchReps {
		c.ScratchReps[k] = v
	}
	c.ScratchTime = make(map[int]int, len(a.ScratchTime))
	for k, v := range a.ScratchTime {
		c.ScratchTime[k] = v
	}
	if a.CompletionTime != nil {
		t := *a.CompletionTime
		c.CompletionTime = &t
	}
	return &c
}
