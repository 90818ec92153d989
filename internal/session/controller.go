// ABOUTME: Workout session controller: owns the persisted WorkoutState and the active workout.
// ABOUTME: Every mutation of persisted state ends with an explicit persist call.
package session

import (
	"errors"
	"time"

	"github.com/harperreed/hypertrophy/internal/models"
	"github.com/harperreed/hypertrophy/internal/progression"
	"github.com/sirupsen/logrus"
)

// ReasonNothingScheduled is returned when the current day has no exercises.
const ReasonNothingScheduled = "No exercises found for current day"

// Persister saves state after a mutation. Save reports success; failures are
// the persister's to log.
type Persister interface {
	Save(state *models.WorkoutState) bool
}

// Result is the outcome of an operation that can be refused.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func ok() Result {
	return Result{Success: true}
}

func refused(reason string) Result {
	return Result{Success: false, Error: reason}
}

// Progress describes the cursor position within the current exercise.
type Progress struct {
	CurrentSet    int                   `json:"currentSet"`
	TotalSets     int                   `json:"totalSets"`
	CompletedSets []models.CompletedSet `json:"completedSets"`
}

// Controller drives the program and the in-progress workout.
// It is not safe for concurrent use.
type Controller struct {
	state     *models.WorkoutState
	active    *Active
	scheme    progression.Scheme
	persister Persister
	now       func() time.Time
	log       logrus.FieldLogger
}

// Option configures a Controller.
type Option func(*Controller)

// WithScheme sets the progression scheme. Defaults to progression.DefaultScheme.
func WithScheme(s progression.Scheme) Option {
	return func(c *Controller) { c.scheme = s }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithLogger sets the logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Controller) { c.log = log }
}

// New creates a controller over state. A nil state starts a fresh program.
// A nil persister discards saves.
func New(state *models.WorkoutState, p Persister, opts ...Option) *Controller {
	c := &Controller{
		scheme:    progression.DefaultScheme(),
		persister: p,
		now:       func() time.Time { return time.Now().UTC() },
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.WithField("component", "session")

	if state == nil {
		state = models.NewInitialState(c.scheme.FirstDay())
	}
	c.state = state
	return c
}

func (c *Controller) persist() {
	if c.persister == nil {
		return
	}
	c.persister.Save(c.state)
}

// State returns the persisted state. Callers must not modify it.
func (c *Controller) State() *models.WorkoutState {
	return c.state
}

// Scheme returns the progression scheme in use.
func (c *Controller) Scheme() progression.Scheme {
	return c.scheme
}

// Week returns the current program week.
func (c *Controller) Week() int {
	return c.state.Program.CurrentWeek
}

// Day returns the current rotation day.
func (c *Controller) Day() models.Day {
	return c.state.Program.CurrentDay
}

// Unit returns the display unit.
func (c *Controller) Unit() models.WeightUnit {
	return c.state.User.Unit
}

// CurrentDayExercises returns the roster entries scheduled for the current day.
func (c *Controller) CurrentDayExercises() []models.Exercise {
	return c.state.ExercisesForDay(c.state.Program.CurrentDay)
}

// NextDayExercises returns the roster entries scheduled for the following day.
func (c *Controller) NextDayExercises() []models.Exercise {
	return c.state.ExercisesForDay(c.scheme.NextDay(c.state.Program.CurrentDay))
}

// TargetWeightFor returns the target weight of an exercise this week, or 0
// when the exercise is unknown.
func (c *Controller) TargetWeightFor(id int) float64 {
	ex := c.state.ExerciseByID(id)
	if ex == nil {
		return 0
	}
	return c.scheme.TargetWeight(*ex, c.state.Program.CurrentWeek, c.state.User.Unit)
}

// TargetRepsForWeek returns the target reps for the current week.
func (c *Controller) TargetRepsForWeek() int {
	return c.scheme.TargetReps(c.state.Program.CurrentWeek)
}

// TargetSetsForWeek returns the target set count.
func (c *Controller) TargetSetsForWeek() int {
	return c.scheme.TargetSets()
}

// UpdateUser changes the profile. An unknown unit is refused.
func (c *Controller) UpdateUser(name string, unit models.WeightUnit) bool {
	if !models.IsValidWeightUnit(string(unit)) {
		return false
	}
	c.state.User.Name = name
	c.state.User.Unit = unit
	c.persist()
	return true
}

// UpdateExerciseWeight sets an exercise's current weight.
func (c *Controller) UpdateExerciseWeight(id int, weight float64) bool {
	ex := c.state.ExerciseByID(id)
	if ex == nil {
		return false
	}
	ex.CurrentWeight = weight
	c.persist()
	return true
}

// UpdateExerciseBaseWeight sets the base weight and resets the current weight to it.
func (c *Controller) UpdateExerciseBaseWeight(id int, weight float64) bool {
	ex := c.state.ExerciseByID(id)
	if ex == nil {
		return false
	}
	ex.BaseWeight = weight
	ex.CurrentWeight = weight
	c.persist()
	return true
}

// UpdateExerciseBaseReps sets the base reps and resets the current reps to it.
func (c *Controller) UpdateExerciseBaseReps(id, reps int) bool {
	ex := c.state.ExerciseByID(id)
	if ex == nil {
		return false
	}
	ex.BaseReps = reps
	ex.CurrentReps = reps
	c.persist()
	return true
}

// UpdateExerciseBaseTime sets the base hold-time and resets the current hold-time to it.
func (c *Controller) UpdateExerciseBaseTime(id, seconds int) bool {
	ex := c.state.ExerciseByID(id)
	if ex == nil {
		return false
	}
	ex.BaseTime = seconds
	ex.CurrentTime = seconds
	c.persist()
	return true
}

// ResetProgram discards all progress and history, including any active workout.
func (c *Controller) ResetProgram() {
	c.state = models.NewInitialState(c.scheme.FirstDay())
	c.active = nil
	c.persist()
}

// CompleteWorkout commits a finished session: it is appended to history, the
// roster takes each exercise's best value from the session, and the program
// moves one rotation step forward.
func (c *Controller) CompleteWorkout(ws models.WorkoutSession) {
	c.state.WorkoutHistory = append(c.state.WorkoutHistory, ws)

	for _, ce := range ws.Exercises {
		ex := c.state.ExerciseByID(ce.ExerciseID)
		if ex == nil || len(ce.Sets) == 0 {
			continue
		}
		applySessionBest(ex, ce.Sets)
	}

	date := ws.Date
	prog := &c.state.Program
	prog.LastWorkoutDate = &date
	prog.TotalWorkoutsCompleted++

	if c.scheme.ShouldAdvanceWeek(prog.CurrentDay, true) {
		if prog.CurrentWeek < c.scheme.ProgramLength {
			prog.CurrentWeek++
		}
		prog.CurrentDay = c.scheme.FirstDay()
	} else {
		prog.CurrentDay = c.scheme.NextDay(prog.CurrentDay)
	}

	c.persist()
}

func applySessionBest(ex *models.Exercise, sets []models.CompletedSet) {
	switch ex.Discipline() {
	case models.TrackReps:
		if best := maxReps(sets); best > 0 {
			ex.CurrentReps = best
		}
	case models.TrackTime:
		if best := maxTime(sets); best > 0 {
			ex.CurrentTime = best
		}
	default:
		ex.CurrentWeight = maxWeight(sets)
	}
}

func maxWeight(sets []models.CompletedSet) float64 {
	best := sets[0].Weight
	for _, s := range sets[1:] {
		if s.Weight > best {
			best = s.Weight
		}
	}
	return best
}

// maxReps returns the highest positive rep count, or 0.
func maxReps(sets []models.CompletedSet) int {
	best := 0
	for _, s := range sets {
		if s.Reps > best {
			best = s.Reps
		}
	}
	return best
}

func maxTime(sets []models.CompletedSet) int {
	best := 0
	for _, s := range sets {
		if s.Time != nil && *s.Time > best {
			best = *s.Time
		}
	}
	return best
}

// Export serializes the persisted state as indented JSON.
func (c *Controller) Export() ([]byte, error) {
	return models.ExportJSON(c.state)
}

// Import replaces the persisted state with exported JSON. It is refused while
// a workout is active or when the data has the wrong shape.
func (c *Controller) Import(data []byte) Result {
	if c.active != nil {
		return refused(models.ReasonWorkoutActive)
	}

	imported, err := models.ImportJSON(data)
	if err != nil {
		var ie *models.ImportError
		if errors.As(err, &ie) {
			c.log.WithError(err).Warn("import refused")
			return refused(ie.Reason)
		}
		return refused(err.Error())
	}

	c.state = imported
	c.persist()
	return ok()
}
