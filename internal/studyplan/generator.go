package studyplan

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/prepwise/satprep/internal/skillgraph"
)

// Scheduling constants.
const (
	questionsPerTask = 20
	maxTasksPerDay   = 3
	mockExamMinutes  = 134
	drillMinutes     = 35

	// Per-question pacing assumptions, in minutes.
	mathMinutesPerQuestion = 2.0
	rwMinutesPerQuestion   = 1.5

	// Math gets extra weight on coin-flip days when the learner is behind
	// their goal score.
	mathBiasBehindGoal = 0.6
	mathBiasNeutral    = 0.5
)

// Generator builds study plans over a skill catalog. Like the adaptive
// engine it is owned by a single caller and performs one synchronous
// scheduling pass per Generate call, with no partial state kept between
// invocations.
type Generator struct {
	graph *skillgraph.Graph
	rng   *rand.Rand
	now   func() time.Time
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithRand injects a seeded random source for reproducible schedules.
func WithRand(r *rand.Rand) GeneratorOption {
	return func(g *Generator) { g.rng = r }
}

// WithClock injects the time source used for "today" and timestamps.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) { g.now = now }
}

// NewGenerator creates a plan generator over the given skill catalog.
func NewGenerator(graph *skillgraph.Graph, opts ...GeneratorOption) *Generator {
	g := &Generator{
		graph: graph,
		rng:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds a complete date-stamped task list from the learner's goals
// and estimated current score. Validation failures return the sentinel
// errors from errors.go; if generation fails partway no plan is returned.
func (g *Generator) Generate(userID string, currentScore int, opts Options) (*Plan, error) {
	now := g.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	daysUntil := int(math.Ceil(opts.TestDate.Sub(today).Hours() / 24))
	if daysUntil <= 0 {
		return nil, ErrTestDateInPast
	}

	studyDaysCount := 0
	for _, active := range opts.StudyDays {
		if active {
			studyDaysCount++
		}
	}
	if studyDaysCount == 0 {
		return nil, ErrNoStudyDays
	}

	mathSkills := g.graph.BySubject(skillgraph.SubjectMath)
	rwSkills := g.graph.BySubject(skillgraph.SubjectReadingWriting)
	if len(mathSkills) == 0 && len(rwSkills) == 0 {
		return nil, ErrNoSkills
	}

	totalStudyDays := int(float64(daysUntil) / 7 * float64(studyDaysCount))
	if totalStudyDays < 1 {
		totalStudyDays = 1
	}

	// Phase boundaries over study-day indices: first 30% foundation, next
	// 40% strengthening, rest mastery. Foundation gets at least one day and
	// strengthening at least one day past it.
	foundationEnd := int(float64(totalStudyDays) * 0.3)
	if foundationEnd < 1 {
		foundationEnd = 1
	}
	strengtheningEnd := int(float64(totalStudyDays) * 0.7)
	if strengtheningEnd <= foundationEnd {
		strengtheningEnd = foundationEnd + 1
	}

	mathBias := mathBiasNeutral
	if opts.DreamScore > currentScore {
		mathBias = mathBiasBehindGoal
	}

	sched := &schedule{
		gen:        g,
		studyHours: opts.StudyHours,
		mathSkills: mathSkills,
		rwSkills:   rwSkills,
	}

	var tasks []DailyTask
	mockCount := 0
	mockCap := totalStudyDays / 7
	studyDay := 0
	date := today

	// One calendar step per iteration. The cap guards against pathological
	// weekday selections that would otherwise never place a slot.
	for iter := 0; studyDay < totalStudyDays && iter < daysUntil*2; iter++ {
		if !date.Before(opts.TestDate) {
			break
		}
		if !opts.StudyDays[date.Weekday()] {
			date = date.AddDate(0, 0, 1)
			continue
		}

		phase := phaseForDay(studyDay, foundationEnd, strengtheningEnd)

		if studyDay > 0 && studyDay%7 == 0 && mockCount < mockCap {
			tasks = append(tasks, mockExamTask(date, phase))
			mockCount++
			studyDay++
			date = date.AddDate(0, 0, 1)
			continue
		}

		subject := skillgraph.SubjectReadingWriting
		if studyDay%2 == 0 || g.rng.Float64() < mathBias {
			subject = skillgraph.SubjectMath
		}

		tasks = append(tasks, sched.dayTasks(date, studyDay, phase, subject)...)
		studyDay++
		date = date.AddDate(0, 0, 1)
	}

	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}

	plan := &Plan{
		ID:             uuid.NewString(),
		UserID:         userID,
		TestDate:       opts.TestDate,
		CurrentScore:   currentScore,
		DreamScore:     opts.DreamScore,
		StudyDays:      opts.StudyDays,
		StudyHours:     opts.StudyHours,
		TotalDays:      daysUntil,
		StudyDaysCount: studyDaysCount,
		DailyTasks:     tasks,
		Phases:         countPhaseDays(tasks),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return plan, nil
}

func phaseForDay(studyDay, foundationEnd, strengtheningEnd int) Phase {
	switch {
	case studyDay < foundationEnd:
		return PhaseFoundation
	case studyDay < strengtheningEnd:
		return PhaseStrengthening
	default:
		return PhaseMastery
	}
}

// schedule carries the per-subject round-robin cursors across study days.
type schedule struct {
	gen        *Generator
	studyHours float64
	mathSkills []skillgraph.Skill
	rwSkills   []skillgraph.Skill
	mathIdx    int
	rwIdx      int
}

// dayTasks generates the task list for one non-mock study day.
func (s *schedule) dayTasks(date time.Time, studyDay int, phase Phase, subject skillgraph.Subject) []DailyTask {
	switch phase {
	case PhaseFoundation:
		return s.foundationTasks(date, subject)
	case PhaseStrengthening:
		if studyDay%3 == 0 {
			return []DailyTask{s.reviewTask(date, subject)}
		}
		return []DailyTask{s.skillTask(date, subject, TaskSkillFocus, PhaseStrengthening, s.nextSkill(subject))}
	default:
		if studyDay%4 == 0 {
			return []DailyTask{s.drillTask(date, subject)}
		}
		return []DailyTask{s.skillTask(date, subject, TaskPractice, PhaseMastery, s.randomSkill(subject))}
	}
}

// foundationTasks covers the catalog systematically, one to three tasks per
// day depending on the daily time budget.
func (s *schedule) foundationTasks(date time.Time, subject skillgraph.Subject) []DailyTask {
	taskMinutes := taskMinutesFor(subject)
	taskCount := int(s.studyHours * 60 / float64(taskMinutes))
	if taskCount < 1 {
		taskCount = 1
	}
	if taskCount > maxTasksPerDay {
		taskCount = maxTasksPerDay
	}

	tasks := make([]DailyTask, 0, taskCount)
	for i := 0; i < taskCount; i++ {
		tasks = append(tasks, s.skillTask(date, subject, TaskPractice, PhaseFoundation, s.nextSkill(subject)))
	}
	return tasks
}

// skillTask builds one 20-question task for a skill. A zero-value skill
// produces the generic fallback task used when the subject catalog is empty.
func (s *schedule) skillTask(date time.Time, subject skillgraph.Subject, taskType TaskType, phase Phase, skill skillgraph.Skill) DailyTask {
	task := DailyTask{
		ID:               uuid.NewString(),
		Date:             date,
		Type:             taskType,
		Subject:          subject,
		Questions:        questionsPerTask,
		EstimatedMinutes: taskMinutesFor(subject),
		Phase:            phase,
	}
	if skill.ID == "" {
		task.Title = fmt.Sprintf("%s practice", subjectLabel(subject))
		task.Description = fmt.Sprintf("Answer %d %s questions", questionsPerTask, subjectLabel(subject))
		return task
	}
	task.Skill = skill.ID
	task.Domain = skill.Domain
	task.Title = skill.Name
	task.Description = fmt.Sprintf("Practice %d questions on %s", questionsPerTask, skill.Name)
	return task
}

func (s *schedule) reviewTask(date time.Time, subject skillgraph.Subject) DailyTask {
	minutes := int(s.studyHours * 60 * 0.5)
	if minutes < 30 {
		minutes = 30
	}
	return DailyTask{
		ID:               uuid.NewString(),
		Date:             date,
		Type:             TaskReview,
		Subject:          subject,
		Title:            "Review Mistakes",
		Description:      "Revisit recently missed questions and rework them",
		EstimatedMinutes: minutes,
		Phase:            PhaseStrengthening,
	}
}

func (s *schedule) drillTask(date time.Time, subject skillgraph.Subject) DailyTask {
	return DailyTask{
		ID:               uuid.NewString(),
		Date:             date,
		Type:             TaskDrill,
		Subject:          subject,
		Title:            "Timed Drill",
		Description:      fmt.Sprintf("Answer %d %s questions under time pressure", questionsPerTask, subjectLabel(subject)),
		Questions:        questionsPerTask,
		EstimatedMinutes: drillMinutes,
		Phase:            PhaseMastery,
	}
}

func mockExamTask(date time.Time, phase Phase) DailyTask {
	return DailyTask{
		ID:               uuid.NewString(),
		Date:             date,
		Type:             TaskMockExam,
		Subject:          SubjectBoth,
		Title:            "Full-Length Mock Exam",
		Description:      "Complete a full-length practice test under exam conditions",
		EstimatedMinutes: mockExamMinutes,
		Phase:            phase,
	}
}

// nextSkill advances the round-robin cursor for a subject. Returns the zero
// skill when the subject catalog is empty.
func (s *schedule) nextSkill(subject skillgraph.Subject) skillgraph.Skill {
	skills, idx := s.rwSkills, &s.rwIdx
	if subject == skillgraph.SubjectMath {
		skills, idx = s.mathSkills, &s.mathIdx
	}
	if len(skills) == 0 {
		return skillgraph.Skill{}
	}
	skill := skills[*idx%len(skills)]
	*idx++
	return skill
}

// randomSkill picks a uniformly random skill for a subject.
func (s *schedule) randomSkill(subject skillgraph.Subject) skillgraph.Skill {
	skills := s.rwSkills
	if subject == skillgraph.SubjectMath {
		skills = s.mathSkills
	}
	if len(skills) == 0 {
		return skillgraph.Skill{}
	}
	return skills[s.gen.rng.IntN(len(skills))]
}

func taskMinutesFor(subject skillgraph.Subject) int {
	if subject == skillgraph.SubjectMath {
		return int(questionsPerTask * mathMinutesPerQuestion)
	}
	return int(questionsPerTask * rwMinutesPerQuestion)
}

func subjectLabel(subject skillgraph.Subject) string {
	if subject == skillgraph.SubjectMath {
		return "math"
	}
	return "reading and writing"
}

// countPhaseDays tallies distinct calendar dates by the phase of each
// date's first task. The generator never splits one date across phases, so
// first-task phase is the date's phase.
func countPhaseDays(tasks []DailyTask) PhaseCounts {
	var counts PhaseCounts
	seen := make(map[string]bool)
	for _, task := range tasks {
		key := task.Date.Format("2006-01-02")
		if seen[key] {
			continue
		}
		seen[key] = true
		switch task.Phase {
		case PhaseFoundation:
			counts.Foundation++
		case PhaseStrengthening:
			counts.Strengthening++
		case PhaseMastery:
			counts.Mastery++
		}
	}
	return counts
}
