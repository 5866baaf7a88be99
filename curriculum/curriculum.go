// Package curriculum deterministically produces the full task and exam list
// for a semester from the static topic tables.
package curriculum

import (
	"fmt"
	"math/rand"

	"studyhub/models"
	"studyhub/semester"
)

const (
	minEstimatedMinutes  = 45
	estimatedMinutesSpan = 30 // estimates land in [45,74]
)

// examDayOffsets staggers each subject's exams across the exam week.
var examDayOffsets = map[models.Subject]int{
	models.SubjectMaths:     0,
	models.SubjectPhysics:   1,
	models.SubjectChemistry: 2,
	models.SubjectEnglish:   3,
}

// GenerateTasks emits one task per subject per week: 9 term-1 and 8 term-2
// tasks for each of the 4 subjects, 68 in total. Ids, weeks, terms, titles
// and descriptions are deterministic; only the estimated minutes are
// randomized.
func GenerateTasks(year int) []models.Task {
	sem := semester.ForYear(year)
	tasks := make([]models.Task, 0, len(models.AllSubjects)*semester.TotalWeeks)

	for _, subject := range models.AllSubjects {
		topics := topicTables[subject]
		for week := 1; week <= semester.TotalWeeks; week++ {
			topic := topics[week-1]
			r, _ := sem.WeekDateRange(week)
			tasks = append(tasks, models.Task{
				ID:               TaskID(subject, week),
				SubjectID:        subject,
				Week:             week,
				Term:             semester.TermOfWeek(week),
				Title:            topic,
				Description:      fmt.Sprintf("%s week %d: work through %q and review your notes.", subjectNames[subject], week, topic),
				EstimatedMinutes: minEstimatedMinutes + rand.Intn(estimatedMinutesSpan),
				DueDate:          r.Start,
			})
		}
	}
	return tasks
}

// GenerateExams emits the fixed assessments: a term-1 test in week 9 and a
// semester exam in week 17 per subject, staggered by fixed day offsets.
func GenerateExams(year int) []models.Exam {
	sem := semester.ForYear(year)
	exams := make([]models.Exam, 0, len(models.AllSubjects)*2)

	term1Range, _ := sem.WeekDateRange(semester.Term1Weeks)
	finalRange, _ := sem.WeekDateRange(semester.TotalWeeks)

	for _, subject := range models.AllSubjects {
		name := subjectNames[subject]
		offset := examDayOffsets[subject]
		exams = append(exams,
			models.Exam{
				ID:          ExamID(subject, 1),
				SubjectID:   subject,
				Title:       fmt.Sprintf("%s Term 1 Test", name),
				Date:        term1Range.Start.AddDate(0, 0, offset),
				Week:        semester.Term1Weeks,
				Term:        1,
				Description: fmt.Sprintf("Covers all %s term 1 topics.", name),
			},
			models.Exam{
				ID:          ExamID(subject, 2),
				SubjectID:   subject,
				Title:       fmt.Sprintf("%s Semester Exam", name),
				Date:        finalRange.Start.AddDate(0, 0, offset),
				Week:        semester.TotalWeeks,
				Term:        2,
				Description: fmt.Sprintf("Covers the full %s semester curriculum.", name),
			},
		)
	}
	return exams
}

// TaskID builds the deterministic id for a subject/week task.
func TaskID(subject models.Subject, week int) string {
	return fmt.Sprintf("%s-w%02d", subject, week)
}

// ExamID builds the deterministic id for a subject's term exam.
func ExamID(subject models.Subject, term int) string {
	return fmt.Sprintf("%s-exam-t%d", subject, term)
}
