package db

import (
	"context"
	"fmt"

	"studyhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Typed load/save helpers keyed by user id. Handlers wrap each read-modify-
// write sequence in a single request, so these stay simple one-document
// operations.

// GetUserByEmail fetches a user account by email.
func GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := GetCollection(UsersCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("no user found for email %s", email)
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user account and returns its id.
func CreateUser(ctx context.Context, user *models.User) error {
	res, err := GetCollection(UsersCollection).InsertOne(ctx, user)
	if err != nil {
		return err
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// InsertTasks bulk-inserts a user's generated curriculum tasks.
func InsertTasks(ctx context.Context, userID primitive.ObjectID, tasks []models.Task) error {
	docs := make([]interface{}, len(tasks))
	for i := range tasks {
		tasks[i].UserID = userID
		docs[i] = tasks[i]
	}
	_, err := GetCollection(TasksCollection).InsertMany(ctx, docs)
	return err
}

// GetTasks returns all of a user's tasks ordered by week then subject.
func GetTasks(ctx context.Context, userID primitive.ObjectID) ([]models.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "week", Value: 1}, {Key: "subjectId", Value: 1}})
	cursor, err := GetCollection(TasksCollection).Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tasks []models.Task
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// GetTask returns one of a user's tasks by curriculum id.
func GetTask(ctx context.Context, userID primitive.ObjectID, taskID string) (*models.Task, error) {
	var task models.Task
	err := GetCollection(TasksCollection).FindOne(ctx, bson.M{"userId": userID, "taskId": taskID}).Decode(&task)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("no task %s for user", taskID)
		}
		return nil, err
	}
	return &task, nil
}

// SaveTaskCompletion persists a task's completed flag and timestamp.
func SaveTaskCompletion(ctx context.Context, userID primitive.ObjectID, task *models.Task) error {
	update := bson.M{"$set": bson.M{"completed": task.Completed, "completedAt": task.CompletedAt}}
	_, err := GetCollection(TasksCollection).UpdateOne(ctx, bson.M{"userId": userID, "taskId": task.ID}, update)
	return err
}

// DeleteTasks removes every task of a user; used by the semester reset before
// regeneration.
func DeleteTasks(ctx context.Context, userID primitive.ObjectID) error {
	_, err := GetCollection(TasksCollection).DeleteMany(ctx, bson.M{"userId": userID})
	return err
}

// InsertExams bulk-inserts a user's generated exams.
func InsertExams(ctx context.Context, userID primitive.ObjectID, exams []models.Exam) error {
	docs := make([]interface{}, len(exams))
	for i := range exams {
		exams[i].UserID = userID
		docs[i] = exams[i]
	}
	_, err := GetCollection(ExamsCollection).InsertMany(ctx, docs)
	return err
}

// GetExams returns all of a user's exams ordered by date.
func GetExams(ctx context.Context, userID primitive.ObjectID) ([]models.Exam, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := GetCollection(ExamsCollection).Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var exams []models.Exam
	if err := cursor.All(ctx, &exams); err != nil {
		return nil, err
	}
	return exams, nil
}

// DeleteExams removes every exam of a user.
func DeleteExams(ctx context.Context, userID primitive.ObjectID) error {
	_, err := GetCollection(ExamsCollection).DeleteMany(ctx, bson.M{"userId": userID})
	return err
}

type streakDoc struct {
	UserID primitive.ObjectID `bson:"userId"`
	Streak models.Streak      `bson:"streak"`
}

type statsDoc struct {
	UserID primitive.ObjectID `bson:"userId"`
	Stats  models.UserStats   `bson:"stats"`
}

// LoadStreak fetches a user's streak, falling back to a fresh one.
func LoadStreak(ctx context.Context, userID primitive.ObjectID) (models.Streak, error) {
	var doc streakDoc
	err := GetCollection(StreaksCollection).FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.NewStreak(), nil
		}
		return models.Streak{}, err
	}
	return doc.Streak, nil
}

// SaveStreak upserts a user's streak.
func SaveStreak(ctx context.Context, userID primitive.ObjectID, streak models.Streak) error {
	opts := options.Replace().SetUpsert(true)
	_, err := GetCollection(StreaksCollection).ReplaceOne(ctx, bson.M{"userId": userID}, streakDoc{UserID: userID, Streak: streak}, opts)
	return err
}

// LoadStats fetches a user's stats, falling back to fresh ones.
func LoadStats(ctx context.Context, userID primitive.ObjectID) (models.UserStats, error) {
	var doc statsDoc
	err := GetCollection(StatsCollection).FindOne(ctx, bson.M{"userId": userID}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.NewUserStats(), nil
		}
		return models.UserStats{}, err
	}
	return doc.Stats, nil
}

// SaveStats upserts a user's stats.
func SaveStats(ctx context.Context, userID primitive.ObjectID, stats models.UserStats) error {
	opts := options.Replace().SetUpsert(true)
	_, err := GetCollection(StatsCollection).ReplaceOne(ctx, bson.M{"userId": userID}, statsDoc{UserID: userID, Stats: stats}, opts)
	return err
}

// InsertGrade stores a new grade record.
func InsertGrade(ctx context.Context, grade models.Grade) error {
	_, err := GetCollection(GradesCollection).InsertOne(ctx, grade)
	return err
}

// GetGrades returns all of a user's grades, newest first.
func GetGrades(ctx context.Context, userID primitive.ObjectID) ([]models.Grade, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := GetCollection(GradesCollection).Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var grades []models.Grade
	if err := cursor.All(ctx, &grades); err != nil {
		return nil, err
	}
	return grades, nil
}

// DeleteGrade removes one grade by id.
func DeleteGrade(ctx context.Context, userID primitive.ObjectID, gradeID string) error {
	res, err := GetCollection(GradesCollection).DeleteOne(ctx, bson.M{"userId": userID, "gradeId": gradeID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("no grade %s for user", gradeID)
	}
	return nil
}

// InsertNote stores a new note.
func InsertNote(ctx context.Context, note models.Note) error {
	_, err := GetCollection(NotesCollection).InsertOne(ctx, note)
	return err
}

// GetNotes returns all of a user's notes, newest first.
func GetNotes(ctx context.Context, userID primitive.ObjectID) ([]models.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := GetCollection(NotesCollection).Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notes []models.Note
	if err := cursor.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// GetNote returns one of a user's notes by id.
func GetNote(ctx context.Context, userID primitive.ObjectID, noteID string) (*models.Note, error) {
	var note models.Note
	err := GetCollection(NotesCollection).FindOne(ctx, bson.M{"userId": userID, "noteId": noteID}).Decode(&note)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("no note %s for user", noteID)
		}
		return nil, err
	}
	return &note, nil
}

// UpdateNote saves an edited note.
func UpdateNote(ctx context.Context, userID primitive.ObjectID, note models.Note) error {
	update := bson.M{"$set": bson.M{
		"title":     note.Title,
		"content":   note.Content,
		"subjectId": note.SubjectID,
		"updatedAt": note.UpdatedAt,
	}}
	_, err := GetCollection(NotesCollection).UpdateOne(ctx, bson.M{"userId": userID, "noteId": note.ID}, update)
	return err
}

// DeleteNote removes one note by id.
func DeleteNote(ctx context.Context, userID primitive.ObjectID, noteID string) error {
	res, err := GetCollection(NotesCollection).DeleteOne(ctx, bson.M{"userId": userID, "noteId": noteID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("no note %s for user", noteID)
	}
	return nil
}
