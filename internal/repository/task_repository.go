package repository

import (
	"context"
	"database/sql"
	"fmt"

	"taskboard/internal/models"
	"taskboard/pkg/db"
	"taskboard/pkg/jalali"
)

// TaskRepositoryInterface defines the store operations the calendar needs
type TaskRepositoryInterface interface {
	ListTasks(ctx context.Context, ownerID uint64, from, to jalali.GregorianDate) ([]models.Task, error)
	ListProjects(ctx context.Context, ownerID uint64) ([]models.Project, error)
	CanView(ctx context.Context, ownerID, viewerID uint64) (bool, error)
}

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `SELECT tasks.id, tasks.owner_id, tasks.project_id, tasks.title,
	DATE_FORMAT(tasks.date, '%Y-%m-%d'), DATE_FORMAT(tasks.start_date, '%Y-%m-%d'),
	DATE_FORMAT(tasks.end_date, '%Y-%m-%d'), DATE_FORMAT(tasks.deadline, '%Y-%m-%d'),
	TIME_FORMAT(tasks.start_time, '%H:%i'), tasks.priority, tasks.status, tasks.is_private, tasks.created_at
	FROM tasks`

// ListTasks returns the owner's tasks that may appear between from and to (inclusive):
// those dated inside the window and those whose range overlaps it.
// Rows are ordered by start time, untimed tasks last.
func (r *TaskRepository) ListTasks(ctx context.Context, ownerID uint64, from, to jalali.GregorianDate) ([]models.Task, error) {
	start, end := from.String(), to.String()

	rows, err := db.NewSoftDeleteQuery(taskColumns, "tasks").
		Where("tasks.owner_id = ?", ownerID).
		Where(`((tasks.date BETWEEN ? AND ?)
		OR (tasks.start_date <= ? AND GREATEST(tasks.start_date, COALESCE(tasks.end_date, tasks.deadline, tasks.start_date)) >= ?))`,
			start, end, end, start).
		OrderBy("tasks.start_time IS NULL, tasks.start_time, tasks.id").
		QueryRows(ctx, r.db)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var (
			t                                  models.Task
			projectID                          sql.NullInt64
			date, startDate, endDate, deadline sql.NullString
			startTime, priority, status        sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.OwnerID, &projectID, &t.Title,
			&date, &startDate, &endDate, &deadline,
			&startTime, &priority, &status, &t.IsPrivate, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}

		if projectID.Valid {
			id := uint64(projectID.Int64)
			t.ProjectID = &id
		}
		t.Date = date.String
		t.StartDate = startDate.String
		t.EndDate = endDate.String
		t.Deadline = deadline.String
		t.StartTime = startTime.String
		t.Priority = priority.String
		t.Status = status.String

		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}

	return tasks, nil
}

// ListProjects returns the owner's projects
func (r *TaskRepository) ListProjects(ctx context.Context, ownerID uint64) ([]models.Project, error) {
	rows, err := db.NewSoftDeleteQuery("SELECT projects.id, projects.name, projects.status FROM projects", "projects").
		Where("projects.owner_id = ?", ownerID).
		OrderBy("projects.name").
		QueryRows(ctx, r.db)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		var status sql.NullString
		if err := rows.Scan(&p.ID, &p.Name, &status); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		p.Status = status.String
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read projects: %w", err)
	}

	return projects, nil
}

// CanView reports whether viewerID may see ownerID's calendar.
// Members always see their own; others need a task_access grant.
func (r *TaskRepository) CanView(ctx context.Context, ownerID, viewerID uint64) (bool, error) {
	if ownerID == viewerID {
		return true, nil
	}

	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM task_access WHERE owner_id = ? AND viewer_id = ?",
		ownerID, viewerID,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check task access: %w", err)
	}

	return count > 0, nil
}

// Schemas lists the tables the repository reads, for the startup schema guard
func Schemas() []db.TableSchema {
	return []db.TableSchema{
		{
			Name: "tasks",
			Columns: []db.ColumnType{
				{Name: "id", DataType: "bigint"},
				{Name: "owner_id", DataType: "bigint"},
				{Name: "project_id", DataType: "bigint", Nullable: true},
				{Name: "title", DataType: "varchar"},
				{Name: "date", DataType: "date", Nullable: true},
				{Name: "start_date", DataType: "date", Nullable: true},
				{Name: "end_date", DataType: "date", Nullable: true},
				{Name: "deadline", DataType: "date", Nullable: true},
				{Name: "start_time", DataType: "time", Nullable: true},
				{Name: "is_private", DataType: "tinyint"},
				{Name: "deleted_at", DataType: "timestamp", Nullable: true},
			},
		},
		{
			Name: "projects",
			Columns: []db.ColumnType{
				{Name: "id", DataType: "bigint"},
				{Name: "owner_id", DataType: "bigint"},
				{Name: "name", DataType: "varchar"},
				{Name: "status", DataType: "varchar", Nullable: true},
				{Name: "deleted_at", DataType: "timestamp", Nullable: true},
			},
		},
		{
			Name: "task_access",
			Columns: []db.ColumnType{
				{Name: "owner_id", DataType: "bigint"},
				{Name: "viewer_id", DataType: "bigint"},
			},
		},
	}
}
