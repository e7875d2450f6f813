// file: internals/features/workflow/tasks/controller/task_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helpers "agencehub_backend/internals/helpers"

	taskDTO "agencehub_backend/internals/features/workflow/tasks/dto"
	taskModel "agencehub_backend/internals/features/workflow/tasks/model"
)

type TaskController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTaskController(db *gorm.DB, v *validator.Validate) *TaskController {
	return &TaskController{DB: db, Validator: v}
}

// =============================
// POST /tasks
// =============================
func (ctrl *TaskController) Create(c *fiber.Ctx) error {
	var req taskDTO.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	m, err := req.ToModel()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	// kartu baru masuk ke ujung kolomnya
	if req.TaskPosition == nil {
		var maxPos int64
		ctrl.DB.Model(&taskModel.Task{}).
			Where("task_status = ?", m.TaskStatus).
			Count(&maxPos)
		m.TaskPosition = int(maxPos)
	}

	if err := ctrl.DB.Create(m).Error; err != nil {
		log.Printf("[ERROR] create task: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat task")
	}
	return helpers.JsonCreated(c, "Task berhasil dibuat", taskDTO.FromModelTask(m))
}

// =============================
// GET /tasks
// Query: status, priority, client_id, assignee_id, tag, q, page, per_page
// =============================
func (ctrl *TaskController) List(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 25, 100)

	tx := ctrl.DB.Model(&taskModel.Task{})

	if s := strings.TrimSpace(c.Query("status")); s != "" {
		if !taskModel.TaskStatus(s).Valid() {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Status tidak dikenal")
		}
		tx = tx.Where("task_status = ?", s)
	}
	if p := strings.TrimSpace(c.Query("priority")); p != "" {
		if !taskModel.TaskPriority(p).Valid() {
			return helpers.JsonError(c, fiber.StatusBadRequest, "Prioritas tidak dikenal")
		}
		tx = tx.Where("task_priority = ?", p)
	}
	if raw := strings.TrimSpace(c.Query("client_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "client_id tidak valid")
		}
		tx = tx.Where("task_client_id = ?", id)
	}
	if raw := strings.TrimSpace(c.Query("assignee_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helpers.JsonError(c, fiber.StatusBadRequest, "assignee_id tidak valid")
		}
		tx = tx.Where("task_assignee_id = ?", id)
	}
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		tx = tx.Where("? = ANY(task_tags)", tag)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		tx = tx.Where("task_title ILIKE ?", "%"+q+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung task")
	}

	var rows []taskModel.Task
	if err := tx.
		Order("task_status ASC, task_position ASC, task_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil task")
	}

	return helpers.JsonList(c, "tasks", taskDTO.FromModelTasks(rows),
		helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// =============================
// GET /tasks/board
// Mengembalikan semua task terkelompok per kolom kanban.
// =============================
func (ctrl *TaskController) Board(c *fiber.Ctx) error {
	var rows []taskModel.Task
	if err := ctrl.DB.
		Order("task_position ASC, task_created_at ASC").
		Find(&rows).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil board")
	}

	board := fiber.Map{
		string(taskModel.TaskStatusTodo):       []taskDTO.TaskResponse{},
		string(taskModel.TaskStatusInProgress): []taskDTO.TaskResponse{},
		string(taskModel.TaskStatusReview):     []taskDTO.TaskResponse{},
		string(taskModel.TaskStatusDone):       []taskDTO.TaskResponse{},
	}
	for i := range rows {
		key := string(rows[i].TaskStatus)
		col, _ := board[key].([]taskDTO.TaskResponse)
		board[key] = append(col, taskDTO.FromModelTask(&rows[i]))
	}
	return helpers.JsonOK(c, "OK", board)
}

// =============================
// GET /tasks/:id
// =============================
func (ctrl *TaskController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m taskModel.Task
	if err := ctrl.DB.First(&m, "task_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Task tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil task")
	}
	return helpers.JsonOK(c, "OK", taskDTO.FromModelTask(&m))
}

// =============================
// PATCH /tasks/:id
// =============================
func (ctrl *TaskController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req taskDTO.PatchTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var m taskModel.Task
	if err := ctrl.DB.First(&m, "task_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Task tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil task")
	}

	if err := req.ApplyTo(&m); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}
	if err := ctrl.DB.Save(&m).Error; err != nil {
		log.Printf("[ERROR] update task %s: %v", id, err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan task")
	}
	return helpers.JsonUpdated(c, "Task berhasil diperbarui", taskDTO.FromModelTask(&m))
}

// =============================
// PATCH /tasks/:id/move
// Pindah kolom + posisi dalam satu operasi.
// =============================
func (ctrl *TaskController) Move(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req taskDTO.MoveTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validator.Struct(req); err != nil {
		return helpers.JsonValidationError(c, err)
	}

	var m taskModel.Task
	if err := ctrl.DB.First(&m, "task_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Task tidak ditemukan")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil task")
	}

	m.TaskStatus = taskModel.TaskStatus(req.TaskStatus)
	if req.TaskPosition != nil {
		m.TaskPosition = *req.TaskPosition
	} else {
		var count int64
		ctrl.DB.Model(&taskModel.Task{}).
			Where("task_status = ? AND task_id <> ?", m.TaskStatus, m.TaskID).
			Count(&count)
		m.TaskPosition = int(count)
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		log.Printf("[ERROR] move task %s: %v", id, err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memindahkan task")
	}
	return helpers.JsonUpdated(c, "Task berhasil dipindahkan", taskDTO.FromModelTask(&m))
}

// =============================
// DELETE /tasks/:id (soft delete)
// =============================
func (ctrl *TaskController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctrl.DB.Delete(&taskModel.Task{}, "task_id = ?", id)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus task")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Task tidak ditemukan")
	}
	return helpers.JsonDeleted(c, "Task berhasil dihapus", fiber.Map{"task_id": id})
}
