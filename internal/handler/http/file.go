package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/techmire/payroll-backend-go/internal/domain/file"
	"github.com/techmire/payroll-backend-go/internal/domain/user"
	"github.com/techmire/payroll-backend-go/internal/handler/http/response"
)

// Attendance exports are small text files; 10 MB is generous.
const maxUploadSize = 10 << 20

type FileHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Data(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type FileHandlerImpl struct {
	fileService file.FileService
}

func NewFileHandler(fileService file.FileService) FileHandler {
	return &FileHandlerImpl{fileService: fileService}
}

// Upload implements FileHandler. The export arrives as multipart form data
// under the "file" field.
func (h *FileHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		slog.Error("Upload parse error", "error", err)
		response.BadRequest(w, "Invalid multipart request", nil)
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file field", nil)
		return
	}
	defer f.Close()

	uploaded, err := h.fileService.Upload(r.Context(), header.Filename, f)
	if err != nil {
		slog.Error("Upload service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Export file uploaded", "filename", uploaded.Filename, "size", uploaded.Size)
	response.Created(w, "File uploaded", uploaded)
}

// List implements FileHandler.
func (h *FileHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	files, err := h.fileService.List(r.Context())
	if err != nil {
		slog.Error("List files service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, files)
}

// Data implements FileHandler. An optional employee_id query parameter
// restricts the rows to that employee's section; employee accounts are
// always pinned to their own section.
func (h *FileHandlerImpl) Data(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	employeeID := r.URL.Query().Get("employee_id")

	if _, claims, err := jwtauth.FromContext(r.Context()); err == nil {
		if role, _ := claims["role"].(string); role == string(user.RoleEmployee) {
			employeeID, _ = claims["employee_id"].(string)
		}
	}

	data, err := h.fileService.Data(r.Context(), id, employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, data)
}

// Delete implements FileHandler.
func (h *FileHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.fileService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete file service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Export file deleted", "id", id)
	response.SuccessWithMessage(w, "File deleted", nil)
}
