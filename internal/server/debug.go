package server

import (
	"encoding/json"
	"net/http"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/entities", h.handleDumpEntities)
	mux.HandleFunc("/debug/snapshots", h.handleSnapshots)
	mux.HandleFunc("/debug/history", h.handleHistory)
}

// /debug/entities - дамп всех сущностей деревни (включая скрытые поля)
func (h *DebugHandler) handleDumpEntities(w http.ResponseWriter, r *http.Request) {
	// Внимание: чтение без синхронизации с игровым циклом.
	// Для debug READ-only сойдет, состояние может быть на полтика старым.
	writeJSON(w, h.Service.World.Entities)
}

// /debug/snapshots - список сохраненных снапшотов
func (h *DebugHandler) handleSnapshots(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Service.Snapshots.List())
}

// /debug/history - глубина стеков undo/redo
func (h *DebugHandler) handleHistory(w http.ResponseWriter, r *http.Request) {
	type historyView struct {
		UndoDepth int  `json:"undo_depth"`
		RedoDepth int  `json:"redo_depth"`
		CanUndo   bool `json:"can_undo"`
		CanRedo   bool `json:"can_redo"`
		DevMode   bool `json:"dev_mode"`
	}

	hist := h.Service.Mutations.History()
	writeJSON(w, historyView{
		UndoDepth: hist.UndoDepth(),
		RedoDepth: hist.RedoDepth(),
		CanUndo:   hist.CanUndo(),
		CanRedo:   hist.CanRedo(),
		DevMode:   h.Service.Mutations.DevMode(),
	})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	// Разрешаем запросы с любого источника (нужно для локального debug_client.html)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	// Если data == nil (например, пустой список), возвращаем пустой массив [], а не null
	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
