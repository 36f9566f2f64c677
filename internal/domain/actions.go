package domain

import "strings"

// ActionType - Внутренний числовой идентификатор действия
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionInspect
	ActionMutate
	ActionMutateBatch
	ActionUndo
	ActionRedo
	ActionSnapshotCreate
	ActionSnapshotRestore
	ActionSnapshotList
	ActionSnapshotDelete
	ActionDevMode
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":             ActionInit,
	"INSPECT":          ActionInspect,
	"MUTATE":           ActionMutate,
	"MUTATE_BATCH":     ActionMutateBatch,
	"UNDO":             ActionUndo,
	"REDO":             ActionRedo,
	"SNAPSHOT_CREATE":  ActionSnapshotCreate,
	"SNAPSHOT_RESTORE": ActionSnapshotRestore,
	"SNAPSHOT_LIST":    ActionSnapshotList,
	"SNAPSHOT_DELETE":  ActionSnapshotDelete,
	"DEVMODE":          ActionDevMode,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:            "INIT",
	ActionInspect:         "INSPECT",
	ActionMutate:          "MUTATE",
	ActionMutateBatch:     "MUTATE_BATCH",
	ActionUndo:            "UNDO",
	ActionRedo:            "REDO",
	ActionSnapshotCreate:  "SNAPSHOT_CREATE",
	ActionSnapshotRestore: "SNAPSHOT_RESTORE",
	ActionSnapshotList:    "SNAPSHOT_LIST",
	ActionSnapshotDelete:  "SNAPSHOT_DELETE",
	ActionDevMode:         "DEVMODE",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
