package actions

import (
	"fmt"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/engine/handlers"
	"github.com/lizTheDeveloper/ai-village-sub012/pkg/api"
)

// HandleSnapshotCreate захватывает слепок перечисленных сущностей
func HandleSnapshotCreate(ctx handlers.Context, p api.SnapshotCreatePayload) (handlers.Result, error) {
	ids := make([]domain.EntityID, len(p.EntityIDs))
	for i, id := range p.EntityIDs {
		ids[i] = domain.EntityID(id)
	}

	snapID, err := ctx.Snapshots.Create(ids, p.Metadata)
	if err != nil {
		// Создание - все или ничего: одна пропавшая сущность валит вызов
		return handlers.Result{Msg: fmt.Sprintf("Snapshot failed: %v", err), MsgType: "ERROR"}, nil
	}

	return handlers.Result{
		Msg:     fmt.Sprintf("Слепок %d сущностей сохранен.", len(ids)),
		MsgType: "INFO",
		Data:    api.SnapshotCreateResult{SnapshotID: snapID},
	}, nil
}

// HandleSnapshotRestore накатывает слепок на живой мир
func HandleSnapshotRestore(ctx handlers.Context, p api.SnapshotIDPayload) (handlers.Result, error) {
	result, err := ctx.Snapshots.Restore(p.SnapshotID)
	if err != nil {
		return handlers.Result{Msg: fmt.Sprintf("Restore failed: %v", err), MsgType: "ERROR"}, nil
	}

	return handlers.Result{
		Msg:     fmt.Sprintf("Время отмотано: восстановлено %d сущностей.", result.EntitiesRestored),
		MsgType: "INFO",
		Data: api.SnapshotRestoreResult{
			EntitiesRestored: result.EntitiesRestored,
			Metadata:         result.Metadata,
		},
	}, nil
}

// HandleSnapshotList возвращает метаданные всех слепков (свежие первыми)
func HandleSnapshotList(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{Data: ctx.Snapshots.List()}, nil
}

// HandleSnapshotDelete удаляет слепок
func HandleSnapshotDelete(ctx handlers.Context, p api.SnapshotIDPayload) (handlers.Result, error) {
	if err := ctx.Snapshots.Delete(p.SnapshotID); err != nil {
		return handlers.Result{Msg: fmt.Sprintf("Delete failed: %v", err), MsgType: "ERROR"}, nil
	}
	return handlers.Result{Msg: "Слепок удален.", MsgType: "INFO"}, nil
}
