package mutation

// DefaultHistoryCapacity - глубина истории по умолчанию
const DefaultHistoryCapacity = 50

// UndoStack - ограниченная история обратимых команд плюс параллельный
// redo-стек. Семантика линейной истории как в текстовых редакторах:
// новая команда после undo стирает redo-ветку.
//
// Переполнение - НЕ ошибка: самая старая команда молча выбрасывается.
// Потеря данных здесь намеренная, история - это буфер, а не журнал.
type UndoStack struct {
	capacity int
	undo     []*Command
	redo     []*Command
}

func NewUndoStack(capacity int) *UndoStack {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &UndoStack{capacity: capacity}
}

// Push добавляет выполненную команду и стирает redo-ветку
func (s *UndoStack) Push(cmd *Command) {
	s.undo = append(s.undo, cmd)
	s.redo = s.redo[:0]

	// Вытеснение старейшей команды при переполнении
	if len(s.undo) > s.capacity {
		copy(s.undo, s.undo[1:])
		s.undo = s.undo[:s.capacity]
	}
}

// PopUndo снимает последнюю команду и переносит её в redo-стек.
// Возвращает nil, если откатывать нечего.
func (s *UndoStack) PopUndo() *Command {
	if len(s.undo) == 0 {
		return nil
	}
	cmd := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, cmd)
	return cmd
}

// PopRedo снимает команду с redo-стека и возвращает её в undo-стек
func (s *UndoStack) PopRedo() *Command {
	if len(s.redo) == 0 {
		return nil
	}
	cmd := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, cmd)
	return cmd
}

// CanUndo - O(1)
func (s *UndoStack) CanUndo() bool { return len(s.undo) > 0 }

// CanRedo - O(1)
func (s *UndoStack) CanRedo() bool { return len(s.redo) > 0 }

// UndoDepth возвращает количество доступных откатов
func (s *UndoStack) UndoDepth() int { return len(s.undo) }

// RedoDepth возвращает количество доступных повторов
func (s *UndoStack) RedoDepth() int { return len(s.redo) }

// Clear сбрасывает обе ветки истории
func (s *UndoStack) Clear() {
	s.undo = s.undo[:0]
	s.redo = s.redo[:0]
}
