package entity

// UserState состояние оператора в диалоге
type UserState string

const (
	StateMainMenu      UserState = "main_menu"      // В главном меню
	StateAwaitingPhoto UserState = "awaiting_photo" // Ожидание снимка с БПЛА
	StateProcessing    UserState = "processing"     // Обработка снимка
)

// User оператор, работающий с ботом
type User struct {
	ID     int64     // Telegram User ID
	ChatID int64     // Telegram Chat ID
	State  UserState // Текущее состояние
}

// NewUser создаёт нового оператора с начальным состоянием
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

// SetState обновляет состояние оператора
func (u *User) SetState(state UserState) {
	u.State = state
}
