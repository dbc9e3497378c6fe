package entity

// UserState состояние пользователя в диалоге
type UserState string

const (
	StateMainMenu      UserState = "main_menu"      // В главном меню
	StateAwaitingPhoto UserState = "awaiting_photo" // Ожидание фото лица
	StateMarking       UserState = "marking"        // Разметка элементов на фото
)

// User представляет пользователя бота и его сессию разметки
type User struct {
	ID      int64     // Telegram User ID
	ChatID  int64     // Telegram Chat ID
	State   UserState // Текущее состояние пользователя
	Photo   []byte    // Фото текущей сессии
	Lesions []Lesion  // Отмеченные элементы в порядке создания
}

// NewUser создаёт нового пользователя с начальным состоянием
func NewUser(userID, chatID int64) *User {
	return &User{
		ID:     userID,
		ChatID: chatID,
		State:  StateMainMenu,
	}
}

// SetState обновляет состояние пользователя
func (u *User) SetState(state UserState) {
	u.State = state
}

// StartSession начинает новую разметку на фото, старые отметки сбрасываются
func (u *User) StartSession(photo []byte) {
	u.Photo = photo
	u.Lesions = nil
	u.State = StateMarking
}

// AddLesion добавляет отметку
func (u *User) AddLesion(l Lesion) {
	u.Lesions = append(u.Lesions, l)
}

// RemoveLesion удаляет отметку по ID
func (u *User) RemoveLesion(id string) error {
	for i, l := range u.Lesions {
		if l.ID == id {
			u.Lesions = append(u.Lesions[:i:i], u.Lesions[i+1:]...)
			return nil
		}
	}
	return ErrLesionNotFound
}

// RemoveLast удаляет самую позднюю по CreatedAt отметку
func (u *User) RemoveLast() (Lesion, bool) {
	if len(u.Lesions) == 0 {
		return Lesion{}, false
	}
	last := 0
	for i, l := range u.Lesions {
		if !l.CreatedAt.Before(u.Lesions[last].CreatedAt) {
			last = i
		}
	}
	removed := u.Lesions[last]
	u.Lesions = append(u.Lesions[:last:last], u.Lesions[last+1:]...)
	return removed, true
}

// ClearLesions удаляет все отметки, фото остаётся
func (u *User) ClearLesions() {
	u.Lesions = nil
}
