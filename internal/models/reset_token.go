package models

import (
	"time"

	"github.com/google/uuid"
)

// ResetToken — персистентный токен сброса пароля.
//
// Описание:
//   - TokenHash — bcrypt-хэш случайного секрета; сам секрет возвращается
//     пользователю ровно один раз при выпуске и не хранится;
//   - ExpiresAt — момент истечения (UTC), по умолчанию issue+1h;
//   - запись не обновляется после создания; успешная проверка её не съедает.
type ResetToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
