// Package jwt реализует выпуск и разбор JWT токенов учётных записей.
//
// Токен несёт логин пользователя и его роль ("Admin" или "User"),
// подписывается симметричным ключом по схеме HS512 и живёт фиксированное
// время от момента выпуска.
package jwt

import (
	"time"
)

// Роли, кодируемые в токене.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// Maker описывает интерфейс выпуска и разбора токенов.
type Maker interface {
	// GenerateToken выпускает токен для логина с ролью по признаку администратора.
	GenerateToken(login string, isAdmin bool) (string, error)
	// ParseToken проверяет подпись и срок действия токена и возвращает его claims.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует Maker на основе секретного ключа,
// издателя, аудитории и времени жизни токена.
type MakerImpl struct {
	secretKey string
	issuer    string
	audience  string
	tokenTTL  time.Duration
}

// NewMaker создаёт новый MakerImpl.
func NewMaker(secretKey, issuer, audience string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		issuer:    issuer,
		audience:  audience,
		tokenTTL:  ttl,
	}
}

// Role возвращает строковую роль по признаку администратора.
func Role(isAdmin bool) string {
	if isAdmin {
		return RoleAdmin
	}
	return RoleUser
}
