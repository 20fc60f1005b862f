package domain

import (
	"fmt"
	"time"
)

// UserPassport representa o passaporte de um usuário (tabela user_passport).
// DateOfExpire é a única coluna que aceita NULL.
type UserPassport struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Surname        string  `json:"surname"`
	Sex            string  `json:"sex"`
	DateOfBirth    string  `json:"dateOfBirth"`
	Nationality    string  `json:"nationality"`
	DateOfIssue    string  `json:"dateOfIssue"`
	DateOfExpire   *string `json:"dateOfExpire"`
	PassportNumber int     `json:"passportNumber"`
}

// Formatos aceitos para a data de expiração: o do payload (dd/mm/yyyy)
// e o legado com pontos (dd.mm.yyyy).
var expireLayouts = []string{"02/01/2006", "02.01.2006"}

// ParseExpireDate interpreta a data de expiração em qualquer formato aceito.
func ParseExpireDate(value string) (time.Time, error) {
	for _, layout := range expireLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("data de expiração em formato desconhecido: %q", value)
}

// IsValidAt retorna true se o passaporte não expira ou expira depois do dia de now.
func (p UserPassport) IsValidAt(now time.Time) (bool, error) {
	if p.DateOfExpire == nil {
		return true, nil
	}
	expire, err := ParseExpireDate(*p.DateOfExpire)
	if err != nil {
		return false, err
	}
	return expire.After(truncateDay(now)), nil
}

// IsExpiredAt retorna true se a data de expiração existe e é anterior ao dia de now.
func (p UserPassport) IsExpiredAt(now time.Time) (bool, error) {
	if p.DateOfExpire == nil {
		return false, nil
	}
	expire, err := ParseExpireDate(*p.DateOfExpire)
	if err != nil {
		return false, err
	}
	return expire.Before(truncateDay(now)), nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
